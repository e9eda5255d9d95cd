package model

// Token represents a token / morpheme produced by the tokenizer.
// Tokens are read-only once the tokenizer hands them out.
type Token struct {
	Surface       string     `json:"surface"`
	Lemma         string     `json:"lemma,omitempty"`
	Class         WordClass  `json:"class"`
	Inflection    Inflection `json:"inflection"`
	Reading       string     `json:"reading,omitempty"`
	Pronunciation string     `json:"pronunciation,omitempty"`
	Start         int        `json:"start"` // byte offset
	End           int        `json:"end"`
}

// Inflection is the conjugation info attached to a token: the paradigm
// (活用型) it belongs to and the form (活用形) its surface is in.
type Inflection struct {
	Paradigm Paradigm `json:"paradigm"`
	Form     Form     `json:"form"`
}

// SyntheticStart marks tokens that were not produced from the input text.
const SyntheticStart = -1

// Period returns the synthetic "。" used to close a clause when the input
// lacks terminal punctuation.
func Period() Token {
	return Token{
		Surface:       "。",
		Lemma:         "。",
		Class:         WordClass{Kind: KindSymbol, Sub: SubPeriod},
		Reading:       "。",
		Pronunciation: "。",
		Start:         SyntheticStart,
		End:           SyntheticStart,
	}
}

// IsSynthetic reports whether t was inserted rather than read from input.
func (t Token) IsSynthetic() bool {
	return t.Start == SyntheticStart
}

// Surfaces concatenates the surfaces of tokens in order.
func Surfaces(tokens []Token) string {
	n := 0
	for _, t := range tokens {
		n += len(t.Surface)
	}
	b := make([]byte, 0, n)
	for _, t := range tokens {
		b = append(b, t.Surface...)
	}
	return string(b)
}
