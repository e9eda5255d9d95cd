// Package clause segments a token sequence into clauses that end at
// register-sensitive boundaries.
package clause

import (
	"log"

	"japaneseregister/model"
)

// ClauseType represents how a clause is closed.
type ClauseType string

const (
	// MainClause ends at sentence punctuation (real or synthetic).
	MainClause ClauseType = "main"
	// SubordinateClause ends at the adversative conjunction particle が.
	SubordinateClause ClauseType = "subordinate"
)

// Clause is a run of body tokens closed by exactly one separator token.
// Start and End index the clause in the original token sequence; End is
// exclusive and counts the separator unless it is synthetic.
type Clause struct {
	Body  []model.Token `json:"body"`
	Sep   model.Token   `json:"sep"`
	Start int           `json:"start"`
	End   int           `json:"end"`
	Type  ClauseType    `json:"type"`
}

// Tokens returns the body followed by the separator.
func (c Clause) Tokens() []model.Token {
	out := make([]model.Token, 0, len(c.Body)+1)
	out = append(out, c.Body...)
	return append(out, c.Sep)
}

// Warning flags an input-quality problem noticed while splitting.
type Warning struct {
	Index   int    `json:"index"`
	Offset  int    `json:"offset"` // byte offset of Surface in the input
	Surface string `json:"surface"`
	Message string `json:"message"`
}

// Result is the output of Split.
type Result struct {
	Clauses  []Clause  `json:"clauses"`
	Warnings []Warning `json:"warnings,omitempty"`
}

const adversative = "が"

// Split partitions tokens into clauses in a single left-to-right scan.
//
// A break is declared at paren depth zero on a period, or on the conjunction
// particle が. Anything inside brackets passes through without a break. A
// trailing run without punctuation is closed with a synthetic "。".
func Split(tokens []model.Token) Result {
	var res Result
	depth := 0
	start := 0

	for i, tk := range tokens {
		switch {
		case tk.Class.IsOpenParen():
			depth++
		case tk.Class.IsCloseParen():
			depth--
			if depth < 0 {
				// more closes than opens: clamp and keep going
				depth = 0
				w := Warning{Index: i, Offset: tk.Start, Surface: tk.Surface, Message: "unmatched close paren"}
				res.Warnings = append(res.Warnings, w)
				log.Printf("[clause] %s %q at token %d (byte %d)", w.Message, w.Surface, w.Index, w.Offset)
			}
		}

		typ, brk := breakAt(tk, depth)
		if !brk {
			continue
		}
		res.Clauses = append(res.Clauses, Clause{
			Body:  tokens[start:i:i],
			Sep:   tk,
			Start: start,
			End:   i + 1,
			Type:  typ,
		})
		start = i + 1
	}

	if start < len(tokens) {
		res.Clauses = append(res.Clauses, Clause{
			Body:  tokens[start:len(tokens):len(tokens)],
			Sep:   model.Period(),
			Start: start,
			End:   len(tokens),
			Type:  MainClause,
		})
	}
	return res
}

func breakAt(tk model.Token, depth int) (ClauseType, bool) {
	// quotes and asides are left as they are, so no break inside them
	if depth >= 1 {
		return "", false
	}
	switch {
	case tk.Class.IsPeriod():
		return MainClause, true
	case tk.Class.IsConjunctionParticle() && tk.Lemma == adversative:
		return SubordinateClause, true
	}
	return "", false
}

// Join reassembles the tokens of clauses in order, dropping a synthetic
// trailing separator.
func Join(clauses []Clause) []model.Token {
	var out []model.Token
	for _, c := range clauses {
		out = append(out, c.Body...)
		if !c.Sep.IsSynthetic() {
			out = append(out, c.Sep)
		}
	}
	return out
}
