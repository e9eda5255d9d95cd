package model

import "encoding/json"

// Kind is the top-level part of speech (品詞).
type Kind int

const (
	KindOther Kind = iota
	KindNoun
	KindVerb
	KindAdjective
	KindAuxiliaryVerb
	KindPostpositional
	KindSymbol
	KindAdverb
	KindAdnominal
	KindConjunction
	KindInterjection
	KindPrefix
	KindFiller
)

var kindNames = [...]string{
	KindOther:          "Other",
	KindNoun:           "Noun",
	KindVerb:           "Verb",
	KindAdjective:      "Adjective",
	KindAuxiliaryVerb:  "AuxiliaryVerb",
	KindPostpositional: "Postpositional",
	KindSymbol:         "Symbol",
	KindAdverb:         "Adverb",
	KindAdnominal:      "Adnominal",
	KindConjunction:    "Conjunction",
	KindInterjection:   "Interjection",
	KindPrefix:         "Prefix",
	KindFiller:         "Filler",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "Other"
	}
	return kindNames[k]
}

// Sub is the sub-category (品詞細分類1) of a word class. Which values are
// meaningful depends on the Kind they are paired with.
type Sub int

const (
	SubNone Sub = iota

	// nouns, verbs and adjectives
	SubGeneral
	SubProper
	SubPronoun
	SubNumber
	SubIndependent
	SubDependent
	SubSuffix
	SubSahenConnection
	SubAdjectivalStem
	SubAdverbialPossible

	// postpositionals
	SubCase
	SubBinding
	SubAdverbial
	SubConjunction
	SubEnd
	SubSupplementaryParallelEnd
	SubParallel
	SubAdnominalization
	SubAdverbialization
	SubSpecial

	// symbols
	SubPeriod
	SubComma
	SubOpenParen
	SubCloseParen
	SubSpace
	SubAlphabet
)

var subNames = [...]string{
	SubNone:                     "",
	SubGeneral:                  "General",
	SubProper:                   "Proper",
	SubPronoun:                  "Pronoun",
	SubNumber:                   "Number",
	SubIndependent:              "Independent",
	SubDependent:                "Dependent",
	SubSuffix:                   "Suffix",
	SubSahenConnection:          "SahenConnection",
	SubAdjectivalStem:           "AdjectivalStem",
	SubAdverbialPossible:        "AdverbialPossible",
	SubCase:                     "Case",
	SubBinding:                  "Binding",
	SubAdverbial:                "Adverbial",
	SubConjunction:              "Conjunction",
	SubEnd:                      "End",
	SubSupplementaryParallelEnd: "SupplementaryParallelEnd",
	SubParallel:                 "Parallel",
	SubAdnominalization:         "Adnominalization",
	SubAdverbialization:         "Adverbialization",
	SubSpecial:                  "Special",
	SubPeriod:                   "Period",
	SubComma:                    "Comma",
	SubOpenParen:                "OpenParen",
	SubCloseParen:               "CloseParen",
	SubSpace:                    "Space",
	SubAlphabet:                 "Alphabet",
}

func (s Sub) String() string {
	if s < 0 || int(s) >= len(subNames) {
		return ""
	}
	return subNames[s]
}

// WordClass is a tagged union of part-of-speech variants: Kind selects the
// variant and Sub carries its sub-category.
type WordClass struct {
	Kind Kind
	Sub  Sub
}

func (w WordClass) String() string {
	if w.Sub == SubNone {
		return w.Kind.String()
	}
	return w.Kind.String() + "/" + w.Sub.String()
}

// MarshalJSON renders the class as "Kind/Sub" so traces stay readable.
func (w WordClass) MarshalJSON() ([]byte, error) {
	return json.Marshal(w.String())
}

func (w WordClass) IsVerb() bool          { return w.Kind == KindVerb }
func (w WordClass) IsAdjective() bool     { return w.Kind == KindAdjective }
func (w WordClass) IsAuxiliaryVerb() bool { return w.Kind == KindAuxiliaryVerb }

// IsSentenceEnd reports whether the class is one of the particles that trail
// a predicate (終助詞 and 副助詞／並立助詞／終助詞).
func (w WordClass) IsSentenceEnd() bool {
	return w.Kind == KindPostpositional &&
		(w.Sub == SubEnd || w.Sub == SubSupplementaryParallelEnd)
}

func (w WordClass) IsConjunctionParticle() bool {
	return w.Kind == KindPostpositional && w.Sub == SubConjunction
}

func (w WordClass) IsPeriod() bool     { return w.Kind == KindSymbol && w.Sub == SubPeriod }
func (w WordClass) IsOpenParen() bool  { return w.Kind == KindSymbol && w.Sub == SubOpenParen }
func (w WordClass) IsCloseParen() bool { return w.Kind == KindSymbol && w.Sub == SubCloseParen }
