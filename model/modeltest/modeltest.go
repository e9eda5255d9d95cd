// Package modeltest builds hand-made token sequences for tests, so rule tests
// do not depend on what a dictionary happens to emit.
package modeltest

import "japaneseregister/model"

func tok(surface, lemma string, kind model.Kind, sub model.Sub, p model.Paradigm, f model.Form) model.Token {
	return model.Token{
		Surface:    surface,
		Lemma:      lemma,
		Class:      model.WordClass{Kind: kind, Sub: sub},
		Inflection: model.Inflection{Paradigm: p, Form: f},
	}
}

func Noun(surface string) model.Token {
	return tok(surface, surface, model.KindNoun, model.SubGeneral, model.ParadigmNone, model.FormNone)
}

func Verb(surface, lemma string, p model.Paradigm, f model.Form) model.Token {
	return tok(surface, lemma, model.KindVerb, model.SubIndependent, p, f)
}

func Adj(surface, lemma string, p model.Paradigm, f model.Form) model.Token {
	return tok(surface, lemma, model.KindAdjective, model.SubIndependent, p, f)
}

func Aux(surface, lemma string, p model.Paradigm, f model.Form) model.Token {
	return tok(surface, lemma, model.KindAuxiliaryVerb, model.SubNone, p, f)
}

// Particle builds a postpositional whose lemma equals its surface.
func Particle(surface string, sub model.Sub) model.Token {
	return tok(surface, surface, model.KindPostpositional, sub, model.ParadigmNone, model.FormNone)
}

func Symbol(surface string, sub model.Sub) model.Token {
	return tok(surface, surface, model.KindSymbol, sub, model.ParadigmNone, model.FormNone)
}

func Period() model.Token { return Symbol("。", model.SubPeriod) }
func Comma() model.Token  { return Symbol("、", model.SubComma) }
func Open() model.Token   { return Symbol("「", model.SubOpenParen) }
func Close() model.Token  { return Symbol("」", model.SubCloseParen) }

// Seq assigns byte offsets to tokens as if they had been read in order.
func Seq(tokens ...model.Token) []model.Token {
	out := make([]model.Token, len(tokens))
	off := 0
	for i, t := range tokens {
		t.Start = off
		off += len(t.Surface)
		t.End = off
		out[i] = t
	}
	return out
}
