package register

import (
	"fmt"
	"strings"

	"japaneseregister/model"
)

type copulaKey struct {
	lemma string
	slot  model.Form
}

var copulaTable = map[copulaKey]string{
	{"です", model.Basic}:     "です",
	{"です", model.NegativeU}: "でしょ",
	{"ます", model.Basic}:     "ます",
	{"ます", model.Negative}:  "ませ",
	{"ます", model.NegativeU}: "ましょ",
}

// copula returns the form of です/ます that fits slot.
func copula(lemma string, slot model.Form) (string, error) {
	if s, ok := copulaTable[copulaKey{lemma, slot}]; ok {
		return s, nil
	}
	return "", &CopulaPairingError{Lemma: lemma, Slot: slot}
}

// polite rewrites the predicate at the end of c into polite register and
// reattaches any sentence-final particles. The separator is not included.
func (t *transformer) polite(c cursor, slot model.Form) (string, error) {
	ends := c.takeEnds()
	last, ok := c.pop()
	if !ok {
		return ends, nil
	}
	head, err := t.politeHead(&c, last, slot)
	if err != nil {
		return "", err
	}
	return head + ends, nil
}

func (t *transformer) politeHead(c *cursor, last model.Token, slot model.Form) (string, error) {
	switch {
	case last.Lemma == "です" || last.Lemma == "ます":
		return c.surface() + last.Surface, nil

	case last.Class.IsAuxiliaryVerb() && last.Lemma == "だ":
		cop, err := copula("です", slot)
		if err != nil {
			return "", err
		}
		return c.surface() + cop, nil

	case last.Class.IsVerb():
		stem, err := t.continuative(last)
		if err != nil {
			return "", err
		}
		cop, err := copula("ます", slot)
		if err != nil {
			return "", err
		}
		return c.surface() + stem + cop, nil

	case last.Class.IsAuxiliaryVerb() && last.Lemma == "ある":
		return t.politeAru(c, slot)

	case (last.Class.IsAuxiliaryVerb() || last.Class.IsAdjective()) && last.Lemma == "ない":
		return t.politeNai(c)

	case last.Class.IsAuxiliaryVerb() && last.Lemma == "た":
		return t.politePast(c)

	case last.Lemma == "う":
		// しよう: render the rest as volitional stem, then restore う
		rest, err := t.polite(*c, model.NegativeU)
		if err != nil {
			return "", err
		}
		return rest + "う", nil

	case last.Lemma == "ん":
		rest, err := t.polite(*c, model.Negative)
		if err != nil {
			return "", err
		}
		return rest + "ん", nil
	}
	return c.surface() + last.Surface + "です", nil
}

// politeAru handles a trailing auxiliary ある; である collapses into です.
func (t *transformer) politeAru(c *cursor, slot model.Form) (string, error) {
	prior, ok := c.pop()
	if ok && prior.Lemma == "だ" {
		cop, err := copula("です", slot)
		if err != nil {
			return "", err
		}
		return c.surface() + cop, nil
	}
	cop, err := copula("ます", slot)
	if err != nil {
		return "", err
	}
	if !ok {
		return "あり" + cop, nil
	}
	return c.surface() + prior.Surface + "あり" + cop, nil
}

func (t *transformer) politeNai(c *cursor) (string, error) {
	prior, ok := c.pop()
	if !ok {
		return "ありません", nil
	}
	switch {
	case prior.Lemma == "で":
		return c.surface() + "ではありません", nil
	case prior.Class.IsVerb():
		stem, err := t.continuative(prior)
		if err != nil {
			return "", err
		}
		return c.surface() + stem + "ません", nil
	}
	// adjectives and everything else take ありません directly
	return c.surface() + prior.Surface + "ありません", nil
}

func (t *transformer) politePast(c *cursor) (string, error) {
	prior, ok := c.pop()
	if !ok {
		return "たです", nil
	}
	switch {
	case prior.Lemma == "です" || prior.Lemma == "ます":
		return c.surface() + prior.Surface + "た", nil
	case prior.Class.IsVerb():
		stem, err := t.continuative(prior)
		if err != nil {
			return "", err
		}
		return c.surface() + stem + "ました", nil
	case prior.Lemma == "だ":
		return c.surface() + "でした", nil
	case prior.Lemma == "ある":
		// であった -> でした; the で stays in the remaining range
		return c.surface() + "した", nil
	case prior.Lemma == "ない":
		c.push()
		rest, err := t.polite(*c, model.Basic)
		if err != nil {
			return "", err
		}
		return rest + "でした", nil
	}
	return c.surface() + prior.Surface + "たです", nil
}

// continuative turns a plain verb into the stem that precedes ます.
func (t *transformer) continuative(v model.Token) (string, error) {
	p, form := v.Inflection.Paradigm, v.Inflection.Form
	var (
		out string
		err error
	)
	switch p {
	case model.SahenSuruConnected:
		// the dictionary tags these stems oddly; the negative form is the one
		// that lines up with ます
		out, err = t.inf.Convert(v.Surface, p, form, model.Negative)
	case model.SahenZuruConnected:
		return strings.TrimSuffix(v.Lemma, "ずる") + "じ", nil
	case model.IchidanRu:
		// No rule is known for 一段・ル; the lemma is passed through as is.
		return v.Lemma, nil
	case model.SpecialNai, model.SpecialTai:
		out, err = t.inf.Convert(v.Surface, p, form, model.ContinuousDe)
	default:
		out, err = t.inf.Convert(v.Surface, p, form, model.Continuous)
	}
	if err != nil {
		return "", fmt.Errorf("continuative of %q: %w", v.Surface, err)
	}
	return out, nil
}
