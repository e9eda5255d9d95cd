package register

import "japaneseregister/model"

var (
	slotsTa       = []model.Form{model.ContinuousTa, model.Continuous}
	slotsVolition = []model.Form{model.NegativeU, model.Negative}
	slotsNegative = []model.Form{model.Negative}
)

// auxParadigms lists the plain auxiliaries the rules emit, by lemma.
var auxParadigms = map[string]model.Paradigm{
	"だ":  model.SpecialDa,
	"た":  model.SpecialTa,
	"ある": model.GodanRaAru,
	"です": model.SpecialDesu,
	"ます": model.SpecialMasu,
	"ない": model.SpecialNai,
}

// fix converts surface to the first supported slot, or returns it unchanged.
func (t *transformer) fix(surface string, p model.Paradigm, from model.Form, slots []model.Form) string {
	for _, to := range slots {
		if out, err := t.inf.Convert(surface, p, from, to); err == nil {
			return out
		}
	}
	return surface
}

func (t *transformer) fixToken(tk model.Token, slots []model.Form) string {
	return t.fix(tk.Surface, tk.Inflection.Paradigm, tk.Inflection.Form, slots)
}

// aux renders one of the auxiliaries in auxParadigms in the given slots.
func (t *transformer) aux(lemma string, slots []model.Form) string {
	return t.fix(lemma, auxParadigms[lemma], model.Basic, slots)
}

// plain rewrites the predicate at the end of c into plain register and
// reattaches any sentence-final particles. The separator is not included.
func (t *transformer) plain(c cursor, slots []model.Form) string {
	ends := c.takeEnds()
	last, ok := c.pop()
	if !ok {
		return ends
	}
	return t.plainHead(&c, last, slots, ends != "") + ends
}

func (t *transformer) plainHead(c *cursor, last model.Token, slots []model.Form, hasEnds bool) string {
	if !last.Class.IsAuxiliaryVerb() {
		return c.surface() + t.fixToken(last, slots)
	}
	switch last.Lemma {
	case "だ", "ある":
		return c.surface() + t.aux(last.Lemma, slots)
	case "です":
		return t.plainDesu(c, slots, hasEnds)
	case "ます":
		prior, ok := c.pop()
		switch {
		case !ok:
			return ""
		case prior.Class.IsVerb():
			return c.surface() + t.fixToken(prior, slots)
		}
		return c.surface() + prior.Surface
	case "う":
		return t.plainVolitional(c)
	case "ん":
		return t.plainNegative(c, slots)
	case "た":
		return t.plainPast(c, slots)
	}
	return c.surface() + t.fixToken(last, slots)
}

func (t *transformer) plainDesu(c *cursor, slots []model.Form, hasEnds bool) string {
	// ですか -> か, not だか
	copula := ""
	if !hasEnds {
		copula = t.aux("だ", slots)
	}
	prior, ok := c.pop()
	switch {
	case !ok:
		return copula
	case prior.Class.IsAdjective():
		return c.surface() + prior.Surface
	case prior.Class.IsAuxiliaryVerb() && prior.Lemma == "た":
		return t.plainPast(c, slots)
	}
	return c.surface() + prior.Surface + copula
}

func (t *transformer) plainVolitional(c *cursor) string {
	prior, ok := c.pop()
	switch {
	case !ok:
		return "う"
	case prior.Class.IsAuxiliaryVerb() && prior.Lemma == "です":
		return c.surface() + "だろう"
	case prior.Class.IsAuxiliaryVerb() && prior.Lemma == "ます":
		verb, ok := c.pop()
		if !ok {
			return "う"
		}
		return c.surface() + t.fixToken(verb, slotsVolition) + "う"
	}
	return c.surface() + prior.Surface + "う"
}

func (t *transformer) plainNegative(c *cursor, slots []model.Form) string {
	nai := t.aux("ない", slots)
	prior, ok := c.pop()
	switch {
	case !ok:
		return nai
	case prior.Class.IsAuxiliaryVerb() && prior.Lemma == "ます":
		verb, ok := c.pop()
		switch {
		case !ok:
			return ""
		case verb.Lemma == "ある":
			// ありません -> ない
			return c.surface() + nai
		}
		return c.surface() + t.fixToken(verb, slotsNegative) + nai
	}
	return c.surface() + t.fixToken(prior, slotsNegative) + nai
}

func (t *transformer) plainPast(c *cursor, slots []model.Form) string {
	ta := t.aux("た", slots)
	prior, ok := c.pop()
	switch {
	case !ok:
		return ta
	case prior.Class.IsAuxiliaryVerb() && prior.Lemma == "です":
		// でした: render the clause up to です as a 連用タ form, e.g. だっ
		c.push()
		return t.plain(*c, slotsTa) + ta
	case prior.Class.IsAuxiliaryVerb() && prior.Lemma == "ます":
		verb, ok := c.pop()
		if !ok {
			return ta
		}
		return c.surface() + t.fixToken(verb, slotsTa) + ta
	}
	return c.surface() + t.fixToken(prior, slotsTa) + ta
}
