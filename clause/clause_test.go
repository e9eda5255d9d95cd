package clause

import (
	"reflect"
	"testing"

	"japaneseregister/model"
	mt "japaneseregister/model/modeltest"
)

func TestSplitEmpty(t *testing.T) {
	res := Split(nil)
	if len(res.Clauses) != 0 || len(res.Warnings) != 0 {
		t.Fatalf("expected nothing, got %+v", res)
	}
}

func TestSplitPeriods(t *testing.T) {
	toks := mt.Seq(
		mt.Noun("晴天"), mt.Aux("だ", "だ", model.SpecialDa, model.Basic), mt.Period(),
		mt.Noun("雨"), mt.Aux("だ", "だ", model.SpecialDa, model.Basic), mt.Period(),
	)
	res := Split(toks)
	if len(res.Clauses) != 2 {
		t.Fatalf("expected 2 clauses, got %d", len(res.Clauses))
	}
	for i, c := range res.Clauses {
		if len(c.Body) != 2 || c.Sep.Surface != "。" || c.Type != MainClause {
			t.Errorf("clause %d malformed: %+v", i, c)
		}
	}
	if res.Clauses[1].Start != 3 || res.Clauses[1].End != 6 {
		t.Errorf("second clause range = [%d,%d), want [3,6)", res.Clauses[1].Start, res.Clauses[1].End)
	}
}

func TestSplitAdversativeGa(t *testing.T) {
	toks := mt.Seq(
		mt.Noun("天気"), mt.Aux("だ", "だ", model.SpecialDa, model.Basic),
		mt.Particle("が", model.SubConjunction),
		mt.Noun("雨"), mt.Aux("だ", "だ", model.SpecialDa, model.Basic), mt.Period(),
	)
	res := Split(toks)
	if len(res.Clauses) != 2 {
		t.Fatalf("expected 2 clauses, got %d", len(res.Clauses))
	}
	if res.Clauses[0].Sep.Surface != "が" || res.Clauses[0].Type != SubordinateClause {
		t.Errorf("first clause should end at が: %+v", res.Clauses[0])
	}
}

func TestSplitCaseGaDoesNotBreak(t *testing.T) {
	toks := mt.Seq(mt.Noun("雨"), mt.Particle("が", model.SubCase), mt.Verb("降る", "降る", model.GodanRa, model.Basic), mt.Period())
	res := Split(toks)
	if len(res.Clauses) != 1 {
		t.Fatalf("case particle が must not split, got %d clauses", len(res.Clauses))
	}
}

func TestSplitNoBreakInsideParens(t *testing.T) {
	toks := mt.Seq(
		mt.Open(), mt.Noun("雨"), mt.Aux("だ", "だ", model.SpecialDa, model.Basic), mt.Period(),
		mt.Particle("が", model.SubConjunction), mt.Close(),
		mt.Noun("話"), mt.Aux("だ", "だ", model.SpecialDa, model.Basic), mt.Period(),
	)
	res := Split(toks)
	if len(res.Clauses) != 1 {
		t.Fatalf("expected 1 clause, got %d", len(res.Clauses))
	}
	if len(res.Clauses[0].Body) != 8 {
		t.Errorf("body should hold the whole bracketed span, got %d tokens", len(res.Clauses[0].Body))
	}
}

func TestSplitSyntheticPeriod(t *testing.T) {
	toks := mt.Seq(mt.Noun("晴天"), mt.Aux("だ", "だ", model.SpecialDa, model.Basic))
	res := Split(toks)
	if len(res.Clauses) != 1 {
		t.Fatalf("expected 1 clause, got %d", len(res.Clauses))
	}
	sep := res.Clauses[0].Sep
	if sep.Surface != "。" || !sep.IsSynthetic() || !sep.Class.IsPeriod() {
		t.Errorf("expected synthetic period, got %+v", sep)
	}
}

func TestSplitUnderflowClampsAndWarns(t *testing.T) {
	toks := mt.Seq(
		mt.Noun("雨"), mt.Close(), mt.Period(),
		mt.Noun("晴れ"), mt.Period(),
	)
	res := Split(toks)
	if len(res.Warnings) != 1 {
		t.Fatalf("expected 1 warning, got %d", len(res.Warnings))
	}
	if w := res.Warnings[0]; w.Index != 1 || w.Surface != "」" || w.Offset != len("雨") {
		t.Errorf("unexpected warning %+v", w)
	}
	// depth clamped to zero, so the following periods still break
	if len(res.Clauses) != 2 {
		t.Fatalf("expected 2 clauses after clamp, got %d", len(res.Clauses))
	}
}

func TestSplitIsLosslessPartition(t *testing.T) {
	inputs := [][]model.Token{
		mt.Seq(mt.Noun("a"), mt.Period(), mt.Noun("b"), mt.Particle("が", model.SubConjunction), mt.Noun("c")),
		mt.Seq(mt.Open(), mt.Noun("x"), mt.Period(), mt.Close(), mt.Period()),
		mt.Seq(mt.Period(), mt.Period()),
		mt.Seq(mt.Close(), mt.Close(), mt.Noun("z")),
	}
	for i, toks := range inputs {
		res := Split(toks)
		if got := Join(res.Clauses); !reflect.DeepEqual(got, toks) {
			t.Errorf("input %d: join mismatch\n got %v\nwant %v", i, got, toks)
		}
	}
}

func TestBodyDoesNotAliasFollowingTokens(t *testing.T) {
	toks := mt.Seq(mt.Noun("a"), mt.Period(), mt.Noun("b"), mt.Period())
	res := Split(toks)
	body := append(res.Clauses[0].Body, mt.Noun("zzz"))
	_ = body
	if toks[1].Surface != "。" {
		t.Fatalf("appending to a clause body overwrote the source tokens")
	}
}
