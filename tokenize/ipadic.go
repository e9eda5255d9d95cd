package tokenize

import "japaneseregister/model"

var kinds = map[string]model.Kind{
	"名詞":   model.KindNoun,
	"動詞":   model.KindVerb,
	"形容詞":  model.KindAdjective,
	"助動詞":  model.KindAuxiliaryVerb,
	"助詞":   model.KindPostpositional,
	"記号":   model.KindSymbol,
	"副詞":   model.KindAdverb,
	"連体詞":  model.KindAdnominal,
	"接続詞":  model.KindConjunction,
	"感動詞":  model.KindInterjection,
	"接頭詞":  model.KindPrefix,
	"フィラー": model.KindFiller,
}

var subs = map[model.Kind]map[string]model.Sub{
	model.KindNoun: {
		"一般":     model.SubGeneral,
		"固有名詞":   model.SubProper,
		"代名詞":    model.SubPronoun,
		"数":      model.SubNumber,
		"非自立":    model.SubDependent,
		"接尾":     model.SubSuffix,
		"サ変接続":   model.SubSahenConnection,
		"形容動詞語幹": model.SubAdjectivalStem,
		"副詞可能":   model.SubAdverbialPossible,
	},
	model.KindVerb: {
		"自立":  model.SubIndependent,
		"非自立": model.SubDependent,
		"接尾":  model.SubSuffix,
	},
	model.KindAdjective: {
		"自立":  model.SubIndependent,
		"非自立": model.SubDependent,
		"接尾":  model.SubSuffix,
	},
	model.KindPostpositional: {
		"格助詞":          model.SubCase,
		"係助詞":          model.SubBinding,
		"副助詞":          model.SubAdverbial,
		"接続助詞":         model.SubConjunction,
		"終助詞":          model.SubEnd,
		"副助詞／並立助詞／終助詞": model.SubSupplementaryParallelEnd,
		"並立助詞":         model.SubParallel,
		"連体化":          model.SubAdnominalization,
		"副詞化":          model.SubAdverbialization,
		"特殊":           model.SubSpecial,
	},
	model.KindSymbol: {
		"一般":     model.SubGeneral,
		"句点":     model.SubPeriod,
		"読点":     model.SubComma,
		"括弧開":    model.SubOpenParen,
		"括弧閉":    model.SubCloseParen,
		"空白":     model.SubSpace,
		"アルファベット": model.SubAlphabet,
	},
}

// classify maps the IPADIC part-of-speech features (品詞, 品詞細分類1) to a
// WordClass. Missing or unknown tags fall back to KindOther / SubNone.
func classify(features []string) model.WordClass {
	if len(features) == 0 {
		return model.WordClass{}
	}
	kind, ok := kinds[features[0]]
	if !ok {
		return model.WordClass{}
	}
	wc := model.WordClass{Kind: kind}
	if len(features) > 1 {
		wc.Sub = subs[kind][features[1]]
	}
	return wc
}
