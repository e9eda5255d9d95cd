package inflect

import "japaneseregister/model"

// endings maps each paradigm to the suffix every form appends to the
// invariant stem. A form missing from a paradigm's row has no rule.
type endings map[model.Form]string

// godan builds a 五段 row from the five kana of its column plus the euphonic
// continuative used before た/て.
func godan(a, i, u, e, o, euphonic string) endings {
	row := endings{
		model.Basic:                 u,
		model.Negative:              a,
		model.NegativeU:             o,
		model.Continuous:            i,
		model.Conditional:           e,
		model.ImperativeE:           e,
		model.ConditionalContracted: i + "ゃ",
		model.Attributive:           u,
	}
	if euphonic != "" {
		row[model.ContinuousTa] = euphonic
	}
	return row
}

var ichidanRow = endings{
	model.Basic:                 "る",
	model.Negative:              "",
	model.NegativeU:             "よ",
	model.Continuous:            "",
	model.Conditional:           "れ",
	model.ImperativeRo:          "ろ",
	model.ImperativeYo:          "よ",
	model.ConditionalContracted: "りゃ",
	model.Attributive:           "る",
	model.AttributiveSpecial:    "ん",
}

var adjectiveRow = endings{
	model.Basic:                  "い",
	model.NegativeU:              "かろ",
	model.ContinuousTa:           "かっ",
	model.ContinuousTe:           "く",
	model.ContinuousGozai:        "う",
	model.Conditional:            "けれ",
	model.ConditionalContracted:  "けりゃ",
	model.ConditionalContracted2: "きゃ",
	model.Attributive:            "き",
	model.GaruConnection:         "",
	model.Classical:              "し",
}

var table = map[model.Paradigm]endings{
	model.GodanKaI:        godan("か", "き", "く", "け", "こ", "い"),
	model.GodanKaSoku:     godan("か", "き", "く", "け", "こ", "っ"),
	model.GodanKaSokuYuku: godan("か", "き", "く", "け", "こ", "っ"),
	model.GodanGa:         godan("が", "ぎ", "ぐ", "げ", "ご", "い"),
	model.GodanSa:         godan("さ", "し", "す", "せ", "そ", ""),
	model.GodanTa:         godan("た", "ち", "つ", "て", "と", "っ"),
	model.GodanNa:         godan("な", "に", "ぬ", "ね", "の", "ん"),
	model.GodanBa:         godan("ば", "び", "ぶ", "べ", "ぼ", "ん"),
	model.GodanMa:         godan("ま", "み", "む", "め", "も", "ん"),
	model.GodanRa:         withExtra(godan("ら", "り", "る", "れ", "ろ", "っ"), endings{model.AttributiveSpecial: "ん", model.NegativeSpecial: "ん"}),
	model.GodanRaSpecial:  withExtra(godan("ら", "り", "る", "れ", "ろ", "っ"), endings{model.ImperativeI: "い"}),
	model.GodanRaAru:      godan("ら", "り", "る", "れ", "ろ", "っ"),
	model.GodanWaSoku:     godan("わ", "い", "う", "え", "お", "っ"),
	model.GodanWaU:        godan("わ", "い", "う", "え", "お", "う"),

	model.Ichidan:       ichidanRow,
	model.IchidanKureru: withExtra(ichidanRow, endings{model.ImperativeE: ""}),
	model.IchidanEru:    ichidanRow,
	// 一段・ル has no known rule set.

	model.KahenKuru: {
		model.Basic:                 "くる",
		model.Negative:              "こ",
		model.NegativeU:             "こよ",
		model.Continuous:            "き",
		model.Conditional:           "くれ",
		model.ConditionalContracted: "くりゃ",
		model.ImperativeI:           "こい",
		model.ImperativeYo:          "こよ",
		model.Attributive:           "くる",
		model.AttributiveSpecial:    "くん",
	},
	model.KahenKuruKanji: {
		model.Basic:        "る",
		model.Negative:     "",
		model.NegativeU:    "よ",
		model.Continuous:   "",
		model.Conditional:  "れ",
		model.ImperativeI:  "い",
		model.ImperativeYo: "よ",
		model.Attributive:  "る",
	},

	model.SahenSuru: {
		model.Basic:                 "する",
		model.Negative:              "し",
		model.NegativeU:             "しよ",
		model.NegativeNu:            "せ",
		model.NegativeReru:          "さ",
		model.Continuous:            "し",
		model.Conditional:           "すれ",
		model.ConditionalContracted: "すりゃ",
		model.ImperativeRo:          "しろ",
		model.ImperativeYo:          "せよ",
		model.Attributive:           "する",
		model.AttributiveSpecial:    "すん",
		model.Classical:             "す",
	},
	model.SahenSuruConnected: {
		model.Basic:                 "する",
		model.Negative:              "し",
		model.NegativeU:             "しよ",
		model.NegativeNu:            "せ",
		model.NegativeReru:          "さ",
		model.Continuous:            "し",
		model.Conditional:           "すれ",
		model.ConditionalContracted: "すりゃ",
		model.ImperativeRo:          "しろ",
		model.ImperativeYo:          "せよ",
		model.Attributive:           "する",
		model.Classical:             "す",
	},
	model.SahenZuruConnected: {
		model.Basic:        "ずる",
		model.Negative:     "ぜ",
		model.NegativeU:    "ぜよ",
		model.Continuous:   "じ",
		model.Conditional:  "ずれ",
		model.ImperativeYo: "ぜよ",
		model.Attributive:  "ずる",
		model.Classical:    "ず",
	},

	model.AdjectiveAUO: adjectiveRow,
	model.AdjectiveI:   adjectiveRow,
	model.AdjectiveIi: {
		model.Basic:        "いい",
		model.NegativeU:    "よかろ",
		model.ContinuousTa: "よかっ",
		model.ContinuousTe: "よく",
		model.Conditional:  "よけれ",
		model.Attributive:  "いい",
	},

	model.SpecialDa: {
		model.Basic:        "だ",
		model.Negative:     "だろ",
		model.Continuous:   "で",
		model.ContinuousTa: "だっ",
		model.Conditional:  "なら",
		model.Attributive:  "な",
	},
	model.SpecialDesu: {
		model.Basic:      "です",
		model.Negative:   "でしょ",
		model.Continuous: "でし",
	},
	model.SpecialMasu: {
		model.Basic:       "ます",
		model.Negative:    "ませ",
		model.NegativeU:   "ましょ",
		model.Continuous:  "まし",
		model.Conditional: "ますれ",
		model.ImperativeE: "ませ",
		model.ImperativeI: "まし",
	},
	model.SpecialTa: {
		model.Basic:       "た",
		model.Negative:    "たろ",
		model.Conditional: "たら",
	},
	model.SpecialNai: {
		model.Basic:                 "ない",
		model.NegativeU:             "なかろ",
		model.ContinuousTa:          "なかっ",
		model.ContinuousTe:          "なく",
		model.ContinuousDe:          "ない",
		model.Conditional:           "なけれ",
		model.ConditionalContracted: "なきゃ",
		model.Attributive:           "ない",
		model.GaruConnection:        "な",
	},
	model.SpecialTai: {
		model.Basic:                 "たい",
		model.NegativeU:             "たかろ",
		model.ContinuousTa:          "たかっ",
		model.ContinuousTe:          "たく",
		model.ContinuousDe:          "たく",
		model.ContinuousGozai:       "とう",
		model.Conditional:           "たけれ",
		model.ConditionalContracted: "たきゃ",
		model.Attributive:           "たい",
		model.GaruConnection:        "た",
	},
	model.SpecialNu: {
		model.Basic:       "ぬ",
		model.Continuous:  "ず",
		model.Conditional: "ね",
		model.Attributive: "ぬ",
	},
	model.SpecialJa: {
		model.Basic: "じゃ",
	},
	model.Invariant: {
		model.Basic: "",
	},
}

func withExtra(base, extra endings) endings {
	row := make(endings, len(base)+len(extra))
	for f, s := range base {
		row[f] = s
	}
	for f, s := range extra {
		row[f] = s
	}
	return row
}
