package model

import (
	"encoding/json"
	"strings"
)

// Paradigm is an inflection class (活用型) as named by the IPADIC dictionary.
type Paradigm int

const (
	ParadigmNone Paradigm = iota

	GodanKaI        // 五段・カ行イ音便
	GodanKaSoku     // 五段・カ行促音便
	GodanKaSokuYuku // 五段・カ行促音便ユク
	GodanGa         // 五段・ガ行
	GodanSa         // 五段・サ行
	GodanTa         // 五段・タ行
	GodanNa         // 五段・ナ行
	GodanBa         // 五段・バ行
	GodanMa         // 五段・マ行
	GodanRa         // 五段・ラ行
	GodanRaSpecial  // 五段・ラ行特殊
	GodanRaAru      // 五段・ラ行アル
	GodanWaSoku     // 五段・ワ行促音便
	GodanWaU        // 五段・ワ行ウ音便

	Ichidan       // 一段
	IchidanKureru // 一段・クレル
	IchidanEru    // 一段・得ル
	IchidanRu     // 一段・ル

	KahenKuru      // カ変・クル
	KahenKuruKanji // カ変・来ル

	SahenSuru          // サ変・スル
	SahenSuruConnected // サ変・−スル
	SahenZuruConnected // サ変・−ズル

	AdjectiveAUO // 形容詞・アウオ段
	AdjectiveI   // 形容詞・イ段
	AdjectiveIi  // 形容詞・イイ

	SpecialDa   // 特殊・ダ
	SpecialDesu // 特殊・デス
	SpecialMasu // 特殊・マス
	SpecialTa   // 特殊・タ
	SpecialNai  // 特殊・ナイ
	SpecialTai  // 特殊・タイ
	SpecialNu   // 特殊・ヌ
	SpecialJa   // 特殊・ジャ

	Invariant // 不変化型
)

var paradigmNames = map[Paradigm]string{
	GodanKaI:           "五段・カ行イ音便",
	GodanKaSoku:        "五段・カ行促音便",
	GodanKaSokuYuku:    "五段・カ行促音便ユク",
	GodanGa:            "五段・ガ行",
	GodanSa:            "五段・サ行",
	GodanTa:            "五段・タ行",
	GodanNa:            "五段・ナ行",
	GodanBa:            "五段・バ行",
	GodanMa:            "五段・マ行",
	GodanRa:            "五段・ラ行",
	GodanRaSpecial:     "五段・ラ行特殊",
	GodanRaAru:         "五段・ラ行アル",
	GodanWaSoku:        "五段・ワ行促音便",
	GodanWaU:           "五段・ワ行ウ音便",
	Ichidan:            "一段",
	IchidanKureru:      "一段・クレル",
	IchidanEru:         "一段・得ル",
	IchidanRu:          "一段・ル",
	KahenKuru:          "カ変・クル",
	KahenKuruKanji:     "カ変・来ル",
	SahenSuru:          "サ変・スル",
	SahenSuruConnected: "サ変・−スル",
	SahenZuruConnected: "サ変・−ズル",
	AdjectiveAUO:       "形容詞・アウオ段",
	AdjectiveI:         "形容詞・イ段",
	AdjectiveIi:        "形容詞・イイ",
	SpecialDa:          "特殊・ダ",
	SpecialDesu:        "特殊・デス",
	SpecialMasu:        "特殊・マス",
	SpecialTa:          "特殊・タ",
	SpecialNai:         "特殊・ナイ",
	SpecialTai:         "特殊・タイ",
	SpecialNu:          "特殊・ヌ",
	SpecialJa:          "特殊・ジャ",
	Invariant:          "不変化型",
}

var paradigmByName = func() map[string]Paradigm {
	m := make(map[string]Paradigm, len(paradigmNames))
	for p, name := range paradigmNames {
		m[name] = p
	}
	return m
}()

// dashReplacer folds the dash variants seen in サ変・−スル across dictionary builds.
var dashReplacer = strings.NewReplacer("－", "−", "-", "−", "ー", "−")

// ParseParadigm maps an IPADIC 活用型 string to a Paradigm. Unknown names and
// "*" yield ParadigmNone.
func ParseParadigm(s string) Paradigm {
	if p, ok := paradigmByName[s]; ok {
		return p
	}
	if p, ok := paradigmByName[dashReplacer.Replace(s)]; ok {
		return p
	}
	return ParadigmNone
}

func (p Paradigm) String() string {
	if name, ok := paradigmNames[p]; ok {
		return name
	}
	return "*"
}

func (p Paradigm) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.String())
}

// Form is a grammatical inflection slot (活用形).
type Form int

const (
	FormNone Form = iota
	Basic                  // 基本形
	Negative               // 未然形
	NegativeU              // 未然ウ接続
	NegativeNu             // 未然ヌ接続
	NegativeReru           // 未然レル接続
	NegativeSpecial        // 未然特殊
	Continuous             // 連用形
	ContinuousTa           // 連用タ接続
	ContinuousTe           // 連用テ接続
	ContinuousDe           // 連用デ接続
	ContinuousGozai        // 連用ゴザイ接続
	ContinuousNi           // 連用ニ接続
	Conditional            // 仮定形
	ConditionalContracted  // 仮定縮約１
	ConditionalContracted2 // 仮定縮約２
	ImperativeE            // 命令ｅ
	ImperativeRo           // 命令ｒｏ
	ImperativeYo           // 命令ｙｏ
	ImperativeI            // 命令ｉ
	Attributive            // 体言接続
	AttributiveSpecial     // 体言接続特殊
	AttributiveSpecial2    // 体言接続特殊２
	Euphonic               // 音便基本形
	GaruConnection         // ガル接続
	Classical              // 文語基本形
	Modern                 // 現代基本形
)

var formNames = map[Form]string{
	Basic:                  "基本形",
	Negative:               "未然形",
	NegativeU:              "未然ウ接続",
	NegativeNu:             "未然ヌ接続",
	NegativeReru:           "未然レル接続",
	NegativeSpecial:        "未然特殊",
	Continuous:             "連用形",
	ContinuousTa:           "連用タ接続",
	ContinuousTe:           "連用テ接続",
	ContinuousDe:           "連用デ接続",
	ContinuousGozai:        "連用ゴザイ接続",
	ContinuousNi:           "連用ニ接続",
	Conditional:            "仮定形",
	ConditionalContracted:  "仮定縮約１",
	ConditionalContracted2: "仮定縮約２",
	ImperativeE:            "命令ｅ",
	ImperativeRo:           "命令ｒｏ",
	ImperativeYo:           "命令ｙｏ",
	ImperativeI:            "命令ｉ",
	Attributive:            "体言接続",
	AttributiveSpecial:     "体言接続特殊",
	AttributiveSpecial2:    "体言接続特殊２",
	Euphonic:               "音便基本形",
	GaruConnection:         "ガル接続",
	Classical:              "文語基本形",
	Modern:                 "現代基本形",
}

var formByName = func() map[string]Form {
	m := make(map[string]Form, len(formNames))
	for f, name := range formNames {
		m[name] = f
	}
	return m
}()

// ParseForm maps an IPADIC 活用形 string to a Form; unknown names yield FormNone.
func ParseForm(s string) Form {
	return formByName[s]
}

func (f Form) String() string {
	if name, ok := formNames[f]; ok {
		return name
	}
	return "*"
}

func (f Form) MarshalJSON() ([]byte, error) {
	return json.Marshal(f.String())
}
