package tokenize

import (
	"log"
	"strings"

	"github.com/ikawaha/kagome-dict/ipa"
	"github.com/ikawaha/kagome/v2/tokenizer"
	"golang.org/x/text/unicode/norm"

	"japaneseregister/model"
)

// Token represents a token / morpheme produced by the tokenizer.
type Token = model.Token

// Tokenizer turns raw Japanese text into classified tokens using kagome with
// the IPADIC dictionary. A Tokenizer is safe for concurrent use.
type Tokenizer struct {
	kg        *tokenizer.Tokenizer
	normalize bool
}

// Option configures a Tokenizer.
type Option func(*Tokenizer)

// WithNormalize toggles NFC normalization of the input before analysis. It is
// off by default: normalized surfaces and offsets no longer match the source.
func WithNormalize(on bool) Option {
	return func(t *Tokenizer) { t.normalize = on }
}

// New builds a tokenizer on the IPADIC dictionary, omitting BOS/EOS markers.
func New(opts ...Option) (*Tokenizer, error) {
	kg, err := tokenizer.New(ipa.Dict(), tokenizer.OmitBosEos())
	if err != nil {
		return nil, err
	}
	t := &Tokenizer{kg: kg}
	for _, opt := range opts {
		opt(t)
	}
	return t, nil
}

// Parse returns the tokens covering text in original order. Token Start and
// End are byte offsets into text.
func (t *Tokenizer) Parse(text string) []Token {
	if text == "" {
		return nil
	}
	if t.normalize {
		text = norm.NFC.String(text)
	}
	return convertKagomeTokens(t.kg.Tokenize(text))
}

func convertKagomeTokens(ktoks []tokenizer.Token) []Token {
	out := make([]Token, 0, len(ktoks))
	for _, kt := range ktoks {
		if kt.Class == tokenizer.DUMMY {
			continue
		}
		features := kt.Features()
		lemma, _ := kt.BaseForm()
		if lemma == "" || lemma == "*" {
			lemma = kt.Surface
		}
		reading, okR := kt.Reading()
		if !okR {
			reading = ""
		}
		pron, okP := kt.Pronunciation()
		if !okP {
			pron = ""
		}
		infType, infForm := "", ""
		if len(features) > 5 {
			infType = features[4]
			infForm = features[5]
		}
		out = append(out, Token{
			Surface:       kt.Surface,
			Lemma:         lemma,
			Class:         classify(features),
			Inflection:    model.Inflection{Paradigm: model.ParseParadigm(infType), Form: model.ParseForm(infForm)},
			Reading:       reading,
			Pronunciation: pron,
			Start:         kt.Position,
			End:           kt.Position + len(kt.Surface),
		})
		if kt.Class == tokenizer.UNKNOWN {
			log.Printf("[tokenize] unknown word %q at byte %d classified as %s", kt.Surface, kt.Position, strings.Join(kt.POS(), ","))
		}
	}
	return out
}
