// Package register switches the final predicates of Japanese text between
// plain (だ/dictionary) style and polite (です/ます) style.
//
// Text is tokenized, split into clauses at sentence punctuation and at the
// adversative particle が, and every clause is rewritten independently, left
// to right. Spans inside brackets are never rewritten.
package register

import (
	"fmt"
	"strings"

	"japaneseregister/clause"
	"japaneseregister/inflect"
	"japaneseregister/model"
)

// Tokenizer turns raw text into ordered tokens covering the whole input.
type Tokenizer interface {
	Parse(text string) []model.Token
}

// Inflector converts a surface between two forms of its paradigm, failing
// with inflect.ErrUnsupportedConjugation when no rule exists.
type Inflector interface {
	Convert(surface string, p model.Paradigm, from, to model.Form) (string, error)
}

// Direction names the register a conversion produces.
type Direction string

const (
	Polite Direction = "polite"
	Plain  Direction = "plain"
)

// ParseDirection accepts "polite" or "plain".
func ParseDirection(s string) (Direction, error) {
	switch d := Direction(strings.ToLower(strings.TrimSpace(s))); d {
	case Polite, Plain:
		return d, nil
	}
	return "", fmt.Errorf("unknown direction %q (want %q or %q)", s, Polite, Plain)
}

type transformer struct {
	inf Inflector
}

// Converter bundles a tokenizer with the rule engine. It holds no mutable
// state, so one Converter may serve many goroutines.
type Converter struct {
	tok Tokenizer
	t   transformer
}

// Option configures a Converter.
type Option func(*Converter)

// WithInflector replaces the built-in IPADIC inflection tables.
func WithInflector(inf Inflector) Option {
	return func(c *Converter) { c.t.inf = inf }
}

func New(tok Tokenizer, opts ...Option) *Converter {
	c := &Converter{tok: tok, t: transformer{inf: inflect.Adapter{}}}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ToPolite rewrites text into polite register.
func ToPolite(tok Tokenizer, text string) (string, error) {
	return New(tok).Polite(text)
}

// ToPlain rewrites text into plain register.
func ToPlain(tok Tokenizer, text string) (string, error) {
	return New(tok).Plain(text)
}

func (c *Converter) Polite(text string) (string, error) {
	return c.Convert(Polite, text)
}

func (c *Converter) Plain(text string) (string, error) {
	return c.Convert(Plain, text)
}

// Convert rewrites text into the register named by dir.
func (c *Converter) Convert(dir Direction, text string) (string, error) {
	rep, err := c.Inspect(dir, text)
	if err != nil {
		return "", err
	}
	return rep.Output, nil
}

// ClauseReport describes how one clause was rewritten.
type ClauseReport struct {
	Index  int               `json:"index"`
	Type   clause.ClauseType `json:"type"`
	Input  string            `json:"input"`
	Sep    string            `json:"sep"`
	Output string            `json:"output"`
	Tokens []model.Token     `json:"tokens,omitempty"`
}

// Report is the full trace of one conversion.
type Report struct {
	Direction Direction        `json:"direction"`
	Input     string           `json:"input"`
	Output    string           `json:"output"`
	Clauses   []ClauseReport   `json:"clauses"`
	Warnings  []clause.Warning `json:"warnings,omitempty"`
}

// Inspect converts text and keeps the per-clause breakdown.
func (c *Converter) Inspect(dir Direction, text string) (Report, error) {
	rep := Report{Direction: dir, Input: text}
	if dir != Polite && dir != Plain {
		return rep, fmt.Errorf("unknown direction %q", dir)
	}

	res := clause.Split(c.tok.Parse(text))
	rep.Warnings = res.Warnings

	var out strings.Builder
	for i, cl := range res.Clauses {
		s, err := c.clause(dir, cl)
		if err != nil {
			return rep, fmt.Errorf("clause %d %q: %w", i, model.Surfaces(cl.Body), err)
		}
		out.WriteString(s)
		rep.Clauses = append(rep.Clauses, ClauseReport{
			Index:  i,
			Type:   cl.Type,
			Input:  model.Surfaces(cl.Body),
			Sep:    cl.Sep.Surface,
			Output: s,
			Tokens: cl.Tokens(),
		})
	}
	rep.Output = out.String()
	return rep, nil
}

func (c *Converter) clause(dir Direction, cl clause.Clause) (string, error) {
	cur := newCursor(cl.Body)
	if dir == Plain {
		return c.t.plain(cur, []model.Form{model.Basic}) + cl.Sep.Surface, nil
	}
	s, err := c.t.polite(cur, model.Basic)
	if err != nil {
		return "", err
	}
	return s + cl.Sep.Surface, nil
}
