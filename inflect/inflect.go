// Package inflect converts a word's surface between inflection forms of its
// IPADIC paradigm. It is a pure table lookup and holds no state.
package inflect

import (
	"errors"
	"fmt"
	"strings"

	"japaneseregister/model"
)

// ErrUnsupportedConjugation is returned when no rule exists for a
// (paradigm, from, to) triple or the surface does not carry the expected ending.
var ErrUnsupportedConjugation = errors.New("unsupported conjugation")

// UnsupportedConjugationError records the conversion that could not be made.
type UnsupportedConjugationError struct {
	Surface  string
	Paradigm model.Paradigm
	From     model.Form
	To       model.Form
}

func (e *UnsupportedConjugationError) Error() string {
	return fmt.Sprintf("unsupported conjugation: %q (%s) %s -> %s", e.Surface, e.Paradigm, e.From, e.To)
}

func (e *UnsupportedConjugationError) Unwrap() error {
	return ErrUnsupportedConjugation
}

// Convert rewrites surface, which is in form from of paradigm p, into form to.
func Convert(surface string, p model.Paradigm, from, to model.Form) (string, error) {
	fail := &UnsupportedConjugationError{Surface: surface, Paradigm: p, From: from, To: to}

	row, ok := table[p]
	if !ok {
		return "", fail
	}
	fromEnding, ok := row[from]
	if !ok {
		return "", fail
	}
	toEnding, ok := row[to]
	if !ok {
		return "", fail
	}
	if !strings.HasSuffix(surface, fromEnding) {
		return "", fail
	}
	stem := surface[:len(surface)-len(fromEnding)]
	return stem + toEnding, nil
}

// Adapter exposes the package functions as a value so callers can depend
// on an interface and substitute their own tables.
type Adapter struct{}

func (Adapter) Convert(surface string, p model.Paradigm, from, to model.Form) (string, error) {
	return Convert(surface, p, from, to)
}
