package register

import (
	"errors"
	"fmt"

	"japaneseregister/model"
)

// ErrUnsupportedCopulaPairing means the copula table has no entry for the
// requested (lemma, slot). It signals an incomplete rule table and aborts
// the conversion.
var ErrUnsupportedCopulaPairing = errors.New("unsupported copula pairing")

type CopulaPairingError struct {
	Lemma string
	Slot  model.Form
}

func (e *CopulaPairingError) Error() string {
	return fmt.Sprintf("unsupported copula pairing: (%s, %s)", e.Lemma, e.Slot)
}

func (e *CopulaPairingError) Unwrap() error {
	return ErrUnsupportedCopulaPairing
}
