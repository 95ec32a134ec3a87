package tape

import (
	"errors"

	"github.com/ezrec/ubf/translate"
)

var f = translate.From

var (
	// Tape errors
	ErrTapeSize = errors.New(f("tape size invalid"))
)
