package port

import (
	"errors"

	"github.com/ezrec/ubf/translate"
)

var f = translate.From

var (
	// Port errors
	ErrPortFull   = errors.New(f("port full"))
	ErrPortClosed = errors.New(f("port closed"))
)
