package shell

import (
	"errors"

	"github.com/ezrec/ubf/translate"
)

var f = translate.From

var (
	// Expression errors
	ErrExprMissing = errors.New(f("expression missing"))
)

// ErrExpression indicates an expression that did not evaluate to an integer.
type ErrExpression string

func (err ErrExpression) Error() string {
	return f("'%v' is not a valid expression", string(err))
}
