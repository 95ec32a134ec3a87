package interp

import (
	"errors"

	"github.com/ezrec/ubf/translate"
)

var f = translate.From

var (
	// Verification errors
	ErrUnbalanced = errors.New(f("unbalanced brackets"))

	// Execution errors
	ErrJumpUnmatched = errors.New(f("jump unmatched"))
	ErrStackEmpty    = errors.New(f("jump stack empty"))
	ErrStackFull     = errors.New(f("jump stack full"))
	ErrPortInvalid   = errors.New(f("port invalid"))
)

// ErrExecute indicates the location of an execution error.
type ErrExecute struct {
	Pos int
	Op  Op
	Err error
}

func (err *ErrExecute) Error() string {
	return f("pc %d '%v' %v", err.Pos, err.Op, err.Err)
}

func (err *ErrExecute) Unwrap() error {
	return err.Err
}
