// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package interp

import (
	"fmt"
	"iter"
	"log"
	"maps"

	"github.com/ezrec/ubf/port"
	"github.com/ezrec/ubf/tape"
)

// Port is a byte I/O device interface.
type Port port.Port

const (
	// EOF_BYTE is stored by the ',' instruction once input is exhausted.
	EOF_BYTE = byte(0)
)

var _interp_defines = map[string]string{
	"EOF_BYTE": fmt.Sprintf("0x%x", EOF_BYTE),
}

// Interp is the execution context for tape-language programs.
type Interp struct {
	Verbose bool // Set to enable instruction tracing.

	Tape *tape.Tape // Cell memory the program runs against.
	Port Port       // Byte I/O for the '.' and ',' instructions.

	Steps int // Instructions executed counter.
}

// NewInterp creates a new interpreter over a tape.
func NewInterp(tp *tape.Tape) (in *Interp) {
	in = &Interp{
		Tape: tp,
	}

	return
}

// Defines for the interpreter
func (in *Interp) Defines() iter.Seq2[string, string] {
	return maps.All(_interp_defines)
}

// Execute verifies and then runs a program against the tape.
//
// Verification failures return before any instruction has executed.
// Failures during execution are wrapped in an ErrExecute carrying the
// failing position and instruction; the tape keeps whatever state the
// program had built up to that point.
func (in *Interp) Execute(prog Program) (err error) {
	err = prog.Verify()
	if err != nil {
		return
	}

	var here int
	var op Op
	defer func() {
		if err != nil {
			err = &ErrExecute{Pos: here, Op: op, Err: err}
		}
	}()

	tp := in.Tape

	// Genuine nesting never grows past the program length.
	stack := Stack{Limit: len(prog)}

	for pc := 0; pc < len(prog); {
		here = pc
		op = OpOf(prog[pc])
		pc++

		if op == OP_NONE {
			continue
		}

		if in.Verbose {
			log.Printf("%04d: %v", here, op)
		}

		in.Steps += 1

		switch op {
		case OP_RIGHT:
			tp.MoveTo(tp.Advance(1))
		case OP_LEFT:
			tp.MoveTo(tp.Advance(-1))
		case OP_INC:
			tp.Increment()
		case OP_DEC:
			tp.Decrement()
		case OP_OUT:
			if in.Port == nil {
				err = ErrPortInvalid
				return
			}
			err = in.Port.Send(tp.Value())
			if err != nil {
				return
			}
		case OP_IN:
			if in.Port == nil {
				err = ErrPortInvalid
				return
			}
			value, ok := in.Port.Recv()
			if !ok {
				value = EOF_BYTE
			}
			tp.Set(value)
		case OP_OPEN:
			if tp.Value() != 0 {
				if stack.Full() {
					err = ErrStackFull
					return
				}
				stack.Push(pc)
			} else {
				pc, err = prog.skipForward(pc)
				if err != nil {
					return
				}
			}
		case OP_CLOSE:
			if tp.Value() != 0 {
				// Loop again; the return position stays stacked.
				top, ok := stack.Peek()
				if !ok {
					err = ErrStackEmpty
					return
				}
				pc = top
			} else {
				_, ok := stack.Pop()
				if !ok {
					err = ErrStackEmpty
					return
				}
			}
		}
	}

	return
}
