package shell

import (
	"fmt"
	"strconv"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// eval does expression command evaluations. Expressions are Starlark,
// with the component defines and the live machine state (ptr, cell,
// size, steps) predefined.
func (sh *Shell) eval(expr string) (value int64, err error) {
	thread := starlark.Thread{}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{}
	for key, str := range sh.Defines() {
		v64, _err := strconv.ParseInt(str, 0, 64)
		if _err != nil {
			// Ignore non-integer defines.
			continue
		}
		pred[key] = starlark.MakeInt64(v64)
	}
	pred["ptr"] = starlark.MakeInt(sh.Tape.Pos())
	pred["cell"] = starlark.MakeInt(int(sh.Tape.Value()))
	pred["size"] = starlark.MakeInt(sh.Tape.Size())
	pred["steps"] = starlark.MakeInt(sh.Interp.Steps)

	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
		return
	}
	st_rc, ok := dict["rc"]
	if !ok {
		err = ErrExpression(expr)
		return
	}
	st_int, ok := st_rc.(starlark.Int)
	if !ok {
		err = ErrExpression(expr)
		return
	}
	st_int64, ok := st_int.Int64()
	if !ok {
		err = ErrExpression(expr)
		return
	}
	value = st_int64
	return
}

// exprCommand applies an expression command to the session:
//
//	'e' prints the expression's value,
//	'p' pokes its low byte into the current cell,
//	'g' moves the cursor by it, wrapping in either direction.
func (sh *Shell) exprCommand(cmd byte, expr string) (err error) {
	expr = strings.TrimSpace(expr)
	if len(expr) == 0 {
		err = ErrExprMissing
		return
	}

	value, err := sh.eval(expr)
	if err != nil {
		return
	}

	switch cmd {
	case 'e':
		fmt.Fprintf(sh.Output, "%d (0x%x)\n", value, value)
	case 'p':
		sh.Tape.Set(byte(value))
	case 'g':
		sh.Tape.MoveTo(sh.Tape.Advance(int(value)))
	}

	return
}
