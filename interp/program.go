package interp

// Program is the byte text of a tape-language program.
type Program []byte

// Verify checks that '[' and ']' pair off over the whole program.
// Nesting order is not verified; a program such as "][" passes here
// and fails during execution instead.
func (prog Program) Verify() (err error) {
	brackets := 0
	for _, ch := range prog {
		switch OpOf(ch) {
		case OP_OPEN:
			brackets++
		case OP_CLOSE:
			brackets--
		}
	}

	if brackets != 0 {
		err = ErrUnbalanced
	}

	return
}

// skipForward scans from just after an OP_OPEN to just past its matching
// OP_CLOSE, tracking nesting. Running out of program is an error.
func (prog Program) skipForward(from int) (past int, err error) {
	depth := 1
	for past = from; past < len(prog); past++ {
		switch OpOf(prog[past]) {
		case OP_OPEN:
			depth++
		case OP_CLOSE:
			depth--
			if depth == 0 {
				past++
				return
			}
		}
	}

	err = ErrJumpUnmatched
	return
}
