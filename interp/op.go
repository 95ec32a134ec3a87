package interp

// Op is a single tape-language instruction.
type Op int

//go:generate go tool stringer -linecomment -type=Op
const (
	OP_NONE  = Op(0) // noop
	OP_RIGHT = Op(1) // >
	OP_LEFT  = Op(2) // <
	OP_INC   = Op(3) // +
	OP_DEC   = Op(4) // -
	OP_OUT   = Op(5) // .
	OP_IN    = Op(6) // ,
	OP_OPEN  = Op(7) // [
	OP_CLOSE = Op(8) // ]
)

var _op_of = map[byte]Op{
	'>': OP_RIGHT,
	'<': OP_LEFT,
	'+': OP_INC,
	'-': OP_DEC,
	'.': OP_OUT,
	',': OP_IN,
	'[': OP_OPEN,
	']': OP_CLOSE,
}

// OpOf decodes a program byte. Any byte that is not an instruction
// decodes to OP_NONE and is skipped as a comment.
func OpOf(ch byte) (op Op) {
	op = _op_of[ch]
	return
}
