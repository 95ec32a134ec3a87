package interp

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/ubf/port"
	"github.com/ezrec/ubf/tape"
)

func TestInterp_Execute_Moves(t *testing.T) {
	assert := assert.New(t)

	tp, err := tape.New(3)
	assert.NoError(err)

	in := NewInterp(tp)
	err = in.Execute(Program("+++>++>+"))
	assert.NoError(err)

	assert.Equal([]byte{3, 2, 1}, tp.Cell)
	assert.Equal(2, tp.Pos())
	assert.Equal(8, in.Steps)
}

func TestInterp_Execute_Loop(t *testing.T) {
	assert := assert.New(t)

	tp, err := tape.New(3)
	assert.NoError(err)

	in := NewInterp(tp)
	err = in.Execute(Program("+[>+<-]"))
	assert.NoError(err)

	assert.Equal(byte(0), tp.ValueAt(0))
	assert.Equal(byte(1), tp.ValueAt(1))
	assert.Equal(0, tp.Pos())
}

func TestInterp_Execute_Add(t *testing.T) {
	assert := assert.New(t)

	tp, err := tape.New(3)
	assert.NoError(err)

	// Move the second cell into the first, one loop pass per unit.
	in := NewInterp(tp)
	err = in.Execute(Program("++>+++++[<+>-]<"))
	assert.NoError(err)

	assert.Equal(byte(7), tp.Value())
	assert.Equal(0, tp.Pos())
}

func TestInterp_Execute_Wraparound(t *testing.T) {
	assert := assert.New(t)

	tp, err := tape.New(3)
	assert.NoError(err)

	in := NewInterp(tp)

	// One step left of home wraps to the last cell.
	err = in.Execute(Program("<+"))
	assert.NoError(err)
	assert.Equal(2, tp.Pos())
	assert.Equal(byte(1), tp.Value())

	// Cell values wrap at the byte boundary.
	tp.Reset()
	err = in.Execute(Program("-"))
	assert.NoError(err)
	assert.Equal(byte(255), tp.Value())

	err = in.Execute(Program("+"))
	assert.NoError(err)
	assert.Equal(byte(0), tp.Value())
}

func TestInterp_Execute_Comments(t *testing.T) {
	assert := assert.New(t)

	tp, err := tape.New(3)
	assert.NoError(err)

	in := NewInterp(tp)
	err = in.Execute(Program("inc + and inc + (see?)"))
	assert.NoError(err)

	assert.Equal(byte(2), tp.Value())
	assert.Equal(2, in.Steps)
}

func TestInterp_Execute_Out(t *testing.T) {
	assert := assert.New(t)

	tp, err := tape.New(3)
	assert.NoError(err)

	in := NewInterp(tp)
	buffer := &port.Buffer{}
	in.Port = buffer

	tp.Set(65)
	err = in.Execute(Program("."))
	assert.NoError(err)

	assert.Equal([]byte{0x41}, buffer.Output)
}

func TestInterp_Execute_In(t *testing.T) {
	assert := assert.New(t)

	tp, err := tape.New(3)
	assert.NoError(err)

	in := NewInterp(tp)
	in.Port = &port.Buffer{Input: []byte{0x68, 0x69}}

	err = in.Execute(Program(",>,>+,"))
	assert.NoError(err)

	assert.Equal(byte(0x68), tp.ValueAt(0))
	assert.Equal(byte(0x69), tp.ValueAt(1))

	// The third read ran past end of input and stored EOF_BYTE over
	// the '+' the program had written.
	assert.Equal(EOF_BYTE, tp.ValueAt(2))
}

func TestInterp_Execute_Echo(t *testing.T) {
	assert := assert.New(t)

	tp, err := tape.New(tape.TAPE_DEFAULT_CAPACITY)
	assert.NoError(err)

	in := NewInterp(tp)
	buffer := &port.Buffer{Input: []byte("hello")}
	in.Port = buffer

	err = in.Execute(Program(",[.,]"))
	assert.NoError(err)

	assert.Equal([]byte("hello"), buffer.Output)
}

func TestInterp_Execute_Unbalanced(t *testing.T) {
	assert := assert.New(t)

	tp, err := tape.New(3)
	assert.NoError(err)

	in := NewInterp(tp)
	err = in.Execute(Program("+[>+<-"))
	assert.Equal(ErrUnbalanced, err)

	// Nothing ran.
	assert.Equal(byte(0), tp.Value())
	assert.Equal(0, in.Steps)
}

func TestInterp_Execute_StackEmpty(t *testing.T) {
	assert := assert.New(t)

	tp, err := tape.New(3)
	assert.NoError(err)

	in := NewInterp(tp)

	// "+][" passes verification; the ']' then peeks an empty stack.
	err = in.Execute(Program("+]["))
	assert.ErrorIs(err, ErrStackEmpty)

	var execErr *ErrExecute
	if assert.ErrorAs(err, &execErr) {
		assert.Equal(1, execErr.Pos)
		assert.Equal(OP_CLOSE, execErr.Op)
	}
}

func TestInterp_Execute_StackEmpty_Pop(t *testing.T) {
	assert := assert.New(t)

	tp, err := tape.New(3)
	assert.NoError(err)

	in := NewInterp(tp)

	// "][" passes verification; the ']' then pops an empty stack.
	err = in.Execute(Program("]["))
	assert.ErrorIs(err, ErrStackEmpty)

	var execErr *ErrExecute
	if assert.ErrorAs(err, &execErr) {
		assert.Equal(0, execErr.Pos)
		assert.Equal(OP_CLOSE, execErr.Op)
	}
}

func TestInterp_Execute_PortInvalid(t *testing.T) {
	assert := assert.New(t)

	tp, err := tape.New(3)
	assert.NoError(err)

	in := NewInterp(tp)

	err = in.Execute(Program("."))
	assert.ErrorIs(err, ErrPortInvalid)

	err = in.Execute(Program(","))
	assert.ErrorIs(err, ErrPortInvalid)
}

func TestInterp_Execute_PortFull(t *testing.T) {
	assert := assert.New(t)

	tp, err := tape.New(3)
	assert.NoError(err)

	in := NewInterp(tp)
	in.Port = &port.Buffer{Capacity: 2}

	err = in.Execute(Program("..."))
	assert.ErrorIs(err, port.ErrPortFull)

	var execErr *ErrExecute
	if assert.ErrorAs(err, &execErr) {
		assert.Equal(2, execErr.Pos)
		assert.Equal(OP_OUT, execErr.Op)
	}
}

func TestInterp_Execute_Steps(t *testing.T) {
	assert := assert.New(t)

	tp, err := tape.New(3)
	assert.NoError(err)

	// Steps accumulate across executions.
	in := NewInterp(tp)

	err = in.Execute(Program("++"))
	assert.NoError(err)
	assert.Equal(2, in.Steps)

	err = in.Execute(Program("--"))
	assert.NoError(err)
	assert.Equal(4, in.Steps)
}

func TestInterp_Defines(t *testing.T) {
	assert := assert.New(t)

	tp, err := tape.New(3)
	assert.NoError(err)

	in := NewInterp(tp)

	defines := map[string]string{}
	for key, value := range in.Defines() {
		defines[key] = value
	}

	assert.Contains(defines, "EOF_BYTE")
}
