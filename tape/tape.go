// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package tape

import (
	"iter"
)

const (
	// TAPE_DEFAULT_CAPACITY is the default number of cells for a new tape.
	TAPE_DEFAULT_CAPACITY = 4096
)

// Tape is a fixed-size circular array of byte cells with a single cursor.
// The cursor is always on a valid cell; movement off either end wraps to
// the other.
type Tape struct {
	Cell []byte

	pos int
}

// New creates a zeroed tape of capacity cells, with the cursor on cell 0.
func New(capacity int) (tp *Tape, err error) {
	if capacity < 1 {
		err = ErrTapeSize
		return
	}

	tp = &Tape{
		Cell: make([]byte, capacity),
	}

	return
}

// Size returns the number of cells on the tape.
func (tp *Tape) Size() (size int) {
	size = len(tp.Cell)
	return
}

// Pos returns the cursor position.
func (tp *Tape) Pos() (pos int) {
	pos = tp.pos
	return
}

// Reset zeroes every cell and returns the cursor to cell 0.
func (tp *Tape) Reset() {
	clear(tp.Cell)
	tp.pos = 0
}

// norm maps any position onto the tape.
func (tp *Tape) norm(pos int) (cell int) {
	size := len(tp.Cell)
	cell = pos % size
	if cell < 0 {
		cell += size
	}
	return
}

// Advance computes the position delta cells away from the cursor, wrapping
// in either direction. The cursor does not move; commit with MoveTo.
func (tp *Tape) Advance(delta int) (pos int) {
	pos = tp.norm(tp.pos + delta%len(tp.Cell))
	return
}

// MoveTo places the cursor on a cell. Out-of-range positions wrap.
func (tp *Tape) MoveTo(pos int) {
	tp.pos = tp.norm(pos)
}

// Value returns the value of the cell under the cursor.
func (tp *Tape) Value() (value byte) {
	value = tp.Cell[tp.pos]
	return
}

// ValueAt returns the value of the cell at a position. Out-of-range
// positions wrap.
func (tp *Tape) ValueAt(pos int) (value byte) {
	value = tp.Cell[tp.norm(pos)]
	return
}

// Set replaces the value of the cell under the cursor.
func (tp *Tape) Set(value byte) {
	tp.Cell[tp.pos] = value
}

// Increment adds one to the cell under the cursor. 255 wraps to 0.
func (tp *Tape) Increment() {
	tp.Cell[tp.pos]++
}

// Decrement subtracts one from the cell under the cursor. 0 wraps to 255.
func (tp *Tape) Decrement() {
	tp.Cell[tp.pos]--
}

// Window returns an iterator over width cells centered on the cursor,
// yielding each cell's position and value.
func (tp *Tape) Window(width int) iter.Seq2[int, byte] {
	return func(yield func(pos int, value byte) bool) {
		for n := range width {
			pos := tp.Advance(n - width/2)
			if !yield(pos, tp.Cell[pos]) {
				return
			}
		}
	}
}
