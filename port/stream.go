package port

import (
	"io"
)

// Stream provides sequential byte I/O over an io.Reader and io.Writer,
// typically the host's standard input and output.
type Stream struct {
	Input  io.Reader
	Output io.Writer
}

var _ Port = (*Stream)(nil)

// Rewind is not possible on a stream.
func (st *Stream) Rewind() {
}

// Recv reads a byte from the input stream. A nil input, a read failure,
// and the end of the stream all report input as exhausted.
func (st *Stream) Recv() (value byte, ok bool) {
	if st.Input == nil {
		return
	}

	var one [1]byte
	if _, err := io.ReadFull(st.Input, one[:]); err != nil {
		return
	}

	value = one[0]
	ok = true

	return
}

// Send writes a byte to the output stream.
// Returns ErrPortClosed if the stream has no output.
func (st *Stream) Send(value byte) (err error) {
	if st.Output == nil {
		err = ErrPortClosed
		return
	}

	_, err = st.Output.Write([]byte{value})

	return
}
