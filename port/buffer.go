package port

// Buffer is an in-memory port. Input is consumed from the front, and
// sent bytes are collected in Output. A Capacity above zero limits how
// many bytes Output will hold.
type Buffer struct {
	Input    []byte
	Output   []byte
	Capacity int

	ReadIndex int
}

var _ Port = (*Buffer)(nil)

// Rewind restarts the input and drops any collected output.
func (bf *Buffer) Rewind() {
	bf.ReadIndex = 0
	bf.Output = bf.Output[:0]
}

// Recv reads the next input byte.
func (bf *Buffer) Recv() (value byte, ok bool) {
	if bf.ReadIndex >= len(bf.Input) {
		return
	}

	value = bf.Input[bf.ReadIndex]
	bf.ReadIndex++
	ok = true

	return
}

// Send appends a byte to the output.
// Returns ErrPortFull if the output has reached capacity.
func (bf *Buffer) Send(value byte) (err error) {
	if bf.Capacity > 0 && len(bf.Output) >= bf.Capacity {
		err = ErrPortFull
		return
	}

	bf.Output = append(bf.Output, value)

	return
}
