// Package port provides byte I/O ports for the μBF interpreter.
// A port is the program's only window on the outside world: the ','
// instruction receives a byte from the port, and the '.' instruction
// sends one. Stream wraps host reader/writer pairs, and Buffer keeps
// everything in memory.
package port

// Port defines the interface for all interpreter I/O devices. Ports
// operate at the byte level and support sequential reading and writing.
type Port interface {
	// Rewind resets the port to its initial state.
	Rewind()
	// Recv reads a single byte. ok is false once input is exhausted.
	Recv() (value byte, ok bool)
	// Send writes a single byte.
	Send(value byte) error
}
