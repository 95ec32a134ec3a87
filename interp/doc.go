// Package interp implements the byte-tape language interpreter for the
// μBF system.
//
// A program is a stream of bytes. Eight bytes are instructions ('>', '<',
// '+', '-', '.', ',', '[' and ']'); every other byte is a comment. The
// interpreter executes a program against a circular tape of byte cells
// (tape.Tape) and a byte I/O port (port.Port), using a jump stack to
// implement the '[' and ']' loop instructions.
//
// Programs are verified before execution. Verification is permissive,
// checking only that '[' and ']' pair off over the whole program; a
// misordered pairing such as "][" passes verification and surfaces as an
// execution error instead.
package interp
