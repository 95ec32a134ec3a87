// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package shell

import (
	"fmt"
	"io"
	"iter"
	"maps"
	"os"
	"strings"
	"unicode"

	"github.com/ezrec/ubf/internal"
	"github.com/ezrec/ubf/interp"
	"github.com/ezrec/ubf/port"
	"github.com/ezrec/ubf/tape"
)

const (
	// PROMPT is the interactive shell prompt.
	PROMPT = "bf> "
	// COMMAND_PREFIX starts a host command line.
	COMMAND_PREFIX = '$'
	// WINDOW_SIZE is the number of cells shown by the 'w' command.
	WINDOW_SIZE = 5
)

var _shell_defines = map[string]string{
	"WINDOW_SIZE": fmt.Sprintf("%v", WINDOW_SIZE),
}

// Shell is a persistent interactive session: one tape, one interpreter,
// and the host command surface for inspecting them. Code evaluated by
// the shell accumulates state on the session tape until it is reset.
type Shell struct {
	Verbose bool // Set to enable instruction tracing.

	Tape   *tape.Tape     // Session memory, shared across inputs.
	Interp *interp.Interp // Interpreter bound to the session tape.
	Stream port.Stream    // Byte I/O port for the '.' and ',' instructions.

	Output  io.Writer // Host command output destination.
	Newline bool      // Print a newline after each code input.
}

// New creates a shell session with a tape of capacity cells.
// The session's Stream port has no host streams attached until the
// caller provides them.
func New(capacity int) (sh *Shell, err error) {
	tp, err := tape.New(capacity)
	if err != nil {
		return
	}

	sh = &Shell{
		Tape:   tp,
		Interp: interp.NewInterp(tp),
		Output: os.Stdout,
	}

	sh.Interp.Port = &sh.Stream

	return
}

// Defines returns an iterator over all of the defines
func (sh *Shell) Defines() iter.Seq2[string, string] {
	return internal.IterSeq2Concat(maps.All(_shell_defines),
		sh.Interp.Defines(),
	)
}

// Reset zeroes the session memory and homes the cursor.
func (sh *Shell) Reset() {
	sh.Tape.Reset()
}

// Eval evaluates one line of input: host commands if the line starts
// with COMMAND_PREFIX, tape-language code otherwise. quit reports that
// the session should end.
func (sh *Shell) Eval(line string) (quit bool, err error) {
	line = strings.TrimSpace(line)
	if len(line) == 0 {
		return
	}

	if line[0] == COMMAND_PREFIX {
		return sh.Command(line[1:])
	}

	err = sh.Run(line)

	return
}

// Run executes a line of code against the session tape.
func (sh *Shell) Run(text string) (err error) {
	sh.Interp.Verbose = sh.Verbose

	err = sh.Interp.Execute(interp.Program(text))
	if err != nil {
		return
	}

	if sh.Newline {
		fmt.Fprintln(sh.Output)
	}

	return
}

// Command executes host commands. Single-letter commands chain on one
// line ("$ld" prints the pointer, then the cell); the expression
// commands consume the rest of the line. An unknown command is reported
// and the rest of the line still runs.
func (sh *Shell) Command(cmds string) (quit bool, err error) {
	for n := 0; n < len(cmds); n++ {
		cmd := cmds[n]
		if unicode.IsSpace(rune(cmd)) {
			continue
		}

		switch cmd {
		case 'q':
			quit = true
			return
		case 'h':
			sh.help()
		case 'l':
			fmt.Fprintln(sh.Output, sh.Tape.Pos())
		case 'x':
			fmt.Fprintf(sh.Output, "0x%.2x\n", sh.Tape.Value())
		case 'd':
			fmt.Fprintf(sh.Output, "%d\n", sh.Tape.Value())
		case 'w':
			sh.window()
		case 'n':
			sh.Newline = !sh.Newline
			if sh.Newline {
				fmt.Fprintln(sh.Output, "Newlines: on")
			} else {
				fmt.Fprintln(sh.Output, "Newlines: off")
			}
		case 'r':
			sh.Reset()
			fmt.Fprintln(sh.Output, "Memory zeroed")
		case 'e', 'p', 'g':
			// The rest of the line is the expression.
			err = sh.exprCommand(cmd, cmds[n+1:])
			return
		default:
			fmt.Fprintf(sh.Output, "Unknown command: %c\n", cmd)
		}
	}

	return
}

// window prints WINDOW_SIZE cells centered on the cursor, one line of
// values over one line of positions.
func (sh *Shell) window() {
	var vals strings.Builder
	var ptrs strings.Builder

	for pos, value := range sh.Tape.Window(WINDOW_SIZE) {
		fmt.Fprintf(&vals, " 0x%.2x ", value)
		fmt.Fprintf(&ptrs, " %-4d ", pos%10000)
	}

	fmt.Fprintf(sh.Output, "val: \t%v\n", vals.String())
	fmt.Fprintf(sh.Output, "ptr: \t%v\n", ptrs.String())
}

func (sh *Shell) help() {
	help := []string{
		"Interactive/REPL shell:",
		"  Evaluates brainfuck code",
		"  Start input with '$' to input non-brainfuck commands",
		"",
		"Commands:",
		"  h\tHelp (this message)",
		"  q\tExit",
		"  l\tPrint pointer location",
		"  x\tPrint current cell value in hex",
		"  d\tPrint current cell value in decimal",
		"  w\tPrint window",
		"  n\tToggle newlines (after code is executed)",
		"  r\tReset (zero) memory and return pointer to 0",
		"  e EXPR\tEvaluate an expression and print the result",
		"  p EXPR\tPoke the low byte of an expression into the current cell",
		"  g EXPR\tMove the pointer by an expression's offset",
	}

	for _, line := range help {
		fmt.Fprintln(sh.Output, line)
	}
}
