package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/chzyer/readline"

	"github.com/ezrec/ubf/shell"
)

// repl reads and evaluates lines until quit or end of input.
func repl(sh *shell.Shell) {
	var historyFile string
	if home, err := os.UserHomeDir(); err == nil {
		historyFile = filepath.Join(home, ".ubf_history")
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:      shell.PROMPT,
		HistoryFile: historyFile,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if err != nil { // Ctrl-C or Ctrl-D
			break
		}

		quit, err := sh.Eval(line)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			continue
		}
		if quit {
			break
		}
	}
}
