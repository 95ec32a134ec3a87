// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"io"
	"log"
	"os"

	"github.com/ezrec/ubf/shell"
	"github.com/ezrec/ubf/tape"
)

func main() {
	var file string
	var memory int
	var interactive bool
	var newline bool
	var verbose bool

	flag.StringVar(&file, "f", "", "Program file to run, '-' for standard input")
	flag.IntVar(&memory, "m", tape.TAPE_DEFAULT_CAPACITY, "Tape memory size, in cells")
	flag.BoolVar(&interactive, "i", false, "Interactive shell")
	flag.BoolVar(&newline, "n", false, "Print a newline after each program")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	if flag.NArg() > 1 {
		log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args()[1:])
	}

	program := flag.Arg(0)
	if len(program) != 0 && len(file) != 0 {
		log.Fatalf("%v: Program argument and -f are mutually exclusive", os.Args[0])
	}

	// Load a program from a file or a pipe.
	if len(file) != 0 {
		var text []byte
		var err error
		if file == "-" {
			text, err = io.ReadAll(os.Stdin)
		} else {
			text, err = os.ReadFile(file)
		}
		if err != nil {
			log.Fatalf("%v: %v", file, err)
		}
		program = string(text)
	}

	// With nothing to run, enter the shell.
	if len(program) == 0 {
		interactive = true
	}

	sh, err := shell.New(memory)
	if err != nil {
		log.Fatalf("%v: %v", os.Args[0], err)
	}

	sh.Verbose = verbose
	sh.Newline = newline
	sh.Stream.Input = os.Stdin
	sh.Stream.Output = os.Stdout

	if len(program) != 0 {
		err = sh.Run(program)
		if err != nil {
			log.Fatal(err)
		}
	}

	if interactive {
		repl(sh)
	}
}
