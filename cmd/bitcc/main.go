package main

import (
	"fmt"
	"os"
	"time"

	"bitc/pkg/compiler"
	"bitc/pkg/utils"
)

const maxPathLen = 64

const usage = "Usage: bitcc <file> -o <output> [-O] [-v]"

// args holds the validated command line.
type args struct {
	inPath   string
	outPath  string
	optimize bool
	verbose  bool
}

// parseArgs validates the command line, writing to stderr on failure.
func parseArgs(argv []string) (*args, bool) {
	a := &args{}
	for i := 1; i < len(argv); i++ {
		switch argv[i] {
		case "-o":
			if i+1 >= len(argv) {
				fmt.Fprintln(os.Stderr, usage)
				return nil, false
			}
			i++
			a.outPath = argv[i]
		case "-O":
			a.optimize = true
		case "-v":
			a.verbose = true
		default:
			if a.inPath != "" {
				fmt.Fprintln(os.Stderr, usage)
				return nil, false
			}
			a.inPath = argv[i]
		}
	}

	if a.inPath == "" || a.outPath == "" {
		fmt.Fprintln(os.Stderr, usage)
		return nil, false
	}
	if len(a.inPath) > maxPathLen || len(a.outPath) > maxPathLen {
		fmt.Fprintf(os.Stderr, "File path cannot exceed %d chars\n", maxPathLen)
		return nil, false
	}
	return a, true
}

func main() {
	a, ok := parseArgs(os.Args)
	if !ok {
		os.Exit(1)
	}

	inPath, _, err := utils.GetPathInfo(a.inPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error: could not resolve", a.inPath)
		os.Exit(1)
	}
	src, err := utils.ReadSource(inPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error: could not open", a.inPath)
		os.Exit(1)
	}

	start := time.Now()

	tokens := compiler.Lex(src)
	if a.verbose {
		fmt.Printf("Tokens (%d)\n", len(tokens))
		for _, tok := range tokens {
			fmt.Println(" ", tok)
		}
	}

	prog, err := compiler.Parse(tokens)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if a.optimize {
		compiler.Optimize(prog)
	}
	if a.verbose {
		fmt.Println("AST")
		for _, fn := range prog.Functions {
			fmt.Println(" ", fn)
		}
	}

	asm, err := compiler.Generate(prog)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	// The output file is only written on success.
	if err := utils.WriteText(a.outPath, asm); err != nil {
		fmt.Fprintln(os.Stderr, "Error: could not write", a.outPath)
		os.Exit(1)
	}

	if a.verbose {
		fmt.Printf("Compiled %s -> %s in %s\n", a.inPath, a.outPath, time.Since(start))
	}
}
