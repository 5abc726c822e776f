// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/fatih/color"

	"github.com/ezrec/strbf/bf"
	"github.com/ezrec/strbf/emulator"
	"github.com/ezrec/strbf/internal"
	"github.com/ezrec/strbf/translate"
)

var f = translate.From

func main() {
	var expr bool
	var output string
	var check bool
	var verbose bool

	flag.BoolVar(&expr, "x", false, "Evaluate the arguments as a Starlark expression")
	flag.StringVar(&output, "o", "-", "Program output")
	flag.BoolVar(&check, "check", false, "Run the program and compare its output to the input")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Usage = func() {
		translate.Fprintln(flag.CommandLine.Output(), "usage: %v [-x] [-o file] [-check] [-v] words...", os.Args[0])
		flag.PrintDefaults()
	}

	flag.Parse()

	if flag.NArg() == 0 {
		return
	}

	text := strings.Join(flag.Args(), " ")
	if expr {
		var err error
		text, err = internal.EvalString(text)
		if err != nil {
			fail("%v: %v", os.Args[0], err)
		}
	}

	enc := &bf.Encoder{Verbose: verbose}
	prog := enc.Encode([]rune(text))

	if check {
		err := verify(prog, text)
		if err != nil {
			fail("%v: check: %v", os.Args[0], err)
		}
	}

	var ouf io.Writer = os.Stdout
	if output != "-" {
		file, err := os.Create(output)
		if err != nil {
			log.Fatalf("%v: %v", output, err)
		}
		defer file.Close()
		ouf = file
	}

	_, err := fmt.Fprintln(ouf, prog.String())
	if err != nil {
		log.Fatalf("%v: %v", output, err)
	}

	if verbose {
		chars := utf8.RuneCountInString(text)
		saved := unaryCost(text) - prog.Len()
		color.New(color.FgGreen).Fprintln(os.Stderr,
			f("Encoded %d characters into %d ops with %d loops (%d fewer than unary)",
				chars, prog.Len(), prog.Count(bf.OP_LOOP), saved))
	}
}

// fail reports a fatal error in red and exits.
func fail(format string, args ...any) {
	color.New(color.FgRed).Fprintln(os.Stderr, f(format, args...))
	os.Exit(1)
}

// verify runs prog and compares what it prints to text.
func verify(prog *bf.Program, text string) (err error) {
	emu := emulator.NewEmulator()
	emu.Program = prog
	// Encoded programs always halt, but high code points take millions
	// of ticks per character.
	emu.TickLimit = 0
	printed := &bytes.Buffer{}
	emu.Output = printed

	err = emu.Run()
	if err != nil {
		return
	}

	// Invalid UTF-8 in text was encoded as U+FFFD.
	expected := string([]rune(text))
	if printed.String() != expected {
		err = errors.New(f("printed %q, expected %q", printed.String(), expected))
	}

	return
}

// unaryCost is the op count of printing text with a single cell and
// no loops.
func unaryCost(text string) (cost int) {
	cursor := 0
	for _, code := range text {
		cost += max(int(code)-cursor, cursor-int(code)) + 1
		cursor = int(code)
	}
	return
}
