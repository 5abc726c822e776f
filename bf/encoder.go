// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package bf

import (
	"log"
)

const (
	MULTIPLIER = 10 // Units moved into the value cell per multiplier loop pass.
)

// Encoder generates Brainfuck programs that print a sequence of character
// codes. The zero value is ready to use.
type Encoder struct {
	Verbose bool // If set, logs every character transition.
}

// Encode returns the Brainfuck source of a program that prints text.
func Encode(text string) string {
	enc := &Encoder{}
	return enc.Encode([]rune(text)).String()
}

// Encode generates a program that prints codes in order.
//
// Cell 0 is the multiplier cell and cell 1 holds the last printed code.
// The pointer starts on cell 0, and rests on cell 1 after each output.
// Every output but the last is followed by a move back to cell 0.
// A leading zero code steps onto cell 1 first, so "\x00" encodes as ">.".
func (enc *Encoder) Encode(codes []rune) (prog *Program) {
	prog = &Program{}

	cursor := 0
	for n, code := range codes {
		target := int(code)
		start := prog.Len()

		delta := target - cursor
		switch {
		case delta > 0:
			transfer(prog, delta, OP_INC)
		case delta < 0:
			transfer(prog, -delta, OP_DEC)
		default:
			// Reprint in place. Only a leading zero code finds no
			// trailing move to drop, and must step onto the value cell.
			if prog.Unwind(OP_LEFT) {
				start--
			} else {
				prog.Append(OP_RIGHT)
			}
		}

		prog.Append(OP_OUTPUT)

		if n < len(codes)-1 {
			prog.Append(OP_LEFT)
		}

		if enc.Verbose {
			emitted := &Program{Opcodes: prog.Opcodes[start:]}
			log.Print(f("encode %U: %d => %d: %v", code, cursor, target, emitted))
		}

		cursor = target
	}

	return
}

// transfer adds count units of op to the value cell. Whole groups of
// MULTIPLIER go through the loop on the multiplier cell, which is always
// counted up, and the remainder is applied directly.
// The pointer starts on the multiplier cell and ends on the value cell.
func transfer(prog *Program, count int, op Op) {
	prog.Repeat(OP_INC, count/MULTIPLIER)
	prog.Append(OP_LOOP, OP_RIGHT)
	prog.Repeat(op, MULTIPLIER)
	prog.Append(OP_LEFT, OP_DEC, OP_END, OP_RIGHT)
	prog.Repeat(op, count%MULTIPLIER)
}
