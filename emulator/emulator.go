// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package emulator runs Brainfuck programs on an unbounded tape of int cells.
package emulator

import (
	"io"
	"log"
	"unicode/utf8"

	"github.com/ezrec/strbf/bf"
)

const (
	TICK_LIMIT = 1 << 24 // Default maximum number of ops executed per run.
)

// Emulator state. Program + tape + IO streams.
type Emulator struct {
	Verbose bool        // If set, enables verbose logging.
	Program *bf.Program // Reference to the currently running program.

	Input  io.Reader // Source for OP_INPUT. Nil reads as end of input.
	Output io.Writer // Sink for OP_OUTPUT. Nil discards output.

	TickLimit int // Maximum ops per run. Zero or less is unlimited.

	Ip      int   // Index of the next op to execute.
	Pointer int   // Index of the cell under the pointer.
	Cells   []int // Tape contents, grown as the pointer moves right.
	Ticks   int   // Ops executed since the last reset.

	jump   []int       // Index of the matching bracket for each loop op.
	loaded *bf.Program // Program the jump table was built for.
}

// NewEmulator creates a new emulator with an empty program.
func NewEmulator() (emu *Emulator) {
	emu = &Emulator{
		Program:   &bf.Program{},
		TickLimit: TICK_LIMIT,
	}

	// An empty program always resets.
	_ = emu.Reset()

	return
}

// Reset clears the tape and rewinds to the start of the program.
// The program's ops are checked and its loops matched here, so a program
// with an unknown op or unbalanced brackets fails to reset.
func (emu *Emulator) Reset() (err error) {
	defer func() {
		if err != nil {
			emu.loaded = nil
		}
	}()

	emu.loaded = emu.Program
	emu.Ip = 0
	emu.Pointer = 0
	emu.Cells = []int{0}
	emu.Ticks = 0

	emu.jump = make([]int, emu.Program.Len())
	var open []int
	for ip, op := range emu.Program.Ops() {
		if !op.Valid() {
			err = &ErrRuntime{Ip: ip, Op: op.String(), Err: ErrOpInvalid}
			return
		}

		switch op {
		case bf.OP_LOOP:
			open = append(open, ip)
		case bf.OP_END:
			if len(open) == 0 {
				err = &ErrRuntime{Ip: ip, Op: op.String(), Err: ErrLoopUnbalanced}
				return
			}
			start := open[len(open)-1]
			open = open[:len(open)-1]
			emu.jump[start] = ip
			emu.jump[ip] = start
		}
	}

	if len(open) != 0 {
		ip := open[len(open)-1]
		err = &ErrRuntime{Ip: ip, Op: bf.OP_LOOP.String(), Err: ErrLoopUnbalanced}
		return
	}

	return
}

// Cell returns the value of the cell under the pointer.
func (emu *Emulator) Cell() int {
	return emu.Cells[emu.Pointer]
}

// Tick executes a single op of the program. A program replaced since
// the last Reset is reset before its first op.
func (emu *Emulator) Tick() (done bool, err error) {
	if emu.loaded != emu.Program || len(emu.jump) != emu.Program.Len() {
		err = emu.Reset()
		if err != nil {
			return
		}
	}

	if emu.Ip >= emu.Program.Len() {
		done = true
		return
	}

	op := emu.Program.Opcodes[emu.Ip]
	defer func() {
		if err != nil {
			err = &ErrRuntime{Ip: emu.Ip, Op: op.String(), Err: err}
		}
	}()

	if emu.TickLimit > 0 && emu.Ticks >= emu.TickLimit {
		err = ErrTickLimit
		return
	}

	if emu.Verbose {
		log.Print(f("ip %d: %v [%d]=%d", emu.Ip, op, emu.Pointer, emu.Cell()))
	}

	switch op {
	case bf.OP_INC:
		emu.Cells[emu.Pointer]++
	case bf.OP_DEC:
		emu.Cells[emu.Pointer]--
	case bf.OP_RIGHT:
		emu.Pointer++
		if emu.Pointer == len(emu.Cells) {
			emu.Cells = append(emu.Cells, 0)
		}
	case bf.OP_LEFT:
		if emu.Pointer == 0 {
			err = ErrPointerUnderflow
			return
		}
		emu.Pointer--
	case bf.OP_LOOP:
		if emu.Cell() == 0 {
			emu.Ip = emu.jump[emu.Ip]
		}
	case bf.OP_END:
		if emu.Cell() != 0 {
			emu.Ip = emu.jump[emu.Ip]
		}
	case bf.OP_OUTPUT:
		err = emu.output()
	case bf.OP_INPUT:
		err = emu.input()
	}

	if err != nil {
		return
	}

	emu.Ip++
	emu.Ticks++

	return
}

// Run resets the emulator and ticks until the program ends.
func (emu *Emulator) Run() (err error) {
	err = emu.Reset()
	if err != nil {
		return
	}

	for done, err := emu.Tick(); !done; done, err = emu.Tick() {
		if err != nil {
			return err
		}
	}

	return
}

// output writes the cell under the pointer as a UTF-8 encoded rune.
// Values outside the rune range print as U+FFFD.
func (emu *Emulator) output() (err error) {
	if emu.Output == nil {
		return
	}

	var buf [utf8.UTFMax]byte
	n := utf8.EncodeRune(buf[:], rune(emu.Cell()))
	_, err = emu.Output.Write(buf[:n])
	return
}

// input reads one byte into the cell under the pointer. At end of input
// the cell is left unchanged.
func (emu *Emulator) input() (err error) {
	if emu.Input == nil {
		return
	}

	var one [1]byte
	_, err = io.ReadFull(emu.Input, one[:])
	if err == io.EOF {
		err = nil
		return
	}
	if err != nil {
		return
	}

	emu.Cells[emu.Pointer] = int(one[0])
	return
}
