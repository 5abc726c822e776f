package bf

import (
	"iter"
	"strings"
)

// Program is an ordered buffer of Brainfuck primitives.
type Program struct {
	Opcodes []Op
}

// Len returns the number of ops in the program.
func (prog *Program) Len() int {
	return len(prog.Opcodes)
}

// Append adds ops to the end of the program.
func (prog *Program) Append(ops ...Op) {
	prog.Opcodes = append(prog.Opcodes, ops...)
}

// Repeat appends n copies of op. Non-positive n appends nothing.
func (prog *Program) Repeat(op Op, n int) {
	for range max(n, 0) {
		prog.Opcodes = append(prog.Opcodes, op)
	}
}

// Last returns the final op of the program, if any.
func (prog *Program) Last() (op Op, ok bool) {
	if len(prog.Opcodes) == 0 {
		return
	}

	return prog.Opcodes[len(prog.Opcodes)-1], true
}

// Unwind removes the final op if it is op, and reports whether it did.
// An empty program is left unchanged.
func (prog *Program) Unwind(op Op) (ok bool) {
	last, ok := prog.Last()
	if !ok || last != op {
		return false
	}

	prog.Opcodes = prog.Opcodes[:len(prog.Opcodes)-1]
	return true
}

// Count returns the number of times op occurs in the program.
func (prog *Program) Count(op Op) (count int) {
	for _, code := range prog.Opcodes {
		if code == op {
			count++
		}
	}

	return
}

// Ops returns an iterator over the program's index and op pairs.
func (prog *Program) Ops() iter.Seq2[int, Op] {
	return func(yield func(ip int, op Op) bool) {
		for ip, op := range prog.Opcodes {
			if !yield(ip, op) {
				return
			}
		}
	}
}

// String returns the Brainfuck source of the program.
func (prog *Program) String() string {
	var sb strings.Builder
	sb.Grow(len(prog.Opcodes))
	for _, op := range prog.Opcodes {
		sb.WriteByte(byte(op))
	}
	return sb.String()
}
