// Package bf implements a string to Brainfuck encoder.
//
// The encoder emits a program that prints a given string when run on a
// Brainfuck machine. Cell 0 serves as a loop counter (the multiplier cell)
// that moves groups of ten into cell 1 (the value cell), so that moving
// between two character codes costs roughly a tenth of their distance.
//
// The package also provides the Op and Program types shared with the
// emulator, and a parser for Brainfuck source text.
package bf
