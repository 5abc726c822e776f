package bf

// Op is a single Brainfuck primitive. Its value is its source character.
type Op byte

//go:generate go tool stringer -linecomment -type=Op
const (
	OP_INC    = Op('+') // +
	OP_DEC    = Op('-') // -
	OP_LEFT   = Op('<') // <
	OP_RIGHT  = Op('>') // >
	OP_LOOP   = Op('[') // [
	OP_END    = Op(']') // ]
	OP_OUTPUT = Op('.') // .
	OP_INPUT  = Op(',') // ,
)

// Valid returns true if op is one of the eight primitives.
func (op Op) Valid() bool {
	switch op {
	case OP_INC, OP_DEC, OP_LEFT, OP_RIGHT, OP_LOOP, OP_END, OP_OUTPUT, OP_INPUT:
		return true
	}

	return false
}
