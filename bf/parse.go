package bf

import (
	"errors"
	"io"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// Everything that is not a primitive is commentary.
var sourceLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Op", Pattern: `[-+<>.,]`},
	{Name: "Bracket", Pattern: `[\[\]]`},
	{Name: "Comment", Pattern: `[^-+<>.,\[\]]+`},
})

type sourceProgram struct {
	Nodes []*sourceNode `@@*`
}

type sourceNode struct {
	Op   string      `  @Op`
	Loop *sourceLoop `| @@`
}

type sourceLoop struct {
	Body []*sourceNode `"[" @@* "]"`
}

var sourceParser = participle.MustBuild[sourceProgram](
	participle.Lexer(sourceLexer),
	participle.Elide("Comment"),
)

// Parse reads Brainfuck source text into a program.
func Parse(r io.Reader) (prog *Program, err error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return
	}

	return ParseString("", string(data))
}

// ParseString parses Brainfuck source text into a program. The name is
// only used to annotate errors.
func ParseString(name string, source string) (prog *Program, err error) {
	tree, err := sourceParser.ParseString(name, source)
	if err != nil {
		err = syntaxError(source, err)
		return
	}

	prog = &Program{}
	for _, node := range tree.Nodes {
		node.emit(prog)
	}

	return
}

func (node *sourceNode) emit(prog *Program) {
	if node.Loop == nil {
		prog.Append(Op(node.Op[0]))
		return
	}

	prog.Append(OP_LOOP)
	for _, inner := range node.Loop.Body {
		inner.emit(prog)
	}
	prog.Append(OP_END)
}

// syntaxError classifies a parser error by the token it stopped at.
// Running out of input means a loop was left open.
func syntaxError(source string, err error) error {
	var pe participle.Error
	if !errors.As(err, &pe) {
		return err
	}

	pos := pe.Position()
	cause := err
	switch {
	case pos.Offset >= len(source), source[pos.Offset] == '[':
		cause = ErrLoopUnclosed
	case source[pos.Offset] == ']':
		cause = ErrLoopUnopened
	}

	return ErrSyntax{Line: pos.Line, Column: pos.Column, Err: cause}
}
