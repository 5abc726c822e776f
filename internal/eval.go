// Package internal holds helpers shared by the strbf commands.
package internal

import (
	"strings"
	"unicode/utf8"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// EvalString evaluates a Starlark expression into text.
//
// A string evaluates to itself, an int to the character with that code,
// and a list or tuple to the concatenation of its elements.
func EvalString(expr string) (text string, err error) {
	thread := starlark.Thread{Name: "strbf"}
	opts := syntax.FileOptions{}
	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, nil)
	if err != nil {
		err = ErrExpression{Expr: expr, Err: err}
		return
	}

	st_rc, ok := dict["rc"]
	if !ok {
		err = ErrExpression{Expr: expr, Err: ErrExpressionValue("None")}
		return
	}

	sb := &strings.Builder{}
	err = appendValue(sb, st_rc)
	if err != nil {
		err = ErrExpression{Expr: expr, Err: err}
		return
	}

	text = sb.String()
	return
}

func appendValue(sb *strings.Builder, value starlark.Value) (err error) {
	switch st := value.(type) {
	case starlark.String:
		sb.WriteString(string(st))
	case starlark.Int:
		code, ok := st.Int64()
		if !ok || code < 0 || code > utf8.MaxRune {
			err = ErrExpressionValue(st.String())
			return
		}
		sb.WriteRune(rune(code))
	case *starlark.List, starlark.Tuple:
		seq := st.(starlark.Indexable)
		for n := range seq.Len() {
			err = appendValue(sb, seq.Index(n))
			if err != nil {
				return
			}
		}
	default:
		err = ErrExpressionValue(value.Type())
	}

	return
}
