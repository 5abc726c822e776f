package internal

import (
	"github.com/ezrec/strbf/translate"
)

var f = translate.From

// ErrExpression indicates an expression that failed to evaluate.
type ErrExpression struct {
	Expr string
	Err  error
}

func (err ErrExpression) Error() string {
	return f("$(%v) %v", err.Expr, err.Err)
}

func (err ErrExpression) Unwrap() error {
	return err.Err
}

// ErrExpressionValue is the Starlark type of a result that is not text.
type ErrExpressionValue string

func (err ErrExpressionValue) Error() string {
	return f("%v is not a string, character code, or list of them", string(err))
}
