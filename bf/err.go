package bf

import (
	"errors"

	"github.com/ezrec/strbf/translate"
)

var f = translate.From

var (
	// Parse errors
	ErrLoopUnclosed = errors.New(f("[ without ]"))
	ErrLoopUnopened = errors.New(f("] without ["))
)

// ErrSyntax indicates the source location of a parse error.
type ErrSyntax struct {
	Line   int
	Column int
	Err    error
}

func (err ErrSyntax) Error() string {
	return f("line %d column %d %v", err.Line, err.Column, err.Err)
}

func (err ErrSyntax) Unwrap() error {
	return err.Err
}
