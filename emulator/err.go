package emulator

import (
	"errors"

	"github.com/ezrec/strbf/translate"
)

var f = translate.From

var (
	ErrPointerUnderflow = errors.New(f("pointer moved left of cell 0"))
	ErrLoopUnbalanced   = errors.New(f("loop unbalanced"))
	ErrOpInvalid        = errors.New(f("op invalid"))
	ErrTickLimit        = errors.New(f("tick limit exceeded"))
)

// ErrRuntime indicates the location of a runtime error.
type ErrRuntime struct {
	Ip  int
	Op  string
	Err error
}

func (err *ErrRuntime) Error() string {
	return f("ip %d '%v' %v", err.Ip, err.Op, err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}
