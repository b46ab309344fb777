package machine

import (
	"errors"

	"github.com/arams-go/arams/asm"
	"github.com/arams-go/arams/translate"
)

var f = translate.From

var (
	ErrDivisionByZero = errors.New(f("division by zero"))
	ErrMissingHalt    = errors.New(f("missing halt"))
	ErrStepLimit      = errors.New(f("step limit exceeded"))
)

type ErrRegisterInvalid int64

func (err ErrRegisterInvalid) Error() string {
	return f("invalid register address %v", int64(err))
}

type ErrOpcodeInvalid asm.Opcode

func (err ErrOpcodeInvalid) Error() string {
	return f("invalid opcode %v", asm.Opcode(err).String())
}

// ErrRuntime indicates the location of a runtime error.
type ErrRuntime struct {
	LineNo int
	Err    error
}

func (err *ErrRuntime) Error() string {
	return f("line %d %v", err.LineNo, err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}
