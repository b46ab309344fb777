package aram

import (
	"github.com/arams-go/arams/translate"
)

var f = translate.From

// ErrRegistersSyntax is a register expression that failed to evaluate.
type ErrRegistersSyntax struct {
	Expr string
	Err  error
}

func (err ErrRegistersSyntax) Error() string {
	return f("registers '%v': %v", err.Expr, err.Err)
}

func (err ErrRegistersSyntax) Unwrap() error {
	return err.Err
}

type ErrRegistersType string

func (err ErrRegistersType) Error() string {
	return f("registers '%v' is not a dict", string(err))
}

type ErrRegisterAddress string

func (err ErrRegisterAddress) Error() string {
	return f("register address %v is not a non-negative integer", string(err))
}

type ErrRegisterValue string

func (err ErrRegisterValue) Error() string {
	return f("register value %v is not a 64-bit integer", string(err))
}
