package asm

import (
	"github.com/arams-go/arams/translate"
)

var f = translate.From

type ErrLabelDuplicate string

func (err ErrLabelDuplicate) Error() string {
	return f("duplicate label definition '%v'", string(err))
}

type ErrLabelMissing string

func (err ErrLabelMissing) Error() string {
	return f("undefined label '%v'", string(err))
}
