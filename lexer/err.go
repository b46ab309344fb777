package lexer

import (
	"github.com/arams-go/arams/translate"
)

var f = translate.From

type ErrTokenUnknown string

func (err ErrTokenUnknown) Error() string {
	return f("unknown token '%v'", string(err))
}

type ErrInstructionUnknown string

func (err ErrInstructionUnknown) Error() string {
	return f("unknown instruction '%v'", string(err))
}

type ErrArgumentMalformed string

func (err ErrArgumentMalformed) Error() string {
	return f("argument '%v' is invalid or malformed", string(err))
}

type ErrLabelInvalid string

func (err ErrLabelInvalid) Error() string {
	return f("'%v' is not a valid label name", string(err))
}

type ErrLabelMisplaced string

func (err ErrLabelMisplaced) Error() string {
	return f("label definition '%v' must start the line", string(err))
}

type ErrArgumentMissing Kind

func (err ErrArgumentMissing) Error() string {
	return f("missing argument for '%v'", Kind(err).String())
}

type ErrArgumentExtra string

func (err ErrArgumentExtra) Error() string {
	return f("unexpected argument '%v'", string(err))
}

// ErrArgumentInvalid is an argument whose form the instruction does not accept.
type ErrArgumentInvalid struct {
	Instruction Kind
	Argument    Kind
	Lexeme      string
}

func (err ErrArgumentInvalid) Error() string {
	return f("'%v' does not accept %v argument '%v'", err.Instruction.String(), form[err.Argument], err.Lexeme)
}
