package asm

import (
	"fmt"
	"slices"

	"github.com/arams-go/arams/lexer"
)

// Opcode is an instruction mnemonic.
type Opcode int

//go:generate go tool stringer -linecomment -type=Opcode
const (
	OP_LOAD   = Opcode(0) // load
	OP_STORE  = Opcode(1) // store
	OP_ADD    = Opcode(2) // add
	OP_SUB    = Opcode(3) // sub
	OP_MUL    = Opcode(4) // mul
	OP_DIV    = Opcode(5) // div
	OP_GOTO   = Opcode(6) // goto
	OP_JZERO  = Opcode(7) // jzero
	OP_JNZERO = Opcode(8) // jnzero
	OP_END    = Opcode(9) // end
)

// Mode is an operand addressing mode.
type Mode int

//go:generate go tool stringer -linecomment -type=Mode
const (
	MODE_NONE      = Mode(0) // none
	MODE_IMMEDIATE = Mode(1) // immediate
	MODE_DIRECT    = Mode(2) // direct
	MODE_INDIRECT  = Mode(3) // indirect
	MODE_JUMP      = Mode(4) // jump
)

var (
	valueModes   = []Mode{MODE_IMMEDIATE, MODE_DIRECT, MODE_INDIRECT}
	addressModes = []Mode{MODE_DIRECT, MODE_INDIRECT}
	jumpModes    = []Mode{MODE_JUMP}
)

// operandModes is the set of operand modes each opcode accepts.
var operandModes = map[Opcode][]Mode{
	OP_LOAD:   valueModes,
	OP_STORE:  addressModes,
	OP_ADD:    valueModes,
	OP_SUB:    valueModes,
	OP_MUL:    valueModes,
	OP_DIV:    valueModes,
	OP_GOTO:   jumpModes,
	OP_JZERO:  jumpModes,
	OP_JNZERO: jumpModes,
	OP_END:    nil,
}

// opcodeMap maps instruction tokens to opcodes.
var opcodeMap = map[lexer.Kind]Opcode{
	lexer.KIND_LOAD:   OP_LOAD,
	lexer.KIND_STORE:  OP_STORE,
	lexer.KIND_ADD:    OP_ADD,
	lexer.KIND_SUB:    OP_SUB,
	lexer.KIND_MUL:    OP_MUL,
	lexer.KIND_DIV:    OP_DIV,
	lexer.KIND_GOTO:   OP_GOTO,
	lexer.KIND_JZERO:  OP_JZERO,
	lexer.KIND_JNZERO: OP_JNZERO,
	lexer.KIND_END:    OP_END,
}

// modeMap maps argument tokens to addressing modes.
var modeMap = map[lexer.Kind]Mode{
	lexer.KIND_IMMEDIATE_ARGUMENT:        MODE_IMMEDIATE,
	lexer.KIND_DIRECT_ADDRESS_ARGUMENT:   MODE_DIRECT,
	lexer.KIND_INDIRECT_ADDRESS_ARGUMENT: MODE_INDIRECT,
	lexer.KIND_JUMP_ARGUMENT:             MODE_JUMP,
}

// Operands returns the addressing modes the opcode accepts.
// An empty result means the opcode takes no operand.
func (op Opcode) Operands() []Mode {
	return operandModes[op]
}

// Accepts returns true if the opcode takes an operand in mode.
func (op Opcode) Accepts(mode Mode) bool {
	return slices.Contains(operandModes[op], mode)
}

// IsJump returns true for the branch opcodes.
func (op Opcode) IsJump() bool {
	return op == OP_GOTO || op == OP_JZERO || op == OP_JNZERO
}

// Operand is the resolved argument of an instruction.
type Operand struct {
	Mode  Mode   // Addressing mode.
	Value int64  // Literal, register address, or resolved jump target.
	Label string // Label name, for MODE_JUMP.
}

// String returns the operand in source syntax.
func (op Operand) String() string {
	switch op.Mode {
	case MODE_IMMEDIATE:
		return fmt.Sprintf("#%d", op.Value)
	case MODE_DIRECT:
		return fmt.Sprintf("%d", op.Value)
	case MODE_INDIRECT:
		return fmt.Sprintf("*%d", op.Value)
	case MODE_JUMP:
		return op.Label
	}
	return ""
}

// Instruction is a single resolved program step.
type Instruction struct {
	Opcode  Opcode
	Operand Operand
	LineNo  int // 1-based source line.
}

// String returns the instruction in source syntax.
func (inst Instruction) String() string {
	if inst.Operand.Mode == MODE_NONE {
		return inst.Opcode.String()
	}
	return fmt.Sprintf("%v %v", inst.Opcode, inst.Operand)
}
