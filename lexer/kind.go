package lexer

// Kind is the lexical class of a token.
type Kind int

//go:generate go tool stringer -linecomment -type=Kind
const (
	KIND_LOAD                      = Kind(0)  // load
	KIND_STORE                     = Kind(1)  // store
	KIND_ADD                       = Kind(2)  // add
	KIND_SUB                       = Kind(3)  // sub
	KIND_MUL                       = Kind(4)  // mul
	KIND_DIV                       = Kind(5)  // div
	KIND_GOTO                      = Kind(6)  // goto
	KIND_JZERO                     = Kind(7)  // jzero
	KIND_JNZERO                    = Kind(8)  // jnzero
	KIND_END                       = Kind(9)  // end
	KIND_LABEL_DEFINITION          = Kind(10) // label_definition
	KIND_JUMP_ARGUMENT             = Kind(11) // jump_argument
	KIND_IMMEDIATE_ARGUMENT        = Kind(12) // immediate_argument
	KIND_INDIRECT_ADDRESS_ARGUMENT = Kind(13) // indirect_address_argument
	KIND_DIRECT_ADDRESS_ARGUMENT   = Kind(14) // direct_address_argument
	KIND_COMMENT                   = Kind(15) // comment
	KIND_NEWLINE                   = Kind(16) // newline
	KIND_UNKNOWN                   = Kind(17) // unknown
)

// mnemonics maps lower case instruction names to their kinds.
var mnemonics = map[string]Kind{
	"load":   KIND_LOAD,
	"store":  KIND_STORE,
	"add":    KIND_ADD,
	"sub":    KIND_SUB,
	"mul":    KIND_MUL,
	"div":    KIND_DIV,
	"goto":   KIND_GOTO,
	"jzero":  KIND_JZERO,
	"jnzero": KIND_JNZERO,
	"end":    KIND_END,
}

// IsInstruction returns true for the mnemonic kinds.
func (k Kind) IsInstruction() bool {
	return k >= KIND_LOAD && k <= KIND_END
}

// IsArgument returns true for the well formed operand kinds.
func (k Kind) IsArgument() bool {
	return k >= KIND_JUMP_ARGUMENT && k <= KIND_DIRECT_ADDRESS_ARGUMENT
}

var (
	valueArguments   = []Kind{KIND_IMMEDIATE_ARGUMENT, KIND_DIRECT_ADDRESS_ARGUMENT, KIND_INDIRECT_ADDRESS_ARGUMENT}
	addressArguments = []Kind{KIND_DIRECT_ADDRESS_ARGUMENT, KIND_INDIRECT_ADDRESS_ARGUMENT}
	jumpArguments    = []Kind{KIND_JUMP_ARGUMENT}
)

// operands is the set of argument kinds each instruction accepts.
var operands = map[Kind][]Kind{
	KIND_LOAD:   valueArguments,
	KIND_STORE:  addressArguments,
	KIND_ADD:    valueArguments,
	KIND_SUB:    valueArguments,
	KIND_MUL:    valueArguments,
	KIND_DIV:    valueArguments,
	KIND_GOTO:   jumpArguments,
	KIND_JZERO:  jumpArguments,
	KIND_JNZERO: jumpArguments,
	KIND_END:    nil,
}

// Operands returns the argument kinds an instruction kind accepts.
// It is empty for instructions without an operand.
func (k Kind) Operands() []Kind {
	return operands[k]
}

// form names the addressing form of the argument kinds.
var form = map[Kind]string{
	KIND_IMMEDIATE_ARGUMENT:        "immediate",
	KIND_DIRECT_ADDRESS_ARGUMENT:   "direct",
	KIND_INDIRECT_ADDRESS_ARGUMENT: "indirect",
	KIND_JUMP_ARGUMENT:             "jump",
}

var about = map[Kind]string{
	KIND_LOAD:                      "Syntax: `load <operand>`\nLoads the value of the operand into the accumulator.",
	KIND_STORE:                     "Syntax: `store <address>`\nStores the value of the accumulator into the addressed register.",
	KIND_ADD:                       "Syntax: `add <operand>`\nAdds the value of the operand to the accumulator.",
	KIND_SUB:                       "Syntax: `sub <operand>`\nSubtracts the value of the operand from the accumulator.",
	KIND_MUL:                       "Syntax: `mul <operand>`\nMultiplies the accumulator by the value of the operand.",
	KIND_DIV:                       "Syntax: `div <operand>`\nDivides the accumulator by the value of the operand.",
	KIND_GOTO:                      "Syntax: `goto <label>`\nJumps to the instruction marked with the given label.",
	KIND_JZERO:                     "Syntax: `jzero <label>`\nJumps to the instruction marked with the given label if the accumulator is zero.",
	KIND_JNZERO:                    "Syntax: `jnzero <label>`\nJumps to the instruction marked with the given label if the accumulator is not zero.",
	KIND_END:                       "Syntax: `end`\nEnds the program.",
	KIND_LABEL_DEFINITION:          "Syntax: `<label>:`\nMarks a position in the program that can be jumped to.",
	KIND_JUMP_ARGUMENT:             "A label.",
	KIND_IMMEDIATE_ARGUMENT:        "Syntax: `#<value>`\nUses a constant value directly.",
	KIND_INDIRECT_ADDRESS_ARGUMENT: "Syntax: `*<register>`\nUses the value of the given register as a register address.",
	KIND_DIRECT_ADDRESS_ARGUMENT:   "Syntax: `<register>`\nUses the value of the given register.",
}

// About returns the editor help text of the kind, if any.
func (k Kind) About() string {
	return about[k]
}
