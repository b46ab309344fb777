// Copyright 2025, The arams-go Authors

package asm

import (
	"log"
	"maps"
	"slices"

	"github.com/arams-go/arams/diag"
	"github.com/arams-go/arams/lexer"
)

// jump is a branch waiting for its label to be resolved.
type jump struct {
	index  int    // Instruction index.
	lineNo int    // Source line of the reference.
	label  string // Referenced label.
}

// Analyzer checks tokenized source and builds a Program from it.
type Analyzer struct {
	Verbose      bool           // If set, verbosely logs the analyzer actions.
	Instructions []Instruction  // List of generated instructions.
	Labels       map[string]int // Map of labels to instruction indexes.
	Diagnostics  diag.List      // Every problem found so far.

	jumps []jump
}

func (an *Analyzer) reset() {
	an.Instructions = nil
	an.Labels = map[string]int{}
	an.Diagnostics = nil
	an.jumps = nil
}

// defineLabel binds a label to the next instruction index.
func (an *Analyzer) defineLabel(lineNo int, name string) {
	if _, ok := an.Labels[name]; ok {
		an.Diagnostics.Add(lineNo, ErrLabelDuplicate(name))
		return
	}
	if an.Verbose {
		log.Printf("%d: label %v => %d", lineNo, name, len(an.Instructions))
	}
	an.Labels[name] = len(an.Instructions)
}

// instruction appends the instruction of a line, with its operand. The
// lexer has already checked the operand, so an instruction with token
// errors is appended without one; it still takes its index so that later
// labels designate the right instruction.
func (an *Analyzer) instruction(lineNo int, head lexer.Token, rest []lexer.Token) {
	inst := Instruction{
		Opcode: opcodeMap[head.Kind],
		LineNo: lineNo,
	}
	defer func() {
		if an.Verbose {
			log.Printf("%d: %v", lineNo, inst)
		}
		an.Instructions = append(an.Instructions, inst)
	}()

	for _, arg := range rest {
		if !arg.Kind.IsArgument() {
			continue
		}
		mode := modeMap[arg.Kind]
		if len(arg.Errors) > 0 || !inst.Opcode.Accepts(mode) {
			return
		}

		inst.Operand.Mode = mode
		if mode == MODE_JUMP {
			inst.Operand.Label = arg.Label()
			an.jumps = append(an.jumps, jump{
				index:  len(an.Instructions),
				lineNo: lineNo,
				label:  inst.Operand.Label,
			})
		} else {
			inst.Operand.Value = arg.Value()
		}
		return
	}
}

// line analyzes the tokens of a single source line.
func (an *Analyzer) line(lineNo int, tokens lexer.Line) {
	for _, err := range tokens.Errors() {
		an.Diagnostics.Add(lineNo, err)
	}

	for n, tok := range tokens {
		switch {
		case tok.Kind == lexer.KIND_LABEL_DEFINITION:
			an.defineLabel(lineNo, tok.Label())
		case tok.Kind.IsInstruction():
			an.instruction(lineNo, tok, tokens[n+1:])
			return
		}
	}
}

// Analyze checks every line of tokenized source, and resolves the jump
// labels. All problems are collected; the program is only returned when
// there are none.
func (an *Analyzer) Analyze(lines []lexer.Line) (prog *Program, diags diag.List) {
	an.reset()

	// Register labels and instructions.
	for n, tokens := range lines {
		an.line(n+1, tokens)
	}

	// Final linking of jump labels.
	for _, j := range an.jumps {
		ip, ok := an.Labels[j.label]
		if !ok {
			an.Diagnostics.Add(j.lineNo, ErrLabelMissing(j.label))
			continue
		}
		an.Instructions[j.index].Operand.Value = int64(ip)
	}

	an.Diagnostics.Sort()
	diags = an.Diagnostics
	if len(diags) > 0 {
		return
	}

	prog = &Program{
		Instructions: slices.Clone(an.Instructions),
		Labels:       maps.Clone(an.Labels),
	}

	return
}

// Analyze checks tokenized source with a fresh Analyzer.
func Analyze(lines []lexer.Line) (*Program, diag.List) {
	an := &Analyzer{}
	return an.Analyze(lines)
}
