package asm

import (
	"fmt"
	"strings"

	"github.com/arams-go/arams/internal"
)

// Program is a resolved, executable instruction sequence.
type Program struct {
	Instructions []Instruction
	Labels       map[string]int // Map of label names to instruction indexes.
}

// Len returns the number of instructions.
func (prog *Program) Len() int {
	return len(prog.Instructions)
}

// Fetch returns the instruction at ip, if ip is in the program.
func (prog *Program) Fetch(ip int) (inst Instruction, ok bool) {
	if ip < 0 || ip >= len(prog.Instructions) {
		return
	}
	return prog.Instructions[ip], true
}

// LabelsAt returns the labels that designate ip, in name order.
func (prog *Program) LabelsAt(ip int) []string {
	return internal.KeysOf(prog.Labels, ip)
}

// String returns an assembly listing of the program.
func (prog *Program) String() string {
	var sb strings.Builder
	for ip := 0; ip <= len(prog.Instructions); ip++ {
		for _, label := range prog.LabelsAt(ip) {
			fmt.Fprintf(&sb, "%v:\n", label)
		}
		if inst, ok := prog.Fetch(ip); ok {
			fmt.Fprintf(&sb, "\t%v\n", inst)
		}
	}
	return sb.String()
}
