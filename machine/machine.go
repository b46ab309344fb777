// Copyright 2025, The arams-go Authors

// Package machine executes ARAM programs.
//
// A Machine owns a private register bank seeded from the caller's initial
// values. Reading a register that was never written yields zero. Execution
// stops at the first failure, which is reported as an error wrapping the
// source line of the failing instruction where there is one.
package machine

import (
	"fmt"
	"log"
	"maps"

	"github.com/arams-go/arams/asm"
	"github.com/arams-go/arams/internal"
)

// State is the execution state of a Machine.
type State int

//go:generate go tool stringer -linecomment -type=State
const (
	STATE_RUNNING = State(0) // running
	STATE_HALTED  = State(1) // halted
	STATE_FAILED  = State(2) // failed
)

// Snapshot is the observable machine state after a run.
type Snapshot struct {
	Accumulator int64         `json:"accumulator"`
	Registers   map[int]int64 `json:"registers"`
}

// Machine is the state of a running ARAM program.
type Machine struct {
	Verbose  bool // If set, logs every executed instruction.
	MaxSteps int  // Maximum number of executed instructions, 0 for no limit.

	Program     *asm.Program  // Program being executed.
	Accumulator int64         // Working register.
	Registers   map[int]int64 // Register bank.
	Ip          int           // Index of the next instruction.
	State       State         // Execution state.
	Steps       int           // Number of executed instructions.

	err error
}

// NewMachine creates a machine for prog, with a copy of registers as its
// initial register bank.
func NewMachine(prog *asm.Program, registers map[int]int64) (m *Machine) {
	m = &Machine{
		Program:   prog,
		Registers: maps.Clone(registers),
	}
	if m.Registers == nil {
		m.Registers = map[int]int64{}
	}

	return
}

// Register returns the value of a register, or zero if it was never set.
func (m *Machine) Register(addr int64) int64 {
	if addr < 0 {
		return 0
	}
	return m.Registers[int(addr)]
}

// SetRegister sets the value of a register.
func (m *Machine) SetRegister(addr int64, value int64) (err error) {
	if addr < 0 {
		err = ErrRegisterInvalid(addr)
		return
	}
	m.Registers[int(addr)] = value
	return
}

// value fetches the operand value of an arithmetic or load instruction.
func (m *Machine) value(op asm.Operand) int64 {
	switch op.Mode {
	case asm.MODE_IMMEDIATE:
		return op.Value
	case asm.MODE_DIRECT:
		return m.Register(op.Value)
	case asm.MODE_INDIRECT:
		return m.Register(m.Register(op.Value))
	}
	return 0
}

// address returns the register a store instruction writes.
func (m *Machine) address(op asm.Operand) int64 {
	if op.Mode == asm.MODE_INDIRECT {
		return m.Register(op.Value)
	}
	return op.Value
}

// Execute executes a single instruction, and advances the instruction pointer.
func (m *Machine) Execute(inst asm.Instruction) (err error) {
	if m.Verbose {
		log.Printf("%d: %d: %v (acc=%d)", inst.LineNo, m.Ip, inst, m.Accumulator)
	}

	next := m.Ip + 1
	defer func() {
		if err == nil {
			m.Ip = next
		}
	}()

	op := inst.Operand
	switch inst.Opcode {
	case asm.OP_LOAD:
		m.Accumulator = m.value(op)
	case asm.OP_STORE:
		err = m.SetRegister(m.address(op), m.Accumulator)
	case asm.OP_ADD:
		m.Accumulator += m.value(op)
	case asm.OP_SUB:
		m.Accumulator -= m.value(op)
	case asm.OP_MUL:
		m.Accumulator *= m.value(op)
	case asm.OP_DIV:
		divisor := m.value(op)
		if divisor == 0 {
			err = ErrDivisionByZero
			return
		}
		m.Accumulator /= divisor
	case asm.OP_GOTO:
		next = int(op.Value)
	case asm.OP_JZERO:
		if m.Accumulator == 0 {
			next = int(op.Value)
		}
	case asm.OP_JNZERO:
		if m.Accumulator != 0 {
			next = int(op.Value)
		}
	case asm.OP_END:
		m.State = STATE_HALTED
		next = m.Ip
	default:
		err = ErrOpcodeInvalid(inst.Opcode)
	}

	return
}

// Tick executes the next instruction. done is set once the machine has
// halted or failed.
func (m *Machine) Tick() (done bool, err error) {
	switch m.State {
	case STATE_HALTED:
		return true, nil
	case STATE_FAILED:
		return true, m.err
	}

	defer func() {
		if err != nil {
			m.State = STATE_FAILED
			m.err = err
			done = true
		}
	}()

	if m.MaxSteps > 0 && m.Steps >= m.MaxSteps {
		err = ErrStepLimit
		return
	}

	inst, ok := m.Program.Fetch(m.Ip)
	if !ok {
		err = ErrMissingHalt
		return
	}

	m.Steps++
	err = m.Execute(inst)
	if err != nil {
		err = &ErrRuntime{LineNo: inst.LineNo, Err: err}
		return
	}

	done = m.State == STATE_HALTED
	return
}

// Run executes the program until it halts or fails.
func (m *Machine) Run() (snap Snapshot, err error) {
	for {
		var done bool
		done, err = m.Tick()
		if done {
			break
		}
	}
	if err != nil {
		return
	}

	snap = m.Snapshot()
	return
}

// Snapshot returns a copy of the accumulator and register bank.
func (m *Machine) Snapshot() Snapshot {
	return Snapshot{
		Accumulator: m.Accumulator,
		Registers:   maps.Clone(m.Registers),
	}
}

// String returns a one line summary of the machine state.
func (m *Machine) String() string {
	text := fmt.Sprintf("%v ip=%d acc=%d", m.State, m.Ip, m.Accumulator)
	for addr, value := range internal.Sorted(m.Registers) {
		text += fmt.Sprintf(" r%d=%d", addr, value)
	}
	return text
}
