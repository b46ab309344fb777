// Copyright 2025, The arams-go Authors

// Package aram is the entry point to the ARAM language engine.
//
// Analyze tokenizes source for editors and never fails. Check runs the
// lexer and the analyzer and returns every compile error. Run checks a
// program and, only when it is free of compile errors, executes it
// against a copy of the caller's initial registers.
//
// Source may be given as a single string, or as one string per line.
package aram

import (
	"github.com/arams-go/arams/asm"
	"github.com/arams-go/arams/diag"
	"github.com/arams-go/arams/internal"
	"github.com/arams-go/arams/lexer"
	"github.com/arams-go/arams/machine"
)

// Source is program text, either whole or already split into lines.
type Source interface {
	string | []string
}

// Lines returns the source lines of src.
func Lines[S Source](src S) (lines []string) {
	switch v := any(src).(type) {
	case string:
		lines = internal.SplitLines(v)
	case []string:
		lines = v
	}
	return
}

// Token is the editor view of a lexer token.
type Token struct {
	Kind   string   `json:"kind"`
	Lexeme string   `json:"lexeme"`
	Errors []string `json:"errors"`
	About  string   `json:"about"`
}

// Analyze returns the tokens of every source line, with their diagnostics.
func Analyze[S Source](src S) (lines [][]Token) {
	tokenized := lexer.Tokenize(Lines(src))
	lines = make([][]Token, len(tokenized))
	for n, line := range tokenized {
		lines[n] = make([]Token, len(line))
		for i, tok := range line {
			errs := make([]string, len(tok.Errors))
			for e, err := range tok.Errors {
				errs[e] = err.Error()
			}
			lines[n][i] = Token{
				Kind:   tok.Kind.String(),
				Lexeme: tok.Lexeme,
				Errors: errs,
				About:  tok.About(),
			}
		}
	}
	return
}

// Compile checks src and returns the executable program, or the compile
// errors when there are any.
func Compile[S Source](src S, opts ...Option) (prog *asm.Program, diags diag.List) {
	cfg := newConfig(opts...)
	an := &asm.Analyzer{Verbose: cfg.verbose}
	return an.Analyze(lexer.Tokenize(Lines(src)))
}

// Check returns every compile error of src. The list is empty for a
// valid program.
func Check[S Source](src S) diag.List {
	_, diags := Compile(src)
	return diags
}

// Run checks src and executes it with a copy of registers. Compile errors
// are returned as diags and nothing is executed. A failure during
// execution is returned as a *diag.ExecutionError.
func Run[S Source](src S, registers map[int]int64, opts ...Option) (snap *machine.Snapshot, diags diag.List, err error) {
	prog, diags := Compile(src, opts...)
	if len(diags) > 0 {
		return
	}

	snap, err = Execute(prog, registers, opts...)
	return
}

// Execute runs a compiled program with a copy of registers. A failure is
// returned as a *diag.ExecutionError.
func Execute(prog *asm.Program, registers map[int]int64, opts ...Option) (snap *machine.Snapshot, err error) {
	cfg := newConfig(opts...)

	for addr := range registers {
		if addr < 0 {
			err = diag.NewExecutionError(machine.ErrRegisterInvalid(addr))
			return
		}
	}

	m := machine.NewMachine(prog, registers)
	m.Verbose = cfg.verbose
	m.MaxSteps = cfg.maxSteps

	final, rerr := m.Run()
	if rerr != nil {
		err = diag.NewExecutionError(rerr)
		return
	}

	snap = &final
	return
}
