// Package diag holds the diagnostic shapes shared by every stage of the
// ARAM engine.
//
// Compile time problems are collected exhaustively into a List of
// line-addressed Diagnostic entries. Run time problems stop execution at
// the first failure and are reported as a single ExecutionError.
package diag

import (
	"cmp"
	"slices"
	"strings"

	"github.com/arams-go/arams/translate"
)

var f = translate.From

// Diagnostic is a compile time error at a 1-based source line.
type Diagnostic struct {
	Line    int    `json:"line"`    // 1-based source line.
	Message string `json:"message"` // Rendered message.
	Err     error  `json:"-"`       // Underlying error, for errors.Is and errors.As.
}

// New creates a diagnostic for err at line.
func New(line int, err error) Diagnostic {
	return Diagnostic{
		Line:    line,
		Message: err.Error(),
		Err:     err,
	}
}

func (d Diagnostic) Error() string {
	return f("line %d %v", d.Line, d.Message)
}

func (d Diagnostic) Unwrap() error {
	return d.Err
}

// List is the complete, line ordered set of compile errors of a program.
type List []Diagnostic

// Add appends a diagnostic for err at line.
func (l *List) Add(line int, err error) {
	*l = append(*l, New(line, err))
}

// Sort orders the list by line, keeping the discovery order within a line.
func (l List) Sort() {
	slices.SortStableFunc(l, func(a, b Diagnostic) int {
		return cmp.Compare(a.Line, b.Line)
	})
}

// Lines returns the diagnostics reported at line.
func (l List) Lines(line int) (out List) {
	for _, d := range l {
		if d.Line == line {
			out = append(out, d)
		}
	}
	return
}

// Err returns the list as an error, or nil if it is empty.
func (l List) Err() error {
	if len(l) == 0 {
		return nil
	}
	return l
}

func (l List) Error() string {
	msgs := make([]string, len(l))
	for n, d := range l {
		msgs[n] = d.Error()
	}
	return strings.Join(msgs, "\n")
}

// Unwrap exposes the individual diagnostics to errors.Is and errors.As.
func (l List) Unwrap() []error {
	errs := make([]error, len(l))
	for n, d := range l {
		errs[n] = d
	}
	return errs
}

// ExecutionError is the single failure that stopped a run.
type ExecutionError struct {
	Message string `json:"message"`
	Err     error  `json:"-"`
}

// NewExecutionError wraps a machine failure.
func NewExecutionError(err error) *ExecutionError {
	return &ExecutionError{
		Message: err.Error(),
		Err:     err,
	}
}

func (err *ExecutionError) Error() string {
	return err.Message
}

func (err *ExecutionError) Unwrap() error {
	return err.Err
}
