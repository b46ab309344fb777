package lexer

import (
	"strconv"
	"strings"
)

// Token is one lexical unit of a source line.
type Token struct {
	Kind   Kind    // Lexical class.
	Lexeme string  // Raw source text.
	Line   int     // 1-based source line.
	Errors []error // Diagnostics attached to this token.
}

// About returns the editor help text for the token.
func (tok Token) About() string {
	return tok.Kind.About()
}

// Label returns the label name of a definition or jump argument.
func (tok Token) Label() string {
	name, _, _ := strings.Cut(tok.Lexeme, ":")
	return strings.TrimSpace(name)
}

// Value returns the numeric payload of an immediate or address argument.
// The lexer only produces argument kinds for well formed numbers, so the
// value of any other token is zero.
func (tok Token) Value() (value int64) {
	text := tok.Lexeme
	switch tok.Kind {
	case KIND_IMMEDIATE_ARGUMENT, KIND_INDIRECT_ADDRESS_ARGUMENT:
		text = text[1:]
	case KIND_DIRECT_ADDRESS_ARGUMENT:
	default:
		return
	}
	value, _ = strconv.ParseInt(text, 10, 64)
	return
}

// Line is the token sequence of one source line.
type Line []Token

// Errors returns every token diagnostic of the line, in token order.
func (line Line) Errors() (errs []error) {
	for _, tok := range line {
		errs = append(errs, tok.Errors...)
	}
	return
}

// String returns the lexemes of the line, without the line terminator.
func (line Line) String() string {
	lexemes := make([]string, 0, len(line))
	for _, tok := range line {
		if tok.Kind == KIND_NEWLINE {
			continue
		}
		lexemes = append(lexemes, tok.Lexeme)
	}
	return strings.Join(lexemes, " ")
}
