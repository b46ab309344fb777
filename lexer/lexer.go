// Package lexer splits ARAM source lines into typed tokens.
//
// Tokenizing never fails. Text that does not form a valid token becomes a
// KIND_UNKNOWN token with the reason attached, and scanning carries on with
// the next word.
package lexer

import (
	"regexp"
	"slices"
	"strconv"
	"strings"
	"unicode"
)

// COMMENT_MARKER starts a comment running to the end of the line.
const COMMENT_MARKER = "//"

var (
	labelRe  = regexp.MustCompile(`^[A-Za-z0-9_]+$`)
	digitsRe = regexp.MustCompile(`^[0-9]+$`)
)

// IsLabel returns true if name is usable as a label.
// Names made only of digits would read as register addresses.
func IsLabel(name string) bool {
	return labelRe.MatchString(name) && !digitsRe.MatchString(name)
}

// isAddress returns true for a register index that fits an int.
func isAddress(text string) bool {
	if !digitsRe.MatchString(text) {
		return false
	}
	_, err := strconv.Atoi(text)
	return err == nil
}

type word struct {
	text       string
	start, end int
}

// splitWords splits on any run of white space, keeping byte offsets.
func splitWords(line string) (words []word) {
	start := -1
	for n, r := range line {
		if unicode.IsSpace(r) {
			if start >= 0 {
				words = append(words, word{text: line[start:n], start: start, end: n})
				start = -1
			}
		} else if start < 0 {
			start = n
		}
	}
	if start >= 0 {
		words = append(words, word{text: line[start:], start: start, end: len(line)})
	}
	return
}

// argument classifies an operand word by its addressing form.
func argument(text string) (kind Kind, err error) {
	switch {
	case strings.HasPrefix(text, "#"):
		if _, perr := strconv.ParseInt(text[1:], 10, 64); perr != nil {
			return KIND_UNKNOWN, ErrArgumentMalformed(text)
		}
		kind = KIND_IMMEDIATE_ARGUMENT
	case strings.HasPrefix(text, "*"):
		if !isAddress(text[1:]) {
			return KIND_UNKNOWN, ErrArgumentMalformed(text)
		}
		kind = KIND_INDIRECT_ADDRESS_ARGUMENT
	case digitsRe.MatchString(text):
		if !isAddress(text) {
			return KIND_UNKNOWN, ErrArgumentMalformed(text)
		}
		kind = KIND_DIRECT_ADDRESS_ARGUMENT
	case IsLabel(text):
		kind = KIND_JUMP_ARGUMENT
	default:
		return KIND_UNKNOWN, ErrArgumentMalformed(text)
	}

	return
}

// TokenizeLine tokenizes a single source line. If terminated is set, the
// line ends with a KIND_NEWLINE token.
//
// The operands of an instruction are checked against the argument kinds it
// accepts: a missing operand is reported on the instruction token, a wrong
// or surplus operand on the operand token.
func TokenizeLine(text string, lineno int, terminated bool) (line Line) {
	emit := func(kind Kind, lexeme string, errs ...error) {
		line = append(line, Token{Kind: kind, Lexeme: lexeme, Line: lineno, Errors: errs})
	}

	code, comment := text, ""
	if n := strings.Index(text, COMMENT_MARKER); n >= 0 {
		code = text[:n]
		comment = strings.TrimRightFunc(text[n:], unicode.IsSpace)
	}

	words := splitWords(code)
	leading := true // Only label definitions seen so far.
	head := -1      // Index of the instruction token.
	filled := false // The instruction's operand slot is taken.
	for n := 0; n < len(words); n++ {
		w := words[n]

		if leading {
			// Leading label definitions, `name:` or `name :`.
			if name, ok := strings.CutSuffix(w.text, ":"); ok {
				switch {
				case IsLabel(name):
					emit(KIND_LABEL_DEFINITION, w.text)
				case len(name) == 0:
					emit(KIND_UNKNOWN, w.text, ErrTokenUnknown(w.text))
				default:
					emit(KIND_UNKNOWN, w.text, ErrLabelInvalid(name))
				}
				continue
			}
			if n+1 < len(words) && words[n+1].text == ":" && IsLabel(w.text) {
				emit(KIND_LABEL_DEFINITION, code[w.start:words[n+1].end])
				n++
				continue
			}
		}

		if strings.HasSuffix(w.text, ":") {
			emit(KIND_UNKNOWN, w.text, ErrLabelMisplaced(w.text))
			continue
		}

		if head < 0 {
			if kind, ok := mnemonics[strings.ToLower(w.text)]; ok {
				head = len(line)
				leading = false
				emit(kind, w.text)
				continue
			}
			if leading {
				leading = false
				if labelRe.MatchString(w.text) {
					emit(KIND_UNKNOWN, w.text, ErrInstructionUnknown(w.text))
				} else {
					emit(KIND_UNKNOWN, w.text, ErrTokenUnknown(w.text))
				}
				continue
			}
		}

		kind, err := argument(w.text)
		switch {
		case err != nil:
			emit(kind, w.text, err)
			filled = head >= 0
		case head < 0:
			// Operand of an unknown instruction.
			emit(kind, w.text)
		case filled || len(line[head].Kind.Operands()) == 0:
			emit(KIND_UNKNOWN, w.text, ErrArgumentExtra(w.text))
		case !slices.Contains(line[head].Kind.Operands(), kind):
			emit(kind, w.text, ErrArgumentInvalid{
				Instruction: line[head].Kind,
				Argument:    kind,
				Lexeme:      w.text,
			})
			filled = true
		default:
			emit(kind, w.text)
			filled = true
		}
	}

	if head >= 0 && !filled && len(line[head].Kind.Operands()) > 0 {
		line[head].Errors = append(line[head].Errors, ErrArgumentMissing(line[head].Kind))
	}

	if len(comment) > 0 {
		emit(KIND_COMMENT, comment)
	}

	if terminated {
		emit(KIND_NEWLINE, "\n")
	}

	return
}

// Tokenize tokenizes every source line. The result has one Line per input
// line, and every line but the last ends with a KIND_NEWLINE token.
func Tokenize(lines []string) (tokens []Line) {
	tokens = make([]Line, len(lines))
	for n, text := range lines {
		tokens[n] = TokenizeLine(text, n+1, n < len(lines)-1)
	}
	return
}
