package cpu

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

// OperandKind is the type of an unresolved operand.
type OperandKind int

const (
	OPERAND_NONE    = OperandKind(0) // No operand.
	OPERAND_LITERAL = OperandKind(1) // Decimal literal.
	OPERAND_SYMBOL  = OperandKind(2) // Label reference.
	OPERAND_EXPR    = OperandKind(3) // $(...) expression.
)

// Operand is an instruction operand pending resolution.
type Operand struct {
	Kind  OperandKind
	Value int    // OPERAND_LITERAL value.
	Text  string // OPERAND_SYMBOL label, or OPERAND_EXPR expression.
}

// Token is the meaningful content of a single source line.
type Token struct {
	LineNo  int
	Line    string
	Labels  []string // Labels defined on this line.
	Op      CodeOp
	HasOp   bool
	Operand Operand
	Test    *Test // Test directive, if any.
}

// Empty returns true if the line contributes nothing.
func (tok *Token) Empty() bool {
	return len(tok.Labels) == 0 && !tok.HasOp && tok.Test == nil
}

var (
	reLabel = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)
	reTest  = regexp.MustCompile(`^\.([^\s\[]*)\s*\[([^\[\]]*)\]\s*\[([^\[\]]*)\]$`)
)

// stripComment removes everything from the first unescaped ';'.
func stripComment(text string) string {
	var out strings.Builder
	for n := 0; n < len(text); n++ {
		ch := text[n]
		if ch == '\\' && n+1 < len(text) && text[n+1] == ';' {
			out.WriteByte(';')
			n++
			continue
		}
		if ch == ';' {
			break
		}
		out.WriteByte(ch)
	}

	return out.String()
}

// ValidLabel returns true if the name is a legal label or test name.
func ValidLabel(name string) bool {
	if !reLabel.MatchString(name) {
		return false
	}
	_, reserved := opMap[name]
	return !reserved
}

// parseNumber parses a decimal literal.
func parseNumber(word string) (value int, err error) {
	if len(word) == 0 || strings.TrimLeft(word, "0123456789") != "" {
		err = ErrParseNumber(word)
		return
	}

	value, err = strconv.Atoi(word)
	if err != nil {
		err = ErrParseNumber(word)
	}

	return
}

// parseList parses a comma separated list of decimal literals.
func parseList(text string) (values []int, err error) {
	text = strings.TrimSpace(text)
	if len(text) == 0 {
		return
	}

	for _, word := range strings.Split(text, ",") {
		var value int
		value, err = parseNumber(strings.TrimSpace(word))
		if err != nil {
			return
		}
		values = append(values, value)
	}

	return
}

// lexTest parses a '.name [inputs] [outputs]' directive.
func lexTest(tok *Token, line string) (err error) {
	match := reTest.FindStringSubmatch(line)
	if match == nil {
		err = ErrParseTest(line)
		return
	}

	name := match[1]
	if !ValidLabel(name) {
		err = ErrParseLabel(name)
		return
	}

	test := &Test{Name: name, LineNo: tok.LineNo}

	inputs, err := parseList(match[2])
	if err != nil {
		return
	}
	outputs, err := parseList(match[3])
	if err != nil {
		return
	}

	test.Input = inputs
	test.Output = outputs
	tok.Test = test

	return
}

// parseOperand classifies an operand.
func parseOperand(text string) (operand Operand, err error) {
	switch {
	case strings.HasPrefix(text, "$("):
		if !strings.HasSuffix(text, ")") {
			err = ErrParseOperand(text)
			return
		}
		operand = Operand{Kind: OPERAND_EXPR, Text: text[2 : len(text)-1]}
	case len(strings.Fields(text)) > 1:
		err = ErrOperandExtra
	case len(text) > 0 && text[0] >= '0' && text[0] <= '9':
		var value int
		value, err = parseNumber(text)
		if err != nil {
			return
		}
		operand = Operand{Kind: OPERAND_LITERAL, Value: value}
	case reLabel.MatchString(text):
		if _, reserved := opMap[text]; reserved {
			err = ErrParseOperand(text)
			return
		}
		operand = Operand{Kind: OPERAND_SYMBOL, Text: text}
	default:
		err = ErrParseOperand(text)
	}

	return
}

// LexLine splits a single source line into its labels, instruction and
// operand, or test directive. Blank and comment-only lines produce an empty
// token.
func LexLine(text string, lineno int) (tok Token, err error) {
	tok = Token{LineNo: lineno, Line: text}

	line := strings.TrimSpace(stripComment(text))
	if len(line) == 0 {
		return
	}

	if line[0] == '.' {
		err = lexTest(&tok, line)
		return
	}

	// label: prefixes
	for {
		colon := strings.IndexByte(line, ':')
		if colon < 0 {
			break
		}
		label := strings.TrimSpace(line[:colon])
		if len(strings.Fields(label)) > 1 {
			// The colon belongs to an operand.
			break
		}
		if !ValidLabel(label) {
			err = ErrParseLabel(label)
			return
		}
		tok.Labels = append(tok.Labels, label)
		line = strings.TrimSpace(line[colon+1:])
	}

	if len(line) == 0 {
		return
	}

	mnemonic, rest := line, ""
	if space := strings.IndexFunc(line, unicode.IsSpace); space >= 0 {
		mnemonic, rest = line[:space], strings.TrimSpace(line[space:])
	}

	op, ok := opMap[mnemonic]
	if !ok {
		err = ErrInstructionInvalid
		return
	}
	tok.Op = op
	tok.HasOp = true

	if !op.HasOperand() {
		if len(rest) != 0 {
			err = ErrOperandExtra
		}
		return
	}

	if len(rest) == 0 {
		err = ErrOperandMissing
		return
	}

	tok.Operand, err = parseOperand(rest)

	return
}
