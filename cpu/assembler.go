// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"bufio"
	"io"
	"log"
	"maps"
	"slices"
	"strings"
)

// Assembler is a two pass assembler for the Little Man Computer.
//
// The first pass lexes every line, assigns addresses and binds labels. The
// second pass resolves operands against the completed label table and
// encodes the instructions.
type Assembler struct {
	Verbose bool     // If set, verbosely logs the assembler actions.
	Opcode  []Opcode // List of generated opcodes.

	Label map[string]int // Map of labels to addresses.
	Test  []Test         // List of test directives.
}

// Parse parses an input stream into a Program.
// Assembly stops at the first error; no partial program is returned.
func (asm *Assembler) Parse(input io.Reader) (prog *Program, err error) {
	clear(asm.Label)
	if asm.Label == nil {
		asm.Label = make(map[string]int, 16)
	}
	asm.Opcode = asm.Opcode[:0]
	asm.Test = asm.Test[:0]

	tokens, err := asm.lex(input)
	if err != nil {
		return
	}

	err = asm.bind(tokens)
	if err != nil {
		return
	}

	err = asm.link()
	if err != nil {
		return
	}

	prog = &Program{
		Opcodes: slices.Clone(asm.Opcode),
		Label:   maps.Clone(asm.Label),
		Tests:   slices.Clone(asm.Test),
	}

	return
}

// lex tokenizes all source lines.
func (asm *Assembler) lex(input io.Reader) (tokens []Token, err error) {
	scanner := bufio.NewScanner(input)

	var lineno int
	for scanner.Scan() {
		text := scanner.Text()
		lineno += 1

		if asm.Verbose {
			log.Printf("%v: %v\n", lineno, text)
		}

		var tok Token
		tok, err = LexLine(text, lineno)
		if err != nil {
			err = &ErrLine{LineNo: lineno, Line: text, Err: err}
			return
		}

		if tok.Empty() {
			continue
		}

		tokens = append(tokens, tok)
	}

	err = scanner.Err()

	return
}

// bind is the first pass: address assignment and label binding.
func (asm *Assembler) bind(tokens []Token) (err error) {
	var ip int

	for _, tok := range tokens {
		wrap := func(err error) error {
			return &ErrLine{LineNo: tok.LineNo, Line: tok.Line, Err: err}
		}

		for _, label := range tok.Labels {
			_, ok := asm.Label[label]
			if ok {
				return wrap(ErrLabelDuplicate)
			}
			asm.Label[label] = ip
		}

		if tok.Test != nil {
			if slices.ContainsFunc(asm.Test, func(test Test) bool { return test.Name == tok.Test.Name }) {
				return wrap(ErrTestDuplicate)
			}
			asm.Test = append(asm.Test, *tok.Test)
		}

		if !tok.HasOp {
			continue
		}

		if ip >= MEMORY_SIZE {
			return wrap(ErrAddressOverflow)
		}

		asm.Opcode = append(asm.Opcode, Opcode{
			LineNo:  tok.LineNo,
			Ip:      ip,
			Words:   strings.Fields(stripComment(tok.Line)),
			Code:    Code{Op: tok.Op},
			Operand: tok.Operand,
		})
		ip++
	}

	return
}

// resolve determines the value of an operand.
func (asm *Assembler) resolve(operand Operand) (value int, err error) {
	switch operand.Kind {
	case OPERAND_LITERAL:
		value = operand.Value
	case OPERAND_SYMBOL:
		var ok bool
		value, ok = asm.Label[operand.Text]
		if !ok {
			err = ErrLabelMissing(operand.Text)
		}
	case OPERAND_EXPR:
		value, err = asm.evalExpr(operand.Text)
	}

	return
}

// link is the second pass: operand resolution and encoding.
func (asm *Assembler) link() (err error) {
	for n := range asm.Opcode {
		op := &asm.Opcode[n]

		var value int
		value, err = asm.resolve(op.Operand)
		if err == nil {
			limit := op.Code.Op.OperandLimit()
			if value < 0 || value >= limit {
				err = ErrRange{Value: value, Limit: limit}
			}
		}
		if err != nil {
			err = &ErrLine{LineNo: op.LineNo, Line: strings.Join(op.Words, " "), Err: err}
			return
		}

		op.Code.Operand = Word(value)
	}

	for _, test := range asm.Test {
		for _, value := range slices.Concat(test.Input, test.Output) {
			if value < 0 || value >= WORD_LIMIT {
				err = &ErrLine{LineNo: test.LineNo, Line: "." + test.Name, Err: ErrRange{Value: value, Limit: WORD_LIMIT}}
				return
			}
		}
	}

	return
}
