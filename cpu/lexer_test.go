package cpu

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLexLine(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		line    string
		labels  []string
		op      CodeOp
		hasOp   bool
		operand Operand
	}){
		{"", nil, OP_HLT, false, Operand{}},
		{"   ; just a comment", nil, OP_HLT, false, Operand{}},
		{"hlt", nil, OP_HLT, true, Operand{}},
		{"inp", nil, OP_INP, true, Operand{}},
		{"out ; add 23 ; !@#$%^&*()", nil, OP_OUT, true, Operand{}},
		{"lda 01", nil, OP_LDA, true, Operand{Kind: OPERAND_LITERAL, Value: 1}},
		{"\tsto\t02", nil, OP_STO, true, Operand{Kind: OPERAND_LITERAL, Value: 2}},
		{"dat 000123", nil, OP_DAT, true, Operand{Kind: OPERAND_LITERAL, Value: 123}},
		{"brp symbolic", nil, OP_BRP, true, Operand{Kind: OPERAND_SYMBOL, Text: "symbolic"}},
		{"loop: bra loop", []string{"loop"}, OP_BRA, true, Operand{Kind: OPERAND_SYMBOL, Text: "loop"}},
		{"loop:bra loop", []string{"loop"}, OP_BRA, true, Operand{Kind: OPERAND_SYMBOL, Text: "loop"}},
		{"_a: B2: add HasNums123", []string{"_a", "B2"}, OP_ADD, true, Operand{Kind: OPERAND_SYMBOL, Text: "HasNums123"}},
		{"alone:", []string{"alone"}, OP_HLT, false, Operand{}},
		{"lda $(table + 2)", nil, OP_LDA, true, Operand{Kind: OPERAND_EXPR, Text: "table + 2"}},
	}

	for _, entry := range table {
		tok, err := LexLine(entry.line, 7)
		assert.NoError(err, entry.line)
		assert.Equal(7, tok.LineNo, entry.line)
		assert.Equal(entry.line, tok.Line, entry.line)
		assert.Equal(entry.labels, tok.Labels, entry.line)
		assert.Equal(entry.hasOp, tok.HasOp, entry.line)
		assert.Equal(entry.op, tok.Op, entry.line)
		assert.Equal(entry.operand, tok.Operand, entry.line)
		assert.Nil(tok.Test, entry.line)
	}
}

func TestLexLineEmpty(t *testing.T) {
	assert := assert.New(t)

	for _, line := range []string{"", "    ", "; lda 5", "\t;"} {
		tok, err := LexLine(line, 1)
		assert.NoError(err)
		assert.True(tok.Empty(), line)
	}

	tok, err := LexLine("label:", 1)
	assert.NoError(err)
	assert.False(tok.Empty())
}

func TestLexLineEscapedComment(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("abc;def ", stripComment(`abc\;def ; comment`))
	assert.Equal("", stripComment("; comment"))
	assert.Equal("lda 5 ", stripComment("lda 5 ; comment ; more"))
}

func TestLexTest(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		line   string
		name   string
		input  []int
		output []int
	}){
		{".zero [1,0] [0]", "zero", []int{1, 0}, []int{0}},
		{".twenty   [5, 1, 0, 1, 0, 0]   [20] ; comment", "twenty", []int{5, 1, 0, 1, 0, 0}, []int{20}},
		{".fail1 [] [1]", "fail1", nil, []int{1}},
		{".nothing[][]", "nothing", nil, nil},
		{".big [1000] [9999]", "big", []int{1000}, []int{9999}},
	}

	for _, entry := range table {
		tok, err := LexLine(entry.line, 3)
		assert.NoError(err, entry.line)
		if !assert.NotNil(tok.Test, entry.line) {
			continue
		}
		assert.False(tok.HasOp, entry.line)
		assert.Equal(entry.name, tok.Test.Name, entry.line)
		assert.Equal(3, tok.Test.LineNo, entry.line)
		assert.Equal(entry.input, tok.Test.Input, entry.line)
		assert.Equal(entry.output, tok.Test.Output, entry.line)
	}
}

func TestLexLineErrors(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		line string
		err  error
	}){
		{"lda", ErrOperandMissing},
		{"dat", ErrOperandMissing},
		{"lda 0 1", ErrOperandExtra},
		{"lda 0 a_label", ErrOperandExtra},
		{"dat a_label 123", ErrOperandExtra},
		{"inp 0", ErrOperandExtra},
		{"hlt a_label", ErrOperandExtra},
		{"in 12", ErrInstructionInvalid},
		{"LDA 12", ErrInstructionInvalid},
		{"lda add", ErrParseOperand("add")},
		{"lda test:", ErrParseOperand("test:")},
		{"lda 12.3", ErrParseNumber("12.3")},
		{"lda -1", ErrParseOperand("-1")},
		{"lda *", ErrParseOperand("*")},
		{"lda $(1 + 2", ErrParseOperand("$(1 + 2")},
		{"1abc: hlt", ErrParseLabel("1abc")},
		{"add: hlt", ErrParseLabel("add")},
		{"bad-label: hlt", ErrParseLabel("bad-label")},
		{": hlt", ErrParseLabel("")},
		{".zero [1,0]", ErrParseTest(".zero [1,0]")},
		{".zero [1,0] [0", ErrParseTest(".zero [1,0] [0")},
		{".zero 1,0 0", ErrParseTest(".zero 1,0 0")},
		{".9lives [1] [0]", ErrParseLabel("9lives")},
		{". [1] [0]", ErrParseLabel("")},
		{".zero [1,,0] [0]", ErrParseNumber("")},
		{".zero [1,x] [0]", ErrParseNumber("x")},
		{".zero [-1] [0]", ErrParseNumber("-1")},
	}

	for _, entry := range table {
		_, err := LexLine(entry.line, 1)
		assert.Error(err, entry.line)
		assert.True(errors.Is(err, entry.err), "%v: %v", entry.line, err)
		assert.True(errors.Is(err, ErrSyntax), "%v: %v", entry.line, err)
	}
}
