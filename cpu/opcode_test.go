package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOpcodeLookup(t *testing.T) {
	assert := assert.New(t)

	for op := OP_HLT; op <= OP_DAT; op++ {
		found, ok := LookupOp(op.String())
		assert.True(ok, op.String())
		assert.Equal(op, found)
	}

	_, ok := LookupOp("LDA")
	assert.False(ok)
	_, ok = LookupOp("jmp")
	assert.False(ok)
}

func TestOpcodeOperand(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		op      CodeOp
		address bool
		operand bool
		limit   int
	}){
		{OP_HLT, false, false, 1},
		{OP_ADD, true, true, MEMORY_SIZE},
		{OP_SUB, true, true, MEMORY_SIZE},
		{OP_STO, true, true, MEMORY_SIZE},
		{OP_LDA, true, true, MEMORY_SIZE},
		{OP_BRA, true, true, MEMORY_SIZE},
		{OP_BRZ, true, true, MEMORY_SIZE},
		{OP_BRP, true, true, MEMORY_SIZE},
		{OP_INP, false, false, 1},
		{OP_OUT, false, false, 1},
		{OP_DAT, false, true, WORD_LIMIT},
	}

	for _, entry := range table {
		assert.Equal(entry.address, entry.op.HasAddress(), entry.op.String())
		assert.Equal(entry.operand, entry.op.HasOperand(), entry.op.String())
		assert.Equal(entry.limit, entry.op.OperandLimit(), entry.op.String())
	}
}

func TestCodeEncode(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		code Code
		word Word
		text string
	}){
		{MakeCode(OP_HLT, 0), 0, "hlt"},
		{MakeCode(OP_ADD, 7), 107, "add 07"},
		{MakeCode(OP_SUB, 99), 299, "sub 99"},
		{MakeCode(OP_STO, 0), 300, "sto 00"},
		{MakeCode(OP_LDA, 42), 542, "lda 42"},
		{MakeCode(OP_BRA, 10), 610, "bra 10"},
		{MakeCode(OP_BRZ, 11), 711, "brz 11"},
		{MakeCode(OP_BRP, 12), 812, "brp 12"},
		{MakeCode(OP_INP, 0), 901, "inp"},
		{MakeCode(OP_OUT, 0), 902, "out"},
		{MakeCode(OP_DAT, 123), 123, "dat 123"},
	}

	for _, entry := range table {
		assert.Equal(entry.word, entry.code.Encode(), entry.text)
		assert.Equal(entry.text, entry.code.String())
	}
}

func TestCodeDecode(t *testing.T) {
	assert := assert.New(t)

	valid := map[Word]Code{
		0:   MakeCode(OP_HLT, 0),
		100: MakeCode(OP_ADD, 0),
		199: MakeCode(OP_ADD, 99),
		250: MakeCode(OP_SUB, 50),
		301: MakeCode(OP_STO, 1),
		505: MakeCode(OP_LDA, 5),
		600: MakeCode(OP_BRA, 0),
		777: MakeCode(OP_BRZ, 77),
		888: MakeCode(OP_BRP, 88),
		901: MakeCode(OP_INP, 0),
		902: MakeCode(OP_OUT, 0),
	}

	for word, expected := range valid {
		code, err := DecodeCode(word)
		assert.NoError(err, "%03d", word)
		assert.Equal(expected, code, "%03d", word)
	}

	for _, word := range []Word{1, 50, 99, 400, 450, 499, 900, 903, 950, 999, 1000} {
		_, err := DecodeCode(word)
		assert.ErrorIs(err, ErrOpcodeInvalid, "%03d", word)
	}
}
