package cpu

import (
	"fmt"
)

const (
	MEMORY_SIZE = 100  // Number of memory cells, and the address limit.
	WORD_LIMIT  = 1000 // Words hold three decimal digits.
)

// Word is a single three digit memory cell, 000 to 999.
type Word uint16

// CodeOp is an instruction mnemonic.
type CodeOp int

//go:generate go tool stringer -linecomment -type=CodeOp
const (
	OP_HLT = CodeOp(0)  // hlt
	OP_ADD = CodeOp(1)  // add
	OP_SUB = CodeOp(2)  // sub
	OP_STO = CodeOp(3)  // sto
	OP_LDA = CodeOp(4)  // lda
	OP_BRA = CodeOp(5)  // bra
	OP_BRZ = CodeOp(6)  // brz
	OP_BRP = CodeOp(7)  // brp
	OP_INP = CodeOp(8)  // inp
	OP_OUT = CodeOp(9)  // out
	OP_DAT = CodeOp(10) // dat
)

// opMap maps mnemonics to opcodes.
var opMap = map[string]CodeOp{
	"hlt": OP_HLT,
	"add": OP_ADD,
	"sub": OP_SUB,
	"sto": OP_STO,
	"lda": OP_LDA,
	"bra": OP_BRA,
	"brz": OP_BRZ,
	"brp": OP_BRP,
	"inp": OP_INP,
	"out": OP_OUT,
	"dat": OP_DAT,
}

// opClass is the hundreds digit of the encoded address instructions.
var opClass = map[CodeOp]Word{
	OP_ADD: 1,
	OP_SUB: 2,
	OP_STO: 3,
	OP_LDA: 5,
	OP_BRA: 6,
	OP_BRZ: 7,
	OP_BRP: 8,
}

// Fixed encodings of the operand-less instructions.
const (
	CODE_HLT = Word(0)
	CODE_INP = Word(901)
	CODE_OUT = Word(902)
)

// LookupOp returns the opcode for a mnemonic.
func LookupOp(mnemonic string) (op CodeOp, ok bool) {
	op, ok = opMap[mnemonic]
	return
}

// HasAddress returns true if the operand is a memory address.
func (op CodeOp) HasAddress() bool {
	_, ok := opClass[op]
	return ok
}

// HasOperand returns true if the instruction takes an operand.
func (op CodeOp) HasOperand() bool {
	return op == OP_DAT || op.HasAddress()
}

// OperandLimit returns the exclusive upper bound of the operand.
func (op CodeOp) OperandLimit() int {
	switch {
	case op == OP_DAT:
		return WORD_LIMIT
	case op.HasAddress():
		return MEMORY_SIZE
	}
	return 1
}

// Code is a resolved instruction.
type Code struct {
	Op      CodeOp
	Operand Word
}

// MakeCode creates an instruction.
func MakeCode(op CodeOp, operand Word) Code {
	return Code{Op: op, Operand: operand}
}

// Encode returns the three digit machine word of the instruction.
func (code Code) Encode() (word Word) {
	switch code.Op {
	case OP_HLT:
		word = CODE_HLT
	case OP_INP:
		word = CODE_INP
	case OP_OUT:
		word = CODE_OUT
	case OP_DAT:
		word = code.Operand
	default:
		word = opClass[code.Op]*100 + code.Operand
	}

	return
}

// DecodeCode decodes a machine word into an instruction.
// Data is never decoded; every word decodes as an instruction or fails.
func DecodeCode(word Word) (code Code, err error) {
	switch word {
	case CODE_HLT:
		code = Code{Op: OP_HLT}
		return
	case CODE_INP:
		code = Code{Op: OP_INP}
		return
	case CODE_OUT:
		code = Code{Op: OP_OUT}
		return
	}

	if word >= WORD_LIMIT {
		err = ErrOpcode(word)
		return
	}

	class := word / 100
	for op, op_class := range opClass {
		if op_class == class {
			code = Code{Op: op, Operand: word % 100}
			return
		}
	}

	err = ErrOpcode(word)
	return
}

// String returns the assembly language representation of this instruction.
func (code Code) String() string {
	if code.Op.HasOperand() {
		return fmt.Sprintf("%v %02d", code.Op, code.Operand)
	}

	return code.Op.String()
}
