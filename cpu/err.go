package cpu

import (
	"errors"

	"github.com/ezrec/lmc/translate"
)

var f = translate.From

var (
	// Cpu errors
	ErrHalted          = errors.New(f("cpu halted"))
	ErrAddressOverflow = errors.New(f("address overflow"))
	ErrInputExhausted  = errors.New(f("input exhausted"))
	ErrOpcodeInvalid   = errors.New(f("opcode invalid"))

	// Assembler errors
	ErrSyntax             = errors.New(f("syntax error"))
	ErrLabelDuplicate     = errors.New(f("label duplicated"))
	ErrLabelUndefined     = errors.New(f("label undefined"))
	ErrTestDuplicate      = errors.New(f("test duplicated"))
	ErrValueRange         = errors.New(f("value out of range"))
	ErrInstructionInvalid = syntaxError(f("instruction invalid"))
	ErrOperandMissing     = syntaxError(f("operand missing"))
	ErrOperandExtra       = syntaxError(f("excessive operands"))
)

// syntaxError is a static syntax error message.
type syntaxError string

func (err syntaxError) Error() string {
	return string(err)
}

func (err syntaxError) Is(target error) bool {
	return target == ErrSyntax
}

// ErrLine indicates the source line of an assembly error.
type ErrLine struct {
	LineNo int
	Line   string
	Err    error
}

func (err *ErrLine) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err *ErrLine) Unwrap() error {
	return err.Err
}

type ErrLabelMissing string

func (el ErrLabelMissing) Error() string {
	return f("label %v missing", string(el))
}

func (el ErrLabelMissing) Is(target error) bool {
	return target == ErrLabelUndefined
}

type ErrParseNumber string

func (err ErrParseNumber) Error() string {
	return f("'%v' is not a number", string(err))
}

func (err ErrParseNumber) Is(target error) bool {
	return target == ErrSyntax
}

type ErrParseLabel string

func (err ErrParseLabel) Error() string {
	return f("'%v' is not a valid label", string(err))
}

func (err ErrParseLabel) Is(target error) bool {
	return target == ErrSyntax
}

type ErrParseOperand string

func (err ErrParseOperand) Error() string {
	return f("'%v' is not a number or label", string(err))
}

func (err ErrParseOperand) Is(target error) bool {
	return target == ErrSyntax
}

type ErrParseTest string

func (err ErrParseTest) Error() string {
	return f("'%v' is not a valid test directive", string(err))
}

func (err ErrParseTest) Is(target error) bool {
	return target == ErrSyntax
}

// ErrParseExpression wraps a failed $(...) evaluation.
type ErrParseExpression struct {
	Expr string
	Err  error
}

func (err *ErrParseExpression) Error() string {
	if err.Err == nil {
		return f("$(%v) is not a valid expression", err.Expr)
	}
	return f("$(%v) is not a valid expression: %v", err.Expr, err.Err)
}

func (err *ErrParseExpression) Unwrap() error {
	return err.Err
}

func (err *ErrParseExpression) Is(target error) bool {
	return target == ErrSyntax
}

// ErrRange reports a value outside of [0, Limit).
type ErrRange struct {
	Value int
	Limit int
}

func (err ErrRange) Error() string {
	return f("value %d out of range 0..%d", err.Value, err.Limit-1)
}

func (err ErrRange) Is(target error) bool {
	return target == ErrValueRange
}

// ErrOpcode is an undecodable instruction word.
type ErrOpcode Word

func (eo ErrOpcode) Error() string {
	return f("bad opcode %03d", int(eo))
}

func (eo ErrOpcode) Is(target error) bool {
	if target == ErrOpcodeInvalid {
		return true
	}
	_, ok := target.(ErrOpcode)
	return ok
}
