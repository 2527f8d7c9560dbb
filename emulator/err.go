package emulator

import (
	"errors"

	"github.com/ezrec/lmc/cpu"
	"github.com/ezrec/lmc/translate"
)

var f = translate.From

var (
	ErrNotHalted = errors.New(f("did not halt"))
)

// ErrRuntime indicates the location and machine state of a runtime error.
type ErrRuntime struct {
	Step      int // Index of the failing instruction.
	LineNo    int // Source line of the failing instruction, or 0.
	Registers cpu.Registers
	Err       error
}

func (err *ErrRuntime) Error() string {
	if err.LineNo == 0 {
		return f("step %d (%v) %v", err.Step, err.Registers, err.Err)
	}
	return f("step %d line %d (%v) %v", err.Step, err.LineNo, err.Registers, err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}
