// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"log"

	"github.com/ezrec/lmc/cpu"
)

const (
	STEP_LIMIT = 10000 // Default ceiling of executed instructions per run.
)

// Emulator state. CPU + program listing.
type Emulator struct {
	Verbose   bool         // If set, enables verbose logging.
	*cpu.Cpu               // Reference to the CPU simulation.
	Program   *cpu.Program // Reference to the currently running program listing.
	StepLimit int          // Ceiling for Run; zero selects STEP_LIMIT.
}

// StepResult is the outcome of a batch of debug steps.
type StepResult struct {
	Registers cpu.Registers
	Executed  int  // Instructions executed in this batch.
	Halted    bool // Set if the program has halted.
	Err       error
}

// NewEmulator creates a new emulator.
func NewEmulator() (emu *Emulator) {
	emu = &Emulator{
		Cpu:     &cpu.Cpu{},
		Program: &cpu.Program{},
	}

	return
}

// Reset the machine state from the program image, and queue the inputs.
func (emu *Emulator) Reset(inputs ...cpu.Word) (err error) {
	emu.Cpu.Verbose = emu.Verbose

	err = emu.Cpu.Reset(emu.Program.Binary())
	if err != nil {
		return
	}

	err = emu.Cpu.Feed(inputs...)
	return
}

// LineNo returns the source line number of the next instruction.
func (emu *Emulator) LineNo() int {
	dbg := emu.Program.Debug(emu.Cpu.Pc)
	if dbg.Opcode == nil {
		return 0
	}

	return dbg.Opcode.LineNo
}

// Tick performs a single instruction of the emulator.
func (emu *Emulator) Tick() (done bool, err error) {
	emu.Cpu.Verbose = emu.Verbose

	if emu.Cpu.Halted {
		done = true
		return
	}

	lineno := emu.LineNo()
	err = emu.Cpu.Tick()
	if err != nil {
		err = &ErrRuntime{
			Step:      emu.Cpu.Ticks,
			LineNo:    lineno,
			Registers: emu.Cpu.Registers,
			Err:       err,
		}
		return
	}

	done = emu.Cpu.Halted
	if done && emu.Verbose {
		log.Printf("emulator: halted after %d steps", emu.Cpu.Ticks)
	}

	return
}

// Step executes up to count instructions, stopping early on halt or error.
// A count less than one executes a single instruction. The machine state is
// preserved between calls.
func (emu *Emulator) Step(count int) (result StepResult) {
	if count < 1 {
		count = 1
	}

	for result.Executed < count {
		var done bool
		before := emu.Cpu.Ticks
		done, result.Err = emu.Tick()
		result.Executed += emu.Cpu.Ticks - before
		if done || result.Err != nil {
			break
		}
	}

	result.Registers = emu.Cpu.Registers
	result.Halted = emu.Cpu.Halted

	return
}

// Run executes until halt, error, or the step limit is exceeded.
func (emu *Emulator) Run() (err error) {
	limit := emu.StepLimit
	if limit <= 0 {
		limit = STEP_LIMIT
	}

	for !emu.Cpu.Halted {
		if emu.Cpu.Ticks >= limit {
			err = &ErrRuntime{
				Step:      emu.Cpu.Ticks,
				LineNo:    emu.LineNo(),
				Registers: emu.Cpu.Registers,
				Err:       ErrNotHalted,
			}
			return
		}

		_, err = emu.Tick()
		if err != nil {
			return
		}
	}

	return
}
