package cpu

import (
	"fmt"
	"log"

	"github.com/ezrec/lmc/io"
)

// Channel is the console I/O channel interface.
type Channel io.Channel

// Registers is the register file of the CPU.
type Registers struct {
	Acc Word // Accumulator.
	Pc  int  // Address of the next instruction.
	Neg bool // Set by a subtraction with a negative result.
}

// String returns the registers as a string.
func (reg Registers) String() string {
	neg := 0
	if reg.Neg {
		neg = 1
	}
	return fmt.Sprintf("pc:%02d acc:%03d neg:%d", reg.Pc, reg.Acc, neg)
}

// Trace is emitted after each executed instruction.
type Trace struct {
	Step int  // Zero based index of the executed instruction.
	Ip   int  // Address the instruction was fetched from.
	Code Code // Decoded instruction.
	Registers
}

// Cpu is the simulation context for the Little Man Computer.
type Cpu struct {
	Verbose bool // Set to enable verbose logging.

	Registers
	Memory [MEMORY_SIZE]Word // Memory cells; code and data alike.
	Input  []Word            // Pending input values.
	Output []Word            // Values written so far.
	Halted bool              // Set by hlt.

	Ticks int // Executed instruction counter.

	Console Channel        // If set, refills empty input and echoes output.
	Trace   func(tr Trace) // If set, called after each executed instruction.
}

// NewCpu creates a new CPU with the memory image loaded.
func NewCpu(image []Word) (cpu *Cpu, err error) {
	cpu = &Cpu{}
	err = cpu.Reset(image)
	return
}

// Reset the CPU state, and load a copy of the memory image.
// Memory beyond the image is zeroed.
func (cpu *Cpu) Reset(image []Word) (err error) {
	if len(image) > MEMORY_SIZE {
		err = ErrAddressOverflow
		return
	}

	if cpu.Verbose {
		log.Printf("cpu: reset")
	}

	cpu.Registers = Registers{}
	clear(cpu.Memory[:])
	copy(cpu.Memory[:], image)
	cpu.Input = nil
	cpu.Output = nil
	cpu.Halted = false
	cpu.Ticks = 0

	return
}

// Feed appends values to the input queue.
func (cpu *Cpu) Feed(values ...Word) (err error) {
	for _, value := range values {
		if value >= WORD_LIMIT {
			err = ErrRange{Value: int(value), Limit: WORD_LIMIT}
			return
		}
	}

	cpu.Input = append(cpu.Input, values...)
	return
}

// String returns the current CPU state as a string.
func (cpu *Cpu) String() (text string) {
	text = cpu.Registers.String()
	if cpu.Halted {
		text += " halted"
	}
	text += fmt.Sprintf("\n   in: %v\n  out: %v\n", cpu.Input, cpu.Output)
	return
}

// FetchCode fetches and decodes the instruction at the program counter.
func (cpu *Cpu) FetchCode() (code Code, err error) {
	if cpu.Pc < 0 || cpu.Pc >= MEMORY_SIZE {
		err = ErrAddressOverflow
		return
	}

	code, err = DecodeCode(cpu.Memory[cpu.Pc])
	return
}

// Tick executes a single CPU instruction cycle.
func (cpu *Cpu) Tick() (err error) {
	if cpu.Halted {
		err = ErrHalted
		return
	}

	ip := cpu.Pc

	code, err := cpu.FetchCode()
	if err != nil {
		return
	}

	cpu.Pc++

	err = cpu.Execute(code)
	if err != nil {
		// Leave the PC at the failing instruction.
		cpu.Pc = ip
		return
	}

	if cpu.Trace != nil {
		cpu.Trace(Trace{Step: cpu.Ticks, Ip: ip, Code: code, Registers: cpu.Registers})
	}

	cpu.Ticks++

	return
}

// receive pops the next input value, consulting the console if empty.
func (cpu *Cpu) receive() (value Word, err error) {
	if len(cpu.Input) == 0 {
		if cpu.Console == nil {
			err = ErrInputExhausted
			return
		}
		var in uint16
		in, err = cpu.Console.Receive()
		if err != nil {
			return
		}
		err = cpu.Feed(Word(in))
		if err != nil {
			return
		}
	}

	value = cpu.Input[0]
	cpu.Input = cpu.Input[1:]
	return
}

// Execute executes a single decoded instruction.
// The program counter has already been advanced past the instruction.
func (cpu *Cpu) Execute(code Code) (err error) {
	if cpu.Verbose {
		log.Printf("%02d: %v", cpu.Pc-1, code)
	}

	addr := int(code.Operand)

	switch code.Op {
	case OP_LDA:
		cpu.Acc = cpu.Memory[addr]
	case OP_STO:
		cpu.Memory[addr] = cpu.Acc
	case OP_ADD:
		cpu.Neg = false
		sum := int(cpu.Acc) + int(cpu.Memory[addr])
		if cpu.Verbose && sum >= WORD_LIMIT {
			log.Printf("%03d + %03d = %d: overflow", cpu.Acc, cpu.Memory[addr], sum)
		}
		cpu.Acc = Word(sum % WORD_LIMIT)
	case OP_SUB:
		cpu.Neg = false
		diff := int(cpu.Acc) - int(cpu.Memory[addr])
		if diff < 0 {
			if cpu.Verbose {
				log.Printf("%03d - %03d = %d: underflow", cpu.Acc, cpu.Memory[addr], diff)
			}
			cpu.Neg = true
			diff = (diff + WORD_LIMIT) % WORD_LIMIT
		}
		cpu.Acc = Word(diff)
	case OP_INP:
		var value Word
		value, err = cpu.receive()
		if err != nil {
			return
		}
		cpu.Acc = value
	case OP_OUT:
		cpu.Output = append(cpu.Output, cpu.Acc)
		if cpu.Console != nil {
			err = cpu.Console.Send(uint16(cpu.Acc))
		}
	case OP_HLT:
		cpu.Halted = true
	case OP_BRZ:
		if cpu.Acc == 0 {
			cpu.Pc = addr
		}
	case OP_BRP:
		if !cpu.Neg {
			cpu.Pc = addr
		}
	case OP_BRA:
		cpu.Pc = addr
	default:
		err = ErrOpcode(code.Encode())
	}

	return
}

// String returns the trace as a listing line.
func (tr Trace) String() string {
	return fmt.Sprintf("%4d %02d: %-7v %v", tr.Step, tr.Ip, tr.Code, tr.Registers)
}
