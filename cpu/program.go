package cpu

import (
	"iter"
	"slices"
)

// Test is a named fixture of input values and the expected output values.
type Test struct {
	Name   string
	LineNo int
	Input  []int
	Output []int
}

// Inputs returns the test inputs as machine words.
func (test *Test) Inputs() (words []Word) {
	for _, value := range test.Input {
		words = append(words, Word(value))
	}
	return
}

// Outputs returns the expected outputs as machine words.
func (test *Test) Outputs() (words []Word) {
	for _, value := range test.Output {
		words = append(words, Word(value))
	}
	return
}

// Opcode represents a line of assembled code with its source location and generated instruction.
type Opcode struct {
	LineNo  int
	Ip      int
	Words   []string
	Code    Code
	Operand Operand // Unresolved operand, as written.
}

// Program is an assembled program: memory image, labels and tests.
type Program struct {
	Opcodes []Opcode
	Label   map[string]int
	Tests   []Test
}

type Debug struct {
	*Opcode
	Labels []string
}

// Debug returns the source information for an address.
func (prog *Program) Debug(ip int) (dbg Debug) {
	for n, op := range prog.Opcodes {
		if op.Ip == ip {
			dbg.Opcode = &prog.Opcodes[n]
			break
		}
	}

	for label, addr := range prog.Label {
		if addr == ip {
			dbg.Labels = append(dbg.Labels, label)
		}
	}
	slices.Sort(dbg.Labels)

	return
}

// Binary returns a fresh copy of the memory image.
func (prog *Program) Binary() (bins []Word) {
	bins = make([]Word, 0, len(prog.Opcodes))
	for _, code := range prog.Codes() {
		bins = append(bins, code.Encode())
	}

	return
}

// Codes iterates over the resolved instructions by address.
func (prog *Program) Codes() iter.Seq2[int, Code] {
	return func(yield func(ip int, code Code) bool) {
		for _, op := range prog.Opcodes {
			if !yield(op.Ip, op.Code) {
				return
			}
		}
	}
}

// Test returns the named test.
func (prog *Program) Test(name string) (test Test, ok bool) {
	for _, test = range prog.Tests {
		if test.Name == name {
			ok = true
			return
		}
	}

	test = Test{}
	return
}
