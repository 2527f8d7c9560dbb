package emulator

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/ezrec/lmc/cpu"
)

// Verdict is the outcome of a single test.
type Verdict int

const (
	VERDICT_PASS       = Verdict(0) // Output matched.
	VERDICT_FAIL       = Verdict(1) // Output mismatched.
	VERDICT_ERROR      = Verdict(2) // Fatal runtime error.
	VERDICT_NOT_HALTED = Verdict(3) // Step limit exceeded.
)

var verdictName = [...]string{
	VERDICT_PASS:       "PASS",
	VERDICT_FAIL:       "FAIL",
	VERDICT_ERROR:      "ERROR",
	VERDICT_NOT_HALTED: "NOT HALTED",
}

func (v Verdict) String() string {
	if v < 0 || int(v) >= len(verdictName) {
		return fmt.Sprintf("Verdict(%d)", int(v))
	}
	return verdictName[v]
}

// Result of a single test run.
type Result struct {
	Name     string
	Verdict  Verdict
	Expected []cpu.Word
	Actual   []cpu.Word
	Steps    int
	Err      error  // Runtime error, for VERDICT_ERROR and VERDICT_NOT_HALTED.
	Diff     string // Output difference, for VERDICT_FAIL.
}

// Passed returns true if the test passed.
func (res *Result) Passed() bool {
	return res.Verdict == VERDICT_PASS
}

// String returns a one line summary, followed by any failure detail.
func (res *Result) String() string {
	text := fmt.Sprintf("%-10v %v", res.Verdict, res.Name)
	switch res.Verdict {
	case VERDICT_FAIL:
		text += fmt.Sprintf(": expected %v, got %v\n%v", res.Expected, res.Actual, strings.TrimRight(res.Diff, "\n"))
	case VERDICT_ERROR, VERDICT_NOT_HALTED:
		text += fmt.Sprintf(": %v", res.Err)
	}

	return text
}

// outputDiff describes how the actual output differs from the expected.
func outputDiff(expected, actual []cpu.Word) (diff string) {
	if cmp.Equal(expected, actual, cmpopts.EquateEmpty()) {
		return
	}

	n := 0
	for n < len(expected) && n < len(actual) && expected[n] == actual[n] {
		n++
	}

	switch {
	case n < len(expected) && n < len(actual):
		diff = f("index %d: expected %d, got %d", n, expected[n], actual[n])
	case n < len(actual):
		diff = f("index %d: unexpected output %d", n, actual[n])
	default:
		diff = f("index %d: missing output %d", n, expected[n])
	}

	diff += "\n" + cmp.Diff(expected, actual, cmpopts.EquateEmpty())
	return
}

// RunTest runs a single test against a fresh machine loaded with the program.
// A limit of zero selects STEP_LIMIT.
func RunTest(prog *cpu.Program, test cpu.Test, limit int) (res Result) {
	res = Result{
		Name:     test.Name,
		Expected: test.Outputs(),
	}

	emu := NewEmulator()
	emu.Program = prog
	emu.StepLimit = limit

	err := emu.Reset(test.Inputs()...)
	if err == nil {
		err = emu.Run()
	}

	res.Steps = emu.Cpu.Ticks
	res.Actual = emu.Cpu.Output

	switch {
	case errors.Is(err, ErrNotHalted):
		res.Verdict = VERDICT_NOT_HALTED
		res.Err = err
	case err != nil:
		res.Verdict = VERDICT_ERROR
		res.Err = err
	default:
		res.Diff = outputDiff(res.Expected, res.Actual)
		if len(res.Diff) == 0 {
			res.Verdict = VERDICT_PASS
		} else {
			res.Verdict = VERDICT_FAIL
		}
	}

	return
}

// RunTests runs every test of the program, in declaration order.
func RunTests(prog *cpu.Program, limit int) (results []Result) {
	for _, test := range prog.Tests {
		results = append(results, RunTest(prog, test, limit))
	}

	return
}
