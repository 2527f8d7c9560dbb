package monitor

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ezrec/lmc/cpu"
	"github.com/ezrec/lmc/emulator"
)

const countdown = `
        inp
loop:   out
        sto count
        sub one
        sto count
        brp loop
        hlt
one:    dat 1
count:  dat 0
`

func newMonitor(t *testing.T, source string) *Monitor {
	t.Helper()

	asm := &cpu.Assembler{}
	prog, err := asm.Parse(strings.NewReader(source))
	require.NoError(t, err)

	emu := emulator.NewEmulator()
	emu.Program = prog
	require.NoError(t, emu.Reset())

	return New(emu)
}

func run(m *Monitor, commands ...string) string {
	var out bytes.Buffer
	m.RunCommands(strings.NewReader(strings.Join(commands, "\n")+"\n"), &out, false)
	return out.String()
}

func TestMonitorStep(t *testing.T) {
	assert := assert.New(t)

	m := newMonitor(t, countdown)
	out := run(m, "input 3", "step 3", "quit", "step")

	emu := m.Emulator
	assert.Equal(3, emu.Ticks)
	assert.Equal([]cpu.Word{3}, emu.Output)
	assert.Equal(3, emu.Pc)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Equal([]string{
		"00: inp     (pc:00 acc:000 neg:0)",
		"   0 00: inp     pc:01 acc:003 neg:0",
		"3",
		"   1 01: out     pc:02 acc:003 neg:0",
		"   2 02: sto 08  pc:03 acc:003 neg:0",
		"03: sub 07  (pc:03 acc:003 neg:0)",
	}, lines)

	// The console and trace hooks are detached afterwards.
	assert.Nil(emu.Console)
	assert.Nil(emu.Trace)
}

func TestMonitorRepeat(t *testing.T) {
	assert := assert.New(t)

	m := newMonitor(t, countdown)
	run(m, "input 3", "step 2", "", "")

	assert.Equal(6, m.Emulator.Ticks)
}

func TestMonitorConsoleInput(t *testing.T) {
	assert := assert.New(t)

	m := newMonitor(t, countdown)
	out := run(m, "step", "7", "step")

	assert.Equal(cpu.Word(7), m.Emulator.Acc)
	assert.Equal([]cpu.Word{7}, m.Emulator.Output)
	assert.NotContains(out, "input>")
	assert.NotContains(out, "* ")
}

func TestMonitorInteractive(t *testing.T) {
	assert := assert.New(t)

	m := newMonitor(t, countdown)

	var out bytes.Buffer
	m.RunCommands(strings.NewReader("step\n5\nquit\n"), &out, true)

	assert.Contains(out.String(), "* ")
	assert.Contains(out.String(), "input> ")
	assert.Equal(cpu.Word(5), m.Emulator.Acc)
}

func TestMonitorRun(t *testing.T) {
	assert := assert.New(t)

	m := newMonitor(t, countdown)
	out := run(m, "input 2", "run", "step")

	assert.True(m.Emulator.Halted)
	assert.Equal([]cpu.Word{2, 1, 0}, m.Emulator.Output)
	assert.Contains(out, "halted after 17 steps: pc:07 acc:999 neg:1\n")
}

func TestMonitorReset(t *testing.T) {
	assert := assert.New(t)

	m := newMonitor(t, countdown)
	run(m, "input 3", "step 4", "reset")

	emu := m.Emulator
	assert.Equal(0, emu.Ticks)
	assert.Equal(cpu.Registers{}, emu.Registers)
	assert.Equal(cpu.Word(0), emu.Memory[8])
	assert.Nil(emu.Output)
}

func TestMonitorMemory(t *testing.T) {
	assert := assert.New(t)

	m := newMonitor(t, countdown)
	out := run(m, "memory 0 3", "m 7 2")

	assert.Contains(out, "00: 901 902 308\n")
	assert.Contains(out, "07: 001 000\n")

	out = run(m, "memory 100")
	assert.Contains(out, "ERROR:")
}

func TestMonitorList(t *testing.T) {
	assert := assert.New(t)

	m := newMonitor(t, countdown)
	out := run(m, "list")

	assert.Contains(out, ">00 901")
	assert.Contains(out, " 01 902  loop:")
	assert.Contains(out, "; line 3\n")
}

func TestMonitorErrors(t *testing.T) {
	assert := assert.New(t)

	m := newMonitor(t, countdown)
	out := run(m, "frobnicate", "step x", "input 1000", "input", "step")

	assert.Contains(out, "Command not found.\n")
	assert.Contains(out, "ERROR: 'x' is not a number\n")
	assert.Contains(out, "Usage: input <value> ...\n")
	assert.Equal(0, m.Emulator.Ticks)
	assert.Nil(m.Emulator.Input)

	// inp with no queued values, and no more lines, is a runtime error.
	assert.Contains(out, "ERROR: step 0 line 2")
}

func TestMonitorHelp(t *testing.T) {
	assert := assert.New(t)

	m := newMonitor(t, countdown)
	out := run(m, "help", "help step")

	assert.Contains(out, "Monitor commands:\n")
	assert.Contains(out, "    step             Execute instructions\n")
	assert.Contains(out, "Usage: step [<count>]\n")
}
