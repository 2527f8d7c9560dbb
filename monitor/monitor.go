// Package monitor implements an interactive debugger for the Little Man
// Computer emulator.
package monitor

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/beevik/cmd"

	"github.com/ezrec/lmc/cpu"
	"github.com/ezrec/lmc/emulator"
	lmcio "github.com/ezrec/lmc/io"
	"github.com/ezrec/lmc/translate"
)

// Monitor drives an emulator from text commands.
type Monitor struct {
	Emulator *emulator.Emulator

	tape        lmcio.Tape
	output      *bufio.Writer
	interactive bool
	lastCmd     *cmd.Selection
	quit        bool
}

// New creates a monitor for the emulator.
func New(emu *emulator.Emulator) *Monitor {
	return &Monitor{Emulator: emu}
}

// RunCommands accepts commands from a reader and writes the results to a
// writer. The same reader supplies values to inp when the input queue is
// empty. If interactive, prompts are displayed.
func (m *Monitor) RunCommands(r io.Reader, w io.Writer, interactive bool) {
	m.output = bufio.NewWriter(w)
	m.interactive = interactive
	m.quit = false
	m.lastCmd = nil

	m.tape = lmcio.Tape{Input: r, Output: w}
	if interactive {
		m.tape.Prompt = "input> "
	}

	emu := m.Emulator
	emu.Cpu.Console = &m.tape
	emu.Cpu.Trace = func(tr cpu.Trace) { m.println(tr) }
	defer func() {
		emu.Cpu.Console = nil
		emu.Cpu.Trace = nil
	}()

	m.displayPC()

	for !m.quit {
		m.prompt()

		line, err := m.tape.Line()
		if err != nil {
			break
		}

		m.processCommand(line)
	}
}

func (m *Monitor) processCommand(line string) {
	var c cmd.Selection
	if line != "" {
		var err error
		c, err = cmds.Lookup(line)
		switch {
		case errors.Is(err, cmd.ErrNotFound):
			m.println("Command not found.")
			return
		case errors.Is(err, cmd.ErrAmbiguous):
			m.println("Command is ambiguous.")
			return
		case err != nil:
			m.printf("ERROR: %v.\n", err)
			return
		}
	} else if m.lastCmd != nil {
		c = *m.lastCmd
	}

	if c.Command == nil {
		return
	}

	m.lastCmd = &c

	handler := c.Command.Data.(func(*Monitor, cmd.Selection) error)
	err := handler(m, c)
	if err != nil {
		m.printf("ERROR: %v\n", err)
	}
}

func (m *Monitor) printf(format string, args ...any) {
	fmt.Fprintf(m.output, format, args...)
	m.output.Flush()
}

func (m *Monitor) println(args ...any) {
	fmt.Fprintln(m.output, args...)
	m.output.Flush()
}

func (m *Monitor) prompt() {
	if !m.interactive {
		return
	}

	m.printf("* ")
}

// displayPC shows the next instruction to execute.
func (m *Monitor) displayPC() {
	emu := m.Emulator
	switch {
	case emu.Cpu.Halted:
		m.printf("halted after %d steps: %v\n", emu.Cpu.Ticks, emu.Cpu.Registers)
	default:
		code, err := emu.Cpu.FetchCode()
		if err != nil {
			m.printf("%02d: %v (%v)\n", emu.Cpu.Pc, err, emu.Cpu.Registers)
			return
		}
		m.printf("%02d: %-7v (%v)\n", emu.Cpu.Pc, code, emu.Cpu.Registers)
	}
}

func (m *Monitor) displayUsage(c *cmd.Command) {
	if c.Usage != "" {
		m.printf("Usage: %s\n", c.Usage)
	}
}

func (m *Monitor) cmdHelp(c cmd.Selection) error {
	if len(c.Args) == 0 {
		m.printf("%s commands:\n", cmds.Title)
		for _, cc := range cmds.Commands {
			if cc.Brief != "" {
				m.printf("    %-15s  %s\n", cc.Name, cc.Brief)
			}
		}
		return nil
	}

	s, err := cmds.Lookup(c.Args[0])
	if err != nil {
		m.printf("%v\n", err)
		return nil
	}

	m.displayUsage(s.Command)
	if s.Command.Description != "" {
		m.println(s.Command.Description)
	} else {
		m.println(s.Command.Brief)
	}
	return nil
}

func (m *Monitor) parseInt(arg string) (value int, err error) {
	value, err = strconv.Atoi(arg)
	if err != nil {
		err = translate.Error("'%v' is not a number", arg)
	}
	return
}

func (m *Monitor) cmdStep(c cmd.Selection) error {
	count := 1
	if len(c.Args) > 0 {
		var err error
		count, err = m.parseInt(c.Args[0])
		if err != nil {
			return err
		}
	}

	result := m.Emulator.Step(count)
	if result.Err != nil {
		return result.Err
	}

	m.displayPC()
	return nil
}

func (m *Monitor) cmdRun(c cmd.Selection) error {
	err := m.Emulator.Run()
	if err != nil {
		return err
	}

	m.displayPC()
	return nil
}

func (m *Monitor) cmdRegisters(c cmd.Selection) error {
	m.printf("%v", m.Emulator.Cpu)
	return nil
}

func (m *Monitor) cmdMemory(c cmd.Selection) error {
	addr, count := 0, cpu.MEMORY_SIZE
	var err error
	if len(c.Args) > 0 {
		addr, err = m.parseInt(c.Args[0])
		if err != nil {
			return err
		}
		count = 10
	}
	if len(c.Args) > 1 {
		count, err = m.parseInt(c.Args[1])
		if err != nil {
			return err
		}
	}
	if len(c.Args) > 2 {
		m.displayUsage(c.Command)
		return nil
	}

	if addr < 0 || addr >= cpu.MEMORY_SIZE {
		return cpu.ErrRange{Value: addr, Limit: cpu.MEMORY_SIZE}
	}

	end := min(addr+count, cpu.MEMORY_SIZE)
	for row := addr; row < end; row += 10 {
		m.printf("%02d:", row)
		for a := row; a < min(row+10, end); a++ {
			m.printf(" %03d", m.Emulator.Cpu.Memory[a])
		}
		m.println()
	}

	return nil
}

func (m *Monitor) cmdList(c cmd.Selection) error {
	prog := m.Emulator.Program
	for ip := range prog.Codes() {
		dbg := prog.Debug(ip)
		marker := " "
		if ip == m.Emulator.Cpu.Pc {
			marker = ">"
		}
		label := ""
		if len(dbg.Labels) > 0 {
			label = dbg.Labels[0] + ":"
		}
		m.printf("%s%02d %03d  %-10s %-7v ; line %d\n", marker, ip, m.Emulator.Cpu.Memory[ip], label, dbg.Code, dbg.LineNo)
	}

	return nil
}

func (m *Monitor) cmdInput(c cmd.Selection) error {
	if len(c.Args) == 0 {
		m.displayUsage(c.Command)
		return nil
	}

	var values []cpu.Word
	for _, arg := range c.Args {
		value, err := m.parseInt(arg)
		if err != nil {
			return err
		}
		if value < 0 || value >= cpu.WORD_LIMIT {
			return cpu.ErrRange{Value: value, Limit: cpu.WORD_LIMIT}
		}
		values = append(values, cpu.Word(value))
	}

	return m.Emulator.Cpu.Feed(values...)
}

func (m *Monitor) cmdReset(c cmd.Selection) error {
	err := m.Emulator.Reset()
	if err != nil {
		return err
	}

	m.displayPC()
	return nil
}

func (m *Monitor) cmdQuit(c cmd.Selection) error {
	m.quit = true
	return nil
}
