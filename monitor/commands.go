package monitor

import (
	"github.com/beevik/cmd"
)

var cmds *cmd.Tree

func init() {
	root := cmd.NewTree(cmd.TreeDescriptor{Name: "Monitor"})
	root.AddCommand(cmd.CommandDescriptor{
		Name:  "help",
		Brief: "Display help for a command",
		Usage: "help [<command>]",
		Data:  (*Monitor).cmdHelp,
	})
	root.AddCommand(cmd.CommandDescriptor{
		Name:  "step",
		Brief: "Execute instructions",
		Description: "Execute the next <count> instructions, stopping early" +
			" if the program halts or fails. The count defaults to 1.",
		Usage: "step [<count>]",
		Data:  (*Monitor).cmdStep,
	})
	root.AddCommand(cmd.CommandDescriptor{
		Name:  "run",
		Brief: "Run until the program halts",
		Usage: "run",
		Data:  (*Monitor).cmdRun,
	})
	root.AddCommand(cmd.CommandDescriptor{
		Name:  "registers",
		Brief: "Display the registers",
		Usage: "registers",
		Data:  (*Monitor).cmdRegisters,
	})
	root.AddCommand(cmd.CommandDescriptor{
		Name:  "memory",
		Brief: "Dump memory",
		Usage: "memory [<address> [<count>]]",
		Data:  (*Monitor).cmdMemory,
	})
	root.AddCommand(cmd.CommandDescriptor{
		Name:  "list",
		Brief: "List the program",
		Usage: "list",
		Data:  (*Monitor).cmdList,
	})
	root.AddCommand(cmd.CommandDescriptor{
		Name:  "input",
		Brief: "Queue input values",
		Usage: "input <value> ...",
		Data:  (*Monitor).cmdInput,
	})
	root.AddCommand(cmd.CommandDescriptor{
		Name:  "reset",
		Brief: "Reload the program",
		Usage: "reset",
		Data:  (*Monitor).cmdReset,
	})
	root.AddCommand(cmd.CommandDescriptor{
		Name:  "quit",
		Brief: "Quit the monitor",
		Usage: "quit",
		Data:  (*Monitor).cmdQuit,
	})

	root.AddShortcut("?", "help")
	root.AddShortcut("s", "step")
	root.AddShortcut("r", "registers")
	root.AddShortcut("m", "memory")
	root.AddShortcut("q", "quit")

	cmds = root
}
