package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/ezrec/lmc/emulator"
	"github.com/ezrec/lmc/monitor"
)

// debugCmd represents the debug command
var debugCmd = &cobra.Command{
	Use:   "debug sourceFile",
	Short: "Step through a program interactively",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		prog, err := assemble(args[0])
		if err != nil {
			return err
		}

		emu := emulator.NewEmulator()
		emu.Program = prog
		emu.Verbose = verbose

		err = emu.Reset()
		if err != nil {
			return err
		}

		monitor.New(emu).RunCommands(os.Stdin, cmd.OutOrStdout(), interactive())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(debugCmd)
}
