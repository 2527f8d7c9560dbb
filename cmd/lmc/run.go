package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ezrec/lmc/cpu"
	"github.com/ezrec/lmc/emulator"
	"github.com/ezrec/lmc/io"
)

var runInputs []int
var runLimit int

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run sourceFile",
	Short: "Run a program, reading inputs from the console when needed",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		prog, err := assemble(args[0])
		if err != nil {
			return err
		}

		emu := emulator.NewEmulator()
		emu.Program = prog
		emu.Verbose = verbose
		emu.StepLimit = runLimit

		var inputs []cpu.Word
		for _, value := range runInputs {
			if value < 0 || value >= cpu.WORD_LIMIT {
				return cpu.ErrRange{Value: value, Limit: cpu.WORD_LIMIT}
			}
			inputs = append(inputs, cpu.Word(value))
		}

		err = emu.Reset(inputs...)
		if err != nil {
			return err
		}

		tape := &io.Tape{Input: os.Stdin, Output: cmd.OutOrStdout()}
		if interactive() {
			tape.Prompt = "input> "
		}
		emu.Cpu.Console = tape

		err = emu.Run()
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.ErrOrStderr(), "--- summary ---\ninstruction count: %d\nout: %v\n", emu.Cpu.Ticks, emu.Cpu.Output)
		return nil
	},
}

func init() {
	runCmd.Flags().IntSliceVarP(&runInputs, "input", "i", nil, "Comma separated input values")
	runCmd.Flags().IntVar(&runLimit, "limit", 1_000_000, "Maximum instructions to execute")
	rootCmd.AddCommand(runCmd)
}
