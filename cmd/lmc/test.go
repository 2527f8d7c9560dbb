package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ezrec/lmc/emulator"
)

var testLimit int

// testCmd represents the test command
var testCmd = &cobra.Command{
	Use:   "test sourceFile",
	Short: "Run the test directives of a program",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		prog, err := assemble(args[0])
		if err != nil {
			return err
		}

		results := emulator.RunTests(prog, testLimit)

		failed := 0
		for _, res := range results {
			fmt.Fprintln(cmd.OutOrStdout(), res.String())
			if !res.Passed() {
				failed++
			}
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%d tests, %d failed\n", len(results), failed)

		if failed > 0 {
			return fmt.Errorf("%v: %d of %d tests failed", args[0], failed, len(results))
		}
		return nil
	},
}

func init() {
	testCmd.Flags().IntVar(&testLimit, "limit", emulator.STEP_LIMIT, "Maximum instructions per test")
	rootCmd.AddCommand(testCmd)
}
