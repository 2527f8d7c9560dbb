package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// asmCmd represents the asm command
var asmCmd = &cobra.Command{
	Use:   "asm sourceFile",
	Short: "Assemble a program and print its memory image",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		prog, err := assemble(args[0])
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		for ip, code := range prog.Codes() {
			dbg := prog.Debug(ip)
			label := ""
			if len(dbg.Labels) > 0 {
				label = dbg.Labels[0] + ":"
			}
			fmt.Fprintf(out, "%02d %03d  %-10s %v\n", ip, code.Encode(), label, code)
		}
		for _, test := range prog.Tests {
			fmt.Fprintf(out, ".%v %v %v\n", test.Name, test.Input, test.Output)
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(asmCmd)
}
