package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pocamind/deep-go/reqfile"
)

var emitOutPath string

var emitCmd = &cobra.Command{
	Use:   "emit <reqfile-path>",
	Short: "Compile a reqfile and re-serialize its required portion",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rf, err := compileReqfile(args[0])
		if err != nil {
			return err
		}

		out := reqfile.Emit(rf)

		if emitOutPath == "" {
			fmt.Print(out)
			return nil
		}
		return atomicWriteString(emitOutPath, out)
	},
}

func init() {
	emitCmd.Flags().StringVarP(&emitOutPath, "output", "o", "", "write the emitted reqfile to this path instead of stdout")
	rootCmd.AddCommand(emitCmd)
}
