package main

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/pocamind/deep-go/reqfile"
)

var compileCmd = &cobra.Command{
	Use:   "compile <reqfile-path>",
	Short: "Compile a reqfile and print a summary of its partitions",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rf, err := compileReqfile(args[0])
		if err != nil {
			return err
		}

		fmt.Printf("general: %d\n", len(rf.General))
		fmt.Printf("post: %d\n", len(rf.Post))
		fmt.Printf("optional groups: %d\n", len(rf.Optional))
		for i, group := range rf.Optional {
			fmt.Printf("  [%d] weight=%d general=%d post=%d\n", i, group.Weight, len(group.General), len(group.Post))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(compileCmd)
}

func compileReqfile(path string) (reqfile.Reqfile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return reqfile.Reqfile{}, errors.Wrapf(err, "os.ReadFile")
	}
	return reqfile.Compile(string(data), nil)
}
