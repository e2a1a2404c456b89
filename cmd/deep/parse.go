package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pocamind/deep-go/reqparse"
)

var parseCmd = &cobra.Command{
	Use:   "parse <requirement-text>",
	Short: "Parse a single requirement expression and print its canonical form",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		r, err := reqparse.Parse(args[0], nil)
		if err != nil {
			return err
		}
		fmt.Println(r.String())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(parseCmd)
}
