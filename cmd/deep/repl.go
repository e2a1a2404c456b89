package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/shlex"
	"github.com/spf13/cobra"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Run an interactive prompt over the parse/compile/emit/shrine commands",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runRepl(os.Stdin, os.Stdout)
	},
}

func init() {
	rootCmd.AddCommand(replCmd)
}

func runRepl(in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)
	fmt.Fprintln(out, "deep repl: type a subcommand (parse, compile, emit, shrine) or 'exit'")

	for {
		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			return scanner.Err()
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "exit" || line == "quit" {
			return nil
		}

		args, err := shlex.Split(line)
		if err != nil {
			fmt.Fprintln(out, "error tokenizing line:", err)
			continue
		}

		if err := runReplCommand(args, out); err != nil {
			fmt.Fprintln(out, "error:", err)
		}
	}
}

// runReplCommand dispatches one tokenized line to a fresh copy of the
// command tree so repeated invocations don't leak flag state between
// lines.
func runReplCommand(args []string, out io.Writer) error {
	cmd := &cobra.Command{Use: "deep"}
	cmd.AddCommand(parseCmd, compileCmd, emitCmd, shrineCmd)
	cmd.SetOut(out)
	cmd.SetErr(out)
	cmd.SetArgs(args)
	return cmd.Execute()
}
