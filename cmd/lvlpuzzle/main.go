// Package main implements the lvlpuzzle CLI: run one of the puzzle solvers
// over a file or stdin and print the resulting number.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// newRootCmd builds a fresh command tree; tests build their own so flag
// state never leaks between runs.
func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "lvlpuzzle",
		Short: "Solve line-oriented puzzles from a file or stdin",
		Long: `lvlpuzzle runs a puzzle solver over text input and prints one number.

Every subcommand takes an optional [file] argument; omit it or pass "-" to
read from stdin.`,
		Version:       version,
		SilenceUsage: true,
	}
	root.AddCommand(
		newCaloriesCmd(),
		newStrategyCmd(),
		newRucksackCmd(),
		newSectionsCmd(),
	)
	return root
}

// readInput returns the whole input named by args, or stdin when args is
// empty or "-".
func readInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		b, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("failed to read from stdin: %w", err)
		}
		return string(b), nil
	}
	b, err := os.ReadFile(args[0])
	if err != nil {
		return "", fmt.Errorf("failed to read file %s: %w", args[0], err)
	}
	return string(b), nil
}

// printResult writes a solver result on its own line.
func printResult(cmd *cobra.Command, v any) error {
	_, err := fmt.Fprintln(cmd.OutOrStdout(), v)
	return err
}

// modeFlagError reports an unknown --mode value.
func modeFlagError(mode string, allowed ...string) error {
	return fmt.Errorf("unknown mode %q (want one of %v)", mode, allowed)
}
