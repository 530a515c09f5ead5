package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvlpuzzle/rucksack"
	"github.com/katalvlaran/lvlpuzzle/sections"
	"github.com/katalvlaran/lvlpuzzle/strategy"
)

// modeSolver is a text-in/number-out solver selected by --mode.
type modeSolver func(string) (int, error)

// newModeCmd builds a subcommand that dispatches on --mode to one of solvers.
// The first entry of modes is the default.
func newModeCmd(use, short, long string, modes []string, solvers map[string]modeSolver) *cobra.Command {
	var mode string
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Long:  long,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			solve, ok := solvers[mode]
			if !ok {
				return modeFlagError(mode, modes...)
			}
			text, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			n, err := solve(text)
			if err != nil {
				return err
			}
			return printResult(cmd, n)
		},
	}
	cmd.Flags().StringVar(&mode, "mode", modes[0], "Solver mode")
	return cmd
}

func newStrategyCmd() *cobra.Command {
	return newModeCmd(
		"strategy [file]",
		"Score a rock-paper-scissors strategy guide",
		`Score a strategy guide of "<A|B|C> <X|Y|Z>" lines.

Modes:
  moves     X/Y/Z is the shape to play
  outcomes  X/Y/Z is the outcome to reach (lose/draw/win)`,
		[]string{"moves", "outcomes"},
		map[string]modeSolver{
			"moves":    strategy.ScoreMoves,
			"outcomes": strategy.ScoreOutcomes,
		},
	)
}

func newRucksackCmd() *cobra.Command {
	return newModeCmd(
		"rucksack [file]",
		"Sum priorities of shared rucksack items",
		`Sum item priorities (a-z 1-26, A-Z 27-52).

Modes:
  compartments  item shared by both halves of each line
  badges        item shared by each group of three lines`,
		[]string{"compartments", "badges"},
		map[string]modeSolver{
			"compartments": rucksack.SumCompartments,
			"badges":       rucksack.SumBadges,
		},
	)
}

func newSectionsCmd() *cobra.Command {
	return newModeCmd(
		"sections [file]",
		"Count overlapping section assignment pairs",
		`Count "a-b,c-d" pairs.

Modes:
  contained    one range fully contains the other
  overlapping  the ranges share at least one section`,
		[]string{"contained", "overlapping"},
		map[string]modeSolver{
			"contained":   sections.CountContained,
			"overlapping": sections.CountOverlapping,
		},
	)
}
