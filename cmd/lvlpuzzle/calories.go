package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvlpuzzle/calories"
	"github.com/katalvlaran/lvlpuzzle/selection"
)

func newCaloriesCmd() *cobra.Command {
	var (
		top   int
		pivot string
		seed  int64
	)
	cmd := &cobra.Command{
		Use:   "calories [file]",
		Short: "Sum the largest blank-line-separated group totals",
		Long: `Sum the k largest group totals. Groups are runs of integer lines
separated by blank lines.

Examples:
  # Largest single group
  lvlpuzzle calories input.txt

  # Three largest groups, random pivots with a fixed seed
  cat input.txt | lvlpuzzle calories --top 3 --pivot random --seed 7 -`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			strategy, err := selection.ParsePivotStrategy(pivot)
			if err != nil {
				return err
			}
			text, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			opts := []selection.Option{selection.WithPivot(strategy)}
			if strategy == selection.RandomPivot {
				opts = append(opts, selection.WithSeed(seed))
			}
			sum, err := calories.CountCalories(text, top, opts...)
			if err != nil {
				return err
			}
			return printResult(cmd, sum)
		},
	}
	cmd.Flags().IntVarP(&top, "top", "k", 1, "Number of largest groups to sum")
	cmd.Flags().StringVar(&pivot, "pivot", selection.MedianOfThree.String(), "Pivot strategy: median3 or random")
	cmd.Flags().Int64Var(&seed, "seed", 0, "Seed for --pivot random (0 uses the default seed)")
	return cmd
}
