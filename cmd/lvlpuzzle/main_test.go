package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlpuzzle/calories"
)

const caloriesInput = "1000\n2000\n3000\n\n4000\n\n5000\n6000\n\n7000\n8000\n9000\n\n10000\n"

// run executes a fresh command tree with stdin and returns trimmed stdout.
func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	var out, errOut bytes.Buffer
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()
	return strings.TrimSpace(out.String()), err
}

func TestSubcommands(t *testing.T) {
	tests := []struct {
		name  string
		stdin string
		args  []string
		want  string
	}{
		{"calories default", caloriesInput, []string{"calories"}, "24000"},
		{"calories top 3", caloriesInput, []string{"calories", "--top", "3", "-"}, "45000"},
		{"calories random pivot", caloriesInput, []string{"calories", "-k", "3", "--pivot", "random", "--seed", "9"}, "45000"},
		{"calories empty", "", []string{"calories"}, "0"},
		{"strategy moves", "A Y\nB X\nC Z\n", []string{"strategy"}, "15"},
		{"strategy outcomes", "A Y\nB X\nC Z\n", []string{"strategy", "--mode", "outcomes"}, "12"},
		{"rucksack compartments", "vJrwpWtwJgWrhcsFMMfFFhFp\n", []string{"rucksack"}, "16"},
		{"rucksack badges", "ab\nbc\nb\n", []string{"rucksack", "--mode", "badges"}, "2"},
		{"sections contained", "2-8,3-7\n5-7,7-9\n", []string{"sections"}, "1"},
		{"sections overlapping", "2-8,3-7\n5-7,7-9\n", []string{"sections", "--mode", "overlapping"}, "2"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := run(t, tt.stdin, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCalories_ReadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input.txt")
	require.NoError(t, os.WriteFile(path, []byte(caloriesInput), 0o600))

	got, err := run(t, "", "calories", "--top", "2", path)
	require.NoError(t, err)
	assert.Equal(t, "35000", got)
}

func TestErrors(t *testing.T) {
	_, err := run(t, "1000\nabc\n", "calories")
	assert.ErrorIs(t, err, calories.ErrMalformedInput)

	_, err = run(t, caloriesInput, "calories", "--top", "9")
	assert.ErrorIs(t, err, calories.ErrInvalidSelection)

	_, err = run(t, caloriesInput, "calories", "--pivot", "median-of-medians")
	assert.Error(t, err)

	_, err = run(t, "A Y\n", "strategy", "--mode", "vibes")
	assert.ErrorContains(t, err, `unknown mode "vibes"`)

	_, err = run(t, "", "calories", filepath.Join(t.TempDir(), "missing.txt"))
	assert.ErrorContains(t, err, "failed to read file")

	_, err = run(t, "", "calories", "a", "b")
	assert.Error(t, err, "at most one file argument")
}
