package strategy

import (
	"fmt"
	"strings"
)

// ParseRounds parses every non-blank line of guide into a Round.
//
// Errors:
//   - ErrMalformedRound — wrapped with the 1-based line number.
func ParseRounds(guide string) ([]Round, error) {
	var rounds []Round
	for i, line := range strings.Split(guide, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if line == "" {
			continue
		}
		r, err := parseRound(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %q: %w", i+1, line, err)
		}
		rounds = append(rounds, r)
	}
	return rounds, nil
}

func parseRound(line string) (Round, error) {
	if len(line) != 3 || line[1] != ' ' {
		return Round{}, ErrMalformedRound
	}
	opp, col := line[0], line[2]
	if opp < 'A' || opp > 'C' || col < 'X' || col > 'Z' {
		return Round{}, ErrMalformedRound
	}
	return Round{Opponent: Shape(opp - 'A'), Column: int(col - 'X')}, nil
}

// ScoreMoves totals the guide reading the second column as the player's shape.
func ScoreMoves(guide string) (int, error) {
	return score(guide, Round.Moves)
}

// ScoreOutcomes totals the guide reading the second column as the outcome
// the round must end in.
func ScoreOutcomes(guide string) (int, error) {
	return score(guide, Round.Outcomes)
}

func score(guide string, fn func(Round) int) (int, error) {
	rounds, err := ParseRounds(guide)
	if err != nil {
		return 0, err
	}
	total := 0
	for _, r := range rounds {
		total += fn(r)
	}
	return total, nil
}
