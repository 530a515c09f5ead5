// Package strategy scores a rock-paper-scissors strategy guide.
//
// Every line of a guide holds the opponent's shape and a second column,
// separated by one space:
//
//	A Y
//	B X
//	C Z
//
// A/B/C are the opponent's Rock/Paper/Scissors. The second column is read
// in one of two ways:
//
//   - ScoreMoves:    X/Y/Z is the player's Rock/Paper/Scissors.
//   - ScoreOutcomes: X/Y/Z is the round's required Loss/Draw/Win, and the
//     player's shape is derived from it.
//
// A round scores the player's shape (Rock 1, Paper 2, Scissors 3) plus the
// outcome (Loss 0, Draw 3, Win 6). Both interpretations are pure table
// lookups; no branch depends on the shapes themselves.
package strategy
