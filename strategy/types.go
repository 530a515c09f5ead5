package strategy

import "errors"

// ErrMalformedRound indicates a non-blank line that is not "<A|B|C> <X|Y|Z>".
var ErrMalformedRound = errors.New("strategy: malformed round")

// Shape is a hand shape; its value indexes the lookup tables.
type Shape int

const (
	Rock Shape = iota
	Paper
	Scissors
)

// Score returns the points a shape is worth when played.
func (s Shape) Score() int { return int(s) + 1 }

// Outcome is the result of a round from the player's point of view; its
// value indexes the lookup tables.
type Outcome int

const (
	Loss Outcome = iota
	Draw
	Win
)

// Score returns the points an outcome is worth.
func (o Outcome) Score() int { return int(o) * 3 }

// outcomes[player][opponent] is the result of a round.
var outcomes = [3][3]Outcome{
	Rock:     {Rock: Draw, Paper: Loss, Scissors: Win},
	Paper:    {Rock: Win, Paper: Draw, Scissors: Loss},
	Scissors: {Rock: Loss, Paper: Win, Scissors: Draw},
}

// responses[opponent][outcome] is the shape that produces outcome.
var responses = [3][3]Shape{
	Rock:     {Loss: Scissors, Draw: Rock, Win: Paper},
	Paper:    {Loss: Rock, Draw: Paper, Win: Scissors},
	Scissors: {Loss: Paper, Draw: Scissors, Win: Rock},
}

// Round is one parsed guide line: the opponent's shape and the raw second
// column as an index 0..2 (X, Y, Z).
type Round struct {
	Opponent Shape
	Column   int
}

// Moves scores the round reading Column as the player's shape.
func (r Round) Moves() int {
	player := Shape(r.Column)
	return player.Score() + outcomes[player][r.Opponent].Score()
}

// Outcomes scores the round reading Column as the required outcome.
func (r Round) Outcomes() int {
	want := Outcome(r.Column)
	return responses[r.Opponent][want].Score() + want.Score()
}
