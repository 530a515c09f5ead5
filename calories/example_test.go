package calories_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvlpuzzle/calories"
)

const exampleText = `1000
2000
3000

4000

5000
6000

7000
8000
9000

10000
`

// ExampleParseGroups prints the per-group totals.
func ExampleParseGroups() {
	totals, _ := calories.ParseGroups(exampleText)
	fmt.Println(totals)
	// Output:
	// [6000 4000 11000 24000 10000]
}

// ExampleCountCalories sums the largest and the three largest groups.
func ExampleCountCalories() {
	one, _ := calories.CountCalories(exampleText, 1)
	three, _ := calories.CountCalories(exampleText, 3)
	fmt.Println(one, three)
	// Output:
	// 24000 45000
}

// ExampleCountCalories_malformed shows a parse failure surfacing as a sentinel.
func ExampleCountCalories_malformed() {
	_, err := calories.CountCalories("1000\nsnacks\n", 1)
	fmt.Println(errors.Is(err, calories.ErrMalformedInput))
	fmt.Println(err)
	// Output:
	// true
	// line 2: "snacks": calories: malformed input
}
