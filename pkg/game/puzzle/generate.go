package puzzle

import (
	"fmt"
	"math/rand"
	"strings"
)

// Difficulty controls how many clues a generated puzzle keeps.
type Difficulty int

const (
	Easy Difficulty = iota
	Medium
	Hard
)

func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "easy"
	case Medium:
		return "medium"
	case Hard:
		return "hard"
	default:
		return fmt.Sprintf("Difficulty(%d)", int(d))
	}
}

// Clues is the number of given cells a puzzle of this difficulty aims for.
func (d Difficulty) Clues() int {
	switch d {
	case Easy:
		return 40
	case Hard:
		return 26
	default:
		return 32
	}
}

// ParseDifficulty accepts easy, medium or hard in any case.
func ParseDifficulty(s string) (Difficulty, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy":
		return Easy, nil
	case "medium", "":
		return Medium, nil
	case "hard":
		return Hard, nil
	}
	return Medium, fmt.Errorf("unknown difficulty %q", s)
}

// Generate builds a random puzzle with exactly one solution. Cells are
// removed from a random full grid until the clue target is reached or no
// further cell can go without losing uniqueness.
func Generate(rng *rand.Rand, d Difficulty) Puzzle {
	var solution Grid
	fill(&solution, rng)

	given := solution
	target := d.Clues()
	filled := Size * Size

	cells := rng.Perm(Size * Size)
	for _, i := range cells {
		if filled <= target {
			break
		}
		r, c := i/Size, i%Size
		v := given[r][c]
		given[r][c] = 0
		if CountSolutions(given, 2) != 1 {
			given[r][c] = v
			continue
		}
		filled--
	}

	return Puzzle{Given: given, Solution: solution}
}
