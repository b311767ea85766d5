// Package puzzle generates and solves 9x9 sudoku grids.
package puzzle

import (
	"fmt"
	"math/bits"
	"math/rand"
	"strings"
)

// Size is the width and height of a grid.
const Size = 9

// Grid holds digits 1-9, with 0 for an empty cell. Indexed [row][col].
type Grid [Size][Size]uint8

// Puzzle is a starting grid together with its unique solution.
type Puzzle struct {
	Given    Grid
	Solution Grid
}

// Filled returns the number of non-empty cells.
func (g *Grid) Filled() int {
	n := 0
	for r := range g {
		for c := range g[r] {
			if g[r][c] != 0 {
				n++
			}
		}
	}
	return n
}

// String renders the grid as nine lines of digits, '.' for empty cells.
func (g Grid) String() string {
	var sb strings.Builder
	for r := range g {
		for c := range g[r] {
			if g[r][c] == 0 {
				sb.WriteByte('.')
			} else {
				sb.WriteByte('0' + g[r][c])
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Parse reads the format produced by String. Whitespace is ignored and
// '.' or '0' mark empty cells.
func Parse(s string) (Grid, error) {
	var g Grid
	i := 0
	for _, ch := range s {
		switch {
		case ch == ' ' || ch == '\n' || ch == '\t' || ch == '\r':
			continue
		case ch == '.' || ch == '0':
		case ch >= '1' && ch <= '9':
			if i < Size*Size {
				g[i/Size][i%Size] = uint8(ch - '0')
			}
		default:
			return Grid{}, fmt.Errorf("unexpected %q in grid", ch)
		}
		i++
	}
	if i != Size*Size {
		return Grid{}, fmt.Errorf("grid has %d cells, want %d", i, Size*Size)
	}
	return g, nil
}

// Valid reports whether v can go at (row, col) without repeating a digit in
// the row, column or box. The cell itself is ignored.
func Valid(g *Grid, row, col int, v uint8) bool {
	if v < 1 || v > 9 {
		return false
	}
	for i := 0; i < Size; i++ {
		if i != col && g[row][i] == v {
			return false
		}
		if i != row && g[i][col] == v {
			return false
		}
	}
	br, bc := row/3*3, col/3*3
	for r := br; r < br+3; r++ {
		for c := bc; c < bc+3; c++ {
			if (r != row || c != col) && g[r][c] == v {
				return false
			}
		}
	}
	return true
}

// candidates returns a bitmask of digits allowed at (row, col); bit v is set
// when v fits.
func candidates(g *Grid, row, col int) uint16 {
	used := uint16(0)
	for i := 0; i < Size; i++ {
		used |= 1 << g[row][i]
		used |= 1 << g[i][col]
	}
	br, bc := row/3*3, col/3*3
	for r := br; r < br+3; r++ {
		for c := bc; c < bc+3; c++ {
			used |= 1 << g[r][c]
		}
	}
	return ^used & 0x3fe
}

// mostConstrained finds the empty cell with the fewest candidates. ok is
// false when the grid is full.
func mostConstrained(g *Grid) (row, col int, mask uint16, ok bool) {
	best := 10
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if g[r][c] != 0 {
				continue
			}
			m := candidates(g, r, c)
			if n := bits.OnesCount16(m); n < best {
				row, col, mask, best, ok = r, c, m, n, true
				if n <= 1 {
					return
				}
			}
		}
	}
	return
}

// CountSolutions counts the solutions of g, stopping once limit is reached.
func CountSolutions(g Grid, limit int) int {
	if limit <= 0 {
		return 0
	}
	count := 0
	var walk func() bool
	walk = func() bool {
		r, c, mask, ok := mostConstrained(&g)
		if !ok {
			count++
			return count >= limit
		}
		for v := uint8(1); v <= 9; v++ {
			if mask&(1<<v) == 0 {
				continue
			}
			g[r][c] = v
			if walk() {
				g[r][c] = 0
				return true
			}
		}
		g[r][c] = 0
		return false
	}
	walk()
	return count
}

// Solve returns the first solution of g.
func Solve(g Grid) (Grid, bool) {
	if !consistent(&g) {
		return Grid{}, false
	}
	if fill(&g, nil) {
		return g, true
	}
	return Grid{}, false
}

// consistent reports whether the filled cells break no rule.
func consistent(g *Grid) bool {
	for r := range g {
		for c := range g[r] {
			if v := g[r][c]; v != 0 && !Valid(g, r, c, v) {
				return false
			}
		}
	}
	return true
}

// fill completes g by backtracking. Digits are tried in a random order when
// rng is set.
func fill(g *Grid, rng *rand.Rand) bool {
	r, c, mask, ok := mostConstrained(g)
	if !ok {
		return true
	}
	order := [9]uint8{1, 2, 3, 4, 5, 6, 7, 8, 9}
	if rng != nil {
		rng.Shuffle(len(order), func(i, j int) { order[i], order[j] = order[j], order[i] })
	}
	for _, v := range order {
		if mask&(1<<v) == 0 {
			continue
		}
		g[r][c] = v
		if fill(g, rng) {
			return true
		}
	}
	g[r][c] = 0
	return false
}
