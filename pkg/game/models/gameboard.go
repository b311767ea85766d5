// Package models holds the battle state: the sudoku board and the two
// combatants facing each other across it.
package models

import (
	"fmt"

	"github.com/zyedidia/generic/mapset"

	"sudokubattle/pkg/game/puzzle"
)

// Size is the number of cells along each side of the board.
const Size = puzzle.Size

// Point addresses a cell: X is the column and Y the row, both from 0.
type Point struct {
	X, Y int
}

// In reports whether the point lies on the board.
func (p Point) In() bool {
	return p.X >= 0 && p.X < Size && p.Y >= 0 && p.Y < Size
}

func (p Point) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

// Outcome is the result of trying to place a digit.
type Outcome int

const (
	// OutcomeRefused leaves the board untouched: the cell is fixed, off the
	// board, or the digit is out of range.
	OutcomeRefused Outcome = iota
	OutcomeCorrect
	OutcomeIncorrect
)

func (o Outcome) String() string {
	switch o {
	case OutcomeCorrect:
		return "correct"
	case OutcomeIncorrect:
		return "incorrect"
	default:
		return "refused"
	}
}

// Gameboard is a 9x9 sudoku board being played. Cells from the starting
// puzzle are fixed; every other cell can be written and cleared.
type Gameboard struct {
	cells    puzzle.Grid
	solution puzzle.Grid
	given    mapset.Set[Point]

	selected    Point
	hasSelected bool

	// Moves counts accepted placements, correct or not.
	Moves int
	// Solved is set once every cell matches the solution.
	Solved bool
}

// NewGameboard starts a board from a puzzle.
func NewGameboard(p puzzle.Puzzle) *Gameboard {
	b := &Gameboard{
		cells:    p.Given,
		solution: p.Solution,
		given:    mapset.New[Point](),
	}
	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			if p.Given[y][x] != 0 {
				b.given.Put(Point{x, y})
			}
		}
	}
	b.Solved = b.checkSolved()
	return b
}

// Get returns the digit at p. ok is false for empty or off-board cells.
func (b *Gameboard) Get(p Point) (uint8, bool) {
	if !p.In() {
		return 0, false
	}
	v := b.cells[p.Y][p.X]
	return v, v != 0
}

// Solution returns the digit that belongs at p, or 0 off the board.
func (b *Gameboard) Solution(p Point) uint8 {
	if !p.In() {
		return 0
	}
	return b.solution[p.Y][p.X]
}

// IsMutable reports whether the player may write to p.
func (b *Gameboard) IsMutable(p Point) bool {
	return p.In() && !b.given.Has(p)
}

// IsGiven reports whether p was filled in the starting puzzle.
func (b *Gameboard) IsGiven(p Point) bool {
	return b.given.Has(p)
}

// Set writes v at p and judges it against the solution. A refused
// placement changes nothing and is not counted as a move.
func (b *Gameboard) Set(p Point, v uint8) Outcome {
	if !b.IsMutable(p) || v < 1 || v > 9 {
		return OutcomeRefused
	}
	b.cells[p.Y][p.X] = v
	b.Moves++
	b.Solved = b.checkSolved()
	if v != b.solution[p.Y][p.X] {
		return OutcomeIncorrect
	}
	return OutcomeCorrect
}

// Clear empties a mutable cell. It reports whether anything was removed.
func (b *Gameboard) Clear(p Point) bool {
	if !b.IsMutable(p) || b.cells[p.Y][p.X] == 0 {
		return false
	}
	b.cells[p.Y][p.X] = 0
	return true
}

// Reveal fills p with its solution digit. It does not count as a move.
func (b *Gameboard) Reveal(p Point) bool {
	if !b.IsMutable(p) || b.cells[p.Y][p.X] == b.solution[p.Y][p.X] {
		return false
	}
	b.cells[p.Y][p.X] = b.solution[p.Y][p.X]
	b.Solved = b.checkSolved()
	return true
}

// EmptyCells lists the cells not yet holding the right digit, row by row.
func (b *Gameboard) EmptyCells() []Point {
	var out []Point
	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			if b.cells[y][x] != b.solution[y][x] {
				out = append(out, Point{x, y})
			}
		}
	}
	return out
}

// Filled returns the number of non-empty cells.
func (b *Gameboard) Filled() int {
	return b.cells.Filled()
}

// Selected returns the selected cell, if any.
func (b *Gameboard) Selected() (Point, bool) {
	return b.selected, b.hasSelected
}

// Select marks p as the selected cell. Off-board points clear the selection.
func (b *Gameboard) Select(p Point) {
	if !p.In() {
		b.Deselect()
		return
	}
	b.selected, b.hasSelected = p, true
}

// Deselect clears the selection.
func (b *Gameboard) Deselect() {
	b.selected, b.hasSelected = Point{}, false
}

// MoveSelection shifts the selection by (dx, dy), wrapping at the edges.
// With nothing selected it selects the centre cell instead.
func (b *Gameboard) MoveSelection(dx, dy int) {
	if !b.hasSelected {
		b.Select(Point{Size / 2, Size / 2})
		return
	}
	b.selected = Point{
		X: wrap(b.selected.X + dx),
		Y: wrap(b.selected.Y + dy),
	}
}

func wrap(v int) int {
	v %= Size
	if v < 0 {
		v += Size
	}
	return v
}

func (b *Gameboard) checkSolved() bool {
	return b.cells == b.solution
}
