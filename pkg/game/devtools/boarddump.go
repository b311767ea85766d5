// Package devtools provides developer tools for testing and debugging.
package devtools

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"sudokubattle/pkg/game/models"
	"sudokubattle/pkg/game/puzzle"
)

const boardDumpFilename = "board.txt"

// Snapshot is the battle state written by a dump.
type Snapshot struct {
	Board      *models.Gameboard
	Character  *models.Character
	Opponent   *models.Character
	Difficulty string
	Elapsed    time.Duration
}

// markSymbol classifies a cell for the marks grid.
func markSymbol(b *models.Gameboard, p models.Point) rune {
	v, _ := b.Get(p)
	switch {
	case b.IsGiven(p):
		return 'G'
	case v == 0:
		return '.'
	case v == b.Solution(p):
		return '+'
	default:
		return '!'
	}
}

func writeGrid(w io.Writer, cell func(p models.Point) rune) {
	for y := 0; y < puzzle.Size; y++ {
		if y > 0 && y%3 == 0 {
			fmt.Fprintln(w, "------+-------+------")
		}
		for x := 0; x < puzzle.Size; x++ {
			if x > 0 && x%3 == 0 {
				fmt.Fprint(w, "| ")
			}
			fmt.Fprintf(w, "%c ", cell(models.Point{X: x, Y: y}))
		}
		fmt.Fprintln(w)
	}
}

func digit(v uint8) rune {
	if v == 0 {
		return '.'
	}
	return rune('0' + v)
}

func writeFighter(w io.Writer, c *models.Character) {
	if c == nil {
		return
	}
	fmt.Fprintf(w, "  name: %q kind: %s health: %d/%d\n", c.Name, c.Kind, c.Health, c.MaxHealth)
	for _, a := range c.Abilities {
		fmt.Fprintf(w, "    ability: %q status: %s charges: %d\n", a.Name, a.Status, a.Charges)
	}
}

// WriteBoardDump writes a human readable dump of a battle to w: metadata,
// the board as played, a legend and marks grid, the solution and the
// fighters.
func WriteBoardDump(w io.Writer, s Snapshot) error {
	if s.Board == nil {
		return fmt.Errorf("no board")
	}
	b := s.Board
	bw := bufio.NewWriter(w)

	sel, hasSel := b.Selected()
	fmt.Fprintln(bw, "=== BOARD DUMP ===")
	fmt.Fprintln(bw)
	fmt.Fprintln(bw, "--- Metadata ---")
	fmt.Fprintf(bw, "difficulty: %s\n", s.Difficulty)
	fmt.Fprintf(bw, "elapsed: %s\n", s.Elapsed.Round(time.Second))
	fmt.Fprintf(bw, "moves: %d\n", b.Moves)
	fmt.Fprintf(bw, "filled: %d/%d\n", b.Filled(), puzzle.Size*puzzle.Size)
	fmt.Fprintf(bw, "open: %d\n", len(b.EmptyCells()))
	fmt.Fprintf(bw, "solved: %v\n", b.Solved)
	fmt.Fprintf(bw, "coordinate_system: x,y (0-based, x=column, y=row)\n")
	if hasSel {
		fmt.Fprintf(bw, "selected: %d,%d\n", sel.X, sel.Y)
	} else {
		fmt.Fprintln(bw, "selected: none")
	}
	fmt.Fprintln(bw)

	fmt.Fprintln(bw, "--- Board ---")
	writeGrid(bw, func(p models.Point) rune {
		v, _ := b.Get(p)
		return digit(v)
	})
	fmt.Fprintln(bw)

	fmt.Fprintln(bw, "--- Legend (marks) ---")
	fmt.Fprintln(bw, "G = given  + = correct  ! = wrong  . = empty  @ = selected")
	fmt.Fprintln(bw)
	fmt.Fprintln(bw, "--- Marks ---")
	writeGrid(bw, func(p models.Point) rune {
		if hasSel && p == sel {
			return '@'
		}
		return markSymbol(b, p)
	})
	fmt.Fprintln(bw)

	fmt.Fprintln(bw, "--- Solution ---")
	writeGrid(bw, func(p models.Point) rune {
		return digit(b.Solution(p))
	})
	fmt.Fprintln(bw)

	fmt.Fprintln(bw, "--- Fighters ---")
	writeFighter(bw, s.Character)
	writeFighter(bw, s.Opponent)

	return bw.Flush()
}

// DumpBoardToFile writes the dump to board.txt in dir, replacing any
// earlier dump, and returns the absolute path written.
func DumpBoardToFile(dir string, s Snapshot) (string, error) {
	absPath, err := filepath.Abs(filepath.Join(dir, boardDumpFilename))
	if err != nil {
		return "", err
	}

	f, err := os.Create(absPath)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if err := WriteBoardDump(f, s); err != nil {
		return "", err
	}
	return absPath, nil
}
