package puzzle

import (
	"math/rand"
	"testing"
)

const solvedGrid = `
534678912
672195348
198342567
859761423
426853791
713924856
961537284
287419635
345286179`

const openGrid = `
53..7....
6..195...
.98....6.
8...6...3
4..8.3..1
7...2...6
.6....28.
...419..5
....8..79`

func mustParse(t *testing.T, s string) Grid {
	t.Helper()
	g, err := Parse(s)
	if err != nil {
		t.Fatalf("Parse() = %v", err)
	}
	return g
}

func checkSolved(t *testing.T, g Grid) {
	t.Helper()
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			v := g[r][c]
			if v < 1 || v > 9 || !Valid(&g, r, c, v) {
				t.Fatalf("cell (%d, %d) = %d breaks the grid:\n%s", r, c, v, g)
			}
		}
	}
}

func TestParseRoundTrip(t *testing.T) {
	g := mustParse(t, openGrid)
	back := mustParse(t, g.String())
	if back != g {
		t.Errorf("Parse(String()) changed the grid")
	}
	if _, err := Parse("123"); err == nil {
		t.Errorf("Parse(short) returned no error")
	}
	if _, err := Parse(openGrid[:10] + "x" + openGrid[11:]); err == nil {
		t.Errorf("Parse(bad char) returned no error")
	}
}

func TestValid(t *testing.T) {
	g := mustParse(t, openGrid)
	tests := []struct {
		row, col int
		v        uint8
		want     bool
	}{
		{0, 2, 4, true},
		{0, 2, 5, false}, // row
		{0, 2, 8, false}, // column
		{0, 2, 9, false}, // box
		{0, 2, 0, false},
		{0, 2, 10, false},
		{0, 0, 5, true}, // a cell does not clash with itself
	}
	for _, tt := range tests {
		if got := Valid(&g, tt.row, tt.col, tt.v); got != tt.want {
			t.Errorf("Valid(%d, %d, %d) = %t, want %t", tt.row, tt.col, tt.v, got, tt.want)
		}
	}
}

func TestSolve(t *testing.T) {
	got, ok := Solve(mustParse(t, openGrid))
	if !ok {
		t.Fatal("Solve() found no solution")
	}
	if want := mustParse(t, solvedGrid); got != want {
		t.Errorf("Solve() =\n%s want\n%s", got, want)
	}

	broken := mustParse(t, openGrid)
	broken[0][2] = 5
	if _, ok := Solve(broken); ok {
		t.Errorf("Solve() succeeded on a contradictory grid")
	}
}

func TestCountSolutions(t *testing.T) {
	if n := CountSolutions(mustParse(t, openGrid), 2); n != 1 {
		t.Errorf("CountSolutions(open) = %d, want 1", n)
	}
	if n := CountSolutions(Grid{}, 3); n != 3 {
		t.Errorf("CountSolutions(empty, 3) = %d, want 3", n)
	}
	if n := CountSolutions(mustParse(t, solvedGrid), 2); n != 1 {
		t.Errorf("CountSolutions(solved) = %d, want 1", n)
	}
}

func TestGenerate(t *testing.T) {
	for _, d := range []Difficulty{Easy, Medium, Hard} {
		t.Run(d.String(), func(t *testing.T) {
			p := Generate(rand.New(rand.NewSource(7)), d)
			checkSolved(t, p.Solution)

			for r := 0; r < Size; r++ {
				for c := 0; c < Size; c++ {
					if v := p.Given[r][c]; v != 0 && v != p.Solution[r][c] {
						t.Fatalf("given (%d, %d) = %d, solution has %d", r, c, v, p.Solution[r][c])
					}
				}
			}
			if n := CountSolutions(p.Given, 2); n != 1 {
				t.Errorf("generated puzzle has %d solutions, want 1", n)
			}
			if got := p.Given.Filled(); got < d.Clues() || got == Size*Size {
				t.Errorf("Filled() = %d, want at least %d and some empty cells", got, d.Clues())
			}
		})
	}
}

func TestGenerateDeterministic(t *testing.T) {
	a := Generate(rand.New(rand.NewSource(42)), Medium)
	b := Generate(rand.New(rand.NewSource(42)), Medium)
	if a != b {
		t.Errorf("same seed produced different puzzles")
	}
}

func TestParseDifficulty(t *testing.T) {
	tests := []struct {
		in      string
		want    Difficulty
		wantErr bool
	}{
		{"easy", Easy, false},
		{"HARD", Hard, false},
		{" medium ", Medium, false},
		{"", Medium, false},
		{"nightmare", Medium, true},
	}
	for _, tt := range tests {
		got, err := ParseDifficulty(tt.in)
		if got != tt.want || (err != nil) != tt.wantErr {
			t.Errorf("ParseDifficulty(%q) = %v, %v, want %v (error %t)", tt.in, got, err, tt.want, tt.wantErr)
		}
	}
}
