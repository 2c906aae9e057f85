package life

// Rule holds the survival and birth thresholds of a Life-like automaton.
// The thresholds are plain data fixed at engine construction; alternate
// automata are modeled by varying the values, not by subtyping.
type Rule struct {
	SurviveMin int
	SurviveMax int
	BirthCount int
}

// ConwayRule returns the standard Game of Life thresholds (B3/S23).
func ConwayRule() Rule {
	return Rule{SurviveMin: 2, SurviveMax: 3, BirthCount: 3}
}

// Apply reports whether a cell is alive in the next generation given its
// live-neighbor count and current liveness. It is a pure function with no
// dependency on any other cell.
func (r Rule) Apply(count int, alive bool) bool {
	if alive {
		return count >= r.SurviveMin && count <= r.SurviveMax
	}
	return count == r.BirthCount
}

// NeighborCounts maps every cell that is live or adjacent to a live cell to
// its live-neighbor count. A live cell with no live neighbors is present
// with count 0 so the rule can still evaluate it; a dead cell adjacent to
// nothing never appears (it cannot be born, so omitting it is safe).
func NeighborCounts(g *Grid) map[Cell]int {
	counts := make(map[Cell]int, len(g.live)*4)
	for c := range g.live {
		if _, ok := counts[c]; !ok {
			counts[c] = 0
		}
		for _, d := range mooreOffsets {
			counts[Cell{Row: c.Row + d.Row, Col: c.Col + d.Col}]++
		}
	}
	return counts
}

// Game owns the current grid and advances it one generation per Step. It
// keeps no history; callers that want past generations save the snapshots
// Step returns. A Game is not safe for concurrent Step calls, though the
// grids it returns are immutable and safe to read from any goroutine.
type Game struct {
	grid *Grid
	rule Rule
}

// New creates a game over the given grid using the standard Conway rule.
// A nil grid starts the game empty.
func New(g *Grid) *Game {
	return NewWithRule(g, ConwayRule())
}

// NewWithRule creates a game with explicit rule thresholds.
func NewWithRule(g *Grid, r Rule) *Game {
	if g == nil {
		g = NewGrid()
	}
	return &Game{grid: g, rule: r}
}

// Grid returns the current generation's grid.
func (ga *Game) Grid() *Grid { return ga.grid }

// Rule returns the game's rule thresholds.
func (ga *Game) Rule() Rule { return ga.rule }

// Step advances the automaton by one generation and returns the new grid.
// The previous grid is replaced, never mutated.
func (ga *Game) Step() *Grid {
	counts := NeighborCounts(ga.grid)
	next := make(map[Cell]struct{}, len(ga.grid.live))
	for cell, count := range counts {
		if ga.rule.Apply(count, ga.grid.Contains(cell)) {
			next[cell] = struct{}{}
		}
	}
	ga.grid = newGrid(next)
	return ga.grid
}

// Run advances the automaton n generations and returns the final grid.
// n <= 0 is a no-op that returns the current grid.
func (ga *Game) Run(n int) *Grid {
	for i := 0; i < n; i++ {
		ga.Step()
	}
	return ga.grid
}
