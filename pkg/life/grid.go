package life

// Grid is a sparse snapshot of an unbounded lattice: it stores only the set
// of live cells. A Grid is immutable after construction; advancing the
// automaton produces a brand-new Grid, so snapshots held by callers are
// never changed behind their backs.
type Grid struct {
	live map[Cell]struct{}
}

// NewGrid builds a grid from an explicit list of live cells.
func NewGrid(cells ...Cell) *Grid {
	live := make(map[Cell]struct{}, len(cells))
	for _, c := range cells {
		live[c] = struct{}{}
	}
	return &Grid{live: live}
}

// FromDense builds a grid from a dense 0/1 pattern. Every non-zero value at
// rows[r][c] becomes live cell (r, c); row and column indices are 0-based.
func FromDense(rows [][]int) *Grid {
	live := make(map[Cell]struct{})
	for r, row := range rows {
		for c, v := range row {
			if v != 0 {
				live[Cell{Row: r, Col: c}] = struct{}{}
			}
		}
	}
	return &Grid{live: live}
}

// newGrid wraps an already-built live set without copying. Callers must not
// retain a reference to the map.
func newGrid(live map[Cell]struct{}) *Grid {
	return &Grid{live: live}
}

// Live returns the live cells as a fresh slice in unspecified order.
// Mutating the returned slice has no effect on the grid.
func (g *Grid) Live() []Cell {
	out := make([]Cell, 0, len(g.live))
	for c := range g.live {
		out = append(out, c)
	}
	return out
}

// Contains reports whether the cell is alive.
func (g *Grid) Contains(c Cell) bool {
	_, ok := g.live[c]
	return ok
}

// Population returns the number of live cells.
func (g *Grid) Population() int { return len(g.live) }

// Copy returns a grid with an independent live set.
func (g *Grid) Copy() *Grid {
	live := make(map[Cell]struct{}, len(g.live))
	for c := range g.live {
		live[c] = struct{}{}
	}
	return &Grid{live: live}
}

// Equal reports whether both grids have the same live set.
func (g *Grid) Equal(other *Grid) bool {
	if len(g.live) != len(other.live) {
		return false
	}
	for c := range g.live {
		if _, ok := other.live[c]; !ok {
			return false
		}
	}
	return true
}

// Bounds returns the tight bounding box of the live set. The second return
// value is false when the grid is empty.
func (g *Grid) Bounds() (Bounds, bool) {
	if len(g.live) == 0 {
		return Bounds{}, false
	}
	var b Bounds
	first := true
	for c := range g.live {
		if first {
			b = Bounds{MinRow: c.Row, MaxRow: c.Row, MinCol: c.Col, MaxCol: c.Col}
			first = false
			continue
		}
		if c.Row < b.MinRow {
			b.MinRow = c.Row
		}
		if c.Row > b.MaxRow {
			b.MaxRow = c.Row
		}
		if c.Col < b.MinCol {
			b.MinCol = c.Col
		}
		if c.Col > b.MaxCol {
			b.MaxCol = c.Col
		}
	}
	return b, true
}

// Dense projects the grid onto its tight bounding box as a row-major 0/1
// array. An empty grid yields zero rows.
func (g *Grid) Dense() [][]int {
	b, ok := g.Bounds()
	if !ok {
		return nil
	}
	return g.DenseBounds(b)
}

// DenseBounds projects the grid onto the given inclusive rectangle as a
// row-major 0/1 array, 1 for live and 0 for dead. An empty grid yields an
// all-zero array sized to the rectangle. Inverted ranges degenerate to a
// zero-sized dimension: MaxRow < MinRow yields zero rows, MaxCol < MinCol
// yields rows of length zero. No input is an error.
func (g *Grid) DenseBounds(b Bounds) [][]int {
	h, w := b.Height(), b.Width()
	out := make([][]int, h)
	for i := range out {
		row := make([]int, w)
		for j := range row {
			if g.Contains(Cell{Row: b.MinRow + i, Col: b.MinCol + j}) {
				row[j] = 1
			}
		}
		out[i] = row
	}
	return out
}
