package life

// Cell identifies one lattice position as a (row, column) pair. Coordinates
// are signed and unbounded; negative values are valid positions.
type Cell struct {
	Row int
	Col int
}

// mooreOffsets lists the eight relative positions of the Moore neighborhood.
var mooreOffsets = [8]Cell{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// Neighbors returns the eight Moore neighbors of c.
func (c Cell) Neighbors() [8]Cell {
	var out [8]Cell
	for i, d := range mooreOffsets {
		out[i] = Cell{Row: c.Row + d.Row, Col: c.Col + d.Col}
	}
	return out
}

// Bounds describes an inclusive axis-aligned rectangle on the lattice.
// A range with Max < Min denotes a zero-sized dimension.
type Bounds struct {
	MinRow, MaxRow int
	MinCol, MaxCol int
}

// Height returns the number of rows covered, zero for an inverted row range.
func (b Bounds) Height() int {
	if b.MaxRow < b.MinRow {
		return 0
	}
	return b.MaxRow - b.MinRow + 1
}

// Width returns the number of columns covered, zero for an inverted column range.
func (b Bounds) Width() int {
	if b.MaxCol < b.MinCol {
		return 0
	}
	return b.MaxCol - b.MinCol + 1
}

// Contains reports whether c lies inside the rectangle.
func (b Bounds) Contains(c Cell) bool {
	return c.Row >= b.MinRow && c.Row <= b.MaxRow && c.Col >= b.MinCol && c.Col <= b.MaxCol
}

// Expand grows the rectangle by margin cells on every side.
func (b Bounds) Expand(margin int) Bounds {
	return Bounds{
		MinRow: b.MinRow - margin,
		MaxRow: b.MaxRow + margin,
		MinCol: b.MinCol - margin,
		MaxCol: b.MaxCol + margin,
	}
}
