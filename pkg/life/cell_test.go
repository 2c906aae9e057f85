package life

import "testing"

func TestNeighborsAreMooreNeighborhood(t *testing.T) {
	c := Cell{Row: 3, Col: -2}
	seen := map[Cell]bool{}
	for _, n := range c.Neighbors() {
		if n == c {
			t.Fatal("a cell is not its own neighbor")
		}
		dr, dc := n.Row-c.Row, n.Col-c.Col
		if dr < -1 || dr > 1 || dc < -1 || dc > 1 {
			t.Fatalf("offset (%d,%d) outside the Moore neighborhood", dr, dc)
		}
		seen[n] = true
	}
	if len(seen) != 8 {
		t.Fatalf("got %d distinct neighbors, want 8", len(seen))
	}
}

func TestBoundsDimensions(t *testing.T) {
	b := Bounds{MinRow: -1, MaxRow: 2, MinCol: 3, MaxCol: 3}
	if b.Height() != 4 || b.Width() != 1 {
		t.Fatalf("got %dx%d, want 4x1", b.Height(), b.Width())
	}
	if !b.Contains(Cell{Row: 0, Col: 3}) || b.Contains(Cell{Row: 0, Col: 4}) {
		t.Fatal("Contains misclassified a cell")
	}

	inverted := Bounds{MinRow: 2, MaxRow: 0, MinCol: 0, MaxCol: 2}
	if inverted.Height() != 0 {
		t.Fatalf("inverted row range height = %d, want 0", inverted.Height())
	}

	e := b.Expand(2)
	want := Bounds{MinRow: -3, MaxRow: 4, MinCol: 1, MaxCol: 5}
	if e != want {
		t.Fatalf("Expand(2) = %+v, want %+v", e, want)
	}
}
