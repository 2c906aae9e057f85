package life

import "testing"

func denseEqual(a, b [][]int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if len(a[i]) != len(b[i]) {
			return false
		}
		for j := range a[i] {
			if a[i][j] != b[i][j] {
				return false
			}
		}
	}
	return true
}

func TestFromDenseEmpty(t *testing.T) {
	g := FromDense(nil)
	if g.Population() != 0 {
		t.Fatalf("empty pattern produced %d live cells", g.Population())
	}
	if out := g.Dense(); len(out) != 0 {
		t.Fatalf("Dense of empty grid returned %d rows, want 0", len(out))
	}
	if _, ok := g.Bounds(); ok {
		t.Fatal("empty grid must not report bounds")
	}
}

func TestEmptyGridDenseWithBounds(t *testing.T) {
	g := NewGrid()
	out := g.DenseBounds(Bounds{MinRow: 0, MaxRow: 1, MinCol: 0, MaxCol: 2})
	if len(out) != 2 {
		t.Fatalf("got %d rows, want 2", len(out))
	}
	for r, row := range out {
		if len(row) != 3 {
			t.Fatalf("row %d has %d columns, want 3", r, len(row))
		}
		for c, v := range row {
			if v != 0 {
				t.Fatalf("cell (%d,%d) = %d, want 0", r, c, v)
			}
		}
	}
}

func TestDenseRoundTrip(t *testing.T) {
	data := [][]int{
		{0, 1, 0},
		{1, 0, 0},
	}
	g := FromDense(data)
	out := g.DenseBounds(Bounds{MinRow: 0, MaxRow: 1, MinCol: 0, MaxCol: 2})
	if !denseEqual(out, data) {
		t.Fatalf("round trip mismatch: got %v, want %v", out, data)
	}

	// The tight box starts at (0,0) here, so FromDense over the tight
	// projection must reproduce the live set exactly.
	if !g.Equal(FromDense(g.Dense())) {
		t.Fatal("FromDense(Dense()) did not reproduce the live set")
	}
}

func TestTightBoundsWithNegativeCoordinates(t *testing.T) {
	g := NewGrid(Cell{Row: -2, Col: 5}, Cell{Row: 3, Col: -1})
	b, ok := g.Bounds()
	if !ok {
		t.Fatal("expected bounds")
	}
	want := Bounds{MinRow: -2, MaxRow: 3, MinCol: -1, MaxCol: 5}
	if b != want {
		t.Fatalf("bounds = %+v, want %+v", b, want)
	}
	out := g.Dense()
	if len(out) != 6 || len(out[0]) != 7 {
		t.Fatalf("dense projection is %dx%d, want 6x7", len(out), len(out[0]))
	}
	if out[0][6] != 1 || out[5][0] != 1 {
		t.Fatal("live cells not at expected projected positions")
	}
}

func TestInvertedBoundsDegenerate(t *testing.T) {
	g := NewGrid(Cell{Row: 0, Col: 0})

	if out := g.DenseBounds(Bounds{MinRow: 5, MaxRow: 2, MinCol: 0, MaxCol: 3}); len(out) != 0 {
		t.Fatalf("inverted row range yielded %d rows, want 0", len(out))
	}

	out := g.DenseBounds(Bounds{MinRow: 0, MaxRow: 2, MinCol: 7, MaxCol: 3})
	if len(out) != 3 {
		t.Fatalf("got %d rows, want 3", len(out))
	}
	for r, row := range out {
		if len(row) != 0 {
			t.Fatalf("row %d has %d columns, want 0", r, len(row))
		}
	}
}

func TestContains(t *testing.T) {
	g := FromDense([][]int{
		{1, 0},
		{0, 1},
	})
	if !g.Contains(Cell{Row: 0, Col: 0}) || !g.Contains(Cell{Row: 1, Col: 1}) {
		t.Fatal("expected live cells missing")
	}
	if g.Contains(Cell{Row: 0, Col: 1}) {
		t.Fatal("dead cell reported live")
	}
}

func TestCopyIsIndependent(t *testing.T) {
	g := NewGrid(Cell{Row: 0, Col: 0}, Cell{Row: 0, Col: 1})
	c := g.Copy()
	if !g.Equal(c) {
		t.Fatal("copy must start equal to the original")
	}
	// The only mutation path is through the internal map; make sure the
	// copy did not alias it.
	delete(c.live, Cell{Row: 0, Col: 0})
	if !g.Contains(Cell{Row: 0, Col: 0}) {
		t.Fatal("mutating the copy leaked into the original")
	}
}

func TestLiveViewIsDetached(t *testing.T) {
	g := NewGrid(Cell{Row: 1, Col: 2})
	view := g.Live()
	if len(view) != 1 {
		t.Fatalf("got %d live cells, want 1", len(view))
	}
	view[0] = Cell{Row: 9, Col: 9}
	if !g.Contains(Cell{Row: 1, Col: 2}) || g.Contains(Cell{Row: 9, Col: 9}) {
		t.Fatal("mutating the returned slice affected the grid")
	}
}
