package grid

import (
	"reflect"
	"testing"
)

func TestIsAdjacent(t *testing.T) {
	g := New(4)
	cases := []struct {
		a, b Cell
		want bool
	}{
		{Cell{0, 0}, Cell{0, 1}, true},
		{Cell{0, 0}, Cell{1, 0}, true},
		{Cell{0, 0}, Cell{1, 1}, false},
		{Cell{0, 0}, Cell{0, 0}, false},
		{Cell{0, 0}, Cell{0, 2}, false},
		{Cell{0, 0}, Cell{0, -1}, false},
		{Cell{3, 3}, Cell{3, 2}, true},
	}
	for _, c := range cases {
		if got := g.IsAdjacent(c.a, c.b); got != c.want {
			t.Errorf("IsAdjacent(%v, %v) = %t, want %t", c.a, c.b, got, c.want)
		}
	}
}

func TestNeighborhoodClipping(t *testing.T) {
	g := New(4)
	if got := len(g.Neighborhood(Cell{0, 0})); got != 4 {
		t.Errorf("corner neighborhood has %d cells, want 4", got)
	}
	if got := len(g.Neighborhood(Cell{0, 2})); got != 6 {
		t.Errorf("edge neighborhood has %d cells, want 6", got)
	}
	if got := len(g.Neighborhood(Cell{2, 2})); got != 9 {
		t.Errorf("interior neighborhood has %d cells, want 9", got)
	}
}

func TestIndexRoundTrip(t *testing.T) {
	g := New(5)
	for i := 0; i < g.CellCount(); i++ {
		if got := g.Index(g.CellAt(i)); got != i {
			t.Fatalf("Index(CellAt(%d)) = %d", i, got)
		}
	}
}

func TestShortestPath(t *testing.T) {
	g := New(4)
	p := g.ShortestPath(Cell{0, 0}, Cell{0, 3})
	want := []Cell{{0, 0}, {0, 1}, {0, 2}, {0, 3}}
	if !reflect.DeepEqual(p, want) {
		t.Fatalf("ShortestPath = %v, want %v", p, want)
	}

	p = g.ShortestPath(Cell{0, 0}, Cell{2, 3})
	if len(p) != 6 {
		t.Fatalf("path length %d, want 6", len(p))
	}
	if p[0] != (Cell{0, 0}) || p[len(p)-1] != (Cell{2, 3}) {
		t.Fatalf("path endpoints wrong: %v", p)
	}
	for i := 1; i < len(p); i++ {
		if !g.IsAdjacent(p[i-1], p[i]) {
			t.Fatalf("path cells %v and %v not adjacent", p[i-1], p[i])
		}
	}

	if p := g.ShortestPath(Cell{1, 1}, Cell{1, 1}); len(p) != 1 {
		t.Fatalf("self path = %v, want single cell", p)
	}
	if p := g.ShortestPath(Cell{0, 0}, Cell{9, 9}); p != nil {
		t.Fatalf("out-of-bounds path = %v, want nil", p)
	}
}

func TestResolveCell(t *testing.T) {
	g := New(4)
	if c, ok := g.ResolveCell(10, 10, 100); !ok || c != (Cell{0, 0}) {
		t.Fatalf("ResolveCell(10,10) = %v, %t", c, ok)
	}
	if c, ok := g.ResolveCell(350, 150, 100); !ok || c != (Cell{1, 3}) {
		t.Fatalf("ResolveCell(350,150) = %v, %t", c, ok)
	}
	if _, ok := g.ResolveCell(450, 10, 100); ok {
		t.Fatal("expected point right of the board to be rejected")
	}
	if _, ok := g.ResolveCell(-5, 10, 100); ok {
		t.Fatal("expected negative point to be rejected")
	}
}

func TestDirBetween(t *testing.T) {
	at := Cell{1, 1}
	cases := []struct {
		to   Cell
		want Dir
	}{
		{Cell{0, 1}, DirUp},
		{Cell{1, 2}, DirRight},
		{Cell{2, 1}, DirDown},
		{Cell{1, 0}, DirLeft},
		{Cell{2, 2}, DirNone},
		{Cell{1, 1}, DirNone},
	}
	for _, c := range cases {
		if got := DirBetween(at, c.to); got != c.want {
			t.Errorf("DirBetween(%v, %v) = %v, want %v", at, c.to, got, c.want)
		}
	}
	if DirUp.Opposite() != DirDown || DirLeft.Opposite() != DirRight {
		t.Fatal("Opposite is wrong")
	}
}
