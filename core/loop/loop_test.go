package loop

import (
	"testing"

	"github.com/alexduckmanton/rope-game/core/grid"
)

// fixedPath4 is a hand-checked boustrophedon tour of the 4×4 board.
func fixedPath4() Path {
	return Path{
		{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2}, {Row: 0, Col: 3},
		{Row: 1, Col: 3}, {Row: 1, Col: 2}, {Row: 1, Col: 1},
		{Row: 2, Col: 1}, {Row: 2, Col: 2}, {Row: 2, Col: 3},
		{Row: 3, Col: 3}, {Row: 3, Col: 2}, {Row: 3, Col: 1}, {Row: 3, Col: 0},
		{Row: 2, Col: 0}, {Row: 1, Col: 0},
	}
}

func TestFixedPathIsValid(t *testing.T) {
	if err := fixedPath4().Validate(grid.New(4)); err != nil {
		t.Fatalf("fixed path invalid: %v", err)
	}
}

func TestTurnAt(t *testing.T) {
	straight := TurnAt(grid.Cell{Row: 0, Col: 0}, grid.Cell{Row: 0, Col: 1}, grid.Cell{Row: 0, Col: 2})
	if straight {
		t.Error("straight horizontal run reported as a turn")
	}
	if TurnAt(grid.Cell{Row: 0, Col: 1}, grid.Cell{Row: 1, Col: 1}, grid.Cell{Row: 2, Col: 1}) {
		t.Error("straight vertical run reported as a turn")
	}
	if !TurnAt(grid.Cell{Row: 0, Col: 1}, grid.Cell{Row: 0, Col: 0}, grid.Cell{Row: 1, Col: 0}) {
		t.Error("corner bend not reported as a turn")
	}
}

func TestBuildTurnMapFixedPath(t *testing.T) {
	tm := BuildTurnMap(fixedPath4())

	// Manual recount of where the fixed tour bends.
	wantTurns := map[grid.Cell]bool{
		{Row: 0, Col: 0}: true, {Row: 0, Col: 3}: true, {Row: 1, Col: 3}: true, {Row: 1, Col: 1}: true,
		{Row: 2, Col: 1}: true, {Row: 2, Col: 3}: true, {Row: 3, Col: 3}: true, {Row: 3, Col: 0}: true,
	}
	for _, c := range fixedPath4() {
		if tm[c] != wantTurns[c] {
			t.Errorf("turn at %v = %t, want %t", c, tm[c], wantTurns[c])
		}
	}
}

func TestCountTurnsInArea(t *testing.T) {
	g := grid.New(4)
	tm := BuildTurnMap(fixedPath4())
	cases := []struct {
		center grid.Cell
		want   int
	}{
		{grid.Cell{Row: 0, Col: 0}, 2}, // clipped corner area: turns at (0,0) and (1,1)
		{grid.Cell{Row: 1, Col: 1}, 3}, // (0,0), (1,1), (2,1)
		{grid.Cell{Row: 2, Col: 2}, 5}, // (1,1), (1,3), (2,1), (2,3), (3,3)
		{grid.Cell{Row: 3, Col: 3}, 2}, // (2,3), (3,3)
	}
	for _, c := range cases {
		if got := CountTurnsInArea(g, c.center, tm); got != c.want {
			t.Errorf("CountTurnsInArea(%v) = %d, want %d", c.center, got, c.want)
		}
	}
}

func TestCountTurnsIgnoresAbsentCells(t *testing.T) {
	g := grid.New(4)
	tm := TurnMap{{Row: 0, Col: 0}: true}
	if got := CountTurnsInArea(g, grid.Cell{Row: 0, Col: 0}, tm); got != 1 {
		t.Fatalf("count = %d, want 1 (absent cells contribute 0)", got)
	}
}

func TestValidateRejectsBadPaths(t *testing.T) {
	g := grid.New(4)
	short := fixedPath4()[:8]
	if err := short.Validate(g); err == nil {
		t.Error("expected error for incomplete path")
	}
	dup := fixedPath4()
	dup[5] = dup[4]
	if err := dup.Validate(g); err == nil {
		t.Error("expected error for repeated cell")
	}
	open := fixedPath4()
	open[len(open)-1] = grid.Cell{Row: 2, Col: 2} // duplicate and breaks closure
	if err := open.Validate(g); err == nil {
		t.Error("expected error for broken tour")
	}
}
