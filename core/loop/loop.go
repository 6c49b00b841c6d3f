package loop

import (
	"fmt"

	"github.com/alexduckmanton/rope-game/core/grid"
)

// Path is an ordered closed tour of cells: consecutive entries are
// grid-adjacent and the last entry is adjacent to the first. A solution
// path additionally visits every cell of the grid exactly once.
type Path []grid.Cell

// Validate checks the solution-path invariants: length Size², no repeated
// cells, and cyclic adjacency including the closing edge.
func (p Path) Validate(g grid.Grid) error {
	if len(p) != g.CellCount() {
		return fmt.Errorf("path covers %d of %d cells", len(p), g.CellCount())
	}
	seen := make([]bool, g.CellCount())
	for i, c := range p {
		if !g.InBounds(c) {
			return fmt.Errorf("cell %v out of bounds", c)
		}
		if seen[g.Index(c)] {
			return fmt.Errorf("cell %v repeated", c)
		}
		seen[g.Index(c)] = true
		next := p[(i+1)%len(p)]
		if !g.IsAdjacent(c, next) {
			return fmt.Errorf("cells %v and %v not adjacent", c, next)
		}
	}
	return nil
}

// Neighbors returns the cyclic predecessor and successor of position i.
func (p Path) Neighbors(i int) (prev, next grid.Cell) {
	n := len(p)
	return p[(i-1+n)%n], p[(i+1)%n]
}

// TurnMap records, per cell on a loop, whether the loop bends there.
type TurnMap map[grid.Cell]bool

// TurnAt reports whether a loop passing prev→at→next bends at `at`: true
// unless prev and next lie on exactly opposite sides of it. At a board
// corner the two neighbors can never be opposite, so corners always turn.
func TurnAt(prev, at, next grid.Cell) bool {
	in := grid.DirBetween(at, prev)
	out := grid.DirBetween(at, next)
	return in != out.Opposite()
}

// BuildTurnMap derives the turn status of every cell on the path.
func BuildTurnMap(p Path) TurnMap {
	tm := make(TurnMap, len(p))
	for i, c := range p {
		prev, next := p.Neighbors(i)
		tm[c] = TurnAt(prev, c, next)
	}
	return tm
}

// CountTurnsInArea sums the turn map over the 3×3 neighborhood of center,
// clipped at board edges. Cells absent from the map contribute 0.
func CountTurnsInArea(g grid.Grid, center grid.Cell, tm TurnMap) int {
	count := 0
	for _, c := range g.Neighborhood(center) {
		if tm[c] {
			count++
		}
	}
	return count
}
