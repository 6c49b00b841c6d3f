package loop

import (
	"math/rand"

	"github.com/alexduckmanton/rope-game/core/grid"
)

// Hint pairs a revealed cell with the number of turns the solution makes
// in its 3×3 neighborhood (0–4 in practice, bounded by the area).
type Hint struct {
	Cell  grid.Cell
	Turns int
}

// SelectHints picks each cell of the board independently with probability p
// and attaches the solution's turn count for its neighborhood. p = 0 yields
// an empty set, p = 1 reveals every cell.
func SelectHints(g grid.Grid, solution Path, p float64, rng *rand.Rand) []Hint {
	if p <= 0 {
		return nil
	}
	tm := BuildTurnMap(solution)
	var hints []Hint
	for _, c := range g.Cells() {
		if p >= 1 || rng.Float64() < p {
			hints = append(hints, Hint{Cell: c, Turns: CountTurnsInArea(g, c, tm)})
		}
	}
	return hints
}
