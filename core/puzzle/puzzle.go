package puzzle

import (
	"fmt"
	"math/rand"

	"github.com/alexduckmanton/rope-game/core/conn"
	"github.com/alexduckmanton/rope-game/core/editor"
	"github.com/alexduckmanton/rope-game/core/grid"
	"github.com/alexduckmanton/rope-game/core/loop"
	game_log "github.com/alexduckmanton/rope-game/internal/log"
)

// Puzzle ties one generated board together: the immutable solution and
// hints, the player's connection graph, and the editor mutating it. The
// solution and hints are produced once and thereafter only read.
type Puzzle struct {
	Grid     grid.Grid
	Solution loop.Path
	Hints    []loop.Hint
	Conn     *conn.Graph
	Editor   *editor.Editor

	solutionTurns loop.TurnMap
	won           bool
	logger        *game_log.Logger
}

// New generates a fresh puzzle: a random closed tour over a size×size board
// and a hint per cell with probability hintProb. Generator failure is
// wrapped, so callers can match it with errors.Is(err, loop.ErrExhausted).
func New(size int, hintProb float64, rng *rand.Rand, logger *game_log.Logger) (*Puzzle, error) {
	g := grid.New(size)
	solution, err := loop.NewGenerator(g, rng, logger).Generate()
	if err != nil {
		return nil, fmt.Errorf("puzzle: %w", err)
	}
	p := &Puzzle{
		Grid:          g,
		Solution:      solution,
		Hints:         loop.SelectHints(g, solution, hintProb, rng),
		solutionTurns: loop.BuildTurnMap(solution),
		logger:        logger,
	}
	p.Conn = conn.New(g, logger)
	p.Editor = editor.New(g, p.Conn, logger)
	logger.Infof("[PUZZLE] new %dx%d puzzle, %d hints", size, size, len(p.Hints))
	return p, nil
}

// Restart clears the player's drawing but keeps the same solution and
// hints.
func (p *Puzzle) Restart() {
	p.Conn.Reset()
	p.Editor.Unfreeze()
	p.won = false
	p.logger.Infof("[PUZZLE] restarted")
}

func (p *Puzzle) Won() bool { return p.won }

// SolutionTurns exposes the solution's precomputed turn map.
func (p *Puzzle) SolutionTurns() loop.TurnMap { return p.solutionTurns }

// NoteChange is called after every editor mutation batch. It re-runs the
// win check and freezes the editor on first success.
func (p *Puzzle) NoteChange() {
	if p.won {
		return
	}
	if p.CheckWin() {
		p.won = true
		p.Editor.Freeze()
		p.logger.Infof("[PUZZLE] solved")
	}
}

// CheckWin reports whether the player's graph is a complete valid loop
// consistent with every hint. It is a pure read of current state.
func (p *Puzzle) CheckWin() bool {
	if p.Conn.DrawnCount() != p.Grid.CellCount() {
		return false
	}
	for _, c := range p.Conn.DrawnCells() {
		if p.Conn.Degree(c) != 2 {
			return false
		}
	}
	playerTurns := p.Conn.TurnMap()
	for _, h := range p.Hints {
		if loop.CountTurnsInArea(p.Grid, h.Cell, playerTurns) != h.Turns {
			return false
		}
	}
	return true
}
