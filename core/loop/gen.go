package loop

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/alexduckmanton/rope-game/core/grid"
	game_log "github.com/alexduckmanton/rope-game/internal/log"
)

// ErrExhausted is returned when the randomized search fails to produce a
// closed tour within the attempt budget. Callers may retry with a fresh
// seed; for supported (even) board sizes it should not occur in practice.
var ErrExhausted = errors.New("loop: generation attempts exhausted")

const (
	defaultMaxAttempts = 64
	// Expansion budget per attempt. Backtracking with the connectivity
	// prune converges well under this on an 8×8 board.
	stepFactor = 200
)

// Generator produces random closed tours visiting every cell of the board
// exactly once.
type Generator struct {
	g           grid.Grid
	rng         *rand.Rand
	logger      *game_log.Logger
	MaxAttempts int
}

func NewGenerator(g grid.Grid, rng *rand.Rand, logger *game_log.Logger) *Generator {
	return &Generator{g: g, rng: rng, logger: logger, MaxAttempts: defaultMaxAttempts}
}

// Generate runs the randomized depth-first search, restarting on dead ends,
// until a tour closes or the attempt budget runs out. The grid graph is
// bipartite, so a board with an odd cell count has no closed tour at all;
// that case fails fast.
func (gen *Generator) Generate() (Path, error) {
	if gen.g.Size < 2 {
		return nil, fmt.Errorf("board size %d too small: %w", gen.g.Size, ErrExhausted)
	}
	if gen.g.CellCount()%2 == 1 {
		return nil, fmt.Errorf("%dx%d board has no closed tour: %w", gen.g.Size, gen.g.Size, ErrExhausted)
	}
	for attempt := 1; attempt <= gen.MaxAttempts; attempt++ {
		if p, ok := gen.attempt(); ok {
			gen.logger.Infof("[GEN] closed tour found on attempt %d", attempt)
			return p, nil
		}
		gen.logger.Debugf("[GEN] attempt %d failed, restarting", attempt)
	}
	gen.logger.Errorf("[GEN] no closed tour after %d attempts on %dx%d board", gen.MaxAttempts, gen.g.Size, gen.g.Size)
	return nil, ErrExhausted
}

// attempt grows a simple path from a random start cell by randomized
// depth-first traversal, backtracking when a move traps the remaining
// unvisited region, and succeeds when all cells are visited and the tail
// is adjacent to the start.
func (gen *Generator) attempt() (Path, bool) {
	n := gen.g.CellCount()
	start := gen.g.CellAt(gen.rng.Intn(n))
	visited := make([]bool, n)
	visited[gen.g.Index(start)] = true
	path := make(Path, 1, n)
	path[0] = start

	steps := 0
	limit := stepFactor * n

	var extend func() bool
	extend = func() bool {
		steps++
		if steps > limit {
			return false
		}
		if len(path) == n {
			return gen.g.IsAdjacent(path[n-1], start)
		}
		tail := path[len(path)-1]
		cands := gen.unvisitedNeighbors(tail, visited)
		gen.rng.Shuffle(len(cands), func(i, j int) { cands[i], cands[j] = cands[j], cands[i] })
		for _, c := range cands {
			visited[gen.g.Index(c)] = true
			path = append(path, c)
			if gen.regionViable(visited) && extend() {
				return true
			}
			if steps > limit {
				return false
			}
			path = path[:len(path)-1]
			visited[gen.g.Index(c)] = false
		}
		return false
	}

	if extend() {
		return path, true
	}
	return nil, false
}

func (gen *Generator) unvisitedNeighbors(c grid.Cell, visited []bool) []grid.Cell {
	out := make([]grid.Cell, 0, 4)
	for _, n := range gen.g.Neighbors(c) {
		if !visited[gen.g.Index(n)] {
			out = append(out, n)
		}
	}
	return out
}

// regionViable reports whether the unvisited cells still form a single
// connected region. A move that splits them can never be recovered, so the
// search prunes it immediately.
func (gen *Generator) regionViable(visited []bool) bool {
	n := gen.g.CellCount()
	first := -1
	remaining := 0
	for i := 0; i < n; i++ {
		if !visited[i] {
			remaining++
			if first == -1 {
				first = i
			}
		}
	}
	if remaining == 0 {
		return true
	}
	seen := make([]bool, n)
	seen[first] = true
	queue := []grid.Cell{gen.g.CellAt(first)}
	reached := 1
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, nb := range gen.g.Neighbors(cur) {
			idx := gen.g.Index(nb)
			if !visited[idx] && !seen[idx] {
				seen[idx] = true
				reached++
				queue = append(queue, nb)
			}
		}
	}
	return reached == remaining
}
