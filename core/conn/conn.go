package conn

import (
	"github.com/alexduckmanton/rope-game/core/grid"
	"github.com/alexduckmanton/rope-game/core/loop"
	game_log "github.com/alexduckmanton/rope-game/internal/log"
)

const noLink = -1

// Graph is the player's mutable connection graph: for each cell, up to two
// links to adjacent cells, plus the set of cells the player has drawn.
// Links are stored as flattened cell indices in a fixed-capacity arena, so
// edges are symmetric index pairs rather than pointers. The degree ≤ 2
// invariant holds after every exported call.
type Graph struct {
	g      grid.Grid
	links  [][2]int
	drawn  []bool
	logger *game_log.Logger
}

func New(g grid.Grid, logger *game_log.Logger) *Graph {
	c := &Graph{g: g, logger: logger}
	c.Reset()
	return c
}

// Reset clears every link and drawn mark, returning the graph to its
// puzzle-start state.
func (c *Graph) Reset() {
	n := c.g.CellCount()
	c.links = make([][2]int, n)
	for i := range c.links {
		c.links[i] = [2]int{noLink, noLink}
	}
	c.drawn = make([]bool, n)
}

// Ensure idempotently marks cell as drawn.
func (c *Graph) Ensure(cell grid.Cell) {
	if !c.g.InBounds(cell) {
		return
	}
	c.drawn[c.g.Index(cell)] = true
}

func (c *Graph) Drawn(cell grid.Cell) bool {
	return c.g.InBounds(cell) && c.drawn[c.g.Index(cell)]
}

func (c *Graph) DrawnCount() int {
	count := 0
	for _, d := range c.drawn {
		if d {
			count++
		}
	}
	return count
}

// DrawnCells lists the drawn cells in row-major order.
func (c *Graph) DrawnCells() []grid.Cell {
	var out []grid.Cell
	for i, d := range c.drawn {
		if d {
			out = append(out, c.g.CellAt(i))
		}
	}
	return out
}

func (c *Graph) Degree(cell grid.Cell) int {
	if !c.g.InBounds(cell) {
		return 0
	}
	deg := 0
	for _, l := range c.links[c.g.Index(cell)] {
		if l != noLink {
			deg++
		}
	}
	return deg
}

// NeighborsOf returns the cells currently linked to cell, at most two.
func (c *Graph) NeighborsOf(cell grid.Cell) []grid.Cell {
	if !c.g.InBounds(cell) {
		return nil
	}
	out := make([]grid.Cell, 0, 2)
	for _, l := range c.links[c.g.Index(cell)] {
		if l != noLink {
			out = append(out, c.g.CellAt(l))
		}
	}
	return out
}

func (c *Graph) Connected(a, b grid.Cell) bool {
	if !c.g.InBounds(a) || !c.g.InBounds(b) {
		return false
	}
	bi := c.g.Index(b)
	for _, l := range c.links[c.g.Index(a)] {
		if l == bi {
			return true
		}
	}
	return false
}

// Pairs enumerates every link once as an ordered index pair, for rendering
// and snapshots.
func (c *Graph) Pairs() [][2]grid.Cell {
	var out [][2]grid.Cell
	for i, ls := range c.links {
		for _, l := range ls {
			if l > i {
				out = append(out, [2]grid.Cell{c.g.CellAt(i), c.g.CellAt(l)})
			}
		}
	}
	return out
}

// ForceConnect links a and b, marking both drawn. It refuses non-adjacent
// pairs (returns false, no mutation) and no-ops successfully when the link
// already exists. If an endpoint already holds two links, one is broken
// first: the victim is the existing link that is not directly opposite the
// new edge, so a straight-through path survives a forced corner.
func (c *Graph) ForceConnect(a, b grid.Cell) bool {
	if !c.g.IsAdjacent(a, b) {
		c.logger.Debugf("[CONN] refusing link %v-%v: not adjacent", a, b)
		return false
	}
	if c.Connected(a, b) {
		return true
	}
	c.Ensure(a)
	c.Ensure(b)
	c.makeRoom(a, b)
	c.makeRoom(b, a)
	c.addLink(a, b)
	c.addLink(b, a)
	c.logger.Debugf("[CONN] linked %v-%v", a, b)
	return true
}

// makeRoom breaks one existing link of endpoint when it is saturated,
// preferring to keep the link opposite the incoming edge.
func (c *Graph) makeRoom(endpoint, incoming grid.Cell) {
	if c.Degree(endpoint) < 2 {
		return
	}
	keepDir := grid.DirBetween(endpoint, incoming).Opposite()
	ls := c.links[c.g.Index(endpoint)]
	victim := c.g.CellAt(ls[0])
	if grid.DirBetween(endpoint, victim) == keepDir {
		victim = c.g.CellAt(ls[1])
	}
	c.logger.Debugf("[CONN] breaking %v-%v to make room for %v-%v", endpoint, victim, endpoint, incoming)
	c.RemoveConnection(endpoint, victim)
}

func (c *Graph) addLink(from, to grid.Cell) {
	ls := &c.links[c.g.Index(from)]
	for i := range ls {
		if ls[i] == noLink {
			ls[i] = c.g.Index(to)
			return
		}
	}
}

// RemoveConnection severs the link between a and b on both sides. No-op
// when they are not connected.
func (c *Graph) RemoveConnection(a, b grid.Cell) {
	if !c.g.InBounds(a) || !c.g.InBounds(b) {
		return
	}
	c.dropLink(a, b)
	c.dropLink(b, a)
}

func (c *Graph) dropLink(from, to grid.Cell) {
	ls := &c.links[c.g.Index(from)]
	ti := c.g.Index(to)
	for i := range ls {
		if ls[i] == ti {
			ls[i] = noLink
		}
	}
}

// ClearCell removes cell from the drawn set and severs all its links.
func (c *Graph) ClearCell(cell grid.Cell) {
	if !c.g.InBounds(cell) {
		return
	}
	for _, n := range c.NeighborsOf(cell) {
		c.RemoveConnection(cell, n)
	}
	c.drawn[c.g.Index(cell)] = false
	c.logger.Debugf("[CONN] cleared %v", cell)
}

// PruneOrphans repeatedly removes drawn cells with zero links until none
// remain. Removal cannot expose new orphans (dropping a drawn mark severs
// nothing), but the loop guards the cascade regardless.
func (c *Graph) PruneOrphans() {
	for {
		removed := false
		for i, d := range c.drawn {
			if d && c.links[i][0] == noLink && c.links[i][1] == noLink {
				c.drawn[i] = false
				removed = true
				c.logger.Debugf("[CONN] pruned orphan %v", c.g.CellAt(i))
			}
		}
		if !removed {
			return
		}
	}
}

// TurnMap derives the bend status of every drawn cell that currently holds
// exactly two links. Cells with any other degree are omitted.
func (c *Graph) TurnMap() loop.TurnMap {
	tm := make(loop.TurnMap)
	for i, d := range c.drawn {
		if !d {
			continue
		}
		ls := c.links[i]
		if ls[0] == noLink || ls[1] == noLink {
			continue
		}
		cell := c.g.CellAt(i)
		tm[cell] = loop.TurnAt(c.g.CellAt(ls[0]), cell, c.g.CellAt(ls[1]))
	}
	return tm
}
