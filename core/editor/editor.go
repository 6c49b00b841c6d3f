package editor

import (
	"github.com/alexduckmanton/rope-game/core/conn"
	"github.com/alexduckmanton/rope-game/core/grid"
	game_log "github.com/alexduckmanton/rope-game/internal/log"
)

type state int

const (
	stateIdle state = iota
	stateDragging
)

// dragState is the per-gesture record: the cells visited in order, whether
// each step actually added a new link (pre-existing links must survive a
// backtrack), and enough context to reinterpret the gesture on release.
type dragState struct {
	path           []grid.Cell
	added          []bool // parallel to path; added[k] = link path[k-1]-path[k] was new
	anchorWasDrawn bool
	moved          bool
	mutated        bool
	closed         bool
}

// Editor turns pointer events into connection-graph mutations. It owns the
// gesture state explicitly, so it is driven the same way by a live pointer
// or by a test.
type Editor struct {
	g      grid.Grid
	conn   *conn.Graph
	logger *game_log.Logger
	state  state
	drag   dragState
	frozen bool
}

func New(g grid.Grid, c *conn.Graph, logger *game_log.Logger) *Editor {
	return &Editor{g: g, conn: c, logger: logger}
}

// Freeze stops the editor from accepting any further input. Called once
// the puzzle is won.
func (e *Editor) Freeze() { e.frozen = true }

// Unfreeze re-enables input, for a restart.
func (e *Editor) Unfreeze() { e.frozen = false }

func (e *Editor) Dragging() bool { return e.state == stateDragging }

// PointerDown starts a gesture on cell. ok is false for events outside the
// board, which are ignored. Returns true when the graph changed.
func (e *Editor) PointerDown(cell grid.Cell, ok bool) bool {
	if e.frozen || !ok || e.state == stateDragging {
		return false
	}
	e.state = stateDragging
	e.drag = dragState{
		path:           []grid.Cell{cell},
		added:          []bool{false},
		anchorWasDrawn: e.conn.Drawn(cell),
	}
	if !e.drag.anchorWasDrawn {
		e.conn.Ensure(cell)
		e.drag.mutated = true
	}
	e.logger.Debugf("[EDITOR] drag start at %v (was drawn: %t)", cell, e.drag.anchorWasDrawn)
	return e.drag.mutated
}

// PointerMove extends, backtracks, or closes the current gesture. Returns
// true when the graph changed.
func (e *Editor) PointerMove(cell grid.Cell, ok bool) bool {
	if e.frozen || e.state != stateDragging || e.drag.closed {
		return false
	}
	if !ok {
		// An off-board move mutates nothing, but it is still movement:
		// the release must not reinterpret the gesture as a tap.
		e.drag.moved = true
		return false
	}
	tail := e.drag.path[len(e.drag.path)-1]
	if cell == tail {
		return false
	}
	e.drag.moved = true

	if i := e.lastIndexInDrag(cell); i >= 0 {
		if i == 0 && len(e.drag.path) > 2 && (e.conn.Connected(tail, cell) || e.g.IsAdjacent(tail, cell)) {
			return e.closeLoop(tail, cell)
		}
		return e.backtrackTo(i)
	}
	return e.extendTo(tail, cell)
}

// PointerUp ends the gesture. A movement-free press on a cell that was
// already drawn before the gesture erases that cell instead of keeping it.
func (e *Editor) PointerUp(cell grid.Cell, ok bool) bool {
	if e.state != stateDragging {
		return false
	}
	changed := e.drag.mutated
	if !e.drag.moved && len(e.drag.path) == 1 && e.drag.anchorWasDrawn && !e.drag.closed {
		anchor := e.drag.path[0]
		e.logger.Debugf("[EDITOR] tap-to-erase at %v", anchor)
		e.conn.ClearCell(anchor)
		changed = true
	}
	e.conn.PruneOrphans()
	e.state = stateIdle
	e.drag = dragState{}
	return changed
}

// PointerCancel aborts the gesture without the tap-to-erase
// reinterpretation. Drawn state from the drag is kept, orphans pruned.
func (e *Editor) PointerCancel() bool {
	if e.state != stateDragging {
		return false
	}
	e.logger.Debugf("[EDITOR] drag cancelled")
	changed := e.drag.mutated
	e.conn.PruneOrphans()
	e.state = stateIdle
	e.drag = dragState{}
	return changed
}

// lastIndexInDrag finds the most recent occurrence of cell in the drag
// path, or -1. Searching from the tail keeps backtracking local when a
// skip-repair routed through an earlier cell.
func (e *Editor) lastIndexInDrag(cell grid.Cell) int {
	for i := len(e.drag.path) - 1; i >= 0; i-- {
		if e.drag.path[i] == cell {
			return i
		}
	}
	return -1
}

func (e *Editor) closeLoop(tail, start grid.Cell) bool {
	if !e.conn.ForceConnect(tail, start) {
		return false
	}
	e.drag.path = append(e.drag.path, start)
	e.drag.added = append(e.drag.added, true)
	e.drag.closed = true
	e.drag.mutated = true
	e.conn.PruneOrphans()
	e.logger.Infof("[EDITOR] loop closed at %v", start)
	return true
}

// backtrackTo removes, in reverse order, the links this drag added past
// index i and truncates the drag path to it. Links that existed before the
// drag are left in place.
func (e *Editor) backtrackTo(i int) bool {
	changed := false
	for k := len(e.drag.path) - 1; k > i; k-- {
		if e.drag.added[k] {
			e.conn.RemoveConnection(e.drag.path[k-1], e.drag.path[k])
			changed = true
		}
	}
	e.logger.Debugf("[EDITOR] backtracked from %v to %v", e.drag.path[len(e.drag.path)-1], e.drag.path[i])
	e.drag.path = e.drag.path[:i+1]
	e.drag.added = e.drag.added[:i+1]
	if changed {
		e.drag.mutated = true
		e.conn.PruneOrphans()
	}
	return changed
}

// extendTo walks from tail to cell, filling in skipped cells along the
// shortest grid path and forcing a link per step. Extension stops at the
// first step the graph refuses.
func (e *Editor) extendTo(tail, cell grid.Cell) bool {
	var steps []grid.Cell
	if e.g.IsAdjacent(tail, cell) {
		steps = []grid.Cell{cell}
	} else {
		sp := e.g.ShortestPath(tail, cell)
		if sp == nil {
			return false
		}
		steps = sp[1:]
		e.logger.Debugf("[EDITOR] gesture skipped cells, filling %v -> %v via %d steps", tail, cell, len(steps))
	}
	changed := false
	cur := tail
	for _, s := range steps {
		had := e.conn.Connected(cur, s)
		if !e.conn.ForceConnect(cur, s) {
			e.logger.Warnf("[EDITOR] refused link %v-%v mid-gesture", cur, s)
			break
		}
		e.drag.path = append(e.drag.path, s)
		e.drag.added = append(e.drag.added, !had)
		changed = true
		cur = s
	}
	if changed {
		e.drag.mutated = true
		e.conn.PruneOrphans()
	}
	return changed
}
