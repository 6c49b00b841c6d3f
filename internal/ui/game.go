package ui

import (
	"math/rand"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/alexduckmanton/rope-game/core/grid"
	"github.com/alexduckmanton/rope-game/core/loop"
	"github.com/alexduckmanton/rope-game/core/puzzle"
	game_log "github.com/alexduckmanton/rope-game/internal/log"
)

const (
	minBoardSize = 2
	maxBoardSize = 8
	boardMargin  = 40 // px around the board square
)

// Game is the ebiten shell around one puzzle. All puzzle state lives in
// core packages; this type only translates input and draws snapshots.
type Game struct {
	puzzle   *puzzle.Puzzle
	logger   *game_log.Logger
	rng      *rand.Rand
	size     int
	hintProb float64

	winW, winH     int
	cellSize       float64
	boardX, boardY float64

	showSolution bool
	leftPrev     bool
}

// New builds the shell and its first puzzle. Generation failure here is
// fatal: there is no prior puzzle to fall back to.
func New(size int, hintProb float64, rng *rand.Rand, logger *game_log.Logger) (*Game, error) {
	p, err := puzzle.New(size, hintProb, rng, logger)
	if err != nil {
		return nil, err
	}
	return &Game{
		puzzle:   p,
		logger:   logger,
		rng:      rng,
		size:     size,
		hintProb: hintProb,
		winW:     640,
		winH:     640,
	}, nil
}

func (g *Game) Puzzle() *puzzle.Puzzle { return g.puzzle }

func (g *Game) Layout(w, h int) (int, int) {
	g.winW, g.winH = w, h
	g.layoutBoard()
	return w, h
}

func (g *Game) layoutBoard() {
	span := g.winW
	if g.winH < span {
		span = g.winH
	}
	span -= 2 * boardMargin
	if span < g.size {
		span = g.size
	}
	g.cellSize = float64(span) / float64(g.size)
	g.boardX = (float64(g.winW) - g.cellSize*float64(g.size)) / 2
	g.boardY = (float64(g.winH) - g.cellSize*float64(g.size)) / 2
}

/* ─────────────── update ─────────────── */

func (g *Game) Update() error {
	g.layoutBoard()
	g.handleKeys()
	g.handlePointer()
	return nil
}

func (g *Game) handleKeys() {
	switch {
	case isKeyJustPressed(ebiten.KeyN):
		g.regenerate(g.size)
	case isKeyJustPressed(ebiten.KeyR):
		g.puzzle.Restart()
	case isKeyJustPressed(ebiten.KeyS):
		g.showSolution = !g.showSolution
		g.logger.Debugf("[GAME] solution overlay: %t", g.showSolution)
	case isKeyJustPressed(ebiten.KeyMinus):
		// Odd boards have no closed tour, so sizes step by two.
		if g.size-2 >= minBoardSize {
			g.regenerate(g.size - 2)
		}
	case isKeyJustPressed(ebiten.KeyEqual):
		if g.size+2 <= maxBoardSize {
			g.regenerate(g.size + 2)
		}
	}
}

// regenerate replaces the current puzzle. On generation failure the prior
// puzzle stays on screen.
func (g *Game) regenerate(size int) {
	p, err := puzzle.New(size, g.hintProb, g.rng, g.logger)
	if err != nil {
		g.logger.Warnf("[GAME] keeping current puzzle: %v", err)
		return
	}
	g.puzzle = p
	g.size = size
	g.layoutBoard()
}

func (g *Game) handlePointer() {
	left := isMouseButtonPressed(ebiten.MouseButtonLeft)
	x, y := cursorPosition()
	cell, ok := g.resolveCell(x, y)

	changed := false
	ed := g.puzzle.Editor
	switch {
	case left && !g.leftPrev:
		changed = ed.PointerDown(cell, ok)
	case left && g.leftPrev && ed.Dragging():
		if !ok {
			// Cursor left the board (or the window) mid-drag.
			changed = ed.PointerCancel()
		} else {
			changed = ed.PointerMove(cell, ok)
		}
	case !left && g.leftPrev:
		changed = ed.PointerUp(cell, ok)
	}
	g.leftPrev = left
	if changed {
		g.puzzle.NoteChange()
	}
}

// CancelGesture aborts any in-flight drag, e.g. on focus loss.
func (g *Game) CancelGesture() {
	if g.puzzle.Editor.PointerCancel() {
		g.puzzle.NoteChange()
	}
	g.leftPrev = false
}

func (g *Game) resolveCell(x, y int) (grid.Cell, bool) {
	return g.puzzle.Grid.ResolveCell(float64(x)-g.boardX, float64(y)-g.boardY, g.cellSize)
}

func (g *Game) cellCenter(c grid.Cell) (float32, float32) {
	return float32(g.boardX + (float64(c.Col)+0.5)*g.cellSize),
		float32(g.boardY + (float64(c.Row)+0.5)*g.cellSize)
}

/* ─────────────── draw ─────────────── */

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colBG)
	g.drawBoard(screen)
	if g.showSolution {
		g.drawSolution(screen)
	}
	g.drawHints(screen)
	g.drawRope(screen)
	if g.puzzle.Won() {
		g.drawWin(screen)
	}
	drawText(screen, "drag: draw   N: new   R: restart   S: solution   -/=: size", boardMargin, g.winH-10, colText)
}

func (g *Game) drawBoard(screen *ebiten.Image) {
	span := float32(g.cellSize * float64(g.size))
	bx, by := float32(g.boardX), float32(g.boardY)
	drawRect(screen, bx, by, span, span, colBoard)
	for i := 0; i <= g.size; i++ {
		off := float32(float64(i) * g.cellSize)
		drawLine(screen, bx+off, by, bx+off, by+span, 1, colGridLine)
		drawLine(screen, bx, by+off, bx+span, by+off, 1, colGridLine)
	}
}

func (g *Game) drawSolution(screen *ebiten.Image) {
	sol := g.puzzle.Solution
	for i, c := range sol {
		x1, y1 := g.cellCenter(c)
		x2, y2 := g.cellCenter(sol[(i+1)%len(sol)])
		drawLine(screen, x1, y1, x2, y2, 2, colSolution)
	}
}

func (g *Game) drawHints(screen *ebiten.Image) {
	playerTurns := g.puzzle.Conn.TurnMap()
	for _, h := range g.puzzle.Hints {
		cx, cy := g.cellCenter(h.Cell)
		c := colHint
		if loop.CountTurnsInArea(g.puzzle.Grid, h.Cell, playerTurns) == h.Turns {
			c = colHintDone
		}
		drawText(screen, strconv.Itoa(h.Turns), int(cx)-3, int(cy)+4, c)
	}
}

func (g *Game) drawRope(screen *ebiten.Image) {
	width := float32(g.cellSize / 6)
	if width < 2 {
		width = 2
	}
	for _, pair := range g.puzzle.Conn.Pairs() {
		x1, y1 := g.cellCenter(pair[0])
		x2, y2 := g.cellCenter(pair[1])
		drawLine(screen, x1, y1, x2, y2, width, colRope)
	}
	for _, c := range g.puzzle.Conn.DrawnCells() {
		cx, cy := g.cellCenter(c)
		drawCircle(screen, cx, cy, width/2+1, colRopeDot)
	}
}

func (g *Game) drawWin(screen *ebiten.Image) {
	span := float32(g.cellSize * float64(g.size))
	drawRect(screen, float32(g.boardX), float32(g.boardY), span, span, colWinTint)
	drawText(screen, "solved! press N for a new puzzle", int(g.boardX), int(g.boardY)-8, colHintDone)
}
