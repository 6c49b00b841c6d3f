package grid

import "math"

// Cell is a grid coordinate. Identity is value-based: two cells with the
// same row and column are the same cell.
type Cell struct {
	Row, Col int
}

// Dir is one of the four orthogonal directions between adjacent cells.
type Dir int

const (
	DirNone Dir = iota
	DirUp
	DirRight
	DirDown
	DirLeft
)

func (d Dir) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirRight:
		return "right"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	default:
		return "none"
	}
}

// Opposite returns the reverse direction.
func (d Dir) Opposite() Dir {
	switch d {
	case DirUp:
		return DirDown
	case DirRight:
		return DirLeft
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	default:
		return DirNone
	}
}

// DirBetween returns the direction of travel from a to b. DirNone if the
// cells are not orthogonally adjacent.
func DirBetween(a, b Cell) Dir {
	switch {
	case b.Row == a.Row-1 && b.Col == a.Col:
		return DirUp
	case b.Row == a.Row && b.Col == a.Col+1:
		return DirRight
	case b.Row == a.Row+1 && b.Col == a.Col:
		return DirDown
	case b.Row == a.Row && b.Col == a.Col-1:
		return DirLeft
	default:
		return DirNone
	}
}

// Grid is an N×N board of cells. It is pure geometry and carries no state.
type Grid struct {
	Size int
}

func New(size int) Grid { return Grid{Size: size} }

func (g Grid) CellCount() int { return g.Size * g.Size }

func (g Grid) InBounds(c Cell) bool {
	return c.Row >= 0 && c.Row < g.Size && c.Col >= 0 && c.Col < g.Size
}

// Index flattens a cell to its row-major index. Edges and neighbor arenas
// are keyed by these indices rather than by pointers.
func (g Grid) Index(c Cell) int { return c.Row*g.Size + c.Col }

// CellAt is the inverse of Index.
func (g Grid) CellAt(idx int) Cell { return Cell{Row: idx / g.Size, Col: idx % g.Size} }

// Cells enumerates every cell in row-major order.
func (g Grid) Cells() []Cell {
	cells := make([]Cell, 0, g.CellCount())
	for r := 0; r < g.Size; r++ {
		for c := 0; c < g.Size; c++ {
			cells = append(cells, Cell{r, c})
		}
	}
	return cells
}

// IsAdjacent reports whether a and b share an edge (Manhattan distance 1).
func (g Grid) IsAdjacent(a, b Cell) bool {
	if !g.InBounds(a) || !g.InBounds(b) {
		return false
	}
	return abs(a.Row-b.Row)+abs(a.Col-b.Col) == 1
}

// Neighbors returns the up-to-4 orthogonal neighbors of c, clipped to bounds.
func (g Grid) Neighbors(c Cell) []Cell {
	out := make([]Cell, 0, 4)
	for _, n := range [4]Cell{
		{c.Row - 1, c.Col},
		{c.Row, c.Col + 1},
		{c.Row + 1, c.Col},
		{c.Row, c.Col - 1},
	} {
		if g.InBounds(n) {
			out = append(out, n)
		}
	}
	return out
}

// Neighborhood returns the up-to-9 cells within ±1 row/column of c,
// including c itself, clipped to bounds.
func (g Grid) Neighborhood(c Cell) []Cell {
	out := make([]Cell, 0, 9)
	for r := c.Row - 1; r <= c.Row+1; r++ {
		for col := c.Col - 1; col <= c.Col+1; col++ {
			n := Cell{r, col}
			if g.InBounds(n) {
				out = append(out, n)
			}
		}
	}
	return out
}

// ShortestPath returns the cells of an unweighted 4-directional BFS path
// from a to b, inclusive of both endpoints. Returns nil if either endpoint
// is out of bounds. a == b yields a single-cell path.
func (g Grid) ShortestPath(a, b Cell) []Cell {
	if !g.InBounds(a) || !g.InBounds(b) {
		return nil
	}
	if a == b {
		return []Cell{a}
	}
	prev := make([]int, g.CellCount())
	for i := range prev {
		prev[i] = -1
	}
	prev[g.Index(a)] = g.Index(a)
	queue := []Cell{a}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if cur == b {
			break
		}
		for _, n := range g.Neighbors(cur) {
			if prev[g.Index(n)] == -1 {
				prev[g.Index(n)] = g.Index(cur)
				queue = append(queue, n)
			}
		}
	}
	if prev[g.Index(b)] == -1 {
		return nil
	}
	path := []Cell{b}
	for cur := b; cur != a; {
		cur = g.CellAt(prev[g.Index(cur)])
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// ResolveCell maps board-local pixel coordinates to a cell given the pixel
// size of one cell. The second return is false when the point falls outside
// the board; such gestures are ignored by callers.
func (g Grid) ResolveCell(x, y, cellSize float64) (Cell, bool) {
	if cellSize <= 0 || x < 0 || y < 0 {
		return Cell{}, false
	}
	c := Cell{Row: int(math.Floor(y / cellSize)), Col: int(math.Floor(x / cellSize))}
	if !g.InBounds(c) {
		return Cell{}, false
	}
	return c, true
}

func abs(i int) int {
	if i < 0 {
		return -i
	}
	return i
}
