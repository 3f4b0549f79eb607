package maze

import (
	"errors"
	"fmt"
	"strings"
)

const (
	MinSize     = 5  // Smallest supported grid dimension.
	MaxSize     = 51 // Largest supported grid dimension.
	DefaultSize = 21 // Dimension used when none is requested.
)

var (
	ErrInvalidSize = errors.New("maze size must be an odd number between 5 and 51")
	ErrInvalidGrid = errors.New("invalid grid cells")
)

// Grid is a square lattice of cell states with an odd dimension.
// Logical cells sit at odd coordinates; positions between two logical
// cells record whether the pair is connected.
type Grid struct {
	size  int
	cells []CellState
}

// ValidateSize checks that n is an odd dimension within [MinSize, MaxSize].
func ValidateSize(n int) error {
	if n < MinSize || n > MaxSize || n%2 == 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidSize, n)
	}
	return nil
}

// NewGrid allocates an n×n grid with every position set to Wall. The only
// failure is an invalid size; running out of memory is fatal to the process.
func NewGrid(n int) (*Grid, error) {
	if err := ValidateSize(n); err != nil {
		return nil, err
	}

	// Wall is the zero value, so a fresh slice is already all walls.
	return &Grid{size: n, cells: make([]CellState, n*n)}, nil
}

// LoadGrid rebuilds a grid from row-major cell states.
func LoadGrid(n int, cells []CellState) (*Grid, error) {
	g, err := NewGrid(n)
	if err != nil {
		return nil, err
	}
	if len(cells) != n*n {
		return nil, fmt.Errorf("%w: expected %d cells, got %d", ErrInvalidGrid, n*n, len(cells))
	}
	for i, c := range cells {
		if c > Bonus {
			return nil, fmt.Errorf("%w: unknown state %d at index %d", ErrInvalidGrid, c, i)
		}
	}
	copy(g.cells, cells)
	return g, nil
}

// Size returns the grid dimension.
func (g *Grid) Size() int {
	return g.size
}

// At returns the state at p. Callers must pass an in-bound position.
func (g *Grid) At(p Position) CellState {
	return g.cells[g.index(p)]
}

// Set replaces the state at p. Callers must pass an in-bound position.
func (g *Grid) Set(p Position, s CellState) {
	g.cells[g.index(p)] = s
}

// InBound reports whether p lies within the grid.
func (g *Grid) InBound(p Position) bool {
	return p.Row >= 0 && p.Row < g.size && p.Col >= 0 && p.Col < g.size
}

// Cells returns a row-major copy of the grid states.
func (g *Grid) Cells() []CellState {
	return append([]CellState(nil), g.cells...)
}

// LogicalCells returns the number of logical cells in the grid.
func (g *Grid) LogicalCells() int {
	side := g.side()
	return side * side
}

// ConnectingWalls counts the wall positions that have been carved open,
// i.e. the number of connections between adjacent logical cells.
func (g *Grid) ConnectingWalls() int {
	count := 0
	for r := 1; r < g.size-1; r++ {
		for c := 1; c < g.size-1; c++ {
			if (r+c)%2 == 1 && g.cells[r*g.size+c].Open() {
				count++
			}
		}
	}
	return count
}

func (g *Grid) index(p Position) int {
	return p.Row*g.size + p.Col
}

// side is the number of logical cells along one edge.
func (g *Grid) side() int {
	return (g.size - 1) / 2
}

// isLogical reports whether p is a logical cell of the lattice.
func (g *Grid) isLogical(p Position) bool {
	return p.Row > 0 && p.Row < g.size-1 && p.Col > 0 && p.Col < g.size-1 &&
		p.Row%2 == 1 && p.Col%2 == 1
}

// lattice returns every logical cell in row-major order.
func (g *Grid) lattice() []Position {
	cells := make([]Position, 0, g.LogicalCells())
	for r := 1; r < g.size-1; r += 2 {
		for c := 1; c < g.size-1; c += 2 {
			cells = append(cells, Position{Row: r, Col: c})
		}
	}
	return cells
}

// neighbors returns the logical cells two steps away from p in up, left,
// down, right order.
func (g *Grid) neighbors(p Position) []Position {
	result := make([]Position, 0, len(steps))
	for _, d := range steps {
		if n := p.add(d); g.isLogical(n) {
			result = append(result, n)
		}
	}
	return result
}

// String provides a textual representation of the grid.
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow(g.size * (g.size + 1))
	for r := 0; r < g.size; r++ {
		for c := 0; c < g.size; c++ {
			p := Position{Row: r, Col: c}
			if p == Entrance && g.At(p) == Path {
				b.WriteByte('S')
				continue
			}
			b.WriteByte(glyph(g.At(p)))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// Rows renders the grid one string per row, without the trailing newline.
func (g *Grid) Rows() []string {
	return strings.Split(strings.TrimSuffix(g.String(), "\n"), "\n")
}

func glyph(s CellState) byte {
	switch s {
	case Path:
		return ' '
	case Exit:
		return 'E'
	case Bonus:
		return '.'
	default:
		return '#'
	}
}
