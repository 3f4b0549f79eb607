package maze

// CellState is the content of a single lattice position in a maze grid.
type CellState byte

const (
	Wall  CellState = iota // Wall blocks movement. Every position starts as a wall.
	Path                   // Path is an open, walkable position.
	Exit                   // Exit marks the goal position.
	Bonus                  // Bonus is a walkable position holding a collectible dot.
)

// String returns the lowercase name of the state.
func (s CellState) String() string {
	switch s {
	case Wall:
		return "wall"
	case Path:
		return "path"
	case Exit:
		return "exit"
	case Bonus:
		return "bonus"
	default:
		return "unknown"
	}
}

// Open reports whether the state can be walked through.
func (s CellState) Open() bool {
	return s != Wall
}

// Position represents the coordinate of a lattice position in the grid.
type Position struct {
	Row int // Row index of the position
	Col int // Column index of the position
}

// add returns the position shifted by delta.
func (p Position) add(delta Position) Position {
	return Position{Row: p.Row + delta.Row, Col: p.Col + delta.Col}
}

// between returns the wall position separating two logical cells two steps apart.
func between(a, b Position) Position {
	return Position{Row: (a.Row + b.Row) / 2, Col: (a.Col + b.Col) / 2}
}

// Entrance is the fixed starting cell of every maze.
var Entrance = Position{Row: 1, Col: 1}

// steps are the four lattice directions between logical cells, in the
// order up, left, down, right.
var steps = [4]Position{
	{Row: -2, Col: 0},
	{Row: 0, Col: -2},
	{Row: 2, Col: 0},
	{Row: 0, Col: 2},
}
