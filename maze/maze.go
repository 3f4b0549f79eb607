/*
Package maze generates square grid mazes on an odd-dimension lattice.

Logical cells live at odd coordinates and the positions between them act
as walls that are either standing or carved open. Five interchangeable
strategies carve a grid: Prim's, Kruskal's, Wilson's, the recursive
backtracker and a backtracker variant that opens extra loops.

After carving, an exit is placed near the far corner, bonus dots are
scattered over the paths and Reachable can confirm the exit is reachable
from the fixed entrance at (1, 1).
*/
package maze

import (
	"fmt"
	"math/rand"
)

// Maze is a carved grid together with its entrance and exit.
type Maze struct {
	Grid      *Grid     // Carved grid.
	Entrance  Position  // Fixed starting cell.
	Exit      Position  // Goal position chosen after carving.
	Seed      uint32    // Seed that drove every random choice.
	Algorithm Algorithm // Strategy that carved the grid.
	Bonus     int       // Number of bonus dots placed.
	Attempts  int       // Generation attempts it took to produce this maze.
}

// Build allocates a fresh grid, carves it with the given algorithm, and
// places the exit and bonus dots. The result is fully determined by
// (size, seed, algorithm). Build does not check reachability.
func Build(size int, seed uint32, a Algorithm) (*Maze, error) {
	if !a.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownAlgorithm, int(a))
	}

	g, err := NewGrid(size)
	if err != nil {
		return nil, err
	}

	rng := rand.New(rand.NewSource(int64(seed)))
	if err := Carve(g, a, Entrance, rng); err != nil {
		return nil, err
	}
	g.Set(Entrance, Path)

	exit := PlaceExit(g)
	bonus := PlaceBonus(g, exit, rng)

	return &Maze{
		Grid:      g,
		Entrance:  Entrance,
		Exit:      exit,
		Seed:      seed,
		Algorithm: a,
		Bonus:     bonus,
		Attempts:  1,
	}, nil
}

// Solvable reports whether the exit can be reached from the entrance.
func (m *Maze) Solvable() bool {
	return Reachable(m.Grid, m.Entrance, m.Exit)
}

// String renders the maze grid.
func (m *Maze) String() string {
	return m.Grid.String()
}
