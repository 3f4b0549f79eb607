package i

import (
	"context"

	"github.com/Mnour3593/C-Maze/maze"
)

// MazeGenerator produces a validated maze or reports an abort.
type MazeGenerator interface {
	Generate(ctx context.Context, size int, seed uint32, a maze.Algorithm) (*maze.Maze, error)
}

// MazeEncoder serializes generated mazes.
type MazeEncoder interface {
	MarshalMaze(m *maze.Maze) ([]byte, error)
	UnmarshalMaze(b []byte) (*maze.Maze, error)
}

// MazeCache stores encoded mazes. Fetch returns the cached payload for key,
// calling fill and storing its result on a miss. A successful fill is
// returned even when storing it fails, together with the store error.
type MazeCache interface {
	Fetch(ctx context.Context, key string, fill func() ([]byte, error)) ([]byte, error)

	// Store overwrites the payload for key.
	Store(ctx context.Context, key string, b []byte) error
}
