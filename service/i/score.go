package i

import (
	"context"

	dmn "github.com/Mnour3593/C-Maze/domain"
	"github.com/Mnour3593/C-Maze/maze"
	"github.com/google/uuid"
)

// ScoreKeeper records finished runs and ranks them.
type ScoreKeeper interface {
	// Submit validates and stores a run, then ranks it on its board.
	Submit(ctx context.Context, c dmn.ScoreConfig) (*dmn.Score, error)

	// Top returns the best runs for a size and algorithm, best first,
	// together with the number of runs ranked on that board.
	Top(ctx context.Context, size int, a maze.Algorithm, limit int64) ([]*dmn.Score, int64, error)

	// History lists a player's runs, newest first.
	History(ctx context.Context, userID uuid.UUID, limit int64) ([]*dmn.Score, error)
}
