package i

import "context"

// Leaderboard ranks members of a board by score, highest first.
type Leaderboard interface {
	Record(ctx context.Context, board string, score float64, member string) error
	Top(ctx context.Context, board string, amount int64) ([]string, error)
	Count(ctx context.Context, board string) int64
}
