package sortedstorage

import (
	"context"

	"github.com/Mnour3593/C-Maze/service/i"
	"github.com/go-redsync/redsync/v4"
	"github.com/go-redsync/redsync/v4/redis/goredis/v9"
	"github.com/redis/go-redis/v9"
)

const (
	boardKeyPrefix = "leaderboard:"
	defaultKeep    = 100
)

// RedisLeaderboard ranks board members in Redis sorted sets, highest
// score first, keeping only the best entries of each board.
type RedisLeaderboard struct {
	client *redis.Client
	locker *redsync.Redsync
	keep   int64
}

// NewRedisLeaderboard creates a leaderboard that keeps at most keep entries
// per board. A non-positive keep falls back to 100.
func NewRedisLeaderboard(client *redis.Client, keep int64) i.Leaderboard {
	if keep <= 0 {
		keep = defaultKeep
	}
	pool := goredis.NewPool(client)
	return &RedisLeaderboard{
		client: client,
		locker: redsync.New(pool),
		keep:   keep,
	}
}

// Record adds member to board and drops entries ranked below the kept range.
func (rl *RedisLeaderboard) Record(ctx context.Context, board string, score float64, member string) error {
	key := boardKeyPrefix + board
	mutex := rl.locker.NewMutex(key + ":trim_lock")
	if err := mutex.LockContext(ctx); err != nil {
		return err
	}
	defer func() {
		_, _ = mutex.UnlockContext(ctx)
	}()

	if err := rl.client.ZAdd(ctx, key, redis.Z{Score: score, Member: member}).Err(); err != nil {
		return err
	}

	// Ranks run lowest score first; everything below the top keep goes.
	return rl.client.ZRemRangeByRank(ctx, key, 0, -(rl.keep + 1)).Err()
}

// Top returns up to amount members of board, best first.
func (rl *RedisLeaderboard) Top(ctx context.Context, board string, amount int64) ([]string, error) {
	if amount <= 0 {
		return []string{}, nil
	}
	return rl.client.ZRevRange(ctx, boardKeyPrefix+board, 0, amount-1).Result()
}

// Count returns the number of members on board.
func (rl *RedisLeaderboard) Count(ctx context.Context, board string) int64 {
	return rl.client.ZCard(ctx, boardKeyPrefix+board).Val()
}
