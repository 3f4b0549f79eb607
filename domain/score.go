package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/Mnour3593/C-Maze/maze"
	"github.com/google/uuid"
)

// Game modes a score can be recorded under.
const (
	ModeSingle = "single"
	ModeDual   = "dual"
)

var (
	ErrNegativeScore = errors.New("score, moves and duration must not be negative")
	ErrInvalidMode   = errors.New("game mode must be single or dual")
)

// Score is one finished run through a generated maze.
type Score struct {
	ID          uuid.UUID      `bson:"_id"`
	UserID      uuid.UUID      `bson:"userId"`
	Username    string         `bson:"username"`
	Points      int            `bson:"points"`
	Moves       int            `bson:"moves"`
	Duration    time.Duration  `bson:"duration"`
	Seed        uint32         `bson:"seed"`
	Size        int            `bson:"size"`
	Algorithm   maze.Algorithm `bson:"algorithm"`
	Mode        string         `bson:"mode"`
	CompletedAt time.Time      `bson:"completedAt"`
}

// ScoreConfig holds the fields a player reports when finishing a maze.
type ScoreConfig struct {
	UserID    uuid.UUID
	Username  string
	Points    int
	Moves     int
	Duration  time.Duration
	Seed      uint32
	Size      int
	Algorithm maze.Algorithm
	Mode      string
}

// NewScore validates the reported run and stamps it with an ID and time.
func NewScore(c ScoreConfig) (*Score, error) {
	if c.Points < 0 || c.Moves < 0 || c.Duration < 0 {
		return nil, ErrNegativeScore
	}
	if err := maze.ValidateSize(c.Size); err != nil {
		return nil, err
	}
	if !c.Algorithm.Valid() {
		return nil, fmt.Errorf("%w: %d", maze.ErrUnknownAlgorithm, int(c.Algorithm))
	}

	mode := c.Mode
	if mode == "" {
		mode = ModeSingle
	}
	if mode != ModeSingle && mode != ModeDual {
		return nil, ErrInvalidMode
	}

	return &Score{
		ID:          uuid.New(),
		UserID:      c.UserID,
		Username:    c.Username,
		Points:      c.Points,
		Moves:       c.Moves,
		Duration:    c.Duration,
		Seed:        c.Seed,
		Size:        c.Size,
		Algorithm:   c.Algorithm,
		Mode:        mode,
		CompletedAt: time.Now().UTC(),
	}, nil
}

// Board names the leaderboard a score competes on.
func (s *Score) Board() string {
	return BoardKey(s.Size, s.Algorithm)
}

// BoardKey names the leaderboard for a size and algorithm.
func BoardKey(size int, a maze.Algorithm) string {
	return fmt.Sprintf("%s:%d", a, size)
}
