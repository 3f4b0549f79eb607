package service

import (
	"context"
	"errors"
	"fmt"

	dmn "github.com/Mnour3593/C-Maze/domain"
	"github.com/Mnour3593/C-Maze/maze"
	"github.com/Mnour3593/C-Maze/service/i"
	"github.com/google/uuid"
)

const (
	defaultTopLimit = 10
	maxTopLimit     = 100
)

var ErrInvalidLimit = errors.New("limit must be between 1 and 100")

// ScoreService stores runs in a repository and ranks them on per-board
// leaderboards.
type ScoreService struct {
	repo   i.ScoreRepo
	board  i.Leaderboard
	logger i.Logger
}

// NewScoreService creates a ScoreService.
func NewScoreService(repo i.ScoreRepo, board i.Leaderboard, logger i.Logger) (*ScoreService, error) {
	if logger == nil {
		return nil, ErrNilLogger
	}
	return &ScoreService{repo: repo, board: board, logger: logger}, nil
}

// Submit implements i.ScoreKeeper.
func (s *ScoreService) Submit(ctx context.Context, c dmn.ScoreConfig) (*dmn.Score, error) {
	score, err := dmn.NewScore(c)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Save(score); err != nil {
		s.logger.Error(fmt.Sprintf("Failed to save score: %s", err))
		return nil, err
	}

	// The run is stored at this point; a ranking failure is only logged.
	if err := s.board.Record(ctx, score.Board(), float64(score.Points), score.ID.String()); err != nil {
		s.logger.Error(fmt.Sprintf("Failed to rank score %s on %s: %s", score.ID, score.Board(), err))
		return score, nil
	}

	s.logger.Info(fmt.Sprintf("Score recorded: user=%s board=%s points=%d", score.Username, score.Board(), score.Points))
	return score, nil
}

// Top implements i.ScoreKeeper. A zero limit uses the default of 10.
func (s *ScoreService) Top(ctx context.Context, size int, a maze.Algorithm, limit int64) ([]*dmn.Score, int64, error) {
	if err := maze.ValidateSize(size); err != nil {
		return nil, 0, err
	}
	if !a.Valid() {
		return nil, 0, fmt.Errorf("%w: %d", maze.ErrUnknownAlgorithm, int(a))
	}
	limit, err := normalizeLimit(limit)
	if err != nil {
		return nil, 0, err
	}

	board := dmn.BoardKey(size, a)
	members, err := s.board.Top(ctx, board, limit)
	if err != nil {
		return nil, 0, err
	}

	scores := make([]*dmn.Score, 0, len(members))
	for _, raw := range members {
		id, err := uuid.Parse(raw)
		if err != nil {
			s.logger.Warning(fmt.Sprintf("Non-UUID value on board %s: %s", board, raw))
			continue
		}
		score, err := s.repo.ByID(id)
		if err != nil {
			s.logger.Warning(fmt.Sprintf("Ranked score %s missing from repository: %s", id, err))
			continue
		}
		scores = append(scores, score)
	}
	return scores, s.board.Count(ctx, board), nil
}

// History implements i.ScoreKeeper.
func (s *ScoreService) History(_ context.Context, userID uuid.UUID, limit int64) ([]*dmn.Score, error) {
	limit, err := normalizeLimit(limit)
	if err != nil {
		return nil, err
	}
	return s.repo.ByUser(userID, limit)
}

func normalizeLimit(limit int64) (int64, error) {
	if limit == 0 {
		return defaultTopLimit, nil
	}
	if limit < 0 || limit > maxTopLimit {
		return 0, ErrInvalidLimit
	}
	return limit, nil
}
