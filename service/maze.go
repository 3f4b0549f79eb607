package service

import (
	"context"
	"fmt"

	"github.com/Mnour3593/C-Maze/maze"
	"github.com/Mnour3593/C-Maze/service/i"
)

const mazeCacheKeyFmt = "maze:%s:%d:%d"

// MazeService serves generated mazes, caching those requested with an
// explicit seed since their output is fully determined by the request.
type MazeService struct {
	generator i.MazeGenerator
	cache     i.MazeCache
	encoder   i.MazeEncoder
	logger    i.Logger
}

// MazeServiceConfig holds the collaborators of a MazeService. Cache and
// Encoder are optional; without either, every request is generated.
type MazeServiceConfig struct {
	Generator i.MazeGenerator
	Cache     i.MazeCache
	Encoder   i.MazeEncoder
	Logger    i.Logger
}

// NewMazeService creates a MazeService.
func NewMazeService(c *MazeServiceConfig) (*MazeService, error) {
	if c.Generator == nil {
		return nil, ErrNilGenerator
	}
	if c.Logger == nil {
		return nil, ErrNilLogger
	}
	return &MazeService{
		generator: c.Generator,
		cache:     c.Cache,
		encoder:   c.Encoder,
		logger:    c.Logger,
	}, nil
}

// Generate implements i.MazeGenerator.
func (s *MazeService) Generate(ctx context.Context, size int, seed uint32, a maze.Algorithm) (*maze.Maze, error) {
	if seed == 0 || s.cache == nil || s.encoder == nil {
		return s.generator.Generate(ctx, size, seed, a)
	}

	key := fmt.Sprintf(mazeCacheKeyFmt, a, size, seed)
	var (
		generated *maze.Maze
		fillErr   error
	)
	payload, err := s.cache.Fetch(ctx, key, func() ([]byte, error) {
		generated, fillErr = s.generator.Generate(ctx, size, seed, a)
		if fillErr != nil {
			return nil, fillErr
		}
		return s.encoder.MarshalMaze(generated)
	})
	if fillErr != nil {
		return nil, fillErr
	}
	if generated != nil {
		if err != nil {
			s.logger.Warning(fmt.Sprintf("Generated maze %s was not cached: %s", key, err))
		}
		return generated, nil
	}
	if err != nil {
		s.logger.Warning(fmt.Sprintf("Maze cache unavailable, generating %s directly: %s", key, err))
		return s.generator.Generate(ctx, size, seed, a)
	}

	m, err := s.encoder.UnmarshalMaze(payload)
	if err == nil {
		s.logger.Info(fmt.Sprintf("Serving cached maze %s", key))
		return m, nil
	}

	s.logger.Warning(fmt.Sprintf("Replacing corrupt cached maze %s: %s", key, err))
	m, err = s.generator.Generate(ctx, size, seed, a)
	if err != nil {
		return nil, err
	}
	if b, err := s.encoder.MarshalMaze(m); err == nil {
		if err := s.cache.Store(ctx, key, b); err != nil {
			s.logger.Warning(fmt.Sprintf("Failed to replace cached maze %s: %s", key, err))
		}
	}
	return m, nil
}
