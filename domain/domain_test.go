package domain

import (
	"testing"
	"time"

	"github.com/Mnour3593/C-Maze/maze"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	t.Run("Valid user", func(t *testing.T) {
		user, err := NewUser(UserConfig{
			ID:            uuid.New(),
			Username:      "maze_runner",
			PlainPassword: "Vx9!maze-Quartz-27kelp",
		})
		require.NoError(t, err)
		assert.True(t, user.VerifyPassword("Vx9!maze-Quartz-27kelp"))
		assert.False(t, user.VerifyPassword("wrong"))
	})

	t.Run("Player name rules", func(t *testing.T) {
		tests := []struct {
			name string
			want error
		}{
			{name: "ab", want: ErrNameLength},
			{name: "labyrinth_walker_9", want: ErrNameLength},
			{name: "9lives", want: ErrNameStart},
			{name: "_corner", want: ErrNameStart},
			{name: "dead end", want: ErrNameCharset},
			{name: "wall!", want: ErrNameCharset},
			{name: "Admin", want: ErrNameReserved},
			{name: "SYSTEM", want: ErrNameReserved},
			{name: "Wilson-fan_3", want: nil},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := NewUser(UserConfig{Username: tt.name, PlainPassword: "Vx9!maze-Quartz-27kelp"})
				if tt.want == nil {
					assert.NoError(t, err)
					return
				}
				assert.ErrorIs(t, err, tt.want)
			})
		}
	})

	t.Run("Password rules", func(t *testing.T) {
		tests := []struct {
			name     string
			password string
			want     error
		}{
			{name: "Too short", password: "Q7!kelp", want: ErrPasswordLength},
			{name: "Contains the player name", password: "xx-MAZE_RUNNER-2024!", want: ErrPasswordHasName},
			{name: "Guessable", password: "password123", want: ErrPasswordGuessable},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := NewUser(UserConfig{Username: "maze_runner", PlainPassword: tt.password})
				assert.ErrorIs(t, err, tt.want)
			})
		}
	})
}

func TestNewScore(t *testing.T) {
	valid := ScoreConfig{
		UserID:    uuid.New(),
		Username:  "maze_runner",
		Points:    40,
		Moves:     120,
		Duration:  90 * time.Second,
		Seed:      7,
		Size:      21,
		Algorithm: maze.Wilson,
	}

	t.Run("Valid score", func(t *testing.T) {
		score, err := NewScore(valid)
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, score.ID)
		assert.Equal(t, ModeSingle, score.Mode)
		assert.Equal(t, "wilson:21", score.Board())
		assert.False(t, score.CompletedAt.IsZero())
	})

	t.Run("Rejects bad input", func(t *testing.T) {
		negative := valid
		negative.Moves = -1
		_, err := NewScore(negative)
		assert.ErrorIs(t, err, ErrNegativeScore)

		size := valid
		size.Size = 22
		_, err = NewScore(size)
		assert.ErrorIs(t, err, maze.ErrInvalidSize)

		alg := valid
		alg.Algorithm = 0
		_, err = NewScore(alg)
		assert.ErrorIs(t, err, maze.ErrUnknownAlgorithm)

		mode := valid
		mode.Mode = "co-op"
		_, err = NewScore(mode)
		assert.ErrorIs(t, err, ErrInvalidMode)
	})
}
