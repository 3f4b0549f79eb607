package service

import (
	"testing"
	"time"

	dmn "github.com/Mnour3593/C-Maze/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testPassword = "Vx9!maze-Quartz-27kelp"

type memoryUserRepo struct {
	users map[uuid.UUID]*dmn.User
}

func (m *memoryUserRepo) Save(u *dmn.User) error {
	m.users[u.ID] = u
	return nil
}

func (m *memoryUserRepo) ByID(id uuid.UUID) (*dmn.User, error) {
	u, ok := m.users[id]
	if !ok {
		return nil, errNotFound
	}
	return u, nil
}

func (m *memoryUserRepo) ByUsername(username string) (*dmn.User, error) {
	for _, u := range m.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, errNotFound
}

type stubTokenizer struct {
	claims map[string]interface{}
	ttl    time.Duration
}

func (s *stubTokenizer) Generate(claims map[string]interface{}, ttl time.Duration) (string, error) {
	s.claims, s.ttl = claims, ttl
	return "signed-token", nil
}

func (s *stubTokenizer) Decode(string) (map[string]interface{}, error) {
	return s.claims, nil
}

func TestAuth(t *testing.T) {
	repo := &memoryUserRepo{users: map[uuid.UUID]*dmn.User{}}
	tokens := &stubTokenizer{}
	auth := NewAuthService(repo, tokens)

	require.NoError(t, auth.Register("maze_runner", testPassword))
	assert.ErrorIs(t, auth.Register("x", testPassword), dmn.ErrNameLength)

	t.Run("Sign in issues a token", func(t *testing.T) {
		user, token, err := auth.SignIn("maze_runner", testPassword)
		require.NoError(t, err)
		assert.Equal(t, "signed-token", token)
		assert.Equal(t, "maze_runner", user.Username)
		assert.Equal(t, user.ID, tokens.claims["userID"])
		assert.Equal(t, tokenTTL, tokens.ttl)
	})

	t.Run("Wrong password", func(t *testing.T) {
		_, _, err := auth.SignIn("maze_runner", "nope")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("Unknown user", func(t *testing.T) {
		_, _, err := auth.SignIn("ghost", testPassword)
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}
