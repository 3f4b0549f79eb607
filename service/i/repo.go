package i

import (
	dmn "github.com/Mnour3593/C-Maze/domain"
	"github.com/google/uuid"
)

// UserRepo defines the interface for user persistence operations.
type UserRepo interface {
	// Save inserts or updates a user in the repository.
	// If the user already exists, it updates the record. Otherwise, it creates a new one.
	Save(user *dmn.User) error

	// ByID retrieves a user by their unique ID.
	// Returns an error if the user is not found or in case of an unexpected error.
	ByID(id uuid.UUID) (*dmn.User, error)

	// ByUsername retrieves a user by their username.
	// Returns an error if the user is not found or in case of an unexpected error.
	ByUsername(username string) (*dmn.User, error)
}

// ScoreRepo defines the interface for score persistence operations.
type ScoreRepo interface {
	// Save inserts a finished run.
	Save(score *dmn.Score) error

	// ByID retrieves a score by its ID.
	ByID(id uuid.UUID) (*dmn.Score, error)

	// ByUser lists a player's scores, newest first.
	ByUser(userID uuid.UUID, limit int64) ([]*dmn.Score, error)
}
