package service

import (
	"errors"
	"time"

	dmn "github.com/Mnour3593/C-Maze/domain"
	"github.com/Mnour3593/C-Maze/service/i"
	"github.com/google/uuid"
)

const tokenTTL = 24 * time.Hour

var ErrInvalidCredentials = errors.New("invalid username or password")

// Auth registers players and issues their access tokens.
type Auth struct {
	userRepo  i.UserRepo
	tokenizer i.Tokenizer
}

// NewAuthService creates an Auth service.
func NewAuthService(userRepo i.UserRepo, tokenizer i.Tokenizer) *Auth {
	return &Auth{userRepo: userRepo, tokenizer: tokenizer}
}

// Register implements i.Authenticator.
func (a *Auth) Register(username, password string) error {
	userConfig := dmn.UserConfig{
		ID:            uuid.New(),
		Username:      username,
		PlainPassword: password,
	}

	user, err := dmn.NewUser(userConfig)
	if err != nil {
		return err
	}

	return a.userRepo.Save(user)
}

// SignIn implements i.Authenticator.
func (a *Auth) SignIn(username, password string) (*dmn.User, string, error) {
	user, err := a.userRepo.ByUsername(username)
	if err != nil {
		return nil, "", ErrInvalidCredentials
	}

	if !user.VerifyPassword(password) {
		return nil, "", ErrInvalidCredentials
	}

	token, err := a.tokenizer.Generate(map[string]interface{}{
		"userID":   user.ID,
		"username": user.Username,
	}, tokenTTL)
	if err != nil {
		return nil, "", err
	}

	return user, token, nil
}
