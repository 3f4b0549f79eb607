package domain

import (
	"errors"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/nbutton23/zxcvbn-go"
	"golang.org/x/crypto/bcrypt"
)

// Player names are shown on public leaderboards.
const (
	minNameLength     = 3
	maxNameLength     = 16
	minPasswordLength = 10
	minPasswordScore  = 3
)

var (
	namePattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_-]*$`)

	// Names a player could use to pose as the service on a leaderboard.
	reservedNames = map[string]struct{}{
		"admin":     {},
		"anonymous": {},
		"cmaze":     {},
		"operator":  {},
		"root":      {},
		"system":    {},
	}

	ErrNameLength        = errors.New("player name must be 3 to 16 characters")
	ErrNameStart         = errors.New("player name must start with a letter")
	ErrNameCharset       = errors.New("player name may only contain letters, digits, '_' and '-'")
	ErrNameReserved      = errors.New("player name is reserved")
	ErrPasswordLength    = errors.New("password must be at least 10 characters")
	ErrPasswordHasName   = errors.New("password must not contain the player name")
	ErrPasswordGuessable = errors.New("password is too easy to guess")
)

// User is a registered player who can submit scores.
type User struct {
	ID           uuid.UUID `bson:"_id"`
	Username     string    `bson:"username"`
	PasswordHash string    `bson:"passwordHash"`
}

// UserConfig holds parameters for creating a User from a plain password.
type UserConfig struct {
	ID            uuid.UUID
	Username      string
	PlainPassword string
}

// NewUser checks the player name and password and stores a bcrypt hash of
// the password.
func NewUser(config UserConfig) (*User, error) {
	if err := ValidatePlayerName(config.Username); err != nil {
		return nil, err
	}
	if err := validatePassword(config.PlainPassword, config.Username); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(config.PlainPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	return &User{
		ID:           config.ID,
		Username:     config.Username,
		PasswordHash: string(hash),
	}, nil
}

// VerifyPassword reports whether password matches the stored hash.
func (u *User) VerifyPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) == nil
}

// ValidatePlayerName checks name against the leaderboard naming rules.
// Reserved names are matched without regard to case.
func ValidatePlayerName(name string) error {
	if n := utf8.RuneCountInString(name); n < minNameLength || n > maxNameLength {
		return ErrNameLength
	}
	if !namePattern.MatchString(name) {
		first, _ := utf8.DecodeRuneInString(name)
		if !isASCIILetter(first) {
			return ErrNameStart
		}
		return ErrNameCharset
	}
	if _, ok := reservedNames[strings.ToLower(name)]; ok {
		return ErrNameReserved
	}
	return nil
}

func validatePassword(password, name string) error {
	if utf8.RuneCountInString(password) < minPasswordLength {
		return ErrPasswordLength
	}
	if strings.Contains(strings.ToLower(password), strings.ToLower(name)) {
		return ErrPasswordHasName
	}
	// zxcvbn also penalises close variants of the name.
	if zxcvbn.PasswordStrength(password, []string{name}).Score < minPasswordScore {
		return ErrPasswordGuessable
	}
	return nil
}

func isASCIILetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}
