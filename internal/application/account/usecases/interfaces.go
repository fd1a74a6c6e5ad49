package usecases

import (
	"time"

	"github.com/talento-hq/talento/internal/infrastructure/auth"
)

type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) error
}

type TokenIssuer interface {
	Generate(accountSID string) (string, time.Time, error)
}

type TokenVerifier interface {
	Verify(token string) (*auth.Claims, error)
}
