package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/talento-hq/talento/internal/shared/biztime"
)

var (
	ErrTokenExpired = errors.New("token expired")
	ErrTokenInvalid = errors.New("token invalid")
)

const issuer = "talento"

// Claims carries only the account SID in the subject. Role and plan are
// read from storage on every request.
type Claims struct {
	jwt.RegisteredClaims
}

// AccountSID returns the subject.
func (c *Claims) AccountSID() string {
	return c.Subject
}

type JWTService struct {
	secret  []byte
	expDays int
}

func NewJWTService(secret string, expDays int) *JWTService {
	if expDays <= 0 {
		expDays = 30
	}
	return &JWTService{
		secret:  []byte(secret),
		expDays: expDays,
	}
}

// Generate issues an HS256 token for accountSID and returns its expiry.
func (s *JWTService) Generate(accountSID string) (string, time.Time, error) {
	now := biztime.NowUTC()
	exp := now.Add(time.Duration(s.expDays) * 24 * time.Hour)

	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   accountSID,
			Issuer:    issuer,
			ExpiresAt: jwt.NewNumericDate(exp),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, exp, nil
}

// Verify parses tokenString. Expired tokens yield ErrTokenExpired; every
// other failure, including a missing subject, yields ErrTokenInvalid.
func (s *JWTService) Verify(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	},
		jwt.WithIssuer(issuer),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(biztime.NowUTC),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, fmt.Errorf("%w: %v", ErrTokenInvalid, err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.Subject == "" {
		return nil, ErrTokenInvalid
	}
	return claims, nil
}

// ExpDays returns the token lifetime in days.
func (s *JWTService) ExpDays() int {
	return s.expDays
}
