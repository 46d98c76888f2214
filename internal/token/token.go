// Package token issues and verifies the signed identity tokens used for
// bearer authentication.
package token

import (
	"fmt"
	"strconv"
	"time"

	"pulse/internal/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Service signs and verifies HS256 tokens with a process-wide secret.
// Verification is a pure function of the secret and the wall clock, so a
// single Service is safe under unlimited concurrency.
type Service struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewService constructs a token service. The secret must be non-empty; callers
// are expected to have validated configuration before reaching this point.
func NewService(secret string, ttl time.Duration) (*Service, error) {
	if secret == "" {
		return nil, fmt.Errorf("token signing secret is empty")
	}
	if ttl <= 0 {
		return nil, fmt.Errorf("token TTL must be positive, got %s", ttl)
	}
	return &Service{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}, nil
}

// Issue creates a signed token carrying the user ID in the "sub" claim
// (stringified, per RFC 7519) with expiry at issue time plus the TTL.
func (s *Service) Issue(userID uint) (string, error) {
	now := s.now()
	claims := jwt.MapClaims{
		"sub": strconv.FormatUint(uint64(userID), 10),
		"iss": "pulse-api",
		"exp": now.Add(s.ttl).Unix(),
		"iat": now.Unix(),
		"nbf": now.Unix(),
		"jti": fmt.Sprintf("%d-%s", now.Unix(), uuid.New().String()[:8]),
	}

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tok.SignedString(s.secret)
}

// Verify checks signature and expiry and returns the embedded user ID.
// Every failure mode (malformed, forged, expired, wrong algorithm) collapses
// into the same UNAUTHORIZED error so callers cannot distinguish them.
func (s *Service) Verify(tokenString string) (uint, error) {
	tok, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil || !tok.Valid {
		return 0, invalidToken(err)
	}

	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return 0, invalidToken(nil)
	}

	sub, err := claims.GetSubject()
	if err != nil || sub == "" {
		return 0, invalidToken(err)
	}

	userID, err := strconv.ParseUint(sub, 10, 32)
	if err != nil {
		return 0, invalidToken(err)
	}

	return uint(userID), nil
}

// invalidToken wraps the parse failure for internal logging while presenting
// a uniform message to callers.
func invalidToken(err error) error {
	appErr := models.NewUnauthorizedError("Invalid or expired token")
	appErr.Err = err
	return appErr
}
