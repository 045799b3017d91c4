package scope

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrMissingKey   = errors.New("jwt secret is required")
)

// Manager issues and verifies access tokens.
type Manager interface {
	CreateToken(p Payload) (string, error)
	Verify(token string) (Payload, error)
}

type implManager struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// New returns an HS256 Manager. ttl <= 0 defaults to 7 days.
func New(secret string, ttl time.Duration) (Manager, error) {
	if secret == "" {
		return nil, ErrMissingKey
	}
	if ttl <= 0 {
		ttl = 7 * 24 * time.Hour
	}
	return &implManager{secret: []byte(secret), ttl: ttl, now: time.Now}, nil
}

func (m *implManager) CreateToken(p Payload) (string, error) {
	now := m.now()
	p.RegisteredClaims = jwt.RegisteredClaims{
		Subject:   p.UserID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, p).SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("scope.CreateToken: %w", err)
	}
	return token, nil
}

func (m *implManager) Verify(token string) (Payload, error) {
	var p Payload
	parsed, err := jwt.ParseWithClaims(token, &p, func(t *jwt.Token) (any, error) {
		return m.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil || !parsed.Valid || p.UserID == "" {
		return Payload{}, ErrInvalidToken
	}
	return p, nil
}
