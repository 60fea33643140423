package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/jobdeck/jobdeck/internal/api/domain"
)

// Config holds session token configuration
type Config struct {
	Secret   string
	Issuer   string
	TokenTTL time.Duration
}

// Manager issues and verifies signed session tokens. Verification is
// read-only: an absent credential resolves to anonymous rather than an
// error, while a malformed or tampered token is reported as
// domain.ErrInvalidToken.
type Manager struct {
	secret []byte
	issuer string
	ttl    time.Duration
}

type sessionClaims struct {
	Name string `json:"name"`
	jwt.RegisteredClaims
}

// NewManager creates a new Manager instance
func NewManager(cfg *Config) *Manager {
	return &Manager{
		secret: []byte(cfg.Secret),
		issuer: cfg.Issuer,
		ttl:    cfg.TokenTTL,
	}
}

// Issue signs a session token carrying the identity's user id and
// display name.
func (m *Manager) Issue(identity *domain.Identity) (string, error) {
	now := time.Now()
	claims := sessionClaims{
		Name: identity.Name,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   identity.UserID,
			Issuer:    m.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}

	return signed, nil
}

// Resolve verifies a bearer credential. An empty credential resolves to
// (nil, nil), the anonymous identity.
func (m *Manager) Resolve(ctx context.Context, credential string) (*domain.Identity, error) {
	if credential == "" {
		return nil, nil
	}

	var claims sessionClaims
	token, err := jwt.ParseWithClaims(credential, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return m.secret, nil
	}, jwt.WithIssuer(m.issuer), jwt.WithExpirationRequired())

	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidToken, err)
	}

	if !token.Valid || claims.Subject == "" {
		return nil, domain.ErrInvalidToken
	}

	return &domain.Identity{
		UserID: claims.Subject,
		Name:   claims.Name,
	}, nil
}
