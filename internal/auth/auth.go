// Package auth provides the authorizers that gate the functional API.
//
// An Authorizer looks at an incoming request and either allows it (nil) or
// denies it (non-nil error). Handlers never see this decision; the REST
// layer applies it as middleware.
package auth

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/LYN3S-CO-UK/API-Help-To-OpenAPI/internal/configuration"
)

const (
	ModeNone  = "none"
	ModeToken = "token"
	ModeJWT   = "jwt"
)

var (
	// ErrMissingCredentials is returned when the request carries no bearer token.
	ErrMissingCredentials = errors.New("missing authorization header")
	// ErrInvalidCredentials is returned when the presented token is rejected.
	ErrInvalidCredentials = errors.New("invalid token")
	// ErrForbidden is returned when the caller is known but not allowed.
	ErrForbidden = errors.New("forbidden")
)

// Authorizer decides whether a request may proceed.
type Authorizer interface {
	Authorize(r *http.Request) error
}

// AuthorizerFunc adapts a plain function to Authorizer.
type AuthorizerFunc func(r *http.Request) error

func (f AuthorizerFunc) Authorize(r *http.Request) error { return f(r) }

// AllowAll lets every request through.
type AllowAll struct{}

func (AllowAll) Authorize(*http.Request) error { return nil }

// StaticToken accepts a single shared bearer token.
type StaticToken struct {
	token []byte
}

func NewStaticToken(token string) *StaticToken {
	return &StaticToken{token: []byte(token)}
}

func (s *StaticToken) Authorize(r *http.Request) error {
	token := BearerToken(r)
	if token == "" {
		return ErrMissingCredentials
	}
	if subtle.ConstantTimeCompare([]byte(token), s.token) != 1 {
		return ErrInvalidCredentials
	}
	return nil
}

// FromConfig builds the authorizer selected by cfg.Mode.
func FromConfig(cfg *configuration.AuthConfig) (Authorizer, error) {
	if cfg == nil {
		return AllowAll{}, nil
	}
	switch cfg.Mode {
	case "", ModeNone:
		return AllowAll{}, nil
	case ModeToken:
		if cfg.Token == "" {
			return nil, errors.New("auth mode token requires a token")
		}
		return NewStaticToken(cfg.Token), nil
	case ModeJWT:
		return NewJWT(JWTOptions{
			Secret:   []byte(cfg.JWTSecret),
			Issuer:   cfg.JWTIssuer,
			Audience: cfg.JWTAudience,
			Leeway:   cfg.JWTLeeway,
		})
	default:
		return nil, fmt.Errorf("unknown auth mode %q", cfg.Mode)
	}
}

// BearerToken extracts the token from an "Authorization: Bearer <token>" header.
func BearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
