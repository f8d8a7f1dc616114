package auth

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type JWTOptions struct {
	Secret   []byte
	Issuer   string // optional
	Audience string // optional
	Leeway   time.Duration
}

// JWT validates HS256 bearer tokens. Tokens must carry an exp claim.
type JWT struct {
	secret []byte
	parser *jwt.Parser
}

func NewJWT(opts JWTOptions) (*JWT, error) {
	if len(opts.Secret) == 0 {
		return nil, errors.New("jwt secret is empty")
	}

	parserOpts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithLeeway(opts.Leeway),
	}
	if opts.Issuer != "" {
		parserOpts = append(parserOpts, jwt.WithIssuer(opts.Issuer))
	}
	if opts.Audience != "" {
		parserOpts = append(parserOpts, jwt.WithAudience(opts.Audience))
	}

	return &JWT{
		secret: opts.Secret,
		parser: jwt.NewParser(parserOpts...),
	}, nil
}

func (j *JWT) Authorize(r *http.Request) error {
	raw := BearerToken(r)
	if raw == "" {
		return ErrMissingCredentials
	}

	_, err := j.parser.ParseWithClaims(raw, &jwt.RegisteredClaims{}, func(*jwt.Token) (any, error) {
		return j.secret, nil
	})
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidCredentials, err)
	}
	return nil
}
