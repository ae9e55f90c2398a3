// Package auth resolves bearer tokens issued by the external identity
// provider into request sessions.
package auth

import (
	"context"
	"errors"
	"strings"
)

var (
	// ErrMissingAuth means the request carried no Authorization header.
	ErrMissingAuth = errors.New("missing Authorization header")
	// ErrUnauthorized means a header was present but resolved no session.
	ErrUnauthorized = errors.New("unauthorized")
)

// Session is the signed-in user behind a request.
type Session struct {
	UserID string
	Email  string
	Role   string
}

// SessionResolver turns a raw Authorization header into a Session.
type SessionResolver interface {
	Resolve(ctx context.Context, authorization string) (Session, error)
}

// BearerToken extracts the token from an "Authorization: Bearer <token>" value.
func BearerToken(authorization string) (string, error) {
	authorization = strings.TrimSpace(authorization)
	if authorization == "" {
		return "", ErrMissingAuth
	}
	scheme, token, ok := strings.Cut(authorization, " ")
	token = strings.TrimSpace(token)
	if !ok || !strings.EqualFold(scheme, "Bearer") || token == "" {
		return "", ErrUnauthorized
	}
	return token, nil
}

// JWTResolver validates HS256 session tokens with the provider's shared secret.
type JWTResolver struct {
	Secret []byte
}

func NewJWTResolver(secret string) *JWTResolver {
	return &JWTResolver{Secret: []byte(secret)}
}

func (r *JWTResolver) Resolve(_ context.Context, authorization string) (Session, error) {
	token, err := BearerToken(authorization)
	if err != nil {
		return Session{}, err
	}
	if len(r.Secret) == 0 {
		return Session{}, ErrUnauthorized
	}
	claims, err := ValidateJWT(token, r.Secret)
	if err != nil {
		return Session{}, errors.Join(ErrUnauthorized, err)
	}
	return Session{UserID: claims.Subject, Email: claims.Email, Role: claims.Role}, nil
}

// ResolverFunc adapts a function to SessionResolver.
type ResolverFunc func(ctx context.Context, authorization string) (Session, error)

func (f ResolverFunc) Resolve(ctx context.Context, authorization string) (Session, error) {
	return f(ctx, authorization)
}
