// Package auth reads session details out of backend access tokens.
package auth

import (
	"github.com/golang-jwt/jwt/v5"

	"schoolnote/internal/domain/service"
)

// jwtInspector parses access tokens without verifying them.
// The client never holds the signing key; claims are only used to display
// expiry and to learn the user id of guest sessions.
type jwtInspector struct {
	parser *jwt.Parser
}

// NewJWTInspector is the constructor for jwtInspector.
func NewJWTInspector() service.TokenInspector {
	return &jwtInspector{parser: jwt.NewParser()}
}

// Inspect returns the subject and expiry of a JWT, or zero claims for opaque tokens.
func (i *jwtInspector) Inspect(token string) service.TokenClaims {
	claims := jwt.MapClaims{}
	if _, _, err := i.parser.ParseUnverified(token, claims); err != nil {
		return service.TokenClaims{}
	}

	var out service.TokenClaims
	if sub, err := claims.GetSubject(); err == nil {
		out.Subject = sub
	}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		out.ExpiresAt = exp.Time
	}

	return out
}
