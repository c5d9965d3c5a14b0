package service

import "time"

// TokenClaims is what the client can read from an access token without verifying it.
type TokenClaims struct {
	Subject   string
	ExpiresAt time.Time
}

// TokenInspector reads claims from opaque or JWT access tokens.
// Tokens that are not JWTs yield zero claims and no error.
type TokenInspector interface {
	Inspect(token string) TokenClaims
}
