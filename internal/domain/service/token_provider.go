package service

import "context"

// TokenProvider hands out a usable access token, minting a guest session when none is held.
type TokenProvider interface {
	Token(ctx context.Context) (string, error)
}
