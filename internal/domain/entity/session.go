// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"slices"
	"time"
)

// ProviderType is the identity provider a parent signed in with.
type ProviderType string

const (
	ProviderGoogle ProviderType = "google"
	ProviderKakao  ProviderType = "kakao"
	ProviderNaver  ProviderType = "naver"
	ProviderApple  ProviderType = "apple"
	// ProviderGuest marks users created by an anonymous guest session.
	ProviderGuest ProviderType = "guest"
)

// LoginProviders lists the providers accepted by Login.
var LoginProviders = []ProviderType{ProviderGoogle, ProviderKakao, ProviderNaver, ProviderApple}

// IsLoginProvider reports whether p can be exchanged through Login.
func (p ProviderType) IsLoginProvider() bool {
	return slices.Contains(LoginProviders, p)
}

// SessionKind tells the three session states apart.
type SessionKind int

const (
	SessionNone SessionKind = iota
	SessionGuest
	SessionAuthenticated
)

// String returns the string representation of the SessionKind.
func (k SessionKind) String() string {
	switch k {
	case SessionGuest:
		return "guest"
	case SessionAuthenticated:
		return "authenticated"
	default:
		return "none"
	}
}

// MarshalText lets the kind travel as a readable string in state snapshots.
func (k SessionKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Session is the single active session of the process.
// Exactly one of none, guest and authenticated holds at any time.
type Session struct {
	AccessToken  string      `json:"-"`
	RefreshToken string      `json:"-"` // Always empty for guest sessions.
	Kind         SessionKind `json:"kind"`
	UserID       string      `json:"userId,omitempty"`
	ExpiresAt    time.Time   `json:"expiresAt,omitzero"` // Zero when the token carries no exp claim.
}

// IsAuthenticated reports whether a token is held. Guest sessions count.
func (s Session) IsAuthenticated() bool {
	return s.AccessToken != ""
}

// IsGuest reports whether the held token is an anonymous guest token.
func (s Session) IsGuest() bool {
	return s.Kind == SessionGuest && s.AccessToken != ""
}

// Expired reports whether the token's exp claim is in the past relative to now.
func (s Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && !now.Before(s.ExpiresAt)
}

// NewGuestSession builds a guest session; guest sessions never carry a refresh token.
func NewGuestSession(accessToken, userID string) Session {
	return Session{
		AccessToken: accessToken,
		Kind:        SessionGuest,
		UserID:      userID,
	}
}

// NewAuthenticatedSession builds the session stored after a successful login or refresh.
func NewAuthenticatedSession(accessToken, refreshToken, userID string) Session {
	return Session{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		Kind:         SessionAuthenticated,
		UserID:       userID,
	}
}
