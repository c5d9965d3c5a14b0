// Package repository defines the persistence ports of the domain.
package repository

import (
	"context"

	"schoolnote/internal/errors"
)

// ErrPreferenceNotFound is returned when a key was never persisted.
var ErrPreferenceNotFound = errors.New("preference not found")

// PreferenceKey names one persisted device-local setting.
type PreferenceKey string

const (
	KeyFirstLaunch         PreferenceKey = "first_launch"
	KeyUserLanguage        PreferenceKey = "user_language"
	KeyOnboardingCompleted PreferenceKey = "onboarding_completed"
)

// PreferenceRepository is a string key-value store surviving process restarts.
type PreferenceRepository interface {
	// Get returns ErrPreferenceNotFound when the key is absent.
	Get(ctx context.Context, key PreferenceKey) (string, error)
	Set(ctx context.Context, key PreferenceKey, value string) error
}
