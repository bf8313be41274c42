package config

import "github.com/cockroachdb/errors"

// Errors returned by configuration operations.
var (
	// ErrInvalidSetting indicates a value that fails validation.
	ErrInvalidSetting = errors.New("invalid setting")

	// ErrNoPath indicates a Save without a settings file path.
	ErrNoPath = errors.New("no settings file path")
)
