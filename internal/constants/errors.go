package constants

import "errors"

// Configuration errors.
var (
	ErrUnknownConfigKey   = errors.New("unknown configuration key")
	ErrInvalidConfigValue = errors.New("invalid configuration value")
	ErrInvalidOutput      = errors.New("output must be one of table, json, yaml")
	ErrNoHomeDirectory    = errors.New("could not determine home directory")
)

// Validation errors.
var (
	ErrNegativeLimit = errors.New("--limit must not be negative")
)
