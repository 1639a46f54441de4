package dialectsql

import "errors"

var (
	// ErrUnknownDialect is returned when a dialect name is not registered.
	ErrUnknownDialect = errors.New("unknown dialect")
	// ErrConfigValidation is returned when configuration validation fails.
	ErrConfigValidation = errors.New("configuration validation failed")
	// ErrEnvironmentNotFound indicates the requested database environment is not configured.
	ErrEnvironmentNotFound = errors.New("database environment not found")
)
