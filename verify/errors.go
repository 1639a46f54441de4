package verify

import "errors"

// Connection errors
var (
	ErrConnectionFailed   = errors.New("failed to connect to database")
	ErrInvalidDatabaseURL = errors.New("invalid database URL")
	ErrEmptyDatabaseURL   = errors.New("database URL cannot be empty")
)

// Round-trip errors
var (
	ErrUnexpectedServerDDL = errors.New("unexpected SHOW CREATE TABLE result")
	ErrReparseFailed       = errors.New("server DDL could not be parsed")
	ErrCleanupFailed       = errors.New("failed to drop scratch table")
)
