package main

import "errors"

// Sentinel errors for command operations
var (
	ErrParseFailed      = errors.New("some inputs failed to parse")
	ErrFileNotFormatted = errors.New("file is not formatted")
	ErrFormattingErrors = errors.New("some files had formatting errors")
)
