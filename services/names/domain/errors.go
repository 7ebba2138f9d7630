package domain

import "errors"

// Sentinel errors for the names domain. Use errors.Is() to check these.
var (
	// ErrNotFound indicates the input path does not resolve to an existing file.
	ErrNotFound = errors.New("input file not found")

	// ErrEmpty indicates the input file exists but contains no lines.
	ErrEmpty = errors.New("input file is empty")

	// ErrInvalidFormat indicates a line cannot be parsed into a Name.
	ErrInvalidFormat = errors.New("invalid name format")

	// ErrWrite indicates the sorted names could not be persisted.
	ErrWrite = errors.New("write names")
)
