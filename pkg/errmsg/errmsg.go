// Package errmsg maps domain sentinel errors to the messages shown to the
// user at the CLI boundary. Add a case to Message for each new sentinel.
package errmsg

import (
	"errors"

	namesdomain "github.com/ghuser/namesort/services/names/domain"
)

// Message returns the one-line, human-readable report for err.
// Uses errors.Is() so wrapped sentinel errors are matched correctly.
// Unrecognized errors are reported as unexpected.
func Message(err error) string {
	switch {
	case errors.Is(err, namesdomain.ErrNotFound):
		return "Error: Input file not found - " + err.Error()
	case errors.Is(err, namesdomain.ErrEmpty):
		return "Error: Input file is empty."
	case errors.Is(err, namesdomain.ErrInvalidFormat):
		return "Error: " + err.Error()
	case errors.Is(err, namesdomain.ErrWrite):
		return "Error writing names to file: " + err.Error()
	default:
		return "An unexpected error occurred: " + err.Error()
	}
}

// Expected reports whether err is one of the domain failures a user can cause
// (bad path, empty or malformed input, unwritable output). Anything else is a
// defect worth reporting to crash tracking.
func Expected(err error) bool {
	return errors.Is(err, namesdomain.ErrNotFound) ||
		errors.Is(err, namesdomain.ErrEmpty) ||
		errors.Is(err, namesdomain.ErrInvalidFormat) ||
		errors.Is(err, namesdomain.ErrWrite)
}
