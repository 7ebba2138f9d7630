package repositories

import "context"

// NameSource reads raw name lines from storage.
// The domain layer owns this interface; infrastructure implements it.
type NameSource interface {
	// ReadLines returns every line at path, without line terminators.
	// Returns ErrNotFound when path does not resolve to an existing file and
	// ErrEmpty when the file has zero lines.
	ReadLines(ctx context.Context, path string) ([]string, error)
}

// NameSink persists rendered names.
type NameSink interface {
	// WriteLines replaces the content at path with lines, one per line.
	// Any failure is reported as ErrWrite.
	WriteLines(ctx context.Context, path string, lines []string) error
}
