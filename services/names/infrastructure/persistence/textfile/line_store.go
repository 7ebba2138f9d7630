// Package textfile implements the names repositories on plain
// newline-delimited text files.
package textfile

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	namesdomain "github.com/ghuser/namesort/services/names/domain"
)

const (
	initialLineBuffer = 64 * 1024
	maxLineLength     = 1024 * 1024
	outputFileMode    = 0o644

	utf8BOM = "\ufeff"
)

// LineStore implements repositories.NameSource and repositories.NameSink.
// Every call opens and closes its own file handle.
type LineStore struct{}

// NewLineStore returns a LineStore.
func NewLineStore() *LineStore {
	return &LineStore{}
}

// ReadLines reads the whole file at path and splits it into lines. Both "\n"
// and "\r\n" terminate a line, and a trailing terminator does not produce an
// extra empty line. A leading UTF-8 byte order mark is dropped, so a file
// holding only a BOM is empty. Directories are reported as ErrNotFound.
func (s *LineStore) ReadLines(ctx context.Context, path string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", namesdomain.ErrNotFound, path)
		}
		return nil, fmt.Errorf("stat input: %w", err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%w: %s is a directory", namesdomain.ErrNotFound, path)
	}

	f, err := os.Open(path) // #nosec G304 -- CLI tool reads a user-provided path
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", namesdomain.ErrNotFound, path)
		}
		return nil, fmt.Errorf("open input: %w", err)
	}
	defer f.Close() //nolint:errcheck // read-only handle

	r := bufio.NewReaderSize(f, initialLineBuffer)
	if head, err := r.Peek(len(utf8BOM)); err == nil && string(head) == utf8BOM {
		_, _ = r.Discard(len(utf8BOM))
	}

	var lines []string
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, initialLineBuffer), maxLineLength)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read input %s: %w", path, err)
	}

	if len(lines) == 0 {
		return nil, fmt.Errorf("%w: %s", namesdomain.ErrEmpty, path)
	}
	return lines, nil
}

// WriteLines truncates (or creates) the file at path and writes each line
// followed by "\n".
func (s *LineStore) WriteLines(ctx context.Context, path string, lines []string) (err error) {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %w", namesdomain.ErrWrite, err)
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, outputFileMode) // #nosec G304
	if err != nil {
		return fmt.Errorf("%w: %w", namesdomain.ErrWrite, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("%w: close %s: %w", namesdomain.ErrWrite, path, cerr)
		}
	}()

	w := bufio.NewWriter(f)
	for _, line := range lines {
		if _, err := w.WriteString(line + "\n"); err != nil {
			return fmt.Errorf("%w: %w", namesdomain.ErrWrite, err)
		}
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("%w: flush %s: %w", namesdomain.ErrWrite, path, err)
	}
	return nil
}
