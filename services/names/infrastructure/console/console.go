// Package console adapts a line-oriented input stream to the interactive
// prompt used by the sort workflow.
package console

import (
	"bufio"
	"context"
	"errors"
	"io"
	"strings"
)

// LineReader reads one line of user input per call.
type LineReader struct {
	r *bufio.Reader
}

// NewLineReader wraps r, usually os.Stdin.
func NewLineReader(r io.Reader) *LineReader {
	return &LineReader{r: bufio.NewReader(r)}
}

// ReadLine returns the next line without its terminator. A final line with no
// terminator is returned as-is; io.EOF is returned only when nothing was read.
func (l *LineReader) ReadLine(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	line, err := l.r.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
