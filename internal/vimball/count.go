package vimball

import (
	"bytes"
	"io"
)

// lineCounter is an io.Writer that discards its input and counts the newline
// bytes that pass through it.
type lineCounter struct {
	lines int64
}

// Write implements io.Writer.
func (c *lineCounter) Write(p []byte) (int, error) {
	c.lines += int64(bytes.Count(p, []byte{'\n'}))
	return len(p), nil
}

// countLines drains r and returns the number of '\n' bytes read. A final line
// without a terminator is not counted.
func countLines(r io.Reader) (int64, error) {
	var c lineCounter
	if _, err := io.Copy(&c, r); err != nil {
		return 0, err
	}
	return c.lines, nil
}
