// Package pathsource supplies the ordered list of source paths to archive,
// either from an argument list or by prompting on an input stream.
package pathsource

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// DefaultPrompt is written before every interactive read.
const DefaultPrompt = "Enter path: "

// Source yields paths one at a time. Next returns ok=false once the source is
// exhausted; err is non-nil only when the underlying input failed.
type Source interface {
	Next() (path string, ok bool, err error)
}

// argSource yields a fixed slice of paths in order.
type argSource struct {
	paths []string
	next  int
}

// FromArgs returns a Source over paths, in order, without any filtering.
func FromArgs(paths []string) Source {
	return &argSource{paths: paths}
}

func (s *argSource) Next() (string, bool, error) {
	if s.next >= len(s.paths) {
		return "", false, nil
	}
	p := s.paths[s.next]
	s.next++
	return p, true, nil
}

// Prompt reads one candidate path per line from an input stream.
//
// Lines containing '#' anywhere are comments. The lines "q" and "quit", or
// the end of input, stop collection. Blank lines are ignored.
type Prompt struct {
	in   *bufio.Reader
	out  io.Writer
	raw  bool
	done bool
}

// PromptOption configures a Prompt.
type PromptOption func(*Prompt)

// WithRawLines makes the Prompt yield lines exactly as read, including the
// trailing newline, instead of trimming surrounding whitespace.
func WithRawLines() PromptOption {
	return func(p *Prompt) { p.raw = true }
}

// NewPrompt returns a Prompt reading from in. The prompt text is written to
// out before every read; out may be nil to suppress it.
func NewPrompt(in io.Reader, out io.Writer, opts ...PromptOption) *Prompt {
	p := &Prompt{
		in:  bufio.NewReader(in),
		out: out,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Next implements Source.
func (p *Prompt) Next() (string, bool, error) {
	for !p.done {
		if p.out != nil {
			fmt.Fprint(p.out, DefaultPrompt)
		}

		line, err := p.in.ReadString('\n')
		if err != nil {
			if !errors.Is(err, io.EOF) {
				p.done = true
				return "", false, fmt.Errorf("read path: %w", err)
			}
			p.done = true
			if line == "" {
				break
			}
		}

		if strings.Contains(line, "#") {
			continue
		}
		switch strings.TrimRight(line, "\r\n") {
		case "q", "quit":
			p.done = true
			return "", false, nil
		}

		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if p.raw {
			return line, true, nil
		}
		return trimmed, true, nil
	}
	return "", false, nil
}
