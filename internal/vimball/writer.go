package vimball

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
)

// Entry describes one file that was appended to an archive.
type Entry struct {
	Path  string // Path exactly as written on the marker line
	Lines int64  // Number of '\n' bytes in the file
	Size  int64  // Number of bytes copied into the archive
}

// Stats summarises the entries written so far.
type Stats struct {
	Entries int
	Skipped int
	Bytes   int64
}

// Writer appends entries to a vimball archive. It is not safe for concurrent
// use; entries are written strictly in the order Append is called.
type Writer struct {
	name   string
	bw     *bufio.Writer
	closer io.Closer
	closed bool
	stats  Stats
}

// NewWriter writes the archive header to w and returns a Writer that appends
// entries after it. Closing the Writer flushes but does not close w.
func NewWriter(w io.Writer) (*Writer, error) {
	vw := &Writer{bw: bufio.NewWriter(w)}
	if _, err := vw.bw.WriteString(Header); err != nil {
		return nil, fmt.Errorf("write header: %w", err)
	}
	return vw, nil
}

// Create creates (or truncates) the archive file for base and writes its
// header. The base name is validated before anything touches the filesystem.
func Create(base string) (*Writer, error) {
	name, err := ArchiveName(base)
	if err != nil {
		return nil, err
	}

	f, err := os.Create(name)
	if err != nil {
		return nil, fmt.Errorf("create archive %s: %w", name, err)
	}

	vw, err := NewWriter(f)
	if err != nil {
		f.Close()
		return nil, err
	}
	vw.name = name
	vw.closer = f
	return vw, nil
}

// Name returns the archive file name, or "" for a Writer built with NewWriter.
func (w *Writer) Name() string {
	return w.name
}

// Stats returns the running totals for this archive.
func (w *Writer) Stats() Stats {
	return w.stats
}

// Append opens path and writes it to the archive as one entry. If the file
// cannot be opened or read, the returned error matches ErrUnreadable and the
// archive is left untouched, so the caller may skip the path and continue.
// Any other error means the archive itself could not be written.
func (w *Writer) Append(path string) (Entry, error) {
	if w.closed {
		return Entry{}, ErrClosed
	}

	src, err := os.Open(path)
	if err != nil {
		w.stats.Skipped++
		return Entry{}, fmt.Errorf("%w <%s>: %w", ErrUnreadable, path, err)
	}
	defer src.Close()

	info, err := src.Stat()
	if err != nil {
		w.stats.Skipped++
		return Entry{}, fmt.Errorf("%w <%s>: %w", ErrUnreadable, path, err)
	}
	if info.IsDir() {
		w.stats.Skipped++
		return Entry{}, fmt.Errorf("%w <%s>: is a directory", ErrUnreadable, path)
	}

	return w.AppendReader(path, src)
}

// AppendReader writes the contents of r to the archive under path. Seekable
// readers are scanned once for newlines and rewound to where they started;
// anything else is read into memory first.
func (w *Writer) AppendReader(path string, r io.Reader) (Entry, error) {
	if w.closed {
		return Entry{}, ErrClosed
	}

	lines, body, err := scan(r)
	if err != nil {
		w.stats.Skipped++
		return Entry{}, fmt.Errorf("%w <%s>: %w", ErrUnreadable, path, err)
	}

	if _, err := fmt.Fprintf(w.bw, "%s\t%s\n%d\n", path, FoldMarker, lines); err != nil {
		return Entry{}, fmt.Errorf("write marker for %s: %w", path, err)
	}

	n, err := io.Copy(w.bw, body)
	if err != nil {
		return Entry{}, fmt.Errorf("copy %s: %w", path, err)
	}

	w.stats.Entries++
	w.stats.Bytes += n
	return Entry{Path: path, Lines: lines, Size: n}, nil
}

// scan counts the newlines in r and returns a reader positioned at the same
// bytes again.
func scan(r io.Reader) (int64, io.Reader, error) {
	if rs, ok := r.(io.ReadSeeker); ok {
		// Pipes and terminals satisfy io.Seeker but fail here.
		if start, err := rs.Seek(0, io.SeekCurrent); err == nil {
			lines, err := countLines(rs)
			if err != nil {
				return 0, nil, err
			}
			if _, err := rs.Seek(start, io.SeekStart); err != nil {
				return 0, nil, err
			}
			return lines, rs, nil
		}
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return 0, nil, err
	}
	return int64(bytes.Count(data, []byte{'\n'})), bytes.NewReader(data), nil
}

// Close flushes buffered output and, for archives opened with Create, closes
// the file. It must be called exactly once; later calls return ErrClosed.
func (w *Writer) Close() error {
	if w.closed {
		return ErrClosed
	}
	w.closed = true

	err := w.bw.Flush()
	if w.closer != nil {
		err = errors.Join(err, w.closer.Close())
	}
	return err
}
