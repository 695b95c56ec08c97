// Package fsutil provides file system utility functions.
package fsutil

import (
	"fmt"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
)

// Glob returns the files matching pattern, sorted. Patterns use '/' as the
// separator and may contain "**", which matches zero or more directories.
// Symlinks are followed, directories are never returned, and unreadable
// directories are skipped. A pattern that matches nothing, including one
// whose base directory does not exist, returns nil and no error.
func Glob(pattern string) ([]string, error) {
	if pattern == "" {
		panic("pattern must not be empty")
	}
	if !doublestar.ValidatePattern(filepath.ToSlash(pattern)) {
		return nil, fmt.Errorf("%w: %q", doublestar.ErrBadPattern, pattern)
	}

	files, err := doublestar.FilepathGlob(pattern, doublestar.WithFilesOnly())
	if err != nil {
		return nil, fmt.Errorf("glob %q: %w", pattern, err)
	}
	if len(files) == 0 {
		return nil, nil
	}

	sort.Strings(files)
	return files, nil
}
