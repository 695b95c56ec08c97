package vimball

import (
	"errors"
	"strings"
)

const (
	// Suffix is appended to the base name to form the archive file name.
	Suffix = ".vba"

	// FoldMarker follows the tab on every entry's marker line.
	FoldMarker = "[[[1"

	// Header opens every archive. The extractor matches it byte for byte.
	Header = "\" Vimball Archiver by Charles E. Campbell, Jr., Ph.D.\n" +
		"UseVimball\n" +
		"finish\n"
)

var (
	ErrEmptyBase  = errors.New("vimball: archive base name is empty")
	ErrDotInBase  = errors.New("vimball: archive base name must not contain '.'")
	ErrUnreadable = errors.New("vimball: unable to open file")
	ErrClosed     = errors.New("vimball: archive already closed")
)

// ValidateBase reports whether base can be used as an archive base name.
func ValidateBase(base string) error {
	if base == "" {
		return ErrEmptyBase
	}
	if strings.Contains(base, ".") {
		return ErrDotInBase
	}
	return nil
}

// ArchiveName returns the file name of the archive for base, e.g. "pack.vba"
// for "pack".
func ArchiveName(base string) (string, error) {
	if err := ValidateBase(base); err != nil {
		return "", err
	}
	return base + Suffix, nil
}
