// Package vimball writes vimball archives: a fixed three-line header followed
// by one entry per source file. Each entry is a marker line holding the path
// and a fold marker, a line holding the number of newline bytes in the file,
// and then the file's bytes copied verbatim.
//
// The package only writes archives. Reading them back is the job of the
// extractor that ships with the editor.
package vimball
