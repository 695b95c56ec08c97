// Package cli parses command-line arguments, validates the archive name, and
// decides exit codes. It translates CLI flags into the application's
// internal configuration.
package cli
