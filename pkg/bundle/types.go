// File: pkg/bundle/types.go
package bundle

import (
	"errors"
	"fmt"
)

// SizeMap maps a block path to the size of its content in characters.
type SizeMap map[string]int

// DirSizeMap maps a path prefix ("." for the root) to the cumulative size
// of every block nested under it.
type DirSizeMap map[string]int

// MalformedPolicy selects how a header window with an unusable path line is handled.
type MalformedPolicy int

const (
	// MalformedFail aborts extraction with a *MalformedHeaderError.
	MalformedFail MalformedPolicy = iota
	// MalformedSkip treats the window as ordinary block content.
	MalformedSkip
)

// ParseMalformedPolicy converts a configuration value ("fail" or "skip") into a MalformedPolicy.
func ParseMalformedPolicy(s string) (MalformedPolicy, error) {
	switch s {
	case "", "fail":
		return MalformedFail, nil
	case "skip":
		return MalformedSkip, nil
	}
	return MalformedFail, fmt.Errorf("unknown malformed header policy %q", s)
}

func (p MalformedPolicy) String() string {
	if p == MalformedSkip {
		return "skip"
	}
	return "fail"
}

// Options holds the configuration for a single analysis run.
type Options struct {
	Dir            string          // Directory holding the bundle report files.
	Workers        int             // Files parsed concurrently; values below 1 mean one per CPU.
	Malformed      MalformedPolicy // Handling of malformed header windows.
	IgnoreFiles    []string        // Patterns matched against report file names.
	IgnorePaths    []string        // Patterns matched against block paths.
	IgnoreFrom     string          // Ignore file with block path patterns; a missing file is skipped.
	VerboseSkipped bool            // If true, every skipped file and path is logged at debug level.
}

// Result is the outcome of an analysis run.
type Result struct {
	Sizes SizeMap    // Per-block sizes merged across all report files.
	Dirs  DirSizeMap // Cumulative sizes per path prefix.
	Files int        // Number of report files parsed.
}

// Constants
const (
	// MinMarkerLength is the minimum length of a divider or spacer line, terminator included.
	MinMarkerLength = 80
	// RootPrefix is the key of the root entry in a DirSizeMap.
	RootPrefix = "."
)

var (
	// ErrInputNotFound is returned when the report directory or a report file is missing.
	ErrInputNotFound = errors.New("input not found")
	// ErrMalformedHeader is returned when a header window carries an unusable path line.
	ErrMalformedHeader = errors.New("malformed block header")
)

// MalformedHeaderError describes a header window whose path line could not be parsed.
type MalformedHeaderError struct {
	File string // Report file, empty when extracting from memory.
	Line int    // 1-based line number of the header line.
	Text string // Header line without its terminator.
}

func (e *MalformedHeaderError) Error() string {
	if e.File == "" {
		return fmt.Sprintf("malformed block header at line %d: %q", e.Line, e.Text)
	}
	return fmt.Sprintf("malformed block header in %s at line %d: %q", e.File, e.Line, e.Text)
}

func (e *MalformedHeaderError) Unwrap() error { return ErrMalformedHeader }
