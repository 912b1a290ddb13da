// File: pkg/bundle/extract.go
package bundle

import (
	"strings"
	"unicode/utf8"
)

// headerWindow is the number of lines in a block header: divider, spacer,
// path line, spacer, divider.
const headerWindow = 5

// ExtractBlocks scans the lines of one report file and returns the size of
// every block it contains. Lines are expected to keep their terminators.
//
// A block starts after a header window and ends at the next header window or
// at the end of the input. When a path repeats, the later block wins.
func ExtractBlocks(lines []string, policy MalformedPolicy) (SizeMap, error) {
	sizes := SizeMap{}

	open := false
	var path string
	var start int

	for i := 0; i+headerWindow-1 < len(lines); i++ {
		if !isHeaderWindow(lines[i : i+headerWindow]) {
			continue
		}

		next, ok := headerPath(lines[i+2])
		if !ok {
			if policy == MalformedSkip {
				continue
			}
			return nil, &MalformedHeaderError{Line: i + 3, Text: stripTerminator(lines[i+2])}
		}

		if open {
			sizes[path] = blockSize(lines, start, i)
		}
		open = true
		path = next
		start = i + headerWindow
	}

	if open {
		sizes[path] = blockSize(lines, start, len(lines))
	}
	return sizes, nil
}

// isHeaderWindow reports whether window matches divider, spacer, content, spacer, divider.
func isHeaderWindow(window []string) bool {
	return IsDivider(window[0]) &&
		IsSpacer(window[1]) &&
		Classify(window[2]) == Content &&
		IsSpacer(window[3]) &&
		IsDivider(window[4])
}

// headerPath extracts the block path from a header line of the form "// path //".
func headerPath(line string) (string, bool) {
	body := stripTerminator(line)
	if len(body) < 4 || !strings.HasPrefix(body, "//") || !strings.HasSuffix(body, "//") {
		return "", false
	}
	path := strings.TrimSpace(body[2 : len(body)-2])
	if path == "" {
		return "", false
	}
	return path, true
}

// blockSize returns the character length of lines[start:end] joined by "\n",
// with each line's own terminator removed.
func blockSize(lines []string, start, end int) int {
	if end > len(lines) {
		end = len(lines)
	}
	if start >= end {
		return 0
	}
	size := end - start - 1 // joining newlines
	for _, line := range lines[start:end] {
		size += utf8.RuneCountInString(stripTerminator(line))
	}
	return size
}
