// File: pkg/bundle/line.go
package bundle

import (
	"strings"
	"unicode/utf8"
)

// LineKind is the role a report line plays in the block delimiter pattern.
type LineKind int

const (
	Content LineKind = iota
	Divider
	Spacer
)

func (k LineKind) String() string {
	switch k {
	case Divider:
		return "divider"
	case Spacer:
		return "spacer"
	default:
		return "content"
	}
}

// IsDivider reports whether line is at least 80 characters long, ends with a
// line terminator, and consists of '/' characters up to that terminator.
func IsDivider(line string) bool {
	body, ok := splitTerminator(line)
	if !ok || markerLength(body) < MinMarkerLength || body == "" {
		return false
	}
	return strings.Trim(body, "/") == ""
}

// IsSpacer reports whether line is at least 80 characters long, starts with
// "//", ends with "//" plus a line terminator, and holds only spaces in between.
func IsSpacer(line string) bool {
	body, ok := splitTerminator(line)
	if !ok || markerLength(body) < MinMarkerLength || len(body) < 4 {
		return false
	}
	if !strings.HasPrefix(body, "//") || !strings.HasSuffix(body, "//") {
		return false
	}
	return strings.Trim(body[2:len(body)-2], " ") == ""
}

// Classify returns the kind of line, checking Divider before Spacer.
func Classify(line string) LineKind {
	switch {
	case IsDivider(line):
		return Divider
	case IsSpacer(line):
		return Spacer
	default:
		return Content
	}
}

// splitTerminator strips a trailing "\n" or "\r\n" from line.
// ok is false when the line has no terminator.
func splitTerminator(line string) (body string, ok bool) {
	if !strings.HasSuffix(line, "\n") {
		return line, false
	}
	body = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(body, "\r"), true
}

// markerLength is the character length of a line whose terminator, "\n" or
// "\r\n", counts as a single character.
func markerLength(body string) int {
	return utf8.RuneCountInString(body) + 1
}

// stripTerminator returns line without its trailing terminator, if any.
func stripTerminator(line string) string {
	body, _ := splitTerminator(line)
	return body
}
