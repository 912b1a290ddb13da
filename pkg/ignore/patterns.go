package ignore

import (
	"regexp"
	"strings"
)

// parsePatternLine processes one ignore line into a compiled regex and a negation flag.
// A nil regex with a nil error means the line is empty or a comment.
func parsePatternLine(line string) (*regexp.Regexp, bool, error) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || strings.HasPrefix(trimmed, "#") {
		return nil, false, nil
	}

	negate := false
	if strings.HasPrefix(trimmed, "!") {
		negate = true
		trimmed = strings.TrimPrefix(trimmed, "!")
	}

	// Handle escaped characters for `#` and `!`.
	if strings.HasPrefix(trimmed, `\#`) || strings.HasPrefix(trimmed, `\!`) {
		trimmed = trimmed[1:]
	}

	dirOnly := strings.HasSuffix(trimmed, "/")
	trimmed = strings.TrimSuffix(trimmed, "/")

	// A slash anywhere but the end anchors the pattern to the start of the path.
	anchored := strings.Contains(trimmed, "/")
	trimmed = strings.TrimPrefix(trimmed, "/")
	if trimmed == "" {
		return nil, false, nil
	}

	re, err := regexp.Compile(anchorPattern(globToRegex(trimmed), anchored, dirOnly))
	if err != nil {
		return nil, false, err
	}
	return re, negate, nil
}

// globToRegex converts `*`, `?` and `**` wildcards to regex equivalents and
// quotes everything else.
func globToRegex(glob string) string {
	var b strings.Builder
	for i := 0; i < len(glob); i++ {
		switch {
		case strings.HasPrefix(glob[i:], "**/"):
			b.WriteString(`(?:.*/)?`)
			i += 2
		case strings.HasPrefix(glob[i:], "/**") && i+3 == len(glob):
			b.WriteString(`(?:/.*)?`)
			i += 2
		case strings.HasPrefix(glob[i:], "**"):
			b.WriteString(`.*`)
			i++
		case glob[i] == '*':
			b.WriteString(`[^/]*`)
		case glob[i] == '?':
			b.WriteString(`[^/]`)
		default:
			b.WriteString(regexp.QuoteMeta(glob[i : i+1]))
		}
	}
	return b.String()
}

// anchorPattern anchors the regex so it matches the entry itself or anything below it.
func anchorPattern(pattern string, anchored, dirOnly bool) string {
	prefix := `^(?:.*/)?`
	if anchored {
		prefix = `^`
	}
	suffix := `(?:/.*)?$`
	if dirOnly {
		suffix = `/.*$`
	}
	return prefix + pattern + suffix
}
