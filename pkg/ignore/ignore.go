// Package ignore matches slash-separated paths against gitignore-style patterns.
package ignore

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"go.uber.org/zap"
)

// Pattern encapsulates a compiled regular expression pattern,
// a negation flag, and metadata about the pattern's origin.
type Pattern struct {
	Regexp *regexp.Regexp // Compiled regular expression for the pattern.
	Negate bool           // Indicates if the pattern is a negation (starts with '!').
	Line   string         // Original pattern line.
	LineNo int            // Position among all compiled lines (1-based).
}

// Matcher represents an ordered collection of ignore patterns. Later patterns
// take precedence over earlier ones.
type Matcher struct {
	patterns []*Pattern
	logger   *zap.Logger
}

// New initializes a Matcher with an optional logger.
func New(logger *zap.Logger) *Matcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Matcher{logger: logger}
}

// Len returns the number of compiled patterns.
func (m *Matcher) Len() int { return len(m.patterns) }

// CompileLines compiles pattern lines and appends them to the matcher.
// Empty lines and comments are skipped.
func (m *Matcher) CompileLines(lines ...string) {
	for _, line := range lines {
		lineNo := len(m.patterns) + 1
		re, negate, err := parsePatternLine(line)
		if err != nil {
			m.logger.Warn("Invalid ignore pattern", zap.String("pattern", line), zap.Error(err))
			continue
		}
		if re == nil {
			continue
		}
		m.patterns = append(m.patterns, &Pattern{Regexp: re, Negate: negate, Line: line, LineNo: lineNo})
		m.logger.Debug("Compiled ignore pattern",
			zap.Int("lineNo", lineNo),
			zap.String("pattern", line),
			zap.Bool("negate", negate))
	}
}

// CompileFile reads an ignore file and compiles its lines. A missing file is not an error.
func (m *Matcher) CompileFile(filePath string) error {
	content, err := os.ReadFile(filePath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			m.logger.Debug("Ignore file does not exist and will be skipped", zap.String("filePath", filePath))
			return nil
		}
		m.logger.Error("Failed to read ignore file", zap.String("filePath", filePath), zap.Error(err))
		return err
	}

	lines := strings.Split(string(content), "\n")
	m.CompileLines(lines...)
	m.logger.Debug("Compiled ignore file", zap.String("filePath", filePath), zap.Int("lineCount", len(lines)))
	return nil
}

// Matches checks if a path matches the patterns, honoring negations.
func (m *Matcher) Matches(path string) bool {
	matches, _ := m.MatchesWithPattern(path)
	return matches
}

// MatchesWithPattern checks if a path matches any ignore pattern and returns
// the last pattern that decided the outcome.
func (m *Matcher) MatchesWithPattern(path string) (bool, *Pattern) {
	normalized := filepath.ToSlash(path)

	matched := false
	var decisive *Pattern
	for _, p := range m.patterns {
		if p.Regexp.MatchString(normalized) {
			matched = !p.Negate
			decisive = p
		}
	}
	return matched, decisive
}
