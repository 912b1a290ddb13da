package bundle

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

var (
	testDivider = strings.Repeat("/", MinMarkerLength-1) + "\n"
	testSpacer  = "//" + strings.Repeat(" ", MinMarkerLength-5) + "//\n"
)

type testBlock struct {
	path    string
	content string // without a trailing newline
}

// headerLines returns the five delimiter lines introducing path.
func headerLines(path string) []string {
	return []string{testDivider, testSpacer, "// " + path + " //\n", testSpacer, testDivider}
}

// renderReport builds report text in the bundle report format.
func renderReport(blocks ...testBlock) string {
	var b strings.Builder
	for _, blk := range blocks {
		b.WriteString(strings.Join(headerLines(blk.path), ""))
		if blk.content != "" {
			b.WriteString(blk.content)
			b.WriteString("\n")
		}
	}
	return b.String()
}

// reportLines splits rendered report text into lines that keep their terminators.
func reportLines(text string) []string {
	lines := strings.SplitAfter(text, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

func writeReport(t *testing.T, dir, name string, blocks ...testBlock) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(renderReport(blocks...)), 0o644))
	return path
}
