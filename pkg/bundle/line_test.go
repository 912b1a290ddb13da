package bundle

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsDivider(t *testing.T) {
	tests := []struct {
		name string
		line string
		want bool
	}{
		{"minimal length", testDivider, true},
		{"longer than minimum", strings.Repeat("/", 120) + "\n", true},
		{"crlf terminator", strings.Repeat("/", 80) + "\r\n", true},
		{"crlf minimal length", strings.Repeat("/", 79) + "\r\n", true},
		{"crlf one short", strings.Repeat("/", 78) + "\r\n", false},
		{"crlf two short", strings.Repeat("/", 77) + "\r\n", false},
		{"one short", strings.Repeat("/", 78) + "\n", false},
		{"no terminator", strings.Repeat("/", 90), false},
		{"embedded space", strings.Repeat("/", 40) + " " + strings.Repeat("/", 40) + "\n", false},
		{"spacer", testSpacer, false},
		{"empty", "", false},
		{"only newline", "\n", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsDivider(tt.line))
		})
	}
}

func TestIsDivider_RoundTrip(t *testing.T) {
	// A line is a divider iff rewriting all but its last character as '/'
	// reproduces it and it is at least 80 characters long.
	lines := []string{
		testDivider,
		testSpacer,
		strings.Repeat("/", 100) + "\n",
		strings.Repeat("/", 50) + "\n",
		strings.Repeat("/", 79) + "x",
		strings.Repeat("/", 79) + "/",
		"// src/index.js //" + strings.Repeat(" ", 70) + "\n",
	}
	for _, line := range lines {
		rewritten := strings.Repeat("/", len(line)-1) + line[len(line)-1:]
		expected := rewritten == line && len(line) >= MinMarkerLength && strings.HasSuffix(line, "\n")
		assert.Equal(t, expected, IsDivider(line), "line %q", line)
	}
}

func TestIsSpacer(t *testing.T) {
	tests := []struct {
		name string
		line string
		want bool
	}{
		{"minimal length", testSpacer, true},
		{"longer than minimum", "//" + strings.Repeat(" ", 200) + "//\n", true},
		{"crlf minimal length", "//" + strings.Repeat(" ", 75) + "//\r\n", true},
		{"crlf one short", "//" + strings.Repeat(" ", 74) + "//\r\n", false},
		{"too short", "//" + strings.Repeat(" ", 10) + "//\n", false},
		{"text inside", "//" + strings.Repeat(" ", 30) + "x" + strings.Repeat(" ", 44) + "//\n", false},
		{"no terminator", "//" + strings.Repeat(" ", 80) + "//", false},
		{"missing trailing slashes", "//" + strings.Repeat(" ", 80) + "\n", false},
		{"divider", testDivider, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsSpacer(tt.line))
		})
	}
}

func TestClassify(t *testing.T) {
	assert.Equal(t, Divider, Classify(testDivider))
	assert.Equal(t, Spacer, Classify(testSpacer))
	assert.Equal(t, Content, Classify("// src/foo.js //\n"))
	assert.Equal(t, Content, Classify("console.log(1)\n"))
	assert.Equal(t, Content, Classify(""))
	assert.Equal(t, "divider", Divider.String())
	assert.Equal(t, "spacer", Spacer.String())
	assert.Equal(t, "content", Content.String())
}
