package ignore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatcher_Matches(t *testing.T) {
	tests := []struct {
		name     string
		patterns []string
		path     string
		want     bool
	}{
		{"no patterns", nil, "src/a.js", false},
		{"extension anywhere", []string{"*.map"}, "dist/js/main.js.map", true},
		{"extension miss", []string{"*.map"}, "dist/js/main.js", false},
		{"directory anywhere", []string{"node_modules/"}, "a/node_modules/react/index.js", true},
		{"directory pattern skips same-named file", []string{"node_modules/"}, "node_modules", false},
		{"bare name matches directory", []string{"vendor"}, "vendor/lib.js", true},
		{"anchored", []string{"/src"}, "src/a.js", true},
		{"anchored misses nested", []string{"/src"}, "lib/src/a.js", false},
		{"inner slash anchors", []string{"packages/core"}, "packages/core/index.ts", true},
		{"inner slash anchors miss", []string{"packages/core"}, "x/packages/core/index.ts", false},
		{"double star prefix", []string{"**/test/*.js"}, "a/b/test/x.js", true},
		{"double star middle", []string{"a/**/z.js"}, "a/b/c/z.js", true},
		{"double star middle direct", []string{"a/**/z.js"}, "a/z.js", true},
		{"double star suffix", []string{"lib/**"}, "lib/x/y.js", true},
		{"question mark", []string{"?.js"}, "a.js", true},
		{"question mark does not cross slash", []string{"a?b"}, "a/b", false},
		{"regex characters are literal", []string{"a+b(1).js"}, "a+b(1).js", true},
		{"negation", []string{"*.js", "!keep.js"}, "src/keep.js", false},
		{"negation then reinclude", []string{"*.js", "!keep.js", "src/*"}, "src/keep.js", true},
		{"comment and blank", []string{"# *.js", ""}, "a.js", false},
		{"escaped hash", []string{`\#notes`}, "#notes", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := New(nil)
			m.CompileLines(tt.patterns...)
			assert.Equal(t, tt.want, m.Matches(tt.path))
		})
	}
}

func TestMatcher_MatchesWithPattern(t *testing.T) {
	m := New(nil)
	m.CompileLines("*.js", "# comment", "!keep.js")
	require.Equal(t, 2, m.Len())

	matched, p := m.MatchesWithPattern("keep.js")
	assert.False(t, matched)
	require.NotNil(t, p)
	assert.True(t, p.Negate)
	assert.Equal(t, "!keep.js", p.Line)
	assert.Equal(t, 2, p.LineNo)

	matched, p = m.MatchesWithPattern("other.css")
	assert.False(t, matched)
	assert.Nil(t, p)
}

func TestMatcher_CompileFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".bundleignore")
	require.NoError(t, os.WriteFile(path, []byte("# generated\n*.map\n\nnode_modules/\n"), 0o644))

	m := New(nil)
	require.NoError(t, m.CompileFile(path))
	assert.Equal(t, 2, m.Len())
	assert.True(t, m.Matches("main.js.map"))

	require.NoError(t, m.CompileFile(filepath.Join(dir, "missing")))
	assert.Equal(t, 2, m.Len())
}
