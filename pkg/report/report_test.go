package report

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"bundlesize/pkg/bundle"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

func sampleResult() *bundle.Result {
	sizes := bundle.SizeMap{
		"src/app.js":              1200,
		"src/lib/util.js":         300,
		"node_modules/react/x.js": 2048,
		"index.js":                5,
	}
	return &bundle.Result{Sizes: sizes, Dirs: bundle.Rollup(sizes), Files: 2}
}

func TestWriteText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteText(&buf, sampleResult().Dirs))

	want := "" +
		"      3553 .\n" +
		"      2048 node_modules\n" +
		"      2048 node_modules/react\n" +
		"      1500 src\n" +
		"       300 src/lib\n"
	assert.Equal(t, want, buf.String())
}

func TestWriteText_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteText(&buf, bundle.DirSizeMap{}))
	assert.Empty(t, buf.String())
}

func TestWriteText_WideNumbers(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteText(&buf, bundle.DirSizeMap{".": 12345678901}))
	assert.Equal(t, "12345678901 .\n", buf.String())
}

func TestWriteTree(t *testing.T) {
	result := sampleResult()
	var buf bytes.Buffer
	require.NoError(t, WriteTree(&buf, result.Dirs, result.Sizes, false))

	want := strings.Join([]string{
		". (3553)",
		"├── node_modules/ (2048)",
		"│   └── react/ (2048)",
		"│       └── x.js (2048)",
		"├── src/ (1500)",
		"│   ├── lib/ (300)",
		"│   │   └── util.js (300)",
		"│   └── app.js (1200)",
		"└── index.js (5)",
	}, "\n") + "\n"
	assert.Equal(t, want, buf.String())
}

func TestWriteTree_Human(t *testing.T) {
	result := sampleResult()
	var buf bytes.Buffer
	require.NoError(t, WriteTree(&buf, result.Dirs, result.Sizes, true))

	first := strings.SplitN(buf.String(), "\n", 2)[0]
	assert.Equal(t, ". (3.6 kB)", first)
	assert.Contains(t, buf.String(), "index.js (5 B)")
}

func TestWriteTree_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteTree(&buf, bundle.DirSizeMap{}, bundle.SizeMap{}, false))
	assert.Empty(t, buf.String())
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, sampleResult()))

	var doc Document
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))
	assert.Equal(t, 2, doc.Files)
	assert.Equal(t, 3553, doc.Total)
	assert.Equal(t, 1500, doc.Directories["src"])
	assert.Equal(t, 5, doc.Sizes["index.js"])
}

func TestWriteYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteYAML(&buf, sampleResult()))
	assert.Contains(t, buf.String(), "total: 3553")

	var doc Document
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &doc))
	assert.Equal(t, 2048, doc.Directories["node_modules/react"])
}

func TestWrite_Dispatch(t *testing.T) {
	result := sampleResult()
	for _, f := range Formats {
		var buf bytes.Buffer
		require.NoError(t, Write(&buf, f, result, false), "format %s", f)
		assert.NotEmpty(t, buf.String(), "format %s", f)
	}

	var buf bytes.Buffer
	assert.Error(t, Write(&buf, Format("csv"), result, false))
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("")
	require.NoError(t, err)
	assert.Equal(t, FormatText, f)

	f, err = ParseFormat("tree")
	require.NoError(t, err)
	assert.Equal(t, FormatTree, f)

	_, err = ParseFormat("xml")
	assert.Error(t, err)
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "nested", "report.txt")
	require.NoError(t, WriteFile(path, FormatText, sampleResult(), false, zap.NewNop()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "      3553 .\n"))
}
