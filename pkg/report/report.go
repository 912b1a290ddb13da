// Package report renders the results of a bundle analysis.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"bundlesize/pkg/bundle"

	"gopkg.in/yaml.v3"
)

// Format names an output format.
type Format string

const (
	FormatText Format = "text"
	FormatTree Format = "tree"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Formats lists every supported output format.
var Formats = []Format{FormatText, FormatTree, FormatJSON, FormatYAML}

// ParseFormat validates a format name. An empty name selects FormatText.
func ParseFormat(s string) (Format, error) {
	if s == "" {
		return FormatText, nil
	}
	for _, f := range Formats {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown report format %q", s)
}

// Document is the serialized form of a result for the JSON and YAML formats.
type Document struct {
	Files       int            `json:"files" yaml:"files"`
	Total       int            `json:"total" yaml:"total"`
	Sizes       map[string]int `json:"sizes" yaml:"sizes"`
	Directories map[string]int `json:"directories" yaml:"directories"`
}

// Write renders result to w in the given format.
func Write(w io.Writer, format Format, result *bundle.Result, human bool) error {
	switch format {
	case FormatText, "":
		return WriteText(w, result.Dirs)
	case FormatTree:
		return WriteTree(w, result.Dirs, result.Sizes, human)
	case FormatJSON:
		return WriteJSON(w, result)
	case FormatYAML:
		return WriteYAML(w, result)
	}
	return fmt.Errorf("unknown report format %q", format)
}

// WriteText prints every prefix in ascending order as its size right-aligned
// in ten columns, a space, and the prefix.
func WriteText(w io.Writer, dirs bundle.DirSizeMap) error {
	for _, prefix := range sortedKeys(dirs) {
		if _, err := fmt.Fprintf(w, "%10d %s\n", dirs[prefix], prefix); err != nil {
			return fmt.Errorf("failed to write report line: %w", err)
		}
	}
	return nil
}

// WriteJSON writes the result as an indented JSON document.
func WriteJSON(w io.Writer, result *bundle.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(newDocument(result)); err != nil {
		return fmt.Errorf("failed to encode JSON report: %w", err)
	}
	return nil
}

// WriteYAML writes the result as a YAML document.
func WriteYAML(w io.Writer, result *bundle.Result) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(newDocument(result)); err != nil {
		return fmt.Errorf("failed to encode YAML report: %w", err)
	}
	return enc.Close()
}

func newDocument(result *bundle.Result) Document {
	doc := Document{
		Files:       result.Files,
		Total:       result.Sizes.Total(),
		Sizes:       map[string]int{},
		Directories: map[string]int{},
	}
	for k, v := range result.Sizes {
		doc.Sizes[k] = v
	}
	for k, v := range result.Dirs {
		doc.Directories[k] = v
	}
	return doc
}

func sortedKeys[M ~map[string]int](m M) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
