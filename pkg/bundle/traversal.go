// File: pkg/bundle/traversal.go
package bundle

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// PathMatcher defines the interface for matching paths against ignore patterns.
type PathMatcher interface {
	Matches(path string) bool
}

// CollectedFiles contains categorized lists of files discovered in the report directory.
type CollectedFiles struct {
	Reports []string // Report files to parse, in ascending name order.
	Binary  []string // Files skipped because they look binary.
	Ignored []string // Files skipped because they match an ignore pattern.
}

// CollectReportFiles lists the regular files directly inside dir.
// Subdirectories are not descended into.
func CollectReportFiles(dir string, gi PathMatcher, logger *zap.Logger, verbose bool) (CollectedFiles, error) {
	var collected CollectedFiles
	logger.Debug("Starting report collection", zap.String("dir", dir))

	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return collected, fmt.Errorf("%w: %w", ErrInputNotFound, err)
		}
		return collected, fmt.Errorf("failed to read report directory '%s': %w", dir, err)
	}

	// os.ReadDir returns entries sorted by filename, which pins the merge order.
	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())

		info, err := os.Stat(path)
		if err != nil {
			return collected, fmt.Errorf("failed to stat report file '%s': %w", path, err)
		}
		if !info.Mode().IsRegular() {
			if verbose {
				logger.Debug("Skipping non-regular entry", zap.String("path", path))
			}
			continue
		}

		if gi != nil && gi.Matches(entry.Name()) {
			collected.Ignored = append(collected.Ignored, path)
			if verbose {
				logger.Debug("Report file matches ignore pattern", zap.String("file", path))
			}
			continue
		}

		isBinary, err := isBinaryFile(path)
		if err != nil {
			logger.Error("Failed to check if file is binary", zap.String("file", path), zap.Error(err))
			return collected, fmt.Errorf("failed to inspect report file '%s': %w", path, err)
		}
		if isBinary {
			collected.Binary = append(collected.Binary, path)
			continue
		}

		collected.Reports = append(collected.Reports, path)
	}

	logger.Debug("Completed report collection",
		zap.Int("reportFiles", len(collected.Reports)),
		zap.Int("binaryFiles", len(collected.Binary)),
		zap.Int("ignoredFiles", len(collected.Ignored)))
	return collected, nil
}
