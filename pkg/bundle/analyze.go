// File: pkg/bundle/analyze.go
package bundle

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"bundlesize/pkg/ignore"

	"go.uber.org/zap"
)

// Analyze scans every report file in opts.Dir and returns the merged block
// sizes together with their directory rollup. Nothing is printed.
func Analyze(ctx context.Context, opts Options, logger *zap.Logger) (*Result, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	startTime := time.Now()
	logger.Info("Starting bundle analysis", zap.String("directory", opts.Dir))

	sizes, files, err := ScanDir(ctx, opts, logger)
	if err != nil {
		logger.Error("Failed to scan report directory", zap.String("directory", opts.Dir), zap.Error(err))
		return nil, fmt.Errorf("bundle analysis failed: %w", err)
	}

	result := &Result{
		Sizes: sizes,
		Dirs:  Rollup(sizes),
		Files: files,
	}

	logger.Info("Bundle analysis completed",
		zap.Int("reportFiles", result.Files),
		zap.Int("blocks", len(result.Sizes)),
		zap.Int("totalSize", result.Sizes.Total()),
		zap.Duration("elapsed", time.Since(startTime)))
	return result, nil
}

// ScanDir parses the report files of opts.Dir and merges their block sizes.
// Files are merged in ascending name order; on a path collision the file
// merged last wins. It also returns the number of files parsed.
func ScanDir(ctx context.Context, opts Options, logger *zap.Logger) (SizeMap, int, error) {
	dir, err := filepath.Abs(opts.Dir)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to get absolute path: %w", err)
	}

	info, err := os.Stat(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, 0, fmt.Errorf("%w: %w", ErrInputNotFound, err)
		}
		return nil, 0, fmt.Errorf("cannot stat report directory: %w", err)
	}
	if !info.IsDir() {
		return nil, 0, fmt.Errorf("%w: %s is not a directory", ErrInputNotFound, dir)
	}

	fileFilter := ignore.New(logger)
	fileFilter.CompileLines(opts.IgnoreFiles...)
	pathFilter := ignore.New(logger)
	if opts.IgnoreFrom != "" {
		if err := pathFilter.CompileFile(opts.IgnoreFrom); err != nil {
			return nil, 0, fmt.Errorf("failed to load ignore file: %w", err)
		}
	}
	// Explicit patterns come last so their negations override the ignore file.
	pathFilter.CompileLines(opts.IgnorePaths...)

	collected, err := CollectReportFiles(dir, fileFilter, logger, opts.VerboseSkipped)
	if err != nil {
		return nil, 0, err
	}
	if len(collected.Binary) > 0 {
		logger.Warn("Detected binary files. These files are not parsed.",
			zap.Int("binaryFileCount", len(collected.Binary)),
			zap.Strings("binaryFiles", collected.Binary))
	}

	perFile, err := ProcessReportsConcurrently(ctx, collected.Reports, opts.Workers, opts.Malformed, logger)
	if err != nil {
		return nil, 0, err
	}

	sizes := SizeMap{}
	for i, fileSizes := range perFile {
		for path, size := range fileSizes {
			if pathFilter.Matches(path) {
				if opts.VerboseSkipped {
					logger.Debug("Block path matches ignore pattern", zap.String("path", path))
				}
				continue
			}
			if _, seen := sizes[path]; seen {
				logger.Debug("Block path redefined by later report",
					zap.String("path", path),
					zap.String("file", collected.Reports[i]))
			}
			sizes[path] = size
		}
	}
	return sizes, len(collected.Reports), nil
}
