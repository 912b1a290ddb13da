// File: pkg/report/file.go
package report

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"

	"bundlesize/pkg/bundle"

	"go.uber.org/zap"
)

// WriteFile renders result in the given format to outputPath, creating its
// parent directory when needed.
func WriteFile(outputPath string, format Format, result *bundle.Result, human bool, logger *zap.Logger) (err error) {
	logger.Debug("Writing report to output file", zap.String("outputFile", outputPath))

	if err := ensureDirectory(filepath.Dir(outputPath), logger); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	outFile, err := os.Create(outputPath)
	if err != nil {
		logger.Error("Failed to create output file", zap.String("file", outputPath), zap.Error(err))
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() {
		if closeErr := outFile.Close(); closeErr != nil {
			logger.Error("Failed to close output file", zap.String("file", outputPath), zap.Error(closeErr))
			if err == nil {
				err = fmt.Errorf("failed to close output file: %w", closeErr)
			}
		}
	}()

	writer := bufio.NewWriter(outFile)
	if err := Write(writer, format, result, human); err != nil {
		logger.Error("Failed to write report", zap.String("file", outputPath), zap.Error(err))
		return err
	}

	if err := writer.Flush(); err != nil {
		logger.Error("Failed to flush output file", zap.String("file", outputPath), zap.Error(err))
		return fmt.Errorf("failed to flush output: %w", err)
	}

	logger.Info("Wrote report", zap.String("outputFile", outputPath), zap.String("format", string(format)))
	return nil
}

// ensureDirectory ensures a directory exists, creating it if necessary.
func ensureDirectory(path string, logger *zap.Logger) error {
	if err := os.MkdirAll(path, os.ModePerm); err != nil {
		logger.Error("Failed to create directory", zap.String("path", path), zap.Error(err))
		return err
	}
	logger.Debug("Ensured directory exists", zap.String("path", path))
	return nil
}
