// File: pkg/bundle/reader.go
package bundle

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"go.uber.org/zap"
)

// ReadLines reads a report file and returns its lines with their terminators kept.
func ReadLines(filePath string) ([]string, error) {
	file, err := os.Open(filePath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %w", ErrInputNotFound, err)
		}
		return nil, fmt.Errorf("error opening report %s: %w", filePath, err)
	}
	defer file.Close()

	return splitLines(bufio.NewReader(file))
}

// splitLines reads r to the end, splitting after every '\n'.
func splitLines(r *bufio.Reader) ([]string, error) {
	var lines []string
	for {
		line, err := r.ReadString('\n')
		if line != "" {
			lines = append(lines, line)
		}
		if errors.Is(err, io.EOF) {
			return lines, nil
		}
		if err != nil {
			return nil, fmt.Errorf("error reading report: %w", err)
		}
	}
}

// ProcessReportFile reads a single report file and extracts its block sizes.
func ProcessReportFile(filePath string, policy MalformedPolicy, logger *zap.Logger) (SizeMap, error) {
	logger.Debug("Processing report file", zap.String("filePath", filePath))

	lines, err := ReadLines(filePath)
	if err != nil {
		logger.Error("Failed to read report file", zap.String("filePath", filePath), zap.Error(err))
		return nil, err
	}

	sizes, err := ExtractBlocks(lines, policy)
	if err != nil {
		var malformed *MalformedHeaderError
		if errors.As(err, &malformed) {
			malformed.File = filePath
		}
		logger.Error("Failed to extract blocks", zap.String("filePath", filePath), zap.Error(err))
		return nil, err
	}

	logger.Debug("Extracted blocks from report file",
		zap.String("filePath", filePath),
		zap.Int("lineCount", len(lines)),
		zap.Int("blockCount", len(sizes)))
	return sizes, nil
}
