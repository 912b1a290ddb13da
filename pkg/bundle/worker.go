// File: pkg/bundle/worker.go
package bundle

import (
	"context"
	"runtime"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// ProcessReportsConcurrently parses files with at most maxWorkers goroutines.
// The returned slice is indexed like files, so callers can merge in a fixed order.
// maxWorkers below 1 means one worker per CPU.
func ProcessReportsConcurrently(ctx context.Context, files []string, maxWorkers int, policy MalformedPolicy, logger *zap.Logger) ([]SizeMap, error) {
	if maxWorkers <= 0 {
		maxWorkers = runtime.NumCPU()
		logger.Debug("Adjusted worker count", zap.Int("workers", maxWorkers))
	}

	results := make([]SizeMap, len(files))

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(maxWorkers)

	logger.Debug("Distributing report files to workers", zap.Int("workers", maxWorkers), zap.Int("files", len(files)))
	for i, file := range files {
		if egCtx.Err() != nil {
			break
		}
		i, file := i, file
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			sizes, err := ProcessReportFile(file, policy, logger)
			if err != nil {
				return err
			}
			results[i] = sizes
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	logger.Debug("All report files processed", zap.Int("processedFiles", len(files)))
	return results, nil
}
