package main

import (
	"log"
	"os"
	"strings"

	"bundlesize/cmd"
	"bundlesize/pkg/logging"
	"bundlesize/pkg/version"

	"go.uber.org/zap"
	"golang.org/x/term"
)

func main() {
	logger, err := logging.Setup(false, version.AppName, version.Get().Version)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer syncLogger(logger)

	if err := cmd.Execute(logger); err != nil {
		syncLogger(logging.Logger)
		logger.Fatal("bundlesize execution failed", zap.Error(err))
	}
}

// syncLogger flushes the logger when stderr can be synced. Terminals and
// pipes report "invalid argument" on sync, which is ignored.
func syncLogger(logger *zap.Logger) {
	if !term.IsTerminal(int(os.Stderr.Fd())) && !isRegularFile(os.Stderr) {
		return
	}
	if syncErr := logger.Sync(); syncErr != nil {
		lowerErr := strings.ToLower(syncErr.Error())
		if !strings.Contains(lowerErr, "invalid argument") {
			log.Printf("Logger sync failed: %v", syncErr)
		}
	}
}

// isRegularFile checks if the given file is a regular file.
func isRegularFile(f *os.File) bool {
	fileInfo, err := f.Stat()
	if err != nil {
		return false
	}
	return fileInfo.Mode().IsRegular()
}
