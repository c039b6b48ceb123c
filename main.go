package main

import (
	"log"
	"os"
	"strings"

	"linecount/cmd"
	"linecount/pkg/logging"

	"go.uber.org/zap"
	"golang.org/x/term"
)

func main() {
	code := cmd.Execute(os.Args[1:], os.Stdout, os.Stderr)
	syncLogger(logging.Logger)
	os.Exit(code)
}

// syncLogger flushes logger. Syncing a pipe or a character device that is not
// a terminal fails with "invalid argument", so only terminals and regular
// files are synced and that error is ignored.
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
