// Package logger writes the server's diagnostic log to a file under the
// user's home directory. Until Init is called, messages fall through to
// the standard logger's default destination (stderr).
package logger

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime/debug"
)

const (
	logDirName  = ".folletto-vault"
	logFileName = "server.log"

	// A log past this size is rotated to a single .old backup on startup.
	rotateAt = 10 << 20
)

var (
	logFile *os.File
	logPath string
)

// Init redirects the standard logger to ~/.folletto-vault/server.log,
// rotating an oversized log from a previous run first.
func Init() error {
	home, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("resolve home directory: %w", err)
	}

	dir := filepath.Join(home, logDirName)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create log directory: %w", err)
	}
	logPath = filepath.Join(dir, logFileName)

	if info, err := os.Stat(logPath); err == nil && info.Size() > rotateAt {
		// Best effort; a failed rotation just means a bigger log.
		_ = os.Rename(logPath, logPath+".old")
	}

	logFile, err = os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}

	log.SetOutput(logFile)
	log.SetFlags(log.Ldate | log.Ltime | log.Lmicroseconds | log.Lshortfile)

	LogInfo("logging to %s", logPath)
	return nil
}

// Close flushes and closes the log file, if one was opened.
func Close() {
	if logFile != nil {
		_ = logFile.Close()
		logFile = nil
	}
}

// LogInfo records an informational message.
func LogInfo(format string, args ...any) {
	log.Output(2, "[INFO] "+fmt.Sprintf(format, args...))
}

// LogError records an error.
func LogError(format string, args ...any) {
	log.Output(2, "[ERROR] "+fmt.Sprintf(format, args...))
}

// LogPanic records a recovered panic with its stack trace.
func LogPanic(r any) {
	log.Output(2, fmt.Sprintf("[PANIC] %v\n%s", r, debug.Stack()))
}

// GetLogPath returns the active log file path, empty before Init.
func GetLogPath() string {
	return logPath
}
