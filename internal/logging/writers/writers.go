// Package writers resolves log output destinations. File destinations get
// size-based rotation so a long-running service does not grow its log
// without bound.
package writers

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"
)

// WriterType represents the type of writer to create
type WriterType string

const (
	WriterTypeStdout WriterType = "stdout"
	WriterTypeStderr WriterType = "stderr"
	WriterTypeFile   WriterType = "file"
)

// Rotation limits for file outputs.
const (
	maxSizeMB  = 50
	maxBackups = 5
	maxAgeDays = 28
)

// CreateWriter creates an io.Writer based on the output specification
// Supported formats:
//   - "stdout" or "" - writes to os.Stdout
//   - "stderr" - writes to os.Stderr
//   - "file:/path/to/file" - writes to a rotating file (creates directories if needed)
//   - "/path/to/file" - writes to a rotating file (creates directories if needed)
func CreateWriter(output string) (io.Writer, error) {
	switch {
	case output == "" || output == "stdout":
		return os.Stdout, nil
	case output == "stderr":
		return os.Stderr, nil
	case strings.HasPrefix(output, "file://"):
		filePath := strings.TrimPrefix(output, "file://")
		return createFileWriter(filePath)
	case isFilePath(output):
		return createFileWriter(output)
	default:
		return nil, fmt.Errorf("unsupported output format: %s", output)
	}
}

// isFilePath determines if the string represents a local file path
func isFilePath(path string) bool {
	// Reject URLs with schemes other than file://
	if strings.Contains(path, "://") && !strings.HasPrefix(path, "file://") {
		return false
	}

	// Check for path-like patterns
	return strings.Contains(path, "/") || strings.Contains(path, "\\")
}

// createFileWriter creates a rotating file writer, ensuring the directory
// exists first.
func createFileWriter(filePath string) (io.Writer, error) {
	dir := filepath.Dir(filePath)
	if dir != "." && dir != "/" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	return &lumberjack.Logger{
		Filename:   filePath,
		MaxSize:    maxSizeMB,
		MaxBackups: maxBackups,
		MaxAge:     maxAgeDays,
		Compress:   true,
	}, nil
}

// ParseWriterType determines the writer type from an output string
func ParseWriterType(output string) WriterType {
	if output == "" || output == "stdout" {
		return WriterTypeStdout
	}
	if output == "stderr" {
		return WriterTypeStderr
	}
	return WriterTypeFile
}
