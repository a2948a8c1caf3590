// Package leadlog persists accepted leads to a durable append-only log:
// one self-contained JSON record per line. The log is independent of
// downstream notification and email outcomes.
package leadlog

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/inlethq/leadgate/internal/domain"
)

const logFileMode = 0o600

// Log appends leads to a single file. Safe for concurrent use.
type Log struct {
	mu   sync.Mutex
	file *os.File
}

// Open creates the log file (and its directory) if needed and opens it
// in append-only mode.
func Open(path string) (*Log, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return nil, fmt.Errorf("create lead log directory: %w", err)
		}
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, logFileMode)
	if err != nil {
		return nil, fmt.Errorf("open lead log %s: %w", path, err)
	}

	return &Log{file: file}, nil
}

// Append writes one lead as a single JSON line and syncs it to disk.
func (l *Log) Append(lead domain.Lead) error {
	line, err := json.Marshal(lead)
	if err != nil {
		return fmt.Errorf("encode lead %s: %w", lead.ID, err)
	}
	line = append(line, '\n')

	l.mu.Lock()
	defer l.mu.Unlock()

	if _, err := l.file.Write(line); err != nil {
		return fmt.Errorf("append lead %s: %w", lead.ID, err)
	}
	if err := l.file.Sync(); err != nil {
		return fmt.Errorf("sync lead log: %w", err)
	}

	return nil
}

// Close closes the underlying file.
func (l *Log) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.file.Close()
}
