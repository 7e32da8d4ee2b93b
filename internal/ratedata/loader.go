// Package ratedata loads tiered account schedules from CSV and YAML sources
// and normalizes them for the allocator.
package ratedata

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/fin-tools/depositmax/internal/allocator"
)

// Loader reads account schedules. Parsing problems that affect a single tier
// or row are reported as warnings rather than errors so one bad cell cannot
// take down a whole rate sheet.
type Loader struct {
	logger *zap.Logger
}

// NewLoader constructs a Loader. A nil logger is replaced with a no-op logger.
func NewLoader(logger *zap.Logger) *Loader {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Loader{logger: logger}
}

// LoadFile reads the schedule file at path, dispatching on its extension.
func (l *Loader) LoadFile(path string) ([]allocator.Account, []string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open rate file: %w", err)
	}
	defer file.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return l.LoadCSV(file)
	case ".yaml", ".yml":
		return l.LoadYAML(file)
	default:
		return nil, nil, fmt.Errorf("unsupported rate file extension %q", filepath.Ext(path))
	}
}
