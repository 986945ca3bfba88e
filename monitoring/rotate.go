package monitoring

import (
	"os"
	"path/filepath"

	"gopkg.in/natefinch/lumberjack.v2"
)

// RotatingWriter returns a size- and age-bounded rotating file writer
// for path, usable as one of logger.Logger's Output.Writer values
// (§4.15). Adapted from monitoring/logger.go's *lumberjack.Logger
// per log stream; here it is exposed
// directly as an io.Writer rather than wrapped in a second logging
// type, since the top-level logger package already owns formatting
// and leveling.
func RotatingWriter(path string, maxSizeMB, maxBackups, maxAgeDays int, compress bool) (*lumberjack.Logger, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	return &lumberjack.Logger{
		Filename:   path,
		MaxSize:    maxSizeMB,
		MaxBackups: maxBackups,
		MaxAge:     maxAgeDays,
		Compress:   compress,
	}, nil
}
