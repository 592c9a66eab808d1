// Package logging builds the file-backed zap logger shared by the frontends.
// The terminal owns stdout, so every record goes to a file under Dir.
package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	// FileName is the active log inside Dir
	FileName = "fireworks.log"
	// MaxSize triggers rotation at startup
	MaxSize = 10 * 1024 * 1024

	rotatedLayout = "20060102-150405"
)

// Config selects level, encoding and destination
type Config struct {
	Enabled bool
	Level   string
	// "json" or "console"
	Format string
	Dir    string
}

// DefaultConfig returns disabled console logging into ./logs
func DefaultConfig() Config {
	return Config{
		Enabled: false,
		Level:   "info",
		Format:  "console",
		Dir:     "logs",
	}
}

// New builds the logger and redirects the standard logger into it
// When disabled it returns a no-op logger and discards standard log output
// The returned function flushes and restores the standard logger
func New(cfg Config) (*zap.Logger, func(), error) {
	if !cfg.Enabled {
		log.SetOutput(io.Discard)
		return zap.NewNop(), func() {}, nil
	}

	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, nil, fmt.Errorf("create log dir: %w", err)
	}
	path := filepath.Join(cfg.Dir, FileName)
	if err := rotate(path, time.Now()); err != nil {
		return nil, nil, fmt.Errorf("rotate log: %w", err)
	}

	var level zapcore.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = zapcore.InfoLevel
	}

	var zapCfg zap.Config
	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
		zapCfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
		zapCfg.EncoderConfig.ConsoleSeparator = "  "
		zapCfg.DisableCaller = true
		zapCfg.DisableStacktrace = true
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)
	zapCfg.OutputPaths = []string{path}
	zapCfg.ErrorOutputPaths = []string{path}

	logger, err := zapCfg.Build()
	if err != nil {
		return nil, nil, fmt.Errorf("build logger: %w", err)
	}

	restore := zap.RedirectStdLog(logger)
	return logger, func() {
		_ = logger.Sync()
		restore()
	}, nil
}

// rotate renames an oversized log aside with a timestamp suffix
func rotate(path string, now time.Time) error {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return err
	}
	if info.Size() <= MaxSize {
		return nil
	}

	ext := filepath.Ext(path)
	base := path[:len(path)-len(ext)]
	return os.Rename(path, fmt.Sprintf("%s-%s%s", base, now.Format(rotatedLayout), ext))
}
