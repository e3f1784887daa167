// Package logging builds the two loggers the game uses: a charmbracelet/log
// console logger for the CLI and SSH server, and a zap event log written to a
// rotating file, since a full-screen session owns the terminal.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/vovakirdan/tui-breakout/internal/config"
)

// DefaultEventLogPath is where session events go unless --log overrides it.
const DefaultEventLogPath = "~/.arcade/breakout.log"

// FileOptions controls the rotating event log.
type FileOptions struct {
	Path       string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Level      zapcore.Level
}

// DefaultFileOptions returns 10MB files, 3 backups kept for a week.
func DefaultFileOptions() FileOptions {
	return FileOptions{
		Path:       DefaultEventLogPath,
		MaxSizeMB:  10,
		MaxBackups: 3,
		MaxAgeDays: 7,
		Level:      zapcore.InfoLevel,
	}
}

// NewEventLogger opens the rotating event log. The returned closer flushes
// buffered entries and closes the file.
func NewEventLogger(opts FileOptions) (*zap.SugaredLogger, func(), error) {
	path, err := config.ExpandPath(opts.Path)
	if err != nil {
		return nil, nil, fmt.Errorf("logging: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("logging: cannot create directory for %s: %w", path, err)
	}

	lj := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    opts.MaxSizeMB,
		MaxBackups: opts.MaxBackups,
		MaxAge:     opts.MaxAgeDays,
	}

	logger := zap.New(newCore(zapcore.AddSync(lj), opts.Level), zap.AddCaller())
	closer := func() {
		_ = logger.Sync()
		_ = lj.Close()
	}
	return logger.Sugar(), closer, nil
}

// NewWriterEventLogger writes session events to w. Used by tests and by
// frontends that already own a log destination.
func NewWriterEventLogger(w io.Writer, level zapcore.Level) *zap.SugaredLogger {
	return zap.New(newCore(zapcore.AddSync(w), level)).Sugar()
}

func newCore(ws zapcore.WriteSyncer, level zapcore.Level) zapcore.Core {
	encCfg := zapcore.EncoderConfig{
		TimeKey:       "ts",
		LevelKey:      "level",
		NameKey:       "logger",
		CallerKey:     "caller",
		MessageKey:    "msg",
		StacktraceKey: "stack",
		LineEnding:    zapcore.DefaultLineEnding,
		EncodeLevel:   zapcore.CapitalLevelEncoder,
		EncodeTime:    zapcore.ISO8601TimeEncoder,
		EncodeCaller:  zapcore.ShortCallerEncoder,
	}
	return zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), ws, level)
}

// NewConsole returns a timestamped console logger with the given prefix.
func NewConsole(w io.Writer, prefix string) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
}
