// Package logger builds the zap logger used for diagnostics.
// Diagnostics never go to stdout, which carries the report.
package logger

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"hostreport/internal/conf"
)

// New returns a console logger writing to stderr, or to a rotating file when
// cfg.File is set
func New(cfg conf.Log) (*zap.Logger, error) {
	if cfg.File == "" {
		return newLogger(cfg.Level, zapcore.Lock(os.Stderr))
	}
	return newLogger(cfg.Level, zapcore.AddSync(&lumberjack.Logger{
		Filename:   cfg.File,
		MaxSize:    cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAgeDays,
	}))
}

// NewWithWriter returns a console logger writing to w
func NewWithWriter(level string, w io.Writer) (*zap.Logger, error) {
	return newLogger(level, zapcore.AddSync(w))
}

func newLogger(level string, ws zapcore.WriteSyncer) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("failed to parse log level: %w", err)
	}

	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), ws, lvl)
	return zap.New(core), nil
}
