package main

import (
	"io"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// newLogger builds a console logger writing to w at the named level.
// Unknown levels fall back to info.
func newLogger(level string, w io.Writer) *zap.Logger {
	atom := zap.NewAtomicLevel()
	switch strings.ToLower(level) {
	case "debug":
		atom.SetLevel(zap.DebugLevel)
	case "warn", "warning":
		atom.SetLevel(zap.WarnLevel)
	case "error":
		atom.SetLevel(zap.ErrorLevel)
	default:
		atom.SetLevel(zap.InfoLevel)
	}

	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.EncodeLevel = zapcore.CapitalLevelEncoder
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), zapcore.AddSync(w), atom)

	return zap.New(core)
}
