// Package logging builds the zap loggers used by the command line tool.
// The command passes stderr so logs never mix with the literal on stdout.
package logging

import (
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Level returns the minimum level for the given verbosity.
func Level(verbose bool) zapcore.Level {
	if verbose {
		return zapcore.DebugLevel
	}
	return zapcore.WarnLevel
}

// New creates a console logger writing to w. Timestamps are omitted.
func New(w io.Writer, verbose bool) *zap.Logger {
	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.TimeKey = ""
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encCfg),
		zapcore.AddSync(w),
		Level(verbose),
	)
	return zap.New(core)
}
