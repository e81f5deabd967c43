// Package logging builds the tool's zap logger.
//
// The scan is silent by default: New returns a no-op logger unless verbose
// output was requested, in which case a console logger writes to the given
// stream (normally stderr) so stdout stays reserved for results.
package logging

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/term" //nolint:depguard // Required for TTY detection
)

// Key constants for structured log fields.
const (
	KeyCategory  = "category"
	KeyDisplay   = "display"
	KeyEntry     = "entry"
	KeyScreens   = "screens"
	KeySocket    = "socket"
	KeySocketDir = "socketDir"
)

// New returns a logger for the given verbosity writing to out.
func New(verbose bool, out *os.File) *zap.Logger {
	if !verbose || out == nil {
		return zap.NewNop()
	}

	return NewWithWriter(out, isTerminal(out))
}

// NewWithWriter returns a debug-level console logger on w.
// Level names are coloured when color is true.
func NewWithWriter(w zapcore.WriteSyncer, color bool) *zap.Logger {
	encoderConfig := zap.NewDevelopmentEncoderConfig()
	encoderConfig.TimeKey = ""
	encoderConfig.CallerKey = ""
	if color {
		encoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderConfig),
		zapcore.Lock(w),
		zapcore.DebugLevel,
	)

	return zap.New(core)
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd())) //nolint:gosec // File descriptors fit in int
}
