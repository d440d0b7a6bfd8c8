package logger

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

type (
	Logger struct {
		zerolog.Logger
	}

	LoggerOptions struct {
		Debug bool
	}

	logLevel string
)

const (
	DebugLevel logLevel = "DEBUG"
	InfoLevel  logLevel = "INFO"
	WarnLevel  logLevel = "WARN"
	ErrorLevel logLevel = "ERROR"
)

func NewLogger(options LoggerOptions) *Logger {
	var output io.Writer = os.Stdout
	var logLevel = zerolog.InfoLevel
	if options.Debug {
		logLevel = zerolog.DebugLevel
	}

	zerolog.TimestampFieldName = "T"
	zerolog.LevelFieldName = "L"
	zerolog.MessageFieldName = "M"
	zerolog.LevelDebugValue = string(DebugLevel)
	zerolog.LevelInfoValue = string(InfoLevel)
	zerolog.LevelWarnValue = string(WarnLevel)
	zerolog.LevelErrorValue = string(ErrorLevel)

	logger := zerolog.New(output).
		Level(logLevel).
		With().
		Timestamp().
		Logger()

	return &Logger{logger}
}

// SpawnForPass attaches the fully-qualified pass name every pass and
// the pass manager log through (§1.1): pass entry/exit, skip
// decisions, and rebuild-of-cached-state events are Debug lines,
// recoverable diagnostics are Warn.
func (l *Logger) SpawnForPass(passName string) *Logger {
	return &Logger{l.With().Str("pass", passName).Logger()}
}

// SpawnForKernel attaches the kernel name a KernelTransform is running
// against, for logging emitted once per kernel within a pass.
func (l *Logger) SpawnForKernel(kernelName string) *Logger {
	return &Logger{l.With().Str("kernel", kernelName).Logger()}
}

// SpawnForRun attaches the UUID passmgr.Manager.Compile stamps on a
// single compilation, generalizing the teacher's per-request ID
// attached by requestWrapper in internal/server/router/middleware.go.
func (l *Logger) SpawnForRun(runID string) *Logger {
	return &Logger{l.With().Str("run", runID).Logger()}
}
