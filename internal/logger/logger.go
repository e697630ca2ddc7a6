package logger

import (
	"io"
	"log"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	Info    = discard()
	Warn    = discard()
	Debug   = discard()
	Verbose = discard()
	Error   = discard()
	Always  = discard() // Always logs to file regardless of log level

	// Current log level for filtering
	currentLogLevel string

	base      = zap.NewNop()
	closeFile = func() {}
)

func Init() error {
	return InitWithLevel("info")
}

func InitWithLevel(logLevel string) error {
	return InitWithConfig(logLevel, "approxbench.log")
}

// InitWithConfig routes every level to logFilePath through zap. Error also
// goes to stderr; Always ignores the level.
func InitWithConfig(logLevel, logFilePath string) error {
	currentLogLevel = logLevel

	logFile, closer, err := zap.Open(logFilePath)
	if err != nil {
		return err
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encCfg.EncodeLevel = zapcore.CapitalLevelEncoder
	enc := zapcore.NewConsoleEncoder(encCfg)

	level := zap.NewAtomicLevelAt(zapLevel(logLevel))
	core := zapcore.NewTee(
		zapcore.NewCore(enc, logFile, level),
		zapcore.NewCore(enc, zapcore.Lock(os.Stderr), zapcore.ErrorLevel),
	)

	closeFile()
	closeFile = closer
	base = zap.New(core, zap.AddCaller())
	alwaysLog := zap.New(zapcore.NewCore(enc, logFile, zapcore.DebugLevel))

	Info = stdLog(base, zapcore.InfoLevel)
	Warn = stdLog(base, zapcore.WarnLevel)
	Debug = stdLog(base, zapcore.DebugLevel)
	Error = stdLog(base, zapcore.ErrorLevel)
	Always = stdLog(alwaysLog, zapcore.InfoLevel)

	// zap has nothing below debug, so verbose is gated here
	if shouldLog("verbose") {
		Verbose = stdLog(base, zapcore.DebugLevel)
	} else {
		Verbose = discard()
	}

	return nil
}

// L returns the structured logger behind the level streams.
func L() *zap.Logger {
	return base
}

// Close flushes buffered entries and releases the log file.
func Close() {
	_ = base.Sync()
	closeFile()
	closeFile = func() {}
}

func stdLog(l *zap.Logger, level zapcore.Level) *log.Logger {
	sl, err := zap.NewStdLogAt(l, level)
	if err != nil {
		return zap.NewStdLog(l)
	}
	return sl
}

func discard() *log.Logger {
	return log.New(io.Discard, "", 0)
}

func zapLevel(level string) zapcore.Level {
	switch level {
	case "error":
		return zapcore.ErrorLevel
	case "warn":
		return zapcore.WarnLevel
	case "debug", "verbose":
		return zapcore.DebugLevel
	default:
		return zapcore.InfoLevel
	}
}

// shouldLog determines if a log level should be active
func shouldLog(level string) bool {
	levels := map[string]int{
		"error":   0,
		"warn":    1,
		"info":    2,
		"debug":   3,
		"verbose": 4,
	}

	currentLevel, exists := levels[currentLogLevel]
	if !exists {
		currentLevel = 2 // default to info
	}

	requiredLevel, exists := levels[level]
	if !exists {
		return false
	}

	return currentLevel >= requiredLevel
}
