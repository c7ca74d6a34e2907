package util

import (
	"os"
	"sync"
)

// LoggerOptions selects where the global logger writes.
type LoggerOptions struct {
	Level   string
	File    string // empty disables file logging
	Console bool   // mirror entries to stderr
	Format  LogFormat
}

var (
	globalLogger LoggerInterface
	globalMu     sync.RWMutex
)

// InitLogger replaces the global logger. Any previous logger is closed.
func InitLogger(opts LoggerOptions) error {
	format := opts.Format
	if format == "" {
		format = FormatText
	}

	var outputs []Output
	if opts.Console {
		outputs = append(outputs, NewConsoleOutput(os.Stderr, format))
	}
	if opts.File != "" {
		fileOutput, err := NewFileOutput(opts.File, format)
		if err != nil {
			return err
		}
		outputs = append(outputs, fileOutput)
	}

	SetLogger(NewLogger(opts.Level, outputs...))
	return nil
}

// SetLogger installs logger as the global logger, closing the previous one.
func SetLogger(logger LoggerInterface) {
	globalMu.Lock()
	previous := globalLogger
	globalLogger = logger
	globalMu.Unlock()

	if previous != nil {
		previous.Close()
	}
}

// CloseLogger flushes and drops the global logger.
func CloseLogger() {
	SetLogger(nil)
}

func current() LoggerInterface {
	globalMu.RLock()
	defer globalMu.RUnlock()
	return globalLogger
}

func LogInfo(msg string, fields ...Field) {
	if l := current(); l != nil {
		l.Info(msg, fields...)
	}
}

func LogInfof(format string, args ...interface{}) {
	if l := current(); l != nil {
		l.Infof(format, args...)
	}
}

func LogDebug(msg string, fields ...Field) {
	if l := current(); l != nil {
		l.Debug(msg, fields...)
	}
}

func LogDebugf(format string, args ...interface{}) {
	if l := current(); l != nil {
		l.Debugf(format, args...)
	}
}

func LogWarn(msg string, fields ...Field) {
	if l := current(); l != nil {
		l.Warn(msg, fields...)
	}
}

func LogWarnf(format string, args ...interface{}) {
	if l := current(); l != nil {
		l.Warnf(format, args...)
	}
}

func LogError(msg string, fields ...Field) {
	if l := current(); l != nil {
		l.Error(msg, fields...)
	}
}

func LogErrorf(format string, args ...interface{}) {
	if l := current(); l != nil {
		l.Errorf(format, args...)
	}
}
