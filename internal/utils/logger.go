package utils

import (
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/natefinch/lumberjack"
	"github.com/rs/zerolog"
)

// DefaultLogVerbosity is the verbosity used until SetLogVerbosity is called.
// Verbosity runs from 0 (fatal only) to 4 (debug).
const DefaultLogVerbosity = 3

var (
	logLock         sync.RWMutex
	logWriters      = []io.Writer{zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05.000"}}
	zeroLoggerLevel = verbosityToLevel(DefaultLogVerbosity)
	zeroLogger      *zerolog.Logger
)

// Logger returns the process wide zerolog logger.
func Logger() *zerolog.Logger {
	logLock.RLock()
	l := zeroLogger
	logLock.RUnlock()
	if l != nil {
		return l
	}

	logLock.Lock()
	defer logLock.Unlock()
	if zeroLogger == nil {
		zeroLogger = newZeroLogger()
	}
	return zeroLogger
}

// SetLogVerbosity specifies the verbosity of the global logger.
func SetLogVerbosity(verbosity int) {
	logLock.Lock()
	defer logLock.Unlock()

	zeroLoggerLevel = verbosityToLevel(verbosity)
	zeroLogger = newZeroLogger()
}

// AddLogFile creates a rotating log file and appends it to the log writers.
// maxSize is in megabytes.
func AddLogFile(path string, maxSize int) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	AddLogWriter(&lumberjack.Logger{
		Filename: path,
		MaxSize:  maxSize,
		Compress: true,
	})
	return nil
}

// AddLogWriter adds w as an additional plain JSON sink of the global logger.
func AddLogWriter(w io.Writer) {
	logLock.Lock()
	defer logLock.Unlock()

	logWriters = append(logWriters, w)
	zeroLogger = newZeroLogger()
}

// SetLogWriters replaces every sink of the global logger, including the console.
func SetLogWriters(ws ...io.Writer) {
	logLock.Lock()
	defer logLock.Unlock()

	logWriters = append([]io.Writer(nil), ws...)
	zeroLogger = newZeroLogger()
}

func newZeroLogger() *zerolog.Logger {
	var w io.Writer
	switch len(logWriters) {
	case 0:
		w = io.Discard
	case 1:
		w = logWriters[0]
	default:
		w = zerolog.MultiLevelWriter(logWriters...)
	}
	logger := zerolog.New(w).Level(zeroLoggerLevel).With().Timestamp().Logger()
	return &logger
}

// verbosityToLevel maps 0..4 onto zerolog levels: 3 is info, 4 is debug.
func verbosityToLevel(verbosity int) zerolog.Level {
	if verbosity < 0 {
		verbosity = 0
	}
	if verbosity > 4 {
		verbosity = 4
	}
	return zerolog.Level(4 - verbosity)
}
