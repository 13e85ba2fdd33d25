package utils

import (
	"io"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

// TestLogRedirector sends the global logger's output to the testing object.
// It is useful when debugging, because it surfaces application log messages
// which are otherwise mixed into stderr of the test binary.
//
// Typical usage:
//
//	func TestMyFunc(t *testing.T) {
//		lrd := utils.NewTestLogRedirector(t, 4)
//		defer lrd.Close()
//
//		// Everything sent to utils.Logger() is printed onto the test log,
//		// until lrd.Close() is called at the end of the function.
//		utils.Logger().Debug().Str("audience", "world").Msg("hello")
//	}
type TestLogRedirector struct {
	t       testing.TB
	writers []io.Writer
	level   zerolog.Level
	closed  bool
}

// NewTestLogRedirector swaps the sinks and verbosity of the global logger.
// Caller shall ensure Close() is called when the redirector is no longer
// needed.
func NewTestLogRedirector(t testing.TB, verbosity int) *TestLogRedirector {
	logLock.Lock()
	r := &TestLogRedirector{
		t:       t,
		writers: logWriters,
		level:   zeroLoggerLevel,
	}
	logWriters = []io.Writer{r}
	zeroLoggerLevel = verbosityToLevel(verbosity)
	zeroLogger = newZeroLogger()
	logLock.Unlock()
	return r
}

// Write logs one encoded zerolog entry into the testing object.
func (redirector *TestLogRedirector) Write(p []byte) (int, error) {
	redirector.t.Log(strings.TrimRight(string(p), "\n"))
	return len(p), nil
}

// Close restores the original sinks and verbosity.
func (redirector *TestLogRedirector) Close() error {
	logLock.Lock()
	defer logLock.Unlock()

	if redirector.closed {
		return nil
	}
	redirector.closed = true
	logWriters = redirector.writers
	zeroLoggerLevel = redirector.level
	zeroLogger = newZeroLogger()
	return nil
}
