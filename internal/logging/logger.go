// Package logging provides the structured Logger implementation threaded
// through the device, port and core layers.
package logging

import (
	"log"
	"os"
)

// Logger matches the core's gnss.Logger contract plus a Printf method for
// unstructured host-level messages, mirroring the logging interface shape
// used throughout the hardware drivers this repository descends from.
type Logger interface {
	Printf(format string, args ...interface{})
	Debugf(format string, args ...interface{})
	Infof(format string, args ...interface{})
	Warnf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
}

// StdLogger wraps the standard library logger with leveled prefixes.
type StdLogger struct {
	logger *log.Logger
	debug  bool
}

// NewStdLogger returns a Logger writing to os.Stderr. debug controls
// whether Debugf output is emitted.
func NewStdLogger(debug bool) *StdLogger {
	return &StdLogger{
		logger: log.New(os.Stderr, "", log.LstdFlags|log.Lmicroseconds),
		debug:  debug,
	}
}

func (l *StdLogger) Printf(format string, args ...interface{}) {
	l.logger.Printf(format, args...)
}

func (l *StdLogger) Debugf(format string, args ...interface{}) {
	if l.debug {
		l.logger.Printf("DEBUG "+format, args...)
	}
}

func (l *StdLogger) Infof(format string, args ...interface{}) {
	l.logger.Printf("INFO "+format, args...)
}

func (l *StdLogger) Warnf(format string, args ...interface{}) {
	l.logger.Printf("WARN "+format, args...)
}

func (l *StdLogger) Errorf(format string, args ...interface{}) {
	l.logger.Printf("ERROR "+format, args...)
}
