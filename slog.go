package eulerbot

import (
	"fmt"
	"io"
	"log"
	"os"
)

const (
	defaultLogPrefix = "eulerbot: "
	defaultLogFlags  = log.Lshortfile | log.LstdFlags
)

// SLogger is the eulerbot internal logging interface. It's passed down to integrations
// so that everything logs the same way
type SLogger interface {
	Printf(format string, v ...interface{})

	Debugf(format string, v ...interface{})
}

type sLogger struct {
	logger *log.Logger
	debug  bool
}

// NewSLogger creates a new eulerbot logger provided with a standard logger and a debug flag
func NewSLogger(log *log.Logger, debug bool) SLogger {
	sl := new(sLogger)
	sl.debug = debug
	sl.logger = log
	return sl
}

// NewDefaultLogger returns the default standard logger writing to w with the eulerbot prefix
func NewDefaultLogger(w io.Writer) *log.Logger {
	if w == nil {
		w = os.Stdout
	}

	return log.New(w, defaultLogPrefix, defaultLogFlags)
}

// Debugf logs a debug line after checking if the configuration is in debug mode
func (sl *sLogger) Debugf(format string, v ...interface{}) {
	if sl.debug {
		sl.logger.Output(2, fmt.Sprintf(format, v...))
	}
}

// Printf logs a line by delegating the call to Output
func (sl *sLogger) Printf(format string, v ...interface{}) {
	sl.logger.Output(2, fmt.Sprintf(format, v...))
}
