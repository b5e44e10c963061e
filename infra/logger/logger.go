package logger

import corelogger "github.com/kherve/classplan/core/logger"

// Logger mirrors the core logging contract.
type Logger = corelogger.Logger

// New returns a Logger for the given component. The output format is
// selected through the APP_ENV environment variable.
func New(component string) Logger {
	return NewZerologLogger(component)
}
