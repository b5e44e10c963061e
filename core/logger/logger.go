// Package logger declares the logging contract used across the solver core.
// Implementations live under infra/logger so core packages never depend on a
// concrete logging library.
package logger

// Logger exposes leveled logging. Debugw carries structured fields for
// solver telemetry (step counts, scores, temperatures).
type Logger interface {
	Debugf(format string, args ...any)
	Debugw(msg string, fields map[string]any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// Nop discards all log output. It is the default for solvers constructed
// without an explicit logger.
type Nop struct{}

func (Nop) Debugf(string, ...any)         {}
func (Nop) Debugw(string, map[string]any) {}
func (Nop) Infof(string, ...any)          {}
func (Nop) Warnf(string, ...any)          {}
func (Nop) Errorf(string, ...any)         {}
