// Package logging constructs the zap loggers used across the solver,
// grounded on descheduler's zap.NewProduction()/NewDevelopment() usage —
// the only structured-logging library in the retrieved pack.
package logging

import "go.uber.org/zap"

// New returns a production zap logger, or a development logger (human
// readable, colorized level, caller/stack traces on warn+) when verbose is
// true.
func New(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

// Phase fields standardize the component name across every log line so a
// single run's log can be filtered by phase (spec.md §6 output log
// parsing depends on a few fixed literal markers; this is the
// structured-logging complement to those, not a replacement).
func Phase(name string) zap.Field {
	return zap.String("phase", name)
}
