// Package log configures structured logging for the bncalc command.
//
// Records go through log/slog. The text format is rendered by tint and is
// coloured only when writing to a terminal; json and logfmt use the standard
// slog handlers.
package log

import (
	"github.com/spf13/pflag"
)

const (
	FormatText   = "text"
	FormatJSON   = "json"
	FormatLogfmt = "logfmt"

	defaultLevel = "warn"
)

var (
	// logFormat is the configured log format.
	logFormat = FormatText

	// logLevel is the configured log level.
	logLevel = defaultLevel
)

// RegisterFlags installs log flags on the given FlagSet.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.StringVar(&logFormat, "log-fmt", FormatText, "format for log output: text, json or logfmt")
	fs.StringVar(&logLevel, "log-level", defaultLevel, "minimum logging level: debug, info, warn, or error")
}
