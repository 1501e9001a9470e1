package localized

import (
	"log/slog"

	"github.com/dmitrymomot/localized/internal"
)

// WithLanguages sets the language configuration source.
// The provider is read once per resolution call, so host-level changes
// apply to the next call.
//
// Example:
//
//	localized.New(
//	    localized.WithLanguages(langconfig.EnvProvider()),
//	)
func WithLanguages(p LanguageProvider) Option {
	return internal.WithLanguages(p)
}

// WithConfig sets a fixed language configuration.
func WithConfig(cfg Config) Option {
	return internal.WithConfig(cfg)
}

// WithLogger sets the logger for debug output.
// If nil, logging is disabled.
func WithLogger(l *slog.Logger) Option {
	return internal.WithLogger(l)
}

// WithTagName overrides the struct tag marking localized fields.
// Defaults to "localized".
func WithTagName(name string) Option {
	return internal.WithTagName(name)
}

// WithCycleDetection skips entities already visited during a call.
// Without it, self-referencing graphs must not be resolved with Deep.
func WithCycleDetection() Option {
	return internal.WithCycleDetection()
}
