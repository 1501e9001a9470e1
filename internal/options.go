package internal

import (
	"log/slog"

	"github.com/dmitrymomot/localized/pkg/langconfig"
)

// Option configures a Localizer.
type Option func(*Localizer)

// WithLanguages sets the language configuration source.
// The provider is read once per resolution call.
func WithLanguages(p langconfig.Provider) Option {
	return func(l *Localizer) {
		if p != nil {
			l.languages = p
		}
	}
}

// WithConfig sets a fixed language configuration.
//
// Example:
//
//	localized.New(
//	    localized.WithConfig(langconfig.Config{
//	        Required: []string{"en"},
//	        Optional: []string{"de", "ar"},
//	    }),
//	)
func WithConfig(cfg langconfig.Config) Option {
	return WithLanguages(langconfig.Static(cfg))
}

// WithLogger sets the logger used for debug output.
// Defaults to a logger that discards everything.
func WithLogger(logger *slog.Logger) Option {
	return func(l *Localizer) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// WithTagName overrides the struct tag marking localized fields.
// Default: "localized".
func WithTagName(name string) Option {
	return func(l *Localizer) {
		if name != "" {
			l.tagName = name
		}
	}
}

// WithCycleDetection makes traversal skip entities already visited in the
// same call. Without it a self-referencing graph recurses until the stack
// is exhausted.
func WithCycleDetection() Option {
	return func(l *Localizer) {
		l.detectCycles = true
	}
}
