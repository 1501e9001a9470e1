package langconfig

// Provider supplies the current language configuration.
// Implementations are read on every resolution call and must not be cached by callers
// that want host-level changes to apply immediately.
type Provider interface {
	Languages() Config
}

// ProviderFunc adapts a function to the Provider interface.
type ProviderFunc func() Config

// Languages calls f.
func (f ProviderFunc) Languages() Config {
	return f()
}

// Static returns a Provider that always yields cfg.
func Static(cfg Config) Provider {
	return ProviderFunc(func() Config { return cfg })
}
