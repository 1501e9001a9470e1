package langconfig

import (
	"errors"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// EnvOption configures environment parsing.
type EnvOption func(*envOptions)

type envOptions struct {
	prefix      string
	environment map[string]string
}

// WithPrefix prepends prefix to every variable name,
// e.g. "APP_" reads APP_LANGUAGES_REQUIRED.
func WithPrefix(prefix string) EnvOption {
	return func(o *envOptions) {
		o.prefix = prefix
	}
}

// WithEnvironment parses the given map instead of the process environment.
func WithEnvironment(vars map[string]string) EnvOption {
	return func(o *envOptions) {
		o.environment = vars
	}
}

// FromEnv parses the language lists from environment variables.
func FromEnv(opts ...EnvOption) (Config, error) {
	o := &envOptions{}
	for _, opt := range opts {
		opt(o)
	}

	cfg, err := env.ParseAsWithOptions[Config](env.Options{
		Prefix:      o.prefix,
		Environment: o.environment,
	})
	if err != nil {
		return Config{}, errors.Join(ErrEnvParse, err)
	}

	return cfg, nil
}

// EnvProvider returns a Provider that parses the environment on every call.
// Parse failures yield the zero Config, which resolves to the default language.
func EnvProvider(opts ...EnvOption) Provider {
	return ProviderFunc(func() Config {
		cfg, err := FromEnv(opts...)
		if err != nil {
			return Config{}
		}
		return cfg
	})
}

// LoadDotEnv loads variables from .env files into the process environment.
// Existing variables are not overridden. Defaults to ".env" when no file is given.
func LoadDotEnv(filenames ...string) error {
	if err := godotenv.Load(filenames...); err != nil {
		return errors.Join(ErrDotEnv, err)
	}
	return nil
}
