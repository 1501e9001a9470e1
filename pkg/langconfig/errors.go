package langconfig

import "errors"

var (
	ErrUnsupportedFormat = errors.New("langconfig: unsupported file format")
	ErrInvalidFile       = errors.New("langconfig: invalid configuration file")
	ErrEnvParse          = errors.New("langconfig: failed to parse environment")
	ErrDotEnv            = errors.New("langconfig: failed to load .env file")
)
