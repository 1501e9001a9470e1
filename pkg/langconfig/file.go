package langconfig

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"path"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Load reads a configuration file from fsys.
// The format is picked by extension: .yaml, .yml, .toml or .json.
func Load(fsys fs.FS, name string) (Config, error) {
	var unmarshal func([]byte, any) error

	switch strings.ToLower(path.Ext(name)) {
	case ".yaml", ".yml":
		unmarshal = yaml.Unmarshal
	case ".toml":
		unmarshal = toml.Unmarshal
	case ".json":
		unmarshal = json.Unmarshal
	default:
		return Config{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, name)
	}

	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return Config{}, fmt.Errorf("reading %q: %w", name, err)
	}

	var cfg Config
	if err := unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("%w: parsing %q: %s", ErrInvalidFile, name, err)
	}

	return cfg, nil
}

// FileProvider returns a Provider that re-reads the file on every call.
// When the file cannot be loaded the zero Config is returned and onError,
// if not nil, receives the error.
func FileProvider(fsys fs.FS, name string, onError func(error)) Provider {
	return ProviderFunc(func() Config {
		cfg, err := Load(fsys, name)
		if err != nil {
			if onError != nil {
				onError(err)
			}
			return Config{}
		}
		return cfg
	})
}
