package io

import (
	"io"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/sprout/pkg/body"
	"github.com/matzehuels/sprout/pkg/errors"
)

// DecodeConfig decodes TOML from r on top of [body.DefaultConfig] and
// validates the result.
func DecodeConfig(r io.Reader) (body.Config, error) {
	cfg := body.DefaultConfig()
	md, err := toml.NewDecoder(r).Decode(&cfg)
	if err != nil {
		return body.Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "decode config")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return body.Config{}, errors.New(errors.ErrCodeInvalidConfig, "unknown config keys: %s", strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return body.Config{}, err
	}
	return cfg, nil
}

// LoadConfig reads a TOML configuration file at path.
func LoadConfig(path string) (body.Config, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return body.Config{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
		}
		return body.Config{}, errors.Wrap(errors.ErrCodeInvalidPath, err, "open %s", path)
	}
	defer f.Close()
	return DecodeConfig(f)
}

// EncodeConfig writes cfg as TOML.
func EncodeConfig(w io.Writer, cfg body.Config) error {
	return toml.NewEncoder(w).Encode(cfg)
}
