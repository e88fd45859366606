package config

import (
	"os"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/KirkDiggler/atlas-api/internal/errors"
)

// DefaultPath is read when CONFIG_PATH is unset
const DefaultPath = "./config.yaml"

// Load reads configuration from a YAML file and environment variables.
// Priority: ENV > YAML > env-default tags. The file path comes from
// CONFIG_PATH; a missing default file falls back to ENV and defaults only.
func Load() (*Config, error) {
	path := os.Getenv("CONFIG_PATH")
	explicitPath := path != ""
	if !explicitPath {
		path = DefaultPath
	}

	return LoadFile(path, explicitPath)
}

// LoadFile reads configuration from path. When required is false a missing
// file is not an error.
func LoadFile(path string, required bool) (*Config, error) {
	var cfg Config

	if _, err := os.Stat(path); err == nil {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, errors.Wrapf(err, "failed to read config %s", path)
		}
	} else if required {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "config file "+path+" not found")
	} else if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, errors.Wrap(err, "failed to read config from environment")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}
