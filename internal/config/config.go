package config

import (
	"errors"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

const defaultDatabasePath = "quiz_game.db"

type Config struct {
	Database struct {
		// Path of the SQLite file. Empty keeps everything in memory
		// for the current run.
		Path string `yaml:"path"`
	} `yaml:"database"`
	Auth struct {
		BcryptCost int `yaml:"bcrypt_cost"`
	} `yaml:"auth"`
}

// Load reads YAML config from path. A missing file is not an error for
// a desktop game; the built-in defaults apply.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Default returns the configuration used when no file is present.
func Default() Config {
	cfg := Config{}
	cfg.Database.Path = defaultDatabasePath
	return cfg
}
