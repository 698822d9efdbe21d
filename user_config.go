package zerobot

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml"
)

// UserConfig is the TOML-serializable file an operator edits by hand: login
// credentials, which server/zone to join, and where to keep cached state.
// It is loaded and saved the way the teacher's whitelist.go treats its own
// TOML file: read-modify-write with defaults filled on a missing file.
type UserConfig struct {
	Name           string `toml:"name"`
	Password       string `toml:"password"`
	Server         string `toml:"server"`
	Zone           string `toml:"zone"`
	ShipPreference int    `toml:"ship_preference"`
	CacheDir       string `toml:"cache_dir"`
	LogLevel       string `toml:"log_level"`
}

// DefaultUserConfig returns the configuration a fresh install starts from,
// analogous to server.DefaultConfig() in the teacher.
func DefaultUserConfig() UserConfig {
	return UserConfig{
		Name:           "zerobot",
		Server:         "127.0.0.1:5000",
		Zone:           "",
		ShipPreference: -1,
		CacheDir:       "cache",
		LogLevel:       "info",
	}
}

// LoadUserConfig reads path, creating it with defaults if it doesn't yet
// exist.
func LoadUserConfig(path string) (UserConfig, error) {
	if strings.TrimSpace(path) == "" {
		return UserConfig{}, errors.New("config path must not be empty")
	}

	contents, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			cfg := DefaultUserConfig()
			if werr := cfg.Save(path); werr != nil {
				return UserConfig{}, werr
			}
			return cfg, nil
		}
		return UserConfig{}, fmt.Errorf("read config: %w", err)
	}

	cfg := DefaultUserConfig()
	if len(contents) != 0 {
		if err := toml.Unmarshal(contents, &cfg); err != nil {
			return UserConfig{}, fmt.Errorf("decode config: %w", err)
		}
	}
	return cfg, nil
}

// Save writes cfg to path, creating any missing parent directory.
func (cfg UserConfig) Save(path string) error {
	dir := filepath.Dir(path)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0777); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}
	encoded, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := os.WriteFile(path, encoded, 0644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
