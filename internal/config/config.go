// Package config resolves app configuration from an optional YAML file and
// the environment. Environment variables always win.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds the runtime settings for the app.
type Config struct {
	// DBPath is the SQLite database file. Empty means the default XDG path.
	DBPath string `yaml:"db_path"`

	// APIURL is the remote backend base URL. When set, scores and progress
	// go to the backend instead of the local database.
	APIURL string `yaml:"api_url"`

	// Player is the default player name used when --user is not given.
	Player string `yaml:"player"`
}

// Load resolves configuration: defaults, then the config file, then .env,
// then process environment.
func Load() (Config, error) {
	cfg := Config{Player: "invitado"}

	path, err := defaultConfigPath()
	if err == nil {
		if fileCfg, err := loadFile(path); err == nil {
			merge(&cfg, fileCfg)
		} else if !os.IsNotExist(err) {
			return cfg, err
		}
	}

	// .env in the working directory, if present. Missing file is fine.
	_ = godotenv.Load()

	if v := os.Getenv("SUMAS_DB"); v != "" {
		cfg.DBPath = v
	}
	if v := os.Getenv("SUMAS_API_URL"); v != "" {
		cfg.APIURL = v
	}
	if v := os.Getenv("SUMAS_PLAYER"); v != "" {
		cfg.Player = v
	}

	return cfg, nil
}

func loadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

func merge(dst *Config, src Config) {
	if src.DBPath != "" {
		dst.DBPath = src.DBPath
	}
	if src.APIURL != "" {
		dst.APIURL = src.APIURL
	}
	if src.Player != "" {
		dst.Player = src.Player
	}
}

// defaultConfigPath resolves $XDG_CONFIG_HOME/sumasrestas/config.yaml,
// falling back to ~/.config.
func defaultConfigPath() (string, error) {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "sumasrestas", "config.yaml"), nil
}
