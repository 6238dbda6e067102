// Package config loads the lazyls configuration from YAML.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/chmouel/lazyls/internal/theme"
)

// AppConfig defines the global lazyls configuration options. Command-line
// flags override these; these override the built-in defaults.
type AppConfig struct {
	Theme       string `yaml:"theme"`
	ShowIcons   bool   `yaml:"show_icons"`
	Sort        string `yaml:"sort"`         // default sort field word, see listing.ParseSortField
	DirsFirst   bool   `yaml:"dirs_first"`
	Reverse     bool   `yaml:"reverse"`
	GitIgnore   bool   `yaml:"git_ignore"`   // hide entries matched by the repository's ignore rules
	Long        bool   `yaml:"long"`
	IgnoreGlobs string `yaml:"ignore_globs"` // pipe-separated glob list
	DebugLog    string `yaml:"debug_log"`
}

// DefaultConfig returns the default configuration values.
func DefaultConfig() *AppConfig {
	return &AppConfig{
		ShowIcons: true,
		Sort:      "name",
	}
}

func getConfigDir() string {
	if xdgConfigHome := os.Getenv("XDG_CONFIG_HOME"); xdgConfigHome != "" {
		return xdgConfigHome
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config")
}

// LoadConfig reads the application configuration from a YAML file. With an
// empty path it looks for config.yaml/config.yml under the lazyls config
// directory. A missing file is not an error; defaults are returned.
func LoadConfig(configPath string) (*AppConfig, error) {
	var paths []string
	if configPath != "" {
		expanded, err := ExpandPath(configPath)
		if err != nil {
			return DefaultConfig(), err
		}
		paths = []string{expanded}
	} else {
		configBase := filepath.Join(getConfigDir(), "lazyls")
		paths = []string{
			filepath.Join(configBase, "config.yaml"),
			filepath.Join(configBase, "config.yml"),
		}
	}

	cfg := DefaultConfig()
	for _, path := range paths {
		// #nosec G304 -- path comes from the user's own flag or config dir
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return DefaultConfig(), err
		}
		break
	}
	return cfg, nil
}

// ExpandPath expands a leading ~ and environment variables.
func ExpandPath(path string) (string, error) {
	if strings.HasPrefix(path, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		path = filepath.Join(home, path[1:])
	}
	return os.ExpandEnv(path), nil
}

// NormalizeThemeName returns the canonical theme name, or "" if unsupported.
func NormalizeThemeName(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	if theme.ByName(name) != nil {
		return name
	}
	return ""
}
