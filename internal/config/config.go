// Package config loads the cx configuration.
//
// DESIGN: Configuration is optional. Built-in defaults are always valid;
// a global file (~/.config/cx/config.yaml) and a project file (.cx.yaml)
// overlay them in that order, so the project file wins. Values support
// ${VAR:-default} environment expansion before parsing.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"gopkg.in/yaml.v3"
)

// ProjectFile is the per-project configuration file name.
const ProjectFile = ".cx.yaml"

// Config holds truncation limits, output options and tool settings.
type Config struct {
	MaxLines   int  `yaml:"max_lines"`    // Lines kept before truncation
	MaxLineLen int  `yaml:"max_line_len"` // Characters kept per line
	ShowFooter bool `yaml:"show_footer"`  // Append the timing footer

	LsSkip       []string `yaml:"ls_skip"`        // Directories skipped by `cx ls`
	LsMaxDepth   int      `yaml:"ls_max_depth"`   // Tree depth for `cx ls`
	LsMaxEntries int      `yaml:"ls_max_entries"` // Entry cap for `cx ls`

	HistoryEnabled bool   `yaml:"history_enabled"` // Record invocations to the history db
	HistoryPath    string `yaml:"history_path"`    // Override db location (default ~/.config/cx/history.db)

	LogLevel string `yaml:"log_level"` // zerolog level: debug, info, warn, error
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		MaxLines:   150,
		MaxLineLen: 300,
		ShowFooter: true,
		LsSkip: []string{
			"target", "node_modules", ".git", "__pycache__",
			".DS_Store", "dist", "build", ".next", ".cache",
			"coverage", ".venv", "venv",
		},
		LsMaxDepth:     4,
		LsMaxEntries:   200,
		HistoryEnabled: true,
		LogLevel:       "warn",
	}
}

// Load builds the effective configuration: defaults, then the global
// file, then the project file. Missing files are not an error.
func Load() (Config, error) {
	cfg := Default()

	if path, ok := GlobalPath(); ok {
		if err := overlay(&cfg, path); err != nil {
			return cfg, err
		}
	}
	if err := overlay(&cfg, ProjectFile); err != nil {
		return cfg, err
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// GlobalPath returns the global config file location, when resolvable.
func GlobalPath() (string, bool) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", false
	}
	return filepath.Join(home, ".config", "cx", "config.yaml"), true
}

// overlay applies one YAML file on top of cfg. Fields absent from the
// file keep their current values.
func overlay(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to read config file '%s': %w", path, err)
	}
	return ParseInto(cfg, data)
}

// ParseInto unmarshals YAML bytes onto cfg after env expansion.
func ParseInto(cfg *Config, data []byte) error {
	expanded := expandEnvWithDefaults(string(data))
	if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
		return fmt.Errorf("failed to parse config file: %w", err)
	}
	return nil
}

// Validate checks limits that must be positive.
func (c Config) Validate() error {
	if c.MaxLines <= 0 {
		return fmt.Errorf("max_lines must be positive, got %d", c.MaxLines)
	}
	if c.MaxLineLen <= 0 {
		return fmt.Errorf("max_line_len must be positive, got %d", c.MaxLineLen)
	}
	if c.LsMaxDepth <= 0 {
		return fmt.Errorf("ls_max_depth must be positive, got %d", c.LsMaxDepth)
	}
	if c.LsMaxEntries <= 0 {
		return fmt.Errorf("ls_max_entries must be positive, got %d", c.LsMaxEntries)
	}
	return nil
}

// DefaultYAML is the config file written by `cx init`.
func DefaultYAML() string {
	return `# cx configuration
# Place in ~/.config/cx/config.yaml (global) or .cx.yaml (per-project)

# Truncation limits
max_lines: 150
max_line_len: 300

# Show timing footer after each command
show_footer: true

# Directories skipped by cx ls
ls_skip:
  - target
  - node_modules
  - .git
  - __pycache__
  - .DS_Store
  - dist
  - build
  - .next
  - .cache
  - coverage
  - .venv
  - venv

# Tree listing limits
ls_max_depth: 4
ls_max_entries: 200

# Record invocations to the local history database
history_enabled: true

# Logging: debug, info, warn, error
log_level: warn
`
}

// expandEnvWithDefaults expands ${VAR} and ${VAR:-default} references.
func expandEnvWithDefaults(s string) string {
	re := regexp.MustCompile(`\$\{([^}:]+)(?::-([^}]*))?\}`)

	return re.ReplaceAllStringFunc(s, func(match string) string {
		parts := re.FindStringSubmatch(match)
		if len(parts) < 2 {
			return match
		}

		varName := parts[1]
		defaultValue := ""
		if len(parts) > 2 {
			defaultValue = parts[2]
		}

		if value := os.Getenv(varName); value != "" {
			return value
		}
		return defaultValue
	})
}

// DetectProject reports project types recognizable from marker files in
// the current directory.
func DetectProject() []string {
	var types []string

	exists := func(names ...string) bool {
		for _, name := range names {
			if _, err := os.Stat(name); err == nil {
				return true
			}
		}
		return false
	}

	if exists("Cargo.toml") {
		types = append(types, "rust")
	}
	if exists("package.json") {
		types = append(types, "node")
	}
	if exists("pyproject.toml", "setup.py", "requirements.txt") {
		types = append(types, "python")
	}
	if exists("go.mod") {
		types = append(types, "go")
	}
	if exists("Dockerfile", "docker-compose.yml", "compose.yml") {
		types = append(types, "docker")
	}
	if exists("Makefile") {
		types = append(types, "make")
	}

	return types
}
