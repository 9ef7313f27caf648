package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"
)

// Config holds everything that decides where epicsync reads and writes and
// which space the structure targets.
type Config struct {
	TasksDir   string `yaml:"tasks_dir" toml:"tasks_dir"`
	Pattern    string `yaml:"pattern" toml:"pattern"`
	OutputPath string `yaml:"output" toml:"output"`
	SpaceName  string `yaml:"space_name" toml:"space_name"`
	SpaceID    string `yaml:"space_id" toml:"space_id"`
	LogLevel   string `yaml:"log_level" toml:"log_level"`
}

// projectConfigNames are looked up in the working directory, first match wins.
var projectConfigNames = []string{".epicsync.yaml", ".epicsync.yml", ".epicsync.toml"}

// DefaultConfig returns the settings used by the decomposition workflow.
func DefaultConfig() Config {
	return Config{
		TasksDir:   filepath.Join(".claude", "tasks"),
		Pattern:    "phase-*.md",
		OutputPath: filepath.Join(".claude", "clickup_sync_structure.json"),
		SpaceName:  "ClickUp MCP Server - Documentation Alignment",
		SpaceID:    "90144360426",
		LogLevel:   "warn",
	}
}

// Load builds the configuration from defaults, an optional config file and
// the environment. An explicit path wins over EPICSYNC_CONFIG, which wins
// over a project config file in the working directory.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()

	if path == "" {
		path = os.Getenv("EPICSYNC_CONFIG")
	}
	if path == "" {
		path = findProjectConfigFile(".")
	}
	if path != "" {
		if err := loadConfigFile(&cfg, path); err != nil {
			return cfg, fmt.Errorf("loading config file %s: %w", path, err)
		}
	}

	loadFromEnv(&cfg)
	return cfg, nil
}

// Validate reports settings that would make a sync meaningless.
func (c Config) Validate() error {
	var errs []error
	if c.TasksDir == "" {
		errs = append(errs, fmt.Errorf("tasks_dir is required"))
	}
	if c.OutputPath == "" {
		errs = append(errs, fmt.Errorf("output is required"))
	}
	if c.SpaceName == "" {
		errs = append(errs, fmt.Errorf("space_name is required"))
	}
	if c.SpaceID == "" {
		errs = append(errs, fmt.Errorf("space_id is required"))
	}
	if _, err := filepath.Match(c.Pattern, ""); err != nil || c.Pattern == "" {
		errs = append(errs, fmt.Errorf("pattern %q is not a valid glob", c.Pattern))
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, fmt.Errorf("invalid log level %q", c.LogLevel))
	}
	return errors.Join(errs...)
}

func findProjectConfigFile(dir string) string {
	for _, name := range projectConfigNames {
		path := filepath.Join(dir, name)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path
		}
	}
	return ""
}

func loadConfigFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	content := os.ExpandEnv(string(data))

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal([]byte(content), cfg); err != nil {
			return fmt.Errorf("parsing yaml: %w", err)
		}
	case ".toml":
		if _, err := toml.Decode(content, cfg); err != nil {
			return fmt.Errorf("parsing toml: %w", err)
		}
	default:
		return fmt.Errorf("unsupported config format %q (use .yaml, .yml or .toml)", filepath.Ext(path))
	}
	return nil
}

func loadFromEnv(cfg *Config) {
	if v := os.Getenv("EPICSYNC_TASKS_DIR"); v != "" {
		cfg.TasksDir = v
	}
	if v := os.Getenv("EPICSYNC_PATTERN"); v != "" {
		cfg.Pattern = v
	}
	if v := os.Getenv("EPICSYNC_OUTPUT"); v != "" {
		cfg.OutputPath = v
	}
	if v := os.Getenv("EPICSYNC_SPACE_NAME"); v != "" {
		cfg.SpaceName = v
	}
	if v := os.Getenv("EPICSYNC_SPACE_ID"); v != "" {
		cfg.SpaceID = v
	}
	if v := os.Getenv("EPICSYNC_LOG_LEVEL"); v != "" {
		if _, err := log.ParseLevel(v); err == nil {
			cfg.LogLevel = v
		}
	}
}
