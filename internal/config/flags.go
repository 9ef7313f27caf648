package config

import "github.com/spf13/pflag"

// Flag names shared by every command.
const (
	FlagConfig    = "config"
	FlagTasksDir  = "tasks-dir"
	FlagPattern   = "pattern"
	FlagOutput    = "output"
	FlagSpaceName = "space-name"
	FlagSpaceID   = "space-id"
	FlagLogLevel  = "log-level"
)

// RegisterFlags defines the configuration flags on fs, showing the built-in
// defaults in help output.
func RegisterFlags(fs *pflag.FlagSet) {
	def := DefaultConfig()
	fs.String(FlagConfig, "", "Config file (.yaml, .yml or .toml)")
	fs.String(FlagTasksDir, def.TasksDir, "Directory holding the task files")
	fs.String(FlagPattern, def.Pattern, "Glob for task file names")
	fs.String(FlagOutput, def.OutputPath, "Path of the JSON sync structure")
	fs.String(FlagSpaceName, def.SpaceName, "Target space name")
	fs.String(FlagSpaceID, def.SpaceID, "Target space ID")
	fs.String(FlagLogLevel, def.LogLevel, "Log level (debug, info, warn, error)")
}

// ApplyFlags overrides cfg with every flag the user set explicitly.
func (c *Config) ApplyFlags(fs *pflag.FlagSet) {
	apply := func(name string, dst *string) {
		if !fs.Changed(name) {
			return
		}
		if v, err := fs.GetString(name); err == nil {
			*dst = v
		}
	}
	apply(FlagTasksDir, &c.TasksDir)
	apply(FlagPattern, &c.Pattern)
	apply(FlagOutput, &c.OutputPath)
	apply(FlagSpaceName, &c.SpaceName)
	apply(FlagSpaceID, &c.SpaceID)
	apply(FlagLogLevel, &c.LogLevel)
}

// LoadWithFlags loads the configuration named by the --config flag (if any)
// and applies explicit flag overrides on top.
func LoadWithFlags(fs *pflag.FlagSet) (Config, error) {
	path, _ := fs.GetString(FlagConfig)
	cfg, err := Load(path)
	if err != nil {
		return cfg, err
	}
	cfg.ApplyFlags(fs)
	return cfg, cfg.Validate()
}
