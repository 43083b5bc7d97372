// Package config resolves tool settings from the optional config file,
// the environment, and built-in defaults.
package config

import (
	"os"

	"github.com/spf13/viper"
)

// Built-in defaults, overridable via $HOME/.service-config/config.yaml or
// SERVICECONFIG_* environment variables.
const (
	DefaultOutputDir  = "/etc/systemd/system"
	DefaultSchemasDir = "schemas"
	DefaultEditor     = "vim"
)

// Config carries the resolved settings for one invocation.
type Config struct {
	Editor     string
	OutputDir  string
	SchemasDir string
}

// Init wires viper: config file location, env binding, defaults. Call once
// from cobra.OnInitialize. A missing config file is not an error.
func Init() {
	home, err := os.UserHomeDir()
	if err == nil {
		viper.AddConfigPath(home + "/.service-config")
		viper.SetConfigName("config")
	}
	viper.SetConfigType("yaml")

	viper.SetEnvPrefix("SERVICECONFIG")
	viper.AutomaticEnv()

	viper.SetDefault("editor", DefaultEditor)
	viper.SetDefault("directory", DefaultOutputDir)
	viper.SetDefault("schemas_dir", DefaultSchemasDir)

	// Ignore missing config
	_ = viper.ReadInConfig()
}

// Load materializes the settings. $EDITOR wins over the built-in editor
// default but not over an explicit config entry.
func Load() Config {
	editor := viper.GetString("editor")
	if editor == DefaultEditor && !viper.InConfig("editor") {
		if env := os.Getenv("EDITOR"); env != "" {
			editor = env
		}
	}
	return Config{
		Editor:     editor,
		OutputDir:  viper.GetString("directory"),
		SchemasDir: viper.GetString("schemas_dir"),
	}
}
