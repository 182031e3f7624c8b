package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// FileName is the config file Load looks for, without extension.
const FileName = "drtplanner"

// EnvPrefix prefixes environment overrides, e.g. DRT_SERVER_PORT.
const EnvPrefix = "DRT"

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port  int  `json:"port" mapstructure:"port"`
	Watch bool `json:"watch" mapstructure:"watch"`
}

// ProjectConfig locates the project document.
type ProjectConfig struct {
	File string `json:"file" mapstructure:"file"`
}

// Config is the runtime configuration of drtplanner.
type Config struct {
	LogLevel  string        `json:"logLevel" mapstructure:"logLevel"`
	LogFormat string        `json:"logFormat" mapstructure:"logFormat"`
	Server    ServerConfig  `json:"server" mapstructure:"server"`
	Project   ProjectConfig `json:"project" mapstructure:"project"`
}

// Load reads configuration from drtplanner.yaml in configDir, then applies
// DRT_* environment overrides. A missing file leaves the defaults in place;
// a malformed one is an error. An empty configDir skips the file.
func Load(configDir string) (*Config, error) {
	v := viper.New()

	v.SetDefault("logLevel", "info")
	v.SetDefault("logFormat", "json")
	v.SetDefault("server.port", 3000)
	v.SetDefault("server.watch", true)
	v.SetDefault("project.file", "drt.yaml")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configDir != "" {
		v.SetConfigName(FileName)
		v.SetConfigType("yaml")
		v.AddConfigPath(configDir)

		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("error reading config file: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	return &cfg, nil
}
