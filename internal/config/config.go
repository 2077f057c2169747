// Package config loads dvinfo settings from defaults, an optional YAML file
// and DVINFO_* environment variables.
package config

import (
	"encoding/binary"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

const (
	// AppName is the application name used for config file lookup
	AppName = "dvinfo"

	// EnvPrefix is the prefix for environment variables
	EnvPrefix = "DVINFO"
)

// ErrInvalidByteOrder is returned by Order for anything but "little" or "big".
var ErrInvalidByteOrder = errors.New("invalid byte order")

// Config holds the tool configuration
type Config struct {
	Debug     bool   `mapstructure:"debug"`
	LogFormat string `mapstructure:"log_format"`
	LogFile   string `mapstructure:"log_file"`

	// ByteOrder is used for files created by the tool: "little" or "big".
	ByteOrder string `mapstructure:"byte_order"`
	// Output selects header rendering: "text" or "yaml".
	Output string `mapstructure:"output"`
}

// Load reads configuration. An empty cfgFile searches for dvinfo.yaml in
// the working directory and $HOME/.config/dvinfo; a missing file is not an
// error, an explicitly named one is.
func Load(cfgFile string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName(AppName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/" + AppName)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error parsing config: %w", err)
	}
	return &cfg, nil
}

// setDefaults sets default values for configuration
func setDefaults(v *viper.Viper) {
	v.SetDefault("debug", false)
	v.SetDefault("log_format", "human")
	v.SetDefault("log_file", "")
	v.SetDefault("byte_order", "little")
	v.SetDefault("output", "text")
}

// Order returns the configured byte order for new files.
func (c *Config) Order() (binary.ByteOrder, error) {
	switch strings.ToLower(c.ByteOrder) {
	case "little", "le", "":
		return binary.LittleEndian, nil
	case "big", "be":
		return binary.BigEndian, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidByteOrder, c.ByteOrder)
	}
}
