package main

import (
	"github.com/lattesec/frameinfo/pkg/frameinfo"
	"github.com/lattesec/frameinfo/pkg/log"
)

type LogConfig struct {
	Level string `yaml:"level"`
}

// Config is read from frameinfo.yml / frameinfo.yaml in the config directories.
type Config struct {
	Log     LogConfig        `yaml:"log"`
	Locator frameinfo.Config `yaml:"locator"`
}

func DefaultConfig() *Config {
	return &Config{
		Log:     LogConfig{Level: log.WARN.String()},
		Locator: frameinfo.DefaultConfig(),
	}
}

func (c *Config) Validate() error {
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return err
	}
	return c.Locator.Validate()
}
