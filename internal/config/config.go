package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	PlayerKindHuman    = "human"
	PlayerKindComputer = "computer"
)

type Config struct {
	LogLevel string `yaml:"log-level" env-default:"info"`
	PlayerX  string `yaml:"player-x" env-default:"human"`
	PlayerO  string `yaml:"player-o" env-default:"computer"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}
