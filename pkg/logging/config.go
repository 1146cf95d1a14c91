package logging

import (
	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
)

type Config struct {
	Level string `envconfig:"LOG_LEVEL" default:"debug"`
}

func LoadConfig() (cfg *Config, err error) {
	cfg = new(Config)
	err = envconfig.Process("log", cfg)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load logging config")
	}

	return cfg, nil
}
