package chart

import (
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"

	"personalityPairing/pkg/dataset"
	"personalityPairing/pkg/storage"
)

type Config struct {
	SummaryTTL time.Duration `envconfig:"SUMMARY_CACHE_TTL" default:"24h"`
}

func LoadConfig() (cfg *Config, err error) {
	cfg = new(Config)
	err = envconfig.Process("chart", cfg)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load chart config")
	}

	return cfg, nil
}

func BuildBuilder(data *dataset.Dataset, cache storage.Client) (*Builder, error) {
	cfg, err := LoadConfig()
	if err != nil {
		return nil, err
	}

	return NewBuilder(data, cache, cfg.SummaryTTL), nil
}
