package storage

import "github.com/sirupsen/logrus"

// BuildClient returns the redis client when REDIS_ADDR is set and an in-process cache otherwise.
func BuildClient() (Client, error) {
	cfg, err := LoadConfig()
	if err != nil {
		return nil, err
	}

	if cfg.Addr == "" {
		logrus.Info("REDIS_ADDR is empty, summaries will be cached in memory")
		return NewMemoryClient(), nil
	}

	return NewClient(cfg)
}
