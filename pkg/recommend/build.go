package recommend

import (
	"math/rand"
	"time"

	"personalityPairing/pkg/dataset"
)

func BuildService(data *dataset.Dataset) (*Service, error) {
	cfg, err := LoadConfig()
	if err != nil {
		return nil, err
	}

	validationErr := cfg.Validate()
	if validationErr.HasErrors() {
		return nil, validationErr
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return NewService(
		data,
		NewMusicRecommender(cfg, rand.New(rand.NewSource(seed))),
		NewWineRecommender(cfg),
	), nil
}
