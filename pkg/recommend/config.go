package recommend

import (
	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"

	"personalityPairing/pkg/errs"
)

const (
	DefaultMinValence = 50
	DefaultMinEnergy  = 50
	DefaultSongCount  = 5
	DefaultWineCount  = 3
)

type Config struct {
	MinValence float64 `envconfig:"MUSIC_MIN_VALENCE" default:"50"`
	MinEnergy  float64 `envconfig:"MUSIC_MIN_ENERGY" default:"50"`
	SongCount  int     `envconfig:"MUSIC_SAMPLE_SIZE" default:"5"`
	WineCount  int     `envconfig:"WINE_TOP_N" default:"3"`
	// Seed fixes the song sampling, 0 seeds from the clock.
	Seed int64 `envconfig:"MUSIC_SAMPLE_SEED"`
}

func DefaultConfig() *Config {
	return &Config{
		MinValence: DefaultMinValence,
		MinEnergy:  DefaultMinEnergy,
		SongCount:  DefaultSongCount,
		WineCount:  DefaultWineCount,
	}
}

func (c *Config) Validate() *errs.Multi {
	e := errs.NewMulti()

	if c.MinValence < 0 || c.MinValence > 100 {
		e.Err("MUSIC_MIN_VALENCE must be between 0 and 100")
	}
	if c.MinEnergy < 0 || c.MinEnergy > 100 {
		e.Err("MUSIC_MIN_ENERGY must be between 0 and 100")
	}
	if c.SongCount <= 0 {
		e.Err("MUSIC_SAMPLE_SIZE must be positive")
	}
	if c.WineCount <= 0 {
		e.Err("WINE_TOP_N must be positive")
	}

	return e
}

func LoadConfig() (cfg *Config, err error) {
	cfg = new(Config)
	err = envconfig.Process("recommend", cfg)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load recommend config")
	}

	return cfg, nil
}
