package dataset

import (
	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"

	"personalityPairing/pkg/errs"
	"personalityPairing/pkg/table"
)

type Config struct {
	MusicPath string `envconfig:"MUSIC_CSV_PATH" default:"spotify-2023.csv"`
	WinePath  string `envconfig:"WINE_CSV_PATH" default:"winemag-data_first150k.csv"`
	Encoding  string `envconfig:"CSV_ENCODING" default:"latin1"`
}

func (c *Config) Validate() *errs.Multi {
	e := errs.NewMulti()

	if c.MusicPath == "" {
		e.Err("MUSIC_CSV_PATH cannot be empty")
	}
	if c.WinePath == "" {
		e.Err("WINE_CSV_PATH cannot be empty")
	}
	if _, err := table.ParseEncoding(c.Encoding); err != nil {
		e.Add(err)
	}

	return e
}

func LoadConfig() (cfg *Config, err error) {
	cfg = new(Config)
	err = envconfig.Process("dataset", cfg)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load dataset config")
	}

	return cfg, nil
}
