package dataset

import (
	"context"
	"fmt"
	"hash/fnv"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"personalityPairing/pkg/table"
)

// Dataset is the pair of source tables with their columns resolved.
type Dataset struct {
	Songs    *table.Table
	SongCols table.Binding
	Wines    *table.Table
	WineCols table.Binding
	// Sources names where the tables came from, file paths when loaded from disk.
	Sources []string

	digest uint64
}

// Fingerprint keys cached summaries. Any changed cell or source gives a new fingerprint.
func (d *Dataset) Fingerprint() string {
	h := fnv.New64a()
	fmt.Fprintf(h, "%x;%s", d.digest, strings.Join(d.Sources, ";"))

	return fmt.Sprintf("%x", h.Sum64())
}

// contentDigest hashes the schema and every cell of the tables, column by column.
func contentDigest(tables ...*table.Table) uint64 {
	h := fnv.New64a()
	for _, t := range tables {
		fmt.Fprintf(h, "%d;", t.Len())
		for _, c := range t.Columns() {
			fmt.Fprintf(h, "%q:", c)
			for _, v := range t.Column(c) {
				fmt.Fprintf(h, "%#v|", v)
			}
		}
		fmt.Fprint(h, "\n")
	}

	return h.Sum64()
}

// New binds both tables against their schemas.
func New(songs, wines *table.Table) (*Dataset, error) {
	songCols, err := SongSchema.Bind(songs)
	if err != nil {
		return nil, errors.Wrap(err, "invalid songs table")
	}

	wineCols, err := WineSchema.Bind(wines)
	if err != nil {
		return nil, errors.Wrap(err, "invalid wines table")
	}

	return &Dataset{
		Songs:    songs,
		SongCols: songCols,
		Wines:    wines,
		WineCols: wineCols,
		digest:   contentDigest(songs, wines),
	}, nil
}

func Load(ctx context.Context, cfg *Config) (*Dataset, error) {
	log := logrus.WithContext(ctx)

	validationErr := cfg.Validate()
	if validationErr.HasErrors() {
		return nil, validationErr
	}

	enc, err := table.ParseEncoding(cfg.Encoding)
	if err != nil {
		return nil, err
	}

	songs, err := table.LoadCSVFile(cfg.MusicPath, enc)
	if err != nil {
		return nil, err
	}
	log.Infof("loaded %d songs from %q", songs.Len(), cfg.MusicPath)

	wines, err := table.LoadCSVFile(cfg.WinePath, enc)
	if err != nil {
		return nil, err
	}
	log.Infof("loaded %d wine reviews from %q", wines.Len(), cfg.WinePath)

	ds, err := New(songs, wines)
	if err != nil {
		return nil, err
	}
	ds.Sources = []string{cfg.MusicPath, cfg.WinePath}

	return ds, nil
}
