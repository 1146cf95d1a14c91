package chart

import (
	"context"
	"fmt"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"personalityPairing/pkg/aggregate"
	"personalityPairing/pkg/dataset"
	"personalityPairing/pkg/recommend"
	"personalityPairing/pkg/storage"
	"personalityPairing/pkg/table"
	"personalityPairing/pkg/text"
)

const summaryCacheVersion = "v1"

// ErrNoGroupColumn means the songs table carries no personality type column to chart by.
var ErrNoGroupColumn = errors.New("songs table has no mbti column")

type Builder struct {
	data  *dataset.Dataset
	cache storage.Client
	ttl   time.Duration
}

func NewBuilder(data *dataset.Dataset, cache storage.Client, ttl time.Duration) *Builder {
	return &Builder{
		data:  data,
		cache: cache,
		ttl:   ttl,
	}
}

func (b *Builder) summarize(ctx context.Context, t *table.Table, key string, columns []string, scope string) (*aggregate.Summary, error) {
	log := logrus.WithContext(ctx)

	parts := append([]string{b.data.Fingerprint(), scope, key}, columns...)
	cacheKey := storage.GenerateCacheKey(summaryCacheVersion, "summary", parts...)

	cached := new(aggregate.Summary)
	found, err := b.cache.Load(ctx, cacheKey, cached)
	if err != nil {
		log.Errorf("failed to load cached summary %q, will recompute: %v", cacheKey, err)
	}
	if found {
		return cached, nil
	}

	s, err := aggregate.Aggregate(t, key, columns)
	if err != nil {
		return nil, err
	}

	err = b.cache.Save(ctx, cacheKey, s, b.ttl)
	if err != nil {
		log.Errorf("failed to cache summary %q: %v", cacheKey, err)
	}

	return s, nil
}

// MusicSummary averages the song attributes per personality type.
func (b *Builder) MusicSummary(ctx context.Context) (*aggregate.Summary, error) {
	cols := b.data.SongCols
	if !cols.Has(dataset.SongMBTI) {
		return nil, ErrNoGroupColumn
	}

	values := []string{cols.Column(dataset.SongValence), cols.Column(dataset.SongEnergy)}
	if cols.Has(dataset.SongDanceability) {
		values = append(values, cols.Column(dataset.SongDanceability))
	}

	return b.summarize(ctx, b.data.Songs, cols.Column(dataset.SongMBTI), values, "songs")
}

// WineSummary averages points (and price when known) per country, limited to the
// variety when one is given.
func (b *Builder) WineSummary(ctx context.Context, variety string) (*aggregate.Summary, error) {
	cols := b.data.WineCols

	values := []string{cols.Column(dataset.WinePoints)}
	if cols.Has(dataset.WinePrice) {
		values = append(values, cols.Column(dataset.WinePrice))
	}

	wines := b.data.Wines
	scope := "wines"
	if variety != "" {
		wines = recommend.Matching(wines, cols, variety)
		scope = "wines:" + text.Normalize(variety)
	}

	return b.summarize(ctx, wines, cols.Column(dataset.WineCountry), values, scope)
}

func (b *Builder) LineFigure(ctx context.Context) (*Figure, error) {
	s, err := b.MusicSummary(ctx)
	if err != nil {
		return nil, err
	}

	return Line(s, "Average song profile per MBTI type"), nil
}

func (b *Builder) MapFigure(ctx context.Context, variety string) (*Figure, error) {
	s, err := b.WineSummary(ctx, variety)
	if err != nil {
		return nil, err
	}

	title := "Average wine rating per country"
	if variety != "" {
		title = fmt.Sprintf("Average %s rating per country", variety)
	}

	return Choropleth(s, b.data.WineCols.Column(dataset.WinePoints), title), nil
}
