package chart

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"personalityPairing/pkg/aggregate"
	"personalityPairing/pkg/dataset"
	"personalityPairing/pkg/storage"
	"personalityPairing/pkg/table"
)

func fixture(t *testing.T, withMBTI bool) *dataset.Dataset {
	t.Helper()

	songCols := []string{"track_name", "artist(s)_name", "valence_%", "energy_%", "danceability_%"}
	if withMBTI {
		songCols = append(songCols, "mbti")
	}

	songs := table.New(songCols,
		table.Record{"track_name": "a", "valence_%": "60", "energy_%": "70", "danceability_%": "80", "mbti": "INFP"},
		table.Record{"track_name": "b", "valence_%": "40", "energy_%": "50", "danceability_%": "x", "mbti": "INFP"},
		table.Record{"track_name": "c", "valence_%": "90", "energy_%": "90", "danceability_%": "90", "mbti": "ENTP"},
		table.Record{"track_name": "d", "valence_%": "10", "energy_%": "10", "danceability_%": "10", "mbti": nil},
	)

	wines := table.New([]string{"title", "country", "variety", "points", "price"},
		table.Record{"title": "w1", "country": "France", "variety": "Pinot Noir", "points": "90", "price": "30"},
		table.Record{"title": "w2", "country": "France", "variety": "Rosé", "points": "86", "price": "12"},
		table.Record{"title": "w3", "country": "US", "variety": "Pinot Noir", "points": "92", "price": nil},
		table.Record{"title": "w4", "country": nil, "variety": "Pinot Noir", "points": "80"},
	)

	ds, err := dataset.New(songs, wines)
	require.NoError(t, err)

	return ds
}

func TestLineFigure(t *testing.T) {
	b := NewBuilder(fixture(t, true), storage.NewMemoryClient(), time.Hour)

	f, err := b.LineFigure(context.Background())
	require.NoError(t, err)

	require.Len(t, f.Data, 3)
	valence := f.Data[0]
	assert.Equal(t, "valence_%", valence.Name)
	assert.Equal(t, "lines+markers", valence.Mode)
	assert.Equal(t, []string{"ENTP", "INFP"}, valence.X)
	require.Len(t, valence.Y, 2)
	assert.Equal(t, 90.0, *valence.Y[0])
	assert.Equal(t, 50.0, *valence.Y[1])

	dance := f.Data[2]
	assert.Equal(t, 80.0, *dance.Y[1])
}

func TestLineFigureWithoutMBTIColumn(t *testing.T) {
	b := NewBuilder(fixture(t, false), storage.NewMemoryClient(), time.Hour)

	_, err := b.LineFigure(context.Background())
	assert.ErrorIs(t, err, ErrNoGroupColumn)
}

func TestMapFigure(t *testing.T) {
	b := NewBuilder(fixture(t, true), storage.NewMemoryClient(), time.Hour)

	f, err := b.MapFigure(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, f.Data, 1)

	tr := f.Data[0]
	assert.Equal(t, "choropleth", tr.Type)
	assert.Equal(t, "country names", tr.LocationMode)
	assert.Equal(t, []string{"France", "US"}, tr.Locations)
	assert.Equal(t, 88.0, *tr.Z[0])
	assert.Equal(t, 92.0, *tr.Z[1])
	assert.Equal(t, []string{"France: 2 reviews", "US: 1 review"}, tr.Text)
}

func TestMapFigureForVariety(t *testing.T) {
	b := NewBuilder(fixture(t, true), storage.NewMemoryClient(), time.Hour)

	f, err := b.MapFigure(context.Background(), "Rose")
	require.NoError(t, err)

	assert.Equal(t, []string{"France"}, f.Data[0].Locations)
	assert.Equal(t, 86.0, *f.Data[0].Z[0])
	assert.Contains(t, f.Layout.Title, "Rose")
}

func TestSummariesAreCached(t *testing.T) {
	ctx := context.Background()
	cache := storage.NewMemoryClient()
	ds := fixture(t, true)
	b := NewBuilder(ds, cache, time.Hour)

	first, err := b.WineSummary(ctx, "pinot noir")
	require.NoError(t, err)

	key := storage.GenerateCacheKey(summaryCacheVersion, "summary", ds.Fingerprint(), "wines:pinot noir", "country", "points", "price")
	var cached aggregate.Summary
	found, err := cache.Load(ctx, key, &cached)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, first.Keys(), cached.Keys())

	second, err := b.WineSummary(ctx, "Pinot Noir")
	require.NoError(t, err)
	assert.Equal(t, first.Keys(), second.Keys())
	assert.Equal(t, first.Series("points"), second.Series("points"))
}

func TestNullableGapsEncodeAsNull(t *testing.T) {
	s := &aggregate.Summary{
		KeyColumn: "mbti",
		Columns:   []string{"v"},
		Rows: []aggregate.Row{
			{Key: "A", Count: 1, Means: map[string]float64{}},
			{Key: "B", Count: 1, Means: map[string]float64{"v": 2}},
		},
	}

	raw, err := Line(s, "t").JSON()
	require.NoError(t, err)

	var decoded struct {
		Data []struct {
			Y []*float64 `json:"y"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(raw, &decoded))
	require.Len(t, decoded.Data[0].Y, 2)
	assert.Nil(t, decoded.Data[0].Y[0])
	assert.Equal(t, 2.0, *decoded.Data[0].Y[1])
}
