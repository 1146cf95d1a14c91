package dataset

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"personalityPairing/pkg/table"
)

const songsCSV = "track_name,artist(s)_name,valence_%,energy_%,danceability_%\nFlowers,Miley Cyrus,65,68,71\n"

const winesCSV = "country,description,points,price,variety,title\nUS,Silky.,90,40,Pinot Noir,Some Estate 2013 Pinot Noir\n"

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	cfg := &Config{
		MusicPath: writeFile(t, dir, "songs.csv", songsCSV),
		WinePath:  writeFile(t, dir, "wines.csv", winesCSV),
		Encoding:  "utf-8",
	}

	ds, err := Load(context.Background(), cfg)
	require.NoError(t, err)

	assert.Equal(t, 1, ds.Songs.Len())
	assert.Equal(t, "artist(s)_name", ds.SongCols.Column(SongArtist))
	assert.False(t, ds.SongCols.Has(SongMBTI))
	assert.Equal(t, "title", ds.WineCols.Column(WineTitle))
	assert.Equal(t, "country", ds.WineCols.Column(WineCountry))
}

func TestLoadRejectsIncompleteSchema(t *testing.T) {
	dir := t.TempDir()
	cfg := &Config{
		MusicPath: writeFile(t, dir, "songs.csv", "track_name\nFlowers\n"),
		WinePath:  writeFile(t, dir, "wines.csv", winesCSV),
		Encoding:  "latin1",
	}

	_, err := Load(context.Background(), cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid songs table")
	assert.Contains(t, err.Error(), `"valence"`)
}

func TestNewPrefersTranslatedColumns(t *testing.T) {
	wines := table.New([]string{"title", "title_es", "country", "country_es", "variety", "points"})
	songs := table.New([]string{"track_name", "artist(s)_name", "valence_%", "energy_%", "mbti"})

	ds, err := New(songs, wines)
	require.NoError(t, err)

	assert.Equal(t, "title_es", ds.WineCols.Column(WineTitle))
	assert.Equal(t, "country_es", ds.WineCols.Column(WineCountry))
	assert.True(t, ds.SongCols.Has(SongMBTI))
	assert.False(t, ds.WineCols.Has(WinePrice))
}

func TestConfigValidate(t *testing.T) {
	cfg := &Config{Encoding: "ebcdic"}
	e := cfg.Validate()
	require.True(t, e.HasErrors())
	assert.Len(t, e.Errors(), 3)

	cfg = &Config{MusicPath: "a.csv", WinePath: "b.csv", Encoding: "latin1"}
	assert.False(t, cfg.Validate().HasErrors())
}

func TestFingerprint(t *testing.T) {
	songs := table.New([]string{"track_name", "artist(s)_name", "valence_%", "energy_%"})
	wines := table.New([]string{"title", "country", "variety", "points"})

	a, err := New(songs, wines)
	require.NoError(t, err)
	b, err := New(songs, wines)
	require.NoError(t, err)
	assert.Equal(t, a.Fingerprint(), b.Fingerprint())

	b.Sources = []string{"other.csv"}
	assert.NotEqual(t, a.Fingerprint(), b.Fingerprint())

	bigger := table.New(wines.Columns(), table.Record{"title": "x"})
	c, err := New(songs, bigger)
	require.NoError(t, err)
	assert.NotEqual(t, a.Fingerprint(), c.Fingerprint())
}

func TestFingerprintFollowsCellValues(t *testing.T) {
	cols := []string{"title", "country", "variety", "points"}
	songs := table.New([]string{"track_name", "artist(s)_name", "valence_%", "energy_%"})

	a, err := New(songs, table.New(cols, table.Record{"title": "x", "points": "90"}))
	require.NoError(t, err)
	b, err := New(songs, table.New(cols, table.Record{"title": "x", "points": "91"}))
	require.NoError(t, err)
	assert.NotEqual(t, a.Fingerprint(), b.Fingerprint())

	// a missing cell and an empty one are different data
	c, err := New(songs, table.New(cols, table.Record{"title": "x", "country": ""}))
	require.NoError(t, err)
	d, err := New(songs, table.New(cols, table.Record{"title": "x"}))
	require.NoError(t, err)
	assert.NotEqual(t, c.Fingerprint(), d.Fingerprint())
}

func TestFingerprintChangesWhenFileIsRewritten(t *testing.T) {
	dir := t.TempDir()
	cfg := &Config{
		MusicPath: writeFile(t, dir, "songs.csv", songsCSV),
		WinePath:  writeFile(t, dir, "wines.csv", winesCSV),
		Encoding:  "utf-8",
	}

	before, err := Load(context.Background(), cfg)
	require.NoError(t, err)

	// same paths, same row count, same size: only a score differs
	writeFile(t, dir, "wines.csv", strings.Replace(winesCSV, ",90,", ",95,", 1))
	after, err := Load(context.Background(), cfg)
	require.NoError(t, err)

	assert.Equal(t, before.Wines.Len(), after.Wines.Len())
	assert.Equal(t, before.Sources, after.Sources)
	assert.NotEqual(t, before.Fingerprint(), after.Fingerprint())

	again, err := Load(context.Background(), cfg)
	require.NoError(t, err)
	assert.Equal(t, after.Fingerprint(), again.Fingerprint())
}
