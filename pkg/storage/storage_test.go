package storage

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cachedSummary struct {
	Keys  []string
	Means []float64
}

func TestGenerateCacheKey(t *testing.T) {
	assert.Equal(t, "v1/summary/songs/mbti/valence_%", GenerateCacheKey("v1", "Summary", "songs", "mbti", "valence_%"))
	assert.Equal(t, "v1/summary/data_songs.csv", GenerateCacheKey("v1", "summary", "data/songs.csv"))
}

func TestMemoryClientSaveLoad(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryClient()

	var target cachedSummary
	found, err := c.Load(ctx, "missing", &target)
	require.NoError(t, err)
	assert.False(t, found)

	in := cachedSummary{Keys: []string{"INFP"}, Means: []float64{61.5}}
	require.NoError(t, c.Save(ctx, "k", in, 0))

	found, err = c.Load(ctx, "k", &target)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, in, target)

	require.NoError(t, c.Delete(ctx, "k"))
	_, found, err = c.Read(ctx, "k")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestMemoryClientExpiry(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	c := NewMemoryClient()
	c.now = func() time.Time { return now }

	require.NoError(t, c.Write(ctx, "k", []byte("x"), time.Minute))

	_, found, _ := c.Read(ctx, "k")
	assert.True(t, found)

	now = now.Add(time.Minute)
	_, found, _ = c.Read(ctx, "k")
	assert.False(t, found)
}

func TestMemoryClientCopiesBytes(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryClient()

	raw := []byte("abc")
	require.NoError(t, c.Write(ctx, "k", raw, 0))
	raw[0] = 'z'

	got, _, _ := c.Read(ctx, "k")
	assert.Equal(t, "abc", string(got))
}

func TestMemoryClientLoadBrokenJSON(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryClient()
	require.NoError(t, c.Write(ctx, "k", []byte("{"), 0))

	var target cachedSummary
	_, err := c.Load(ctx, "k", &target)
	assert.Error(t, err)
}

func TestNewClientRequiresAddr(t *testing.T) {
	_, err := NewClient(&RedisConfig{})
	assert.Error(t, err)
}
