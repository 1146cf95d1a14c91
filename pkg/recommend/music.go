package recommend

import (
	"context"
	"math/rand"
	"sync"

	"github.com/sirupsen/logrus"

	"personalityPairing/pkg/dataset"
	"personalityPairing/pkg/table"
)

// MusicRecommender samples upbeat songs: both valence and energy at or above the thresholds.
type MusicRecommender struct {
	minValence float64
	minEnergy  float64
	count      int

	// rndMu guards rnd, handlers call Recommend concurrently.
	rndMu sync.Mutex
	rnd   *rand.Rand
}

func NewMusicRecommender(cfg *Config, rnd *rand.Rand) *MusicRecommender {
	return &MusicRecommender{
		minValence: cfg.MinValence,
		minEnergy:  cfg.MinEnergy,
		count:      cfg.SongCount,
		rnd:        rnd,
	}
}

func (mr *MusicRecommender) Recommend(ctx context.Context, songs *table.Table, cols table.Binding) []Song {
	log := logrus.WithContext(ctx)

	valenceCol := cols.Column(dataset.SongValence)
	energyCol := cols.Column(dataset.SongEnergy)

	upbeat := songs.Filter(func(r table.Record) bool {
		valence, ok := r.Float(valenceCol)
		if !ok || valence < mr.minValence {
			return false
		}
		energy, ok := r.Float(energyCol)
		return ok && energy >= mr.minEnergy
	})
	log.Debugf("%d of %d songs pass valence >= %g and energy >= %g", upbeat.Len(), songs.Len(), mr.minValence, mr.minEnergy)

	mr.rndMu.Lock()
	picked := upbeat.Sample(mr.count, mr.rnd)
	mr.rndMu.Unlock()

	res := make([]Song, 0, picked.Len())
	for _, r := range picked.Rows() {
		s := Song{
			Track:  r.String(cols.Column(dataset.SongTrack)),
			Artist: r.String(cols.Column(dataset.SongArtist)),
		}
		s.Valence, _ = r.Float(valenceCol)
		s.Energy, _ = r.Float(energyCol)
		if cols.Has(dataset.SongDanceability) {
			s.Danceability, _ = r.Float(cols.Column(dataset.SongDanceability))
		}
		res = append(res, s)
	}

	return res
}
