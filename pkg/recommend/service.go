package recommend

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"personalityPairing/pkg/dataset"
	"personalityPairing/pkg/profile"
)

var ErrUnknownProfile = errors.New("unknown personality type")

type Service struct {
	data  *dataset.Dataset
	music *MusicRecommender
	wine  *WineRecommender
}

func NewService(data *dataset.Dataset, music *MusicRecommender, wine *WineRecommender) *Service {
	return &Service{
		data:  data,
		music: music,
		wine:  wine,
	}
}

// Recommend pairs the profile of code with songs and wines. Empty results are reported as
// warnings on the recommendation, never as errors.
func (s *Service) Recommend(ctx context.Context, code string) (*Recommendation, error) {
	log := logrus.WithContext(ctx)

	p, ok := profile.Lookup(code)
	if !ok {
		return nil, errors.Wrapf(ErrUnknownProfile, "%q", code)
	}

	rec := &Recommendation{
		Profile: p,
		Songs:   s.music.Recommend(ctx, s.data.Songs, s.data.SongCols),
		Wines:   s.wine.Recommend(ctx, s.data.Wines, s.data.WineCols, p.Wine),
	}

	if len(rec.Songs) == 0 {
		rec.Warnings = append(rec.Warnings, "no songs match the energy and valence thresholds")
	}
	if len(rec.Wines) == 0 {
		rec.Warnings = append(rec.Warnings, fmt.Sprintf("no wines found for variety %q", p.Wine))
	}

	log.Infof("recommended %d songs and %d wines for %s", len(rec.Songs), len(rec.Wines), p.Code)

	return rec, nil
}
