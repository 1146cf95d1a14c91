package recommend

import (
	"context"

	"github.com/sirupsen/logrus"

	"personalityPairing/pkg/dataset"
	"personalityPairing/pkg/table"
	"personalityPairing/pkg/text"
)

type WineRecommender struct {
	count int
}

func NewWineRecommender(cfg *Config) *WineRecommender {
	return &WineRecommender{count: cfg.WineCount}
}

// Matching keeps the reviews whose variety contains the given one, ignoring case and accents.
// Reviews without a variety never match.
func Matching(wines *table.Table, cols table.Binding, variety string) *table.Table {
	varietyCol := cols.Column(dataset.WineVariety)

	return wines.Filter(func(r table.Record) bool {
		if r.IsNull(varietyCol) {
			return false
		}
		return text.ContainsValue(r[varietyCol], variety)
	})
}

// Recommend returns the best rated reviews of the variety.
func (wr *WineRecommender) Recommend(ctx context.Context, wines *table.Table, cols table.Binding, variety string) []Wine {
	log := logrus.WithContext(ctx)

	matching := Matching(wines, cols, variety)
	log.Debugf("%d of %d wine reviews match variety %q", matching.Len(), wines.Len(), variety)

	best := matching.SortBy(cols.Column(dataset.WinePoints), true).Head(wr.count)

	res := make([]Wine, 0, best.Len())
	for _, r := range best.Rows() {
		w := Wine{
			Title:   r.String(cols.Column(dataset.WineTitle)),
			Country: r.String(cols.Column(dataset.WineCountry)),
			Variety: r.String(cols.Column(dataset.WineVariety)),
		}
		w.Points, _ = r.Float(cols.Column(dataset.WinePoints))
		if cols.Has(dataset.WineDescription) {
			w.Description = r.String(cols.Column(dataset.WineDescription))
		}
		res = append(res, w)
	}

	return res
}
