package dataset

import "context"

func BuildDataset(ctx context.Context) (*Dataset, error) {
	cfg, err := LoadConfig()
	if err != nil {
		return nil, err
	}

	return Load(ctx, cfg)
}
