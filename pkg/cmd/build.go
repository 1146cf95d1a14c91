package cmd

import (
	"context"

	"personalityPairing/pkg/chart"
	"personalityPairing/pkg/dataset"
	"personalityPairing/pkg/recommend"
	"personalityPairing/pkg/storage"
)

type services struct {
	recommend *recommend.Service
	charts    *chart.Builder
}

func buildServices(ctx context.Context) (*services, error) {
	data, err := dataset.BuildDataset(ctx)
	if err != nil {
		return nil, err
	}

	svc, err := recommend.BuildService(data)
	if err != nil {
		return nil, err
	}

	cache, err := storage.BuildClient()
	if err != nil {
		return nil, err
	}

	charts, err := chart.BuildBuilder(data, cache)
	if err != nil {
		return nil, err
	}

	return &services{
		recommend: svc,
		charts:    charts,
	}, nil
}
