package storage

import (
	"context"
	"encoding/json"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"personalityPairing/pkg/utils"
)

type rawStore interface {
	Read(ctx context.Context, key string) (raw []byte, found bool, err error)
	Write(ctx context.Context, key string, raw []byte, exp time.Duration) error
}

func load(ctx context.Context, s rawStore, key string, target interface{}) (found bool, err error) {
	targetType := utils.GetType(target)
	logrus.WithContext(ctx).Debugf("will load %q for key %s", targetType, key)

	rawData, found, err := s.Read(ctx, key)
	if err != nil {
		return false, errors.Wrap(err, "failed to read data from storage")
	}

	if !found {
		return false, nil
	}

	err = json.Unmarshal(rawData, target)
	if err != nil {
		return false, errors.Wrapf(err, "failed to convert %s to %q", string(rawData), targetType)
	}

	return true, nil
}

func save(ctx context.Context, s rawStore, key string, data interface{}, validity time.Duration) error {
	rawBytes, err := json.Marshal(data)
	if err != nil {
		return errors.Wrapf(err, "failed to convert %q to json", utils.GetType(data))
	}

	return s.Write(ctx, key, rawBytes, validity)
}
