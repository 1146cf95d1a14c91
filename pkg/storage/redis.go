package storage

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
	base "github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

type RedisConfig struct {
	Addr string `envconfig:"REDIS_ADDR"`
	Pass string `envconfig:"REDIS_PASS"`
	DB   int    `envconfig:"REDIS_DB"`
	// PingTimeout bounds the whole connection check with retries.
	PingTimeout time.Duration `envconfig:"REDIS_PING_TIMEOUT" default:"1m"`
}

func LoadConfig() (cfg *RedisConfig, err error) {
	cfg = new(RedisConfig)
	err = envconfig.Process("redis", cfg)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load redis config")
	}

	return cfg, nil
}

type RedisClient struct {
	baseClient *base.Client
}

func NewClient(cfg *RedisConfig) (*RedisClient, error) {
	if cfg.Addr == "" {
		return nil, errors.New("REDIS_ADDR cannot be empty")
	}

	rdb := base.NewClient(&base.Options{
		Addr:     cfg.Addr,
		Password: cfg.Pass,
		DB:       cfg.DB,
	})

	redisCheckErr := checkRedis(rdb, cfg.PingTimeout)
	if redisCheckErr != nil {
		logrus.Errorf("failed to ping redis %q", cfg.Addr)
		return nil, redisCheckErr
	}

	logrus.Infof("ping to redis %q is successful", cfg.Addr)
	return &RedisClient{baseClient: rdb}, nil
}

func checkRedis(cl *base.Client, maxElapsed time.Duration) error {
	logrus.Infof("will ping redis")
	operation := func() error {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
		defer cancel()

		err := cl.Ping(ctx).Err()
		if err != nil {
			logrus.Errorf("Failed to connect to redis: %v", err)
			return err
		}

		return nil
	}

	policy := backoff.NewExponentialBackOff()
	if maxElapsed > 0 {
		policy.MaxElapsedTime = maxElapsed
	}

	err := backoff.Retry(operation, policy)
	if err != nil {
		return errors.Wrap(err, "failed to connect to redis")
	}

	return nil
}

func (c *RedisClient) Read(ctx context.Context, key string) (raw []byte, found bool, err error) {
	log := logrus.WithContext(ctx)

	val, err := c.baseClient.Get(ctx, key).Bytes()
	if err != nil {
		if err == base.Nil {
			log.Debugf("nothing found in redis under key %q", key)
			return nil, false, nil
		}
		return nil, false, errors.Wrapf(err, "failed to get data from redis under key %q", key)
	}

	log.Debugf("read %d bytes from redis under key %q", len(val), key)

	return val, true, nil
}

func (c *RedisClient) Write(ctx context.Context, key string, raw []byte, exp time.Duration) error {
	err := c.baseClient.Set(ctx, key, raw, exp).Err()
	if err != nil {
		return errors.Wrapf(err, "failed to write data to redis under key %q", key)
	}

	logrus.WithContext(ctx).Debugf("wrote %d bytes to redis under key %q", len(raw), key)

	return nil
}

func (c *RedisClient) Delete(ctx context.Context, key string) error {
	err := c.baseClient.Del(ctx, key).Err()
	if err != nil {
		return errors.Wrapf(err, "failed to delete data from redis under key %q", key)
	}

	logrus.WithContext(ctx).Infof("deleted data from redis under key %q", key)
	return nil
}

func (c *RedisClient) Load(ctx context.Context, key string, target interface{}) (found bool, err error) {
	return load(ctx, c, key, target)
}

func (c *RedisClient) Save(ctx context.Context, key string, data interface{}, validity time.Duration) error {
	return save(ctx, c, key, data, validity)
}

func (c *RedisClient) Close() error {
	return c.baseClient.Close()
}
