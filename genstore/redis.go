package genstore

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisGenStore shares generations across processes and survives restarts.
// With a TTL, an expired counter reads as 0; cached entries tagged with a
// higher generation then self-heal on read.
type RedisGenStore struct {
	rdb         redis.UniversalClient
	ns          string        // should match Options.Namespace
	ttl         time.Duration // 0 disables expiry
	closeClient bool
}

var _ GenStore = (*RedisGenStore)(nil)

type RedisConfig struct {
	Client      redis.UniversalClient
	Namespace   string
	TTL         time.Duration
	CloseClient bool // set true only if this store exclusively owns the client
}

func NewRedisGenStore(cfg RedisConfig) *RedisGenStore {
	return &RedisGenStore{rdb: cfg.Client, ns: cfg.Namespace, ttl: cfg.TTL, closeClient: cfg.CloseClient}
}

func (s *RedisGenStore) key(k string) string { return "gen:" + s.ns + ":" + k }

func (s *RedisGenStore) Snapshot(ctx context.Context, k string) (uint64, error) {
	res, err := s.rdb.Get(ctx, s.key(k)).Result()
	if err == redis.Nil {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	u, err := strconv.ParseUint(res, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("redis gen parse: %w", err)
	}
	return u, nil
}

// Bump pipelines INCR + EXPIRE in one round-trip when a TTL is set.
func (s *RedisGenStore) Bump(ctx context.Context, k string) (uint64, error) {
	key := s.key(k)

	if s.ttl <= 0 {
		v, err := s.rdb.Incr(ctx, key).Result()
		if err != nil {
			return 0, err
		}
		return uint64(v), nil
	}

	var incr *redis.IntCmd
	_, err := s.rdb.Pipelined(ctx, func(p redis.Pipeliner) error {
		incr = p.Incr(ctx, key)
		p.Expire(ctx, key, s.ttl)
		return nil
	})
	if err != nil {
		return 0, err
	}
	return uint64(incr.Val()), nil
}

func (s *RedisGenStore) Cleanup(time.Duration) {}

func (s *RedisGenStore) Close(context.Context) error {
	if s.closeClient {
		return s.rdb.Close()
	}
	return nil
}
