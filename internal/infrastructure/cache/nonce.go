package cache

import (
	"context"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/redis/go-redis/v9"
)

const nonceKeyPrefix = "nonce"

// RedisNonces hands out sequential signature nonces per (message kind, account).
// The first nonce for a pair is 0.
type RedisNonces struct {
	rdb *redis.Client
}

func NewRedisNonces(rdb *redis.Client) *RedisNonces { return &RedisNonces{rdb: rdb} }

func nonceKey(kind string, account common.Address) string {
	return fmt.Sprintf("%s:%s:%s", nonceKeyPrefix, kind, strings.ToLower(account.Hex()))
}

func (n *RedisNonces) Next(ctx context.Context, kind string, account common.Address) (uint64, error) {
	v, err := n.rdb.Incr(ctx, nonceKey(kind, account)).Result()
	if err != nil {
		return 0, fmt.Errorf("allocate %s nonce: %w", kind, err)
	}
	return uint64(v - 1), nil
}
