package repository

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"

	repo "github.com/RamiSparda/AppMovilApp/internal/repository"
)

const redisKeyPrefix = "appmovil:"

type KVRedisRepository struct {
	client *redis.Client
	prefix string
}

// DI
func NewKVRedisRepository(client *redis.Client) *KVRedisRepository {
	return &KVRedisRepository{client: client, prefix: redisKeyPrefix}
}

func (r *KVRedisRepository) Get(ctx context.Context, key string) (string, error) {
	v, err := r.client.Get(ctx, r.prefix+key).Result()
	if errors.Is(err, redis.Nil) {
		return "", repo.ErrNotFound
	}
	if err != nil {
		return "", err
	}
	return v, nil
}

// TTLなしで保持する（カートは次回起動時の復元にそのまま使う）
func (r *KVRedisRepository) Set(ctx context.Context, key string, value string) error {
	return r.client.Set(ctx, r.prefix+key, value, 0).Err()
}
