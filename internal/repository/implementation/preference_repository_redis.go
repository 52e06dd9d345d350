package implementation

import (
	"context"
	"strconv"

	"storefront-be/internal/repository/contract"

	"github.com/redis/go-redis/v9"
)

const preferenceKeyPrefix = "prefs:"

// RedisPreferenceRepository keeps one hash per owner under prefs:<owner>.
type RedisPreferenceRepository struct {
	rdb *redis.Client
}

func NewRedisPreferenceRepository(rdb *redis.Client) contract.PreferenceRepository {
	return &RedisPreferenceRepository{rdb: rdb}
}

func (r *RedisPreferenceRepository) Load(ctx context.Context, owner string) (map[string]bool, error) {
	raw, err := r.rdb.HGetAll(ctx, preferenceKeyPrefix+owner).Result()
	if err != nil {
		return nil, err
	}

	prefs := make(map[string]bool, len(raw))
	for k, v := range raw {
		b, err := strconv.ParseBool(v)
		if err != nil {
			continue
		}
		prefs[k] = b
	}
	return prefs, nil
}

func (r *RedisPreferenceRepository) Set(ctx context.Context, owner, key string, value bool) error {
	return r.rdb.HSet(ctx, preferenceKeyPrefix+owner, key, strconv.FormatBool(value)).Err()
}
