package preferences

import (
	"context"
	"fmt"
	"time"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/atlas-api/internal/errors"
	redisclient "github.com/KirkDiggler/atlas-api/internal/redis"
)

const preferenceKeyPrefix = "preferences:"

type redisRepository struct {
	client redisclient.Client
	ttl    time.Duration
}

// RedisConfig contains configuration for the Redis preference repository.
type RedisConfig struct {
	Client redisclient.Client
	// TTL expires a preference after it has not been written for this long.
	// Zero keeps values forever.
	TTL time.Duration
}

// Validate validates the RedisConfig.
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	if cfg.TTL < 0 {
		return errors.InvalidArgument("ttl cannot be negative")
	}
	return nil
}

// NewRedis creates a new Redis-backed preference repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &redisRepository{
		client: cfg.Client,
		ttl:    cfg.TTL,
	}, nil
}

func (r *redisRepository) Load(ctx context.Context, input LoadInput) (*LoadOutput, error) {
	if err := validateSlot(input.ClientID, input.Key); err != nil {
		return nil, err
	}

	result, err := r.client.Get(ctx, GetKey(input.ClientID, input.Key)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("preference %s for client %s not found", input.Key, input.ClientID)
		}
		return nil, errors.Wrapf(err, "failed to load preference %s", input.Key)
	}

	return &LoadOutput{Value: result}, nil
}

func (r *redisRepository) Save(ctx context.Context, input SaveInput) (*SaveOutput, error) {
	if err := validateSlot(input.ClientID, input.Key); err != nil {
		return nil, err
	}
	if err := validateValue(input.Value); err != nil {
		return nil, err
	}

	key := GetKey(input.ClientID, input.Key)
	if err := r.client.Set(ctx, key, []byte(input.Value), r.ttl).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to save preference %s", input.Key)
	}

	return &SaveOutput{}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if err := validateSlot(input.ClientID, input.Key); err != nil {
		return nil, err
	}

	if err := r.client.Del(ctx, GetKey(input.ClientID, input.Key)).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to delete preference %s", input.Key)
	}

	return &DeleteOutput{}, nil
}

// GetKey returns the Redis key for a client's preference
// Exposed for testing purposes
func GetKey(clientID, key string) string {
	return fmt.Sprintf("%s%s:%s", preferenceKeyPrefix, clientID, key)
}
