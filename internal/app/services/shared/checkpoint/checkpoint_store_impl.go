package checkpoint

import (
	"context"
	"labrequest-service/internal/app/contracts"
	"labrequest-service/internal/pkg/wizard"
	"time"
)

// redisCheckpointStore adapts the redis repository to the wizard engine's
// checkpoint port. Checkpoints expire after the configured TTL so abandoned
// drafts eventually clean themselves up.
type redisCheckpointStore struct {
	redisRepository contracts.RedisRepository
	ttl             time.Duration
}

func NewRedisCheckpointStore(redisRepository contracts.RedisRepository, ttl time.Duration) wizard.CheckpointStore {
	return &redisCheckpointStore{
		redisRepository: redisRepository,
		ttl:             ttl,
	}
}

func (s *redisCheckpointStore) Load(ctx context.Context, key string) (string, error) {
	return s.redisRepository.Get(ctx, key)
}

func (s *redisCheckpointStore) Save(ctx context.Context, key string, value interface{}) error {
	return s.redisRepository.Set(ctx, key, value, s.ttl)
}

func (s *redisCheckpointStore) Clear(ctx context.Context, key string) error {
	return s.redisRepository.Delete(ctx, key)
}
