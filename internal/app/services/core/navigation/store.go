package navigation

import (
	"context"
	"fmt"
	"navigator-service/internal/app/contracts"
	"navigator-service/internal/app/models"
	"navigator-service/internal/pkg/constvars"
	"navigator-service/internal/pkg/exceptions"
	"time"

	"github.com/goccy/go-json"
)

type navigationStateStore struct {
	RedisRepository contracts.RedisRepository
	TTL             time.Duration
}

func NewNavigationStateStore(redisRepository contracts.RedisRepository, ttl time.Duration) contracts.NavigationStateStore {
	return &navigationStateStore{
		RedisRepository: redisRepository,
		TTL:             ttl,
	}
}

func (s *navigationStateStore) Load(ctx context.Context, sessionID string) (*models.NavigationState, error) {
	data, err := s.RedisRepository.Get(ctx, navigationKey(sessionID))
	if err != nil {
		return nil, err
	}
	if data == "" {
		return nil, nil
	}

	state := new(models.NavigationState)
	err = json.Unmarshal([]byte(data), state)
	if err != nil {
		return nil, exceptions.ErrNavigationStateCorrupted(err)
	}

	return state, nil
}

func (s *navigationStateStore) Save(ctx context.Context, sessionID string, state *models.NavigationState) error {
	return s.RedisRepository.Set(ctx, navigationKey(sessionID), state, s.TTL)
}

func (s *navigationStateStore) Delete(ctx context.Context, sessionID string) error {
	return s.RedisRepository.Delete(ctx, navigationKey(sessionID))
}

func navigationKey(sessionID string) string {
	return fmt.Sprintf("%s%s", constvars.NavigationKeyPrefix, sessionID)
}
