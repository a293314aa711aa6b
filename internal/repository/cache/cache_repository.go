package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/geocoder-api/internal/domain"
	"github.com/geocoder-api/internal/domain/repository"
)

const searchKeyPrefix = "geocode:search:"

// SearchKey - ключ Redis для результата поиска
func SearchKey(fingerprint string) string {
	return searchKeyPrefix + fingerprint
}

type cacheRepository struct {
	client *redis.Client
	logger *zap.Logger
}

func NewCacheRepository(redis *Redis) repository.CacheRepository {
	return &cacheRepository{
		client: redis.Client(),
		logger: redis.logger,
	}
}

func (r *cacheRepository) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := r.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, nil // Cache miss
	}
	if err != nil {
		r.logger.Error("Failed to get from cache", zap.String("key", key), zap.Error(err))
		return nil, fmt.Errorf("cache get error: %w", err)
	}

	r.logger.Debug("Cache hit", zap.String("key", key))
	return val, nil
}

func (r *cacheRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	err := r.client.Set(ctx, key, value, ttl).Err()
	if err != nil {
		r.logger.Error("Failed to set cache", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("cache set error: %w", err)
	}

	r.logger.Debug("Cache set", zap.String("key", key), zap.Duration("ttl", ttl))
	return nil
}

func (r *cacheRepository) Delete(ctx context.Context, key string) error {
	err := r.client.Del(ctx, key).Err()
	if err != nil {
		r.logger.Error("Failed to delete from cache", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("cache delete error: %w", err)
	}

	r.logger.Debug("Cache deleted", zap.String("key", key))
	return nil
}

// GetSearchResult получает результат поиска из кеша; битая запись удаляется
func (r *cacheRepository) GetSearchResult(ctx context.Context, fingerprint string) ([]*domain.Place, error) {
	key := SearchKey(fingerprint)
	data, err := r.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, nil // Cache miss
	}

	places := []*domain.Place{}
	if err := json.Unmarshal(data, &places); err != nil {
		r.logger.Warn("Dropping corrupt search cache entry", zap.String("key", key), zap.Error(err))
		_ = r.Delete(ctx, key)
		return nil, fmt.Errorf("unmarshal search result: %w", err)
	}

	return places, nil
}

// SetSearchResult сохраняет результат поиска; nil сохраняется как пустой результат
func (r *cacheRepository) SetSearchResult(ctx context.Context, fingerprint string, places []*domain.Place, ttl time.Duration) error {
	if places == nil {
		places = []*domain.Place{}
	}
	data, err := json.Marshal(places)
	if err != nil {
		r.logger.Error("Failed to marshal search result", zap.Error(err))
		return fmt.Errorf("marshal search result: %w", err)
	}

	return r.Set(ctx, SearchKey(fingerprint), data, ttl)
}
