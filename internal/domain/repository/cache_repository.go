package repository

import (
	"context"
	"time"

	"github.com/geocoder-api/internal/domain"
)

// CacheRepository определяет методы для работы с кешем
type CacheRepository interface {
	// Get получает значение из кеша по ключу; (nil, nil) означает промах
	Get(ctx context.Context, key string) ([]byte, error)

	// Set сохраняет значение в кеше с TTL
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete удаляет значение из кеша
	Delete(ctx context.Context, key string) error

	// GetSearchResult - результат поиска по отпечатку нормализованного запроса;
	// (nil, nil) означает промах, пустой не-nil срез - закэшированный пустой результат
	GetSearchResult(ctx context.Context, fingerprint string) ([]*domain.Place, error)

	// SetSearchResult сохраняет результат поиска с TTL
	SetSearchResult(ctx context.Context, fingerprint string, places []*domain.Place, ttl time.Duration) error
}
