package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"hash/fnv"
	"sort"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/geocoder-api/internal/domain"
	"github.com/geocoder-api/internal/domain/repository"
	"github.com/geocoder-api/internal/pkg/utils"
	"github.com/geocoder-api/internal/usecase/dto"
)

// GeocodeUseCase - выполнение нормализованных запросов геокодирования
type GeocodeUseCase struct {
	placeRepo       repository.PlaceRepository
	cacheRepo       repository.CacheRepository
	logger          *zap.Logger
	cacheTTL        time.Duration
	bulkConcurrency int
}

// NewGeocodeUseCase - создание нового GeocodeUseCase; cacheRepo может быть nil
func NewGeocodeUseCase(
	placeRepo repository.PlaceRepository,
	cacheRepo repository.CacheRepository,
	logger *zap.Logger,
	cacheTTL time.Duration,
	bulkConcurrency int,
) *GeocodeUseCase {
	if bulkConcurrency <= 0 {
		bulkConcurrency = 1
	}
	return &GeocodeUseCase{
		placeRepo:       placeRepo,
		cacheRepo:       cacheRepo,
		logger:          logger,
		cacheTTL:        cacheTTL,
		bulkConcurrency: bulkConcurrency,
	}
}

// Search - прямое геокодирование
func (uc *GeocodeUseCase) Search(ctx context.Context, req domain.SearchVariant) (*dto.FeatureCollection, error) {
	places, err := uc.search(ctx, req)
	if err != nil {
		return nil, err
	}
	return dto.NewFeatureCollection(places), nil
}

// Reverse - обратное геокодирование
func (uc *GeocodeUseCase) Reverse(ctx context.Context, req domain.ReverseRequest) (*dto.FeatureCollection, error) {
	places, err := uc.reverse(ctx, req)
	if err != nil {
		return nil, err
	}
	return dto.NewFeatureCollection(places), nil
}

// BulkSearch runs every descriptor concurrently; the i-th collection answers the i-th query.
func (uc *GeocodeUseCase) BulkSearch(ctx context.Context, req domain.BulkSearchRequest) ([]*dto.FeatureCollection, error) {
	return runBulk(ctx, uc.bulkConcurrency, req.Requests, uc.Search)
}

// BulkReverse runs every descriptor concurrently; the i-th collection answers the i-th location.
func (uc *GeocodeUseCase) BulkReverse(ctx context.Context, req domain.BulkReverseRequest) ([]*dto.FeatureCollection, error) {
	return runBulk(ctx, uc.bulkConcurrency, req.Requests, uc.Reverse)
}

func runBulk[T any](ctx context.Context, limit int, requests []T, run func(context.Context, T) (*dto.FeatureCollection, error)) ([]*dto.FeatureCollection, error) {
	results := make([]*dto.FeatureCollection, len(requests))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	for i, req := range requests {
		i, req := i, req
		g.Go(func() error {
			fc, err := run(gctx, req)
			if err != nil {
				return err
			}
			results[i] = fc
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func (uc *GeocodeUseCase) search(ctx context.Context, req domain.SearchVariant) ([]*domain.Place, error) {
	var filters *domain.TagFilterSet
	if filtered, ok := req.(domain.FilteredSearchRequest); ok {
		filters = filtered.Filters
	}

	fingerprint, cacheable := uc.fingerprint(req)
	if cacheable {
		if places, ok := uc.fromCache(ctx, fingerprint); ok {
			return places, nil
		}
	}

	places, err := uc.placeRepo.Search(ctx, req.Base(), filters)
	if err != nil {
		uc.logger.Error("Failed to search places", zap.String("query", req.Base().Query), zap.Error(err))
		return nil, err
	}

	if cacheable {
		uc.toCache(ctx, fingerprint, places)
	}
	return places, nil
}

func (uc *GeocodeUseCase) reverse(ctx context.Context, req domain.ReverseRequest) ([]*domain.Place, error) {
	places, err := uc.placeRepo.Reverse(ctx, req)
	if err != nil {
		uc.logger.Error("Failed to reverse geocode",
			zap.Float64("lat", req.Location.Lat),
			zap.Float64("lon", req.Location.Lon),
			zap.Error(err),
		)
		return nil, err
	}

	for _, p := range places {
		if p.Distance == nil {
			d := utils.HaversineDistance(req.Location.Lat, req.Location.Lon, p.Location.Lat, p.Location.Lon)
			p.Distance = &d
		}
	}
	if req.SortByDistance {
		sort.SliceStable(places, func(i, j int) bool {
			return *places[i].Distance < *places[j].Distance
		})
	}
	if len(places) > req.Limit {
		places = places[:req.Limit]
	}
	return places, nil
}

// fingerprint hashes the whole descriptor, so any normalized difference is a different entry.
func (uc *GeocodeUseCase) fingerprint(req domain.SearchVariant) (string, bool) {
	if uc.cacheRepo == nil || uc.cacheTTL <= 0 {
		return "", false
	}

	raw, err := json.Marshal(req)
	if err != nil {
		return "", false
	}
	h := fnv.New64a()
	_, _ = h.Write([]byte(req.Kind().String()))
	_, _ = h.Write(raw)
	return fmt.Sprintf("%x", h.Sum64()), true
}

// fromCache treats every cache failure as a miss.
func (uc *GeocodeUseCase) fromCache(ctx context.Context, fingerprint string) ([]*domain.Place, bool) {
	places, err := uc.cacheRepo.GetSearchResult(ctx, fingerprint)
	if err != nil {
		uc.logger.Warn("Cache read failed, falling back to database", zap.String("fingerprint", fingerprint), zap.Error(err))
		return nil, false
	}
	return places, places != nil
}

func (uc *GeocodeUseCase) toCache(ctx context.Context, fingerprint string, places []*domain.Place) {
	if err := uc.cacheRepo.SetSearchResult(ctx, fingerprint, places, uc.cacheTTL); err != nil {
		uc.logger.Warn("Cache write failed", zap.String("fingerprint", fingerprint), zap.Error(err))
	}
}
