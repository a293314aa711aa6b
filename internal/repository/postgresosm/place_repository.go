package postgresosm

import (
	"context"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/geocoder-api/internal/domain"
	"github.com/geocoder-api/internal/domain/repository"
	pkgerrors "github.com/geocoder-api/internal/pkg/errors"
)

type placeRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

// NewPlaceRepository создает репозиторий мест поверх planet_osm_point
func NewPlaceRepository(db *DB) repository.PlaceRepository {
	return &placeRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

func (r *placeRepository) Search(ctx context.Context, req domain.SearchRequest, filters *domain.TagFilterSet) ([]*domain.Place, error) {
	query, args := buildSearchQuery(req, filters)

	places, err := r.queryPlaces(ctx, query, args)
	if err != nil {
		r.logger.Error("failed to search osm places",
			zap.String("query", req.Query),
			zap.Bool("filtered", filters != nil),
			zap.Error(err),
		)
		return nil, pkgerrors.ErrDatabaseError
	}
	return places, nil
}

func (r *placeRepository) Reverse(ctx context.Context, req domain.ReverseRequest) ([]*domain.Place, error) {
	query, args := buildReverseQuery(req)

	places, err := r.queryPlaces(ctx, query, args)
	if err != nil {
		r.logger.Error("failed to reverse geocode",
			zap.Float64("lat", req.Location.Lat),
			zap.Float64("lon", req.Location.Lon),
			zap.Float64("radius_km", req.Radius),
			zap.Error(err),
		)
		return nil, pkgerrors.ErrDatabaseError
	}
	return places, nil
}

func (r *placeRepository) queryPlaces(ctx context.Context, query string, args []interface{}) ([]*domain.Place, error) {
	rows, err := r.db.QueryxContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make([]*domain.Place, 0)
	for rows.Next() {
		var row placeRow
		if err := rows.StructScan(&row); err != nil {
			r.logger.Error("failed to scan place row", zap.Error(err))
			continue
		}
		result = append(result, row.toDomain())
	}

	return result, rows.Err()
}
