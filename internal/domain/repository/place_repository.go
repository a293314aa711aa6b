package repository

import (
	"context"

	"github.com/geocoder-api/internal/domain"
)

// PlaceRepository executes normalized requests against the search backend.
type PlaceRepository interface {
	// Search runs a forward-geocoding query. filters is nil for unfiltered requests.
	Search(ctx context.Context, req domain.SearchRequest, filters *domain.TagFilterSet) ([]*domain.Place, error)

	// Reverse returns places within req.Radius kilometers of req.Location.
	Reverse(ctx context.Context, req domain.ReverseRequest) ([]*domain.Place, error)
}
