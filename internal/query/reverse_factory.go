package query

import (
	"github.com/geocoder-api/internal/domain"
	"github.com/geocoder-api/internal/usecase/dto"
)

// ReverseRequestFactory turns raw reverse-geocoding input into descriptors.
type ReverseRequestFactory struct {
	opts Options
}

func NewReverseRequestFactory(opts Options) *ReverseRequestFactory {
	return &ReverseRequestFactory{opts: opts}
}

type reverseCommon struct {
	language          string
	radius            float64
	sortByDistance    bool
	limit             int
	queryStringFilter string
}

func (c reverseCommon) build(location domain.Point) domain.ReverseRequest {
	return domain.ReverseRequest{
		Location:          location,
		Radius:            c.radius,
		Limit:             c.limit,
		Language:          c.language,
		QueryStringFilter: c.queryStringFilter,
		SortByDistance:    c.sortByDistance,
	}
}

func (c reverseCommon) expand(locations []domain.Point) domain.BulkReverseRequest {
	requests := make([]domain.ReverseRequest, 0, len(locations))
	for _, loc := range locations {
		requests = append(requests, c.build(loc))
	}
	return domain.BulkReverseRequest{Requests: requests}
}

// FromQuery builds a descriptor from GET /reverse parameters.
func (f *ReverseRequestFactory) FromQuery(params Params) (domain.ReverseRequest, error) {
	if err := CheckAllowedParams(params, ReverseParams); err != nil {
		return domain.ReverseRequest{}, err
	}

	lang, err := ParseLanguage(params.Get("lang"), f.opts.Languages)
	if err != nil {
		return domain.ReverseRequest{}, err
	}

	lon, lonOK := params.Lookup("lon")
	lat, latOK := params.Lookup("lat")
	location, err := ParseLocation(lon, lonOK, lat, latOK, true)
	if err != nil {
		return domain.ReverseRequest{}, err
	}

	common, err := f.commonFromQuery(params, lang)
	if err != nil {
		return domain.ReverseRequest{}, err
	}
	return common.build(*location), nil
}

// BulkFromQuery builds one descriptor per coordinate of the comma separated
// lon and lat lists of GET /bulk/reverse.
func (f *ReverseRequestFactory) BulkFromQuery(params Params) (domain.BulkReverseRequest, error) {
	if err := CheckAllowedParams(params, ReverseParams); err != nil {
		return domain.BulkReverseRequest{}, err
	}

	lang, err := ParseLanguage(params.Get("lang"), f.opts.Languages)
	if err != nil {
		return domain.BulkReverseRequest{}, err
	}

	lon, lonOK := params.Lookup("lon")
	lat, latOK := params.Lookup("lat")
	locations, err := ParseLocationList(lon, lonOK, lat, latOK)
	if err != nil {
		return domain.BulkReverseRequest{}, err
	}
	if err := checkBulkSize(len(locations), f.opts.BulkMaxItems, "locations"); err != nil {
		return domain.BulkReverseRequest{}, err
	}

	common, err := f.commonFromQuery(params, lang)
	if err != nil {
		return domain.BulkReverseRequest{}, err
	}
	return common.expand(locations), nil
}

// FromBody builds a descriptor from a POST /reverse body.
func (f *ReverseRequestFactory) FromBody(body *dto.ReverseBody) (domain.ReverseRequest, error) {
	lang, err := ParseLanguage(body.Lang, f.opts.Languages)
	if err != nil {
		return domain.ReverseRequest{}, err
	}

	location, err := bodyLocation(body.Lon, body.Lat, body.Location, true)
	if err != nil {
		return domain.ReverseRequest{}, err
	}

	common, err := reverseCommonFromBody(lang, body.Radius, body.DistanceSort, body.Limit, body.QueryStringFilter)
	if err != nil {
		return domain.ReverseRequest{}, err
	}
	return common.build(*location), nil
}

// BulkFromBody builds one descriptor per entry of a POST /bulk/reverse body.
func (f *ReverseRequestFactory) BulkFromBody(body *dto.BulkReverseBody) (domain.BulkReverseRequest, error) {
	lang, err := ParseLanguage(body.Lang, f.opts.Languages)
	if err != nil {
		return domain.BulkReverseRequest{}, err
	}

	if len(body.Locations) == 0 {
		return domain.BulkReverseRequest{}, errMissingLocations()
	}
	locations := make([]domain.Point, 0, len(body.Locations))
	for i := range body.Locations {
		loc, err := bodyLocation(nil, nil, &body.Locations[i], true)
		if err != nil {
			return domain.BulkReverseRequest{}, err
		}
		locations = append(locations, *loc)
	}
	if err := checkBulkSize(len(locations), f.opts.BulkMaxItems, "locations"); err != nil {
		return domain.BulkReverseRequest{}, err
	}

	common, err := reverseCommonFromBody(lang, body.Radius, body.DistanceSort, body.Limit, body.QueryStringFilter)
	if err != nil {
		return domain.BulkReverseRequest{}, err
	}
	return common.expand(locations), nil
}

func (f *ReverseRequestFactory) commonFromQuery(params Params, lang string) (reverseCommon, error) {
	c := reverseCommon{
		language:          lang,
		queryStringFilter: params.Get("query_string_filter"),
	}

	var err error
	radius, radiusOK := params.Lookup("radius")
	if c.radius, err = ParseRadius(radius, radiusOK); err != nil {
		return reverseCommon{}, err
	}

	sortRaw, sortOK := params.Lookup("distance_sort")
	if c.sortByDistance, err = ParseDistanceSort(sortRaw, sortOK); err != nil {
		return reverseCommon{}, err
	}

	limit, limitOK := params.Lookup("limit")
	if c.limit, err = ParseReverseLimit(limit, limitOK); err != nil {
		return reverseCommon{}, err
	}
	return c, nil
}

func reverseCommonFromBody(lang string, radius float64, distanceSort *bool, limit int, queryStringFilter string) (reverseCommon, error) {
	c := reverseCommon{
		language:          lang,
		sortByDistance:    true,
		queryStringFilter: queryStringFilter,
	}
	if distanceSort != nil {
		c.sortByDistance = *distanceSort
	}

	var err error
	if c.radius, err = NormalizeRadius(radius); err != nil {
		return reverseCommon{}, err
	}
	if c.limit, err = NormalizeReverseLimit(limit); err != nil {
		return reverseCommon{}, err
	}
	return c, nil
}
