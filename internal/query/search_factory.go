package query

import (
	"strings"

	"github.com/geocoder-api/internal/domain"
	"github.com/geocoder-api/internal/pkg/errors"
	"github.com/geocoder-api/internal/usecase/dto"
)

// Options is the read-only configuration shared by the request factories.
type Options struct {
	Languages      LanguageSet
	SearchMaxLimit int
	BulkMaxItems   int
}

// SearchRequestFactory turns raw forward-geocoding input into descriptors.
type SearchRequestFactory struct {
	opts Options
}

func NewSearchRequestFactory(opts Options) *SearchRequestFactory {
	return &SearchRequestFactory{opts: opts}
}

// searchCommon holds everything but the query text; bulk requests share it.
type searchCommon struct {
	language string
	limit    int
	bias     *domain.Point
	bbox     *domain.BoundingBox
	scale    float64
	filters  *domain.TagFilterSet
}

func (c searchCommon) build(query string) domain.SearchVariant {
	base := domain.SearchRequest{
		Query:        query,
		Limit:        c.limit,
		BiasLocation: c.bias,
		BiasScale:    c.scale,
		BoundingBox:  c.bbox,
		Language:     c.language,
	}
	if c.filters == nil {
		return base
	}
	return domain.FilteredSearchRequest{SearchRequest: base, Filters: c.filters}
}

// FromQuery builds a descriptor from GET /api parameters.
func (f *SearchRequestFactory) FromQuery(params Params) (domain.SearchVariant, error) {
	if err := CheckAllowedParams(params, SearchParams); err != nil {
		return nil, err
	}

	lang, err := ParseLanguage(params.Get("lang"), f.opts.Languages)
	if err != nil {
		return nil, err
	}

	q, ok := params.Lookup("q")
	if !ok || strings.TrimSpace(q) == "" {
		return nil, missingQuery()
	}

	common, err := f.commonFromQuery(params, lang)
	if err != nil {
		return nil, err
	}
	return common.build(q), nil
}

// BulkFromQuery builds one descriptor per query of GET /bulk; queries are
// joined by "_" in q, so a single query can never contain it.
func (f *SearchRequestFactory) BulkFromQuery(params Params) (domain.BulkSearchRequest, error) {
	if err := CheckAllowedParams(params, SearchParams); err != nil {
		return domain.BulkSearchRequest{}, err
	}

	lang, err := ParseLanguage(params.Get("lang"), f.opts.Languages)
	if err != nil {
		return domain.BulkSearchRequest{}, err
	}

	q, ok := params.Lookup("q")
	if !ok || strings.TrimSpace(q) == "" {
		return domain.BulkSearchRequest{}, missingQuery()
	}
	queries := strings.Split(q, BulkQuerySeparator)
	for i, query := range queries {
		if strings.TrimSpace(query) == "" {
			return domain.BulkSearchRequest{}, errors.ErrMissingRequiredField.Newf("empty search term at position %d of 'q'", i)
		}
	}
	if err := checkBulkSize(len(queries), f.opts.BulkMaxItems, "queries"); err != nil {
		return domain.BulkSearchRequest{}, err
	}

	common, err := f.commonFromQuery(params, lang)
	if err != nil {
		return domain.BulkSearchRequest{}, err
	}
	return common.expand(queries), nil
}

// FromBody builds a descriptor from a POST /api body. Tag filters come from
// the body when it has any, otherwise from the osm_tag query parameters.
func (f *SearchRequestFactory) FromBody(body *dto.SearchBody, queryTags []string) (domain.SearchVariant, error) {
	lang, err := ParseLanguage(body.Lang, f.opts.Languages)
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(body.Query) == "" {
		return nil, errors.ErrMissingRequiredField.Newf("missing param 'query'")
	}

	common, err := f.commonFromBody(lang, bodySearchFields{
		limit:    body.Limit,
		lon:      body.Lon,
		lat:      body.Lat,
		location: body.Location,
		bbox:     body.BBox,
		scale:    body.LocationBiasScale,
		tags:     pickTags(body.OSMTags, queryTags),
	})
	if err != nil {
		return nil, err
	}
	return common.build(body.Query), nil
}

// BulkFromBody builds one descriptor per entry of a POST /bulk body.
func (f *SearchRequestFactory) BulkFromBody(body *dto.BulkSearchBody, queryTags []string) (domain.BulkSearchRequest, error) {
	lang, err := ParseLanguage(body.Lang, f.opts.Languages)
	if err != nil {
		return domain.BulkSearchRequest{}, err
	}

	if len(body.Queries) == 0 {
		return domain.BulkSearchRequest{}, errors.ErrMissingRequiredField.Newf("missing queries")
	}
	for i, query := range body.Queries {
		if strings.TrimSpace(query) == "" {
			return domain.BulkSearchRequest{}, errors.ErrMissingRequiredField.Newf("missing param 'queries[%d]'", i)
		}
	}
	if err := checkBulkSize(len(body.Queries), f.opts.BulkMaxItems, "queries"); err != nil {
		return domain.BulkSearchRequest{}, err
	}

	common, err := f.commonFromBody(lang, bodySearchFields{
		limit:    body.Limit,
		lon:      body.Lon,
		lat:      body.Lat,
		location: body.Location,
		bbox:     body.BBox,
		scale:    body.LocationBiasScale,
		tags:     pickTags(body.OSMTags, queryTags),
	})
	if err != nil {
		return domain.BulkSearchRequest{}, err
	}
	return common.expand(body.Queries), nil
}

func (f *SearchRequestFactory) commonFromQuery(params Params, lang string) (searchCommon, error) {
	c := searchCommon{
		language: lang,
		limit:    ParseSearchLimit(params.Get("limit"), f.opts.SearchMaxLimit),
	}

	lon, lonOK := params.Lookup("lon")
	lat, latOK := params.Lookup("lat")
	bias, err := ParseLocation(lon, lonOK, lat, latOK, false)
	if err != nil {
		return searchCommon{}, err
	}
	c.bias = bias

	bboxRaw, bboxOK := params.Lookup("bbox")
	if c.bbox, err = ParseBoundingBox(bboxRaw, bboxOK); err != nil {
		return searchCommon{}, err
	}

	if c.scale, err = ParseScale(params.Get("location_bias_scale")); err != nil {
		return searchCommon{}, err
	}

	if c.filters, err = CompileTagFilters(params.All("osm_tag")); err != nil {
		return searchCommon{}, err
	}
	return c, nil
}

type bodySearchFields struct {
	limit    int
	lon, lat *float64
	location *dto.Location
	bbox     []float64
	scale    float64
	tags     []string
}

func (f *SearchRequestFactory) commonFromBody(lang string, b bodySearchFields) (searchCommon, error) {
	c := searchCommon{
		language: lang,
		limit:    NormalizeSearchLimit(b.limit, f.opts.SearchMaxLimit),
	}

	var err error
	if c.bias, err = bodyLocation(b.lon, b.lat, b.location, false); err != nil {
		return searchCommon{}, err
	}
	if c.bbox, err = BoundingBoxFromSlice(b.bbox); err != nil {
		return searchCommon{}, err
	}
	if c.scale, err = NormalizeScale(b.scale); err != nil {
		return searchCommon{}, err
	}
	if c.filters, err = CompileTagFilters(b.tags); err != nil {
		return searchCommon{}, err
	}
	return c, nil
}

// expand shares one filter set across the whole batch.
func (c searchCommon) expand(queries []string) domain.BulkSearchRequest {
	requests := make([]domain.SearchVariant, 0, len(queries))
	for _, q := range queries {
		requests = append(requests, c.build(q))
	}
	return domain.BulkSearchRequest{Requests: requests}
}

func pickTags(bodyTags, queryTags []string) []string {
	if len(bodyTags) > 0 {
		return bodyTags
	}
	return queryTags
}

func missingQuery() error {
	return errors.ErrMissingRequiredField.Newf("missing search term 'q': /?q=berlin")
}
