package query

import (
	"math"
	"strconv"
	"strings"

	"github.com/geocoder-api/internal/domain"
	"github.com/geocoder-api/internal/pkg/errors"
	"github.com/geocoder-api/internal/pkg/utils"
)

const (
	DefaultLanguage     = "en"
	DefaultSearchLimit  = 15
	DefaultBiasScale    = 1.6
	DefaultReverseLimit = 1
	MaxReverseLimit     = 50
	DefaultRadius       = 1.0
	MaxRadius           = 5000.0
	BulkQuerySeparator  = "_"
	bulkCoordinateSplit = ","
	coordinateHint      = "invalid search term 'lat' and/or 'lon', try instead lat=51.5&lon=8.0"
	bboxFormatHint      = "expected format is: minLon,minLat,maxLon,maxLat"
)

// CheckAllowedParams fails on the first parameter name that is not in allowed.
func CheckAllowedParams(params Params, allowed AllowList) error {
	for _, key := range params.Keys() {
		if !allowed.Contains(key) {
			return errors.ErrUnknownParameter.
				Newf("unknown query parameter '%s'.  Allowed parameters are: %s", key, allowed).
				WithDetails(map[string]interface{}{"parameter": key})
		}
	}
	return nil
}

// ParseLanguage defaults an empty code to "en" and checks it against supported.
func ParseLanguage(raw string, supported LanguageSet) (string, error) {
	lang := strings.TrimSpace(raw)
	if lang == "" {
		lang = DefaultLanguage
	}
	if !supported.Contains(lang) {
		return "", errors.ErrUnsupportedLanguage.Newf("language %s is not supported, supported languages are: %s", lang, supported)
	}
	return lang, nil
}

// ParseSearchLimit never fails: anything that is not a usable integer falls
// back to the default, and the result is clamped to max.
func ParseSearchLimit(raw string, max int) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return NormalizeSearchLimit(0, max)
	}
	return NormalizeSearchLimit(n, max)
}

// NormalizeSearchLimit maps non-positive values to the default and clamps to max.
func NormalizeSearchLimit(n, max int) int {
	if n <= 0 {
		n = DefaultSearchLimit
	}
	if max > 0 && n > max {
		n = max
	}
	return n
}

// ParseReverseLimit: absent -> 1, non-integer or non-positive -> error, clamped to 50.
func ParseReverseLimit(raw string, present bool) (int, error) {
	if !present {
		return DefaultReverseLimit, nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, errors.ErrInvalidNumber.Newf("invalid search term 'limit', expected an integer.")
	}
	return checkReverseLimit(n)
}

// NormalizeReverseLimit treats zero as unset.
func NormalizeReverseLimit(n int) (int, error) {
	if n == 0 {
		return DefaultReverseLimit, nil
	}
	return checkReverseLimit(n)
}

func checkReverseLimit(n int) (int, error) {
	if n <= 0 {
		return 0, errors.ErrInvalidParameter.Newf("invalid search term 'limit', expected a strictly positive integer.")
	}
	if n > MaxReverseLimit {
		n = MaxReverseLimit
	}
	return n, nil
}

// ParseScale: absent or empty -> 1.6. Zero is kept as sent.
func ParseScale(raw string) (float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return DefaultBiasScale, nil
	}
	scale, err := parseFloat(raw)
	if err != nil {
		return 0, errors.ErrInvalidNumber.Newf("invalid parameter 'location_bias_scale' must be a number")
	}
	return checkScale(scale)
}

// NormalizeScale treats zero as unset.
func NormalizeScale(scale float64) (float64, error) {
	if scale == 0 {
		return DefaultBiasScale, nil
	}
	return checkScale(scale)
}

func checkScale(scale float64) (float64, error) {
	if scale < 0 {
		return 0, errors.ErrInvalidParameter.Newf("invalid parameter 'location_bias_scale' must not be negative")
	}
	return scale, nil
}

// ParseRadius: absent -> 1 km, non-numeric or non-positive -> error, clamped to 5000 km.
func ParseRadius(raw string, present bool) (float64, error) {
	if !present {
		return DefaultRadius, nil
	}
	radius, err := parseFloat(raw)
	if err != nil {
		return 0, errors.ErrInvalidNumber.Newf("invalid search term 'radius', expected a number.")
	}
	return checkRadius(radius)
}

// NormalizeRadius treats zero as unset.
func NormalizeRadius(radius float64) (float64, error) {
	if radius == 0 {
		return DefaultRadius, nil
	}
	return checkRadius(radius)
}

func checkRadius(radius float64) (float64, error) {
	if radius <= 0 {
		return 0, errors.ErrInvalidParameter.Newf("invalid search term 'radius', expected a strictly positive number.")
	}
	return math.Min(radius, MaxRadius), nil
}

// ParseDistanceSort: absent -> true.
func ParseDistanceSort(raw string, present bool) (bool, error) {
	if !present {
		return true, nil
	}
	v, err := strconv.ParseBool(strings.TrimSpace(raw))
	if err != nil {
		return false, errors.ErrInvalidParameter.Newf("invalid parameter 'distance_sort', can only be true or false")
	}
	return v, nil
}

// ParseLocation reads a lon/lat pair. A missing pair is nil unless mandatory.
func ParseLocation(lonRaw string, lonPresent bool, latRaw string, latPresent bool, mandatory bool) (*domain.Point, error) {
	if !lonPresent && !latPresent {
		if mandatory {
			return nil, errors.ErrMissingRequiredField.Newf("missing search term 'lat' and 'lon', try instead lat=51.5&lon=8.0")
		}
		return nil, nil
	}
	if !lonPresent || !latPresent {
		return nil, errors.ErrInvalidCoordinate.Newf(coordinateHint)
	}

	lon, err := parseFloat(lonRaw)
	if err != nil {
		return nil, errors.ErrInvalidCoordinate.Newf(coordinateHint)
	}
	lat, err := parseFloat(latRaw)
	if err != nil {
		return nil, errors.ErrInvalidCoordinate.Newf(coordinateHint)
	}

	p := domain.Point{Lat: lat, Lon: lon}
	if err := CheckLocation(p); err != nil {
		return nil, err
	}
	return &p, nil
}

// ParseLocationList reads parallel comma separated lon and lat lists.
// Both lists are mandatory and must have the same length.
func ParseLocationList(lonRaw string, lonPresent bool, latRaw string, latPresent bool) ([]domain.Point, error) {
	if !lonPresent && !latPresent {
		return nil, errors.ErrMissingRequiredField.Newf("missing search term 'lat' and 'lon', try instead lat=51.5,48.1&lon=8.0,11.5")
	}
	if !lonPresent || !latPresent {
		return nil, errors.ErrInvalidCoordinate.Newf(coordinateHint)
	}

	lons := strings.Split(lonRaw, bulkCoordinateSplit)
	lats := strings.Split(latRaw, bulkCoordinateSplit)
	if len(lons) != len(lats) {
		return nil, errors.ErrCardinalityMismatch.Newf("number of lat's and lon's don't match").
			WithDetails(map[string]interface{}{"lon": len(lons), "lat": len(lats)})
	}

	points := make([]domain.Point, 0, len(lons))
	for i := range lons {
		lon, err := parseFloat(lons[i])
		if err != nil {
			return nil, errors.ErrInvalidCoordinate.Newf(coordinateHint)
		}
		if !utils.ValidLongitude(lon) {
			return nil, lonOutOfRange()
		}
		lat, err := parseFloat(lats[i])
		if err != nil {
			return nil, errors.ErrInvalidCoordinate.Newf(coordinateHint)
		}
		if !utils.ValidLatitude(lat) {
			return nil, latOutOfRange()
		}
		points = append(points, domain.Point{Lat: lat, Lon: lon})
	}
	return points, nil
}

// CheckLocation fails with OutOfRange outside [-180,180]x[-90,90].
func CheckLocation(p domain.Point) error {
	if !utils.ValidLongitude(p.Lon) {
		return lonOutOfRange()
	}
	if !utils.ValidLatitude(p.Lat) {
		return latOutOfRange()
	}
	return nil
}

func lonOutOfRange() error {
	return errors.ErrOutOfRange.Newf("invalid search term 'lon', expected number >= -180.0 and <= 180.0")
}

func latOutOfRange() error {
	return errors.ErrOutOfRange.Newf("invalid search term 'lat', expected number >= -90.0 and <= 90.0")
}

// ParseBoundingBox reads "minLon,minLat,maxLon,maxLat". Absent means no restriction.
func ParseBoundingBox(raw string, present bool) (*domain.BoundingBox, error) {
	if !present {
		return nil, nil
	}
	parts := strings.Split(raw, ",")
	if len(parts) != 4 {
		return nil, errors.ErrInvalidBoundingBox.Newf("invalid number of supplied coordinates for parameter 'bbox', %s", bboxFormatHint)
	}

	values := make([]float64, 4)
	for i, part := range parts {
		v, err := parseFloat(part)
		if err != nil {
			return nil, errors.ErrInvalidNumber.Newf("invalid number '%s' in parameter 'bbox', %s", strings.TrimSpace(part), bboxFormatHint)
		}
		values[i] = v
	}
	return BoundingBoxFromSlice(values)
}

// BoundingBoxFromSlice builds a box from [minLon, minLat, maxLon, maxLat]. Nil means no restriction.
func BoundingBoxFromSlice(values []float64) (*domain.BoundingBox, error) {
	if values == nil {
		return nil, nil
	}
	if len(values) != 4 {
		return nil, errors.ErrInvalidBoundingBox.Newf("invalid number of supplied coordinates for parameter 'bbox', %s", bboxFormatHint)
	}

	box := domain.BoundingBox{
		MinLon: values[0],
		MinLat: values[1],
		MaxLon: values[2],
		MaxLat: values[3],
	}
	if err := CheckBoundingBox(box); err != nil {
		return nil, err
	}
	return &box, nil
}

// CheckBoundingBox requires in-range corners and min <= max on both axes.
func CheckBoundingBox(b domain.BoundingBox) error {
	if !utils.ValidLongitude(b.MinLon) || !utils.ValidLongitude(b.MaxLon) {
		return errors.ErrOutOfRange.Newf("invalid parameter 'bbox', longitudes must be >= -180.0 and <= 180.0")
	}
	if !utils.ValidLatitude(b.MinLat) || !utils.ValidLatitude(b.MaxLat) {
		return errors.ErrOutOfRange.Newf("invalid parameter 'bbox', latitudes must be >= -90.0 and <= 90.0")
	}
	if b.MinLon > b.MaxLon || b.MinLat > b.MaxLat {
		return errors.ErrInvalidBoundingBox.Newf("invalid parameter 'bbox', minimum must not exceed maximum, %s", bboxFormatHint)
	}
	return nil
}

// parseFloat rejects NaN and infinities along with malformed input.
func parseFloat(raw string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, err
	}
	if !utils.IsFinite(v) {
		return 0, strconv.ErrRange
	}
	return v, nil
}
