package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/geocoder-api/internal/domain"
	"github.com/geocoder-api/internal/pkg/errors"
)

func TestCheckAllowedParams(t *testing.T) {
	err := CheckAllowedParams(Params{{"q", "berlin"}, {"limit", "x"}}, SearchParams)
	assert.NoError(t, err)

	err = CheckAllowedParams(Params{{"q", "berlin"}, {"foo", "bar"}}, SearchParams)
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrUnknownParameter)
	assert.Contains(t, err.Error(), "'foo'")
	assert.Contains(t, err.Error(), "Allowed parameters are: [bbox, debug, lang, lat, limit, location_bias_scale, lon, osm_tag, q]")

	err = CheckAllowedParams(Params{{"q", "berlin"}}, ReverseParams)
	assert.ErrorIs(t, err, errors.ErrUnknownParameter)
}

func TestParseLanguage(t *testing.T) {
	langs := NewLanguageSet("en", "de")

	lang, err := ParseLanguage("", langs)
	require.NoError(t, err)
	assert.Equal(t, "en", lang)

	lang, err = ParseLanguage("de", langs)
	require.NoError(t, err)
	assert.Equal(t, "de", lang)

	_, err = ParseLanguage("xx", langs)
	assert.ErrorIs(t, err, errors.ErrUnsupportedLanguage)
}

func TestParseSearchLimit(t *testing.T) {
	tests := []struct {
		raw  string
		want int
	}{
		{"", 15},
		{"abc", 15},
		{"1.5", 15},
		{"0", 15},
		{"-3", 15},
		{"7", 7},
		{"50", 50},
		{"51", 50},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseSearchLimit(tt.raw, 50), "raw=%q", tt.raw)
	}
}

func TestParseReverseLimit(t *testing.T) {
	n, err := ParseReverseLimit("", false)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	for _, v := range []int{1, 2, 25, 50} {
		n, err := NormalizeReverseLimit(v)
		require.NoError(t, err)
		assert.Equal(t, v, n)
	}

	n, err = ParseReverseLimit("51", true)
	require.NoError(t, err)
	assert.Equal(t, 50, n)

	n, err = ParseReverseLimit("100000", true)
	require.NoError(t, err)
	assert.Equal(t, 50, n)

	_, err = ParseReverseLimit("abc", true)
	assert.ErrorIs(t, err, errors.ErrInvalidNumber)

	_, err = ParseReverseLimit("0", true)
	assert.ErrorIs(t, err, errors.ErrInvalidParameter)

	_, err = ParseReverseLimit("-1", true)
	assert.ErrorIs(t, err, errors.ErrInvalidParameter)

	// body path: zero is unset
	n, err = NormalizeReverseLimit(0)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	_, err = NormalizeReverseLimit(-5)
	assert.ErrorIs(t, err, errors.ErrInvalidParameter)
}

func TestParseScale(t *testing.T) {
	s, err := ParseScale("")
	require.NoError(t, err)
	assert.Equal(t, 1.6, s)

	s, err = ParseScale("0.5")
	require.NoError(t, err)
	assert.Equal(t, 0.5, s)

	s, err = ParseScale("0")
	require.NoError(t, err)
	assert.Equal(t, 0.0, s)

	_, err = ParseScale("abc")
	assert.ErrorIs(t, err, errors.ErrInvalidNumber)

	_, err = ParseScale("NaN")
	assert.ErrorIs(t, err, errors.ErrInvalidNumber)

	_, err = ParseScale("-1")
	assert.ErrorIs(t, err, errors.ErrInvalidParameter)

	s, err = NormalizeScale(0)
	require.NoError(t, err)
	assert.Equal(t, 1.6, s)

	s, err = NormalizeScale(3)
	require.NoError(t, err)
	assert.Equal(t, 3.0, s)
}

func TestParseRadius(t *testing.T) {
	r, err := ParseRadius("", false)
	require.NoError(t, err)
	assert.Equal(t, 1.0, r)

	for _, raw := range []string{"0.001", "1", "2.5", "5000"} {
		r, err := ParseRadius(raw, true)
		require.NoError(t, err, raw)
		assert.Greater(t, r, 0.0)
		assert.LessOrEqual(t, r, 5000.0)
	}

	r, err = ParseRadius("2.5", true)
	require.NoError(t, err)
	assert.Equal(t, 2.5, r)

	r, err = ParseRadius("5000.1", true)
	require.NoError(t, err)
	assert.Equal(t, 5000.0, r)

	_, err = ParseRadius("0", true)
	assert.ErrorIs(t, err, errors.ErrInvalidParameter)

	_, err = ParseRadius("-2", true)
	assert.ErrorIs(t, err, errors.ErrInvalidParameter)

	_, err = ParseRadius("far", true)
	assert.ErrorIs(t, err, errors.ErrInvalidNumber)

	_, err = ParseRadius("+Inf", true)
	assert.ErrorIs(t, err, errors.ErrInvalidNumber)

	r, err = NormalizeRadius(0)
	require.NoError(t, err)
	assert.Equal(t, 1.0, r)

	r, err = NormalizeRadius(9000)
	require.NoError(t, err)
	assert.Equal(t, 5000.0, r)
}

func TestParseDistanceSort(t *testing.T) {
	v, err := ParseDistanceSort("", false)
	require.NoError(t, err)
	assert.True(t, v)

	v, err = ParseDistanceSort("false", true)
	require.NoError(t, err)
	assert.False(t, v)

	_, err = ParseDistanceSort("maybe", true)
	assert.ErrorIs(t, err, errors.ErrInvalidParameter)
}

func TestParseLocation(t *testing.T) {
	t.Run("valid pairs round trip", func(t *testing.T) {
		pairs := []domain.Point{
			{Lat: 0, Lon: 0},
			{Lat: 52.52, Lon: 13.405},
			{Lat: -90, Lon: -180},
			{Lat: 90, Lon: 180},
		}
		for _, want := range pairs {
			p, err := ParseLocation(formatFloat(want.Lon), true, formatFloat(want.Lat), true, true)
			require.NoError(t, err)
			assert.Equal(t, want, *p)
		}
	})

	t.Run("optional and absent", func(t *testing.T) {
		p, err := ParseLocation("", false, "", false, false)
		require.NoError(t, err)
		assert.Nil(t, p)
	})

	t.Run("mandatory and absent", func(t *testing.T) {
		_, err := ParseLocation("", false, "", false, true)
		assert.ErrorIs(t, err, errors.ErrMissingRequiredField)
	})

	t.Run("only one given", func(t *testing.T) {
		_, err := ParseLocation("8.0", true, "", false, false)
		assert.ErrorIs(t, err, errors.ErrInvalidCoordinate)

		_, err = ParseLocation("", false, "51.5", true, true)
		assert.ErrorIs(t, err, errors.ErrInvalidCoordinate)
	})

	t.Run("not a number", func(t *testing.T) {
		_, err := ParseLocation("eight", true, "51.5", true, true)
		require.Error(t, err)
		assert.ErrorIs(t, err, errors.ErrInvalidCoordinate)
		assert.Contains(t, err.Error(), "try instead lat=51.5&lon=8.0")
	})

	t.Run("out of range", func(t *testing.T) {
		for _, c := range [][2]string{{"180.01", "0"}, {"-181", "0"}, {"0", "90.5"}, {"0", "-91"}} {
			_, err := ParseLocation(c[0], true, c[1], true, true)
			assert.ErrorIs(t, err, errors.ErrOutOfRange, "lon=%s lat=%s", c[0], c[1])
		}
	})
}

func TestParseLocationList(t *testing.T) {
	points, err := ParseLocationList("8.0,11.5", true, "51.5,48.1", true)
	require.NoError(t, err)
	assert.Equal(t, []domain.Point{{Lat: 51.5, Lon: 8.0}, {Lat: 48.1, Lon: 11.5}}, points)

	_, err = ParseLocationList("8.0,11.5", true, "51.5", true)
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrCardinalityMismatch)
	assert.Contains(t, err.Error(), "number of lat's and lon's don't match")

	_, err = ParseLocationList("", false, "", false)
	assert.ErrorIs(t, err, errors.ErrMissingRequiredField)

	_, err = ParseLocationList("8.0", true, "", false)
	assert.ErrorIs(t, err, errors.ErrInvalidCoordinate)

	_, err = ParseLocationList("8.0,", true, "51.5,48.1", true)
	assert.ErrorIs(t, err, errors.ErrInvalidCoordinate)

	_, err = ParseLocationList("8.0,200", true, "51.5,48.1", true)
	assert.ErrorIs(t, err, errors.ErrOutOfRange)

	_, err = ParseLocationList("8.0,11.5", true, "51.5,-95", true)
	assert.ErrorIs(t, err, errors.ErrOutOfRange)
}

func TestParseBoundingBox(t *testing.T) {
	box, err := ParseBoundingBox("", false)
	require.NoError(t, err)
	assert.Nil(t, box)

	box, err = ParseBoundingBox("9.5,51.5,11.5,53.5", true)
	require.NoError(t, err)
	assert.Equal(t, &domain.BoundingBox{MinLon: 9.5, MinLat: 51.5, MaxLon: 11.5, MaxLat: 53.5}, box)

	// degenerate box is allowed
	_, err = ParseBoundingBox("9.5,51.5,9.5,51.5", true)
	assert.NoError(t, err)

	tests := []struct {
		raw  string
		kind *errors.AppError
	}{
		{"9.5,51.5,11.5", errors.ErrInvalidBoundingBox},
		{"", errors.ErrInvalidBoundingBox},
		{"9.5,51.5,11.5,x", errors.ErrInvalidNumber},
		{"11.5,51.5,9.5,53.5", errors.ErrInvalidBoundingBox},
		{"9.5,53.5,11.5,51.5", errors.ErrInvalidBoundingBox},
		{"-190,51.5,11.5,53.5", errors.ErrOutOfRange},
		{"9.5,51.5,11.5,93.5", errors.ErrOutOfRange},
	}
	for _, tt := range tests {
		_, err := ParseBoundingBox(tt.raw, true)
		assert.ErrorIs(t, err, tt.kind, "bbox=%q", tt.raw)
	}
}

func TestBoundingBoxFromSlice(t *testing.T) {
	box, err := BoundingBoxFromSlice(nil)
	require.NoError(t, err)
	assert.Nil(t, box)

	_, err = BoundingBoxFromSlice([]float64{1, 2})
	assert.ErrorIs(t, err, errors.ErrInvalidBoundingBox)

	box, err = BoundingBoxFromSlice([]float64{1, 2, 3, 4})
	require.NoError(t, err)
	assert.Equal(t, &domain.BoundingBox{MinLon: 1, MinLat: 2, MaxLon: 3, MaxLat: 4}, box)
}
