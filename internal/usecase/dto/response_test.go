package dto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/geocoder-api/internal/domain"
)

func TestNewFeatureCollection(t *testing.T) {
	dist := 0.42
	places := []*domain.Place{
		{OSMID: 1, OSMType: "N", OSMKey: "amenity", OSMValue: "cafe", Name: "Kaffee", Location: domain.Point{Lat: 52.5, Lon: 13.4}, Distance: &dist},
		nil,
		{OSMID: 2, OSMType: "N", Name: "Zwei", Location: domain.Point{Lat: 48.1, Lon: 11.5}},
	}

	fc := NewFeatureCollection(places)

	require.Len(t, fc.Features, 2)
	assert.Equal(t, "FeatureCollection", fc.Type)
	assert.Equal(t, [2]float64{13.4, 52.5}, fc.Features[0].Geometry.Coordinates)
	assert.Equal(t, "Point", fc.Features[0].Geometry.Type)
	assert.Equal(t, &dist, fc.Features[0].Properties.Distance)
	assert.Equal(t, int64(2), fc.Features[1].Properties.OSMID)
}

func TestFeatureCollection_EmptyMarshalsArray(t *testing.T) {
	raw, err := json.Marshal(NewFeatureCollection(nil))
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"FeatureCollection","features":[]}`, string(raw))
}

func TestFeatureCollection_WithDebug(t *testing.T) {
	fc := NewFeatureCollection(nil).WithDebug(map[string]string{"kind": "search"})

	raw, err := json.Marshal(fc)
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"FeatureCollection","features":[],"properties":{"debug":{"kind":"search"}}}`, string(raw))
}
