package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTagFilterSet_UnionPerKey(t *testing.T) {
	f := NewTagFilterSet()
	f.IncludeTag("amenity", "restaurant")
	f.IncludeTag("amenity", "cafe")
	f.IncludeTag("amenity", "cafe")
	f.ExcludeTag("amenity", "fast_food")

	assert.Equal(t, NewStringSet("restaurant", "cafe"), f.IncludeTags["amenity"])
	assert.Equal(t, NewStringSet("fast_food"), f.ExcludeTagsByKey["amenity"])
	assert.False(t, f.IsEmpty())
}

func TestTagFilterSet_IsEmpty(t *testing.T) {
	assert.True(t, NewTagFilterSet().IsEmpty())

	f := NewTagFilterSet()
	f.ExcludeValue("hotel")
	assert.False(t, f.IsEmpty())
}

func TestStringSet_MarshalJSONSorted(t *testing.T) {
	data, err := json.Marshal(NewStringSet("shop", "amenity", "tourism"))
	require.NoError(t, err)
	assert.JSONEq(t, `["amenity","shop","tourism"]`, string(data))
}

func TestRequestKinds(t *testing.T) {
	plain := SearchRequest{Query: "berlin"}
	filtered := FilteredSearchRequest{SearchRequest: plain, Filters: NewTagFilterSet()}

	tests := []struct {
		req  Request
		kind RequestKind
		name string
	}{
		{plain, KindPlainSearch, "search"},
		{filtered, KindFilteredSearch, "filtered_search"},
		{ReverseRequest{}, KindReverse, "reverse"},
		{BulkSearchRequest{}, KindBulkSearch, "bulk_search"},
		{BulkReverseRequest{}, KindBulkReverse, "bulk_reverse"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.kind, tt.req.Kind())
		assert.Equal(t, tt.name, tt.req.Kind().String())
	}

	assert.Equal(t, "berlin", filtered.Base().Query)
}

func TestBoundingBox_Contains(t *testing.T) {
	box := BoundingBox{MinLon: 13.0, MinLat: 52.3, MaxLon: 13.8, MaxLat: 52.7}

	assert.True(t, box.Contains(Point{Lat: 52.52, Lon: 13.40}))
	assert.True(t, box.Contains(Point{Lat: 52.3, Lon: 13.0}))
	assert.False(t, box.Contains(Point{Lat: 48.85, Lon: 2.35}))
}
