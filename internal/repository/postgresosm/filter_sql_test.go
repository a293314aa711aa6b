package postgresosm

import (
	"fmt"
	"strings"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/geocoder-api/internal/domain"
)

func TestAddTagFilters_Nil(t *testing.T) {
	b := &sqlBuilder{}
	b.addTagFilters(nil)

	assert.Empty(t, b.whereClause())
	assert.Empty(t, b.args)
}

func TestAddTagFilters_AllCategories(t *testing.T) {
	f := domain.NewTagFilterSet()
	f.IncludeKey("tourism")
	f.ExcludeKey("highway")
	f.IncludeValue("museum")
	f.ExcludeValue("parking")
	f.IncludeTag("shop", "bakery")
	f.IncludeTag("amenity", "restaurant")
	f.IncludeTag("amenity", "cafe")
	f.ExcludeTag("amenity", "fast_food")

	b := &sqlBuilder{}
	b.addTagFilters(f)

	require.Len(t, b.conds, 6)
	assert.Equal(t, "all_tags ?| $1::text[]", b.conds[0])
	assert.Equal(t, "NOT COALESCE(all_tags ?| $2::text[], false)", b.conds[1])
	assert.Equal(t, "avals(all_tags) && $3::text[]", b.conds[2])
	assert.Equal(t, "NOT COALESCE(avals(all_tags) && $4::text[], false)", b.conds[3])
	assert.Equal(t, "((all_tags -> $5) = ANY($6::text[]) OR (all_tags -> $7) = ANY($8::text[]))", b.conds[4])
	assert.Equal(t, "NOT COALESCE((all_tags -> $9) = ANY($10::text[]), false)", b.conds[5])

	assert.Equal(t, []interface{}{
		pq.Array([]string{"tourism"}),
		pq.Array([]string{"highway"}),
		pq.Array([]string{"museum"}),
		pq.Array([]string{"parking"}),
		"amenity",
		pq.Array([]string{"cafe", "restaurant"}),
		"shop",
		pq.Array([]string{"bakery"}),
		"amenity",
		pq.Array([]string{"fast_food"}),
	}, b.args)
}

func TestAddTagFilters_ExcludePerKey(t *testing.T) {
	f := domain.NewTagFilterSet()
	f.ExcludeTag("shop", "kiosk")
	f.ExcludeTag("amenity", "bar")

	b := &sqlBuilder{}
	b.addTagFilters(f)

	assert.Equal(t,
		" WHERE NOT COALESCE((all_tags -> $1) = ANY($2::text[]), false) AND NOT COALESCE((all_tags -> $3) = ANY($4::text[]), false)",
		b.whereClause())
	assert.Equal(t, "amenity", b.args[0])
	assert.Equal(t, "shop", b.args[2])
}

func TestBuildSearchQuery(t *testing.T) {
	t.Run("plain", func(t *testing.T) {
		sql, args := buildSearchQuery(domain.SearchRequest{Query: "berlin", Limit: 15, BiasScale: 1.6, Language: "de"}, nil)

		assert.Contains(t, sql, "FROM planet_osm_point CROSS JOIN LATERAL")
		assert.Contains(t, sql, "AS all_tags) AS merged WHERE")
		assert.Contains(t, sql, "strpos(lower(COALESCE(NULLIF(tags -> ('name:' || $2), ''), name, '')), lower($1)) > 0")
		assert.NotContains(t, sql, "ILIKE")
		assert.Contains(t, sql, "tags -> ('name:' || $2)")
		assert.Contains(t, sql, "LIMIT $3")
		assert.NotContains(t, sql, "ST_MakeEnvelope")
		assert.NotContains(t, sql, "GREATEST")
		assert.Equal(t, []interface{}{"berlin", "de", 15}, args)
	})

	t.Run("bbox, bias and filters", func(t *testing.T) {
		f := domain.NewTagFilterSet()
		f.IncludeKey("amenity")

		sql, args := buildSearchQuery(domain.SearchRequest{
			Query:        "cafe",
			Limit:        5,
			BiasLocation: &domain.Point{Lat: 52.5, Lon: 13.4},
			BiasScale:    0.5,
			BoundingBox:  &domain.BoundingBox{MinLon: 13, MinLat: 52, MaxLon: 14, MaxLat: 53},
			Language:     "en",
		}, f)

		assert.Contains(t, sql, "ST_MakeEnvelope($3, $4, $5, $6, 4326)")
		assert.Contains(t, sql, "all_tags ?| $7::text[]")
		assert.Contains(t, sql, "ST_MakePoint($8, $9)")
		assert.Contains(t, sql, "GREATEST($10, 0.01)")
		assert.Contains(t, sql, "LIMIT $11")
		assert.Equal(t, []interface{}{
			"cafe", "en",
			13.0, 52.0, 14.0, 53.0,
			pq.Array([]string{"amenity"}),
			13.4, 52.5, 0.5,
			5,
		}, args)
	})
}

func TestBuildReverseQuery(t *testing.T) {
	req := domain.ReverseRequest{
		Location:       domain.Point{Lat: 51.5, Lon: 8.0},
		Radius:         2,
		Limit:          10,
		Language:       "en",
		SortByDistance: true,
	}

	sql, args := buildReverseQuery(req)
	assert.Contains(t, sql, "ST_DWithin(ST_Transform(way, 4326)::geography, ST_SetSRID(ST_MakePoint($1, $2), 4326)::geography, $4)")
	assert.Contains(t, sql, "ORDER BY distance_km, osm_id")
	assert.Contains(t, sql, "LIMIT $5")
	assert.Equal(t, []interface{}{8.0, 51.5, "en", 2000.0, 10}, args)

	req.SortByDistance = false
	req.QueryStringFilter = "bahnhof"
	sql, args = buildReverseQuery(req)
	assert.Contains(t, sql, "strpos(lower(COALESCE(NULLIF(tags -> ('name:' || $3), ''), name, '')), lower($5)) > 0")
	assert.NotContains(t, sql, "ILIKE")
	assert.Contains(t, sql, "ORDER BY osm_id")
	assert.Equal(t, "bahnhof", args[4])
	assert.Equal(t, 10, args[5])
}

func TestPlacesFrom_MergesColumnTags(t *testing.T) {
	// keys read from their own columns must be visible to tag filters
	for _, key := range []string{"amenity", "shop", "tourism", "leisure", "historic", "railway", "highway", "place"} {
		assert.Contains(t, columnTagKeys, key)
		assert.Contains(t, osmKeyExpr, key)
		assert.Contains(t, placesFrom,
			fmt.Sprintf("CASE WHEN %[1]s IS NULL THEN ''::hstore ELSE hstore('%[1]s', %[1]s) END", key))
	}
	assert.True(t, strings.HasPrefix(placesFrom, "planet_osm_point CROSS JOIN LATERAL (SELECT COALESCE(tags, ''::hstore) || "))
	assert.True(t, strings.HasSuffix(placesFrom, " AS all_tags) AS merged"))
}

func TestMergedTagsExpr(t *testing.T) {
	assert.Equal(t, "COALESCE(tags, ''::hstore)", mergedTagsExpr(nil))
	assert.Equal(t,
		"COALESCE(tags, ''::hstore) || CASE WHEN shop IS NULL THEN ''::hstore ELSE hstore('shop', shop) END",
		mergedTagsExpr([]string{"shop"}))
}

func TestBuildSearchQuery_ColumnBackedFilters(t *testing.T) {
	f := domain.NewTagFilterSet()
	f.IncludeTag("amenity", "restaurant")
	f.ExcludeKey("tourism")

	sql, args := buildSearchQuery(domain.SearchRequest{Query: "pizza_place", Limit: 15, BiasScale: 1.6, Language: "en"}, f)

	assert.Contains(t, sql, "hstore('amenity', amenity)")
	assert.Contains(t, sql, "hstore('tourism', tourism)")
	assert.Contains(t, sql, "NOT COALESCE(all_tags ?| $3::text[], false)")
	assert.Contains(t, sql, "((all_tags -> $4) = ANY($5::text[]))")
	assert.NotContains(t, sql, " tags ?|")
	assert.NotContains(t, sql, "(tags -> $")
	// the query text is passed through untouched, it is never a pattern
	assert.Equal(t, "pizza_place", args[0])
}
