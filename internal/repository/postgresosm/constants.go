package postgresosm

import (
	"fmt"
	"strings"
)

const (
	SRID4326 = 4326

	// minBiasScale guards the bias-distance division against a zero scale.
	minBiasScale = 0.01

	osmTypeNode = "N"
)

const (
	planetPointTable = "planet_osm_point"

	// allTagsColumn - hstore со всеми тегами точки, см. placesFrom
	allTagsColumn = "all_tags"
)

// columnTagKeys - ключи, которые osm2pgsql с --hstore пишет в отдельные
// колонки planet_osm_point; в tags их нет.
var columnTagKeys = []string{
	"aeroway", "amenity", "barrier", "building", "highway", "historic",
	"landuse", "leisure", "man_made", "name", "natural", "office", "place",
	"power", "public_transport", "railway", "religion", "shop", "sport",
	"tourism", "waterway",
}

// placesFrom joins every point with the union of its hstore tags and its
// column-backed tags, so filters see both. NULL columns add no key.
var placesFrom = fmt.Sprintf("%s CROSS JOIN LATERAL (SELECT %s AS %s) AS merged",
	planetPointTable, mergedTagsExpr(columnTagKeys), allTagsColumn)

func mergedTagsExpr(columns []string) string {
	parts := make([]string, 0, len(columns)+1)
	parts = append(parts, "COALESCE(tags, ''::hstore)")
	for _, col := range columns {
		parts = append(parts, fmt.Sprintf("CASE WHEN %[1]s IS NULL THEN ''::hstore ELSE hstore('%[1]s', %[1]s) END", col))
	}
	return strings.Join(parts, " || ")
}

// expressions для повторного использования в SQL
const (
	// osmKeyExpr - главный OSM ключ объекта (приоритет слева направо)
	osmKeyExpr = `CASE
		WHEN NULLIF(amenity,'') IS NOT NULL THEN 'amenity'
		WHEN NULLIF(shop,'') IS NOT NULL THEN 'shop'
		WHEN NULLIF(tourism,'') IS NOT NULL THEN 'tourism'
		WHEN NULLIF(leisure,'') IS NOT NULL THEN 'leisure'
		WHEN NULLIF(historic,'') IS NOT NULL THEN 'historic'
		WHEN NULLIF(railway,'') IS NOT NULL THEN 'railway'
		WHEN NULLIF(highway,'') IS NOT NULL THEN 'highway'
		WHEN NULLIF(place,'') IS NOT NULL THEN 'place'
		ELSE ''
	END`

	// osmValueExpr - значение главного ключа, в том же порядке
	osmValueExpr = `COALESCE(NULLIF(amenity,''), NULLIF(shop,''), NULLIF(tourism,''), NULLIF(leisure,''), NULLIF(historic,''), NULLIF(railway,''), NULLIF(highway,''), NULLIF(place,''), '')`
)
