package postgresosm

import (
	"fmt"
	"sort"
	"strings"

	"github.com/lib/pq"

	"github.com/geocoder-api/internal/domain"
)

// sqlBuilder collects WHERE conditions together with their positional arguments.
type sqlBuilder struct {
	conds []string
	args  []interface{}
}

// arg registers v and returns its placeholder.
func (b *sqlBuilder) arg(v interface{}) string {
	b.args = append(b.args, v)
	return fmt.Sprintf("$%d", len(b.args))
}

func (b *sqlBuilder) where(cond string) {
	b.conds = append(b.conds, cond)
}

func (b *sqlBuilder) whereClause() string {
	if len(b.conds) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(b.conds, " AND ")
}

// addTagFilters translates f into hstore predicates over all_tags.
// Inclusions are OR-ed inside a category, every category is AND-ed.
// Exclusions are COALESCE-d so a row without the key is kept.
// Keys are emitted sorted so the statement text is stable.
func (b *sqlBuilder) addTagFilters(f *domain.TagFilterSet) {
	if f == nil {
		return
	}

	if len(f.IncludeKeys) > 0 {
		b.where(fmt.Sprintf("%s ?| %s::text[]", allTagsColumn, b.arg(pq.Array(f.IncludeKeys.Sorted()))))
	}
	if len(f.ExcludeKeys) > 0 {
		b.where(fmt.Sprintf("NOT COALESCE(%s ?| %s::text[], false)", allTagsColumn, b.arg(pq.Array(f.ExcludeKeys.Sorted()))))
	}
	if len(f.IncludeValues) > 0 {
		b.where(fmt.Sprintf("avals(%s) && %s::text[]", allTagsColumn, b.arg(pq.Array(f.IncludeValues.Sorted()))))
	}
	if len(f.ExcludeValues) > 0 {
		b.where(fmt.Sprintf("NOT COALESCE(avals(%s) && %s::text[], false)", allTagsColumn, b.arg(pq.Array(f.ExcludeValues.Sorted()))))
	}

	if len(f.IncludeTags) > 0 {
		parts := make([]string, 0, len(f.IncludeTags))
		for _, key := range sortedKeys(f.IncludeTags) {
			parts = append(parts, fmt.Sprintf("(%s -> %s) = ANY(%s::text[])",
				allTagsColumn, b.arg(key), b.arg(pq.Array(f.IncludeTags[key].Sorted()))))
		}
		b.where("(" + strings.Join(parts, " OR ") + ")")
	}

	// a missing key never matches an excluded value
	for _, key := range sortedKeys(f.ExcludeTagsByKey) {
		b.where(fmt.Sprintf("NOT COALESCE((%s -> %s) = ANY(%s::text[]), false)",
			allTagsColumn, b.arg(key), b.arg(pq.Array(f.ExcludeTagsByKey[key].Sorted()))))
	}
}

func sortedKeys(m map[string]domain.StringSet) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// localizedName prefers name:<lang> over the default name.
func localizedName(langPlaceholder string) string {
	return fmt.Sprintf("COALESCE(NULLIF(tags -> ('name:' || %s), ''), name, '')", langPlaceholder)
}

func selectColumns(nameExpr string) string {
	return fmt.Sprintf(`
			osm_id,
			%s AS name,
			%s AS osm_key,
			%s AS osm_value,
			ST_Y(ST_Transform(way, %d)) AS lat,
			ST_X(ST_Transform(way, %d)) AS lon,
			hstore_to_json(%s)::text AS tags_json`,
		nameExpr, osmKeyExpr, osmValueExpr, SRID4326, SRID4326, allTagsColumn)
}

// containsText is a case-insensitive literal substring match; '%' and '_'
// in user input carry no pattern meaning.
func containsText(expr, placeholder string) string {
	return fmt.Sprintf("strpos(lower(%s), lower(%s)) > 0", expr, placeholder)
}

func geographyPoint(lonPlaceholder, latPlaceholder string) string {
	return fmt.Sprintf("ST_SetSRID(ST_MakePoint(%s, %s), %d)::geography", lonPlaceholder, latPlaceholder, SRID4326)
}

// buildSearchQuery matches the query text against the localized name and
// ranks exact matches first, then by biased distance, then by text rank.
func buildSearchQuery(req domain.SearchRequest, filters *domain.TagFilterSet) (string, []interface{}) {
	b := &sqlBuilder{}
	q := b.arg(req.Query)
	name := localizedName(b.arg(req.Language))

	b.where(fmt.Sprintf(
		"(%s OR to_tsvector('simple', %s) @@ plainto_tsquery('simple', %s))",
		containsText(name, q), name, q))

	if box := req.BoundingBox; box != nil {
		b.where(fmt.Sprintf("way && ST_Transform(ST_MakeEnvelope(%s, %s, %s, %s, %d), ST_SRID(way))",
			b.arg(box.MinLon), b.arg(box.MinLat), b.arg(box.MaxLon), b.arg(box.MaxLat), SRID4326))
	}

	b.addTagFilters(filters)

	order := []string{fmt.Sprintf("CASE WHEN lower(%s) = lower(%s) THEN 0 ELSE 1 END", name, q)}
	if bias := req.BiasLocation; bias != nil {
		order = append(order, fmt.Sprintf(
			"ST_Distance(ST_Transform(way, %d)::geography, %s) / 1000 / GREATEST(%s, %v)",
			SRID4326, geographyPoint(b.arg(bias.Lon), b.arg(bias.Lat)), b.arg(req.BiasScale), minBiasScale))
	}
	order = append(order,
		fmt.Sprintf("ts_rank_cd(to_tsvector('simple', %s), plainto_tsquery('simple', %s)) DESC", name, q),
		"osm_id",
	)

	sql := fmt.Sprintf("SELECT %s\n\t\tFROM %s%s\n\t\tORDER BY %s\n\t\tLIMIT %s",
		selectColumns(name), placesFrom, b.whereClause(), strings.Join(order, ", "), b.arg(req.Limit))
	return sql, b.args
}

// buildReverseQuery returns places within the radius (km) of the location.
func buildReverseQuery(req domain.ReverseRequest) (string, []interface{}) {
	b := &sqlBuilder{}
	point := geographyPoint(b.arg(req.Location.Lon), b.arg(req.Location.Lat))
	name := localizedName(b.arg(req.Language))

	b.where(fmt.Sprintf("ST_DWithin(ST_Transform(way, %d)::geography, %s, %s)",
		SRID4326, point, b.arg(req.Radius*1000)))

	if req.QueryStringFilter != "" {
		b.where(containsText(name, b.arg(req.QueryStringFilter)))
	}

	order := "osm_id"
	if req.SortByDistance {
		order = "distance_km, osm_id"
	}

	sql := fmt.Sprintf("SELECT %s,\n\t\t\tST_Distance(ST_Transform(way, %d)::geography, %s) / 1000 AS distance_km\n\t\tFROM %s%s\n\t\tORDER BY %s\n\t\tLIMIT %s",
		selectColumns(name), SRID4326, point, placesFrom, b.whereClause(), order, b.arg(req.Limit))
	return sql, b.args
}
