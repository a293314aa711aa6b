package postgresosm

import (
	"database/sql"
	"encoding/json"

	"github.com/geocoder-api/internal/domain"
)

type placeRow struct {
	OSMID    int64           `db:"osm_id"`
	Name     string          `db:"name"`
	OSMKey   string          `db:"osm_key"`
	OSMValue string          `db:"osm_value"`
	Lat      float64         `db:"lat"`
	Lon      float64         `db:"lon"`
	TagsJSON []byte          `db:"tags_json"`
	Distance sql.NullFloat64 `db:"distance_km"`
}

func (r placeRow) toDomain() *domain.Place {
	p := &domain.Place{
		OSMID:    r.OSMID,
		OSMType:  osmTypeNode,
		OSMKey:   r.OSMKey,
		OSMValue: r.OSMValue,
		Name:     r.Name,
		Location: domain.Point{Lat: r.Lat, Lon: r.Lon},
		Tags:     parseTags(r.TagsJSON),
	}
	if r.Distance.Valid {
		d := r.Distance.Float64
		p.Distance = &d
	}
	return p
}

func parseTags(raw []byte) map[string]string {
	if len(raw) == 0 {
		return map[string]string{}
	}

	var tmp map[string]string
	if err := json.Unmarshal(raw, &tmp); err != nil {
		return map[string]string{}
	}

	return tmp
}
