package domain

// Place is a single geocoding hit returned by the search backend.
type Place struct {
	OSMID    int64             `json:"osm_id" db:"osm_id"`
	OSMType  string            `json:"osm_type" db:"osm_type"`
	OSMKey   string            `json:"osm_key" db:"osm_key"`
	OSMValue string            `json:"osm_value" db:"osm_value"`
	Name     string            `json:"name" db:"name"`
	Location Point             `json:"location"`
	Tags     map[string]string `json:"tags,omitempty"`
	// Distance to the reverse-geocoding location in kilometers.
	Distance *float64 `json:"distance,omitempty"`
}
