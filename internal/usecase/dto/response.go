package dto

import "github.com/geocoder-api/internal/domain"

const (
	typeFeatureCollection = "FeatureCollection"
	typeFeature           = "Feature"
	typePoint             = "Point"
)

// FeatureCollection - ответ геокодера в формате GeoJSON
type FeatureCollection struct {
	Type       string                 `json:"type"`
	Features   []Feature              `json:"features"`
	Properties map[string]interface{} `json:"properties,omitempty"`
}

type Feature struct {
	Type       string            `json:"type"`
	Geometry   Geometry          `json:"geometry"`
	Properties FeatureProperties `json:"properties"`
}

// Geometry - точка GeoJSON, координаты в порядке [lon, lat]
type Geometry struct {
	Type        string     `json:"type"`
	Coordinates [2]float64 `json:"coordinates"`
}

type FeatureProperties struct {
	OSMID    int64             `json:"osm_id"`
	OSMType  string            `json:"osm_type"`
	OSMKey   string            `json:"osm_key,omitempty"`
	OSMValue string            `json:"osm_value,omitempty"`
	Name     string            `json:"name,omitempty"`
	Tags     map[string]string `json:"extra,omitempty"`
	Distance *float64          `json:"distance,omitempty"` // km
}

// NewFeatureCollection builds a collection in the order of places.
func NewFeatureCollection(places []*domain.Place) *FeatureCollection {
	features := make([]Feature, 0, len(places))
	for _, p := range places {
		if p == nil {
			continue
		}
		features = append(features, Feature{
			Type: typeFeature,
			Geometry: Geometry{
				Type:        typePoint,
				Coordinates: [2]float64{p.Location.Lon, p.Location.Lat},
			},
			Properties: FeatureProperties{
				OSMID:    p.OSMID,
				OSMType:  p.OSMType,
				OSMKey:   p.OSMKey,
				OSMValue: p.OSMValue,
				Name:     p.Name,
				Tags:     p.Tags,
				Distance: p.Distance,
			},
		})
	}

	return &FeatureCollection{
		Type:     typeFeatureCollection,
		Features: features,
	}
}

// WithDebug attaches the normalized request descriptor.
func (fc *FeatureCollection) WithDebug(descriptor interface{}) *FeatureCollection {
	if fc.Properties == nil {
		fc.Properties = make(map[string]interface{})
	}
	fc.Properties["debug"] = descriptor
	return fc
}
