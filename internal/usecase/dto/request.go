package dto

// Location - координаты точки в теле запроса
type Location struct {
	Lon *float64 `json:"lon" validate:"required"`
	Lat *float64 `json:"lat" validate:"required"`
}

// SearchBody - тело запроса прямого геокодирования (POST /api)
type SearchBody struct {
	Query             string    `json:"query" validate:"required"`
	Lang              string    `json:"lang,omitempty"`
	Limit             int       `json:"limit,omitempty"`
	Lon               *float64  `json:"lon,omitempty"`
	Lat               *float64  `json:"lat,omitempty"`
	Location          *Location `json:"location,omitempty"`
	BBox              []float64 `json:"bbox,omitempty"` // minLon, minLat, maxLon, maxLat
	LocationBiasScale float64   `json:"location_bias_scale,omitempty"`
	OSMTags           []string  `json:"osm_tag,omitempty"`
}

// BulkSearchBody - тело пакетного запроса прямого геокодирования (POST /bulk)
type BulkSearchBody struct {
	Queries           []string  `json:"queries" validate:"required,min=1,dive,required"`
	Lang              string    `json:"lang,omitempty"`
	Limit             int       `json:"limit,omitempty"`
	Lon               *float64  `json:"lon,omitempty"`
	Lat               *float64  `json:"lat,omitempty"`
	Location          *Location `json:"location,omitempty"`
	BBox              []float64 `json:"bbox,omitempty"`
	LocationBiasScale float64   `json:"location_bias_scale,omitempty"`
	OSMTags           []string  `json:"osm_tag,omitempty"`
}

// ReverseBody - тело запроса обратного геокодирования (POST /reverse)
type ReverseBody struct {
	Lon               *float64  `json:"lon,omitempty"`
	Lat               *float64  `json:"lat,omitempty"`
	Location          *Location `json:"location,omitempty"`
	Lang              string    `json:"lang,omitempty"`
	Radius            float64   `json:"radius,omitempty"` // km
	Limit             int       `json:"limit,omitempty"`
	QueryStringFilter string    `json:"query_string_filter,omitempty"`
	DistanceSort      *bool     `json:"distance_sort,omitempty"`
}

// BulkReverseBody - тело пакетного запроса обратного геокодирования (POST /bulk/reverse)
type BulkReverseBody struct {
	Locations         []Location `json:"locations" validate:"required,min=1,dive"`
	Lang              string     `json:"lang,omitempty"`
	Radius            float64    `json:"radius,omitempty"`
	Limit             int        `json:"limit,omitempty"`
	QueryStringFilter string     `json:"query_string_filter,omitempty"`
	DistanceSort      *bool      `json:"distance_sort,omitempty"`
}
