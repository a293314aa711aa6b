package utils

import (
	"math"

	"github.com/golang/geo/s2"
)

const earthRadiusKm = 6371.0

// HaversineDistance вычисляет расстояние между двумя точками в километрах
func HaversineDistance(lat1, lon1, lat2, lon2 float64) float64 {
	p1 := s2.LatLngFromDegrees(lat1, lon1)
	p2 := s2.LatLngFromDegrees(lat2, lon2)
	return p1.Distance(p2).Radians() * earthRadiusKm
}

// ValidateCoordinates проверяет валидность координат
func ValidateCoordinates(lat, lon float64) bool {
	return ValidLongitude(lon) && ValidLatitude(lat)
}

// ValidLongitude reports lon ∈ [-180, 180]; NaN is rejected.
func ValidLongitude(lon float64) bool {
	return lon >= -180 && lon <= 180
}

// ValidLatitude reports lat ∈ [-90, 90]; NaN is rejected.
func ValidLatitude(lat float64) bool {
	return lat >= -90 && lat <= 90
}

// IsFinite reports whether f is neither NaN nor ±Inf.
func IsFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
