package geo

import "math"

// Region is an axis-aligned bounding box over geographic coordinates.
type Region struct {
	MinLat, MaxLat float64
	MinLng, MaxLng float64
}

// India approximated by its bounding box.
var India = Region{MinLat: 6, MaxLat: 37, MinLng: 68, MaxLng: 97}

// Contains reports whether (lat, lng) falls inside the region.
// NaN and infinite coordinates are always outside.
func (r Region) Contains(lat, lng float64) bool {
	if math.IsNaN(lat) || math.IsNaN(lng) || math.IsInf(lat, 0) || math.IsInf(lng, 0) {
		return false
	}
	return lat >= r.MinLat && lat <= r.MaxLat && lng >= r.MinLng && lng <= r.MaxLng
}
