package geo

import "math"

const (
	// EarthRadiusMiles is the mean Earth radius used for great-circle distances.
	EarthRadiusMiles = 3959.0

	// DefaultSpeedMPH is the typical rotor-wing cruise speed.
	DefaultSpeedMPH = 120.0

	// DefaultOverheadMinutes covers dispatch, takeoff, and landing.
	DefaultOverheadMinutes = 5.0
)

// LatLon is a WGS 84 coordinate in degrees.
type LatLon struct {
	Lat float64 `json:"latitude" yaml:"latitude"`
	Lon float64 `json:"longitude" yaml:"longitude"`
}

// Valid reports whether the coordinate is finite and inside the lat/lon ranges.
func (p LatLon) Valid() bool {
	if math.IsNaN(p.Lat) || math.IsNaN(p.Lon) || math.IsInf(p.Lat, 0) || math.IsInf(p.Lon, 0) {
		return false
	}
	return p.Lat >= -90 && p.Lat <= 90 && p.Lon >= -180 && p.Lon <= 180
}

// DistanceTo returns the great-circle distance from p to q in miles.
func (p LatLon) DistanceTo(q LatLon) float64 {
	return DistanceMiles(p.Lat, p.Lon, q.Lat, q.Lon)
}

// DistanceMiles returns the haversine great-circle distance between two
// coordinates in miles. NaN inputs propagate; callers filter invalid
// coordinates first.
func DistanceMiles(lat1, lon1, lat2, lon2 float64) float64 {
	phi1 := radians(lat1)
	phi2 := radians(lat2)
	dPhi := radians(lat2 - lat1)
	dLambda := radians(lon2 - lon1)

	a := math.Sin(dPhi/2)*math.Sin(dPhi/2) +
		math.Cos(phi1)*math.Cos(phi2)*math.Sin(dLambda/2)*math.Sin(dLambda/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return EarthRadiusMiles * c
}

// ResponseModel converts a flight distance into an estimated response time.
type ResponseModel struct {
	SpeedMPH        float64 `json:"speed_mph" yaml:"speed_mph"`
	OverheadMinutes float64 `json:"overhead_minutes" yaml:"overhead_minutes"`
}

// DefaultResponseModel returns the 120 mph / 5 minute rotor-wing model.
func DefaultResponseModel() ResponseModel {
	return ResponseModel{SpeedMPH: DefaultSpeedMPH, OverheadMinutes: DefaultOverheadMinutes}
}

// Minutes returns distance/speed*60 + overhead. A non-positive speed falls
// back to DefaultSpeedMPH so the result is always finite.
func (m ResponseModel) Minutes(distanceMiles float64) float64 {
	speed := m.SpeedMPH
	if speed <= 0 {
		speed = DefaultSpeedMPH
	}
	return distanceMiles/speed*60 + m.OverheadMinutes
}

// EstimateResponseMinutes applies the default overhead to a distance at the
// given speed.
func EstimateResponseMinutes(distanceMiles, speedMPH float64) float64 {
	return ResponseModel{SpeedMPH: speedMPH, OverheadMinutes: DefaultOverheadMinutes}.Minutes(distanceMiles)
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}
