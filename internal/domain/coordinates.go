package domain

import "math"

// DisplayPoint is a WGS-84 coordinate as rendered by the map tiles.
type DisplayPoint struct {
	Lng float64 `json:"lng"`
	Lat float64 `json:"lat"`
}

// ProviderPoint is a GCJ-02 coordinate as expected by the AMap web service.
// It is a distinct type so the two frames cannot be mixed without an explicit
// ToProviderFrame / ToDisplayFrame call.
type ProviderPoint struct {
	Lng float64
	Lat float64
}

// Return coordinates as [lng, lat] for external API compatibility.
func (p DisplayPoint) CoordsToList() []float64 { return []float64{p.Lng, p.Lat} }

// Return coordinates as [lng, lat] for external API compatibility.
func (p ProviderPoint) CoordsToList() []float64 { return []float64{p.Lng, p.Lat} }

const (
	// Krasovsky 1940 ellipsoid.
	semiMajorAxis = 6378245.0
	eccentricity2 = 0.00669342162296594323

	inverseTolerance  = 1e-9
	inverseIterations = 30
)

// InOffsetRegion reports whether the point lies inside the mainland-China
// bounding box where the GCJ-02 offset model is defined.
func InOffsetRegion(lng, lat float64) bool {
	return lng >= 72.004 && lng <= 137.8347 && lat >= 0.8293 && lat <= 55.8271
}

// ToProviderFrame converts a display-frame point into the provider frame.
// Points outside the offset region are returned unchanged.
func ToProviderFrame(p DisplayPoint) ProviderPoint {
	if !InOffsetRegion(p.Lng, p.Lat) {
		return ProviderPoint{Lng: p.Lng, Lat: p.Lat}
	}

	dLng, dLat := offset(p.Lng, p.Lat)
	return ProviderPoint{Lng: p.Lng + dLng, Lat: p.Lat + dLat}
}

// ToDisplayFrame converts a provider-frame point back into the display frame.
//
// The offset has no closed-form inverse, so the forward offset is refined
// iteratively until re-applying it lands within inverseTolerance of p.
func ToDisplayFrame(p ProviderPoint) DisplayPoint {
	if !InOffsetRegion(p.Lng, p.Lat) {
		return DisplayPoint{Lng: p.Lng, Lat: p.Lat}
	}

	dLng, dLat := offset(p.Lng, p.Lat)
	w := DisplayPoint{Lng: p.Lng - dLng, Lat: p.Lat - dLat}

	for i := 0; i < inverseIterations; i++ {
		f := ToProviderFrame(w)
		errLng := f.Lng - p.Lng
		errLat := f.Lat - p.Lat
		if math.Abs(errLng) < inverseTolerance && math.Abs(errLat) < inverseTolerance {
			break
		}
		w.Lng -= errLng
		w.Lat -= errLat
	}

	return w
}

// offset returns the (lng, lat) correction in degrees at the given point.
func offset(lng, lat float64) (float64, float64) {
	x := lng - 105.0
	y := lat - 35.0

	dLat := offsetLat(x, y)
	dLng := offsetLng(x, y)

	radLat := lat / 180.0 * math.Pi
	magic := math.Sin(radLat)
	magic = 1 - eccentricity2*magic*magic
	sqrtMagic := math.Sqrt(magic)

	dLat = (dLat * 180.0) / ((semiMajorAxis * (1 - eccentricity2)) / (magic * sqrtMagic) * math.Pi)
	dLng = (dLng * 180.0) / (semiMajorAxis / sqrtMagic * math.Cos(radLat) * math.Pi)

	return dLng, dLat
}

func offsetLat(x, y float64) float64 {
	ret := -100.0 + 2.0*x + 3.0*y + 0.2*y*y + 0.1*x*y + 0.2*math.Sqrt(math.Abs(x))
	ret += (20.0*math.Sin(6.0*x*math.Pi) + 20.0*math.Sin(2.0*x*math.Pi)) * 2.0 / 3.0
	ret += (20.0*math.Sin(y*math.Pi) + 40.0*math.Sin(y/3.0*math.Pi)) * 2.0 / 3.0
	ret += (160.0*math.Sin(y/12.0*math.Pi) + 320*math.Sin(y*math.Pi/30.0)) * 2.0 / 3.0
	return ret
}

func offsetLng(x, y float64) float64 {
	ret := 300.0 + x + 2.0*y + 0.1*x*x + 0.1*x*y + 0.1*math.Sqrt(math.Abs(x))
	ret += (20.0*math.Sin(6.0*x*math.Pi) + 20.0*math.Sin(2.0*x*math.Pi)) * 2.0 / 3.0
	ret += (20.0*math.Sin(x*math.Pi) + 40.0*math.Sin(x/3.0*math.Pi)) * 2.0 / 3.0
	ret += (150.0*math.Sin(x/12.0*math.Pi) + 300.0*math.Sin(x/30.0*math.Pi)) * 2.0 / 3.0
	return ret
}
