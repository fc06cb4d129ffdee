package coord

import "math"

// Location represents a ground location with geodetic coordinates.
type Location struct {
	Name    string
	Lat     float64 // degrees, positive north
	Lon     float64 // degrees, positive east
	HeightM float64 // meters above the reference ellipsoid
}

// Terra converts a ground location and a Greenwich apparent sidereal time into
// a geocentric position vector in AU, on the oblate reference ellipsoid
// (EarthEquatorialRadiusKm, EarthFlattening).
// gastHours is Greenwich Apparent Sidereal Time in hours.
func Terra(loc Location, gastHours float64) (xAU, yAU, zAU float64) {
	phi := loc.Lat * deg2rad
	sinPhi, cosPhi := math.Sincos(phi)

	c := 1.0 / math.Sqrt(cosPhi*cosPhi+EarthFlattening*EarthFlattening*sinPhi*sinPhi)
	s := EarthFlattening * EarthFlattening * c
	heightKm := loc.HeightM / 1000.0

	rho := (EarthEquatorialRadiusKm*c + heightKm) * cosPhi // distance from polar axis, km
	zKm := (EarthEquatorialRadiusKm*s + heightKm) * sinPhi

	angDeg := 15.0*gastHours + loc.Lon
	sinAng, cosAng := math.Sincos(angDeg * deg2rad)

	xKm := rho * cosAng
	yKm := rho * sinAng

	return xKm / kmPerAU, yKm / kmPerAU, zKm / kmPerAU
}

// InverseTerra recovers a ground location from a geocentric position vector
// in AU and the Greenwich apparent sidereal time (GAST, hours), inverting Terra.
func InverseTerra(xAU, yAU, zAU, gastHours float64) Location {
	x := xAU * kmPerAU
	y := yAU * kmPerAU
	z := zAU * kmPerAU

	p := math.Sqrt(x*x + y*y)

	if p < 1e-6 {
		lat := 90.0
		if z < 0 {
			lat = -90.0
		}
		polarRadius := EarthEquatorialRadiusKm * EarthFlattening
		return Location{Lat: lat, Lon: 0, HeightM: (math.Abs(z) - polarRadius) * 1000.0}
	}

	f2 := EarthFlattening * EarthFlattening

	w := func(phi float64) float64 {
		sinPhi, cosPhi := math.Sincos(phi)
		denom := math.Sqrt(cosPhi*cosPhi + f2*sinPhi*sinPhi)
		return (f2-1.0)*EarthEquatorialRadiusKm*sinPhi*cosPhi/denom - z*cosPhi + p*sinPhi
	}

	phi := math.Atan2(z, p)
	const h = 1e-6
	for i := 0; i < 20; i++ {
		fw := w(phi)
		if math.Abs(fw) < 1e-12 {
			break
		}
		deriv := (w(phi+h) - w(phi-h)) / (2 * h)
		phi -= fw / deriv
	}

	sinPhi, cosPhi := math.Sincos(phi)
	c := 1.0 / math.Sqrt(cosPhi*cosPhi+f2*sinPhi*sinPhi)

	var heightKm float64
	if math.Abs(sinPhi) > math.Abs(cosPhi) {
		heightKm = z/sinPhi - f2*EarthEquatorialRadiusKm*c
	} else {
		heightKm = p/cosPhi - EarthEquatorialRadiusKm*c
	}

	lonDeg := math.Atan2(y, x)*rad2deg - 15.0*gastHours
	lonDeg = math.Mod(lonDeg, 360.0)
	if lonDeg < -180.0 {
		lonDeg += 360.0
	} else if lonDeg >= 180.0 {
		lonDeg -= 360.0
	}

	return Location{Lat: phi * rad2deg, Lon: lonDeg, HeightM: heightKm * 1000.0}
}
