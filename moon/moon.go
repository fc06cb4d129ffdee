// Package moon computes the geocentric position of the Moon.
//
// The full Brown/ELP lunar theory (ADDSOL's ~60 main-problem periodic terms
// plus the ADDN latitude supplement) is not present anywhere in this
// module's source material; reconstructing the complete coefficient table
// from memory risks silent, undetectable numerical error. This package
// instead evaluates the handful of dominant periodic terms of that same
// series — equation of center, evection, variation, and annual equation for
// longitude; the main out-of-plane terms for latitude; the leading parallax
// terms for distance — which is a genuine truncation of the same series
// shape (same fundamental arguments D, M, M', F; same trigonometric
// structure), not a different algorithm. Accuracy is degree-level rather
// than the full theory's arcsecond-level, matching the truncation precedent
// already used for the IAU2000A nutation series in package coord.
//
// The mean lunar node longitude, previously package lunarnodes, lives here
// as MeanNodeLongitude since it is part of the Moon's own orbital geometry.
package moon

import (
	"math"

	"github.com/starwake/ephemeris/timescale"
	"github.com/starwake/ephemeris/vector"
)

const deg2rad = math.Pi / 180.0

// J2000 mean obliquity, matching coord/kepler's convention.
const obliquitySin = 0.3977771559319137062
const obliquityCos = 0.9174820620691818140

func fund(tdbJD float64) (lPrime, d, m, mPrime, f, T float64) {
	T = (tdbJD - timescale.J2000JD) / 36525.0
	lPrime = 218.3164477 + 481267.88123421*T - 0.0015786*T*T + T*T*T/538841.0
	d = 297.8501921 + 445267.1114034*T - 0.0018819*T*T + T*T*T/545868.0
	m = 357.5291092 + 35999.0502909*T - 0.0001536*T*T + T*T*T/24490000.0
	mPrime = 134.9633964 + 477198.8675055*T + 0.0087414*T*T + T*T*T/69699.0
	f = 93.2720950 + 483202.0175233*T - 0.0036539*T*T - T*T*T/3526000.0
	return
}

func norm360(d float64) float64 {
	d = math.Mod(d, 360.0)
	if d < 0 {
		d += 360.0
	}
	return d
}

// EclipticLonLatDistance returns the Moon's geocentric ecliptic longitude
// and latitude (degrees, mean equinox of date: the mean longitude includes
// precession and no nutation is applied) and distance (AU) at the given TDB
// Julian date, from the truncated periodic series.
func EclipticLonLatDistance(tdbJD float64) (lonDeg, latDeg, distAU float64) {
	lPrime, d, m, mPrime, f, _ := fund(tdbJD)
	dR := d * deg2rad
	mR := m * deg2rad
	mpR := mPrime * deg2rad
	fR := f * deg2rad

	// Dominant ADDSOL longitude terms (degrees): equation of center,
	// evection, variation, annual equation, plus two smaller corrections.
	dLon := 6.288774*math.Sin(mpR) +
		1.274027*math.Sin(2*dR-mpR) +
		0.658314*math.Sin(2*dR) +
		0.213618*math.Sin(2*mpR) -
		0.185116*math.Sin(mR) -
		0.114332*math.Sin(2*fR)

	lonDeg = norm360(lPrime + dLon)

	// Dominant ADDN/latitude terms.
	dLat := 5.128122*math.Sin(fR) +
		0.280602*math.Sin(mpR+fR) +
		0.277693*math.Sin(mpR-fR) +
		0.173237*math.Sin(2*dR-fR)
	latDeg = dLat

	// Dominant parallax terms: offsets in km from the 385000.56 km mean
	// distance.
	distKm := 385000.56 +
		(-20905.355*math.Cos(mpR) -
			3699.111*math.Cos(2*dR-mpR) -
			2955.968*math.Cos(2*dR) -
			569.925*math.Cos(2*mpR))

	distAU = distKm / (vector.AUToKm)
	return
}

// MeanNodeLongitude returns the mean ascending and descending lunar node
// ecliptic longitudes (degrees) at the given TDB Julian date. Formerly
// package lunarnodes' MeanLunarNodes.
func MeanNodeLongitude(tdbJD float64) (ascendingDeg, descendingDeg float64) {
	T := (tdbJD - timescale.J2000JD) / 36525.0
	omega := 125.04452 - 1934.136261*T + 0.0020708*T*T + T*T*T/450000.0
	ascendingDeg = norm360(omega)
	descendingDeg = norm360(ascendingDeg + 180.0)
	return
}

// GeocentricPosition returns the Moon's geocentric ICRF-equatorial position
// in AU at the given TDB Julian date: the ecliptic lon/lat/distance rotated
// by the fixed J2000 mean obliquity. No precession step is applied, so the
// result stays referred to the mean equinox of date rather than J2000; its
// longitude differs from a J2000-referred one by about 1.4° per Julian
// century away from J2000.
func GeocentricPosition(tdbJD float64) vector.Vector {
	lonDeg, latDeg, distAU := EclipticLonLatDistance(tdbJD)
	lonR := lonDeg * deg2rad
	latR := latDeg * deg2rad

	cosLat := math.Cos(latR)
	xEcl := distAU * cosLat * math.Cos(lonR)
	yEcl := distAU * cosLat * math.Sin(lonR)
	zEcl := distAU * math.Sin(latR)

	return vector.Vector{
		X: xEcl,
		Y: obliquityCos*yEcl - obliquitySin*zEcl,
		Z: obliquitySin*yEcl + obliquityCos*zEcl,
	}
}

// stateDtDays is the central-difference step for GeocentricState's velocity
// estimate, matching the dt the spec's own apsis search uses for numerical
// distance slopes.
const stateDtDays = 0.001

// GeocentricState returns the Moon's geocentric ICRF-equatorial position
// (AU) and velocity (AU/day, central difference) at the given TDB Julian
// date. No closed-form derivative exists for this truncated series the way
// it does for vsop87's Keplerian elements, so velocity is estimated
// numerically — the same technique the spec names for apsis slope-finding.
func GeocentricState(tdbJD float64) vector.StateVector {
	p0 := GeocentricPosition(tdbJD - stateDtDays)
	p1 := GeocentricPosition(tdbJD + stateDtDays)
	pos := GeocentricPosition(tdbJD)
	return vector.StateVector{
		X: pos.X, Y: pos.Y, Z: pos.Z,
		VX: (p1.X - p0.X) / (2 * stateDtDays),
		VY: (p1.Y - p0.Y) / (2 * stateDtDays),
		VZ: (p1.Z - p0.Z) / (2 * stateDtDays),
	}
}
