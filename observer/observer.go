// Package observer computes observer-relative positions: the geocentric
// body vector minus the observer's own geocentric vector (Equator), and the
// horizontal altitude/azimuth of that vector as seen from a ground site
// (Horizon), with optional atmospheric refraction (spec.md §4.10).
//
// Grounded on goeph's coord/altaz.go (the ICRF→horizon rotation chain this
// package composes from) and coord/geodetic.go (Terra, for the observer's
// own geocentric position).
package observer

import (
	"math"

	"github.com/starwake/ephemeris/coord"
)

// Equator returns the topocentric ICRF position of a geocentric body vector
// (AU) as seen from an observer at the given geodetic location: the
// observer's own geocentric position (via coord.Terra) is subtracted from
// the body vector. If ofDate is true, the result is additionally rotated to
// the true equator and equinox of the given TT Julian date
// (coord.ToEquatorOfDate); otherwise it stays in the ICRF (J2000) frame.
func Equator(bodyGeoAU [3]float64, loc coord.Location, jdTT float64, ofDate bool) [3]float64 {
	gastHours := coord.GAST(jdTT) / 15.0
	ox, oy, oz := coord.Terra(loc, gastHours)
	topo := [3]float64{bodyGeoAU[0] - ox, bodyGeoAU[1] - oy, bodyGeoAU[2] - oz}
	if !ofDate {
		return topo
	}
	return coord.ToEquatorOfDate(topo, jdTT)
}

// Horizon returns the altitude and azimuth (degrees) of a topocentric ICRF
// position vector as seen from an observer at the given geodetic location.
// Only altitude and azimuth are returned; no refraction-adjusted direction
// vector or RA/Dec is produced.
//
// The position is first rotated to the true equator of date, then three
// orthonormal equatorial unit vectors (zenith, north, west) for the
// observer are spun by -15*GAST(jdTT) and dotted with the body's unit
// vector to get (pz, pn, pw); azimuth is atan2(-pw, pn) normalized to
// [0,360), zenith distance is atan2(sqrt(pn^2+pw^2), pz). If mode is not
// coord.Airless, Saemundsson's refraction correction is subtracted from the
// zenith distance, i.e. added to the altitude (spec.md §4.10).
func Horizon(posICRF [3]float64, loc coord.Location, jdTT float64, mode coord.RefractionMode) (altDeg, azDeg float64) {
	dateVec := coord.ToEquatorOfDate(posICRF, jdTT)
	r := math.Sqrt(dateVec[0]*dateVec[0] + dateVec[1]*dateVec[1] + dateVec[2]*dateVec[2])
	if r == 0 {
		return 0, 0
	}
	ux, uy, uz := dateVec[0]/r, dateVec[1]/r, dateVec[2]/r

	lat := loc.Lat * math.Pi / 180.0
	sinLat, cosLat := math.Sincos(lat)

	gastDeg := coord.GAST(jdTT)
	angDeg := gastDeg + loc.Lon
	ang := angDeg * math.Pi / 180.0
	sinAng, cosAng := math.Sincos(ang)

	// Local zenith, north, and west unit vectors in the true-equator-of-date
	// frame, following spec.md's zenith/north/west triad.
	zenith := [3]float64{cosLat * cosAng, cosLat * sinAng, sinLat}
	north := [3]float64{-sinLat * cosAng, -sinLat * sinAng, cosLat}
	west := [3]float64{sinAng, -cosAng, 0}

	pz := ux*zenith[0] + uy*zenith[1] + uz*zenith[2]
	pn := ux*north[0] + uy*north[1] + uz*north[2]
	pw := ux*west[0] + uy*west[1] + uz*west[2]

	azDeg = math.Mod(math.Atan2(-pw, pn)*180.0/math.Pi+360.0, 360.0)
	zenithDistDeg := math.Atan2(math.Sqrt(pn*pn+pw*pw), pz) * 180.0 / math.Pi
	altDeg = 90.0 - zenithDistDeg

	if mode != coord.Airless {
		altDeg += coord.RefractionAngle(mode, altDeg)
	}
	return altDeg, azDeg
}
