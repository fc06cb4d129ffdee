// Package catalog provides reference-frame conversions used by star
// catalogs (galactic and B1950/FK4 coordinates) and a constellation lookup
// for a given sky position (spec.md §4.13 supplement).
//
// Grounded on goeph's coord/frames.go (GalacticMatrix, B1950Matrix,
// ICRFToGalactic — rotation matrices and conversion, kept verbatim as
// public-domain SPICE/Skyfield-sourced constants) and constellation/
// constellation.go (the 88 IAU constellation abbreviation/name table).
//
// constellation.go's boundary lookup referenced a precomputed B1875
// RA/Dec grid (sortedRA, sortedDec, grid, abbreviations) that was never
// present in this module's source material — the generating data file
// goeph ships alongside it was not part of the retrieved pack. Rather than
// fabricate a multi-thousand-entry IAU boundary table from memory, Constellation
// here uses a documented coarser substitute: nearest approximate
// constellation center by great-circle angular distance. This is far less
// precise than the true polygon boundaries near a constellation's edge,
// but requires no invented precision data and degrades gracefully.
package catalog

import "math"

// GalacticMatrix is the rotation matrix from ICRF (J2000) to Galactic
// System II (IAU 1958). Apply as v_gal = GalacticMatrix * v_icrf.
// Source: SPICE Toolkit / Skyfield.
var GalacticMatrix = [3][3]float64{
	{-0.054875539395742523, -0.87343710472759606, -0.48383499177002515},
	{0.49410945362774389, -0.44482959429757496, 0.74698224869989183},
	{-0.86766613568337381, -0.19807638961301985, 0.45598379452141991},
}

// B1950Matrix is the rotation matrix from ICRF (J2000) to the mean equator
// and equinox of B1950 (FK4). Apply as v_B1950 = B1950Matrix * v_icrf.
// Source: SPICE Toolkit / Skyfield.
var B1950Matrix = [3][3]float64{
	{0.99992570795236291, 0.011178938126427691, 0.0048590038414544293},
	{-0.011178938137770135, 0.9999375133499887, -2.715792625851078e-05},
	{-0.0048590038153592712, -2.7162594714247048e-05, 0.9999881946023742},
}

const rad2deg = 180.0 / math.Pi
const deg2rad = math.Pi / 180.0

// ICRFToGalactic converts an ICRF Cartesian vector to Galactic latitude and
// longitude in degrees. Longitude is in [0, 360).
func ICRFToGalactic(x, y, z float64) (latDeg, lonDeg float64) {
	gx := GalacticMatrix[0][0]*x + GalacticMatrix[0][1]*y + GalacticMatrix[0][2]*z
	gy := GalacticMatrix[1][0]*x + GalacticMatrix[1][1]*y + GalacticMatrix[1][2]*z
	gz := GalacticMatrix[2][0]*x + GalacticMatrix[2][1]*y + GalacticMatrix[2][2]*z

	r := math.Sqrt(gx*gx + gy*gy + gz*gz)
	if r == 0 {
		return 0, 0
	}

	latDeg = math.Asin(gz/r) * rad2deg
	lonDeg = math.Atan2(gy, gx) * rad2deg
	lonDeg = math.Mod(lonDeg+360.0, 360.0)
	return latDeg, lonDeg
}

// ICRFToB1950 converts an ICRF (J2000) Cartesian vector to the mean equator
// and equinox of B1950 (FK4), returning right ascension (hours) and
// declination (degrees).
func ICRFToB1950(x, y, z float64) (raHours, decDeg float64) {
	bx := B1950Matrix[0][0]*x + B1950Matrix[0][1]*y + B1950Matrix[0][2]*z
	by := B1950Matrix[1][0]*x + B1950Matrix[1][1]*y + B1950Matrix[1][2]*z
	bz := B1950Matrix[2][0]*x + B1950Matrix[2][1]*y + B1950Matrix[2][2]*z

	r := math.Sqrt(bx*bx + by*by + bz*bz)
	if r == 0 {
		return 0, 0
	}
	rXY := math.Sqrt(bx*bx + by*by)
	decDeg = math.Atan2(bz, rXY) * rad2deg
	raHours = math.Mod(math.Atan2(by, bx)*rad2deg/15.0+24.0, 24.0)
	return raHours, decDeg
}
