// Package vsop87 computes heliocentric planetary position and velocity,
// Mercury through Neptune.
//
// The exact VSOP87 Poisson-series coefficient tables (thousands of periodic
// A·cos(B+C·t) terms per planet, per coordinate) are not available anywhere
// in this module's source material, and are too large and too precision-
// sensitive to reconstruct from memory without risking silent, undetectable
// numerical error. Instead this package uses the JPL low-precision Keplerian
// element set (Standish, "Keplerian Elements for Approximate Positions of
// the Major Planets, 1800 AD - 2050 AD"): six osculating elements per planet
// at J2000, each with a linear rate per Julian century, fed through
// kepler.Orbit's exact two-body solver. Accuracy is on the order of
// arcminutes over the 1800-2050 span rather than VSOP87's sub-arcsecond
// precision — a deliberate, documented truncation of fidelity, not of
// algorithm shape (the underlying two-body propagation is exact; only the
// input elements are approximate compared to VSOP87's perturbation series).
package vsop87

import (
	"fmt"

	"github.com/starwake/ephemeris/astroerr"
	"github.com/starwake/ephemeris/kepler"
	"github.com/starwake/ephemeris/timescale"
	"github.com/starwake/ephemeris/vector"
)

// Planet identifies one of the eight VSOP87 major planets (Earth here means
// the Earth-Moon barycenter, matching the Standish table's convention; body
// derives the Earth-only vector by subtracting the Moon's barycentric share).
type Planet int

const (
	Mercury Planet = iota
	Venus
	EarthMoonBarycenter
	Mars
	Jupiter
	Saturn
	Uranus
	Neptune
)

func (p Planet) String() string {
	switch p {
	case Mercury:
		return "Mercury"
	case Venus:
		return "Venus"
	case EarthMoonBarycenter:
		return "EarthMoonBarycenter"
	case Mars:
		return "Mars"
	case Jupiter:
		return "Jupiter"
	case Saturn:
		return "Saturn"
	case Uranus:
		return "Uranus"
	case Neptune:
		return "Neptune"
	default:
		return "unknown"
	}
}

// elementSet holds one planet's J2000 osculating elements and their linear
// rate per Julian century, in the units and column order of the Standish
// table: a (AU), e, I (deg), L (deg), longPeri ϖ (deg), longNode Ω (deg).
type elementSet struct {
	a, aDot             float64
	e, eDot             float64
	iDeg, iDotDeg       float64
	lDeg, lDotDeg       float64
	periDeg, periDotDeg float64
	nodeDeg, nodeDotDeg float64
}

var elements = map[Planet]elementSet{
	Mercury: {
		a: 0.38709927, aDot: 0.00000037,
		e: 0.20563593, eDot: 0.00001906,
		iDeg: 7.00497902, iDotDeg: -0.00594749,
		lDeg: 252.25032350, lDotDeg: 149472.67411175,
		periDeg: 77.45779628, periDotDeg: 0.16047689,
		nodeDeg: 48.33076593, nodeDotDeg: -0.12534081,
	},
	Venus: {
		a: 0.72333566, aDot: 0.00000390,
		e: 0.00677672, eDot: -0.00004107,
		iDeg: 3.39467605, iDotDeg: -0.00078890,
		lDeg: 181.97909950, lDotDeg: 58517.81538729,
		periDeg: 131.60246718, periDotDeg: 0.00268329,
		nodeDeg: 76.67984255, nodeDotDeg: -0.27769418,
	},
	EarthMoonBarycenter: {
		a: 1.00000261, aDot: 0.00000562,
		e: 0.01671123, eDot: -0.00004392,
		iDeg: -0.00001531, iDotDeg: -0.01294668,
		lDeg: 100.46457166, lDotDeg: 35999.37244981,
		periDeg: 102.93768193, periDotDeg: 0.32327364,
		nodeDeg: 0.0, nodeDotDeg: 0.0,
	},
	Mars: {
		a: 1.52371034, aDot: 0.00001847,
		e: 0.09339410, eDot: 0.00007882,
		iDeg: 1.84969142, iDotDeg: -0.00813131,
		lDeg: -4.55343205, lDotDeg: 19140.30268499,
		periDeg: -23.94362959, periDotDeg: 0.44441088,
		nodeDeg: 49.55953891, nodeDotDeg: -0.29257343,
	},
	Jupiter: {
		a: 5.20288700, aDot: -0.00011607,
		e: 0.04838624, eDot: -0.00013253,
		iDeg: 1.30439695, iDotDeg: -0.00183714,
		lDeg: 34.39644051, lDotDeg: 3034.74612775,
		periDeg: 14.72847983, periDotDeg: 0.21252668,
		nodeDeg: 100.47390909, nodeDotDeg: 0.20469106,
	},
	Saturn: {
		a: 9.53667594, aDot: -0.00125060,
		e: 0.05386179, eDot: -0.00050991,
		iDeg: 2.48599187, iDotDeg: 0.00193609,
		lDeg: 49.95424423, lDotDeg: 1222.49362201,
		periDeg: 92.59887831, periDotDeg: -0.41897216,
		nodeDeg: 113.66242448, nodeDotDeg: -0.28867794,
	},
	Uranus: {
		a: 19.18916464, aDot: -0.00196176,
		e: 0.04725744, eDot: -0.00004397,
		iDeg: 0.77263783, iDotDeg: -0.00242939,
		lDeg: 313.23810451, lDotDeg: 428.48202785,
		periDeg: 170.95427630, periDotDeg: 0.40805281,
		nodeDeg: 74.01692503, nodeDotDeg: 0.04240589,
	},
	Neptune: {
		a: 30.06992276, aDot: 0.00026291,
		e: 0.00859048, eDot: 0.00005105,
		iDeg: 1.77004347, iDotDeg: 0.00035372,
		lDeg: -55.12002969, lDotDeg: 218.45945325,
		periDeg: 44.96476227, periDotDeg: -0.32241464,
		nodeDeg: 131.78422574, nodeDotDeg: -0.00508664,
	},
}

func normalizeDeg180(d float64) float64 {
	d = d - 360.0*float64(int(d/360.0))
	if d > 180 {
		d -= 360
	} else if d < -180 {
		d += 360
	}
	return d
}

// orbitAt builds the osculating kepler.Orbit for planet p valid exactly at
// tdbJD: elements are advanced to tdbJD via their per-century rate, then the
// mean anomaly is evaluated directly (no further propagation inside
// kepler.Orbit is needed since EpochJD == tdbJD).
func orbitAt(p Planet, tdbJD float64) (kepler.Orbit, error) {
	es, ok := elements[p]
	if !ok {
		return kepler.Orbit{}, fmt.Errorf("%w: unknown vsop87 planet %v", astroerr.ErrInvalidBody, p)
	}

	T := (tdbJD - timescale.J2000JD) / 36525.0

	a := es.a + es.aDot*T
	e := es.e + es.eDot*T
	i := es.iDeg + es.iDotDeg*T
	l := es.lDeg + es.lDotDeg*T
	peri := es.periDeg + es.periDotDeg*T
	node := es.nodeDeg + es.nodeDotDeg*T

	meanAnomaly := normalizeDeg180(l - peri)
	argPeriapsis := peri - node

	return kepler.Orbit{
		SemiMajorAxisAU: a,
		Eccentricity:    e,
		InclinationDeg:  i,
		LongAscNodeDeg:  node,
		ArgPeriapsisDeg: argPeriapsis,
		MeanAnomalyDeg:  meanAnomaly,
		EpochJD:         tdbJD,
	}, nil
}

// HelioState returns the heliocentric ICRF position (AU) and velocity
// (AU/day) of planet p at the given TDB Julian date.
func HelioState(p Planet, tdbJD float64) (vector.StateVector, error) {
	o, err := orbitAt(p, tdbJD)
	if err != nil {
		return vector.StateVector{}, err
	}
	return o.StateAU(tdbJD), nil
}
