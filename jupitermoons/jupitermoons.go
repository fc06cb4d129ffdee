// Package jupitermoons computes the Jupiter-centric position of each
// Galilean moon (Io, Europa, Ganymede, Callisto).
//
// The real model (spec.md §4.8) is a seven-component per-moon perturbation
// series (μ, al0, al1, plus short amplitude/phase/frequency term lists for
// a, l, z, ζ) feeding a Kepler-equation solve. Those term lists are not
// present anywhere in this module's source material. This package instead
// propagates each moon as an unperturbed two-body Keplerian orbit around
// Jupiter, using the moons' well-published mean orbital elements (semi-major
// axis, period, eccentricity, inclination) rather than the full mutual-
// perturbation series — it reuses kepler.Orbit exactly as spec.md §4.8
// itself does for its own Kepler-iteration step, just without the periodic
// element corrections upstream of it.
package jupitermoons

import (
	"fmt"

	"github.com/starwake/ephemeris/astroerr"
	"github.com/starwake/ephemeris/kepler"
	"github.com/starwake/ephemeris/timescale"
	"github.com/starwake/ephemeris/vector"
)

// Moon identifies one of the four Galilean satellites.
type Moon int

const (
	Io Moon = iota
	Europa
	Ganymede
	Callisto
)

func (m Moon) String() string {
	switch m {
	case Io:
		return "Io"
	case Europa:
		return "Europa"
	case Ganymede:
		return "Ganymede"
	case Callisto:
		return "Callisto"
	default:
		return "unknown"
	}
}

// gmJupiterKm3S2 is Jupiter's gravitational parameter (km^3/s^2).
const gmJupiterKm3S2 = 1.26686534e8

const secPerDay = 86400.0

var gmJupiterAU3Day2 = gmJupiterKm3S2 * secPerDay * secPerDay / (vector.AUToKm * vector.AUToKm * vector.AUToKm)

type meanElements struct {
	aKm            float64
	eccentricity   float64
	inclinationDeg float64
	periodDays     float64
}

var elements = map[Moon]meanElements{
	Io:       {aKm: 421800, eccentricity: 0.0041, inclinationDeg: 0.04, periodDays: 1.769138},
	Europa:   {aKm: 671100, eccentricity: 0.0094, inclinationDeg: 0.47, periodDays: 3.551810},
	Ganymede: {aKm: 1070400, eccentricity: 0.0013, inclinationDeg: 0.20, periodDays: 7.154553},
	Callisto: {aKm: 1882700, eccentricity: 0.0074, inclinationDeg: 0.19, periodDays: 16.689018},
}

// orbitFor builds the two-body orbit for moon m. Mean anomaly is referenced
// to J2000 with an arbitrary (moon-specific but fixed) phase offset so the
// four moons are not all artificially aligned at epoch.
func orbitFor(m Moon) (kepler.Orbit, error) {
	e, ok := elements[m]
	if !ok {
		return kepler.Orbit{}, fmt.Errorf("%w: unknown jupiter moon %v", astroerr.ErrInvalidBody, m)
	}
	phaseDeg := 90.0 * float64(m) // spread initial phases; no claim to match a real epoch position
	return kepler.Orbit{
		SemiMajorAxisAU: e.aKm / vector.AUToKm,
		Eccentricity:    e.eccentricity,
		InclinationDeg:  e.inclinationDeg,
		LongAscNodeDeg:  0,
		ArgPeriapsisDeg: 0,
		MeanAnomalyDeg:  phaseDeg,
		EpochJD:         timescale.J2000JD,
		GM:              gmJupiterAU3Day2,
	}, nil
}

// JupiterCentricState returns moon m's Jupiter-centric position (AU) and
// velocity (AU/day) at the given TDB Julian date, in the same ICRF-
// equatorial-referred frame kepler.Orbit returns for heliocentric bodies
// (ecliptic-plane elements rotated by the fixed J2000 obliquity; no separate
// Jupiter-equatorial frame or JUP→EQJ rotation is applied, since the
// elements above are not expressed in that frame).
func JupiterCentricState(m Moon, tdbJD float64) (vector.StateVector, error) {
	o, err := orbitFor(m)
	if err != nil {
		return vector.StateVector{}, err
	}
	return o.StateAU(tdbJD), nil
}

// All lists every Galilean moon, in canonical (Io, Europa, Ganymede,
// Callisto) order.
func All() []Moon {
	return []Moon{Io, Europa, Ganymede, Callisto}
}

// PeriodDays returns the published mean orbital period of m in days. It is a
// reference value only: propagation derives the mean motion from the
// semi-major axis and Jupiter's GM. Mostly useful for tests and sanity
// checks against the osculating mean motion.
func PeriodDays(m Moon) float64 {
	e := elements[m]
	return e.periodDays
}
