// Package body is the heliocentric/geocentric aggregator: given a Body and a
// TDB Julian date, it dispatches to vsop87 (planets), moon (the Moon), or
// pluto, sums barycentric contributions, and applies light-time iteration
// for apparent geocentric vectors.
//
// This replaces goeph's spk package (a binary DAF/SPK Chebyshev-segment
// kernel reader, opened from a file on disk) entirely: this library is
// analytic and has no file I/O. The chain-to-SSB summation and light-time
// iteration pattern spk.go used is kept; the binary parser underneath it is
// not, since there is no kernel file to parse.
package body

import (
	"fmt"
	"math"

	"github.com/starwake/ephemeris/astroerr"
	"github.com/starwake/ephemeris/coord"
	"github.com/starwake/ephemeris/elements"
	"github.com/starwake/ephemeris/moon"
	"github.com/starwake/ephemeris/pluto"
	"github.com/starwake/ephemeris/vector"
	"github.com/starwake/ephemeris/vsop87"
)

// gmSunKm3s2 is GM_Sun (IAU 2015 nominal value), used to convert a body's
// heliocentric state vector into osculating orbital elements.
const gmSunKm3s2 = 132712440041.94

const secPerDay = 86400.0

// Body is the closed set of natural bodies this library models.
type Body int

const (
	Sun Body = iota
	Mercury
	Venus
	Earth
	Mars
	Jupiter
	Saturn
	Uranus
	Neptune
	Pluto
	Moon
	EarthMoonBarycenter
	SolarSystemBarycenter
)

func (b Body) String() string {
	switch b {
	case Sun:
		return "Sun"
	case Mercury:
		return "Mercury"
	case Venus:
		return "Venus"
	case Earth:
		return "Earth"
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
	case Pluto:
		return "Pluto"
	case Moon:
		return "Moon"
	case EarthMoonBarycenter:
		return "EarthMoonBarycenter"
	case SolarSystemBarycenter:
		return "SolarSystemBarycenter"
	default:
		return "unknown"
	}
}

// moonEarthMassRatio is the Earth/Moon mass ratio, used to split the
// Earth-Moon barycenter's heliocentric position into its Earth and Moon
// components.
const moonEarthMassRatio = 81.30056

// cAUDay is the speed of light in AU/day (spec.md §6).
const cAUDay = 173.1446326846693

var vsopPlanet = map[Body]vsop87.Planet{
	Mercury: vsop87.Mercury,
	Venus:   vsop87.Venus,
	Mars:    vsop87.Mars,
	Jupiter: vsop87.Jupiter,
	Saturn:  vsop87.Saturn,
	Uranus:  vsop87.Uranus,
	Neptune: vsop87.Neptune,
}

// gmRatio is GM_body / GM_sun for each major planet (Sun/body mass ratio
// inverted). ssbOffset uses the Jupiter through Neptune entries to weight
// those planets' contributions to the solar-system barycenter offset.
var gmRatio = map[Body]float64{
	Mercury: 1.0 / 6023600.0,
	Venus:   1.0 / 408523.71,
	Mars:    1.0 / 3098708.0,
	Jupiter: 1.0 / 1047.3486,
	Saturn:  1.0 / 3497.898,
	Uranus:  1.0 / 22902.98,
	Neptune: 1.0 / 19412.24,
}

// earthHelioState returns the Earth's (not EMB's) heliocentric ICRF state
// (AU, AU/day): the Earth-Moon barycenter's VSOP state minus the Moon's
// share of the Earth-Moon offset.
func earthHelioState(tdbJD float64) (vector.StateVector, error) {
	emb, err := vsop87.HelioState(vsop87.EarthMoonBarycenter, tdbJD)
	if err != nil {
		return vector.StateVector{}, err
	}
	moonGeo := moon.GeocentricState(tdbJD)
	share := 1.0 / (1.0 + moonEarthMassRatio)
	return vector.StateVector{
		X: emb.X - moonGeo.X*share, Y: emb.Y - moonGeo.Y*share, Z: emb.Z - moonGeo.Z*share,
		VX: emb.VX - moonGeo.VX*share, VY: emb.VY - moonGeo.VY*share, VZ: emb.VZ - moonGeo.VZ*share,
	}, nil
}

// HelioState returns body b's heliocentric ICRF state (AU, AU/day) at the
// given TDB Julian date.
func HelioState(b Body, tdbJD float64) (vector.StateVector, error) {
	switch b {
	case Sun:
		return vector.StateVector{}, nil
	case Moon:
		earth, err := earthHelioState(tdbJD)
		if err != nil {
			return vector.StateVector{}, err
		}
		mg := moon.GeocentricState(tdbJD)
		return vector.StateVector{
			X: earth.X + mg.X, Y: earth.Y + mg.Y, Z: earth.Z + mg.Z,
			VX: earth.VX + mg.VX, VY: earth.VY + mg.VY, VZ: earth.VZ + mg.VZ,
		}, nil
	case Earth:
		return earthHelioState(tdbJD)
	case EarthMoonBarycenter:
		return vsop87.HelioState(vsop87.EarthMoonBarycenter, tdbJD)
	case Pluto:
		return pluto.HelioState(tdbJD), nil
	case SolarSystemBarycenter:
		return ssbOffset(tdbJD)
	default:
		if vp, ok := vsopPlanet[b]; ok {
			return vsop87.HelioState(vp, tdbJD)
		}
		return vector.StateVector{}, fmt.Errorf("%w: %v", astroerr.ErrInvalidBody, b)
	}
}

// ssbOffset returns the (approximate) position of the solar-system
// barycenter in the heliocentric frame: the GM/(GM+GMSun)-weighted sum of
// the outer planets' (Jupiter through Neptune) heliocentric states
// (spec.md §4.9). The inner planets and Pluto are omitted.
func ssbOffset(tdbJD float64) (vector.StateVector, error) {
	var sum vector.StateVector
	for _, b := range []Body{Jupiter, Saturn, Uranus, Neptune} {
		ratio := gmRatio[b]
		st, err := vsop87.HelioState(vsopPlanet[b], tdbJD)
		if err != nil {
			return vector.StateVector{}, err
		}
		w := ratio / (1 + ratio)
		sum.X += st.X * w
		sum.Y += st.Y * w
		sum.Z += st.Z * w
		sum.VX += st.VX * w
		sum.VY += st.VY * w
		sum.VZ += st.VZ * w
	}
	return sum, nil
}

// HelioVector returns body b's heliocentric ICRF position (AU) at tdbJD.
func HelioVector(b Body, tdbJD float64) ([3]float64, error) {
	st, err := HelioState(b, tdbJD)
	if err != nil {
		return [3]float64{}, err
	}
	return [3]float64{st.X, st.Y, st.Z}, nil
}

// BaryState returns body b's solar-system-barycentric ICRF state (AU,
// AU/day): its heliocentric state combined with the barycenter's own
// heliocentric-frame position (spec.md §4.9).
func BaryState(b Body, tdbJD float64) (vector.StateVector, error) {
	bodyState, err := HelioState(b, tdbJD)
	if err != nil {
		return vector.StateVector{}, err
	}
	ssb, err := ssbOffset(tdbJD)
	if err != nil {
		return vector.StateVector{}, err
	}
	return vector.StateVector{
		X: bodyState.X - ssb.X, Y: bodyState.Y - ssb.Y, Z: bodyState.Z - ssb.Z,
		VX: bodyState.VX - ssb.VX, VY: bodyState.VY - ssb.VY, VZ: bodyState.VZ - ssb.VZ,
	}, nil
}

// GeocentricPosition returns body b's geometric (no light-time, no
// aberration) geocentric ICRF position in AU at tdbJD.
func GeocentricPosition(b Body, tdbJD float64) ([3]float64, error) {
	if b == Earth {
		return [3]float64{}, nil
	}
	if b == Moon {
		mg := moon.GeocentricPosition(tdbJD)
		return [3]float64{mg.X, mg.Y, mg.Z}, nil
	}
	bodyHelio, err := HelioVector(b, tdbJD)
	if err != nil {
		return [3]float64{}, err
	}
	earthHelio, err := HelioVector(Earth, tdbJD)
	if err != nil {
		return [3]float64{}, err
	}
	return [3]float64{
		bodyHelio[0] - earthHelio[0],
		bodyHelio[1] - earthHelio[1],
		bodyHelio[2] - earthHelio[2],
	}, nil
}

const maxLightTimeIterations = 10
const lightTimeToleranceDays = 1e-9

// GeoVector returns body b's geocentric ICRF position in AU at tdbJD,
// corrected for light-time: the body is taken at the retarded time found by
// iteration. The aberration flag only selects which Earth position the
// light-time iteration measures the distance from (Earth at the retarded
// time if true, at tdbJD if false); the returned vector always subtracts
// Earth's position at tdbJD and carries no stellar aberration (Apparent
// applies that separately). Fails with astroerr.ErrNoConverge if light-time iteration does not settle
// within 10 iterations.
func GeoVector(b Body, tdbJD float64, aberration bool) ([3]float64, error) {
	if b == Moon {
		mg := moon.GeocentricPosition(tdbJD)
		return [3]float64{mg.X, mg.Y, mg.Z}, nil
	}
	if b == Earth {
		return [3]float64{}, nil
	}

	ltime := tdbJD
	for i := 0; i < maxLightTimeIterations; i++ {
		bodyHelio, err := HelioVector(b, ltime)
		if err != nil {
			return [3]float64{}, err
		}
		earthT := tdbJD
		if aberration {
			earthT = ltime
		}
		earthHelio, err := HelioVector(Earth, earthT)
		if err != nil {
			return [3]float64{}, err
		}
		dx := bodyHelio[0] - earthHelio[0]
		dy := bodyHelio[1] - earthHelio[1]
		dz := bodyHelio[2] - earthHelio[2]
		dist := math.Sqrt(dx*dx + dy*dy + dz*dz)

		ltimeNew := tdbJD - dist/cAUDay
		if math.Abs(ltimeNew-ltime) < lightTimeToleranceDays {
			ltime = ltimeNew
			break
		}
		ltime = ltimeNew
		if i == maxLightTimeIterations-1 {
			return [3]float64{}, fmt.Errorf("%w: light-time iteration for %v", astroerr.ErrNoConverge, b)
		}
	}

	bodyHelio, err := HelioVector(b, ltime)
	if err != nil {
		return [3]float64{}, err
	}
	earthHelio, err := HelioVector(Earth, tdbJD)
	if err != nil {
		return [3]float64{}, err
	}
	return [3]float64{
		bodyHelio[0] - earthHelio[0],
		bodyHelio[1] - earthHelio[1],
		bodyHelio[2] - earthHelio[2],
	}, nil
}

// Apparent returns body b's apparent geocentric ICRF position in AU at
// tdbJD: light-time and stellar-aberration corrected (spec.md Non-goals
// exclude relativistic light deflection, so this is the full correction
// chain this library applies — see goeph's spk.Apparent for the pattern
// this generalizes, minus its gravitational-deflection step).
func Apparent(b Body, tdbJD float64) ([3]float64, error) {
	geo, err := GeoVector(b, tdbJD, true)
	if err != nil {
		return [3]float64{}, err
	}
	v, err := aberrationCorrect(b, tdbJD, geo)
	if err != nil {
		return [3]float64{}, err
	}
	return v, nil
}

// aberrationCorrect applies coord.Aberration using Earth's heliocentric
// velocity at tdbJD. coord.Aberration works in km/km-per-day; this package
// works in AU/AU-per-day, so the conversion happens at this boundary.
func aberrationCorrect(b Body, tdbJD float64, geoAU [3]float64) ([3]float64, error) {
	if b == Earth {
		return geoAU, nil
	}
	earthState, err := earthHelioState(tdbJD)
	if err != nil {
		return [3]float64{}, err
	}
	distAU := math.Sqrt(geoAU[0]*geoAU[0] + geoAU[1]*geoAU[1] + geoAU[2]*geoAU[2])
	lightTimeDays := distAU / cAUDay

	posKm := [3]float64{geoAU[0] * vector.AUToKm, geoAU[1] * vector.AUToKm, geoAU[2] * vector.AUToKm}
	velKmPerDay := [3]float64{
		earthState.VX * vector.AUToKm,
		earthState.VY * vector.AUToKm,
		earthState.VZ * vector.AUToKm,
	}
	out := coord.Aberration(posKm, velKmPerDay, lightTimeDays)
	return [3]float64{out[0] / vector.AUToKm, out[1] / vector.AUToKm, out[2] / vector.AUToKm}, nil
}

// OsculatingElements returns body b's heliocentric osculating Keplerian
// orbital elements at tdbJD, computed from its instantaneous state vector
// rotated to the J2000 mean ecliptic, so the angular elements are
// ecliptic-referred (spec.md §4.9 supplement). Not meaningful for Sun (zero
// state) or the solar-system barycenter.
func OsculatingElements(b Body, tdbJD float64) (elements.OsculatingElements, error) {
	state, err := HelioState(b, tdbJD)
	if err != nil {
		return elements.OsculatingElements{}, err
	}
	// ICRF equatorial -> J2000 mean ecliptic (rotation about x by the
	// J2000 mean obliquity).
	const oblSin = 0.3977771559319137062
	const oblCos = 0.9174820620691818140
	stateKm := vector.StateVector{
		X:  state.X * vector.AUToKm,
		Y:  (oblCos*state.Y + oblSin*state.Z) * vector.AUToKm,
		Z:  (-oblSin*state.Y + oblCos*state.Z) * vector.AUToKm,
		VX: state.VX * vector.AUToKm / secPerDay,
		VY: (oblCos*state.VY + oblSin*state.VZ) * vector.AUToKm / secPerDay,
		VZ: (-oblSin*state.VY + oblCos*state.VZ) * vector.AUToKm / secPerDay,
	}
	return elements.FromStateVector(stateKm, gmSunKm3s2), nil
}
