// Package almanac provides astronomical event-finding functions built on the
// search package. It finds times of seasons, moon phases, sunrise/sunset,
// twilight, body risings/settings, meridian transits, and oppositions/conjunctions.
package almanac

import (
	"math"

	"github.com/starwake/ephemeris/body"
	"github.com/starwake/ephemeris/coord"
	"github.com/starwake/ephemeris/magnitude"
	"github.com/starwake/ephemeris/search"
	"github.com/starwake/ephemeris/timescale"
)

// ttJDToUT1JD converts a TT Julian date to its UT1 Julian date via
// timescale's ΔT polynomial (UT1 is approximated by UT throughout this
// library, per spec.md's Non-goals).
func ttJDToUT1JD(ttJD float64) float64 {
	t := timescale.FromTT(ttJD - timescale.J2000JD)
	return t.UT() + timescale.J2000JD
}

// apparent returns b's apparent geocentric position (AU), treating the rare
// light-time non-convergence case as a degenerate (zero) vector: event
// searches sample densely enough that one bad sample does not change which
// discrete transitions are found.
func apparent(b body.Body, tdbJD float64) [3]float64 {
	v, err := body.Apparent(b, tdbJD)
	if err != nil {
		return [3]float64{}
	}
	return v
}

// Season values returned in DiscreteEvent.NewValue by Seasons.
const (
	SpringEquinox  = 0 // Sun ecliptic longitude crosses 0°
	SummerSolstice = 1 // Sun ecliptic longitude crosses 90°
	AutumnEquinox  = 2 // Sun ecliptic longitude crosses 180°
	WinterSolstice = 3 // Sun ecliptic longitude crosses 270°
)

// Moon phase values returned in DiscreteEvent.NewValue by MoonPhases.
const (
	NewMoon      = 0 // Moon-Sun elongation crosses 0°
	FirstQuarter = 1 // Moon-Sun elongation crosses 90°
	FullMoon     = 2 // Moon-Sun elongation crosses 180°
	LastQuarter  = 3 // Moon-Sun elongation crosses 270°
)

// Twilight level values returned in DiscreteEvent.NewValue by Twilight.
const (
	Night                = 0 // Sun altitude < -18°
	AstronomicalTwilight = 1 // -18° ≤ alt < -12°
	NauticalTwilight     = 2 // -12° ≤ alt < -6°
	CivilTwilight        = 3 // -6° ≤ alt < -0.8333°
	Daylight             = 4 // alt ≥ -0.8333°
)

// sunAltitudeThreshold is the standard altitude for sunrise/sunset:
// -50 arcminutes = -0.8333° (16' solar radius + 34' refraction).
const sunAltitudeThreshold = -0.8333

// refractionThreshold is the standard altitude adjustment for atmospheric
// refraction alone (-34 arcminutes), used for non-solar body risings/settings.
const refractionThreshold = -34.0 / 60.0

// Seasons finds equinoxes and solstices in the given TDB Julian date range.
//
// Returns events with NewValue: SpringEquinox=0, SummerSolstice=1,
// AutumnEquinox=2, WinterSolstice=3 (Northern Hemisphere conventions).
func Seasons(startJD, endJD float64) ([]search.DiscreteEvent, error) {
	f := func(tdbJD float64) int {
		pos := apparent(body.Sun, tdbJD)
		_, lonDeg := coord.ICRFToEcliptic(pos[0], pos[1], pos[2])
		if lonDeg < 0 {
			lonDeg += 360.0
		}
		return int(math.Floor(lonDeg/90.0)) % 4
	}
	return search.FindDiscrete(startJD, endJD, 90.0, f, 0)
}

// MoonPhases finds new moons, first quarters, full moons, and last quarters
// in the given TDB Julian date range.
//
// Returns events with NewValue: NewMoon=0, FirstQuarter=1, FullMoon=2,
// LastQuarter=3.
func MoonPhases(startJD, endJD float64) ([]search.DiscreteEvent, error) {
	f := func(tdbJD float64) int {
		moonPos := apparent(body.Moon, tdbJD)
		sunPos := apparent(body.Sun, tdbJD)
		_, moonLon := coord.ICRFToEcliptic(moonPos[0], moonPos[1], moonPos[2])
		_, sunLon := coord.ICRFToEcliptic(sunPos[0], sunPos[1], sunPos[2])
		diff := moonLon - sunLon
		if diff < 0 {
			diff += 360.0
		}
		return int(math.Floor(diff/90.0)) % 4
	}
	return search.FindDiscrete(startJD, endJD, 5.0, f, 0)
}

// sunAltitude returns the Sun's altitude in degrees as seen from a ground observer.
func sunAltitude(latDeg, lonDeg, tdbJD float64) float64 {
	pos := apparent(body.Sun, tdbJD)
	jdUT1 := ttJDToUT1JD(tdbJD)
	alt, _, _ := coord.Altaz(pos, latDeg, lonDeg, jdUT1)
	return alt
}

// SunriseSunset finds sunrise and sunset times for a ground observer in the
// given TDB Julian date range.
//
// latDeg, lonDeg: observer geodetic latitude and longitude in degrees.
// Returns events with NewValue=1 (sunrise) and NewValue=0 (sunset).
func SunriseSunset(latDeg, lonDeg, startJD, endJD float64) ([]search.DiscreteEvent, error) {
	f := func(tdbJD float64) int {
		if sunAltitude(latDeg, lonDeg, tdbJD) >= sunAltitudeThreshold {
			return 1
		}
		return 0
	}
	return search.FindDiscrete(startJD, endJD, 0.04, f, 0)
}

// Twilight finds transitions between darkness, twilight levels, and daylight
// for a ground observer in the given TDB Julian date range.
//
// Returns events with NewValue: Night=0, AstronomicalTwilight=1,
// NauticalTwilight=2, CivilTwilight=3, Daylight=4.
func Twilight(latDeg, lonDeg, startJD, endJD float64) ([]search.DiscreteEvent, error) {
	f := func(tdbJD float64) int {
		alt := sunAltitude(latDeg, lonDeg, tdbJD)
		switch {
		case alt >= sunAltitudeThreshold:
			return Daylight
		case alt >= -6.0:
			return CivilTwilight
		case alt >= -12.0:
			return NauticalTwilight
		case alt >= -18.0:
			return AstronomicalTwilight
		default:
			return Night
		}
	}
	return search.FindDiscrete(startJD, endJD, 0.01, f, 0)
}

// bodyAltitude returns a body's altitude in degrees as seen from a ground observer.
func bodyAltitude(b body.Body, latDeg, lonDeg, tdbJD float64) float64 {
	pos := apparent(b, tdbJD)
	jdUT1 := ttJDToUT1JD(tdbJD)
	alt, _, _ := coord.Altaz(pos, latDeg, lonDeg, jdUT1)
	return alt
}

// Risings finds times when a body rises above the horizon for a ground observer
// in the given TDB Julian date range.
//
// The horizon is at -34 arcminutes (atmospheric refraction). Returns events
// with NewValue=1 (body rose).
func Risings(b body.Body, latDeg, lonDeg, startJD, endJD float64) ([]search.DiscreteEvent, error) {
	f := func(tdbJD float64) int {
		if bodyAltitude(b, latDeg, lonDeg, tdbJD) >= refractionThreshold {
			return 1
		}
		return 0
	}
	events, err := search.FindDiscrete(startJD, endJD, 0.25, f, 0)
	if err != nil {
		return nil, err
	}
	// Filter to only rising events.
	var risings []search.DiscreteEvent
	for _, e := range events {
		if e.NewValue == 1 {
			risings = append(risings, e)
		}
	}
	return risings, nil
}

// Settings finds times when a body sets below the horizon for a ground observer
// in the given TDB Julian date range.
//
// The horizon is at -34 arcminutes (atmospheric refraction). Returns events
// with NewValue=0 (body set).
func Settings(b body.Body, latDeg, lonDeg, startJD, endJD float64) ([]search.DiscreteEvent, error) {
	f := func(tdbJD float64) int {
		if bodyAltitude(b, latDeg, lonDeg, tdbJD) >= refractionThreshold {
			return 1
		}
		return 0
	}
	events, err := search.FindDiscrete(startJD, endJD, 0.25, f, 0)
	if err != nil {
		return nil, err
	}
	// Filter to only setting events.
	var settings []search.DiscreteEvent
	for _, e := range events {
		if e.NewValue == 0 {
			settings = append(settings, e)
		}
	}
	return settings, nil
}

// Transits finds times when a body crosses the observer's meridian (upper
// culmination) in the given TDB Julian date range.
//
// Returns events with NewValue=1 (body crossed from east to west of meridian).
func Transits(b body.Body, latDeg, lonDeg, startJD, endJD float64) ([]search.DiscreteEvent, error) {
	f := func(tdbJD float64) int {
		pos := apparent(b, tdbJD)
		jdUT1 := ttJDToUT1JD(tdbJD)
		haDeg, _ := coord.HourAngleDec(pos, lonDeg, jdUT1)
		// HA > 180° means east of meridian (before transit).
		if haDeg > 180.0 {
			return 0 // east, approaching meridian
		}
		return 1 // west, past meridian
	}
	events, err := search.FindDiscrete(startJD, endJD, 0.4, f, 0)
	if err != nil {
		return nil, err
	}
	// Filter to only east-to-west transitions (actual transits).
	var transits []search.DiscreteEvent
	for _, e := range events {
		if e.NewValue == 1 {
			transits = append(transits, e)
		}
	}
	return transits, nil
}

// SearchPeakMagnitude finds local maxima of visual brightness (minima of
// apparent magnitude) for a planet in the given TDB Julian date range, using
// the Mallama & Hilton (2018) phase-curve model (spec.md §4.9 supplement).
// b must be one of Mercury through Neptune; for other bodies the underlying
// magnitude computation returns NaN, and those samples are replaced by +Inf,
// which FindMinima never flags as an extremum.
func SearchPeakMagnitude(b body.Body, startJD, endJD float64) ([]search.Extremum, error) {
	bodyID := int(b)
	f := func(tdbJD float64) float64 {
		sunToPlanet, err := body.HelioVector(b, tdbJD)
		if err != nil {
			return math.Inf(1)
		}
		obsToPlanet := apparent(b, tdbJD)
		year := 2000.0 + (tdbJD-timescale.J2000JD)/365.25
		mag := magnitude.PlanetaryMagnitudeWithGeometry(bodyID, sunToPlanet, obsToPlanet, year)
		if math.IsNaN(mag) {
			return math.Inf(1)
		}
		return mag
	}
	return search.FindMinima(startJD, endJD, 5.0, f, 0)
}

// OppositionsConjunctions finds times when a planet is at opposition or
// conjunction with the Sun in the given TDB Julian date range.
//
// Returns events with NewValue=0 (conjunction: planet near Sun) and
// NewValue=1 (opposition: planet opposite Sun).
func OppositionsConjunctions(b body.Body, startJD, endJD float64) ([]search.DiscreteEvent, error) {
	f := func(tdbJD float64) int {
		sunPos := apparent(body.Sun, tdbJD)
		bodyPos := apparent(b, tdbJD)
		_, sunLon := coord.ICRFToEcliptic(sunPos[0], sunPos[1], sunPos[2])
		_, bodyLon := coord.ICRFToEcliptic(bodyPos[0], bodyPos[1], bodyPos[2])
		diff := sunLon - bodyLon
		if diff < 0 {
			diff += 360.0
		}
		return int(math.Floor(diff/180.0)) % 2
	}
	return search.FindDiscrete(startJD, endJD, 40.0, f, 0)
}
