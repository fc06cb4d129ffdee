package eclipse

import (
	"math"
	"testing"
)

// This package's Moon longitude/latitude model (see the moon package) is a
// truncated periodic series accurate to roughly a degree, not arcseconds —
// these tests check that eclipse search produces internally consistent,
// plausible events rather than matching specific historical eclipse dates
// to high precision.

func TestFindLunarEclipses_FindsSomeOverTenYears(t *testing.T) {
	startJD := 2451545.0 // J2000
	endJD := startJD + 10*365.25

	eclipses, err := FindLunarEclipses(startJD, endJD)
	if err != nil {
		t.Fatal(err)
	}
	// Roughly 2-3 lunar eclipses per year occur somewhere on Earth; over 10
	// years expect at least a handful of candidate full-moon passes near the
	// shadow axis.
	if len(eclipses) == 0 {
		t.Fatal("expected at least one lunar eclipse candidate over 10 years")
	}
	for _, e := range eclipses {
		if e.T < startJD || e.T > endJD {
			t.Errorf("eclipse time %g outside search window [%g, %g]", e.T, startJD, endJD)
		}
		if e.Kind != Penumbral && e.Kind != Partial && e.Kind != Total {
			t.Errorf("unexpected eclipse kind %d", e.Kind)
		}
		if e.ClosestApproachKm < 0 {
			t.Errorf("closest approach should not be negative: %g", e.ClosestApproachKm)
		}
		if e.UmbralRadiusKm <= 0 || e.PenumbralRadiusKm <= 0 {
			t.Errorf("shadow radii should be positive: umbra=%g penumbra=%g", e.UmbralRadiusKm, e.PenumbralRadiusKm)
		}
		if e.PenumbralRadiusKm <= e.UmbralRadiusKm {
			t.Errorf("penumbra should be larger than umbra: umbra=%g penumbra=%g", e.UmbralRadiusKm, e.PenumbralRadiusKm)
		}
	}
}

func TestFindLunarEclipses_SortedByTime(t *testing.T) {
	startJD := 2451545.0
	endJD := startJD + 5*365.25

	eclipses, err := FindLunarEclipses(startJD, endJD)
	if err != nil {
		t.Fatal(err)
	}
	for i := 1; i < len(eclipses); i++ {
		if eclipses[i].T < eclipses[i-1].T {
			t.Errorf("eclipses not sorted by time: %g before %g", eclipses[i-1].T, eclipses[i].T)
		}
	}
}

func TestFindLunarEclipses_TotalImpliesHighUmbralMagnitude(t *testing.T) {
	startJD := 2451545.0
	endJD := startJD + 20*365.25

	eclipses, err := FindLunarEclipses(startJD, endJD)
	if err != nil {
		t.Fatal(err)
	}
	for _, e := range eclipses {
		switch e.Kind {
		case Total:
			if e.UmbralMag < 1.0 {
				t.Errorf("Total eclipse should have umbral magnitude >= 1.0, got %g", e.UmbralMag)
			}
		case Partial:
			if e.UmbralMag <= 0 || e.UmbralMag >= 1.0 {
				t.Errorf("Partial eclipse should have 0 < umbral magnitude < 1.0, got %g", e.UmbralMag)
			}
		case Penumbral:
			if e.UmbralMag > 0 {
				t.Errorf("Penumbral eclipse should have umbral magnitude <= 0, got %g", e.UmbralMag)
			}
			if e.PenumbralMag <= 0 {
				t.Errorf("Penumbral eclipse should have penumbral magnitude > 0, got %g", e.PenumbralMag)
			}
		}
	}
}

func TestEclipticElongation_Range(t *testing.T) {
	moonPos := [3]float64{1, 0, 0}
	sunPos := [3]float64{0, 1, 0}
	e := eclipticElongation(moonPos, sunPos)
	if e < 0 || e >= 360 {
		t.Errorf("elongation out of [0, 360) range: %g", e)
	}
}

func TestEclipticLon_KnownAxis(t *testing.T) {
	const obliquitySin = 0.3977771559319137062
	const obliquityCos = 0.9174820620691818140
	lon := eclipticLon([3]float64{1, 0, 0}, obliquitySin, obliquityCos)
	if math.Abs(lon) > 1e-6 {
		t.Errorf("expected 0 longitude along +X axis, got %g", lon)
	}
}
