package almanac

import (
	"testing"

	"github.com/starwake/ephemeris/body"
)

const j2000 = 2451545.0
const daysPerYear = 365.25

func TestSeasons_FourPerYear(t *testing.T) {
	events, err := Seasons(j2000, j2000+daysPerYear)
	if err != nil {
		t.Fatal(err)
	}
	if len(events) < 3 || len(events) > 5 {
		t.Fatalf("expected ~4 season transitions in a year, got %d", len(events))
	}
	for i := 1; i < len(events); i++ {
		gap := events[i].T - events[i-1].T
		if gap < 80 || gap > 100 {
			t.Errorf("season gap %g days outside expected ~91 day range", gap)
		}
	}
}

func TestMoonPhases_TwelveOrThirteenPerYear(t *testing.T) {
	events, err := MoonPhases(j2000, j2000+daysPerYear)
	if err != nil {
		t.Fatal(err)
	}
	// Four phases/lunation, ~12.4 lunations/year.
	if len(events) < 40 || len(events) > 56 {
		t.Fatalf("expected ~48 moon-phase transitions in a year, got %d", len(events))
	}
}

func TestSunriseSunset_AlternatesDaily(t *testing.T) {
	// Mid-latitude observer, ten days.
	events, err := SunriseSunset(40.0, -105.0, j2000, j2000+10)
	if err != nil {
		t.Fatal(err)
	}
	if len(events) < 15 {
		t.Fatalf("expected roughly 2 events/day over 10 days, got %d", len(events))
	}
	for i := 1; i < len(events); i++ {
		if events[i].NewValue == events[i-1].NewValue {
			t.Errorf("expected sunrise/sunset to alternate, got two consecutive NewValue=%d", events[i].NewValue)
		}
	}
}

func TestTwilight_CoversAllLevelsOverADay(t *testing.T) {
	events, err := Twilight(40.0, -105.0, j2000, j2000+2)
	if err != nil {
		t.Fatal(err)
	}
	if len(events) == 0 {
		t.Fatal("expected twilight transitions over two days")
	}
	seen := map[int]bool{}
	for _, e := range events {
		seen[e.NewValue] = true
	}
	if !seen[Daylight] || !seen[Night] {
		t.Errorf("expected to see both Daylight and Night levels, saw %v", seen)
	}
}

func TestRisingsSettings_JupiterAlternates(t *testing.T) {
	risings, err := Risings(body.Jupiter, 40.0, -105.0, j2000, j2000+30)
	if err != nil {
		t.Fatal(err)
	}
	settings, err := Settings(body.Jupiter, 40.0, -105.0, j2000, j2000+30)
	if err != nil {
		t.Fatal(err)
	}
	if len(risings) == 0 || len(settings) == 0 {
		t.Fatalf("expected risings and settings over 30 days, got %d risings, %d settings", len(risings), len(settings))
	}
	for _, e := range risings {
		if e.NewValue != 1 {
			t.Errorf("Risings returned a non-rising event: %+v", e)
		}
	}
	for _, e := range settings {
		if e.NewValue != 0 {
			t.Errorf("Settings returned a non-setting event: %+v", e)
		}
	}
}

func TestTransits_RoughlyOncePerDay(t *testing.T) {
	transits, err := Transits(body.Sun, 40.0, -105.0, j2000, j2000+10)
	if err != nil {
		t.Fatal(err)
	}
	if len(transits) < 8 || len(transits) > 12 {
		t.Fatalf("expected ~10 solar transits over 10 days, got %d", len(transits))
	}
}

func TestSearchPeakMagnitude_VenusFindsBrightPeak(t *testing.T) {
	// Venus's synodic period is ~584 days; two years should show at least
	// one brightness peak, and it should fall in Venus's known magnitude range.
	extrema, err := SearchPeakMagnitude(body.Venus, j2000, j2000+2*daysPerYear)
	if err != nil {
		t.Fatal(err)
	}
	if len(extrema) == 0 {
		t.Fatal("expected at least one Venus brightness peak over two years")
	}
	for _, e := range extrema {
		if e.Value < -5.0 || e.Value > -3.5 {
			t.Errorf("Venus peak magnitude %g outside plausible range", e.Value)
		}
	}
}

func TestOppositionsConjunctions_MarsHasBoth(t *testing.T) {
	// Mars's synodic period is ~780 days; a 3-year window should show at
	// least one opposition and one conjunction.
	events, err := OppositionsConjunctions(body.Mars, j2000, j2000+3*daysPerYear)
	if err != nil {
		t.Fatal(err)
	}
	seen := map[int]bool{}
	for _, e := range events {
		seen[e.NewValue] = true
	}
	if !seen[0] || !seen[1] {
		t.Errorf("expected both conjunction and opposition events over 3 years, saw %v", seen)
	}
}
