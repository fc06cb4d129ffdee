package jupitermoons

import (
	"errors"
	"math"
	"testing"

	"github.com/starwake/ephemeris/astroerr"
)

func TestJupiterCentricState_DistancePlausible(t *testing.T) {
	wantAU := map[Moon]float64{
		Io:       421800 / 149597870.7,
		Europa:   671100 / 149597870.7,
		Ganymede: 1070400 / 149597870.7,
		Callisto: 1882700 / 149597870.7,
	}
	for _, m := range All() {
		st, err := JupiterCentricState(m, 2451545.0)
		if err != nil {
			t.Fatalf("%v: %v", m, err)
		}
		dist := math.Sqrt(st.X*st.X + st.Y*st.Y + st.Z*st.Z)
		if math.Abs(dist-wantAU[m])/wantAU[m] > 0.05 {
			t.Errorf("%v: distance %g AU, want ~%g AU", m, dist, wantAU[m])
		}
	}
}

func TestJupiterCentricState_UnknownMoon(t *testing.T) {
	_, err := JupiterCentricState(Moon(99), 2451545.0)
	if !errors.Is(err, astroerr.ErrInvalidBody) {
		t.Errorf("expected ErrInvalidBody, got %v", err)
	}
}

func TestJupiterCentricState_OrbitalPeriodRoughlyMatches(t *testing.T) {
	for _, m := range All() {
		t0 := 2451545.0
		st0, _ := JupiterCentricState(m, t0)
		period := PeriodDays(m)
		st1, _ := JupiterCentricState(m, t0+period)
		d := math.Sqrt(math.Pow(st1.X-st0.X, 2) + math.Pow(st1.Y-st0.Y, 2) + math.Pow(st1.Z-st0.Z, 2))
		dist := math.Sqrt(st0.X*st0.X + st0.Y*st0.Y + st0.Z*st0.Z)
		if d > 0.1*dist {
			t.Errorf("%v: position after one period drifted %g (dist %g), expected near-return", m, d, dist)
		}
	}
}
