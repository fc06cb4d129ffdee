package timescale

import (
	"math"
	"testing"
)

func almostEqual(got, want, eps float64) bool {
	return math.Abs(got-want) <= eps
}

func TestDeltaT_KnownValues(t *testing.T) {
	// ΔT at J2000 (ut=0) should be close to the well known ~63.8s figure.
	dt := DeltaT(0)
	if !almostEqual(dt, 63.83, 0.5) {
		t.Errorf("DeltaT(0) = %f, want ~63.8", dt)
	}
}

func TestDeltaT_Monotonic_ish(t *testing.T) {
	// ΔT should vary smoothly across a breakpoint (1986/2005 in "y" terms).
	a := DeltaT(-14 + (1985.5-2000)*365.24217)
	b := DeltaT(-14 + (1986.5-2000)*365.24217)
	if math.Abs(a-b) > 5 {
		t.Errorf("DeltaT discontinuous across 1986 breakpoint: %f vs %f", a, b)
	}
}

func TestDeltaT_FarPastExtrapolation(t *testing.T) {
	// y < -500 uses the closed-form -20+32u^2 extrapolation.
	ut := (-3000.0 - 2000.0) * 365.24217 // y ~ -3000
	dt := DeltaT(ut)
	if dt < 1000 {
		t.Errorf("DeltaT far past should be large, got %f", dt)
	}
}

// TestTimeInversion checks the round-trip invariant from spec.md §8 property 1:
// |TT(UT→TT→UT) − UT| < 1e-14 days, for a broad sample of UT offsets.
func TestTimeInversion(t *testing.T) {
	for _, ut := range []float64{-73000, -10000, -365.25 * 100, 0, 365.25 * 20, 73000} {
		tt := FromUT(ut).TT()
		back := FromTT(tt).UT()
		if !almostEqual(back, ut, 1e-14) {
			t.Errorf("round trip UT=%f: got back %f (diff %e)", ut, back, back-ut)
		}
	}
}

func TestAddDaysIsPure(t *testing.T) {
	t0 := FromUT(100)
	t1 := t0.AddDays(10)
	if t0.UT() != 100 {
		t.Errorf("AddDays mutated receiver: UT=%f", t0.UT())
	}
	if !almostEqual(t1.UT(), 110, 1e-9) {
		t.Errorf("AddDays(10): got %f, want 110", t1.UT())
	}
}

func TestFromCalendar_Validation(t *testing.T) {
	cases := []struct {
		month, day, hour, minute int
		sec                      float64
		wantErr                  bool
	}{
		{1, 1, 0, 0, 0, false},
		{13, 1, 0, 0, 0, true},
		{1, 32, 0, 0, 0, true},
		{1, 1, 24, 0, 0, true},
		{1, 1, 0, 60, 0, true},
		{1, 1, 0, 0, 60, true},
	}
	for _, c := range cases {
		_, err := FromCalendar(2024, c.month, c.day, c.hour, c.minute, c.sec)
		if (err != nil) != c.wantErr {
			t.Errorf("FromCalendar(month=%d day=%d hour=%d min=%d sec=%f): err=%v, wantErr=%v",
				c.month, c.day, c.hour, c.minute, c.sec, err, c.wantErr)
		}
	}
}

func TestParseAndString_RoundTrip(t *testing.T) {
	tm, err := ParseTime("2000-01-01T12:00:00Z")
	if err != nil {
		t.Fatalf("ParseTime: %v", err)
	}
	if !almostEqual(tm.UT(), 0, 1e-9) {
		t.Errorf("2000-01-01T12:00:00Z should be UT=0, got %f", tm.UT())
	}
	s := tm.String()
	if s != "2000-01-01T12:00:00.000Z" {
		t.Errorf("String() = %q, want 2000-01-01T12:00:00.000Z", s)
	}
}

func TestTilt_SetOnce(t *testing.T) {
	tm := FromUT(0)
	calls := 0
	compute := func(tt float64) EquinoxTilt {
		calls++
		return EquinoxTilt{MeanObliquityDeg: 23.4}
	}
	tilt1 := tm.Tilt(compute)
	tilt2 := tm.Tilt(compute)
	if tilt1 != tilt2 {
		t.Errorf("tilt mismatch across calls")
	}
	if calls != 1 {
		t.Errorf("compute called %d times, want 1 (cache should be set-once)", calls)
	}
}
