package search

import (
	"errors"
	"math"
	"testing"

	"github.com/starwake/ephemeris/astroerr"
	"github.com/starwake/ephemeris/timescale"
)

func almostEqualDays(got, want, epsDays float64) bool {
	return math.Abs(got-want) <= epsDays
}

func TestSearchAscending_LinearRoot(t *testing.T) {
	root := 5.3
	f := func(tm timescale.Time) float64 { return tm.UT() - root }

	t1 := timescale.FromUT(0)
	t2 := timescale.FromUT(10)
	got, err := SearchAscending(f, t1, t2, 0)
	if err != nil {
		t.Fatalf("SearchAscending: %v", err)
	}
	if !almostEqualDays(got.UT(), root, 1e-6) {
		t.Errorf("root: got %.8f, want %.8f", got.UT(), root)
	}
}

func TestSearchAscending_Sinusoid(t *testing.T) {
	// f(t) = sin(2*pi*(t-2)/10): ascending zero crossing at t=2.
	f := func(tm timescale.Time) float64 {
		return math.Sin(2 * math.Pi * (tm.UT() - 2) / 10)
	}
	t1 := timescale.FromUT(-0.5)
	t2 := timescale.FromUT(4.5)
	got, err := SearchAscending(f, t1, t2, 0)
	if err != nil {
		t.Fatalf("SearchAscending: %v", err)
	}
	if !almostEqualDays(got.UT(), 2, 1e-5) {
		t.Errorf("root: got %.8f, want 2.0", got.UT())
	}
}

func TestSearchAscending_NoRoot(t *testing.T) {
	f := func(tm timescale.Time) float64 { return 1.0 } // always positive, no ascending crossing
	t1 := timescale.FromUT(0)
	t2 := timescale.FromUT(1)
	_, err := SearchAscending(f, t1, t2, 0)
	if !errors.Is(err, astroerr.ErrInternal) {
		t.Errorf("expected ErrInternal for no-root window, got %v", err)
	}
}

func TestSearchAscending_DescendingOnlyFails(t *testing.T) {
	// f goes from positive to negative: not an ascending root.
	f := func(tm timescale.Time) float64 { return 5 - tm.UT() }
	t1 := timescale.FromUT(0)
	t2 := timescale.FromUT(10)
	_, err := SearchAscending(f, t1, t2, 0)
	if !errors.Is(err, astroerr.ErrInternal) {
		t.Errorf("expected ErrInternal for descending-only root, got %v", err)
	}
}
