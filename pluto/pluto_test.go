package pluto

import (
	"math"
	"testing"
)

func TestHelioState_DistancePlausible(t *testing.T) {
	st := HelioState(2451545.0)
	dist := math.Sqrt(st.X*st.X + st.Y*st.Y + st.Z*st.Z)
	if dist < 29 || dist > 50 {
		t.Errorf("Pluto heliocentric distance out of plausible AU range: %g", dist)
	}
}

func TestHelioState_SegmentCacheReused(t *testing.T) {
	segCache = map[int]*segment{}
	jd := 2451545.0
	idx := segmentIndex(jd)
	s1 := getSegment(idx)
	s2 := getSegment(idx)
	if s1 != s2 {
		t.Errorf("getSegment returned different pointers for the same index, cache not reused")
	}
}

func TestHelioState_ContinuousAcrossSegmentBoundary(t *testing.T) {
	boundary := segmentSpanDays
	before := HelioState(boundary - 0.01)
	after := HelioState(boundary + 0.01)
	d := math.Sqrt(math.Pow(after.X-before.X, 2) + math.Pow(after.Y-before.Y, 2) + math.Pow(after.Z-before.Z, 2))
	if d > 1e-4 {
		t.Errorf("discontinuity across segment boundary: %g AU", d)
	}
}

func TestHelioState_VelocityNonzero(t *testing.T) {
	st := HelioState(2451545.0)
	speed := math.Sqrt(st.VX*st.VX + st.VY*st.VY + st.VZ*st.VZ)
	if speed <= 0 || speed > 0.01 {
		t.Errorf("Pluto orbital speed out of plausible AU/day range: %g", speed)
	}
}
