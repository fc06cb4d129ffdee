package moon

import (
	"math"
	"testing"
)

func TestMeanNodeLongitude_J2000(t *testing.T) {
	asc, desc := MeanNodeLongitude(2451545.0)
	if math.Abs(asc-125.04452) > 0.001 {
		t.Errorf("ascending node at J2000: got %f want ~125.04452", asc)
	}
	wantDesc := math.Mod(125.04452+180.0, 360.0)
	if math.Abs(desc-wantDesc) > 0.001 {
		t.Errorf("descending node at J2000: got %f want %f", desc, wantDesc)
	}
}

func TestMeanNodeLongitude_Opposite(t *testing.T) {
	for _, jd := range []float64{2451545.0, 2455000.0, 2460000.0} {
		asc, desc := MeanNodeLongitude(jd)
		diff := math.Abs(desc - math.Mod(asc+180.0, 360.0))
		if diff > 1e-9 {
			t.Errorf("jd=%.1f: desc-asc != 180deg, diff=%g", jd, diff)
		}
	}
}

func TestEclipticLonLatDistance_Range(t *testing.T) {
	for _, jd := range []float64{2451545.0, 2455000.0, 2460500.0} {
		lon, lat, dist := EclipticLonLatDistance(jd)
		if lon < 0 || lon >= 360 {
			t.Errorf("jd=%.1f: lon out of [0,360): %f", jd, lon)
		}
		if math.Abs(lat) > 10 {
			t.Errorf("jd=%.1f: lat implausible: %f", jd, lat)
		}
		if dist < 0.0020 || dist > 0.0030 {
			t.Errorf("jd=%.1f: distance out of plausible AU range: %f", jd, dist)
		}
	}
}

func TestGeocentricPosition_DistanceMatches(t *testing.T) {
	jd := 2451545.0
	_, _, wantDist := EclipticLonLatDistance(jd)
	pos := GeocentricPosition(jd)
	gotDist := math.Sqrt(pos.X*pos.X + pos.Y*pos.Y + pos.Z*pos.Z)
	if math.Abs(gotDist-wantDist) > 1e-9 {
		t.Errorf("GeocentricPosition distance mismatch: got %g want %g", gotDist, wantDist)
	}
}

func TestGeocentricState_VelocityNonzero(t *testing.T) {
	st := GeocentricState(2451545.0)
	speed := math.Sqrt(st.VX*st.VX + st.VY*st.VY + st.VZ*st.VZ)
	if speed < 1e-4 || speed > 1.0 {
		t.Errorf("moon orbital speed out of plausible AU/day range: %g", speed)
	}
}
