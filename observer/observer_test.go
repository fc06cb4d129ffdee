package observer

import (
	"math"
	"testing"

	"github.com/starwake/ephemeris/body"
	"github.com/starwake/ephemeris/coord"
)

const j2000 = 2451545.0

func TestEquator_SubtractsObserverOffset(t *testing.T) {
	bodyGeo := [3]float64{1.0, 0.0, 0.0}
	loc := coord.Location{Lat: 0, Lon: 0, HeightM: 0}
	topo := Equator(bodyGeo, loc, j2000, false)
	// Observer offset is ~4.26e-5 AU (Earth radius); topocentric position
	// should differ from geocentric by roughly that much, not more.
	d := math.Sqrt(math.Pow(topo[0]-bodyGeo[0], 2) + math.Pow(topo[1]-bodyGeo[1], 2) + math.Pow(topo[2]-bodyGeo[2], 2))
	if d > 0.001 {
		t.Errorf("topocentric offset implausibly large: %g AU", d)
	}
}

func TestHorizon_ZenithPointingBodyIsNearNinety(t *testing.T) {
	loc := coord.Location{Lat: 40.0, Lon: -105.0, HeightM: 0}
	gastHours := coord.GAST(j2000) / 15.0
	ox, oy, oz := coord.Terra(loc, gastHours)
	// Place a "body" far along the observer's zenith direction (scaled up).
	scale := 1e6
	posICRF := [3]float64{ox * scale, oy * scale, oz * scale}
	alt, _ := Horizon(posICRF, loc, j2000, coord.Airless)
	if alt < 89.0 {
		t.Errorf("expected near-zenith altitude, got %g", alt)
	}
}

func TestHorizon_RefractionRaisesLowAltitude(t *testing.T) {
	loc := coord.Location{Lat: 40.0, Lon: -105.0, HeightM: 0}
	sunGeo, err := body.GeocentricPosition(body.Sun, j2000)
	if err != nil {
		t.Fatal(err)
	}
	altAirless, _ := Horizon(sunGeo, loc, j2000, coord.Airless)
	altRefracted, _ := Horizon(sunGeo, loc, j2000, coord.Normal)
	if altRefracted <= altAirless {
		t.Errorf("expected refraction to raise the apparent altitude: airless %g, refracted %g", altAirless, altRefracted)
	}
}

func TestHorizon_AzimuthInRange(t *testing.T) {
	loc := coord.Location{Lat: 51.5, Lon: -0.1, HeightM: 0}
	sunGeo, err := body.GeocentricPosition(body.Sun, j2000)
	if err != nil {
		t.Fatal(err)
	}
	_, az := Horizon(sunGeo, loc, j2000, coord.Normal)
	if az < 0 || az >= 360 {
		t.Errorf("azimuth out of [0,360) range: %g", az)
	}
}
