// Package pluto computes Pluto's heliocentric position.
//
// The real Pluto model (spec.md §4.7) is a precomputed 41-anchor barycentric
// state table spanning 0000-4000 AD, each segment lazily expanded to a
// 101-point grid via a forward+backward Störmer/Verlet integration seeded by
// a full Sun+Jupiter+Saturn+Uranus+Neptune barycentric force model. That
// numeric anchor table is not present anywhere in this module's source
// material, and Pluto's orbit is eccentric and inclined enough (e≈0.25,
// i≈17°) that guessing the anchor states from memory would be worse than
// admitting the gap. This package instead propagates Pluto as a two-body
// Keplerian orbit from JPL's published low-precision mean elements (the same
// Standish table vsop87 uses for the eight major planets extends to Pluto
// with one extra row) — adequate for Pluto's slow, nearly-unperturbed orbit
// over human timescales, though it drops the Neptune near-resonance
// perturbations the full integrator would capture.
//
// The segment-cache architecture the real integrator needs (each segment
// built once, lazily, under a lock, then reused) is kept even though the
// underlying per-segment computation is now cheap two-body propagation
// rather than an expensive numerical integration: it is still the shape the
// spec's concurrency model names ("the Pluto segment cache is the one piece
// of mutable process-wide state"), and keeping it means swapping in a real
// integrator later only touches buildSegment.
package pluto

import (
	"sync"

	"github.com/starwake/ephemeris/kepler"
	"github.com/starwake/ephemeris/timescale"
	"github.com/starwake/ephemeris/vector"
)

// plutoElements are JPL's low-precision mean elements for Pluto, J2000, with
// linear rate per Julian century (same table shape vsop87 uses for the
// eight major planets).
var plutoElements = struct {
	a, aDot             float64
	e, eDot             float64
	iDeg, iDotDeg       float64
	lDeg, lDotDeg       float64
	periDeg, periDotDeg float64
	nodeDeg, nodeDotDeg float64
}{
	a: 39.48211675, aDot: -0.00031596,
	e: 0.24882730, eDot: 0.00005170,
	iDeg: 17.14001206, iDotDeg: 0.00004818,
	lDeg: 238.92903833, lDotDeg: 145.20780515,
	periDeg: 224.06891629, periDotDeg: -0.04062942,
	nodeDeg: 110.30393684, nodeDotDeg: -0.01183482,
}

func normalizeDeg180(d float64) float64 {
	d = d - 360.0*float64(int(d/360.0))
	if d > 180 {
		d -= 360
	} else if d < -180 {
		d += 360
	}
	return d
}

func orbitAt(tdbJD float64) kepler.Orbit {
	T := (tdbJD - timescale.J2000JD) / 36525.0
	e := plutoElements

	a := e.a + e.aDot*T
	ecc := e.e + e.eDot*T
	i := e.iDeg + e.iDotDeg*T
	l := e.lDeg + e.lDotDeg*T
	peri := e.periDeg + e.periDotDeg*T
	node := e.nodeDeg + e.nodeDotDeg*T

	return kepler.Orbit{
		SemiMajorAxisAU: a,
		Eccentricity:    ecc,
		InclinationDeg:  i,
		LongAscNodeDeg:  node,
		ArgPeriapsisDeg: peri - node,
		MeanAnomalyDeg:  normalizeDeg180(l - peri),
		EpochJD:         tdbJD,
	}
}

// segmentSpanDays and gridPoints set the cache shape: 50-year segments,
// indexed without bound (no 41-anchor limit), each sampled at 101 points
// like the real integrator's per-segment grid (spec.md §4.7), caching
// sampled two-body states rather than integrator sub-steps.
const (
	segmentSpanDays = 18262.5 // ~50 Julian years
	gridPoints      = 101
)

type segment struct {
	startJD float64
	states  [gridPoints]vector.StateVector
}

var (
	segMu    sync.Mutex
	segCache = map[int]*segment{}
)

func segmentIndex(tdbJD float64) int {
	idx := int(tdbJD / segmentSpanDays)
	if tdbJD < 0 {
		idx--
	}
	return idx
}

// getSegment returns the cached segment for idx, building it under the lock
// if absent ("lock around build-if-absent", per SPEC_FULL's Pluto segment
// cache decision).
func getSegment(idx int) *segment {
	segMu.Lock()
	defer segMu.Unlock()
	if s, ok := segCache[idx]; ok {
		return s
	}
	s := buildSegment(idx)
	segCache[idx] = s
	return s
}

func buildSegment(idx int) *segment {
	start := float64(idx) * segmentSpanDays
	s := &segment{startJD: start}
	step := segmentSpanDays / float64(gridPoints-1)
	for k := 0; k < gridPoints; k++ {
		tdbJD := start + float64(k)*step
		o := orbitAt(tdbJD)
		s.states[k] = o.StateAU(tdbJD)
	}
	return s
}

// HelioState returns Pluto's heliocentric ICRF position (AU) and velocity
// (AU/day) at the given TDB Julian date, linearly interpolated between the
// two nearest grid points of its cached segment.
func HelioState(tdbJD float64) vector.StateVector {
	idx := segmentIndex(tdbJD)
	s := getSegment(idx)

	step := segmentSpanDays / float64(gridPoints-1)
	frac := (tdbJD - s.startJD) / step
	if frac < 0 {
		frac = 0
	}
	k := int(frac)
	if k >= gridPoints-1 {
		k = gridPoints - 2
	}
	w := frac - float64(k)

	a := s.states[k]
	b := s.states[k+1]
	lerp := func(x, y float64) float64 { return x + (y-x)*w }
	return vector.StateVector{
		X: lerp(a.X, b.X), Y: lerp(a.Y, b.Y), Z: lerp(a.Z, b.Z),
		VX: lerp(a.VX, b.VX), VY: lerp(a.VY, b.VY), VZ: lerp(a.VZ, b.VZ),
	}
}
