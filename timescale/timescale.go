// Package timescale provides the time representation used throughout the
// ephemeris engine: a (UT, TT) pair of real-valued days since the J2000 epoch
// (2000-01-01 12:00 UTC), the Espenak-Meeus piecewise ΔT polynomial that
// relates them, and ISO-8601 calendar parsing/formatting.
//
// Grounded on goeph's timescale package (tests only survive in the pack;
// this file supplies the implementation matching spec.md §4.1) and on
// soniakeys/meeus's deltat/julian packages for the breakpoint structure of
// the ΔT polynomial.
package timescale

import (
	"fmt"
	"math"
	"sync/atomic"
	"time"

	"github.com/starwake/ephemeris/astroerr"
)

const (
	// J2000JD is the Julian date of the J2000.0 epoch (2000-01-01 12:00 TT).
	J2000JD = 2451545.0

	secPerDay = 86400.0

	deg2rad = math.Pi / 180.0
)

// EquinoxTilt caches the nutation/obliquity quantities derived purely from TT.
// A Time's cache is set exactly once (atomic publish): every reader sees
// either nil or a fully populated record, never a partial one.
type EquinoxTilt struct {
	MeanObliquityDeg float64 // epsilon0, degrees
	TrueObliquityDeg float64 // epsilon0 + deps, degrees
	NutationLonDeg   float64 // dpsi, degrees
	NutationOblDeg   float64 // deps, degrees
	EquationOfEquinoxSec float64 // equation of the equinoxes, seconds of time
}

// Time is a moment represented as a (UT, TT) pair of days since J2000.
// Two Time values compare by TT. The zero Time is J2000.0 TT exactly.
type Time struct {
	ut float64
	tt float64

	tilt atomic.Pointer[EquinoxTilt]
}

// FromUT constructs a Time from a UT day-offset from J2000, deriving TT.
func FromUT(ut float64) Time {
	return Time{ut: ut, tt: ut + DeltaT(ut)/secPerDay}
}

// FromTT constructs a Time from a TT day-offset from J2000, recovering UT by
// fixed-point iteration: ut ← tt − ΔT(ut)/86400, until ΔT stops changing by
// more than 1e-12 seconds (converges in at most 3 iterations per spec.md §4.1).
func FromTT(tt float64) Time {
	ut := tt
	prevDT := math.Inf(1)
	for i := 0; i < 10; i++ {
		dt := DeltaT(ut)
		if math.Abs(dt-prevDT) < 1e-12 {
			break
		}
		prevDT = dt
		ut = tt - dt/secPerDay
	}
	return Time{ut: ut, tt: tt}
}

// UT returns the UT day-offset from J2000.
func (t Time) UT() float64 { return t.ut }

// TT returns the TT day-offset from J2000.
func (t Time) TT() float64 { return t.tt }

// AddDays returns a new Time d days later. Pure: does not mutate t.
func (t Time) AddDays(d float64) Time {
	return FromUT(t.ut + d)
}

// Before reports whether t is strictly earlier than other, comparing by TT.
func (t Time) Before(other Time) bool { return t.tt < other.tt }

// Sub returns t - other in days, comparing by TT.
func (t Time) Sub(other Time) float64 { return t.tt - other.tt }

// Tilt returns the cached equinox-tilt record for this Time, computing and
// publishing it on first access. Safe for concurrent callers: the cache is a
// pure function of TT, so a benign race just computes it twice.
func (t *Time) Tilt(compute func(ttDays float64) EquinoxTilt) EquinoxTilt {
	if p := t.tilt.Load(); p != nil {
		return *p
	}
	v := compute(t.tt)
	t.tilt.CompareAndSwap(nil, &v)
	return *t.tilt.Load()
}

// --- ΔT (C1) ---

// DeltaT returns TT − UT in seconds for the given UT day-offset from J2000,
// using the Espenak-Meeus piecewise polynomial. y is the decimal year
// corresponding to ut.
func DeltaT(ut float64) float64 {
	y := 2000.0 + (ut-14.0)/365.24217

	switch {
	case y < -500:
		u := (y - 1820) / 100
		return -20 + 32*u*u
	case y < 500:
		u := y / 100
		return polyDT(u, 10583.6, -1014.41, 33.78311, -5.952053, -0.1798452, 0.022174192, 0.0090316521)
	case y < 1600:
		u := (y - 1000) / 100
		return polyDT(u, 1574.2, -556.01, 71.23472, 0.319781, -0.8503463, -0.005050998, 0.0083572073)
	case y < 1700:
		t := y - 1600
		return polyDT(t, 120.0, -0.9808, -0.01532, 1.0/7129.0)
	case y < 1800:
		t := y - 1700
		return polyDT(t, 8.83, 0.1603, -0.0059285, 0.00013336, -1.0/1174000.0)
	case y < 1860:
		t := y - 1800
		return polyDT(t, 13.72, -0.332447, 0.0068612, 0.0041116, -0.00037436, 0.0000121272, -0.0000001699, 0.000000000875)
	case y < 1900:
		t := y - 1860
		return polyDT(t, 7.62, 0.5737, -0.251754, 0.01680668, -0.0004473624, 1.0/233174.0)
	case y < 1920:
		t := y - 1900
		return polyDT(t, -2.79, 1.494119, -0.0598939, 0.0061966, -0.000197)
	case y < 1941:
		t := y - 1920
		return polyDT(t, 21.20, 0.84493, -0.076100, 0.0020936)
	case y < 1961:
		t := y - 1950
		return polyDT(t, 29.07, 0.407, -1.0/233.0, 1.0/2547.0)
	case y < 1986:
		t := y - 1975
		return polyDT(t, 45.45, 1.067, -1.0/260.0, -1.0/718.0)
	case y < 2005:
		t := y - 2000
		return polyDT(t, 63.86, 0.3345, -0.060374, 0.0017275, 0.000651814, 0.00002373599)
	case y < 2050:
		t := y - 2000
		return polyDT(t, 62.92, 0.32217, 0.005589)
	case y < 2150:
		u := (y - 1820) / 100
		return -20 + 32*u*u - 0.5628*(2150-y)
	default:
		u := (y - 1820) / 100
		return -20 + 32*u*u
	}
}

func polyDT(x float64, coeffs ...float64) float64 {
	var sum, p float64 = 0, 1
	for _, c := range coeffs {
		sum += c * p
		p *= x
	}
	return sum
}

// --- Calendar construction & parsing ---

// FromCalendar constructs a Time from UTC calendar components. ssFrac may
// include a fractional part, preserved to microsecond precision.
func FromCalendar(year, month, day, hour, minute int, ssFrac float64) (Time, error) {
	if month < 1 || month > 12 {
		return Time{}, fmt.Errorf("%w: month %d out of range", astroerr.ErrDateTimeFormat, month)
	}
	if day < 1 || day > 31 {
		return Time{}, fmt.Errorf("%w: day %d out of range", astroerr.ErrDateTimeFormat, day)
	}
	if hour < 0 || hour > 23 {
		return Time{}, fmt.Errorf("%w: hour %d out of range", astroerr.ErrDateTimeFormat, hour)
	}
	if minute < 0 || minute > 59 {
		return Time{}, fmt.Errorf("%w: minute %d out of range", astroerr.ErrDateTimeFormat, minute)
	}
	if ssFrac < 0 || ssFrac >= 60 {
		return Time{}, fmt.Errorf("%w: seconds %f out of range", astroerr.ErrDateTimeFormat, ssFrac)
	}

	wholeSec := int(ssFrac)
	micros := int(math.Round((ssFrac - float64(wholeSec)) * 1e6))

	utcTime := time.Date(year, time.Month(month), day, hour, minute, wholeSec, micros*1000, time.UTC)
	jd := toJulianDay(utcTime)
	return FromUT(jd - J2000JD), nil
}

// ParseTime parses the subset YYYY-MM-DD[Thh:mm[:ss[.fff]]Z].
func ParseTime(s string) (Time, error) {
	layouts := []string{
		"2006-01-02T15:04:05.999999999Z",
		"2006-01-02T15:04:05Z",
		"2006-01-02T15:04Z",
		"2006-01-02",
	}
	var lastErr error
	for _, layout := range layouts {
		if parsed, err := time.Parse(layout, s); err == nil {
			jd := toJulianDay(parsed.UTC())
			return FromUT(jd - J2000JD), nil
		} else {
			lastErr = err
		}
	}
	return Time{}, fmt.Errorf("%w: %q (%v)", astroerr.ErrDateTimeFormat, s, lastErr)
}

// String serializes t (by UT) as YYYY-MM-DDThh:mm:ss.fffZ (millisecond precision).
func (t Time) String() string {
	jd := t.ut + J2000JD
	tm := fromJulianDay(jd)
	return tm.Format("2006-01-02T15:04:05.000Z")
}

func toJulianDay(t time.Time) float64 {
	unixSec := float64(t.Unix()) + float64(t.Nanosecond())/1e9
	return 2440587.5 + unixSec/secPerDay
}

func fromJulianDay(jd float64) time.Time {
	unixSec := (jd - 2440587.5) * secPerDay
	sec := math.Floor(unixSec)
	nsec := (unixSec - sec) * 1e9
	return time.Unix(int64(sec), int64(math.Round(nsec))).UTC()
}
