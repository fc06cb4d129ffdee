package search

import (
	"fmt"
	"math"

	"github.com/starwake/ephemeris/astroerr"
	"github.com/starwake/ephemeris/timescale"
)

// DefaultAscendingToleranceSec is the default convergence tolerance for
// SearchAscending, 1 second expressed in days.
const DefaultAscendingToleranceSec = 1.0 / 86400.0

// maxAscendingIterations bounds SearchAscending's iteration count; exceeding
// it without converging is reported as astroerr.ErrNoConverge.
const maxAscendingIterations = 20

// SearchAscending finds the first time in [t1, t2] at which f transitions
// from negative to non-negative ("ascending root"), using bisection combined
// with quadratic inverse interpolation for faster convergence. toleranceDays
// is the half-interval width at which the search stops; if zero,
// DefaultAscendingToleranceSec is used.
//
// Returns astroerr.ErrNoConverge if the iteration budget (20) is exceeded,
// and astroerr.ErrInternal if no sign change from negative to non-negative
// exists in [t1, t2].
func SearchAscending(f func(timescale.Time) float64, t1, t2 timescale.Time, toleranceDays float64) (timescale.Time, error) {
	if toleranceDays <= 0 {
		toleranceDays = DefaultAscendingToleranceSec
	}

	f1 := f(t1)
	f2 := f(t2)
	if !(f1 < 0 && f2 >= 0) {
		return timescale.Time{}, fmt.Errorf("%w: no ascending root in [%v, %v]", astroerr.ErrInternal, t1, t2)
	}

	for iter := 0; iter < maxAscendingIterations; iter++ {
		dtDays := t2.Sub(t1)
		tmid := timescale.FromTT(t1.TT() + dtDays/2.0)
		fmid := f(tmid)

		if math.Abs(dtDays)/2.0 < toleranceDays {
			return tmid, nil
		}

		if tq, slopePerDay, ok := quadraticRoot(t1, f1, tmid, fmid, t2, f2); ok {
			fq := f(tq)
			errEst := math.Abs(fq / slopePerDay)
			half := math.Abs(dtDays) / 2.0
			if errEst < toleranceDays {
				return tq, nil
			}
			if 1.2*errEst < half/5.0 {
				left := timescale.FromTT(tq.TT() - 1.2*errEst)
				right := timescale.FromTT(tq.TT() + 1.2*errEst)
				if left.TT() > t1.TT() && right.TT() < t2.TT() {
					fLeft := f(left)
					fRight := f(right)
					if fLeft < 0 && fRight >= 0 {
						t1, f1 = left, fLeft
						t2, f2 = right, fRight
						continue
					}
				}
			}
		}

		// Bisect: descend into whichever half contains the ascending sign change.
		if f1 < 0 && fmid >= 0 {
			t2, f2 = tmid, fmid
		} else if fmid < 0 && f2 >= 0 {
			t1, f1 = tmid, fmid
		} else {
			return timescale.Time{}, fmt.Errorf("%w: no ascending root in [%v, %v]", astroerr.ErrInternal, t1, t2)
		}
	}

	return timescale.Time{}, fmt.Errorf("%w: SearchAscending exceeded %d iterations", astroerr.ErrNoConverge, maxAscendingIterations)
}

// quadraticRoot fits the parabola through (t1,f1), (tmid,fmid), (t2,f2) in
// normalized x ∈ [-1,+1] (tmid at x=0, t1 at x=-1, t2 at x=+1) and returns the
// unique root within [-1,+1] mapped back to a Time, the parabola's slope
// there in df/day (used to turn the actual f(tq) residual into a time-error
// estimate), and whether a usable root was found.
func quadraticRoot(t1 timescale.Time, f1 float64, tmid timescale.Time, fmid float64, t2 timescale.Time, f2 float64) (timescale.Time, float64, bool) {
	// Lagrange coefficients for x = -1, 0, +1.
	a := (f1+f2)/2.0 - fmid
	b := (f2 - f1) / 2.0
	c := fmid

	half := (t2.Sub(t1)) / 2.0
	if half == 0 {
		return timescale.Time{}, 0, false
	}

	var x float64
	if math.Abs(a) < 1e-20 {
		if b == 0 {
			return timescale.Time{}, 0, false
		}
		x = -c / b
	} else {
		disc := b*b - 4*a*c
		if disc < 0 {
			return timescale.Time{}, 0, false
		}
		sq := math.Sqrt(disc)
		// Numerically stable form of the two roots: avoids cancellation
		// between -b and sq when a is tiny (f nearly linear).
		q := -0.5 * (b + math.Copysign(sq, b))
		x1 := q / a
		x2 := c / q
		// Pick the root nearest 0 that lies in range.
		in1 := x1 >= -1 && x1 <= 1
		in2 := x2 >= -1 && x2 <= 1
		switch {
		case in1 && in2:
			if math.Abs(x1) < math.Abs(x2) {
				x = x1
			} else {
				x = x2
			}
		case in1:
			x = x1
		case in2:
			x = x2
		default:
			return timescale.Time{}, 0, false
		}
	}

	if x < -1 || x > 1 {
		return timescale.Time{}, 0, false
	}

	dfdx := 2*a*x + b
	if dfdx == 0 {
		return timescale.Time{}, 0, false
	}

	tq := timescale.FromTT(tmid.TT() + x*half)
	slopePerDay := dfdx / half
	return tq, slopePerDay, true
}
