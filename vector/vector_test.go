package vector

import (
	"errors"
	"math"
	"testing"

	"github.com/starwake/ephemeris/astroerr"
)

func almostEqual(got, want, eps float64) bool {
	return math.Abs(got-want) <= eps
}

func TestVectorArithmetic(t *testing.T) {
	a := Vector{1, 2, 3}
	b := Vector{4, 5, 6}

	sum := a.Add(b)
	if sum != (Vector{5, 7, 9}) {
		t.Errorf("Add: got %v, want {5 7 9}", sum)
	}
	diff := b.Sub(a)
	if diff != (Vector{3, 3, 3}) {
		t.Errorf("Sub: got %v, want {3 3 3}", diff)
	}
	if got := a.Dot(b); got != 32 {
		t.Errorf("Dot: got %f, want 32", got)
	}
	cross := a.Cross(b)
	if cross != (Vector{-3, 6, -3}) {
		t.Errorf("Cross: got %v, want {-3 6 -3}", cross)
	}
}

func TestVectorLengthAndNormalize(t *testing.T) {
	v := Vector{3, 4, 0}
	if !almostEqual(v.Length(), 5, 1e-12) {
		t.Errorf("Length: got %f, want 5", v.Length())
	}
	n, err := v.Normalize()
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	if !almostEqual(n.Length(), 1, 1e-12) {
		t.Errorf("Normalize: result length %f, want 1", n.Length())
	}

	_, err = Vector{0, 0, 0}.Normalize()
	if !errors.Is(err, astroerr.ErrBadVector) {
		t.Errorf("Normalize(zero): err=%v, want ErrBadVector", err)
	}
}

func TestAngleBetween(t *testing.T) {
	a := Vector{1, 0, 0}
	b := Vector{0, 1, 0}
	ang, err := AngleBetween(a, b)
	if err != nil {
		t.Fatalf("AngleBetween: %v", err)
	}
	if !almostEqual(ang, math.Pi/2, 1e-12) {
		t.Errorf("AngleBetween orthogonal: got %f, want pi/2", ang)
	}

	_, err = AngleBetween(a, Vector{})
	if !errors.Is(err, astroerr.ErrBadVector) {
		t.Errorf("AngleBetween(zero): err=%v, want ErrBadVector", err)
	}
}

func TestPivotRotatesRightHanded(t *testing.T) {
	r, err := Pivot(2, 90)
	if err != nil {
		t.Fatalf("Pivot: %v", err)
	}
	got := r.Apply(Vector{1, 0, 0})
	if !almostEqual(got.X, 0, 1e-9) || !almostEqual(got.Y, 1, 1e-9) || !almostEqual(got.Z, 0, 1e-9) {
		t.Errorf("Pivot(z,90) applied to x-axis: got %v, want {0 1 0}", got)
	}

	_, err = Pivot(7, 10)
	if !errors.Is(err, astroerr.ErrBadAxis) {
		t.Errorf("Pivot(bad axis): err=%v, want ErrBadAxis", err)
	}
}

func TestInverseIsTranspose(t *testing.T) {
	r, _ := Pivot(0, 37)
	inv := r.Inverse()
	combined := Combine(inv, r)
	id := Identity()
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if !almostEqual(combined[i][j], id[i][j], 1e-9) {
				t.Errorf("Combine(Inverse(R), R)[%d][%d] = %f, want %f", i, j, combined[i][j], id[i][j])
			}
		}
	}
}

func TestAngleConversions(t *testing.T) {
	a := AngleFromDegrees(90)
	if !almostEqual(a.Radians(), math.Pi/2, 1e-12) {
		t.Errorf("Radians: got %f, want pi/2", a.Radians())
	}
	if !almostEqual(a.Hours(), 6, 1e-12) {
		t.Errorf("Hours: got %f, want 6", a.Hours())
	}
	if !almostEqual(a.Arcminutes(), 5400, 1e-9) {
		t.Errorf("Arcminutes: got %f, want 5400", a.Arcminutes())
	}
}

func TestAngleDMS(t *testing.T) {
	a := AngleFromDegrees(-10.5)
	sign, deg, min, sec := a.DMS()
	if sign != -1 || deg != 10 || min != 30 {
		t.Errorf("DMS: got sign=%f deg=%d min=%d sec=%f, want -1 10 30 ~0", sign, deg, min, sec)
	}
}

func TestDistanceConversions(t *testing.T) {
	d := DistanceFromAU(1)
	if !almostEqual(d.Km(), AUToKm, 1e-6) {
		t.Errorf("Km: got %f, want %f", d.Km(), AUToKm)
	}
	if !almostEqual(d.M(), AUToKm*1000, 1e-3) {
		t.Errorf("M: got %f, want %f", d.M(), AUToKm*1000)
	}
}

func TestStateVectorSplit(t *testing.T) {
	s := StateVector{1, 2, 3, 4, 5, 6}
	if s.Position() != (Vector{1, 2, 3}) {
		t.Errorf("Position: got %v", s.Position())
	}
	if s.Velocity() != (Vector{4, 5, 6}) {
		t.Errorf("Velocity: got %v", s.Velocity())
	}
}
