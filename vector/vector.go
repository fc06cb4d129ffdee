// Package vector provides the Cartesian vector, state-vector, and rotation
// primitives shared across the ephemeris engine, plus the Angle/Distance unit
// wrappers every package reports results in.
//
// Grounded on goeph's coord/vec3.go (plain [3]float64 arithmetic helpers,
// never promoted to a public type there) and units/units.go (Angle/Distance);
// this package promotes both to first-class public types since they are used
// across package boundaries here (vector.StateVector crosses from vsop87/moon/
// pluto/jupitermoons into body, elements, and kepler) rather than staying
// private to one file the way goeph's vec3.go did.
package vector

import (
	"math"

	"github.com/starwake/ephemeris/astroerr"
)

const (
	deg2rad = math.Pi / 180.0
	rad2deg = 180.0 / math.Pi

	// AUToKm is the IAU 2012 nominal astronomical unit in kilometers.
	AUToKm = 149597870.7
)

// Vector is a Cartesian position or direction, in whatever frame and unit the
// caller documents (ICRF equatorial unless stated otherwise). Most of this
// engine's position engine (vsop87, moon, pluto, jupitermoons, body) works in
// AU; coord's Earth-surface geometry works in km. Callers document which.
type Vector struct {
	X, Y, Z float64
}

// StateVector is a position/velocity pair, unit-per-unit-time as the caller
// documents (e.g. AU and AU/day for the analytic position engine).
type StateVector struct {
	X, Y, Z    float64
	VX, VY, VZ float64
}

// Position returns the position half of the state vector.
func (s StateVector) Position() Vector { return Vector{s.X, s.Y, s.Z} }

// Velocity returns the velocity half of the state vector, in the state
// vector's own units (AU/day for the analytic position engine).
func (s StateVector) Velocity() Vector { return Vector{s.VX, s.VY, s.VZ} }

// Add returns v + w.
func (v Vector) Add(w Vector) Vector { return Vector{v.X + w.X, v.Y + w.Y, v.Z + w.Z} }

// Sub returns v - w.
func (v Vector) Sub(w Vector) Vector { return Vector{v.X - w.X, v.Y - w.Y, v.Z - w.Z} }

// Scale returns v scaled by s.
func (v Vector) Scale(s float64) Vector { return Vector{v.X * s, v.Y * s, v.Z * s} }

// Dot returns the dot product v . w.
func (v Vector) Dot(w Vector) float64 { return v.X*w.X + v.Y*w.Y + v.Z*w.Z }

// Cross returns the cross product v x w.
func (v Vector) Cross(w Vector) Vector {
	return Vector{
		v.Y*w.Z - v.Z*w.Y,
		v.Z*w.X - v.X*w.Z,
		v.X*w.Y - v.Y*w.X,
	}
}

// Length returns the Euclidean length of v.
func (v Vector) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Normalize returns v scaled to unit length. Fails with astroerr.ErrBadVector
// if v is (numerically) zero-length.
func (v Vector) Normalize() (Vector, error) {
	l := v.Length()
	if l < 1e-300 {
		return Vector{}, astroerr.ErrBadVector
	}
	return v.Scale(1.0 / l), nil
}

// AngleBetween returns the angle between v and w in radians, using a
// numerically stable formula (Kahan) that avoids the acos(dot/|v||w|)
// cancellation error near 0 and pi. Fails with astroerr.ErrBadVector if
// either vector is zero-length.
func AngleBetween(v, w Vector) (float64, error) {
	vLen := v.Length()
	wLen := w.Length()
	if vLen < 1e-300 || wLen < 1e-300 {
		return 0, astroerr.ErrBadVector
	}
	a := v.Scale(wLen)
	b := w.Scale(vLen)
	return 2.0 * math.Atan2(a.Sub(b).Length(), a.Add(b).Length()), nil
}

// RotationMatrix is a 3x3 orthonormal rotation matrix, row-major: R[i][j].
type RotationMatrix [3][3]float64

// Identity returns the 3x3 identity rotation.
func Identity() RotationMatrix {
	return RotationMatrix{
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
	}
}

// Apply rotates v by R.
func (r RotationMatrix) Apply(v Vector) Vector {
	return Vector{
		r[0][0]*v.X + r[0][1]*v.Y + r[0][2]*v.Z,
		r[1][0]*v.X + r[1][1]*v.Y + r[1][2]*v.Z,
		r[2][0]*v.X + r[2][1]*v.Y + r[2][2]*v.Z,
	}
}

// ApplyState rotates both halves of a state vector by R.
func (r RotationMatrix) ApplyState(s StateVector) StateVector {
	p := r.Apply(Vector{s.X, s.Y, s.Z})
	v := r.Apply(Vector{s.VX, s.VY, s.VZ})
	return StateVector{p.X, p.Y, p.Z, v.X, v.Y, v.Z}
}

// Inverse returns the transpose of R, which is its inverse for an orthonormal
// rotation matrix.
func (r RotationMatrix) Inverse() RotationMatrix {
	return RotationMatrix{
		{r[0][0], r[1][0], r[2][0]},
		{r[0][1], r[1][1], r[2][1]},
		{r[0][2], r[1][2], r[2][2]},
	}
}

// Combine returns the matrix product B*A: applying the result to a vector is
// equivalent to applying A first, then B.
func Combine(b, a RotationMatrix) RotationMatrix {
	var out RotationMatrix
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			var sum float64
			for k := 0; k < 3; k++ {
				sum += b[i][k] * a[k][j]
			}
			out[i][j] = sum
		}
	}
	return out
}

// Pivot returns the rotation matrix for a right-handed rotation by angleDeg
// degrees about the given axis (0=x, 1=y, 2=z). Fails with astroerr.ErrBadAxis
// for any other axis value.
func Pivot(axis int, angleDeg float64) (RotationMatrix, error) {
	theta := angleDeg * deg2rad
	s, c := math.Sincos(theta)
	switch axis {
	case 0:
		return RotationMatrix{
			{1, 0, 0},
			{0, c, -s},
			{0, s, c},
		}, nil
	case 1:
		return RotationMatrix{
			{c, 0, s},
			{0, 1, 0},
			{-s, 0, c},
		}, nil
	case 2:
		return RotationMatrix{
			{c, -s, 0},
			{s, c, 0},
			{0, 0, 1},
		}, nil
	default:
		return RotationMatrix{}, astroerr.ErrBadAxis
	}
}

// --- Angle ---

// Angle represents an angular measurement, stored internally in radians.
type Angle struct {
	rad float64
}

// AngleFromRadians creates an Angle from radians.
func AngleFromRadians(radians float64) Angle { return Angle{rad: radians} }

// AngleFromDegrees creates an Angle from degrees.
func AngleFromDegrees(deg float64) Angle { return Angle{rad: deg * deg2rad} }

// AngleFromHours creates an Angle from hours of right ascension.
func AngleFromHours(hours float64) Angle { return Angle{rad: hours * math.Pi / 12.0} }

// Radians returns the angle in radians.
func (a Angle) Radians() float64 { return a.rad }

// Degrees returns the angle in degrees.
func (a Angle) Degrees() float64 { return a.rad * rad2deg }

// Hours returns the angle in hours of right ascension.
func (a Angle) Hours() float64 { return a.rad * 12.0 / math.Pi }

// Arcminutes returns the angle in arcminutes.
func (a Angle) Arcminutes() float64 { return a.Degrees() * 60.0 }

// Arcseconds returns the angle in arcseconds.
func (a Angle) Arcseconds() float64 { return a.Degrees() * 3600.0 }

// DMS decomposes the angle into sign, integer degrees, integer arcminutes,
// and fractional arcseconds. Sign is +1 or -1.
func (a Angle) DMS() (sign float64, deg, min int, sec float64) {
	total := a.Degrees()
	sign = 1.0
	if total < 0 {
		sign = -1.0
		total = -total
	}
	deg = int(total)
	remainder := (total - float64(deg)) * 60.0
	min = int(remainder)
	sec = (remainder - float64(min)) * 60.0
	return
}

// HMS decomposes the angle (as right ascension) into sign, integer hours,
// integer minutes, and fractional seconds. Sign is +1 or -1.
func (a Angle) HMS() (sign float64, hours, min int, sec float64) {
	total := a.Hours()
	sign = 1.0
	if total < 0 {
		sign = -1.0
		total = -total
	}
	hours = int(total)
	remainder := (total - float64(hours)) * 60.0
	min = int(remainder)
	sec = (remainder - float64(min)) * 60.0
	return
}

// --- Distance ---

// Distance represents a distance measurement, stored internally in kilometers.
type Distance struct {
	km float64
}

// DistanceFromKm creates a Distance from kilometers.
func DistanceFromKm(km float64) Distance { return Distance{km: km} }

// DistanceFromAU creates a Distance from astronomical units.
func DistanceFromAU(au float64) Distance { return Distance{km: au * AUToKm} }

// DistanceFromMeters creates a Distance from meters.
func DistanceFromMeters(m float64) Distance { return Distance{km: m / 1000.0} }

// Km returns the distance in kilometers.
func (d Distance) Km() float64 { return d.km }

// AU returns the distance in astronomical units.
func (d Distance) AU() float64 { return d.km / AUToKm }

// M returns the distance in meters.
func (d Distance) M() float64 { return d.km * 1000.0 }

// LightSeconds returns the distance in light-seconds (C_AUDAY convention).
func (d Distance) LightSeconds() float64 { return d.km / 299792.458 }
