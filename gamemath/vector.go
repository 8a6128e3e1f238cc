package gamemath

import (
	"math"

	dmath "github.com/yohamta/donburi/features/math"
)

// Vec2 is the engine-wide 2D vector.
type Vec2 = dmath.Vec2

// V builds a Vec2.
func V(x, y float64) Vec2 {
	return dmath.NewVec2(x, y)
}

func Add(a, b Vec2) Vec2 {
	return V(a.X+b.X, a.Y+b.Y)
}

func Sub(a, b Vec2) Vec2 {
	return V(a.X-b.X, a.Y-b.Y)
}

func Scale(a Vec2, s float64) Vec2 {
	return V(a.X*s, a.Y*s)
}

func Dot(a, b Vec2) float64 {
	return a.X*b.X + a.Y*b.Y
}

func Length(a Vec2) float64 {
	return math.Hypot(a.X, a.Y)
}

func Distance(a, b Vec2) float64 {
	return Length(Sub(a, b))
}

// Normalize returns the unit vector of a, or zero for a zero-length input.
func Normalize(a Vec2) Vec2 {
	l := Length(a)
	if l == 0 || math.IsNaN(l) {
		return Vec2{}
	}
	return Scale(a, 1/l)
}

// ClampLength caps the magnitude of a at max.
func ClampLength(a Vec2, max float64) Vec2 {
	l := Length(a)
	if l > max && l > 0 {
		return Scale(a, max/l)
	}
	return a
}

// WithLength keeps the heading of a and sets its magnitude.
func WithLength(a Vec2, length float64) Vec2 {
	return Scale(Normalize(a), length)
}

// Rotate turns a counter-clockwise by angle radians.
func Rotate(a Vec2, angle float64) Vec2 {
	sin, cos := math.Sincos(angle)
	return V(a.X*cos-a.Y*sin, a.X*sin+a.Y*cos)
}

// Perp is a rotated a quarter turn counter-clockwise.
func Perp(a Vec2) Vec2 {
	return V(-a.Y, a.X)
}

// AngleBetween is the unsigned angle from a to b, zero if either is zero.
func AngleBetween(a, b Vec2) float64 {
	la, lb := Length(a), Length(b)
	if la == 0 || lb == 0 {
		return 0
	}
	c := Dot(a, b) / (la * lb)
	return math.Acos(math.Max(-1, math.Min(1, c)))
}

// Lerp moves a toward b by t.
func Lerp(a, b Vec2, t float64) Vec2 {
	return Add(a, Scale(Sub(b, a), t))
}
