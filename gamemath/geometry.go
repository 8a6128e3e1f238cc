package gamemath

import "math"

// Rect is an axis-aligned box given by its min and max corners.
type Rect struct {
	Min, Max Vec2
}

// RectFromCenter builds a box from its center and half extents.
func RectFromCenter(center Vec2, halfW, halfH float64) Rect {
	return Rect{
		Min: V(center.X-halfW, center.Y-halfH),
		Max: V(center.X+halfW, center.Y+halfH),
	}
}

// Contains reports whether p lies inside r (edges inclusive).
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.Min.X && p.X <= r.Max.X && p.Y >= r.Min.Y && p.Y <= r.Max.Y
}

func (r Rect) Center() Vec2 {
	return V((r.Min.X+r.Max.X)/2, (r.Min.Y+r.Max.Y)/2)
}

// Size is the width and height as a vector.
func (r Rect) Size() Vec2 {
	return Sub(r.Max, r.Min)
}

// Inset shrinks r by m on every side.
func (r Rect) Inset(m float64) Rect {
	return Rect{Min: V(r.Min.X+m, r.Min.Y+m), Max: V(r.Max.X-m, r.Max.Y-m)}
}

// CirclesOverlap reports whether two circles intersect (touching counts).
func CirclesOverlap(a Vec2, ra float64, b Vec2, rb float64) bool {
	d := Sub(a, b)
	r := ra + rb
	return Dot(d, d) <= r*r
}

// SeparationNormal is the unit vector pushing a away from b. Coincident
// centers yield the zero vector.
func SeparationNormal(a, b Vec2) Vec2 {
	return Normalize(Sub(a, b))
}

// RayCircle casts a ray segment of the given length from origin along the
// unit direction dir and returns the distance to the first contact with the
// circle. An origin inside the circle hits at 0.
func RayCircle(origin, dir Vec2, length float64, center Vec2, radius float64) (float64, bool) {
	if Length(dir) == 0 {
		return 0, false
	}
	m := Sub(origin, center)
	c := Dot(m, m) - radius*radius
	if c <= 0 {
		return 0, true
	}
	b := Dot(m, dir)
	if b > 0 {
		return 0, false
	}
	disc := b*b - c
	if disc < 0 {
		return 0, false
	}
	t := -b - math.Sqrt(disc)
	if t < 0 {
		t = 0
	}
	if t > length {
		return 0, false
	}
	return t, true
}

// RayAABB casts a ray segment against a box using the slab method and returns
// the entry distance. An origin inside the box hits at 0.
func RayAABB(origin, dir Vec2, length float64, r Rect) (float64, bool) {
	if Length(dir) == 0 {
		return 0, false
	}
	tMin, tMax := 0.0, length

	for axis := 0; axis < 2; axis++ {
		o, d, lo, hi := origin.X, dir.X, r.Min.X, r.Max.X
		if axis == 1 {
			o, d, lo, hi = origin.Y, dir.Y, r.Min.Y, r.Max.Y
		}
		if d == 0 {
			if o < lo || o > hi {
				return 0, false
			}
			continue
		}
		t1 := (lo - o) / d
		t2 := (hi - o) / d
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tMin = math.Max(tMin, t1)
		tMax = math.Min(tMax, t2)
		if tMin > tMax {
			return 0, false
		}
	}
	return tMin, true
}
