// geom/geom.go
package geom

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Circle is a bounding circle around a centre point
type Circle struct {
	Center mgl64.Vec2
	Radius float64
}

// Box is an axis-aligned box described by its centre and half extents
type Box struct {
	Center mgl64.Vec2
	Half   mgl64.Vec2
}

// NewBox builds a box from a centre and a full size
func NewBox(center, size mgl64.Vec2) Box {
	return Box{Center: center, Half: size.Mul(0.5)}
}

func (b Box) Min() mgl64.Vec2 { return b.Center.Sub(b.Half) }
func (b Box) Max() mgl64.Vec2 { return b.Center.Add(b.Half) }

// ClosestPoint returns the point inside the box nearest to p
func (b Box) ClosestPoint(p mgl64.Vec2) mgl64.Vec2 {
	lo, hi := b.Min(), b.Max()
	return mgl64.Vec2{
		Clamp(p[0], lo[0], hi[0]),
		Clamp(p[1], lo[1], hi[1]),
	}
}

// Contains reports whether p lies inside or on the edge of the box
func (b Box) Contains(p mgl64.Vec2) bool {
	return b.ClosestPoint(p) == p
}

func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(v, hi))
}

// Signum returns -1, 0 or 1. Unlike math.Copysign it maps zero to zero.
func Signum(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
