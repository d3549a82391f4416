// collision/collision.go
package collision

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/mo-shahab/pong-arcade/geom"
)

// Side is the axis of the face the circle struck
type Side uint8

const (
	// Horizontal means a left or right face, the x velocity flips
	Horizontal Side = iota
	// Vertical means a top or bottom face, the y velocity flips
	Vertical
)

func (s Side) String() string {
	if s == Horizontal {
		return "horizontal"
	}
	return "vertical"
}

// Intersects is the circle vs AABB test: the squared distance from the
// circle centre to the closest point of the box is at most r².
func Intersects(c geom.Circle, b geom.Box) bool {
	offset := c.Center.Sub(b.ClosestPoint(c.Center))
	return offset.Dot(offset) <= c.Radius*c.Radius
}

// Collide reports whether the circle touches the box and which face it hit.
// The larger offset component picks the side. Equal magnitudes are
// classified as Vertical, and so is a centre lying inside the box.
func Collide(c geom.Circle, b geom.Box) (Side, bool) {
	if !Intersects(c, b) {
		return 0, false
	}

	offset := c.Center.Sub(b.ClosestPoint(c.Center))
	if math.Abs(offset[0]) > math.Abs(offset[1]) {
		return Horizontal, true
	}
	return Vertical, true
}

// Reflect negates the velocity component on the struck axis
func Reflect(v mgl64.Vec2, side Side) mgl64.Vec2 {
	switch side {
	case Horizontal:
		v[0] = -v[0]
	case Vertical:
		v[1] = -v[1]
	}
	return v
}
