package ball

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/mo-shahab/pong-arcade/geom"
)

// ball constants
const (
	Speed  = 5.0
	Radius = 5.0
	ServeY = 1.0
)

type Ball struct {
	Position mgl64.Vec2
	Velocity mgl64.Vec2
	Radius   float64
}

// New spawns a ball at the centre moving diagonally up and to the right
func New(radius float64) *Ball {
	return &Ball{
		Velocity: mgl64.Vec2{1, 1},
		Radius:   radius,
	}
}

func (b *Ball) Bounds() geom.Circle {
	return geom.Circle{Center: b.Position, Radius: b.Radius}
}
