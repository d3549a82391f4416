package gutter

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/mo-shahab/pong-arcade/canvas"
	"github.com/mo-shahab/pong-arcade/geom"
)

// Height of the band reserved at the top and bottom of the playfield
const Height = 96.0

// Gutter is a static boundary. It never moves after Spawn.
type Gutter struct {
	Position mgl64.Vec2
	Shape    mgl64.Vec2
}

func (g Gutter) Bounds() geom.Box {
	return geom.NewBox(g.Position, g.Shape)
}

// Spawn builds the top and bottom gutters for the given playfield. They
// span the full width and are not recomputed if the viewport changes.
func Spawn(c canvas.Canvas, height float64) [2]Gutter {
	shape := mgl64.Vec2{c.Width, height}
	y := c.HalfHeight() - height/2

	return [2]Gutter{
		{Position: mgl64.Vec2{0, y}, Shape: shape},
		{Position: mgl64.Vec2{0, -y}, Shape: shape},
	}
}
