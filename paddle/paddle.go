package paddle

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/mo-shahab/pong-arcade/geom"
)

// paddle constants
const (
	Speed   = 4.0
	Width   = 10.0
	Height  = 50.0
	Padding = 50.0
)

// Control says who drives a paddle
type Control uint8

const (
	Human Control = iota
	AI
)

func (c Control) String() string {
	if c == AI {
		return "ai"
	}
	return "human"
}

type Paddle struct {
	Position mgl64.Vec2
	Velocity mgl64.Vec2
	Width    float64
	Height   float64
	Control  Control
}

// New places a resting paddle at x on the centre line
func New(x, width, height float64, control Control) *Paddle {
	return &Paddle{
		Position: mgl64.Vec2{x, 0},
		Width:    width,
		Height:   height,
		Control:  control,
	}
}

func (p *Paddle) Bounds() geom.Box {
	return geom.NewBox(p.Position, mgl64.Vec2{p.Width, p.Height})
}
