package paddle

import (
	"math"

	"github.com/mo-shahab/pong-arcade/canvas"
	"github.com/mo-shahab/pong-arcade/geom"
)

// Steer sets the vertical velocity straight from the input axis.
// The axis is trusted to be -1, 0 or 1.
func (p *Paddle) Steer(axis float64) {
	p.Velocity[1] = axis
}

// Track points the paddle at the ball at constant speed. Near the target
// this oscillates, which is the intended behaviour.
func (p *Paddle) Track(ballY float64) {
	p.Velocity[1] = geom.Signum(ballY - p.Position[1])
}

// Limit is the largest |y| a paddle centre may reach inside the gutters
func (p *Paddle) Limit(c canvas.Canvas, gutterHeight float64) float64 {
	return c.HalfHeight() - gutterHeight - p.Height/2
}

// Move integrates the paddle one tick. The tentative position is kept only
// when it stays strictly inside Limit; otherwise the paddle stays where it
// was, so it can stop a little short of the gutter.
func (p *Paddle) Move(speed float64, c canvas.Canvas, gutterHeight float64) bool {
	next := p.Position.Add(p.Velocity.Mul(speed))
	if math.Abs(next[1]) >= p.Limit(c, gutterHeight) {
		return false
	}
	p.Position = next
	return true
}
