package ball

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/mo-shahab/pong-arcade/collision"
	"github.com/mo-shahab/pong-arcade/geom"
)

// Move integrates the ball one tick: position += velocity * speed
func (b *Ball) Move(speed float64) {
	b.Position = b.Position.Add(b.Velocity.Mul(speed))
}

// Bounce tests the ball against every obstacle and reflects the velocity
// once per hit. Hits are applied independently, so touching two
// perpendicular obstacles in one tick flips both components. The returned
// slice holds the index of each obstacle struck.
func (b *Ball) Bounce(obstacles []geom.Box) []int {
	var hits []int
	for i, obstacle := range obstacles {
		side, ok := collision.Collide(b.Bounds(), obstacle)
		if !ok {
			continue
		}
		b.Velocity = collision.Reflect(b.Velocity, side)
		hits = append(hits, i)
	}
	return hits
}

// Serve puts the ball back in the centre heading towards directionX
// (-1 left, +1 right) with a fixed vertical component.
func (b *Ball) Serve(directionX, serveY float64) {
	b.Position = mgl64.Vec2{0, 0}
	b.Velocity = mgl64.Vec2{directionX, serveY}
}
