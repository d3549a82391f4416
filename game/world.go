package game

import (
	"github.com/mo-shahab/pong-arcade/ball"
	"github.com/mo-shahab/pong-arcade/canvas"
	"github.com/mo-shahab/pong-arcade/gutter"
	"github.com/mo-shahab/pong-arcade/paddle"
)

// World owns the entities. A nil handle means the entity does not exist
// and every system that needs it skips its work.
type World struct {
	Ball    *ball.Ball
	Left    *paddle.Paddle
	Right   *paddle.Paddle
	Gutters []gutter.Gutter
}

// Spawn creates the ball, and, when a viewport size is known, the paddles
// and gutters placed from that size. Placement is never recomputed.
func Spawn(view canvas.Viewport, t Tuning, left, right paddle.Control) *World {
	w := &World{Ball: ball.New(t.BallRadius)}

	if view == nil {
		return w
	}
	c, ok := view.Size()
	if !ok {
		return w
	}

	x := c.HalfWidth() - t.PaddlePadding
	w.Left = paddle.New(-x, t.PaddleWidth, t.PaddleHeight, left)
	w.Right = paddle.New(x, t.PaddleWidth, t.PaddleHeight, right)

	gs := gutter.Spawn(c, t.GutterHeight)
	w.Gutters = gs[:]

	return w
}

// Paddles returns the paddles that exist, left first
func (w *World) Paddles() []*paddle.Paddle {
	ps := make([]*paddle.Paddle, 0, 2)
	if w.Left != nil {
		ps = append(ps, w.Left)
	}
	if w.Right != nil {
		ps = append(ps, w.Right)
	}
	return ps
}
