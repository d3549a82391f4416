package game

import (
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/mo-shahab/pong-arcade/ball"
	"github.com/mo-shahab/pong-arcade/gutter"
	"github.com/mo-shahab/pong-arcade/paddle"
	"github.com/mo-shahab/pong-arcade/scores"
)

// EntityID is a stable handle for a positioned entity
type EntityID uint32

const (
	BallID EntityID = iota + 1
	LeftPaddleID
	RightPaddleID
	TopGutterID
	BottomGutterID
)

// Kind tags what an entity is so sinks can draw it
type Kind uint8

const (
	KindBall Kind = iota
	KindPaddle
	KindGutter
)

func (k Kind) String() string {
	switch k {
	case KindBall:
		return "ball"
	case KindPaddle:
		return "paddle"
	case KindGutter:
		return "gutter"
	}
	return "unknown"
}

// Placement is one entity's logical position for the current tick
type Placement struct {
	ID       EntityID
	Kind     Kind
	Position mgl64.Vec2
	Size     mgl64.Vec2
}

// Frame is everything a render sink needs for one tick
type Frame struct {
	Tick       uint64
	Placements []Placement
}

// Surface is what the ball bounced off
type Surface uint8

const (
	Wall Surface = iota
	PaddleSurface
)

// InputSource yields the player's vertical axis: -1, 0 or 1
type InputSource interface {
	Axis() float64
}

// RenderSink receives the projected positions once per tick
type RenderSink interface {
	Project(frame Frame)
}

// Scoreboard is told the tally whenever it changes
type Scoreboard interface {
	UpdateScore(left, right int)
}

// Sounder plays cues for bounces and points
type Sounder interface {
	Bounce(surface Surface)
	Score(scorer scores.Side)
}

// Tuning holds the per-class speeds and sizes
type Tuning struct {
	TickRate      time.Duration
	BallSpeed     float64
	BallRadius    float64
	ServeY        float64
	PaddleSpeed   float64
	PaddleWidth   float64
	PaddleHeight  float64
	PaddlePadding float64
	GutterHeight  float64
}

func DefaultTuning() Tuning {
	return Tuning{
		TickRate:      TickRate,
		BallSpeed:     ball.Speed,
		BallRadius:    ball.Radius,
		ServeY:        ball.ServeY,
		PaddleSpeed:   paddle.Speed,
		PaddleWidth:   paddle.Width,
		PaddleHeight:  paddle.Height,
		PaddlePadding: paddle.Padding,
		GutterHeight:  gutter.Height,
	}
}

// GameStateSnapshot represents a point-in-time copy of the simulation
type GameStateSnapshot struct {
	ID      string
	Tick    uint64
	Ball    ball.Ball
	HasBall bool
	Left    paddle.Paddle
	Right   paddle.Paddle
	Scores  scores.Scores
	Paused  bool
}
