package terminal

import (
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/mo-shahab/pong-arcade/canvas"
	"github.com/mo-shahab/pong-arcade/config"
	"github.com/mo-shahab/pong-arcade/game"
	"github.com/mo-shahab/pong-arcade/geom"
	"github.com/mo-shahab/pong-arcade/paddle"
)

func newTestScreen(t *testing.T) *Screen {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	if err := sim.Init(); err != nil {
		t.Fatalf("init simulation screen: %v", err)
	}
	sim.SetSize(80, 24)
	t.Cleanup(sim.Fini)

	return New(sim, config.Default().Terminal)
}

func TestSizeScalesCells(t *testing.T) {
	h := newTestScreen(t)

	c, ok := h.Size()
	if !ok {
		t.Fatalf("expected a viewport")
	}
	if c != (canvas.Canvas{Width: 640, Height: 384}) {
		t.Fatalf("viewport = %+v, want 640x384", c)
	}
}

func TestAxisHoldWindow(t *testing.T) {
	h := newTestScreen(t)
	now := time.Unix(1000, 0)
	h.now = func() time.Time { return now }

	if got := h.Axis(); got != 0 {
		t.Fatalf("idle axis = %v", got)
	}

	h.press(tcell.KeyUp, 0)
	if got := h.Axis(); got != 1 {
		t.Fatalf("axis after up = %v, want 1", got)
	}

	now = now.Add(300 * time.Millisecond)
	if got := h.Axis(); got != 1 {
		t.Fatalf("axis inside hold window = %v, want 1", got)
	}

	now = now.Add(500 * time.Millisecond)
	if got := h.Axis(); got != 0 {
		t.Fatalf("axis after hold window = %v, want 0", got)
	}

	h.press(tcell.KeyRune, 'j')
	if got := h.Axis(); got != -1 {
		t.Fatalf("axis after j = %v, want -1", got)
	}
}

// Holding a key sends one press, a pause of the keyboard's repeat delay,
// then a stream of repeats. The axis must not drop out in between.
func TestAxisSurvivesRepeatDelay(t *testing.T) {
	h := newTestScreen(t)
	now := time.Unix(1000, 0)
	h.now = func() time.Time { return now }

	h.press(tcell.KeyUp, 0)
	for elapsed := 0; elapsed <= 600; elapsed += 16 {
		if got := h.Axis(); got != 1 {
			t.Fatalf("axis dropped to %v %dms into the repeat delay", got, elapsed)
		}
		now = now.Add(16 * time.Millisecond)
	}

	for i := 0; i < 20; i++ {
		h.press(tcell.KeyUp, 0)
		now = now.Add(33 * time.Millisecond)
		if got := h.Axis(); got != 1 {
			t.Fatalf("axis dropped to %v between repeats", got)
		}
	}

	// Releasing the key stops the paddle within the short hold window
	now = now.Add(150 * time.Millisecond)
	if got := h.Axis(); got != 0 {
		t.Fatalf("axis after release = %v, want 0", got)
	}
}

func TestKeyActions(t *testing.T) {
	h := newTestScreen(t)

	tests := []struct {
		key  tcell.Key
		r    rune
		want Action
	}{
		{tcell.KeyEscape, 0, ActionQuit},
		{tcell.KeyCtrlC, 0, ActionQuit},
		{tcell.KeyRune, 'q', ActionQuit},
		{tcell.KeyRune, 'r', ActionResetScore},
		{tcell.KeyRune, 'p', ActionPause},
		{tcell.KeyRune, 'x', ActionNone},
		{tcell.KeyDown, 0, ActionNone},
		{tcell.KeyTab, 0, ActionNone},
	}
	for _, tt := range tests {
		if got := h.press(tt.key, tt.r); got != tt.want {
			t.Errorf("press(%v, %q) = %v, want %v", tt.key, tt.r, got, tt.want)
		}
	}
}

func TestCellsMapping(t *testing.T) {
	h := newTestScreen(t)
	view := canvas.Canvas{Width: 640, Height: 384}

	tests := []struct {
		name           string
		box            geom.Box
		c0, c1, r0, r1 int
	}{
		{
			name: "top gutter covers the first six rows",
			box:  geom.NewBox(mgl64.Vec2{0, 144}, mgl64.Vec2{640, 96}),
			c0:   0, c1: 79, r0: 0, r1: 5,
		},
		{
			name: "ball smaller than a cell keeps its centre cell",
			box:  geom.NewBox(mgl64.Vec2{4, -4}, mgl64.Vec2{0, 0}),
			c0:   40, c1: 40, r0: 12, r1: 12,
		},
		{
			name: "paddle spans rows around the centre line",
			box:  geom.NewBox(mgl64.Vec2{-268, 0}, mgl64.Vec2{8, 48}),
			c0:   6, c1: 6, r0: 10, r1: 13,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c0, c1, r0, r1 := h.cells(view, tt.box)
			if c0 != tt.c0 || c1 != tt.c1 || r0 != tt.r0 || r1 != tt.r1 {
				t.Fatalf("cells = cols %d..%d rows %d..%d, want cols %d..%d rows %d..%d",
					c0, c1, r0, r1, tt.c0, tt.c1, tt.r0, tt.r1)
			}
		})
	}
}

func TestProjectDrawsFrame(t *testing.T) {
	h := newTestScreen(t)
	h.UpdateScore(3, 1)
	h.SetStatus("paused")

	// Off-screen placements must be clipped, not panic.
	h.Project(game.Frame{
		Tick: 1,
		Placements: []game.Placement{
			{ID: game.BallID, Kind: game.KindBall, Position: mgl64.Vec2{5000, -5000}, Size: mgl64.Vec2{10, 10}},
			{ID: game.LeftPaddleID, Kind: game.KindPaddle, Position: mgl64.Vec2{-270, 0}, Size: mgl64.Vec2{10, 50}},
			{ID: game.TopGutterID, Kind: game.KindGutter, Position: mgl64.Vec2{0, 144}, Size: mgl64.Vec2{640, 96}},
		},
	})
}

func (h *Screen) row(y int) string {
	cols, _ := h.screen.Size()
	rs := make([]rune, 0, cols)
	for x := 0; x < cols; x++ {
		r, _, _, _ := h.screen.GetContent(x, y)
		rs = append(rs, r)
	}
	return string(rs)
}

func TestPausedGameStillRedraws(t *testing.T) {
	h := newTestScreen(t)

	engine := game.NewEngine(game.DefaultTuning(), h)
	engine.SetInput(h)
	engine.AddRenderSink(h)
	engine.AddScoreboard(h)
	engine.Initialize(paddle.Human)
	engine.Tick()

	if got := h.row(0); !strings.Contains(got, "AI 0 : 0 YOU") || strings.Contains(got, "[paused]") {
		t.Fatalf("row 0 before pause = %q", got)
	}

	if !engine.TogglePause() {
		t.Fatalf("expected paused")
	}
	h.SetStatus("paused")
	h.UpdateScore(2, 5)
	engine.ResetScore()
	engine.Tick()

	got := h.row(0)
	if !strings.Contains(got, "[paused]") {
		t.Fatalf("row 0 while paused = %q, want the paused status", got)
	}
	if !strings.Contains(got, "AI 0 : 0 YOU") {
		t.Fatalf("row 0 while paused = %q, want the reset score", got)
	}
	if s := engine.Snapshot(); s.Tick != 1 {
		t.Fatalf("tick = %d while paused, want 1", s.Tick)
	}
}
