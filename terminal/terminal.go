// Package terminal hosts the game in a tcell screen. It supplies the
// viewport size and the input axis, and draws each projected frame.
package terminal

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/mo-shahab/pong-arcade/canvas"
	"github.com/mo-shahab/pong-arcade/config"
	"github.com/mo-shahab/pong-arcade/game"
	"github.com/mo-shahab/pong-arcade/geom"
)

// Action is what a key press asks the host loop to do
type Action int

const (
	ActionNone Action = iota
	ActionQuit
	ActionResetScore
	ActionPause
)

var (
	styleGutter = tcell.StyleDefault.Background(tcell.ColorDarkSlateGray)
	styleBall   = tcell.StyleDefault.Foreground(tcell.ColorRed)
	styleLeft   = tcell.StyleDefault.Foreground(tcell.ColorBlue)
	styleRight  = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	styleScore  = tcell.StyleDefault.Background(tcell.ColorDarkSlateGray).Foreground(tcell.ColorWhite).Bold(true)
)

type Screen struct {
	screen tcell.Screen
	cellW  float64
	cellH  float64
	hold   time.Duration
	delay  time.Duration
	now    func() time.Time

	mu        sync.Mutex
	axis      float64
	pressed   time.Time
	repeating bool
	left    int
	right   int
	status  string
}

func New(s tcell.Screen, cfg config.TerminalConfig) *Screen {
	return &Screen{
		screen: s,
		cellW:  cfg.CellWidth,
		cellH:  cfg.CellHeight,
		hold:   time.Duration(cfg.HoldMillis) * time.Millisecond,
		delay:  time.Duration(cfg.RepeatDelayMillis) * time.Millisecond,
		now:    time.Now,
	}
}

// Open creates and initialises the real terminal screen
func Open(cfg config.TerminalConfig) (*Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	if err := s.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	s.HideCursor()
	return New(s, cfg), nil
}

func (h *Screen) Fini() { h.screen.Fini() }

// Events pumps tcell events into a channel until the screen is finalised
func (h *Screen) Events() <-chan tcell.Event {
	ch := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := h.screen.PollEvent()
			if ev == nil {
				close(ch)
				return
			}
			ch <- ev
		}
	}()
	return ch
}

// Size implements canvas.Viewport
func (h *Screen) Size() (canvas.Canvas, bool) {
	cols, rows := h.screen.Size()
	if cols <= 0 || rows <= 0 {
		return canvas.Canvas{}, false
	}
	return canvas.Canvas{
		Width:  float64(cols) * h.cellW,
		Height: float64(rows) * h.cellH,
	}, true
}

// Axis implements game.InputSource. Terminals report presses but not
// releases. A fresh press stays held until the keyboard has had time to
// start auto-repeating; after that each repeat only extends the short hold
// window, so letting go stops the paddle quickly.
func (h *Screen) Axis() float64 {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.expire()
	return h.axis
}

func (h *Screen) expire() {
	window := h.delay
	if h.repeating {
		window = h.hold
	}
	if h.axis != 0 && h.now().Sub(h.pressed) > window {
		h.axis = 0
		h.repeating = false
	}
}

// UpdateScore implements game.Scoreboard
func (h *Screen) UpdateScore(left, right int) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.left, h.right = left, right
}

// SetStatus shows a short message next to the score
func (h *Screen) SetStatus(s string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.status = s
}

// HandleEvent translates a tcell event into a host action
func (h *Screen) HandleEvent(ev tcell.Event) Action {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return h.press(ev.Key(), ev.Rune())
	case *tcell.EventResize:
		h.screen.Sync()
	}
	return ActionNone
}

func (h *Screen) press(key tcell.Key, r rune) Action {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return ActionQuit
	case tcell.KeyUp:
		h.steer(1)
		return ActionNone
	case tcell.KeyDown:
		h.steer(-1)
		return ActionNone
	case tcell.KeyRune:
	default:
		return ActionNone
	}

	switch r {
	case 'q':
		return ActionQuit
	case 'r':
		return ActionResetScore
	case 'p':
		return ActionPause
	case 'k', 'w':
		h.steer(1)
	case 'j', 's':
		h.steer(-1)
	}
	return ActionNone
}

func (h *Screen) steer(axis float64) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.expire()
	h.repeating = h.axis == axis
	h.axis = axis
	h.pressed = h.now()
}

// Project implements game.RenderSink
func (h *Screen) Project(frame game.Frame) {
	view, ok := h.Size()
	if !ok {
		return
	}

	h.screen.Clear()
	for _, p := range frame.Placements {
		switch p.Kind {
		case game.KindGutter:
			h.fill(view, geom.NewBox(p.Position, p.Size), ' ', styleGutter)
		case game.KindPaddle:
			style := styleRight
			if p.ID == game.LeftPaddleID {
				style = styleLeft
			}
			h.fill(view, geom.NewBox(p.Position, p.Size), '█', style)
		case game.KindBall:
			h.fill(view, geom.NewBox(p.Position, p.Size), '●', styleBall)
		}
	}
	h.drawScore()
	h.screen.Show()
}

func (h *Screen) fill(view canvas.Canvas, b geom.Box, r rune, style tcell.Style) {
	cols, rows := h.screen.Size()
	c0, c1, r0, r1 := h.cells(view, b)

	for row := max(r0, 0); row <= min(r1, rows-1); row++ {
		for col := max(c0, 0); col <= min(c1, cols-1); col++ {
			h.screen.SetContent(col, row, r, nil, style)
		}
	}
}

// cells maps a logical box to the inclusive cell ranges it covers. A box
// smaller than a cell still covers the cell holding its centre.
func (h *Screen) cells(view canvas.Canvas, b geom.Box) (c0, c1, r0, r1 int) {
	lo, hi := b.Min(), b.Max()

	c0 = int(math.Floor((lo[0] + view.HalfWidth()) / h.cellW))
	c1 = int(math.Ceil((hi[0]+view.HalfWidth())/h.cellW)) - 1
	r0 = int(math.Floor((view.HalfHeight() - hi[1]) / h.cellH))
	r1 = int(math.Ceil((view.HalfHeight()-lo[1])/h.cellH)) - 1

	if c1 < c0 {
		c0 = int(math.Floor((b.Center[0] + view.HalfWidth()) / h.cellW))
		c1 = c0
	}
	if r1 < r0 {
		r0 = int(math.Floor((view.HalfHeight() - b.Center[1]) / h.cellH))
		r1 = r0
	}
	return c0, c1, r0, r1
}

func (h *Screen) drawScore() {
	h.mu.Lock()
	text := fmt.Sprintf(" AI %d : %d YOU ", h.left, h.right)
	if h.status != "" {
		text += "[" + h.status + "] "
	}
	h.mu.Unlock()

	cols, _ := h.screen.Size()
	col := (cols - len([]rune(text))) / 2
	for i, r := range []rune(text) {
		if c := col + i; c >= 0 && c < cols {
			h.screen.SetContent(c, 0, r, nil, styleScore)
		}
	}
}
