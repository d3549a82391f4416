// game/engine.go
package game

import (
	"log"
	"sync"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"
	"github.com/mo-shahab/pong-arcade/canvas"
	"github.com/mo-shahab/pong-arcade/geom"
	"github.com/mo-shahab/pong-arcade/paddle"
	"github.com/mo-shahab/pong-arcade/scores"
)

// Game loop
const TickRate = 16 * time.Millisecond

// Engine runs the fixed per-tick pipeline over a World
type Engine struct {
	ID string

	tuning   Tuning
	viewport canvas.Viewport
	input    InputSource
	sinks    []RenderSink
	boards   []Scoreboard
	sounder  Sounder

	world  *World
	scores scores.Scores
	events Events
	tick   uint64
	paused bool
	mu     sync.RWMutex

	ticker   *time.Ticker
	stopChan chan struct{}
	loopDone chan struct{}
	loopMu   sync.Mutex
}

// NewEngine creates a new game engine instance. Call Initialize before the
// first tick.
func NewEngine(tuning Tuning, viewport canvas.Viewport) *Engine {
	if tuning.TickRate <= 0 {
		tuning.TickRate = TickRate
	}
	return &Engine{
		ID:       uuid.New().String()[:8],
		tuning:   tuning,
		viewport: viewport,
		stopChan: make(chan struct{}),
	}
}

// SetInput attaches the player's input axis
func (e *Engine) SetInput(in InputSource) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.input = in
}

// AddRenderSink registers a sink for per-tick projections
func (e *Engine) AddRenderSink(s RenderSink) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.sinks = append(e.sinks, s)
}

// AddScoreboard registers a display for tally changes
func (e *Engine) AddScoreboard(b Scoreboard) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.boards = append(e.boards, b)
}

func (e *Engine) SetSounder(s Sounder) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.sounder = s
}

// Initialize spawns the world. The left paddle is always the AI; right is
// the human player unless demo mode hands it to the AI as well.
func (e *Engine) Initialize(right paddle.Control) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.world = Spawn(e.viewport, e.tuning, paddle.AI, right)
	e.updateScoreboard()

	log.Printf("Game engine %s initialized (right paddle: %s)", e.ID, right)
}

// Start begins the game loop
func (e *Engine) Start() {
	e.loopMu.Lock()
	if e.ticker != nil {
		e.loopMu.Unlock()
		return // Already running
	}
	e.ticker = time.NewTicker(e.tuning.TickRate)
	e.loopDone = make(chan struct{})
	ticker, stop, done := e.ticker, e.stopChan, e.loopDone
	e.loopMu.Unlock()

	log.Printf("Starting game engine %s", e.ID)
	go e.gameLoop(ticker, stop, done)
}

// Stop halts the game loop and waits for an in-flight tick to finish
func (e *Engine) Stop() {
	e.loopMu.Lock()
	defer e.loopMu.Unlock()

	if e.ticker != nil {
		e.ticker.Stop()
		e.ticker = nil
		close(e.stopChan)
		<-e.loopDone
		e.stopChan = make(chan struct{})
		log.Printf("Game engine %s stopped", e.ID)
	}
}

func (e *Engine) gameLoop(ticker *time.Ticker, stop, done chan struct{}) {
	defer close(done)
	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			e.Tick()
		}
	}
}

// Tick advances the simulation one frame. Statement order is the
// dependency graph: velocities, then motion, then collision and scoring on
// the moved ball, then the score listeners, then projection.
func (e *Engine) Tick() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.world == nil {
		return
	}
	// A paused game still redraws so status and score changes show up
	if e.paused {
		e.projectPositions()
		return
	}
	e.tick++

	view, hasView := e.viewportSize()

	e.handlePlayerInput()
	e.moveAI()
	e.moveBall()
	if hasView {
		e.movePaddles(view)
	}

	e.handleCollisions()
	if hasView {
		e.detectScoring(view)
	}

	changed := e.updateScore()
	e.resetBall()
	if changed {
		e.updateScoreboard()
	}

	e.projectPositions()
	e.playSounds()
	e.events.Clear()
}

// ResetScore zeroes the tally on explicit request from the player
func (e *Engine) ResetScore() {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.scores.Reset()
	e.updateScoreboard()
	log.Println("Score reset")
}

// TogglePause freezes or resumes ticking and reports the new state
func (e *Engine) TogglePause() bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.paused = !e.paused
	return e.paused
}

// Snapshot returns the current game state safely
func (e *Engine) Snapshot() GameStateSnapshot {
	e.mu.RLock()
	defer e.mu.RUnlock()

	s := GameStateSnapshot{
		ID:     e.ID,
		Tick:   e.tick,
		Scores: e.scores,
		Paused: e.paused,
	}
	if e.world == nil {
		return s
	}
	if e.world.Ball != nil {
		s.Ball = *e.world.Ball
		s.HasBall = true
	}
	if e.world.Left != nil {
		s.Left = *e.world.Left
	}
	if e.world.Right != nil {
		s.Right = *e.world.Right
	}
	return s
}

func (e *Engine) viewportSize() (canvas.Canvas, bool) {
	if e.viewport == nil {
		return canvas.Canvas{}, false
	}
	return e.viewport.Size()
}

// handlePlayerInput copies the input axis onto every human paddle
func (e *Engine) handlePlayerInput() {
	if e.input == nil {
		return
	}
	axis := e.input.Axis()
	for _, p := range e.world.Paddles() {
		if p.Control == paddle.Human {
			p.Steer(axis)
		}
	}
}

// moveAI points every AI paddle at the ball's current height
func (e *Engine) moveAI() {
	b := e.world.Ball
	if b == nil {
		return
	}
	for _, p := range e.world.Paddles() {
		if p.Control == paddle.AI {
			p.Track(b.Position[1])
		}
	}
}

func (e *Engine) moveBall() {
	if b := e.world.Ball; b != nil {
		b.Move(e.tuning.BallSpeed)
	}
}

func (e *Engine) movePaddles(view canvas.Canvas) {
	for _, p := range e.world.Paddles() {
		p.Move(e.tuning.PaddleSpeed, view, e.tuning.GutterHeight)
	}
}

// handleCollisions bounces the ball off every paddle and gutter it touches
func (e *Engine) handleCollisions() {
	b := e.world.Ball
	if b == nil {
		return
	}

	paddles := e.world.Paddles()
	obstacles := make([]geom.Box, 0, len(paddles)+len(e.world.Gutters))
	surfaces := make([]Surface, 0, cap(obstacles))
	for _, p := range paddles {
		obstacles = append(obstacles, p.Bounds())
		surfaces = append(surfaces, PaddleSurface)
	}
	for _, g := range e.world.Gutters {
		obstacles = append(obstacles, g.Bounds())
		surfaces = append(surfaces, Wall)
	}

	for _, i := range b.Bounce(obstacles) {
		e.events.SendBounced(Bounced{Surface: surfaces[i]})
	}
}

// detectScoring raises a Scored event when the ball is past a goal line.
// Leaving on the right credits the left player and vice versa.
func (e *Engine) detectScoring(view canvas.Canvas) {
	b := e.world.Ball
	if b == nil {
		return
	}

	switch x := b.Position[0]; {
	case x > view.HalfWidth():
		e.events.SendScored(Scored{Scorer: scores.Left})
	case x < -view.HalfWidth():
		e.events.SendScored(Scored{Scorer: scores.Right})
	}
}

// updateScore handles the tally side of every Scored event
func (e *Engine) updateScore() bool {
	evs := e.events.Scored()
	for _, ev := range evs {
		e.scores.Add(ev.Scorer)
		log.Printf("%s Player Scored! Score: %d-%d",
			ev.Scorer, e.scores.LeftScores, e.scores.RightScores)
	}
	return len(evs) > 0
}

// resetBall handles the ball side of every Scored event: back to the
// centre, served towards the side that just conceded.
func (e *Engine) resetBall() {
	b := e.world.Ball
	if b == nil {
		return
	}
	for _, ev := range e.events.Scored() {
		b.Serve(ev.Scorer.Opponent().Direction(), e.tuning.ServeY)
	}
}

func (e *Engine) updateScoreboard() {
	for _, board := range e.boards {
		board.UpdateScore(e.scores.LeftScores, e.scores.RightScores)
	}
}

// projectPositions hands every positioned entity to the render sinks
func (e *Engine) projectPositions() {
	if len(e.sinks) == 0 {
		return
	}

	frame := Frame{Tick: e.tick, Placements: make([]Placement, 0, 5)}
	w := e.world
	if w.Ball != nil {
		d := w.Ball.Radius * 2
		frame.Placements = append(frame.Placements, Placement{
			ID: BallID, Kind: KindBall, Position: w.Ball.Position, Size: mgl64.Vec2{d, d},
		})
	}
	if w.Left != nil {
		frame.Placements = append(frame.Placements, Placement{
			ID: LeftPaddleID, Kind: KindPaddle, Position: w.Left.Position, Size: mgl64.Vec2{w.Left.Width, w.Left.Height},
		})
	}
	if w.Right != nil {
		frame.Placements = append(frame.Placements, Placement{
			ID: RightPaddleID, Kind: KindPaddle, Position: w.Right.Position, Size: mgl64.Vec2{w.Right.Width, w.Right.Height},
		})
	}
	for i, g := range w.Gutters {
		frame.Placements = append(frame.Placements, Placement{
			ID: TopGutterID + EntityID(i), Kind: KindGutter, Position: g.Position, Size: g.Shape,
		})
	}

	for _, sink := range e.sinks {
		sink.Project(frame)
	}
}

func (e *Engine) playSounds() {
	if e.sounder == nil {
		return
	}
	for _, ev := range e.events.Bounced() {
		e.sounder.Bounce(ev.Surface)
	}
	for _, ev := range e.events.Scored() {
		e.sounder.Score(ev.Scorer)
	}
}
