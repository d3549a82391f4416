package game

import "github.com/mo-shahab/pong-arcade/scores"

// Scored is raised when the ball leaves the field past a goal line
type Scored struct {
	Scorer scores.Side
}

// Bounced is raised for every obstacle the ball hits
type Bounced struct {
	Surface Surface
}

// Events is the per-tick broadcast queue. Readers get the whole slice and
// never consume it, so every listener sees every event of the tick. The
// engine clears it when the tick ends.
type Events struct {
	scored  []Scored
	bounced []Bounced
}

func (q *Events) SendScored(ev Scored)   { q.scored = append(q.scored, ev) }
func (q *Events) SendBounced(ev Bounced) { q.bounced = append(q.bounced, ev) }

func (q *Events) Scored() []Scored   { return q.scored }
func (q *Events) Bounced() []Bounced { return q.bounced }

func (q *Events) Clear() {
	q.scored = q.scored[:0]
	q.bounced = q.bounced[:0]
}
