// Package audio plays short synthesized cues for bounces and points.
package audio

import (
	"fmt"
	"log"
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
	"github.com/mo-shahab/pong-arcade/config"
	"github.com/mo-shahab/pong-arcade/game"
	"github.com/mo-shahab/pong-arcade/scores"
)

// Cue names a sound effect
type Cue int

const (
	CueWall Cue = iota
	CuePaddle
	CueScore
)

const (
	wallDuration   = 40 * time.Millisecond
	paddleDuration = 50 * time.Millisecond
	noteDuration   = 90 * time.Millisecond
)

// Player implements game.Sounder on top of the beep speaker
type Player struct {
	rate   beep.SampleRate
	volume float64
	play   func(beep.Streamer)
}

// Open initialises the speaker. A failure leaves the game silent; the
// caller decides whether to log and continue.
func Open(cfg config.AudioConfig) (*Player, error) {
	rate := beep.SampleRate(cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(time.Second/10)); err != nil {
		return nil, fmt.Errorf("init speaker: %w", err)
	}
	return &Player{
		rate:   rate,
		volume: cfg.Volume,
		play:   func(s beep.Streamer) { speaker.Play(s) },
	}, nil
}

func (p *Player) Close() {
	speaker.Close()
}

func (p *Player) Bounce(surface game.Surface) {
	if surface == game.PaddleSurface {
		p.Play(CuePaddle)
		return
	}
	p.Play(CueWall)
}

func (p *Player) Score(scorer scores.Side) {
	p.Play(CueScore)
}

func (p *Player) Play(cue Cue) {
	if p == nil || p.play == nil {
		return
	}
	s, err := p.Streamer(cue)
	if err != nil {
		log.Printf("Audio cue %d: %v", cue, err)
		return
	}
	p.play(s)
}

// Streamer builds a fresh, finite streamer for the cue
func (p *Player) Streamer(cue Cue) (beep.Streamer, error) {
	switch cue {
	case CueWall:
		return p.tone(440, wallDuration)
	case CuePaddle:
		return p.tone(660, paddleDuration)
	case CueScore:
		low, err := p.tone(523.25, noteDuration)
		if err != nil {
			return nil, err
		}
		high, err := p.tone(783.99, noteDuration)
		if err != nil {
			return nil, err
		}
		return beep.Seq(low, high), nil
	}
	return nil, fmt.Errorf("unknown cue %d", cue)
}

func (p *Player) tone(freq float64, d time.Duration) (beep.Streamer, error) {
	sine, err := generators.SineTone(p.rate, freq)
	if err != nil {
		return nil, err
	}
	return newVolume(beep.Take(p.rate.N(d), sine), p.volume), nil
}

// math.Log2(0) is -Inf, so zero volume becomes silence
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}
