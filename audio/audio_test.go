package audio

import (
	"testing"

	"github.com/gopxl/beep"
	"github.com/mo-shahab/pong-arcade/game"
	"github.com/mo-shahab/pong-arcade/scores"
)

func testPlayer(played *[]beep.Streamer) *Player {
	return &Player{
		rate:   beep.SampleRate(44100),
		volume: 0.5,
		play:   func(s beep.Streamer) { *played = append(*played, s) },
	}
}

func drain(t *testing.T, s beep.Streamer) int {
	t.Helper()
	buf := make([][2]float64, 512)
	total := 0
	for {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			if buf[i][0] < -1 || buf[i][0] > 1 {
				t.Fatalf("sample %d out of range: %f", total+i, buf[i][0])
			}
		}
		total += n
		if !ok {
			return total
		}
	}
}

func TestCueLengths(t *testing.T) {
	var played []beep.Streamer
	p := testPlayer(&played)

	tests := []struct {
		cue  Cue
		want int
	}{
		{CueWall, 1764},   // 40ms at 44.1kHz
		{CuePaddle, 2205}, // 50ms
		{CueScore, 7938},  // two 90ms notes
	}
	for _, tt := range tests {
		s, err := p.Streamer(tt.cue)
		if err != nil {
			t.Fatalf("Streamer(%d): %v", tt.cue, err)
		}
		if got := drain(t, s); got != tt.want {
			t.Errorf("cue %d streamed %d samples, want %d", tt.cue, got, tt.want)
		}
	}

	if _, err := p.Streamer(Cue(99)); err == nil {
		t.Fatalf("expected an error for an unknown cue")
	}
}

func TestSounderPlaysCues(t *testing.T) {
	var played []beep.Streamer
	p := testPlayer(&played)

	p.Bounce(game.Wall)
	p.Bounce(game.PaddleSurface)
	p.Score(scores.Left)

	if len(played) != 3 {
		t.Fatalf("played %d cues, want 3", len(played))
	}
	if got := drain(t, played[1]); got != 2205 {
		t.Fatalf("paddle cue streamed %d samples, want 2205", got)
	}
}

func TestNilPlayerIsSilent(t *testing.T) {
	var p *Player
	p.Play(CueWall)
}

func TestZeroVolumeIsSilent(t *testing.T) {
	var played []beep.Streamer
	p := testPlayer(&played)
	p.volume = 0

	s, err := p.Streamer(CueWall)
	if err != nil {
		t.Fatal(err)
	}
	buf := make([][2]float64, 64)
	n, _ := s.Stream(buf)
	for i := 0; i < n; i++ {
		if buf[i][0] != 0 || buf[i][1] != 0 {
			t.Fatalf("sample %d = %v, want silence", i, buf[i])
		}
	}
}
