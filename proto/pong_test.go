package proto

import (
	"bytes"
	"errors"
	"testing"

	"google.golang.org/protobuf/encoding/protowire"
)

func TestScoreWireBytes(t *testing.T) {
	got, err := Marshal(&Message{
		Type:  MsgType_score,
		Score: &ScoreMessage{LeftScore: 2, RightScore: 3},
	})
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	// type=1, then field 3 length-delimited {1:2, 2:3}
	want := []byte{0x08, 0x01, 0x1a, 0x04, 0x08, 0x02, 0x10, 0x03}
	if !bytes.Equal(got, want) {
		t.Fatalf("wire bytes = % x, want % x", got, want)
	}
}

func TestFrameRoundTrip(t *testing.T) {
	in := &Message{
		Type: MsgType_frame,
		Frame: &FrameMessage{
			Tick: 42,
			Entities: []*Entity{
				{Id: 1, Kind: 0, X: -12.5, Y: 7, W: 10, H: 10},
				{Id: 3, Kind: 1, X: 350, Y: 0, W: 10, H: 50},
			},
		},
	}

	b, err := Marshal(in)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	var out Message
	if err := Unmarshal(b, &out); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if out.Type != MsgType_frame || out.Frame == nil || out.Score != nil {
		t.Fatalf("decoded envelope = %+v", out)
	}
	if out.Frame.Tick != 42 || len(out.Frame.Entities) != 2 {
		t.Fatalf("decoded frame = %+v", out.Frame)
	}
	for i, e := range out.Frame.Entities {
		if *e != *in.Frame.Entities[i] {
			t.Errorf("entity %d = %+v, want %+v", i, *e, *in.Frame.Entities[i])
		}
	}
}

func TestUnmarshalSkipsUnknownFields(t *testing.T) {
	b, _ := Marshal(&Message{Type: MsgType_score, Score: &ScoreMessage{LeftScore: 1}})
	b = protowire.AppendTag(b, 15, protowire.BytesType)
	b = protowire.AppendString(b, "spectator count")

	var out Message
	if err := Unmarshal(b, &out); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if out.Score == nil || out.Score.LeftScore != 1 {
		t.Fatalf("decoded score = %+v", out.Score)
	}
}

func TestUnmarshalTruncated(t *testing.T) {
	b, _ := Marshal(&Message{Type: MsgType_score, Score: &ScoreMessage{LeftScore: 9, RightScore: 4}})

	var out Message
	if err := Unmarshal(b[:len(b)-2], &out); err == nil {
		t.Fatalf("expected an error for truncated input")
	}
}

func TestMarshalEmpty(t *testing.T) {
	if _, err := Marshal(&Message{}); !errors.Is(err, ErrEmptyMessage) {
		t.Fatalf("err = %v, want ErrEmptyMessage", err)
	}
}
