// Package proto encodes the spectator wire messages described in
// pong.proto. The encoding is plain protobuf, written with protowire so
// the schema needs no generated code.
package proto

import (
	"errors"
	"fmt"
	"math"

	"google.golang.org/protobuf/encoding/protowire"
)

type MsgType int32

const (
	MsgType_frame MsgType = 0
	MsgType_score MsgType = 1
)

type Entity struct {
	Id   uint32
	Kind uint32
	X, Y float64
	W, H float64
}

type FrameMessage struct {
	Tick     uint64
	Entities []*Entity
}

type ScoreMessage struct {
	LeftScore  int32
	RightScore int32
}

// Message is the envelope; exactly one of Frame or Score is set
type Message struct {
	Type  MsgType
	Frame *FrameMessage
	Score *ScoreMessage
}

var ErrEmptyMessage = errors.New("message carries neither frame nor score")

func Marshal(m *Message) ([]byte, error) {
	var b []byte
	b = appendVarint(b, 1, uint64(m.Type))

	switch {
	case m.Frame != nil:
		b = protowire.AppendTag(b, 2, protowire.BytesType)
		b = protowire.AppendBytes(b, m.Frame.marshal())
	case m.Score != nil:
		b = protowire.AppendTag(b, 3, protowire.BytesType)
		b = protowire.AppendBytes(b, m.Score.marshal())
	default:
		return nil, ErrEmptyMessage
	}
	return b, nil
}

func Unmarshal(b []byte, m *Message) error {
	*m = Message{}
	return walk(b, func(num protowire.Number, typ protowire.Type, v []byte) (int, error) {
		switch {
		case num == 1 && typ == protowire.VarintType:
			x, n := protowire.ConsumeVarint(v)
			m.Type = MsgType(x)
			return n, nil
		case num == 2 && typ == protowire.BytesType:
			raw, n := protowire.ConsumeBytes(v)
			if n < 0 {
				return n, nil
			}
			m.Frame = &FrameMessage{}
			return n, m.Frame.unmarshal(raw)
		case num == 3 && typ == protowire.BytesType:
			raw, n := protowire.ConsumeBytes(v)
			if n < 0 {
				return n, nil
			}
			m.Score = &ScoreMessage{}
			return n, m.Score.unmarshal(raw)
		}
		return protowire.ConsumeFieldValue(num, typ, v), nil
	})
}

func (f *FrameMessage) marshal() []byte {
	var b []byte
	b = appendVarint(b, 1, f.Tick)
	for _, e := range f.Entities {
		b = protowire.AppendTag(b, 2, protowire.BytesType)
		b = protowire.AppendBytes(b, e.marshal())
	}
	return b
}

func (f *FrameMessage) unmarshal(b []byte) error {
	return walk(b, func(num protowire.Number, typ protowire.Type, v []byte) (int, error) {
		switch {
		case num == 1 && typ == protowire.VarintType:
			x, n := protowire.ConsumeVarint(v)
			f.Tick = x
			return n, nil
		case num == 2 && typ == protowire.BytesType:
			raw, n := protowire.ConsumeBytes(v)
			if n < 0 {
				return n, nil
			}
			e := &Entity{}
			f.Entities = append(f.Entities, e)
			return n, e.unmarshal(raw)
		}
		return protowire.ConsumeFieldValue(num, typ, v), nil
	})
}

func (e *Entity) marshal() []byte {
	var b []byte
	b = appendVarint(b, 1, uint64(e.Id))
	b = appendVarint(b, 2, uint64(e.Kind))
	b = appendDouble(b, 3, e.X)
	b = appendDouble(b, 4, e.Y)
	b = appendDouble(b, 5, e.W)
	b = appendDouble(b, 6, e.H)
	return b
}

func (e *Entity) unmarshal(b []byte) error {
	return walk(b, func(num protowire.Number, typ protowire.Type, v []byte) (int, error) {
		if typ == protowire.VarintType && (num == 1 || num == 2) {
			x, n := protowire.ConsumeVarint(v)
			if num == 1 {
				e.Id = uint32(x)
			} else {
				e.Kind = uint32(x)
			}
			return n, nil
		}
		if typ == protowire.Fixed64Type && num >= 3 && num <= 6 {
			x, n := protowire.ConsumeFixed64(v)
			d := math.Float64frombits(x)
			switch num {
			case 3:
				e.X = d
			case 4:
				e.Y = d
			case 5:
				e.W = d
			case 6:
				e.H = d
			}
			return n, nil
		}
		return protowire.ConsumeFieldValue(num, typ, v), nil
	})
}

func (s *ScoreMessage) marshal() []byte {
	var b []byte
	b = appendVarint(b, 1, uint64(int64(s.LeftScore)))
	b = appendVarint(b, 2, uint64(int64(s.RightScore)))
	return b
}

func (s *ScoreMessage) unmarshal(b []byte) error {
	return walk(b, func(num protowire.Number, typ protowire.Type, v []byte) (int, error) {
		if typ == protowire.VarintType && (num == 1 || num == 2) {
			x, n := protowire.ConsumeVarint(v)
			if num == 1 {
				s.LeftScore = int32(x)
			} else {
				s.RightScore = int32(x)
			}
			return n, nil
		}
		return protowire.ConsumeFieldValue(num, typ, v), nil
	})
}

// proto3 leaves zero scalars off the wire
func appendVarint(b []byte, num protowire.Number, v uint64) []byte {
	if v == 0 {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.VarintType)
	return protowire.AppendVarint(b, v)
}

func appendDouble(b []byte, num protowire.Number, v float64) []byte {
	if v == 0 && !math.Signbit(v) {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.Fixed64Type)
	return protowire.AppendFixed64(b, math.Float64bits(v))
}

// walk feeds each field to fn, which returns how many value bytes it used
func walk(b []byte, fn func(protowire.Number, protowire.Type, []byte) (int, error)) error {
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return fmt.Errorf("decode tag: %w", protowire.ParseError(n))
		}
		b = b[n:]

		m, err := fn(num, typ, b)
		if err != nil {
			return err
		}
		if m < 0 {
			return fmt.Errorf("decode field %d: %w", num, protowire.ParseError(m))
		}
		b = b[m:]
	}
	return nil
}
