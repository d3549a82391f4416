// wsserver/handler.go

package wsserver

import (
	"log"

	"github.com/mo-shahab/pong-arcade/game"
	pb "github.com/mo-shahab/pong-arcade/proto"
)

// Project implements game.RenderSink
func (wsh *WebSocketHandler) Project(frame game.Frame) {
	if wsh.Count() == 0 {
		return
	}

	entities := make([]*pb.Entity, 0, len(frame.Placements))
	for _, p := range frame.Placements {
		entities = append(entities, &pb.Entity{
			Id:   uint32(p.ID),
			Kind: uint32(p.Kind),
			X:    p.Position[0],
			Y:    p.Position[1],
			W:    p.Size[0],
			H:    p.Size[1],
		})
	}

	message, err := pb.Marshal(&pb.Message{
		Type:  pb.MsgType_frame,
		Frame: &pb.FrameMessage{Tick: frame.Tick, Entities: entities},
	})
	if err != nil {
		log.Printf("Failed to encode frame message: %v", err)
		return
	}

	wsh.broadcastToAll(message)
}

// UpdateScore implements game.Scoreboard. The latest tally is kept so a
// spectator joining mid-game sees it straight away.
func (wsh *WebSocketHandler) UpdateScore(left, right int) {
	encoded, err := pb.Marshal(&pb.Message{
		Type:  pb.MsgType_score,
		Score: &pb.ScoreMessage{LeftScore: int32(left), RightScore: int32(right)},
	})
	if err != nil {
		log.Printf("Failed to marshal score message: %v", err)
		return
	}

	wsh.Mu.Lock()
	wsh.lastScore = encoded
	wsh.Mu.Unlock()

	wsh.broadcastToAll(encoded)
}
