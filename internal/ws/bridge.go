package ws

import (
	"log"

	"github.com/dmw24/levelizedcostmodelUK/internal/dispatch"
	"github.com/dmw24/levelizedcostmodelUK/internal/replay"
)

// Bridge implements replay.Callback and broadcasts playback events to the
// WebSocket hub. replay.State and replay.HourPoint carry JSON tags and go on
// the wire unchanged.
type Bridge struct {
	hub *Hub
}

func NewBridge(hub *Hub) *Bridge {
	return &Bridge{hub: hub}
}

func (b *Bridge) OnState(s replay.State) {
	msg, err := NewEnvelope(TypePlayState, s)
	if err != nil {
		log.Printf("Error marshaling play state: %v", err)
		return
	}
	b.hub.Broadcast(msg)
}

func (b *Bridge) OnHour(pt replay.HourPoint) {
	msg, err := NewEnvelope(TypeFlowsHour, pt)
	if err != nil {
		log.Printf("Error marshaling hour point: %v", err)
		return
	}
	b.hub.Broadcast(msg)
}

func (b *Bridge) OnFinished(sum dispatch.Summary) {
	msg, err := NewEnvelope(TypeRunSummary, SummaryFromRun(sum))
	if err != nil {
		log.Printf("Error marshaling summary: %v", err)
		return
	}
	b.hub.Broadcast(msg)
}
