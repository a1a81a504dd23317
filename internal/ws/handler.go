package ws

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/gorilla/websocket"

	"github.com/dmw24/levelizedcostmodelUK/internal/dispatch"
	"github.com/dmw24/levelizedcostmodelUK/internal/lcoe"
	"github.com/dmw24/levelizedcostmodelUK/internal/params"
	"github.com/dmw24/levelizedcostmodelUK/internal/profile"
	"github.com/dmw24/levelizedcostmodelUK/internal/replay"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Handler manages WebSocket connections, runs the model on request and
// routes playback commands to the player.
type Handler struct {
	hub     *Hub
	player  *replay.Player
	profile *profile.Profile
	base    params.Config
}

func NewHandler(hub *Hub, player *replay.Player, p *profile.Profile, base params.Config) *Handler {
	return &Handler{hub: hub, player: player, profile: p, base: base}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("WebSocket upgrade error: %v", err)
		return
	}

	client := &Client{
		hub:  h.hub,
		conn: conn,
		send: make(chan []byte, 256),
	}

	h.hub.Register(client)
	go client.writePump()

	// Send the defaults and the current playback state so the client can
	// populate its form and position its chart cursor.
	h.sendDefaults(client)
	h.sendPlayState(client)

	h.readPump(client)
}

func (h *Handler) readPump(c *Client) {
	defer func() {
		h.hub.Unregister(c)
		c.conn.Close()
	}()

	for {
		_, msg, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("WebSocket read error: %v", err)
			}
			return
		}

		h.handleMessage(msg)
	}
}

func (h *Handler) handleMessage(msg []byte) {
	var env Envelope
	if err := json.Unmarshal(msg, &env); err != nil {
		log.Printf("Invalid message: %v", err)
		return
	}

	switch env.Type {
	case TypeModelRun:
		var p ModelRunPayload
		if err := json.Unmarshal(env.Payload, &p); err != nil {
			log.Printf("Invalid run payload: %v", err)
			return
		}
		h.runModel(p.Config)

	case TypePlayStart:
		h.player.Start()

	case TypePlayPause:
		h.player.Pause()

	case TypePlaySetSpeed:
		var p SetSpeedPayload
		if err := json.Unmarshal(env.Payload, &p); err != nil {
			log.Printf("Invalid set_speed payload: %v", err)
			return
		}
		h.player.SetSpeed(p.Speed)

	case TypePlaySeek:
		var p SeekPayload
		if err := json.Unmarshal(env.Payload, &p); err != nil {
			log.Printf("Invalid seek payload: %v", err)
			return
		}
		h.player.Seek(p.Hour)

	default:
		log.Printf("Unknown message type: %s", env.Type)
	}
}

// runModel runs the simulation and cost engine with the given overrides and
// broadcasts the results. The run itself is instantaneous; the player is
// rewound so clients can animate the new year.
func (h *Handler) runModel(overrides params.Config) {
	cfg := params.MergeConfig(h.base, overrides)
	tech, econ := cfg.ToParams()

	run := dispatch.Simulate(h.profile, tech)
	costs := lcoe.Compute(run.Summary, tech, econ)

	h.player.Pause()
	h.player.SetRun(run)

	h.broadcast(TypeRunSummary, SummaryFromRun(run.Summary))
	h.broadcast(TypeRunCosts, costs)
}

func (h *Handler) broadcast(msgType string, payload any) {
	msg, err := NewEnvelope(msgType, payload)
	if err != nil {
		log.Printf("Error marshaling %s: %v", msgType, err)
		return
	}
	h.hub.Broadcast(msg)
}

func (h *Handler) sendDefaults(c *Client) {
	msg, err := NewEnvelope(TypeModelDefaults, h.base)
	if err != nil {
		log.Printf("Error marshaling defaults: %v", err)
		return
	}
	h.hub.Send(c, msg)
}

func (h *Handler) sendPlayState(c *Client) {
	msg, err := NewEnvelope(TypePlayState, h.player.State())
	if err != nil {
		log.Printf("Error marshaling play state: %v", err)
		return
	}
	h.hub.Send(c, msg)
}
