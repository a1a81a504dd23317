package ws

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmw24/levelizedcostmodelUK/internal/dispatch"
	"github.com/dmw24/levelizedcostmodelUK/internal/lcoe"
	"github.com/dmw24/levelizedcostmodelUK/internal/params"
	"github.com/dmw24/levelizedcostmodelUK/internal/profile"
	"github.com/dmw24/levelizedcostmodelUK/internal/replay"
)

func newTestHandler() (*Handler, *Client) {
	hub := NewHub()
	client := &Client{hub: hub, send: make(chan []byte, 256)}
	hub.Register(client)

	prof := profile.Constant(0.5)
	run := dispatch.Simulate(prof, params.DefaultTechnical())
	player := replay.New(run, NewBridge(hub))
	return NewHandler(hub, player, prof, params.DefaultConfig()), client
}

// drainUntil reads envelopes until one of the wanted type arrives.
func drainUntil(t *testing.T, c *Client, msgType string) Envelope {
	t.Helper()
	for i := 0; i < 64; i++ {
		select {
		case msg := <-c.send:
			var env Envelope
			require.NoError(t, json.Unmarshal(msg, &env))
			if env.Type == msgType {
				return env
			}
		default:
			t.Fatalf("no %s message received", msgType)
		}
	}
	t.Fatalf("no %s message received", msgType)
	return Envelope{}
}

func TestHandler_ModelRunBroadcastsSummaryAndCosts(t *testing.T) {
	h, client := newTestHandler()

	payload, err := json.Marshal(ModelRunPayload{})
	require.NoError(t, err)
	msg, err := json.Marshal(Envelope{Type: TypeModelRun, Payload: payload})
	require.NoError(t, err)

	h.handleMessage(msg)

	env := drainUntil(t, client, TypeRunSummary)
	var sum SummaryPayload
	require.NoError(t, json.Unmarshal(env.Payload, &sum))
	assert.InDelta(t, 8_760_000, sum.DemandMWh, 1)

	env = drainUntil(t, client, TypeRunCosts)
	var costs lcoe.Result
	require.NoError(t, json.Unmarshal(env.Payload, &costs))
	assert.Greater(t, costs.SystemLCOE, 0.0)
}

func TestHandler_ModelRunAppliesOverrides(t *testing.T) {
	h, client := newTestHandler()

	var overrides params.Config
	overrides.Technical.DemandMW = 500

	payload, err := json.Marshal(ModelRunPayload{Config: overrides})
	require.NoError(t, err)
	msg, err := json.Marshal(Envelope{Type: TypeModelRun, Payload: payload})
	require.NoError(t, err)

	h.handleMessage(msg)

	env := drainUntil(t, client, TypeRunSummary)
	var sum SummaryPayload
	require.NoError(t, json.Unmarshal(env.Payload, &sum))
	assert.InDelta(t, 500*profile.HoursPerYear, sum.DemandMWh, 1)
}

func TestHandler_PlaySeekBroadcastsState(t *testing.T) {
	h, client := newTestHandler()

	payload, err := json.Marshal(SeekPayload{Hour: 240})
	require.NoError(t, err)
	msg, err := json.Marshal(Envelope{Type: TypePlaySeek, Payload: payload})
	require.NoError(t, err)

	h.handleMessage(msg)

	env := drainUntil(t, client, TypePlayState)
	var st replay.State
	require.NoError(t, json.Unmarshal(env.Payload, &st))
	assert.Equal(t, 240, st.Hour)
}

func TestHandler_InvalidMessageIgnored(t *testing.T) {
	h, client := newTestHandler()

	h.handleMessage([]byte("not json"))
	h.handleMessage([]byte(`{"type":"model:run","payload":"bad"}`))

	select {
	case msg := <-client.send:
		t.Fatalf("unexpected message %s", msg)
	default:
	}
}
