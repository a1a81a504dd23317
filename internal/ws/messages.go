package ws

import (
	"encoding/json"

	"github.com/dmw24/levelizedcostmodelUK/internal/dispatch"
	"github.com/dmw24/levelizedcostmodelUK/internal/params"
)

// Envelope wraps all WebSocket messages with a type discriminator.
type Envelope struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// Message type constants
const (
	// Client -> Server
	TypeModelRun     = "model:run"
	TypePlayStart    = "play:start"
	TypePlayPause    = "play:pause"
	TypePlaySetSpeed = "play:set_speed"
	TypePlaySeek     = "play:seek"

	// Server -> Client
	TypePlayState     = "play:state"
	TypeFlowsHour     = "flows:hour"
	TypeRunSummary    = "run:summary"
	TypeRunCosts      = "run:costs"
	TypeModelDefaults = "model:defaults"
)

// Client -> Server payloads

// ModelRunPayload carries parameter overrides for a run; omitted fields fall
// back to the defaults, exactly like the YAML config overlay.
type ModelRunPayload struct {
	Config params.Config `json:"config"`
}

type SetSpeedPayload struct {
	Speed float64 `json:"speed"`
}

type SeekPayload struct {
	Hour int `json:"hour"`
}

// Server -> Client payloads

type SummaryPayload struct {
	SolarUsedMWh        float64 `json:"solar_used_mwh"`
	BatteryChargeMWh    float64 `json:"battery_charge_mwh"`
	BatteryDischargeMWh float64 `json:"battery_discharge_mwh"`
	GasOutputMWh        float64 `json:"gas_output_mwh"`
	SolarCurtailedMWh   float64 `json:"solar_curtailed_mwh"`
	DemandMWh           float64 `json:"demand_mwh"`
}

func NewEnvelope(msgType string, payload any) ([]byte, error) {
	var raw json.RawMessage
	if payload != nil {
		var err error
		raw, err = json.Marshal(payload)
		if err != nil {
			return nil, err
		}
	}
	return json.Marshal(Envelope{Type: msgType, Payload: raw})
}

// SummaryFromRun converts dispatch totals into the wire payload.
func SummaryFromRun(s dispatch.Summary) SummaryPayload {
	return SummaryPayload{
		SolarUsedMWh:        s.SolarUsedMWh,
		BatteryChargeMWh:    s.BatteryChargeMWh,
		BatteryDischargeMWh: s.BatteryDischargeMWh,
		GasOutputMWh:        s.GasOutputMWh,
		SolarCurtailedMWh:   s.SolarCurtailedMWh,
		DemandMWh:           s.DemandMWh,
	}
}
