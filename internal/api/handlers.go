// Package api exposes the model over REST for one-shot runs. Streaming and
// playback live in the ws package; this surface returns everything in one
// response for non-interactive clients.
package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dmw24/levelizedcostmodelUK/internal/dispatch"
	"github.com/dmw24/levelizedcostmodelUK/internal/lcoe"
	"github.com/dmw24/levelizedcostmodelUK/internal/params"
	"github.com/dmw24/levelizedcostmodelUK/internal/profile"
)

// SimulateRequest carries parameter overrides for one run. Omitted fields
// fall back to the defaults.
type SimulateRequest struct {
	Config params.Config `json:"config"`
	// IncludeHourly adds the five hourly flow arrays to the response.
	IncludeHourly bool `json:"include_hourly"`
}

// HourlySeries is the optional per-hour portion of a simulate response.
type HourlySeries struct {
	SolarUsed        []float64 `json:"solar_used_mw"`
	BatteryCharge    []float64 `json:"battery_charge_mw"`
	BatteryDischarge []float64 `json:"battery_discharge_mw"`
	GasOutput        []float64 `json:"gas_output_mw"`
	SolarCurtailed   []float64 `json:"solar_curtailed_mw"`
	SoC              []float64 `json:"soc_mwh"`
}

// SimulateResponse is the full output of one run.
type SimulateResponse struct {
	Summary SummaryBody   `json:"summary"`
	Costs   lcoe.Result   `json:"costs"`
	Hourly  *HourlySeries `json:"hourly,omitempty"`
}

type SummaryBody struct {
	SolarUsedMWh        float64 `json:"solar_used_mwh"`
	BatteryChargeMWh    float64 `json:"battery_charge_mwh"`
	BatteryDischargeMWh float64 `json:"battery_discharge_mwh"`
	GasOutputMWh        float64 `json:"gas_output_mwh"`
	SolarCurtailedMWh   float64 `json:"solar_curtailed_mwh"`
	DemandMWh           float64 `json:"demand_mwh"`
}

// Handler serves the REST endpoints against a fixed solar profile. Request
// overrides overlay onto the base configuration the server started with.
type Handler struct {
	profile *profile.Profile
	base    params.Config
}

func NewHandler(p *profile.Profile, base params.Config) *Handler {
	return &Handler{profile: p, base: base}
}

// Register mounts the routes on the router.
func (h *Handler) Register(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	v1 := r.Group("/api/v1")
	v1.GET("/defaults", h.Defaults)
	v1.POST("/simulate", h.Simulate)
}

// Defaults handles GET /api/v1/defaults.
func (h *Handler) Defaults(c *gin.Context) {
	c.JSON(http.StatusOK, h.base)
}

// Simulate handles POST /api/v1/simulate.
func (h *Handler) Simulate(c *gin.Context) {
	var req SimulateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": gin.H{
				"code":    "INVALID_REQUEST",
				"message": err.Error(),
			},
		})
		return
	}

	cfg := params.MergeConfig(h.base, req.Config)
	tech, econ := cfg.ToParams()

	run := dispatch.Simulate(h.profile, tech)
	costs := lcoe.Compute(run.Summary, tech, econ)

	resp := SimulateResponse{
		Summary: SummaryBody{
			SolarUsedMWh:        run.Summary.SolarUsedMWh,
			BatteryChargeMWh:    run.Summary.BatteryChargeMWh,
			BatteryDischargeMWh: run.Summary.BatteryDischargeMWh,
			GasOutputMWh:        run.Summary.GasOutputMWh,
			SolarCurtailedMWh:   run.Summary.SolarCurtailedMWh,
			DemandMWh:           run.Summary.DemandMWh,
		},
		Costs: costs,
	}
	if req.IncludeHourly {
		resp.Hourly = &HourlySeries{
			SolarUsed:        run.Flows.SolarUsed,
			BatteryCharge:    run.Flows.BatteryCharge,
			BatteryDischarge: run.Flows.BatteryDischarge,
			GasOutput:        run.Flows.GasOutput,
			SolarCurtailed:   run.Flows.SolarCurtailed,
			SoC:              run.Flows.SoC,
		}
	}
	c.JSON(http.StatusOK, resp)
}
