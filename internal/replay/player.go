// Package replay plays a completed dispatch run back hour by hour at a
// configurable speed, so a frontend can animate the year instead of receiving
// it as one blob. The simulation itself is instantaneous; the player only
// paces the already-computed flows.
package replay

import (
	"sync"
	"time"

	"github.com/dmw24/levelizedcostmodelUK/internal/dispatch"
)

// State describes the player's position within the year.
type State struct {
	Hour    int     `json:"hour"`
	Speed   float64 `json:"speed"` // simulated hours per second
	Running bool    `json:"running"`
}

// HourPoint is one hour of flows as emitted to callbacks.
type HourPoint struct {
	Hour             int     `json:"hour"`
	SolarUsed        float64 `json:"solar_used_mw"`
	BatteryCharge    float64 `json:"battery_charge_mw"`
	BatteryDischarge float64 `json:"battery_discharge_mw"`
	GasOutput        float64 `json:"gas_output_mw"`
	SolarCurtailed   float64 `json:"solar_curtailed_mw"`
	SoCMWh           float64 `json:"soc_mwh"`
}

// Callback receives playback events.
type Callback interface {
	OnState(state State)
	OnHour(point HourPoint)
	OnFinished(summary dispatch.Summary)
}

// Player steps through a run's hourly flows on a ticker.
type Player struct {
	mu       sync.Mutex
	run      dispatch.Result
	callback Callback

	hour    int
	speed   float64
	running bool
	stopCh  chan struct{}
}

const tickInterval = 100 * time.Millisecond

// New creates a paused player at hour zero.
func New(run dispatch.Result, cb Callback) *Player {
	return &Player{
		run:      run,
		callback: cb,
		speed:    24, // one simulated day per second
	}
}

// SetRun replaces the run being played and rewinds to hour zero.
func (p *Player) SetRun(run dispatch.Result) {
	p.mu.Lock()
	p.run = run
	p.hour = 0
	p.mu.Unlock()
	p.broadcastState()
}

// State returns the current playback state.
func (p *Player) State() State {
	p.mu.Lock()
	defer p.mu.Unlock()
	return State{Hour: p.hour, Speed: p.speed, Running: p.running}
}

// Start begins playback.
func (p *Player) Start() {
	p.mu.Lock()
	if p.running {
		p.mu.Unlock()
		return
	}
	p.running = true
	p.stopCh = make(chan struct{})
	p.mu.Unlock()

	p.broadcastState()
	go p.loop()
}

// Pause stops playback without losing position.
func (p *Player) Pause() {
	p.mu.Lock()
	if !p.running {
		p.mu.Unlock()
		return
	}
	p.running = false
	close(p.stopCh)
	p.mu.Unlock()

	p.broadcastState()
}

// SetSpeed sets the playback speed in simulated hours per second.
func (p *Player) SetSpeed(speed float64) {
	if speed < 1 {
		speed = 1
	}
	if speed > 8760 {
		speed = 8760
	}
	p.mu.Lock()
	p.speed = speed
	p.mu.Unlock()

	p.broadcastState()
}

// Seek jumps to the given hour of the year.
func (p *Player) Seek(hour int) {
	p.mu.Lock()
	if hour < 0 {
		hour = 0
	}
	if hour > len(p.run.Flows.SolarUsed) {
		hour = len(p.run.Flows.SolarUsed)
	}
	p.hour = hour
	p.mu.Unlock()
	p.broadcastState()
}

// Step advances playback by n hours and emits their points. Deterministic;
// does not require Start().
func (p *Player) Step(n int) {
	points, finished, summary := p.advance(n)
	for _, pt := range points {
		p.callback.OnHour(pt)
	}
	p.broadcastState()
	if finished {
		p.callback.OnFinished(summary)
	}
}

func (p *Player) loop() {
	ticker := time.NewTicker(tickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-p.stopCh:
			return
		case <-ticker.C:
			if p.tick() {
				return
			}
		}
	}
}

// tick advances one frame. Returns true when the year is fully played.
func (p *Player) tick() bool {
	p.mu.Lock()
	n := int(p.speed * tickInterval.Seconds())
	if n < 1 {
		n = 1
	}
	p.mu.Unlock()

	points, finished, summary := p.advance(n)
	for _, pt := range points {
		p.callback.OnHour(pt)
	}
	p.broadcastState()

	if finished {
		p.mu.Lock()
		p.running = false
		close(p.stopCh)
		p.mu.Unlock()
		p.broadcastState()
		p.callback.OnFinished(summary)
		return true
	}
	return false
}

// advance moves the cursor n hours forward and returns the emitted points.
func (p *Player) advance(n int) (points []HourPoint, finished bool, summary dispatch.Summary) {
	p.mu.Lock()
	defer p.mu.Unlock()

	total := len(p.run.Flows.SolarUsed)
	end := p.hour + n
	if end >= total {
		end = total
		finished = p.hour < total // emit OnFinished once
	}

	for h := p.hour; h < end; h++ {
		points = append(points, HourPoint{
			Hour:             h,
			SolarUsed:        p.run.Flows.SolarUsed[h],
			BatteryCharge:    p.run.Flows.BatteryCharge[h],
			BatteryDischarge: p.run.Flows.BatteryDischarge[h],
			GasOutput:        p.run.Flows.GasOutput[h],
			SolarCurtailed:   p.run.Flows.SolarCurtailed[h],
			SoCMWh:           p.run.Flows.SoC[h],
		})
	}
	p.hour = end
	summary = p.run.Summary
	return points, finished, summary
}

func (p *Player) broadcastState() {
	p.callback.OnState(p.State())
}
