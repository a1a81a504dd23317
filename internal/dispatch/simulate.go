// Package dispatch simulates, hour by hour over one year, how a constant
// baseload demand is met by solar, a battery and a dispatchable gas plant in
// strict merit order: solar direct, then battery discharge, then gas.
package dispatch

import (
	"math"

	"github.com/dmw24/levelizedcostmodelUK/internal/params"
	"github.com/dmw24/levelizedcostmodelUK/internal/profile"
)

// Flows holds one value per hour per channel. For every hour:
//
//	SolarUsed + BatteryDischarge + GasOutput == demand
//	SolarUsed + BatteryCharge + SolarCurtailed == available solar after clipping
type Flows struct {
	SolarUsed        []float64
	BatteryCharge    []float64
	BatteryDischarge []float64
	GasOutput        []float64
	SolarCurtailed   []float64

	// SoC is the battery state of charge at the end of each hour (MWh).
	SoC []float64
}

// Summary holds the annual totals of each flow channel (MWh).
type Summary struct {
	SolarUsedMWh        float64
	BatteryChargeMWh    float64
	BatteryDischargeMWh float64
	GasOutputMWh        float64
	SolarCurtailedMWh   float64
	DemandMWh           float64
}

// Result bundles the hourly flows and the annual summary of one run.
type Result struct {
	Flows   Flows
	Summary Summary
}

// Simulate runs the hourly dispatch loop. It is a pure function of its
// inputs: each call allocates fresh output arrays and carries no state across
// runs. Gas is deliberately not capped at its nameplate capacity: if gas is
// sized below demand the shortfall still shows up as gas output, which keeps
// the energy balance closed. Capacity only matters to the cost engine.
func Simulate(p *profile.Profile, tech params.Technical) Result {
	tech = tech.Floored()

	n := profile.HoursPerYear
	flows := Flows{
		SolarUsed:        make([]float64, n),
		BatteryCharge:    make([]float64, n),
		BatteryDischarge: make([]float64, n),
		GasOutput:        make([]float64, n),
		SolarCurtailed:   make([]float64, n),
		SoC:              make([]float64, n),
	}

	demand := tech.DemandMW
	maxACOutput := tech.SolarCapacityMW / tech.InverterRatio
	battery := NewBattery(tech.BatteryCapacityMWh)

	var sum Summary
	for h := 0; h < n; h++ {
		factor := p[h]
		if math.IsNaN(factor) || factor < 0 {
			factor = 0
		}

		// Inverter clipping of the DC-oversized array.
		available := factor * tech.SolarCapacityMW
		if available > maxACOutput {
			available = maxACOutput
		}

		solarUsed := math.Min(available, demand)
		surplus := available - solarUsed
		remaining := demand - solarUsed

		charged := battery.Charge(surplus)
		curtailed := surplus - charged

		discharged := battery.Discharge(remaining)
		gas := remaining - discharged

		flows.SolarUsed[h] = solarUsed
		flows.BatteryCharge[h] = charged
		flows.BatteryDischarge[h] = discharged
		flows.GasOutput[h] = gas
		flows.SolarCurtailed[h] = curtailed
		flows.SoC[h] = battery.SoCMWh

		sum.SolarUsedMWh += solarUsed
		sum.BatteryChargeMWh += charged
		sum.BatteryDischargeMWh += discharged
		sum.GasOutputMWh += gas
		sum.SolarCurtailedMWh += curtailed
	}
	sum.DemandMWh = demand * float64(n)

	return Result{Flows: flows, Summary: sum}
}
