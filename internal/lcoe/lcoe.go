// Package lcoe converts annual dispatch totals into annualized costs and
// levelized costs of energy per resource and for the system as a whole.
//
// Attribution policy: solar's denominator is all solar energy put to use
// (served directly plus routed into the battery, curtailment excluded), the
// battery's is its discharged energy, gas's is its output. A resource with
// zero attributed energy gets a levelized cost of zero but still contributes
// its annual cost to the system total.
package lcoe

import (
	"math"

	"github.com/dmw24/levelizedcostmodelUK/internal/dispatch"
	"github.com/dmw24/levelizedcostmodelUK/internal/params"
)

// ResourceCost is the annualized cost breakdown of one supply resource.
type ResourceCost struct {
	AnnualCapex   float64 `json:"annual_capex"`
	AnnualFixedOM float64 `json:"annual_fixed_om"`
	AnnualVarOM   float64 `json:"annual_var_om"`
	AnnualFuel    float64 `json:"annual_fuel"`
	AnnualTotal   float64 `json:"annual_total"`

	// EnergyMWh is the annual energy attributed to the resource.
	EnergyMWh float64 `json:"energy_mwh"`
	// LCOEPerMWh is AnnualTotal / EnergyMWh, zero when no energy is attributed.
	LCOEPerMWh float64 `json:"lcoe_per_mwh"`
}

// Result is the full cost output of one run.
type Result struct {
	Gas     ResourceCost `json:"gas"`
	Solar   ResourceCost `json:"solar"`
	Battery ResourceCost `json:"battery"`

	TotalAnnualCost float64 `json:"total_annual_cost"`
	DemandMWh       float64 `json:"demand_mwh"`
	SystemLCOE      float64 `json:"system_lcoe_per_mwh"`
}

// CRF is the capital recovery factor: the constant annual payment, per unit
// of capital, that amortizes the capital over the lifetime at the discount
// rate. Zero rate is a removable singularity of the general formula and is
// handled as straight-line recovery; rates small enough that (1+rate)^years
// rounds to 1 hit the same singularity in floating point and take the same
// branch. For growth factors that overflow, the formula tends to the rate
// itself, so that limit is returned instead of Inf/Inf.
func CRF(rate, years float64) float64 {
	if years < params.MinValue {
		years = params.MinValue
	}
	g := math.Pow(1+rate, years)
	if g == 1 {
		return 1 / years
	}
	if math.IsInf(g, 1) {
		return rate
	}
	return rate * g / (g - 1)
}

// Compute derives the per-resource and system levelized costs from a
// dispatch summary. Inputs are floored before any division, so valid
// (including degenerate) configurations never produce NaN or infinities.
func Compute(sum dispatch.Summary, tech params.Technical, econ params.Economics) Result {
	tech = tech.Floored()
	econ = econ.Floored()

	solarToBattery := sum.SolarUsedMWh + sum.BatteryChargeMWh

	gas := resourceCost(econ.Gas, tech.GasCapacityMW, sum.GasOutputMWh, sum.GasOutputMWh, true)
	solar := resourceCost(econ.Solar, tech.SolarCapacityMW, 0, solarToBattery, false)
	battery := resourceCost(econ.Battery, tech.BatteryCapacityMWh, 0, sum.BatteryDischargeMWh, false)
	// Battery fixed O&M is priced on derived power, not energy capacity.
	battery.AnnualFixedOM = tech.BatteryPowerMW() * econ.Battery.FixedOMPerMW
	battery.AnnualTotal = battery.AnnualCapex + battery.AnnualFixedOM
	battery.LCOEPerMWh = levelize(battery.AnnualTotal, battery.EnergyMWh)

	total := gas.AnnualTotal + solar.AnnualTotal + battery.AnnualTotal

	res := Result{
		Gas:             gas,
		Solar:           solar,
		Battery:         battery,
		TotalAnnualCost: total,
		DemandMWh:       sum.DemandMWh,
	}
	if sum.DemandMWh > 0 {
		res.SystemLCOE = total / sum.DemandMWh
	}
	return res
}

// resourceCost annualizes one resource's capex and operating costs.
// outputMWh drives the variable O&M and fuel terms, attributedMWh the
// levelized cost denominator; they coincide for gas.
func resourceCost(r params.Resource, capacity, outputMWh, attributedMWh float64, burnsFuel bool) ResourceCost {
	c := ResourceCost{
		AnnualCapex:   capacity * r.CapexPerMW * CRF(r.DiscountRate, r.LifetimeYrs),
		AnnualFixedOM: capacity * r.FixedOMPerMW,
		EnergyMWh:     attributedMWh,
	}
	if burnsFuel {
		c.AnnualVarOM = outputMWh * r.VarOMPerMWh
		// Dividing by efficiency converts delivered electricity into fuel
		// energy burned; efficiency is floored upstream.
		c.AnnualFuel = outputMWh / r.Efficiency * r.FuelPerMWh
	}
	c.AnnualTotal = c.AnnualCapex + c.AnnualFixedOM + c.AnnualVarOM + c.AnnualFuel
	c.LCOEPerMWh = levelize(c.AnnualTotal, attributedMWh)
	return c
}

// levelize divides annual cost by attributed energy, defining the ratio as
// zero when nothing is attributed.
func levelize(annualCost, energyMWh float64) float64 {
	if energyMWh <= 0 {
		return 0
	}
	return annualCost / energyMWh
}
