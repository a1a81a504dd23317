package params

// MinValue is the positivity floor applied to every numeric parameter before
// it reaches the simulation or the cost engine. A blank form field arrives as
// zero; flooring it keeps lifetimes, efficiencies and capacities out of the
// denominators instead of producing NaN.
const MinValue = 1e-6

// Technical holds the sizing parameters of the modelled system.
// Units: MW for power, MWh for energy. Demand is a constant baseload, so an
// hour's energy in MWh equals the MW figure.
type Technical struct {
	DemandMW             float64
	SolarCapacityMW      float64
	BatteryCapacityMWh   float64
	BatteryDurationHours float64 // derives battery power for fixed O&M
	InverterRatio        float64 // DC nameplate / AC inverter limit
	GasCapacityMW        float64
}

// Resource holds the economic parameters of one supply resource.
// VarOMPerMWh, FuelPerMWh and Efficiency only apply to gas in practice but
// live on the shared struct so all three resources flow through one code path.
type Resource struct {
	CapexPerMW   float64 // per MW capacity (per MWh for the battery)
	FixedOMPerMW float64 // per MW capacity per year
	VarOMPerMWh  float64 // per MWh delivered
	FuelPerMWh   float64 // per MWh of fuel energy burned
	Efficiency   float64 // fraction (0,1]
	DiscountRate float64 // fraction
	LifetimeYrs  float64
}

// Economics bundles the per-resource economic parameters.
type Economics struct {
	Gas     Resource
	Solar   Resource
	Battery Resource
}

// floor raises v to MinValue. Negative values are treated the same as zero.
func floor(v float64) float64 {
	if v < MinValue {
		return MinValue
	}
	return v
}

// Floored returns a copy with every field raised to the positivity floor.
func (t Technical) Floored() Technical {
	return Technical{
		DemandMW:             floor(t.DemandMW),
		SolarCapacityMW:      floor(t.SolarCapacityMW),
		BatteryCapacityMWh:   floor(t.BatteryCapacityMWh),
		BatteryDurationHours: floor(t.BatteryDurationHours),
		InverterRatio:        floor(t.InverterRatio),
		GasCapacityMW:        floor(t.GasCapacityMW),
	}
}

// Floored returns a copy with divisor fields (efficiency, discount rate,
// lifetime) raised to the positivity floor. Cost rates are clamped at zero:
// a free resource is a legitimate input, a negative cost is not.
func (r Resource) Floored() Resource {
	out := r
	if out.CapexPerMW < 0 {
		out.CapexPerMW = 0
	}
	if out.FixedOMPerMW < 0 {
		out.FixedOMPerMW = 0
	}
	if out.VarOMPerMWh < 0 {
		out.VarOMPerMWh = 0
	}
	if out.FuelPerMWh < 0 {
		out.FuelPerMWh = 0
	}
	out.Efficiency = floor(out.Efficiency)
	if out.Efficiency > 1 {
		out.Efficiency = 1
	}
	if out.DiscountRate < 0 {
		out.DiscountRate = 0
	}
	out.LifetimeYrs = floor(out.LifetimeYrs)
	return out
}

// Floored applies Resource.Floored to all three resources.
func (e Economics) Floored() Economics {
	return Economics{
		Gas:     e.Gas.Floored(),
		Solar:   e.Solar.Floored(),
		Battery: e.Battery.Floored(),
	}
}

// BatteryPowerMW derives the battery's power rating from its energy capacity
// and duration, used to price its fixed O&M.
func (t Technical) BatteryPowerMW() float64 {
	return t.BatteryCapacityMWh / floor(t.BatteryDurationHours)
}

// DefaultTechnical returns the baseline system sizing: 1 GW of baseload met by
// gas sized to match, with oversized solar and a 4-hour battery.
func DefaultTechnical() Technical {
	return Technical{
		DemandMW:             1000,
		SolarCapacityMW:      3000,
		BatteryCapacityMWh:   8000,
		BatteryDurationHours: 4,
		InverterRatio:        1.2,
		GasCapacityMW:        1000,
	}
}

// DefaultEconomics returns baseline UK-flavoured cost assumptions (£).
func DefaultEconomics() Economics {
	return Economics{
		Gas: Resource{
			CapexPerMW:   600_000,
			FixedOMPerMW: 20_000,
			VarOMPerMWh:  3,
			FuelPerMWh:   25,
			Efficiency:   0.50,
			DiscountRate: 0.075,
			LifetimeYrs:  25,
		},
		Solar: Resource{
			CapexPerMW:   450_000,
			FixedOMPerMW: 10_000,
			Efficiency:   1,
			DiscountRate: 0.05,
			LifetimeYrs:  35,
		},
		Battery: Resource{
			CapexPerMW:   300_000, // per MWh of storage
			FixedOMPerMW: 10_000,  // per MW of derived power
			Efficiency:   1,
			DiscountRate: 0.05,
			LifetimeYrs:  15,
		},
	}
}
