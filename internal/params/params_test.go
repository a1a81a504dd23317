package params

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFloored_RaisesZeroAndNegative(t *testing.T) {
	tech := Technical{}.Floored()
	assert.Equal(t, MinValue, tech.DemandMW)
	assert.Equal(t, MinValue, tech.SolarCapacityMW)
	assert.Equal(t, MinValue, tech.BatteryCapacityMWh)
	assert.Equal(t, MinValue, tech.InverterRatio)

	tech = Technical{DemandMW: -50}.Floored()
	assert.Equal(t, MinValue, tech.DemandMW)
}

func TestFloored_KeepsValidValues(t *testing.T) {
	tech := DefaultTechnical().Floored()
	assert.Equal(t, DefaultTechnical(), tech)
}

func TestResourceFloored_DivisorsRaised(t *testing.T) {
	r := Resource{}.Floored()
	assert.Equal(t, MinValue, r.Efficiency)
	assert.Equal(t, MinValue, r.LifetimeYrs)
	assert.Equal(t, 0.0, r.DiscountRate) // zero rate is a valid input
}

func TestResourceFloored_CostRatesClampAtZero(t *testing.T) {
	r := Resource{CapexPerMW: -100, FixedOMPerMW: -1, VarOMPerMWh: -2, FuelPerMWh: -3}.Floored()
	assert.Equal(t, 0.0, r.CapexPerMW)
	assert.Equal(t, 0.0, r.FixedOMPerMW)
	assert.Equal(t, 0.0, r.VarOMPerMWh)
	assert.Equal(t, 0.0, r.FuelPerMWh)
}

func TestResourceFloored_EfficiencyCappedAtOne(t *testing.T) {
	r := Resource{Efficiency: 1.5}.Floored()
	assert.Equal(t, 1.0, r.Efficiency)
}

func TestBatteryPowerMW_DerivedFromDuration(t *testing.T) {
	tech := Technical{BatteryCapacityMWh: 8000, BatteryDurationHours: 4}
	assert.InDelta(t, 2000, tech.BatteryPowerMW(), 1e-9)
}

func TestBatteryPowerMW_ZeroDurationFloored(t *testing.T) {
	tech := Technical{BatteryCapacityMWh: 100}
	v := tech.BatteryPowerMW()
	assert.False(t, v != v) // not NaN
}

func TestDefaults_GasSizedToDemand(t *testing.T) {
	tech := DefaultTechnical()
	assert.Equal(t, tech.DemandMW, tech.GasCapacityMW)
}

func TestDefaults_EfficienciesAreFractions(t *testing.T) {
	econ := DefaultEconomics()
	assert.Greater(t, econ.Gas.Efficiency, 0.0)
	assert.LessOrEqual(t, econ.Gas.Efficiency, 1.0)
	assert.Greater(t, econ.Gas.DiscountRate, 0.0)
	assert.Less(t, econ.Gas.DiscountRate, 1.0)
}
