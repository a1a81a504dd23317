package params

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the on-disk configuration shape (YAML). Percentages mirror the
// original form fields; ToParams converts them to fractions.
type Config struct {
	Technical TechnicalConfig `yaml:"technical" json:"technical"`
	Economics EconomicsConfig `yaml:"economics" json:"economics"`
	Profile   ProfileConfig   `yaml:"profile" json:"profile"`
}

type TechnicalConfig struct {
	DemandMW             float64 `yaml:"demand_mw" json:"demand_mw"`
	SolarCapacityMW      float64 `yaml:"solar_capacity_mw" json:"solar_capacity_mw"`
	BatteryCapacityMWh   float64 `yaml:"battery_capacity_mwh" json:"battery_capacity_mwh"`
	BatteryDurationHours float64 `yaml:"battery_duration_hours" json:"battery_duration_hours"`
	InverterRatio        float64 `yaml:"inverter_ratio" json:"inverter_ratio"`
	GasCapacityMW        float64 `yaml:"gas_capacity_mw" json:"gas_capacity_mw"`
}

type ResourceConfig struct {
	CapexPerMW      float64 `yaml:"capex_per_mw" json:"capex_per_mw"`
	FixedOMPerMW    float64 `yaml:"fixed_om_per_mw" json:"fixed_om_per_mw"`
	VarOMPerMWh     float64 `yaml:"var_om_per_mwh" json:"var_om_per_mwh"`
	FuelPerMWh      float64 `yaml:"fuel_price_per_mwh" json:"fuel_price_per_mwh"`
	EfficiencyPct   float64 `yaml:"efficiency_pct" json:"efficiency_pct"`
	DiscountRatePct float64 `yaml:"discount_rate_pct" json:"discount_rate_pct"`
	LifetimeYears   float64 `yaml:"lifetime_years" json:"lifetime_years"`
}

type EconomicsConfig struct {
	Gas     ResourceConfig `yaml:"gas" json:"gas"`
	Solar   ResourceConfig `yaml:"solar" json:"solar"`
	Battery ResourceConfig `yaml:"battery" json:"battery"`
}

// ProfileConfig selects the solar profile source: a CSV of 8,760 capacity
// factors, or a synthetic clear-sky shape for the given site.
type ProfileConfig struct {
	CSVPath   string  `yaml:"csv_path" json:"csv_path"`
	Latitude  float64 `yaml:"latitude" json:"latitude"`
	Longitude float64 `yaml:"longitude" json:"longitude"`
}

// DefaultConfig returns the defaults expressed in config units.
func DefaultConfig() Config {
	return Config{
		Technical: technicalToConfig(DefaultTechnical()),
		Economics: EconomicsConfig{
			Gas:     resourceToConfig(DefaultEconomics().Gas),
			Solar:   resourceToConfig(DefaultEconomics().Solar),
			Battery: resourceToConfig(DefaultEconomics().Battery),
		},
		Profile: ProfileConfig{
			Latitude:  52.5, // central UK
			Longitude: -1.9,
		},
	}
}

// LoadConfig reads a YAML file and overlays it onto the defaults. A missing
// field keeps its default; explicit zeroes are later caught by the floors.
func LoadConfig(path string) (Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	var c Config
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return Config{}, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return MergeConfig(DefaultConfig(), c), nil
}

// MergeConfig overlays non-zero fields from override onto base. A zero field
// means unset and keeps the base value; to effectively remove a resource,
// pass a negative value, which the flooring in ToParams clamps to the
// positivity floor.
func MergeConfig(base, override Config) Config {
	out := base
	out.Technical = mergeTechnical(base.Technical, override.Technical)
	out.Economics.Gas = mergeResource(base.Economics.Gas, override.Economics.Gas)
	out.Economics.Solar = mergeResource(base.Economics.Solar, override.Economics.Solar)
	out.Economics.Battery = mergeResource(base.Economics.Battery, override.Economics.Battery)
	if override.Profile.CSVPath != "" {
		out.Profile.CSVPath = override.Profile.CSVPath
	}
	if override.Profile.Latitude != 0 {
		out.Profile.Latitude = override.Profile.Latitude
	}
	if override.Profile.Longitude != 0 {
		out.Profile.Longitude = override.Profile.Longitude
	}
	return out
}

func mergeTechnical(base, override TechnicalConfig) TechnicalConfig {
	out := base
	if override.DemandMW != 0 {
		out.DemandMW = override.DemandMW
	}
	if override.SolarCapacityMW != 0 {
		out.SolarCapacityMW = override.SolarCapacityMW
	}
	if override.BatteryCapacityMWh != 0 {
		out.BatteryCapacityMWh = override.BatteryCapacityMWh
	}
	if override.BatteryDurationHours != 0 {
		out.BatteryDurationHours = override.BatteryDurationHours
	}
	if override.InverterRatio != 0 {
		out.InverterRatio = override.InverterRatio
	}
	if override.GasCapacityMW != 0 {
		out.GasCapacityMW = override.GasCapacityMW
	}
	return out
}

func mergeResource(base, override ResourceConfig) ResourceConfig {
	out := base
	if override.CapexPerMW != 0 {
		out.CapexPerMW = override.CapexPerMW
	}
	if override.FixedOMPerMW != 0 {
		out.FixedOMPerMW = override.FixedOMPerMW
	}
	if override.VarOMPerMWh != 0 {
		out.VarOMPerMWh = override.VarOMPerMWh
	}
	if override.FuelPerMWh != 0 {
		out.FuelPerMWh = override.FuelPerMWh
	}
	if override.EfficiencyPct != 0 {
		out.EfficiencyPct = override.EfficiencyPct
	}
	if override.DiscountRatePct != 0 {
		out.DiscountRatePct = override.DiscountRatePct
	}
	if override.LifetimeYears != 0 {
		out.LifetimeYears = override.LifetimeYears
	}
	return out
}

// ToParams converts config units to model units and applies the floors.
func (c Config) ToParams() (Technical, Economics) {
	tech := Technical{
		DemandMW:             c.Technical.DemandMW,
		SolarCapacityMW:      c.Technical.SolarCapacityMW,
		BatteryCapacityMWh:   c.Technical.BatteryCapacityMWh,
		BatteryDurationHours: c.Technical.BatteryDurationHours,
		InverterRatio:        c.Technical.InverterRatio,
		GasCapacityMW:        c.Technical.GasCapacityMW,
	}
	econ := Economics{
		Gas:     c.Economics.Gas.toResource(),
		Solar:   c.Economics.Solar.toResource(),
		Battery: c.Economics.Battery.toResource(),
	}
	return tech.Floored(), econ.Floored()
}

func (r ResourceConfig) toResource() Resource {
	return Resource{
		CapexPerMW:   r.CapexPerMW,
		FixedOMPerMW: r.FixedOMPerMW,
		VarOMPerMWh:  r.VarOMPerMWh,
		FuelPerMWh:   r.FuelPerMWh,
		Efficiency:   r.EfficiencyPct / 100,
		DiscountRate: r.DiscountRatePct / 100,
		LifetimeYrs:  r.LifetimeYears,
	}
}

func resourceToConfig(r Resource) ResourceConfig {
	return ResourceConfig{
		CapexPerMW:      r.CapexPerMW,
		FixedOMPerMW:    r.FixedOMPerMW,
		VarOMPerMWh:     r.VarOMPerMWh,
		FuelPerMWh:      r.FuelPerMWh,
		EfficiencyPct:   r.Efficiency * 100,
		DiscountRatePct: r.DiscountRate * 100,
		LifetimeYears:   r.LifetimeYrs,
	}
}

func technicalToConfig(t Technical) TechnicalConfig {
	return TechnicalConfig{
		DemandMW:             t.DemandMW,
		SolarCapacityMW:      t.SolarCapacityMW,
		BatteryCapacityMWh:   t.BatteryCapacityMWh,
		BatteryDurationHours: t.BatteryDurationHours,
		InverterRatio:        t.InverterRatio,
		GasCapacityMW:        t.GasCapacityMW,
	}
}
