package dispatch

// Battery tracks the one piece of state carried between hours: the stored
// energy, bounded by zero and the energy capacity. Charging and discharging
// clamp against headroom and availability inside the update, never by
// post-hoc correction.
type Battery struct {
	CapacityMWh float64
	SoCMWh      float64
}

// NewBattery returns an empty battery of the given capacity. A non-positive
// capacity yields a battery that can never charge, so both battery steps of
// the dispatch loop degrade to no-ops.
func NewBattery(capacityMWh float64) *Battery {
	if capacityMWh < 0 {
		capacityMWh = 0
	}
	return &Battery{CapacityMWh: capacityMWh}
}

// Charge stores up to surplusMWh, limited by remaining headroom, and returns
// the amount actually stored.
func (b *Battery) Charge(surplusMWh float64) float64 {
	if surplusMWh <= 0 {
		return 0
	}
	headroom := b.CapacityMWh - b.SoCMWh
	if surplusMWh > headroom {
		surplusMWh = headroom
	}
	if surplusMWh < 0 {
		surplusMWh = 0
	}
	b.SoCMWh += surplusMWh
	return surplusMWh
}

// Discharge delivers up to deficitMWh, limited by the current state of
// charge, and returns the amount actually delivered.
func (b *Battery) Discharge(deficitMWh float64) float64 {
	if deficitMWh <= 0 {
		return 0
	}
	if deficitMWh > b.SoCMWh {
		deficitMWh = b.SoCMWh
	}
	b.SoCMWh -= deficitMWh
	return deficitMWh
}
