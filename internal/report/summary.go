package report

import (
	"fmt"
	"io"

	"github.com/dmw24/levelizedcostmodelUK/internal/dispatch"
	"github.com/dmw24/levelizedcostmodelUK/internal/lcoe"
)

// WriteSummary prints the annual energy balance and the cost breakdown as a
// fixed-width table.
func WriteSummary(w io.Writer, sum dispatch.Summary, costs lcoe.Result) {
	fmt.Fprintf(w, "Annual energy balance (MWh)\n")
	fmt.Fprintf(w, "  Demand:            %14.0f\n", sum.DemandMWh)
	fmt.Fprintf(w, "  Solar direct:      %14.0f\n", sum.SolarUsedMWh)
	fmt.Fprintf(w, "  Battery discharge: %14.0f\n", sum.BatteryDischargeMWh)
	fmt.Fprintf(w, "  Gas:               %14.0f\n", sum.GasOutputMWh)
	fmt.Fprintf(w, "  Battery charge:    %14.0f\n", sum.BatteryChargeMWh)
	fmt.Fprintf(w, "  Curtailed solar:   %14.0f\n", sum.SolarCurtailedMWh)
	fmt.Fprintln(w)

	fmt.Fprintf(w, "%-9s | %14s | %14s | %12s | %10s\n",
		"Resource", "Capex £/yr", "Opex £/yr", "Energy MWh", "£/MWh")
	printResource(w, "Gas", costs.Gas)
	printResource(w, "Solar", costs.Solar)
	printResource(w, "Battery", costs.Battery)
	fmt.Fprintln(w)
	fmt.Fprintf(w, "System cost: £%.0f/yr, system LCOE: £%.2f/MWh\n",
		costs.TotalAnnualCost, costs.SystemLCOE)
}

func printResource(w io.Writer, name string, c lcoe.ResourceCost) {
	opex := c.AnnualFixedOM + c.AnnualVarOM + c.AnnualFuel
	fmt.Fprintf(w, "%-9s | %14.0f | %14.0f | %12.0f | %10.2f\n",
		name, c.AnnualCapex, opex, c.EnergyMWh, c.LCOEPerMWh)
}
