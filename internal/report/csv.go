// Package report writes a run's hourly flows to CSV and its cost results as
// a plain-text summary.
package report

import (
	"encoding/csv"
	"os"
	"strconv"

	"github.com/dmw24/levelizedcostmodelUK/internal/dispatch"
)

// WriteFlowsCSV writes one row per hour with all five flow channels and the
// battery state of charge.
func WriteFlowsCSV(path string, run dispatch.Result) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	header := []string{
		"hour",
		"solar_used_mw",
		"battery_charge_mw",
		"battery_discharge_mw",
		"gas_output_mw",
		"solar_curtailed_mw",
		"soc_mwh",
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for h := range run.Flows.SolarUsed {
		row := []string{
			strconv.Itoa(h),
			fmtFloat(run.Flows.SolarUsed[h]),
			fmtFloat(run.Flows.BatteryCharge[h]),
			fmtFloat(run.Flows.BatteryDischarge[h]),
			fmtFloat(run.Flows.GasOutput[h]),
			fmtFloat(run.Flows.SolarCurtailed[h]),
			fmtFloat(run.Flows.SoC[h]),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return w.Error()
}

func fmtFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', 4, 64)
}
