package report

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmw24/levelizedcostmodelUK/internal/dispatch"
	"github.com/dmw24/levelizedcostmodelUK/internal/lcoe"
	"github.com/dmw24/levelizedcostmodelUK/internal/params"
	"github.com/dmw24/levelizedcostmodelUK/internal/profile"
)

func sampleRun() dispatch.Result {
	return dispatch.Simulate(profile.Constant(0.5), params.DefaultTechnical())
}

func TestWriteFlowsCSV_RoundTrip(t *testing.T) {
	run := sampleRun()
	path := filepath.Join(t.TempDir(), "flows.csv")
	require.NoError(t, WriteFlowsCSV(path, run))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)

	require.Len(t, rows, profile.HoursPerYear+1)
	assert.Equal(t, []string{
		"hour", "solar_used_mw", "battery_charge_mw", "battery_discharge_mw",
		"gas_output_mw", "solar_curtailed_mw", "soc_mwh",
	}, rows[0])
	assert.Equal(t, "0", rows[1][0])
	assert.Equal(t, "8759", rows[profile.HoursPerYear][0])
}

func TestWriteFlowsCSV_BadPath(t *testing.T) {
	err := WriteFlowsCSV(filepath.Join(t.TempDir(), "missing", "flows.csv"), sampleRun())
	assert.Error(t, err)
}

func TestWriteSummary_ContainsAllResources(t *testing.T) {
	run := sampleRun()
	costs := lcoe.Compute(run.Summary, params.DefaultTechnical(), params.DefaultEconomics())

	var buf bytes.Buffer
	WriteSummary(&buf, run.Summary, costs)
	out := buf.String()

	assert.Contains(t, out, "Gas")
	assert.Contains(t, out, "Solar")
	assert.Contains(t, out, "Battery")
	assert.Contains(t, out, "system LCOE")
	assert.Contains(t, out, "Curtailed solar")
}
