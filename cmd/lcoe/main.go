package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/dmw24/levelizedcostmodelUK/internal/dispatch"
	"github.com/dmw24/levelizedcostmodelUK/internal/lcoe"
	"github.com/dmw24/levelizedcostmodelUK/internal/params"
	"github.com/dmw24/levelizedcostmodelUK/internal/profile"
	"github.com/dmw24/levelizedcostmodelUK/internal/report"
)

func main() {
	configPath := flag.String("config", "", "YAML parameter file (defaults used when empty)")
	profilePath := flag.String("profile", "", "CSV of 8760 hourly solar capacity factors (overrides config)")
	outPath := flag.String("out", "", "write hourly flows CSV to this path")
	flag.Parse()

	cfg := params.DefaultConfig()
	if *configPath != "" {
		var err error
		cfg, err = params.LoadConfig(*configPath)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
	}
	if *profilePath != "" {
		cfg.Profile.CSVPath = *profilePath
	}

	prof, err := loadProfile(cfg.Profile)
	if err != nil {
		log.Fatalf("Failed to load profile: %v", err)
	}

	tech, econ := cfg.ToParams()
	run := dispatch.Simulate(prof, tech)
	costs := lcoe.Compute(run.Summary, tech, econ)

	report.WriteSummary(os.Stdout, run.Summary, costs)

	if *outPath != "" {
		if err := report.WriteFlowsCSV(*outPath, run); err != nil {
			log.Fatalf("Failed to write flows CSV: %v", err)
		}
		fmt.Printf("\nWrote %d hourly rows to %s\n", profile.HoursPerYear, *outPath)
	}
}

// loadProfile reads the CSV profile when configured, falling back to the
// synthetic clear-sky shape for the configured site.
func loadProfile(cfg params.ProfileConfig) (*profile.Profile, error) {
	if cfg.CSVPath == "" {
		return profile.Synthetic(cfg.Latitude, cfg.Longitude), nil
	}
	prof, bad, err := profile.LoadCSV(cfg.CSVPath)
	if err != nil {
		return nil, err
	}
	if bad > 0 {
		log.Printf("Profile %s: %d hours substituted with zero", cfg.CSVPath, bad)
	}
	return prof, nil
}
