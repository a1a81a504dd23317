package main

import (
	"flag"
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/rs/cors"

	"github.com/dmw24/levelizedcostmodelUK/internal/api"
	"github.com/dmw24/levelizedcostmodelUK/internal/dispatch"
	"github.com/dmw24/levelizedcostmodelUK/internal/params"
	"github.com/dmw24/levelizedcostmodelUK/internal/profile"
	"github.com/dmw24/levelizedcostmodelUK/internal/replay"
	"github.com/dmw24/levelizedcostmodelUK/internal/ws"
)

func main() {
	addr := flag.String("addr", ":8080", "listen address")
	configPath := flag.String("config", "", "YAML parameter file (defaults used when empty)")
	profilePath := flag.String("profile", "", "CSV of 8760 hourly solar capacity factors (overrides config)")
	frontendDir := flag.String("frontend-dir", "frontend/build", "directory containing frontend build")
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
	log.Printf("Profile loaded: peak factor %.3f, %.0f full-load hours",
		prof.Peak(), prof.AnnualFullLoadHours())

	// Run once with the configured parameters so connecting clients have a
	// year to play back before their first model:run.
	tech, _ := cfg.ToParams()
	initial := dispatch.Simulate(prof, tech)

	hub := ws.NewHub()
	bridge := ws.NewBridge(hub)
	player := replay.New(initial, bridge)
	wsHandler := ws.NewHandler(hub, player, prof, cfg)

	if os.Getenv("API_ENV") == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()
	api.NewHandler(prof, cfg).Register(router)
	router.GET("/ws", gin.WrapH(wsHandler))

	// Serve frontend static files
	if _, err := os.Stat(*frontendDir); err == nil {
		log.Printf("Serving frontend from %s", *frontendDir)
		router.NoRoute(gin.WrapH(http.FileServer(http.Dir(*frontendDir))))
	}

	handler := cors.Default().Handler(router)

	log.Printf("Starting server on %s", *addr)
	if err := http.ListenAndServe(*addr, handler); err != nil {
		log.Fatal(err)
	}
}

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
