package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/rrcbeta/scenicloop/internal/clients/mountainproject"
	"github.com/rrcbeta/scenicloop/internal/config"
	"github.com/rrcbeta/scenicloop/internal/lib/scenicpath"
	"github.com/rrcbeta/scenicloop/internal/report"
	"github.com/rrcbeta/scenicloop/internal/services"
)

func main() {
	configPath := flag.String("config", "", "path to YAML config file (optional)")
	input := flag.String("input", "", "routes CSV path (overrides config)")
	outDir := flag.String("out", "", "output directory (overrides config)")
	flag.Parse()

	cfg := loadConfig(*configPath)
	if *input != "" {
		cfg.Input.RoutesCSV = *input
	}
	if *outDir != "" {
		cfg.Output.Dir = *outDir
	}

	path, err := scenicpath.New(cfg.LoopWaypoints())
	if err != nil {
		log.Fatalf("Invalid scenic loop waypoints: %v", err)
	}

	log.Printf("Analyzing climbing areas along the %.1f-mile scenic loop drive", path.LengthMiles())

	routes, err := mountainproject.LoadRoutes(cfg.Input.RoutesCSV)
	if err != nil {
		log.Fatalf("Failed to load routes: %v", err)
	}
	log.Printf("Loaded %d climbing routes", len(routes))

	analyzer := services.NewAnalyzer(path)
	ordered := analyzer.AssignLoopOrder(routes)
	aggregates := analyzer.AggregateAreas(ordered)
	summaries := analyzer.SummarizeAreas(ordered)
	log.Printf("Found %d unique climbing areas", len(aggregates))

	if err := os.MkdirAll(cfg.Output.Dir, 0755); err != nil {
		log.Fatalf("Failed to create output directory: %v", err)
	}

	artifacts := []struct {
		name  string
		write func(io.Writer) error
	}{
		{cfg.Output.EnrichedCSV, func(w io.Writer) error {
			return report.WriteEnrichedCSV(w, ordered)
		}},
		{cfg.Output.AreaSummaryCSV, func(w io.Writer) error {
			return report.WriteAreaSummaryCSV(w, summaries)
		}},
		{cfg.Output.DetailedReport, func(w io.Writer) error {
			return report.WriteDetailedReport(w, path, aggregates)
		}},
		{cfg.Output.KMLOverlay, func(w io.Writer) error {
			return report.WriteKML(w, path, aggregates)
		}},
		{cfg.Output.GeoJSON, func(w io.Writer) error {
			return report.WriteGeoJSON(w, path, aggregates)
		}},
	}

	for _, artifact := range artifacts {
		target := filepath.Join(cfg.Output.Dir, artifact.name)
		if err := writeArtifact(target, artifact.write); err != nil {
			log.Fatalf("Failed to write %s: %v", target, err)
		}
		log.Printf("Wrote %s", target)
	}

	if err := report.WriteEncounterListing(os.Stdout, aggregates); err != nil {
		log.Fatalf("Failed to print encounter listing: %v", err)
	}
	if err := report.WriteTopScored(os.Stdout, summaries, 10); err != nil {
		log.Fatalf("Failed to print top scored areas: %v", err)
	}

	if len(aggregates) > 0 {
		log.Printf("First area encountered: %s", aggregates[0].Name())
		log.Printf("Last area encountered: %s", aggregates[len(aggregates)-1].Name())
	}
}

func loadConfig(path string) *config.Config {
	if path == "" {
		return config.DefaultConfig()
	}
	cfg, err := config.LoadConfig(path)
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}
	return cfg
}

func writeArtifact(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close file: %w", err)
	}
	return nil
}
