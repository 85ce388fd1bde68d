package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/rrcbeta/scenicloop/internal/lib/geo"
	"github.com/rrcbeta/scenicloop/internal/lib/scenicpath"
)

// Config is the complete configuration for one analysis run.
type Config struct {
	Input  InputConfig  `yaml:"input"`
	Output OutputConfig `yaml:"output"`
	Loop   LoopConfig   `yaml:"loop"`
}

// InputConfig names the routes CSV to analyze.
type InputConfig struct {
	RoutesCSV string `yaml:"routes_csv"`
}

// OutputConfig holds the output directory and artifact file names.
type OutputConfig struct {
	Dir            string `yaml:"dir"`
	EnrichedCSV    string `yaml:"enriched_csv"`
	AreaSummaryCSV string `yaml:"area_summary_csv"`
	DetailedReport string `yaml:"detailed_report"`
	KMLOverlay     string `yaml:"kml_overlay"`
	GeoJSON        string `yaml:"geojson"`
}

// LoopConfig optionally overrides the reference path. When no waypoints are
// configured, the built-in Red Rocks Scenic Loop table is used.
type LoopConfig struct {
	Waypoints []WaypointYAML `yaml:"waypoints"`
}

// WaypointYAML represents one path waypoint in YAML config.
type WaypointYAML struct {
	Latitude  float64 `yaml:"latitude"`
	Longitude float64 `yaml:"longitude"`
	Label     string  `yaml:"label"`
}

// ToWaypoint converts a YAML waypoint to the scenicpath representation.
func (w WaypointYAML) ToWaypoint() scenicpath.Waypoint {
	return scenicpath.Waypoint{
		Point: geo.Point{Latitude: w.Latitude, Longitude: w.Longitude},
		Label: w.Label,
	}
}

// DefaultConfig returns the configuration used when no config file is
// supplied.
func DefaultConfig() *Config {
	return &Config{
		Input: InputConfig{
			RoutesCSV: "red_rocks_routes.csv",
		},
		Output: OutputConfig{
			Dir:            ".",
			EnrichedCSV:    "red_rocks_routes_with_scenic_order.csv",
			AreaSummaryCSV: "red_rocks_area_summary_scenic_loop.csv",
			DetailedReport: "scenic_loop_order_detailed.txt",
			KMLOverlay:     "scenic_loop_overlay.kml",
			GeoJSON:        "scenic_loop_areas.geojson",
		},
	}
}

// LoadConfig reads configuration from a YAML file, applied on top of the
// defaults.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return cfg, nil
}

// LoopWaypoints returns the configured waypoint sequence, falling back to
// the built-in Red Rocks Scenic Loop.
func (c *Config) LoopWaypoints() []scenicpath.Waypoint {
	if len(c.Loop.Waypoints) == 0 {
		return scenicpath.RedRocksScenicLoop()
	}
	wps := make([]scenicpath.Waypoint, len(c.Loop.Waypoints))
	for i, w := range c.Loop.Waypoints {
		wps[i] = w.ToWaypoint()
	}
	return wps
}
