// Package config loads planner.yaml and applies environment overrides.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/nudataviz/project-fall25-lifeflight/pkg/catalog"
	"github.com/nudataviz/project-fall25-lifeflight/pkg/cost"
	"github.com/nudataviz/project-fall25-lifeflight/pkg/coverage"
	"github.com/nudataviz/project-fall25-lifeflight/pkg/geo"
	"github.com/nudataviz/project-fall25-lifeflight/pkg/mission"
)

// DefaultPath is the config file read when none is named.
const DefaultPath = "planner.yaml"

// Environment overrides.
const (
	EnvDatabaseURL = "LIFEFLIGHT_DATABASE_URL"
	EnvPort        = "LIFEFLIGHT_PORT"
)

// Config is the planner configuration.
type Config struct {
	Data     DataConfig        `yaml:"data"`
	Rates    cost.Rates        `yaml:"rates"`
	Response geo.ResponseModel `yaml:"response"`
	Grid     GridConfig        `yaml:"grid"`
	Bases    BasesConfig       `yaml:"bases"`
	Server   ServerConfig      `yaml:"server"`
}

// DataConfig locates the reference data. When DatabaseURL is set missions
// are read from Postgres instead of the Missions file.
type DataConfig struct {
	Catalog          string        `yaml:"catalog"`
	Missions         string        `yaml:"missions"`
	DatabaseURL      string        `yaml:"database_url"`
	Table            string        `yaml:"table"`
	OverpassEndpoint string        `yaml:"overpass_endpoint"`
	OverpassTimeout  time.Duration `yaml:"overpass_timeout"`
}

// GridConfig tunes the coverage surface and the sensitivity sweep.
type GridConfig struct {
	Size    int           `yaml:"size"`
	Workers int           `yaml:"workers"`
	Timeout time.Duration `yaml:"timeout"`
}

// BasesConfig overrides the built-in base lists.
type BasesConfig struct {
	Existing   []string `yaml:"existing"`
	Candidates []string `yaml:"candidates"`
}

// ServerConfig configures the HTTP API.
type ServerConfig struct {
	Port string `yaml:"port"`
}

// Default returns the documented defaults.
func Default() *Config {
	return &Config{
		Data: DataConfig{
			Catalog:          "data/maine_city_coordinates.json",
			Missions:         "data/FlightTransportsMaster.csv",
			Table:            mission.DefaultTable,
			OverpassEndpoint: catalog.DefaultOverpassEndpoint,
			OverpassTimeout:  60 * time.Second,
		},
		Rates:    cost.DefaultRates(),
		Response: geo.DefaultResponseModel(),
		Grid: GridConfig{
			Size:    coverage.DefaultGridSize,
			Timeout: 5 * time.Minute,
		},
		Bases: BasesConfig{
			Existing:   append([]string(nil), catalog.ExistingBases...),
			Candidates: append([]string(nil), catalog.CandidateSites...),
		},
		Server: ServerConfig{Port: "8080"},
	}
}

// Load overlays the file at path on the defaults, then applies environment
// overrides. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("reading config file: %w", err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config YAML: %w", err)
		}
	}
	cfg.applyEnv()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	c.Data.DatabaseURL = getEnv(EnvDatabaseURL, c.Data.DatabaseURL)
	c.Server.Port = getEnv(EnvPort, c.Server.Port)
}

// Validate rejects values no component can run with.
func (c *Config) Validate() error {
	if c.Data.Catalog == "" {
		return errors.New("config: data.catalog is required")
	}
	if c.Data.Missions == "" && c.Data.DatabaseURL == "" {
		return errors.New("config: one of data.missions or data.database_url is required")
	}
	if c.Rates.Base < 0 || c.Rates.Vehicle < 0 || c.Rates.Crew < 0 {
		return fmt.Errorf("config: %w", cost.ErrNegativeInput)
	}
	if c.Grid.Size <= 0 {
		return fmt.Errorf("config: grid.size must be positive, got %d", c.Grid.Size)
	}
	if _, err := strconv.Atoi(c.Server.Port); err != nil {
		return fmt.Errorf("config: server.port %q is not a number", c.Server.Port)
	}
	return nil
}

// Addr is the listen address for the HTTP API.
func (c *Config) Addr() string {
	return ":" + c.Server.Port
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
