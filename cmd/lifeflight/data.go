package main

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/nudataviz/project-fall25-lifeflight/pkg/catalog"
	"github.com/nudataviz/project-fall25-lifeflight/pkg/config"
	"github.com/nudataviz/project-fall25-lifeflight/pkg/mission"
	"github.com/nudataviz/project-fall25-lifeflight/pkg/scenario"
)

// env is the loaded configuration and reference data for one command.
type env struct {
	cfg      *config.Config
	catalog  *catalog.Catalog
	missions mission.Source
	close    func()
}

var errNoCatalog = errors.New("catalog unavailable")

// loadCatalog reads the config and catalog. When only the catalog fails the
// env is still returned with the error so callers that rebuild it can go on.
func loadCatalog(g *globalFlags) (*env, error) {
	cfg, err := config.Load(g.configPath)
	if err != nil {
		return nil, err
	}
	e := &env{cfg: cfg, close: func() {}}
	cat, err := catalog.Load(cfg.Data.Catalog)
	if err != nil {
		return e, fmt.Errorf("%w: %w", errNoCatalog, err)
	}
	e.catalog = cat
	return e, nil
}

// loadEnv also opens the mission source. A missing catalog is fatal for
// every command that uses it.
func loadEnv(ctx context.Context, g *globalFlags) (*env, error) {
	e, err := loadCatalog(g)
	if err != nil {
		return nil, err
	}
	cfg := e.cfg
	if cfg.Data.DatabaseURL != "" {
		pg, err := mission.OpenPostgres(ctx, cfg.Data.DatabaseURL, cfg.Data.Table)
		if err != nil {
			return nil, err
		}
		e.missions = pg
		e.close = func() {
			if err := pg.Close(); err != nil {
				log.Printf("closing mission database: %v", err)
			}
		}
	} else {
		e.missions = mission.CSVSource{Path: cfg.Data.Missions}
	}
	return e, nil
}

// records loads the full mission history once for a command.
func (e *env) records(ctx context.Context) ([]mission.Record, error) {
	records, err := e.missions.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading missions: %w", err)
	}
	return records, nil
}

func (e *env) simulator(ctx context.Context) (*scenario.Simulator, error) {
	records, err := e.records(ctx)
	if err != nil {
		return nil, err
	}
	return scenario.NewSimulator(e.catalog, records), nil
}

// params builds scenario parameters from flags over configured defaults.
func (e *env) params(f *scenarioFlags) scenario.Parameters {
	bases := f.bases
	if len(bases) == 0 {
		bases = e.cfg.Bases.Existing
	}
	return scenario.Parameters{
		FleetSize:                f.fleet,
		CrewsPerVehicle:          f.crews,
		MissionsPerVehiclePerDay: f.perDay,
		BaseLocations:            bases,
		ServiceRadiusMiles:       f.radius,
		SLATargetMinutes:         f.slaTarget,
		Rates:                    e.cfg.Rates,
	}
}

func (e *env) bases(names []string) ([]catalog.Location, error) {
	if len(names) == 0 {
		names = e.cfg.Bases.Existing
	}
	locs := e.catalog.ResolveBases(names)
	if len(locs) == 0 {
		return nil, fmt.Errorf("no known base in %v", names)
	}
	return locs, nil
}
