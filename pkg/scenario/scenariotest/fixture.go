// Package scenariotest provides a small Maine catalog and mission history
// for tests of the scenario analyses.
package scenariotest

import (
	"math"

	"github.com/nudataviz/project-fall25-lifeflight/pkg/catalog"
	"github.com/nudataviz/project-fall25-lifeflight/pkg/geo"
	"github.com/nudataviz/project-fall25-lifeflight/pkg/mission"
)

// Catalog has seven located cities and one entry without coordinates.
//
// Distances from BANGOR: BELFAST 28.4, WATERVILLE 45.7, AUGUSTA 60.1.
// Distances from PORTLAND: LEWISTON 30.6, AUGUSTA 50.9, WATERVILLE 69.1.
func Catalog() *catalog.Catalog {
	return catalog.New(map[string]geo.LatLon{
		"BANGOR":       {Lat: 44.8016, Lon: -68.7713},
		"PORTLAND":     {Lat: 43.6591, Lon: -70.2568},
		"LEWISTON":     {Lat: 44.1004, Lon: -70.2148},
		"WATERVILLE":   {Lat: 44.5520, Lon: -69.6317},
		"AUGUSTA":      {Lat: 44.3106, Lon: -69.7795},
		"PRESQUE ISLE": {Lat: 46.6812, Lon: -68.0159},
		"BELFAST":      {Lat: 44.4259, Lon: -69.0064},
		"UNMAPPED":     {Lat: math.NaN(), Lon: math.NaN()},
	})
}

// Records holds two 2022 missions and seven 2023 missions.
//
//	BANGOR       10, 12, 25 min
//	PORTLAND     20 min
//	LEWISTON     18 min
//	AUGUSTA      15 min
//	BELFAST      14 min across midnight
//	PRESQUE ISLE 40 min
//	WATERVILLE   unparseable dispatch
func Records() []mission.Record {
	return []mission.Record{
		{PickupCity: "BANGOR", Date: "2022-06-01", Dispatch: "10:00", EnRoute: "10:10", AtScene: "10:30", Vehicle: "LF1", Asset: "B-CCT"},
		{PickupCity: "PRESQUE ISLE", Date: "2022-07-04", Dispatch: "08:00", EnRoute: "08:40", AtScene: "09:40", Vehicle: "LF1", Asset: "B-CCT"},
		{PickupCity: "BANGOR", Date: "2023-01-10", Dispatch: "09:00", EnRoute: "09:12", AtScene: "09:30", Vehicle: "LF1", Asset: "B-CCT"},
		{PickupCity: "Bangor", Date: "2023-02-11", Dispatch: "13:00", EnRoute: "13:25", AtScene: "13:40", Vehicle: "LF2", Asset: "B-CCT"},
		{PickupCity: "PORTLAND", Date: "2023-03-12", Dispatch: "07:30", EnRoute: "07:50", AtScene: "08:20", Vehicle: "LF3", Asset: "S-CCT"},
		{PickupCity: "LEWISTON", Date: "2023-04-13", Dispatch: "16:00", EnRoute: "16:18", AtScene: "16:35", Vehicle: "LF3", Asset: "L-CCT"},
		{PickupCity: "AUGUSTA", Date: "2023-05-14", Dispatch: "11:00", EnRoute: "11:15", AtScene: "11:50", Vehicle: "LF2", Asset: "L-CCT"},
		{PickupCity: "BELFAST", Date: "2023-06-15", Dispatch: "23:55", EnRoute: "00:09", AtScene: "00:25", Vehicle: "LF1", Asset: "B-CCT"},
		{PickupCity: "WATERVILLE", Date: "2023-07-16", Dispatch: "n/a", EnRoute: "12:00", AtScene: "12:30", Vehicle: "LF2", Asset: "B-CCT"},
	}
}
