package main

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/nudataviz/project-fall25-lifeflight/pkg/compare"
	"github.com/nudataviz/project-fall25-lifeflight/pkg/coverage"
	"github.com/nudataviz/project-fall25-lifeflight/pkg/pareto"
	"github.com/nudataviz/project-fall25-lifeflight/pkg/scenario"
	"github.com/nudataviz/project-fall25-lifeflight/pkg/siting"
	"github.com/nudataviz/project-fall25-lifeflight/pkg/validation"
)

func printValidationReport(r *validation.Report) {
	for _, group := range []struct {
		title    string
		findings []validation.Finding
	}{{"Errors", r.Errors}, {"Warnings", r.Warnings}} {
		if len(group.findings) == 0 {
			continue
		}
		fmt.Printf("%s:\n", group.title)
		for _, f := range group.findings {
			fmt.Printf("  %-10s %s\n", f.Field, f.Message)
			if f.Got != nil {
				fmt.Printf("  %-10s got %v", "", f.Got)
				if f.Want != "" {
					fmt.Printf(", want %s", f.Want)
				}
				fmt.Println()
			}
			for _, h := range f.Hints {
				fmt.Printf("  %-10s try: %s\n", "", h)
			}
		}
		fmt.Println()
	}

	status := "invalid"
	if r.Valid {
		status = "valid"
	}
	fmt.Printf("Parameters %s (%s)\n", status, r.Summary)
}

func printKPIs(b scenario.KPIBundle) {
	p := b.Parameters
	fmt.Println("Scenario")
	fmt.Println("========")
	fmt.Printf("  Bases:          %s\n", strings.Join(p.BaseNames(), ", "))
	fmt.Printf("  Fleet:          %d vehicles x %d crews, %d missions/day\n",
		p.FleetSize, p.CrewsPerVehicle, p.MissionsPerVehiclePerDay)
	fmt.Printf("  Radius / SLA:   %.0f mi / %d min\n", p.ServiceRadiusMiles, p.SLATargetMinutes)
	fmt.Println()

	fmt.Println("Coverage")
	fmt.Println("--------")
	fmt.Printf("  Locations covered:      %d of %d (%.1f%%)\n",
		b.Coverage.CitiesCovered, b.Coverage.TotalCities, b.Coverage.RatePercent)
	names := make([]string, 0, len(b.CoverageDetails))
	for name := range b.CoverageDetails {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Printf("    %-20s %d\n", name, b.CoverageDetails[name])
	}
	fmt.Println()

	fmt.Println("SLA")
	fmt.Println("---")
	fmt.Printf("  Attainment:             %.1f%% (%d of %d)\n",
		b.SLA.RatePercent, b.SLA.WithinSLA, b.SLA.TotalEvaluated)
	fmt.Printf("  Avg response:           %.1f min\n", b.SLA.AvgResponseMinutes)
	d := b.SLA.Distribution
	if d.Count > 0 {
		fmt.Printf("  Quartiles:              %.1f / %.1f / %.1f min\n", d.Q1, d.Median, d.Q3)
	}
	fmt.Println()

	fmt.Println("Demand")
	fmt.Println("------")
	fmt.Printf("  Missions (%d):        %d\n", b.Missions.LastYear, b.Missions.LastYearMissions)
	fmt.Printf("  Capacity:               %.0f\n", b.Missions.EstimatedCapacity)
	fmt.Printf("  Unmet:                  %.0f (%.1f%%)\n", b.Unmet.Missions, b.Unmet.RatePercent)
	fmt.Println()

	fmt.Println("Cost")
	fmt.Println("----")
	fmt.Printf("  Bases:                  $%s\n", formatMoney(b.Cost.BaseCost))
	fmt.Printf("  Vehicles:               $%s\n", formatMoney(b.Cost.VehicleCost))
	fmt.Printf("  Crews:                  $%s\n", formatMoney(b.Cost.CrewCost))
	fmt.Printf("  Total / year:           $%s\n", formatMoney(b.Cost.Total))
}

func printComparison(c compare.Comparison) {
	fmt.Printf("%-24s %6s %6s %10s %10s %12s %10s\n",
		"Scenario", "Fleet", "Bases", "SLA %", "Unmet", "Cost", "Coverage")
	fmt.Printf("%-24s %6s %6s %10s %10s %12s %10s\n",
		"------------------------", "------", "------", "----------", "----------", "------------", "----------")
	for _, r := range c.Rows {
		fmt.Printf("%-24s %6d %6d %10.1f %10.0f %12s %10.1f\n",
			r.ScenarioID, r.FleetSize, r.Bases, r.SLAAttainment, r.UnmetDemand, formatMoney(r.TotalCost), r.CoverageRate)
	}
	fmt.Println()
	fmt.Printf("Best SLA:       %s\n", c.BestSLA.ScenarioID)
	fmt.Printf("Lowest cost:    %s\n", c.LowestCost.ScenarioID)
	fmt.Printf("Best coverage:  %s\n", c.BestCoverage.ScenarioID)
}

func printPareto(a pareto.Analysis, elapsed time.Duration) {
	m := a.Metadata
	fmt.Printf("Sensitivity sweep %s over %s\n", m.RunID, strings.Join(m.BaseLocations, ", "))
	fmt.Printf("  %d scenarios in %s: %d on the frontier, %d dominated\n",
		m.NScenarios, elapsed.Round(time.Millisecond), m.NPareto, m.NDominated)
	fmt.Println()

	fmt.Printf("%-28s %10s %12s %10s %12s\n", "Frontier point", "Coverage", "Avg resp", "SLA %", "Cost")
	for _, p := range a.Frontier {
		fmt.Printf("%-28s %10.1f %12.1f %10.1f %12s\n",
			p.ID, p.CoverageRate, p.AvgResponseTime, p.SLAAttainment, formatMoney(p.TotalCost))
	}
	if a.Optimal != nil && a.OptimalScore != nil {
		fmt.Println()
		fmt.Printf("%s (score %.3f)\n", a.Optimal.ID, *a.OptimalScore)
	}
}

func printLift(l siting.Lift) {
	fmt.Printf("  SLA lift:               %+.2f pts (%+.1f%%)\n", l.SLALift, l.SLALiftPercent)
	fmt.Printf("  Coverage lift:          %+.2f pts\n", l.CoverageLift)
	fmt.Printf("  Incremental cost:       $%s\n", formatMoney(l.IncrementalCost))
	if l.CostPerSLAPoint != nil {
		fmt.Printf("  Cost per SLA point:     $%s\n", formatMoney(*l.CostPerSLAPoint))
	} else {
		fmt.Println("  Cost per SLA point:     n/a")
	}
}

func printSiting(e siting.Evaluation) {
	fmt.Printf("Existing bases: %s\n", strings.Join(e.Metadata.ExistingBases, ", "))
	fmt.Printf("  SLA %.1f%%, coverage %.1f%%, cost $%s\n",
		e.Before.SLA.RatePercent, e.Before.Coverage.RatePercent, formatMoney(e.Before.Cost.Total))
	if e.After == nil || e.Lift == nil {
		return
	}
	fmt.Println()
	fmt.Printf("With %s:\n", e.Metadata.CandidateBase)
	fmt.Printf("  SLA %.1f%%, coverage %.1f%%, cost $%s\n",
		e.After.SLA.RatePercent, e.After.Coverage.RatePercent, formatMoney(e.After.Cost.Total))
	printLift(*e.Lift)
}

func printRanking(ranked []siting.Ranked) {
	for i, r := range ranked {
		fmt.Printf("%2d. %s\n", i+1, r.Candidate)
		printLift(r.Lift)
	}
}

func printSpeeds(speeds map[string]siting.AssetSpeed) {
	assets := make([]string, 0, len(speeds))
	for a := range speeds {
		assets = append(assets, a)
	}
	sort.Strings(assets)
	fmt.Printf("%-12s %-20s %8s %12s\n", "Asset", "Home", "Samples", "Median mph")
	for _, a := range assets {
		s := speeds[a]
		fmt.Printf("%-12s %-20s %8d %12.1f\n", s.Asset, s.HomeCity, s.Samples, s.MedianMPH)
	}
}

func printAssetType(r siting.AssetTypeResult, expected float64) {
	if len(r.Bases) == 0 {
		fmt.Printf("No usable bases or missions for %s\n", r.Asset)
		return
	}
	names := make([]string, len(r.Bases))
	for i, b := range r.Bases {
		names[i] = fmt.Sprintf("%s (%d covered)", b.Name, r.Coverage[b.Name])
	}
	fmt.Printf("%s from %s\n", r.Asset, strings.Join(names, ", "))
	if r.MedianSpeedMPH != nil {
		fmt.Printf("  Median speed:           %.1f mph\n", *r.MedianSpeedMPH)
	}
	c := r.Compliance
	fmt.Printf("  Within %.0f min:         %d of %d (%.2f%%)\n", expected, c.CompliantTasks, c.TotalTasks, c.ComplianceRate)
	fmt.Printf("  Avg estimated response: %.2f min\n", c.AvgResponseTime)
}

func printCatchments(cs []coverage.Catchment) {
	fmt.Printf("%-20s %14s %14s\n", "Base", "Region sq mi", "Served sq mi")
	for _, c := range cs {
		fmt.Printf("%-20s %14.0f %14.0f\n", c.Base, c.AreaSqMi, c.ServedSqMi)
	}
}

func formatMoney(v float64) string {
	if v < 0 {
		return "-" + formatMoney(-v)
	}
	if v >= 1_000_000_000 {
		return fmt.Sprintf("%.2fB", v/1_000_000_000)
	}
	if v >= 1_000_000 {
		return fmt.Sprintf("%.2fM", v/1_000_000)
	}
	if v >= 1_000 {
		return fmt.Sprintf("%.0fK", v/1_000)
	}
	return fmt.Sprintf("%.0f", v)
}
