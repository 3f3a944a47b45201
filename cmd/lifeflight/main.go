package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/nudataviz/project-fall25-lifeflight/pkg/config"
)

// globalFlags are shared by every subcommand.
type globalFlags struct {
	configPath string
	jsonOut    bool
}

func main() {
	g := &globalFlags{}
	rootCmd := &cobra.Command{
		Use:          "lifeflight",
		Short:        "Air-medical base siting and coverage planning",
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().StringVarP(&g.configPath, "config", "c", config.DefaultPath, "planner config file")
	rootCmd.PersistentFlags().BoolVar(&g.jsonOut, "json", false, "print full results as JSON")

	rootCmd.AddCommand(simulateCmd(g))
	rootCmd.AddCommand(compareCmd(g))
	rootCmd.AddCommand(paretoCmd(g))
	rootCmd.AddCommand(sitingCmd(g))
	rootCmd.AddCommand(speedsCmd(g))
	rootCmd.AddCommand(assetCmd(g))
	rootCmd.AddCommand(coverageGridCmd(g))
	rootCmd.AddCommand(catchmentsCmd(g))
	rootCmd.AddCommand(catalogCmd(g))
	rootCmd.AddCommand(serveCmd(g))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}

// scenarioFlags binds the per-scenario parameters onto a command.
type scenarioFlags struct {
	bases     []string
	fleet     int
	crews     int
	perDay    int
	radius    float64
	slaTarget int
}

func (f *scenarioFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringSliceVarP(&f.bases, "bases", "b", nil, "base locations (default: configured existing bases)")
	cmd.Flags().IntVar(&f.fleet, "fleet", 3, "fleet size")
	cmd.Flags().IntVar(&f.crews, "crews", 2, "crews per vehicle")
	cmd.Flags().IntVar(&f.perDay, "missions-per-day", 3, "missions per vehicle per day")
	cmd.Flags().Float64VarP(&f.radius, "radius", "r", 50, "service radius in miles")
	cmd.Flags().IntVar(&f.slaTarget, "sla", 20, "SLA target in minutes")
}

func simulateCmd(g *globalFlags) *cobra.Command {
	f := &scenarioFlags{}
	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Simulate one fleet and base configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSimulate(cmd.Context(), g, f)
		},
	}
	f.register(cmd)
	return cmd
}

func compareCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "compare [scenarios.yaml]",
		Short: "Simulate and rank the scenarios listed in a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompare(cmd.Context(), g, args[0])
		},
	}
}

func paretoCmd(g *globalFlags) *cobra.Command {
	var (
		bases   []string
		radius  []float64
		sla     []float64
		weights []float64
		fleet   int
		crews   int
	)
	cmd := &cobra.Command{
		Use:   "pareto",
		Short: "Sweep radius and SLA target and report the efficient frontier",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runPareto(cmd.Context(), g, paretoOptions{
				bases: bases, radius: radius, sla: sla, weights: weights,
				fleet: fleet, crews: crews,
			})
		},
	}
	cmd.Flags().StringSliceVarP(&bases, "bases", "b", nil, "base locations (default: first three known bases)")
	cmd.Flags().Float64SliceVar(&radius, "radius", []float64{20, 100, 10}, "radius min,max,step in miles")
	cmd.Flags().Float64SliceVar(&sla, "sla", []float64{10, 30, 5}, "SLA target min,max,step in minutes")
	cmd.Flags().Float64SliceVar(&weights, "weights", nil, "population,sla,cost weights for the optimal pick")
	cmd.Flags().IntVar(&fleet, "fleet", 3, "fleet size")
	cmd.Flags().IntVar(&crews, "crews", 2, "crews per vehicle")
	return cmd
}

func sitingCmd(g *globalFlags) *cobra.Command {
	f := &scenarioFlags{}
	var (
		candidate string
		rank      bool
	)
	cmd := &cobra.Command{
		Use:   "siting",
		Short: "Measure the lift from adding a candidate base",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSiting(cmd.Context(), g, f, candidate, rank)
		},
	}
	f.register(cmd)
	cmd.Flags().StringVar(&candidate, "candidate", "", "candidate base to add")
	cmd.Flags().BoolVar(&rank, "rank", false, "rank every configured candidate instead")
	return cmd
}

func speedsCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "speeds",
		Short: "Learn median cruise speed per transport asset type",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSpeeds(cmd.Context(), g)
		},
	}
}

func assetCmd(g *globalFlags) *cobra.Command {
	var (
		bases    []string
		radius   float64
		expected float64
	)
	cmd := &cobra.Command{
		Use:   "asset [asset-type]",
		Short: "Estimate compliance for an asset type flying from given bases",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAsset(cmd.Context(), g, args[0], bases, radius, expected)
		},
	}
	cmd.Flags().StringSliceVarP(&bases, "bases", "b", nil, "base cities (default: the asset's home city)")
	cmd.Flags().Float64VarP(&radius, "radius", "r", 50, "service radius in miles")
	cmd.Flags().Float64Var(&expected, "expected", 20, "expected response time in minutes")
	return cmd
}

func coverageGridCmd(g *globalFlags) *cobra.Command {
	var (
		bases  []string
		radius float64
		size   int
	)
	cmd := &cobra.Command{
		Use:   "coverage-grid",
		Short: "Sample the response-time surface over the service area",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runCoverageGrid(g, bases, radius, size)
		},
	}
	cmd.Flags().StringSliceVarP(&bases, "bases", "b", nil, "base locations (default: configured existing bases)")
	cmd.Flags().Float64VarP(&radius, "radius", "r", 50, "service radius in miles")
	cmd.Flags().IntVar(&size, "size", 0, "samples per axis (default: grid.size)")
	return cmd
}

func catchmentsCmd(g *globalFlags) *cobra.Command {
	var (
		bases  []string
		radius float64
	)
	cmd := &cobra.Command{
		Use:   "catchments",
		Short: "Partition the service area into nearest-base regions",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runCatchments(g, bases, radius)
		},
	}
	cmd.Flags().StringSliceVarP(&bases, "bases", "b", nil, "base locations (default: configured existing bases)")
	cmd.Flags().Float64VarP(&radius, "radius", "r", 50, "service radius in miles")
	return cmd
}

func catalogCmd(g *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Manage the location coordinate catalog",
	}
	var out string
	fetch := &cobra.Command{
		Use:   "fetch [area]",
		Short: "Build a catalog from OpenStreetMap places in an area",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCatalogFetch(cmd.Context(), g, args[0], out)
		},
	}
	fetch.Flags().StringVarP(&out, "out", "o", "", "output file (default: data.catalog)")
	cmd.AddCommand(fetch)
	return cmd
}

func serveCmd(g *globalFlags) *cobra.Command {
	var port string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the planning API server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context(), g, port)
		},
	}
	cmd.Flags().StringVarP(&port, "port", "p", "", "HTTP server port (default: server.port)")
	return cmd
}
