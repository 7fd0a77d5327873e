package cmd

import (
	"fmt"
	"os"
	"sort"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/Tefika24/taxi-app-official/sim"
	"github.com/Tefika24/taxi-app-official/sim/scenario"
)

var (
	// CLI flags for the run subcommand
	logLevel     string // Log verbosity level
	eventsFile   string // Line-oriented event file path
	scenarioFile string // YAML scenario file path
	horizon      int64  // Simulation cut-off (in ticks), 0 = unbounded

	// CLI flags for the generate subcommand
	outFile       string // Output scenario path
	seed          int64  // Seed for random scenario generation
	numDrivers    int    // Number of drivers to synthesize
	numRiders     int    // Number of riders to synthesize
	gridRows      int    // Grid height
	gridCols      int    // Grid width
	maxSpeed      int    // Max driver speed (grid units per tick)
	maxPatience   int64  // Max rider patience (in ticks)
	requestSpread int64  // Request times drawn from [0, spread]
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "taxisim",
	Short: "Discrete-event simulator for a ride-sharing dispatch service",
}

// runCmd executes a simulation from an event file or a YAML scenario
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the ride-share simulation",
	Run: func(cmd *cobra.Command, args []string) {
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)

		var initial []sim.Event
		switch {
		case eventsFile != "" && scenarioFile != "":
			logrus.Fatalf("--events and --scenario are mutually exclusive")
		case eventsFile != "":
			initial, err = scenario.ParseEventFile(eventsFile)
		case scenarioFile != "":
			var spec *scenario.Scenario
			if spec, err = scenario.LoadScenario(scenarioFile); err == nil {
				initial, err = spec.Events()
			}
		default:
			logrus.Fatalf("either --events or --scenario is required")
		}
		if err != nil {
			logrus.Fatalf("unable to load initial events: %v", err)
		}

		s := sim.NewSimulation()
		if horizon > 0 {
			s.Horizon = horizon
		}

		runID := uuid.New()
		logrus.Infof("Starting simulation %s with %d initial events", runID, len(initial))
		report := s.Run(initial)
		printReport(report)
	},
}

// generateCmd synthesizes a random scenario YAML from flags
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a random scenario YAML",
	Run: func(cmd *cobra.Command, args []string) {
		spec := &scenario.Scenario{
			Seed: seed,
			Synthesis: &scenario.SynthesisSpec{
				NumDrivers:    numDrivers,
				NumRiders:     numRiders,
				GridRows:      gridRows,
				GridCols:      gridCols,
				MaxSpeed:      maxSpeed,
				MaxPatience:   maxPatience,
				RequestSpread: requestSpread,
			},
		}
		if err := spec.Validate(); err != nil {
			logrus.Fatalf("invalid generation parameters: %v", err)
		}
		if err := spec.Save(outFile); err != nil {
			logrus.Fatalf("unable to save scenario: %v", err)
		}
		fmt.Printf("Wrote scenario with %d drivers and %d riders to %s\n",
			numDrivers, numRiders, outFile)
	},
}

// printReport displays the monitor's aggregate statistics.
func printReport(report map[string]float64) {
	keys := make([]string, 0, len(report))
	for k := range report {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	fmt.Println("=== Simulation Report ===")
	for _, k := range keys {
		fmt.Printf("%-22s : %.2f\n", k, report[k])
	}
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	runCmd.Flags().StringVar(&eventsFile, "events", "", "Path to a line-oriented event file")
	runCmd.Flags().StringVar(&scenarioFile, "scenario", "", "Path to a YAML scenario file")
	runCmd.Flags().Int64Var(&horizon, "horizon", 0, "Simulation cut-off in ticks (0 = run until the queue drains)")
	runCmd.Flags().StringVar(&logLevel, "log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")

	generateCmd.Flags().StringVar(&outFile, "out", "scenario.yaml", "Output scenario path")
	generateCmd.Flags().Int64Var(&seed, "seed", 42, "Seed for random scenario generation")
	generateCmd.Flags().IntVar(&numDrivers, "drivers", 10, "Number of drivers")
	generateCmd.Flags().IntVar(&numRiders, "riders", 50, "Number of riders")
	generateCmd.Flags().IntVar(&gridRows, "grid-rows", 100, "Grid height")
	generateCmd.Flags().IntVar(&gridCols, "grid-cols", 100, "Grid width")
	generateCmd.Flags().IntVar(&maxSpeed, "max-speed", 5, "Max driver speed (grid units per tick)")
	generateCmd.Flags().Int64Var(&maxPatience, "max-patience", 30, "Max rider patience (in ticks)")
	generateCmd.Flags().Int64Var(&requestSpread, "request-spread", 100, "Request times are drawn from [0, spread]")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(generateCmd)
}
