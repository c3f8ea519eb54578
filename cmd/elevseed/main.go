// elevseed injects synthetic emergency-call requests into the elevator
// simulation fixture (simulation_data.json) so the central server's
// /llamada_emergencia endpoint can be exercised with realistic data.
//
// Usage: elevseed [--file path] [--output path] [--seed n] [--verbose]
package main

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"elevseed/internal/emergency"
	"elevseed/internal/fixture"
	"elevseed/internal/report"
)

// defaultFixturePath matches the path the gateway serves the fixture from.
const defaultFixturePath = "api_gateway/simulation_data.json"

var (
	// Global flags
	fixturePath string
	outputPath  string
	seed        int64
	verbose     bool

	// Logger
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "elevseed",
	Short: "Inject synthetic emergency calls into the simulation fixture",
	Long: `elevseed appends two randomly generated llamada_emergencia requests to
every building in simulation_data.json, preserving every field it does not
model, and prints a progress and summary report.

The run is a single linear pass: load, augment, save. Any load or save
failure aborts the run and leaves the fixture untouched on disk.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		built, err := config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		logger = built.With(zap.String("run_id", uuid.NewString()))
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: runInject,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&fixturePath, "file", "f", defaultFixturePath,
		"simulation fixture to augment")
	rootCmd.PersistentFlags().StringVarP(&outputPath, "output", "o", "",
		"write the augmented fixture here instead of in place")
	rootCmd.PersistentFlags().Int64Var(&seed, "seed", 0,
		"RNG seed for a reproducible run (0 seeds from the clock)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"enable debug logging")
}

func runInject(cmd *cobra.Command, args []string) error {
	out := outputPath
	if out == "" {
		out = fixturePath
	}

	printer := report.NewPrinter(cmd.OutOrStdout())
	printer.Banner("elevseed - emergency request injector")

	printer.Step("Loading %s...", fixturePath)
	doc, err := fixture.Load(fixturePath)
	if err != nil {
		logger.Error("load failed", zap.String("path", fixturePath), zap.Error(err))
		printer.Errorf("%v", err)
		return err
	}
	printer.OK("Fixture loaded. Buildings found: %d", len(doc.Buildings))

	gen := emergency.NewGenerator(seed, logger)
	aug := emergency.NewAugmenter(gen, logger)
	aug.OnBuilding = printer.Building

	sum, err := aug.AugmentAll(doc)
	if err != nil {
		logger.Error("augmentation failed", zap.Error(err))
		printer.Errorf("%v", err)
		return err
	}
	printer.OK("Emergency requests added: %d", sum.Added)

	printer.Step("Saving %s...", out)
	if err := fixture.Save(out, doc); err != nil {
		logger.Error("save failed", zap.String("path", out), zap.Error(err))
		printer.Errorf("%v", err)
		return err
	}
	printer.OK("Fixture saved.")

	printer.Summary(sum)
	logger.Info("run complete",
		zap.Int("buildings", len(sum.Buildings)),
		zap.Int("added", sum.Added))
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
