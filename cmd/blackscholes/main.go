package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	bench "github.com/jwaldner/approxbench/bench_lib"
	"github.com/jwaldner/approxbench/internal/config"
	"github.com/jwaldner/approxbench/internal/logger"
	"github.com/jwaldner/approxbench/internal/optionio"
	"github.com/jwaldner/approxbench/internal/pricing"
	testdata "github.com/jwaldner/approxbench/test_data"
)

var (
	// Global flags
	configPath string
	mode       string
	logLevel   string
	scale      float64
	tolerance  float64
	doValidate bool

	cfg *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "blackscholes [input] [output]",
	Short: "Price European options with the Black-Scholes formula",
	Long: `blackscholes prices every option of an input file (count line followed by
"spot strike rate divq vol time C|P divs refval" records) and prints one price
per line with 18 decimal places. Without an input file the built-in option
table is priced. Spot and strike are divided by --scale before pricing.`,
	Args:          cobra.MaximumNArgs(2),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg = config.LoadFrom(configPath)
		applyFlags(cmd, cfg)
		if _, err := bench.ParseExecutionMode(cfg.Engine.ExecutionMode); err != nil {
			return err
		}

		if err := logger.InitWithConfig(cfg.Logging.LogLevel, cfg.Logging.LogFile); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logger.Close()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		input, output := cfg.Pricing.InputFile, cfg.Pricing.OutputFile
		if len(args) > 0 {
			input = args[0]
		}
		if len(args) > 1 {
			output = args[1]
		}
		return runPrice(cmd.Context(), cfg, input, output, cmd.OutOrStdout(), cmd.ErrOrStderr())
	},
}

var fixtureCmd = &cobra.Command{
	Use:   "fixture [path]",
	Short: "Write the built-in option table in input-file format",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return optionio.Write(cmd.OutOrStdout(), testdata.Options)
		}
		f, err := os.Create(args[0])
		if err != nil {
			return err
		}
		if err := optionio.Write(f, testdata.Options); err != nil {
			f.Close()
			return err
		}
		return f.Close()
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configPath, "config", config.DefaultConfigFile, "YAML config file")
	pf.StringVar(&logLevel, "log-level", "", "log level (error, warn, info, debug, verbose)")

	f := rootCmd.Flags()
	f.StringVar(&mode, "mode", "", "execution mode (serial, parallel, auto)")
	f.Float64Var(&scale, "scale", 0, "divisor applied to spot and strike")
	f.Float64Var(&tolerance, "tolerance", 0, "accepted deviation from reference prices")
	f.BoolVar(&doValidate, "validate", false, "check prices against reference values")

	rootCmd.AddCommand(fixtureCmd)
}

// applyFlags lets explicitly set flags win over config and environment.
func applyFlags(cmd *cobra.Command, c *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("log-level") {
		c.Logging.LogLevel = logLevel
	}
	if flags.Changed("mode") {
		c.Engine.ExecutionMode = mode
	}
	if flags.Changed("scale") {
		c.Pricing.Scale = scale
	}
	if flags.Changed("tolerance") {
		c.Pricing.Tolerance = tolerance
	}
	if flags.Changed("validate") {
		c.Pricing.Validate = doValidate
	}
}

// runPrice loads records, prices them and writes the prices to output (or
// stdout when output is empty).
func runPrice(ctx context.Context, c *config.Config, input, output string, stdout, stderr io.Writer) error {
	records, err := loadRecords(input)
	if err != nil {
		return err
	}

	engine := bench.NewEngineFromConfig(c.Engine)
	analysis, err := engine.AnalyzePricing(ctx, records, c.Pricing.Scale, c.Pricing.Tolerance)
	if err != nil {
		return err
	}

	prices := pricing.Prices(analysis.Results)
	if output != "" {
		if err := optionio.WritePricesFile(output, prices); err != nil {
			return err
		}
		logger.Info.Printf("📝 wrote %d prices to %s", len(prices), output)
	} else if err := optionio.WritePrices(stdout, prices); err != nil {
		return err
	}

	if c.Pricing.Validate {
		fmt.Fprint(stderr, analysis.Report.Summary())
		if !analysis.Report.Passed() {
			return fmt.Errorf("%d prices outside tolerance", analysis.Report.Failures)
		}
	}
	return nil
}

func loadRecords(input string) ([]pricing.OptionRecord, error) {
	if input == "" {
		logger.Debug.Printf("🔍 no input file, using %d built-in records", len(testdata.Options))
		return testdata.CopyOptions(), nil
	}
	records, err := optionio.ReadFile(input)
	if err != nil {
		return nil, err
	}
	logger.Info.Printf("📂 loaded %d records from %s", len(records), input)
	return records, nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		logger.Error.Printf("blackscholes: %v", err)
		fmt.Fprintf(os.Stderr, "❌ %v\n", err)
		stop()
		os.Exit(1)
	}
}
