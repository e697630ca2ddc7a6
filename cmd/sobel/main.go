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
	"github.com/jwaldner/approxbench/internal/sobel"
	testdata "github.com/jwaldner/approxbench/test_data"
)

var (
	configPath string
	variant    string
	mode       string
	logLevel   string
	compare    bool

	cfg *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "sobel",
	Short: "Run Sobel edge detection over the built-in image",
	Long: `sobel filters every interior pixel of the built-in grayscale image with the
exact Sobel kernel or one of its approximations (sw1..sw4, which reuse already
read neighbours instead of sampling new ones) and prints one line per pixel.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg = config.LoadFrom(configPath)
		flags := cmd.Flags()
		if flags.Changed("log-level") {
			cfg.Logging.LogLevel = logLevel
		}
		if flags.Changed("variant") {
			cfg.Sobel.Variant = variant
		}
		if flags.Changed("mode") {
			cfg.Engine.ExecutionMode = mode
		}
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
		if compare {
			return runCompare(cmd.Context(), cfg, cmd.OutOrStdout())
		}
		return runScan(cmd.Context(), cfg, cmd.OutOrStdout())
	},
}

func init() {
	f := rootCmd.Flags()
	f.StringVar(&configPath, "config", config.DefaultConfigFile, "YAML config file")
	f.StringVar(&variant, "variant", "exact", "kernel variant (exact, sw1, sw2, sw3, sw4)")
	f.StringVar(&mode, "mode", "", "execution mode (serial, parallel, auto)")
	f.StringVar(&logLevel, "log-level", "", "log level (error, warn, info, debug, verbose)")
	f.BoolVar(&compare, "compare", false, "report every variant's deviation from the exact kernel")
}

// runScan prints each filtered interior pixel followed by the banner line.
func runScan(ctx context.Context, c *config.Config, out io.Writer) error {
	v, err := sobel.ParseVariant(c.Sobel.Variant)
	if err != nil {
		return err
	}
	src, err := sobel.GridFromRows(testdata.ImageRows())
	if err != nil {
		return err
	}

	engine := bench.NewEngineFromConfig(c.Engine)
	var writeErr error
	_, err = engine.ScanImage(ctx, src, v, func(_, _, value int) {
		if writeErr == nil {
			_, writeErr = fmt.Fprintf(out, "New pixel %d \n", value)
		}
	})
	if err != nil {
		return err
	}
	if writeErr != nil {
		return writeErr
	}

	logger.Info.Printf("🖼️  SOBEL %s: %d pixels filtered (%dx%d)", v, src.Interior(), src.Rows, src.Cols)
	_, err = fmt.Fprintln(out, "Sobel filtering")
	return err
}

func runCompare(ctx context.Context, c *config.Config, out io.Writer) error {
	src, err := sobel.GridFromRows(testdata.ImageRows())
	if err != nil {
		return err
	}
	engine := bench.NewEngineFromConfig(c.Engine)
	results, err := engine.AnalyzeVariants(ctx, src)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "%-6s %5s %9s %9s %8s %9s\n", "kernel", "reads", "differing", "mean err", "max err", "scan ms")
	for _, r := range results {
		fmt.Fprintf(out, "%-6s %5d %4d/%-4d %9.3f %8d %9.3f\n",
			r.Name, r.Reads, r.Differing, r.Pixels, r.MeanAbsError, r.MaxAbsError, r.ScanMs)
	}
	return nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		logger.Error.Printf("sobel: %v", err)
		fmt.Fprintf(os.Stderr, "❌ %v\n", err)
		stop()
		os.Exit(1)
	}
}
