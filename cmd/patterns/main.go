package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/comalice/designpatterns/behavioural/state"
	"github.com/comalice/designpatterns/internal/catalog"
	"github.com/comalice/designpatterns/internal/config"
	"github.com/comalice/designpatterns/internal/logging"
)

var (
	configPath string
	verbose    bool

	cfg    config.Config
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "patterns",
	Short: "Run design pattern demonstrations",
	Long: `patterns runs the fixed demonstration driver of each catalogued design
pattern and prints its illustrative output.

Without arguments, run executes the patterns listed in the config file.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}
		level := cfg.LogLevel
		if verbose {
			level = "debug"
		}
		logger, err = logging.New(level)
		return err
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List registered patterns",
	Args:  cobra.NoArgs,
	RunE:  listPatterns,
}

var runCmd = &cobra.Command{
	Use:   "run [pattern...]",
	Short: "Run pattern drivers in order",
	RunE:  runPatterns,
}

var graphCmd = &cobra.Command{
	Use:   "graph",
	Short: "Print the document lifecycle as Graphviz DOT",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := fmt.Fprint(cmd.OutOrStdout(), state.ExportDOT())
		return err
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to YAML config")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(listCmd, runCmd, graphCmd)
}

func listPatterns(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	for _, e := range catalog.Default(logger).List() {
		if _, err := fmt.Fprintf(out, "%-12s %-12s %s\n", e.Name, e.Category, e.Summary); err != nil {
			return err
		}
	}
	return nil
}

func runPatterns(cmd *cobra.Command, args []string) error {
	names := args
	if len(names) == 0 {
		names = cfg.Patterns
	}
	if len(names) == 0 {
		return fmt.Errorf("no patterns given and none configured")
	}

	var out io.Writer = cmd.OutOrStdout()
	if cfg.Output != config.StdoutOutput {
		f, err := os.Create(cfg.Output)
		if err != nil {
			return fmt.Errorf("open output: %w", err)
		}
		defer f.Close()
		out = f
	}

	c := catalog.Default(logger)
	for _, name := range names {
		if err := c.Run(cmd.Context(), name, out); err != nil {
			logger.Error("pattern driver failed", zap.String("pattern", name), zap.Error(err))
			return err
		}
	}
	return nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
