// Package main provides the CLI entry point for desde.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ukaji3/desde-go/internal/config"
	"github.com/ukaji3/desde-go/internal/logging"
	"github.com/ukaji3/desde-go/internal/server"
	"github.com/ukaji3/desde-go/pkg/desde"
)

var (
	configPath string
	dataPath   string
	sheetName  string
	cellRange  string
	verbose    bool
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "desde",
		Short: "Starting prices per project from a consolidated units workbook",
		Long: `desde reads a consolidated units workbook and reports, for a district
and typology, the cheapest unit of every project: as a table, a chart or a
web dashboard.`,
		SilenceUsage: true,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configPath, "config", "", "YAML configuration file")
	flags.StringVar(&dataPath, "data", "", "Workbook path (overrides config)")
	flags.StringVar(&sheetName, "sheet", "", "Worksheet name (default: first sheet)")
	flags.StringVar(&cellRange, "range", "", "A1 range or defined name limiting the table")
	flags.BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(newServeCmd(), newOptionsCmd(), newReportCmd())
	return rootCmd
}

// loadConfig resolves the configuration and applies CLI flag overrides.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("data") {
		cfg.Data.Path = dataPath
	}
	if flags.Changed("sheet") {
		cfg.Data.Sheet = sheetName
	}
	if flags.Changed("range") {
		cfg.Data.Range = cellRange
	}
	return cfg, cfg.Validate()
}

func setup(cmd *cobra.Command) (*config.Config, *zap.Logger, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, nil, err
	}
	logger, err := logging.New(cfg.Logging, verbose)
	if err != nil {
		return nil, nil, err
	}
	return cfg, logger, nil
}

func desdeOptions(cfg *config.Config) desde.Options {
	return desde.Options{
		Sheet:         cfg.Data.Sheet,
		Range:         cfg.Data.Range,
		MaxLabelChars: cfg.Chart.MaxLabelChars,
	}
}

func newServeCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the interactive dashboard",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := setup(cmd)
			if err != nil {
				return err
			}
			defer logger.Sync()

			if cmd.Flags().Changed("addr") {
				cfg.Server.Addr = addr
			}

			srv, err := server.New(cfg, logger)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return srv.ListenAndServe(ctx)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (default from config, :8501)")
	return cmd
}

func newOptionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "options",
		Short: "List the selectable districts and typologies",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := setup(cmd)
			if err != nil {
				return err
			}
			defer logger.Sync()

			ds, err := desde.Load(cfg.Data.Path, desdeOptions(cfg))
			if err != nil {
				return fmt.Errorf("failed to load workbook: %w", err)
			}
			logger.Debug("workbook loaded",
				zap.String("book", ds.BookName),
				zap.String("sheet", ds.SheetName),
				zap.Int("listings", len(ds.Listings)))

			districts, typologies := desde.FilterOptions(ds)
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "COMUNA")
			for _, d := range districts {
				fmt.Fprintln(out, "  "+d)
			}
			fmt.Fprintln(out, "TIPOLOGÍA")
			for _, t := range typologies {
				fmt.Fprintln(out, "  "+t)
			}
			return nil
		},
	}
}
