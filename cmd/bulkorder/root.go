package main

import (
	"bulk-order-service/internal/config"
	"bulk-order-service/internal/core/bulkorder"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type rootOptions struct {
	cfgFile string
	verbose bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "bulkorder",
		Short: "Bulk order builder - combine sales, buyers and catalog exports into one import workbook",
		Long: `bulkorder turns a transactions export, a buyers export, an optional
product catalog and a customer template into a single BULK_ORDER_<DDMMYYYY>.xlsx
workbook with Customer_Sample, Products_Sample and Transactions_Sample sheets.

Example Usage:
  bulkorder serve --config ./config.yaml
  bulkorder build --transactions ventas.xlsx --buyers buyers.csv --out-dir ./out`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().StringVar(&opts.cfgFile, "config", "config.yaml",
		"Path to the configuration file (missing file means defaults)")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false,
		"Enable debug logging")

	cmd.AddCommand(newServeCmd(opts), newBuildCmd(opts))
	return cmd
}

// load reads the configuration and builds the logger, honoring --verbose.
func (o *rootOptions) load() (*config.Config, *zap.Logger, error) {
	cfg, err := config.Load(o.cfgFile)
	if err != nil {
		return nil, nil, err
	}
	if o.verbose {
		cfg.Log.Level = "debug"
	}
	logger, err := cfg.NewLogger()
	if err != nil {
		return nil, nil, err
	}
	return cfg, logger, nil
}

// serviceOptions maps the configuration onto the pipeline options.
func serviceOptions(cfg *config.Config) bulkorder.Options {
	opts := bulkorder.DefaultOptions()
	opts.CreatedAtOffsetDays = cfg.CreatedAtOffsetDays()
	opts.Customer = cfg.CustomerDefaults()
	return opts
}
