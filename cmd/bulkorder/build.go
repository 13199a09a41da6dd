package main

import (
	"fmt"
	"os"
	"path/filepath"

	"bulk-order-service/internal/core/bulkorder"
	"bulk-order-service/internal/domain"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

type buildOptions struct {
	transactions string
	buyers       string
	products     string
	template     string
	outDir       string
}

func newBuildCmd(root *rootOptions) *cobra.Command {
	opts := &buildOptions{}

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build a bulk order workbook from local files",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := root.load()
			if err != nil {
				return err
			}
			defer logger.Sync()

			path, err := runBuild(bulkorder.NewService(logger, serviceOptions(cfg)), opts)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.transactions, "transactions", "", "Transactions export (.xlsx, .xls, .csv)")
	cmd.Flags().StringVar(&opts.buyers, "buyers", "", "Buyers export (.xlsx, .xls, .csv)")
	cmd.Flags().StringVar(&opts.products, "products", "", "Workbook containing a Products_Sample sheet")
	cmd.Flags().StringVar(&opts.template, "template", "", "Customer template; its header defines Customer_Sample")
	cmd.Flags().StringVar(&opts.outDir, "out-dir", ".", "Directory for the generated workbook")
	_ = cmd.MarkFlagRequired("transactions")
	_ = cmd.MarkFlagRequired("buyers")

	return cmd
}

func readInput(path string) (*domain.InputFile, error) {
	if path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return &domain.InputFile{Name: filepath.Base(path), Data: data}, nil
}

// runBuild generates the workbook and returns the path it was written to.
func runBuild(svc bulkorder.Service, opts *buildOptions) (string, error) {
	files := make([]*domain.InputFile, 4)
	for i, path := range []string{opts.transactions, opts.buyers, opts.products, opts.template} {
		f, err := readInput(path)
		if err != nil {
			return "", err
		}
		files[i] = f
	}
	if files[0] == nil || files[1] == nil {
		return "", fmt.Errorf("--transactions and --buyers are required")
	}

	result, err := svc.Build(domain.BuildRequest{
		Transactions: *files[0],
		Buyers:       *files[1],
		Products:     files[2],
		Template:     files[3],
		RequestID:    uuid.NewString(),
	})
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(opts.outDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}
	out := filepath.Join(opts.outDir, result.FileName)
	if err := os.WriteFile(out, result.Content, 0o644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", out, err)
	}
	return out, nil
}
