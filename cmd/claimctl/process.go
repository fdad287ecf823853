package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"claimflow/internal/service"
	"claimflow/internal/textextract"
	"claimflow/internal/validator"
)

type processOptions struct {
	output      string
	out         string
	concurrency int
}

func newProcessCmd(root *rootOptions) *cobra.Command {
	opts := &processOptions{}
	cmd := &cobra.Command{
		Use:   "process FILE...",
		Short: "Classify, extract, validate and decide a claim batch",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := parseOutput(opts.output)
			if err != nil {
				return err
			}

			cfg, logger, err := root.setup()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("concurrency") {
				cfg.Pipeline.Concurrency = max(opts.concurrency, 1)
			}

			files, err := readFiles(cmd.Context(), args)
			if err != nil {
				return err
			}

			svc := service.NewClaimService(
				textextract.New(),
				validator.NewDefaultEngine(logger),
				cfg.Pipeline,
				logger,
			)
			result, err := svc.ProcessClaim(cmd.Context(), files)
			if err != nil {
				return err
			}

			if opts.out == "" {
				return render(cmd.OutOrStdout(), format, result)
			}
			f, err := os.Create(opts.out)
			if err != nil {
				return fmt.Errorf("creating %s: %w", opts.out, err)
			}
			if err := render(f, format, result); err != nil {
				_ = f.Close()
				return err
			}
			return f.Close()
		},
	}
	cmd.Flags().StringVarP(&opts.output, "output", "o", string(outputJSON), "output format: json, yaml, csv or xlsx")
	cmd.Flags().StringVar(&opts.out, "out", "", "write output to this path instead of stdout")
	cmd.Flags().IntVar(&opts.concurrency, "concurrency", 0, "files processed in parallel; defaults to CLAIMFLOW_PIPELINE_CONCURRENCY")
	return cmd
}
