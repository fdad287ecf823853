package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"claimflow/internal/classifier"
	"claimflow/internal/textextract"
)

func newClassifyCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "classify FILE...",
		Short: "Print the detected document type and indicator scores of each file",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, logger, err := root.setup()
			if err != nil {
				return err
			}
			files, err := readFiles(cmd.Context(), args)
			if err != nil {
				return err
			}

			extractor := textextract.New()
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "FILE\tTYPE\tBILL\tDISCHARGE_SUMMARY\tID_CARD")
			for _, f := range files {
				text, err := extractor.ExtractText(cmd.Context(), f.Content)
				if err != nil {
					logger.Warn("classify: text extraction failed", "file", f.Filename, "error", err)
					fmt.Fprintf(tw, "%s\t-\t-\t-\t-\n", f.Filename)
					continue
				}
				scores := classifier.ScoreText(text)
				fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%d\n",
					f.Filename, classifier.Classify(f.Filename, text),
					scores.Bill, scores.DischargeSummary, scores.IDCard)
			}
			return tw.Flush()
		},
	}
}
