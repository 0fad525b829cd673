package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newStatsCmd() *cobra.Command {
	var corpusPath string
	var field string

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Print aggregate statistics for a field",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if field == "" {
				field = cfg.Scoring.Field
			}

			docs, err := loadCorpus(corpusPath)
			if err != nil {
				return err
			}
			reader, err := buildReader(cmd.Context(), cfg, docs)
			if err != nil {
				return err
			}

			stats, err := reader.CollectionStatistics(field)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "field:                 %s\n", field)
			fmt.Fprintf(out, "documents:             %d\n", reader.NumDocs())
			fmt.Fprintf(out, "segments:              %d\n", len(reader.Segments()))
			fmt.Fprintf(out, "doc count (field):     %d\n", stats.DocCount)
			fmt.Fprintf(out, "sum total term freq:   %d\n", stats.SumTotalTermFreq)
			fmt.Fprintf(out, "sum doc freq:          %d\n", stats.SumDocFreq)
			return nil
		},
	}

	cmd.Flags().StringVar(&corpusPath, "corpus", "", "Path to JSON-lines corpus file (required)")
	cmd.Flags().StringVar(&field, "field", "", "Field to report on (default from config)")
	_ = cmd.MarkFlagRequired("corpus")

	return cmd
}
