package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Aman-CERP/termlens/internal/analysis"
	"github.com/Aman-CERP/termlens/pkg/scorer"
)

func newSearchCmd() *cobra.Command {
	var corpusPath string
	var field string
	var limit int

	cmd := &cobra.Command{
		Use:   "search <query>...",
		Short: "Rank documents with BM25",
		Args:  cobra.MinimumNArgs(1),
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

			// Analyze the query the same way the corpus was indexed
			analyzer := analysis.NewAnalyzer(
				analysis.WithMinTokenLength(cfg.Analysis.MinTokenLength),
				analysis.WithStopWords(cfg.Analysis.StopWords),
			)
			var terms []string
			for _, tok := range analyzer.Analyze(strings.Join(args, " ")) {
				terms = append(terms, tok.Term)
			}

			s := scorer.NewBM25Scorer(field,
				scorer.WithK1(cfg.Scoring.K1),
				scorer.WithB(cfg.Scoring.B),
			)
			results, err := s.Score(reader, terms, limit)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(results) == 0 {
				fmt.Fprintln(out, "no matches")
				return nil
			}
			for i, r := range results {
				fmt.Fprintf(out, "%2d. %-20s %.4f\n", i+1, r.DocID, r.Score)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&corpusPath, "corpus", "", "Path to JSON-lines corpus file (required)")
	cmd.Flags().StringVar(&field, "field", "", "Field to search (default from config)")
	cmd.Flags().IntVar(&limit, "limit", 10, "Maximum number of results")
	_ = cmd.MarkFlagRequired("corpus")

	return cmd
}
