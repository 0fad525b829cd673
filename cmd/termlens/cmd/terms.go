package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Aman-CERP/termlens/internal/lookup"
)

func newTermsCmd() *cobra.Command {
	var corpusPath string
	var field string
	var withPositions bool

	cmd := &cobra.Command{
		Use:   "terms <term>...",
		Short: "Print per-term statistics and per-document frequencies",
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

			session, err := lookup.NewShardLookup(reader)
			if err != nil {
				return err
			}
			fieldStats, err := session.Field(field)
			if err != nil {
				return err
			}

			flags := lookup.DefaultFlags
			if withPositions {
				flags |= lookup.FlagPositions | lookup.FlagOffsets
			}

			cursors := make([]*lookup.TermCursor, 0, len(args))
			for _, term := range args {
				cursor, err := fieldStats.TermWithFlags(term, flags)
				if err != nil {
					return err
				}
				cursors = append(cursors, cursor)
			}

			out := cmd.OutOrStdout()
			for _, cursor := range cursors {
				fmt.Fprintf(out, "%s: df=%d ttf=%d\n", cursor.Text(), cursor.Df(), cursor.Ttf())
			}

			// Walk the shard the way a scoring pass does
			for _, seg := range reader.Segments() {
				if err := session.SetNextReader(lookup.WrapSegment(seg)); err != nil {
					return err
				}
				for doc := 0; doc < seg.DocCount(); doc++ {
					if err := session.SetNextDoc(doc); err != nil {
						return err
					}
					for _, cursor := range cursors {
						if cursor.Tf() == 0 {
							continue
						}
						extID, _ := seg.ExternalID(uint32(doc))
						fmt.Fprintf(out, "  %s in %s: tf=%d", cursor.Text(), extID, cursor.Tf())
						if withPositions {
							positions, err := cursor.Positions()
							if err != nil {
								return err
							}
							for _, p := range positions {
								fmt.Fprintf(out, " @%d[%d:%d]", p.Position, p.StartOffset, p.EndOffset)
							}
						}
						fmt.Fprintln(out)
					}
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&corpusPath, "corpus", "", "Path to JSON-lines corpus file (required)")
	cmd.Flags().StringVar(&field, "field", "", "Field to look terms up in (default from config)")
	cmd.Flags().BoolVar(&withPositions, "positions", false, "Include position and offset data")
	_ = cmd.MarkFlagRequired("corpus")

	return cmd
}
