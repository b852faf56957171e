package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/example/cipherprep/internal/freqenc"
	"github.com/spf13/cobra"
)

func newStatsCmd() *cobra.Command {
	var text string

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show the frequency-rank table for a token string",
		RunE: func(cmd *cobra.Command, _ []string) error {
			input, err := readInputText(text, cmd.InOrStdin())
			if err != nil {
				return err
			}

			stats := freqenc.Stats(input)

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 2, 4, 2, ' ', 0)
			fmt.Fprintln(w, "RANK\tTOKEN\tCOUNT\tFIRST")
			for _, s := range stats {
				fmt.Fprintf(w, "%d\t%s\t%d\t%d\n", s.Rank, s.Token, s.Count, s.First)
			}
			return w.Flush()
		},
	}

	cmd.Flags().StringVar(&text, "text", "", "Token string to analyze (if empty, read from stdin)")

	return cmd
}
