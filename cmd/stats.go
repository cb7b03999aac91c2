package cmd

import (
	"fmt"

	"github.com/gnolang/wordtrie/formatter"
	"github.com/spf13/cobra"
)

var extremesCmd = &cobra.Command{
	Use:   "extremes <paths...>",
	Short: "Print the longest and shortest words",
	Long: `Word length is counted in tokens of the configured tokenizer, so with the
default grapheme tokenizer "é" counts as one.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := withTimeout()
		defer cancel()

		s, err := openSession(ctx, args)
		if err != nil {
			return err
		}

		stats := s.idx.Stats()
		out := cmd.OutOrStdout()
		if s.json() {
			return formatter.WriteJSON(out, struct {
				Longest  []string `json:"longest"`
				Shortest []string `json:"shortest"`
			}{stats.Longest, stats.Shortest})
		}
		fmt.Fprint(out, formatter.FormatExtremes(stats.Longest, stats.Shortest))
		return nil
	},
}

var statsCmd = &cobra.Command{
	Use:   "stats <paths...>",
	Short: "Print word and file counts",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := withTimeout()
		defer cancel()

		s, err := openSession(ctx, args)
		if err != nil {
			return err
		}

		stats := s.idx.Stats()
		out := cmd.OutOrStdout()
		if s.json() {
			return formatter.WriteJSON(out, stats)
		}
		fmt.Fprint(out, formatter.FormatStats(stats))
		return nil
	},
}
