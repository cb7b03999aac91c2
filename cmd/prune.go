package cmd

import (
	"fmt"

	"github.com/gnolang/wordtrie/formatter"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var pruneList bool

var pruneCmd = &cobra.Command{
	Use:   "prune <prefix> <paths...>",
	Short: "Remove every word that extends a prefix",
	Long: `Indexes the given word lists, removes every word that strictly extends prefix
and reports how many occurrences were dropped. The prefix itself is kept if it
is a word. Files on disk are not modified.`,
	Args: cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := withTimeout()
		defer cancel()

		s, err := openSession(ctx, args[1:])
		if err != nil {
			return err
		}

		prefix := args[0]
		locs, ok := s.idx.RemovePrefix(prefix)
		if !ok {
			logger.Debug("Prefix not found", zap.String("prefix", prefix))
		}

		out := cmd.OutOrStdout()
		result := formatter.PruneResult{Prefix: prefix, Removed: len(locs), Remaining: s.idx.Len()}
		if s.json() {
			return formatter.WriteJSON(out, result)
		}

		fmt.Fprint(out, formatter.FormatPruned(result.Prefix, result.Removed, result.Remaining))
		if pruneList {
			words, _ := s.idx.Find("")
			fmt.Fprint(out, formatter.FormatWords("", words))
		}
		return nil
	},
}

func init() {
	pruneCmd.Flags().BoolVar(&pruneList, "list", false, "Print the remaining words")
}
