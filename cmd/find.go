package cmd

import (
	"fmt"

	"github.com/gnolang/wordtrie/formatter"
	"github.com/spf13/cobra"
)

var findCmd = &cobra.Command{
	Use:   "find <prefix> <paths...>",
	Short: "List the words beginning with a prefix",
	Long: `Indexes the given word lists and prints every word that begins with prefix.
An empty prefix ("") lists every word.
Example) wordtrie find ea words.txt dict/`,
	Args: cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := withTimeout()
		defer cancel()

		s, err := openSession(ctx, args[1:])
		if err != nil {
			return err
		}

		prefix := args[0]
		words, _ := s.idx.Find(prefix)

		out := cmd.OutOrStdout()
		if s.json() {
			return formatter.WriteJSON(out, formatter.NewWordsResult(prefix, words))
		}
		fmt.Fprint(out, formatter.FormatWords(prefix, words))
		fmt.Fprint(out, formatter.FormatSummary(len(words), prefix))
		return nil
	},
}
