package cmd

import (
	"fmt"

	"github.com/gnolang/wordtrie/formatter"
	"github.com/spf13/cobra"
)

var lookupSoft bool

var lookupCmd = &cobra.Command{
	Use:   "lookup <word> <paths...>",
	Short: "Show where a word occurs",
	Long: `Prints the file and line of every occurrence of word.
With --soft, occurrences of every word beginning with word are included.`,
	Args: cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := withTimeout()
		defer cancel()

		s, err := openSession(ctx, args[1:])
		if err != nil {
			return err
		}

		word := args[0]
		locs, _ := s.idx.Lookup(word, lookupSoft)

		out := cmd.OutOrStdout()
		if s.json() {
			return formatter.WriteJSON(out, formatter.LocationsResult{Word: word, Locations: locs})
		}
		fmt.Fprint(out, formatter.FormatLocations(word, locs))
		return nil
	},
}

func init() {
	lookupCmd.Flags().BoolVar(&lookupSoft, "soft", false, "Include every word that begins with the given word")
}
