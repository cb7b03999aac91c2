package formatter

import (
	"fmt"
	"sort"
	"strings"

	"github.com/fatih/color"
)

var (
	prefixStyle  = color.New(color.FgGreen, color.Bold)
	headerStyle  = color.New(color.FgYellow, color.Bold)
	fileStyle    = color.New(color.FgCyan, color.Bold)
	lineStyle    = color.New(color.FgHiBlue, color.Bold)
	countStyle   = color.New(color.FgHiYellow, color.Bold)
	removedStyle = color.New(color.FgRed, color.Bold)
	noStyle      = color.New(color.FgWhite)
)

// SetColor turns colored output on or off for every formatter.
// fatih/color already disables itself when stdout is not a terminal.
func SetColor(enabled bool) {
	color.NoColor = !enabled
}

/***** Words *****/

// FormatWords lists words one per line in lexical order, with the part that
// matched prefix highlighted. Words that do not literally start with prefix,
// for example after case folding or normalization, are printed plainly.
func FormatWords(prefix string, words []string) string {
	sorted := append([]string(nil), words...)
	sort.Strings(sorted)

	var builder strings.Builder
	for _, word := range sorted {
		rest, ok := strings.CutPrefix(word, prefix)
		if !ok || prefix == "" {
			builder.WriteString(noStyle.Sprintln(word))
			continue
		}
		builder.WriteString(prefixStyle.Sprint(prefix))
		builder.WriteString(noStyle.Sprintln(rest))
	}
	return builder.String()
}

// FormatSummary renders the closing line of a listing, e.g.
// "3 words matching \"ea\"".
func FormatSummary(count int, prefix string) string {
	noun := plural(count, "word", "words")
	if prefix == "" {
		return countStyle.Sprintf("%d", count) + fmt.Sprintf(" %s\n", noun)
	}
	return countStyle.Sprintf("%d", count) + fmt.Sprintf(" %s matching %q\n", noun, prefix)
}

// FormatPruned reports the outcome of a prefix removal.
func FormatPruned(prefix string, removed, remaining int) string {
	return removedStyle.Sprint("pruned: ") +
		headerStyle.Sprintf("%q", prefix) + "\n" +
		lineStyle.Sprint(" --> ") +
		fmt.Sprintf("%s locations removed, %s words remaining\n",
			countStyle.Sprintf("%d", removed), countStyle.Sprintf("%d", remaining))
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}

func calculateMaxLineNumWidth(maxLine int) int {
	return len(fmt.Sprintf("%d", maxLine))
}
