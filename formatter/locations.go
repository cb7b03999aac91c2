package formatter

import (
	"fmt"
	"sort"
	"strings"

	"github.com/gnolang/wordtrie/internal/index"
)

// FormatLocations renders every occurrence of word grouped by file:
//
//	word: apple
//	 --> fruits.txt
//	  3 |
//	 12 |
func FormatLocations(word string, locs []index.Location) string {
	var builder strings.Builder
	builder.WriteString(headerStyle.Sprint("word: ") + noStyle.Sprintln(word))

	if len(locs) == 0 {
		builder.WriteString(lineStyle.Sprint(" --> ") + "no occurrences\n")
		return builder.String()
	}

	byFile := make(map[string][]int)
	maxLine := 0
	for _, loc := range locs {
		byFile[loc.File] = append(byFile[loc.File], loc.Line)
		maxLine = max(maxLine, loc.Line)
	}

	files := make([]string, 0, len(byFile))
	for f := range byFile {
		files = append(files, f)
	}
	sort.Strings(files)

	width := calculateMaxLineNumWidth(maxLine)
	for _, f := range files {
		lines := byFile[f]
		sort.Ints(lines)

		builder.WriteString(lineStyle.Sprint(" --> ") + fileStyle.Sprintln(f))
		for _, line := range lines {
			builder.WriteString(lineStyle.Sprintf(" %*d |\n", width, line))
		}
	}
	builder.WriteString(countStyle.Sprintf("%d", len(locs)) +
		fmt.Sprintf(" %s in %d %s\n",
			plural(len(locs), "occurrence", "occurrences"),
			len(files), plural(len(files), "file", "files")))
	return builder.String()
}
