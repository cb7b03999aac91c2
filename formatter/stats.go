package formatter

import (
	"bytes"
	"fmt"
	"sort"
	"strings"
	"text/template"

	"github.com/gnolang/wordtrie/internal/index"
)

const statsTemplate = `{{header "words" -}} {{count .Words}}
{{header "files" -}} {{count .Files}}
{{- if .Longest }}
{{header "longest" -}} {{list .Longest}}
{{- end }}
{{- if .Shortest }}
{{header "shortest" -}} {{list .Shortest}}
{{- end }}
`

const extremesTemplate = `{{header "longest" -}} {{list .Longest}}
{{header "shortest" -}} {{list .Shortest}}
`

var (
	statsTmpl    = template.Must(template.New("stats").Funcs(statsFuncs()).Parse(statsTemplate))
	extremesTmpl = template.Must(template.New("extremes").Funcs(statsFuncs()).Parse(extremesTemplate))
)

func statsFuncs() template.FuncMap {
	return template.FuncMap{
		"header": func(name string) string {
			return headerStyle.Sprintf("%-10s", name+":")
		},
		"count": func(n int) string {
			return countStyle.Sprintf("%d", n)
		},
		"list": func(words []string) string {
			if len(words) == 0 {
				return noStyle.Sprint("-")
			}
			sorted := append([]string(nil), words...)
			sort.Strings(sorted)
			return noStyle.Sprint(strings.Join(sorted, ", "))
		},
	}
}

// FormatStats renders the word count, file count and extreme words of an
// index.
func FormatStats(stats index.Stats) string {
	return execute(statsTmpl, stats)
}

// FormatExtremes renders the longest and shortest words.
func FormatExtremes(longest, shortest []string) string {
	return execute(extremesTmpl, index.Stats{Longest: longest, Shortest: shortest})
}

func execute(tmpl *template.Template, data any) string {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return fmt.Sprintf("Error formatting output: %v", err)
	}
	return buf.String()
}
