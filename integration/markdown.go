// integration/markdown.go
package integration

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
)

// NoEntriesMarker is rendered in place of an empty table so an absent subset
// is visible rather than silently blank.
const NoEntriesMarker = "**No entries.**"

// markdownTable renders a titled markdown table. Missing optional fields must
// be passed as empty strings so every row keeps the full column set. An empty
// row set renders the no-entries marker instead of a bare header.
func markdownTable(title string, headers []string, rows [][]string) string {
	if len(rows) == 0 {
		return fmt.Sprintf("### %s\n%s", title, NoEntriesMarker)
	}

	t := table.NewWriter()

	headerRow := make(table.Row, len(headers))
	for i, h := range headers {
		headerRow[i] = h
	}
	t.AppendHeader(headerRow)

	for _, row := range rows {
		tableRow := make(table.Row, len(row))
		for i, cell := range row {
			tableRow[i] = cell
		}
		t.AppendRow(tableRow)
	}

	return fmt.Sprintf("### %s\n%s", title, t.RenderMarkdown())
}

// keyValueTable renders a two-column markdown table of field/value pairs,
// used for single-record projections.
func keyValueTable(title string, pairs [][2]string) string {
	rows := make([][]string, 0, len(pairs))
	for _, pair := range pairs {
		rows = append(rows, []string{pair[0], pair[1]})
	}
	return markdownTable(title, []string{"Field", "Value"}, rows)
}

func formatBool(b bool) string {
	if b {
		return "true"
	}
	return "false"
}

func formatInt(i int) string {
	return fmt.Sprintf("%d", i)
}
