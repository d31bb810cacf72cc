package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
)

func printJson(data any) {
	rendered, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		fatal("failed to render output", err)
	}
	fmt.Println(string(rendered))
}

func newTable() table.Writer {
	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	t.SetOutputMirror(os.Stdout)
	return t
}

// printSummaryTable renders the interesting columns of a per-article
// listing. Records are raw upstream maps, missing fields render blank.
func printSummaryTable(listing []map[string]any) {
	t := newTable()
	t.AppendHeader(table.Row{"Post ID", "Title", "Views", "Reads", "Claps"})
	for _, record := range listing {
		t.AppendRow(table.Row{
			stringField(record, "postId"),
			stringField(record, "title"),
			numberField(record, "views"),
			numberField(record, "reads"),
			numberField(record, "claps"),
		})
	}
	t.Render()
}

func stringField(record map[string]any, key string) string {
	v, _ := record[key].(string)
	return v
}

func numberField(record map[string]any, key string) string {
	v, ok := record[key].(float64)
	if !ok {
		return ""
	}
	return fmt.Sprintf("%.0f", v)
}
