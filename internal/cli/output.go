package cli

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
)

func renderTable(w io.Writer, results []generated) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"#", "Password", "Level", "Score", "Entropy"})
	for i, r := range results {
		t.AppendRow(table.Row{
			i + 1,
			r.password,
			r.strength.Level,
			fmt.Sprintf("%.1f", r.strength.Score),
			fmt.Sprintf("%.1f", r.strength.Entropy),
		})
	}
	t.Render()
}
