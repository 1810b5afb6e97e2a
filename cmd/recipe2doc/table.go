package main

import (
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// renderResultsTable formats per-file conversion outcomes for verbose output.
func renderResultsTable(results []ConversionResult) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"Recipe", "Output", "Duration", "Status"})

	for _, r := range results {
		status := "ok"
		outPath := r.OutputPath
		if r.Err != nil {
			status = "failed"
			outPath = "-"
		}
		tw.AppendRow(table.Row{
			r.InputPath,
			outPath,
			r.Duration.Round(time.Millisecond).String(),
			status,
		})
	}

	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 3, Align: text.AlignRight},
	})
	return tw.Render()
}
