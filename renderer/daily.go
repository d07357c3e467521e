// Package renderer turns stock reports into markdown. It is the display
// collaborator of the ledger: the core computes, this package formats.
package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"

	"stockbook"
)

// DailyMarkdown renders the per-item stock movements of one day.
func DailyMarkdown(r *stockbook.DailyStockReport) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Daily Stock Report for %s", r.Date))

	if len(r.Entries) == 0 {
		doc.PlainText("No items in the book.")
		return doc.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Item", "Opening", "In", "Out", "Closing"},
	}
	for _, e := range r.Entries {
		table.Rows = append(table.Rows, []string{
			e.ItemName,
			e.OpeningStock.String(),
			e.StockIn.String(),
			e.StockOut.String(),
			e.ClosingStock.String(),
		})
	}
	doc.Table(table)

	return doc.String()
}
