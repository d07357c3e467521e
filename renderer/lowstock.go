package renderer

import (
	"bytes"

	md "github.com/nao1215/markdown"

	"stockbook"
)

// LowStockMarkdown renders the list of items below their threshold.
func LowStockMarkdown(alerts []stockbook.LowStockAlert) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Low Stock Alerts")

	if len(alerts) == 0 {
		doc.PlainText("All stocked up: no item is below its threshold.")
		return doc.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Item", "Current", "Threshold"},
	}
	for _, a := range alerts {
		table.Rows = append(table.Rows, []string{
			a.ItemName,
			a.CurrentStock.String(),
			a.LowStockThreshold.String(),
		})
	}
	doc.Table(table)

	return doc.String()
}
