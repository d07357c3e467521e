package renderer

import (
	"bytes"

	md "github.com/nao1215/markdown"

	"stockbook"
)

// ValuationMarkdown renders the inventory valuation, highest value first.
func ValuationMarkdown(v *stockbook.Valuation) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Inventory Valuation")

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Item", "Category", "Stock", "Rate", "Total Value"},
	}
	for _, e := range v.Entries {
		table.Rows = append(table.Rows, []string{
			e.ItemName,
			e.Category,
			e.CurrentStock.String(),
			e.Rate.String(),
			e.TotalValue.String(),
		})
	}
	table.Rows = append(table.Rows, []string{
		md.Bold("Total"), "", "", "", md.Bold(v.Total.String()),
	})
	doc.Table(table)

	return doc.String()
}
