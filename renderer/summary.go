package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"

	"stockbook"
)

// SummaryMarkdown renders the dashboard view: headline counts, the low
// stock alerts, and the most recent movements.
func SummaryMarkdown(s *stockbook.StockSummary, alerts []stockbook.LowStockAlert, recent []stockbook.Transaction) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Stock Summary")

	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"", ""},
		Rows: [][]string{
			{"Total Items", fmt.Sprintf("%d", s.TotalItems)},
			{"Total Vehicles", fmt.Sprintf("%d", s.TotalVehicles)},
			{"Total Stock Quantity", s.TotalStockQuantity.String()},
		},
	})

	if len(alerts) > 0 {
		doc.H2("Low Stock")
		var lines []string
		for _, a := range alerts {
			lines = append(lines, fmt.Sprintf("%s: %s left (threshold %s)",
				a.ItemName, a.CurrentStock, a.LowStockThreshold))
		}
		doc.BulletList(lines...)
	}

	if len(recent) > 0 {
		doc.H2("Recent Transactions")
		var lines []string
		for _, tx := range recent {
			lines = append(lines, Transaction(tx))
		}
		doc.BulletList(lines...)
	}

	return doc.String()
}
