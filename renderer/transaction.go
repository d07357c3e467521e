package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"

	"stockbook"
)

// Transaction renders a single movement as one line of prose.
func Transaction(tx stockbook.Transaction) string {
	verb := "received"
	if tx.Type == stockbook.StockOut {
		verb = "dispatched"
	}
	s := fmt.Sprintf("%s: %s %s of %q", tx.Date, verb, tx.Quantity, tx.ItemName)
	if tx.VehicleName != "" {
		s += fmt.Sprintf(" via %q", tx.VehicleName)
	}
	return s
}

// TransactionsMarkdown renders a chronological transaction log.
func TransactionsMarkdown(txs []stockbook.Transaction) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Transactions")

	if len(txs) == 0 {
		doc.PlainText("No transactions recorded.")
		return doc.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignLeft,
			md.AlignLeft,
			md.AlignRight,
			md.AlignLeft,
		},
		Header: []string{"Date", "Type", "Item", "Quantity", "Vehicle"},
	}
	for _, tx := range txs {
		table.Rows = append(table.Rows, []string{
			tx.Date.String(),
			string(tx.Type),
			tx.ItemName,
			tx.Quantity.String(),
			tx.VehicleName,
		})
	}
	doc.Table(table)

	return doc.String()
}
