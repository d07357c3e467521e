package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"stockbook"
	"stockbook/renderer"
)

// postCmd holds what stock-in and stock-out share.
type postCmd struct {
	date     string
	itemID   string
	quantity float64
	vehicle  string
}

func (c *postCmd) setFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", stockbook.Today().String(), "Transaction date (YYYY-MM-DD)")
	f.StringVar(&c.itemID, "item", "", "Item id")
	f.Float64Var(&c.quantity, "q", 0, "Quantity moved")
	f.StringVar(&c.vehicle, "vehicle", "", "Vehicle id (optional)")
}

func (c *postCmd) post(f *flag.FlagSet, kind stockbook.TransactionType) subcommands.ExitStatus {
	if c.itemID == "" || c.quantity <= 0 {
		f.Usage()
		return subcommands.ExitUsageError
	}
	day, err := stockbook.ParseDate(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}

	book, err := loadBook()
	if err != nil {
		return fail(err)
	}
	tx, err := book.AddTransaction(stockbook.TransactionInput{
		Date:      day,
		ItemID:    c.itemID,
		Quantity:  stockbook.Q(c.quantity),
		Type:      kind,
		VehicleID: c.vehicle,
	})
	if err != nil {
		return fail(err)
	}
	if err := saveBook(book); err != nil {
		return fail(err)
	}
	fmt.Printf("Posted %s\n", renderer.Transaction(tx))
	return subcommands.ExitSuccess
}

// --- Stock In Command ---

type stockInCmd struct{ postCmd }

func (*stockInCmd) Name() string     { return "stock-in" }
func (*stockInCmd) Synopsis() string { return "record goods received into stock" }
func (*stockInCmd) Usage() string {
	return `stock-in -item <id> -q <quantity> [-d <date>] [-vehicle <id>]

  Increases the item's current stock and records the movement.
`
}

func (c *stockInCmd) SetFlags(f *flag.FlagSet) { c.setFlags(f) }

func (c *stockInCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return c.post(f, stockbook.StockIn)
}

// --- Stock Out Command ---

type stockOutCmd struct{ postCmd }

func (*stockOutCmd) Name() string     { return "stock-out" }
func (*stockOutCmd) Synopsis() string { return "record goods dispatched from stock" }
func (*stockOutCmd) Usage() string {
	return `stock-out -item <id> -q <quantity> [-d <date>] [-vehicle <id>]

  Decreases the item's current stock and records the movement. A
  dispatch larger than the current stock is rejected.
`
}

func (c *stockOutCmd) SetFlags(f *flag.FlagSet) { c.setFlags(f) }

func (c *stockOutCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return c.post(f, stockbook.StockOut)
}

// --- Transactions Command ---

type transactionsCmd struct {
	date    string
	itemID  string
	vehicle string
	kind    string
}

func (*transactionsCmd) Name() string     { return "transactions" }
func (*transactionsCmd) Synopsis() string { return "list recorded stock movements" }
func (*transactionsCmd) Usage() string {
	return `transactions [-d <date>] [-item <id>] [-vehicle <id>] [-type <STOCK_IN|STOCK_OUT>]

  Lists transactions in chronological order, optionally filtered.
`
}

func (c *transactionsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "Only movements on this date (YYYY-MM-DD)")
	f.StringVar(&c.itemID, "item", "", "Only movements of this item")
	f.StringVar(&c.vehicle, "vehicle", "", "Only movements with this vehicle")
	f.StringVar(&c.kind, "type", "", "Only movements of this type")
}

func (c *transactionsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var filters []func(stockbook.Transaction) bool
	if c.date != "" {
		day, err := stockbook.ParseDate(c.date)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
			return subcommands.ExitUsageError
		}
		filters = append(filters, stockbook.ByDate(day))
	}
	if c.itemID != "" {
		filters = append(filters, stockbook.ByItem(c.itemID))
	}
	if c.vehicle != "" {
		filters = append(filters, stockbook.ByVehicle(c.vehicle))
	}
	if c.kind != "" {
		kind := stockbook.TransactionType(c.kind)
		if !kind.Valid() {
			fmt.Fprintf(os.Stderr, "Error: unknown transaction type %q\n", c.kind)
			return subcommands.ExitUsageError
		}
		filters = append(filters, stockbook.ByType(kind))
	}

	book, err := loadBook()
	if err != nil {
		return fail(err)
	}
	txs, err := book.Transactions(filters...)
	if err != nil {
		return fail(err)
	}
	printMarkdown(renderer.TransactionsMarkdown(txs))
	return subcommands.ExitSuccess
}
