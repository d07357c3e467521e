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

// --- Daily Command ---

type dailyCmd struct {
	date string
}

func (*dailyCmd) Name() string     { return "daily" }
func (*dailyCmd) Synopsis() string { return "display the stock movements of a single day" }
func (*dailyCmd) Usage() string {
	return `daily [-d <date>]

  Displays each item's opening stock, movements and closing stock for
  one day, derived from the live stock levels.
`
}

func (c *dailyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", stockbook.Today().String(), "Date for the report (YYYY-MM-DD)")
}

func (c *dailyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	day, err := stockbook.ParseDate(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}
	book, err := loadBook()
	if err != nil {
		return fail(err)
	}
	report, err := book.DailyStockReport(day)
	if err != nil {
		return fail(err)
	}
	printMarkdown(renderer.DailyMarkdown(report))
	return subcommands.ExitSuccess
}

// --- Valuation Command ---

type valuationCmd struct{}

func (*valuationCmd) Name() string     { return "valuation" }
func (*valuationCmd) Synopsis() string { return "display the inventory valuation" }
func (*valuationCmd) Usage() string {
	return `valuation

  Prices every item at current stock times rate, highest value first.
`
}

func (c *valuationCmd) SetFlags(f *flag.FlagSet) {}

func (c *valuationCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	book, err := loadBook()
	if err != nil {
		return fail(err)
	}
	v, err := book.InventoryValuation()
	if err != nil {
		return fail(err)
	}
	printMarkdown(renderer.ValuationMarkdown(v))
	return subcommands.ExitSuccess
}

// --- Low Stock Command ---

type lowStockCmd struct{}

func (*lowStockCmd) Name() string     { return "low-stock" }
func (*lowStockCmd) Synopsis() string { return "list items below their stock threshold" }
func (*lowStockCmd) Usage() string {
	return `low-stock

  Lists the items whose current stock fell below their threshold.
`
}

func (c *lowStockCmd) SetFlags(f *flag.FlagSet) {}

func (c *lowStockCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	book, err := loadBook()
	if err != nil {
		return fail(err)
	}
	alerts, err := book.LowStockItems()
	if err != nil {
		return fail(err)
	}
	printMarkdown(renderer.LowStockMarkdown(alerts))
	return subcommands.ExitSuccess
}

// --- Summary Command ---

type summaryCmd struct {
	recent int
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display the stock dashboard" }
func (*summaryCmd) Usage() string {
	return `summary [-n <count>]

  Displays headline counts, low stock alerts and recent movements.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.recent, "n", 5, "Number of recent transactions to show")
}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	book, err := loadBook()
	if err != nil {
		return fail(err)
	}
	s, err := book.Summary()
	if err != nil {
		return fail(err)
	}
	alerts, err := book.LowStockItems()
	if err != nil {
		return fail(err)
	}
	txs, err := book.Transactions()
	if err != nil {
		return fail(err)
	}
	// Most recent last in the ledger, show the tail newest first.
	var recent []stockbook.Transaction
	for i := len(txs) - 1; i >= 0 && len(recent) < c.recent; i-- {
		recent = append(recent, txs[i])
	}
	printMarkdown(renderer.SummaryMarkdown(s, alerts, recent))
	return subcommands.ExitSuccess
}
