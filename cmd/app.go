// Package cmd implements the CLI application to manage a stock book.
package cmd

import (
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"stockbook"
)

// Register the subcommands.
// A main package calls Register(), then Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&initCmd{}, "book")
	c.Register(&seedCmd{}, "book")
	c.Register(&fmtCmd{}, "book")

	c.Register(&addItemCmd{}, "records")
	c.Register(&updateItemCmd{}, "records")
	c.Register(&deleteItemCmd{}, "records")
	c.Register(&itemsCmd{}, "records")
	c.Register(&addCategoryCmd{}, "records")
	c.Register(&updateCategoryCmd{}, "records")
	c.Register(&deleteCategoryCmd{}, "records")
	c.Register(&categoriesCmd{}, "records")
	c.Register(&addVehicleCmd{}, "records")
	c.Register(&updateVehicleCmd{}, "records")
	c.Register(&deleteVehicleCmd{}, "records")
	c.Register(&vehiclesCmd{}, "records")

	c.Register(&stockInCmd{}, "postings")
	c.Register(&stockOutCmd{}, "postings")
	c.Register(&transactionsCmd{}, "postings")

	c.Register(&dailyCmd{}, "reports")
	c.Register(&valuationCmd{}, "reports")
	c.Register(&lowStockCmd{}, "reports")
	c.Register(&summaryCmd{}, "reports")

	c.Register(&topicCmd{}, "documentation")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var bookFile = flag.String("f", "stockbook.jsonl", "Path to the book file (JSONL format)")

// loadBook loads the app default book file, falling back to an empty
// book when the file does not exist yet.
func loadBook() (*stockbook.Ledger, error) {
	return stockbook.LoadBook(*bookFile, stockbook.DefaultCurrency)
}

// saveBook persists the ledger back to the app default book file.
func saveBook(l *stockbook.Ledger) error {
	return stockbook.SaveBook(*bookFile, l)
}

// fail prints the error and returns the failure status, so Execute
// implementations read as one-liners.
func fail(err error) subcommands.ExitStatus {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	return subcommands.ExitFailure
}
