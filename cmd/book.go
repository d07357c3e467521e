package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"stockbook"
)

// --- Init Command ---

type initCmd struct {
	currency string
}

func (*initCmd) Name() string     { return "init" }
func (*initCmd) Synopsis() string { return "create an empty book file" }
func (*initCmd) Usage() string {
	return `init [-currency <code>]

  Creates an empty book file with the given display currency.
`
}

func (c *initCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.currency, "currency", stockbook.DefaultCurrency, "Display currency for rates and valuations")
}

func (c *initCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if _, err := os.Stat(*bookFile); err == nil {
		fmt.Fprintf(os.Stderr, "Error: book file %q already exists\n", *bookFile)
		return subcommands.ExitFailure
	}
	book, err := stockbook.NewLedger(stockbook.NewMemoryStore(), c.currency)
	if err != nil {
		return fail(err)
	}
	if err := saveBook(book); err != nil {
		return fail(err)
	}
	fmt.Printf("Created book %s (%s)\n", *bookFile, c.currency)
	return subcommands.ExitSuccess
}

// --- Seed Command ---

type seedCmd struct{}

func (*seedCmd) Name() string     { return "seed" }
func (*seedCmd) Synopsis() string { return "populate an empty book with demo data" }
func (*seedCmd) Usage() string {
	return `seed

  Populates an empty book with a small demo inventory. A book that
  already holds records is left untouched.
`
}

func (c *seedCmd) SetFlags(f *flag.FlagSet) {}

func (c *seedCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	book, err := loadBook()
	if err != nil {
		return fail(err)
	}
	seeded, err := book.Seed()
	if err != nil {
		return fail(err)
	}
	if !seeded {
		fmt.Println("Book already holds records, skipping seeding.")
		return subcommands.ExitSuccess
	}
	if err := saveBook(book); err != nil {
		return fail(err)
	}
	fmt.Printf("Seeded demo data into %s\n", *bookFile)
	return subcommands.ExitSuccess
}

// --- Fmt Command ---

type fmtCmd struct{}

func (*fmtCmd) Name() string { return "fmt" }
func (*fmtCmd) Synopsis() string {
	return "validates and rewrites the book file into a canonical form"
}
func (*fmtCmd) Usage() string {
	return `fmt

  Reads the whole book, validates it, and writes it back sorted: header
  first, then categories, items, vehicles and transactions by date.
`
}

func (c *fmtCmd) SetFlags(f *flag.FlagSet) {}

func (c *fmtCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	book, err := loadBook()
	if err != nil {
		return fail(err)
	}
	if err := saveBook(book); err != nil {
		return fail(err)
	}
	fmt.Printf("Formatted %s\n", *bookFile)
	return subcommands.ExitSuccess
}
