package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"

	"stockbook"
)

// --- Add Item Command ---

type addItemCmd struct {
	name        string
	description string
	sku         string
	category    string
	rate        float64
	opening     float64
	threshold   float64
}

func (*addItemCmd) Name() string     { return "add-item" }
func (*addItemCmd) Synopsis() string { return "register a new item in the book" }
func (*addItemCmd) Usage() string {
	return `add-item -name <name> -rate <price> [-sku <sku>] [-category <name>] [-opening <qty>] [-threshold <qty>]

  Registers a new item. Its current stock starts at the opening stock.
`
}

func (c *addItemCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Item name")
	f.StringVar(&c.description, "desc", "", "Item description")
	f.StringVar(&c.sku, "sku", "", "Stock keeping unit")
	f.StringVar(&c.category, "category", stockbook.GeneralMerchandise, "Category name")
	f.Float64Var(&c.rate, "rate", 0, "Unit price")
	f.Float64Var(&c.opening, "opening", 0, "Opening stock quantity")
	f.Float64Var(&c.threshold, "threshold", 0, "Low stock threshold (0 disables alerts)")
}

func (c *addItemCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.name == "" || c.rate <= 0 {
		f.Usage()
		return subcommands.ExitUsageError
	}
	book, err := loadBook()
	if err != nil {
		return fail(err)
	}
	it, err := book.AddItem(stockbook.ItemInput{
		Name:              c.name,
		Description:       c.description,
		SKU:               c.sku,
		Category:          c.category,
		Rate:              stockbook.M(c.rate, book.Currency()),
		OpeningStock:      stockbook.Q(c.opening),
		LowStockThreshold: stockbook.Q(c.threshold),
	})
	if err != nil {
		return fail(err)
	}
	if err := saveBook(book); err != nil {
		return fail(err)
	}
	fmt.Printf("Added item %q (%s)\n", it.Name, it.ID)
	return subcommands.ExitSuccess
}

// --- Update Item Command ---

type updateItemCmd struct {
	id          string
	name        string
	description string
	sku         string
	category    string
	rate        float64
	opening     float64
	threshold   float64
}

func (*updateItemCmd) Name() string     { return "update-item" }
func (*updateItemCmd) Synopsis() string { return "update fields of an existing item" }
func (*updateItemCmd) Usage() string {
	return `update-item -id <id> [-name <name>] [-rate <price>] [-opening <qty>] ...

  Updates the given fields, leaving the others untouched. Changing the
  opening stock shifts the current stock by the same amount.
`
}

func (c *updateItemCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Item id")
	f.StringVar(&c.name, "name", "", "New item name")
	f.StringVar(&c.description, "desc", "", "New description")
	f.StringVar(&c.sku, "sku", "", "New stock keeping unit")
	f.StringVar(&c.category, "category", "", "New category name")
	f.Float64Var(&c.rate, "rate", -1, "New unit price")
	f.Float64Var(&c.opening, "opening", -1, "New opening stock quantity")
	f.Float64Var(&c.threshold, "threshold", -1, "New low stock threshold")
}

func (c *updateItemCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == "" {
		f.Usage()
		return subcommands.ExitUsageError
	}
	book, err := loadBook()
	if err != nil {
		return fail(err)
	}

	var patch stockbook.ItemPatch
	if c.name != "" {
		patch.Name = &c.name
	}
	if c.description != "" {
		patch.Description = &c.description
	}
	if c.sku != "" {
		patch.SKU = &c.sku
	}
	if c.category != "" {
		patch.Category = &c.category
	}
	if c.rate >= 0 {
		rate := stockbook.M(c.rate, book.Currency())
		patch.Rate = &rate
	}
	if c.opening >= 0 {
		opening := stockbook.Q(c.opening)
		patch.OpeningStock = &opening
	}
	if c.threshold >= 0 {
		threshold := stockbook.Q(c.threshold)
		patch.LowStockThreshold = &threshold
	}

	it, err := book.UpdateItem(c.id, patch)
	if err != nil {
		return fail(err)
	}
	if err := saveBook(book); err != nil {
		return fail(err)
	}
	fmt.Printf("Updated item %q (%s)\n", it.Name, it.ID)
	return subcommands.ExitSuccess
}

// --- Delete Item Command ---

type deleteItemCmd struct {
	id string
}

func (*deleteItemCmd) Name() string     { return "delete-item" }
func (*deleteItemCmd) Synopsis() string { return "delete an item and its transactions" }
func (*deleteItemCmd) Usage() string {
	return `delete-item -id <id>

  Deletes the item and every transaction that references it.
`
}

func (c *deleteItemCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Item id")
}

func (c *deleteItemCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == "" {
		f.Usage()
		return subcommands.ExitUsageError
	}
	book, err := loadBook()
	if err != nil {
		return fail(err)
	}
	deleted, err := book.DeleteItem(c.id)
	if err != nil {
		return fail(err)
	}
	if !deleted {
		fmt.Printf("No item %q in the book.\n", c.id)
		return subcommands.ExitSuccess
	}
	if err := saveBook(book); err != nil {
		return fail(err)
	}
	fmt.Printf("Deleted item %s and its transactions.\n", c.id)
	return subcommands.ExitSuccess
}

// --- Items Command ---

type itemsCmd struct{}

func (*itemsCmd) Name() string     { return "items" }
func (*itemsCmd) Synopsis() string { return "list all items" }
func (*itemsCmd) Usage() string {
	return `items

  Lists every item with its id, stock levels and rate.
`
}

func (c *itemsCmd) SetFlags(f *flag.FlagSet) {}

func (c *itemsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	book, err := loadBook()
	if err != nil {
		return fail(err)
	}
	items, err := book.Items()
	if err != nil {
		return fail(err)
	}
	for _, it := range items {
		fmt.Printf("%s  %-30s %-20s stock=%s rate=%s\n", it.ID, it.Name, it.Category, it.CurrentStock, it.Rate)
	}
	return subcommands.ExitSuccess
}
