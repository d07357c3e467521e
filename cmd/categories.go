package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"

	"stockbook"
)

// --- Add Category Command ---

type addCategoryCmd struct {
	name string
}

func (*addCategoryCmd) Name() string     { return "add-category" }
func (*addCategoryCmd) Synopsis() string { return "create a new category" }
func (*addCategoryCmd) Usage() string {
	return `add-category -name <name>

  Creates a category. Names are unique, compared case-insensitively.
`
}

func (c *addCategoryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Category name")
}

func (c *addCategoryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.name == "" {
		f.Usage()
		return subcommands.ExitUsageError
	}
	book, err := loadBook()
	if err != nil {
		return fail(err)
	}
	cat, err := book.AddCategory(c.name)
	if err != nil {
		return fail(err)
	}
	if err := saveBook(book); err != nil {
		return fail(err)
	}
	fmt.Printf("Added category %q (%s)\n", cat.Name, cat.ID)
	return subcommands.ExitSuccess
}

// --- Update Category Command ---

type updateCategoryCmd struct {
	id   string
	name string
}

func (*updateCategoryCmd) Name() string     { return "update-category" }
func (*updateCategoryCmd) Synopsis() string { return "rename a category" }
func (*updateCategoryCmd) Usage() string {
	return `update-category -id <id> -name <name>

  Renames the category and rewrites the name on every item in it.
`
}

func (c *updateCategoryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Category id")
	f.StringVar(&c.name, "name", "", "New category name")
}

func (c *updateCategoryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == "" || c.name == "" {
		f.Usage()
		return subcommands.ExitUsageError
	}
	book, err := loadBook()
	if err != nil {
		return fail(err)
	}
	cat, err := book.UpdateCategory(c.id, stockbook.CategoryPatch{Name: &c.name})
	if err != nil {
		return fail(err)
	}
	if err := saveBook(book); err != nil {
		return fail(err)
	}
	fmt.Printf("Renamed category to %q (%s)\n", cat.Name, cat.ID)
	return subcommands.ExitSuccess
}

// --- Delete Category Command ---

type deleteCategoryCmd struct {
	id string
}

func (*deleteCategoryCmd) Name() string     { return "delete-category" }
func (*deleteCategoryCmd) Synopsis() string { return "delete a category, reassigning its items" }
func (*deleteCategoryCmd) Usage() string {
	return `delete-category -id <id>

  Deletes the category. Its items move to "General Merchandise", which
  itself cannot be deleted.
`
}

func (c *deleteCategoryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Category id")
}

func (c *deleteCategoryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == "" {
		f.Usage()
		return subcommands.ExitUsageError
	}
	book, err := loadBook()
	if err != nil {
		return fail(err)
	}
	deleted, err := book.DeleteCategory(c.id)
	if err != nil {
		return fail(err)
	}
	if !deleted {
		fmt.Printf("No category %q in the book.\n", c.id)
		return subcommands.ExitSuccess
	}
	if err := saveBook(book); err != nil {
		return fail(err)
	}
	fmt.Printf("Deleted category %s.\n", c.id)
	return subcommands.ExitSuccess
}

// --- Categories Command ---

type categoriesCmd struct{}

func (*categoriesCmd) Name() string     { return "categories" }
func (*categoriesCmd) Synopsis() string { return "list all categories" }
func (*categoriesCmd) Usage() string {
	return `categories

  Lists every category with its id.
`
}

func (c *categoriesCmd) SetFlags(f *flag.FlagSet) {}

func (c *categoriesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	book, err := loadBook()
	if err != nil {
		return fail(err)
	}
	cats, err := book.Categories()
	if err != nil {
		return fail(err)
	}
	for _, cat := range cats {
		fmt.Printf("%s  %s\n", cat.ID, cat.Name)
	}
	return subcommands.ExitSuccess
}
