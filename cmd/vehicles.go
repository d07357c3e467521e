package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"

	"stockbook"
)

// --- Add Vehicle Command ---

type addVehicleCmd struct {
	name     string
	plate    string
	capacity float64
}

func (*addVehicleCmd) Name() string     { return "add-vehicle" }
func (*addVehicleCmd) Synopsis() string { return "register a new delivery vehicle" }
func (*addVehicleCmd) Usage() string {
	return `add-vehicle -name <name> -capacity <qty> [-plate <plate>]

  Registers a vehicle used on stock movements.
`
}

func (c *addVehicleCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Vehicle name")
	f.StringVar(&c.plate, "plate", "", "License plate")
	f.Float64Var(&c.capacity, "capacity", 0, "Carrying capacity")
}

func (c *addVehicleCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.name == "" || c.capacity <= 0 {
		f.Usage()
		return subcommands.ExitUsageError
	}
	book, err := loadBook()
	if err != nil {
		return fail(err)
	}
	v, err := book.AddVehicle(stockbook.VehicleInput{
		Name:         c.name,
		LicensePlate: c.plate,
		Capacity:     stockbook.Q(c.capacity),
	})
	if err != nil {
		return fail(err)
	}
	if err := saveBook(book); err != nil {
		return fail(err)
	}
	fmt.Printf("Added vehicle %q (%s)\n", v.Name, v.ID)
	return subcommands.ExitSuccess
}

// --- Update Vehicle Command ---

type updateVehicleCmd struct {
	id       string
	name     string
	plate    string
	capacity float64
}

func (*updateVehicleCmd) Name() string     { return "update-vehicle" }
func (*updateVehicleCmd) Synopsis() string { return "update fields of an existing vehicle" }
func (*updateVehicleCmd) Usage() string {
	return `update-vehicle -id <id> [-name <name>] [-plate <plate>] [-capacity <qty>]

  Updates the given fields, leaving the others untouched.
`
}

func (c *updateVehicleCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Vehicle id")
	f.StringVar(&c.name, "name", "", "New vehicle name")
	f.StringVar(&c.plate, "plate", "", "New license plate")
	f.Float64Var(&c.capacity, "capacity", -1, "New carrying capacity")
}

func (c *updateVehicleCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == "" {
		f.Usage()
		return subcommands.ExitUsageError
	}
	book, err := loadBook()
	if err != nil {
		return fail(err)
	}

	var patch stockbook.VehiclePatch
	if c.name != "" {
		patch.Name = &c.name
	}
	if c.plate != "" {
		patch.LicensePlate = &c.plate
	}
	if c.capacity >= 0 {
		capacity := stockbook.Q(c.capacity)
		patch.Capacity = &capacity
	}

	v, err := book.UpdateVehicle(c.id, patch)
	if err != nil {
		return fail(err)
	}
	if err := saveBook(book); err != nil {
		return fail(err)
	}
	fmt.Printf("Updated vehicle %q (%s)\n", v.Name, v.ID)
	return subcommands.ExitSuccess
}

// --- Delete Vehicle Command ---

type deleteVehicleCmd struct {
	id string
}

func (*deleteVehicleCmd) Name() string     { return "delete-vehicle" }
func (*deleteVehicleCmd) Synopsis() string { return "delete a vehicle and its transactions" }
func (*deleteVehicleCmd) Usage() string {
	return `delete-vehicle -id <id>

  Deletes the vehicle and every transaction that references it.
`
}

func (c *deleteVehicleCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Vehicle id")
}

func (c *deleteVehicleCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == "" {
		f.Usage()
		return subcommands.ExitUsageError
	}
	book, err := loadBook()
	if err != nil {
		return fail(err)
	}
	deleted, err := book.DeleteVehicle(c.id)
	if err != nil {
		return fail(err)
	}
	if !deleted {
		fmt.Printf("No vehicle %q in the book.\n", c.id)
		return subcommands.ExitSuccess
	}
	if err := saveBook(book); err != nil {
		return fail(err)
	}
	fmt.Printf("Deleted vehicle %s and its transactions.\n", c.id)
	return subcommands.ExitSuccess
}

// --- Vehicles Command ---

type vehiclesCmd struct{}

func (*vehiclesCmd) Name() string     { return "vehicles" }
func (*vehiclesCmd) Synopsis() string { return "list all vehicles" }
func (*vehiclesCmd) Usage() string {
	return `vehicles

  Lists every vehicle with its id.
`
}

func (c *vehiclesCmd) SetFlags(f *flag.FlagSet) {}

func (c *vehiclesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	book, err := loadBook()
	if err != nil {
		return fail(err)
	}
	vehicles, err := book.Vehicles()
	if err != nil {
		return fail(err)
	}
	for _, v := range vehicles {
		fmt.Printf("%s  %-20s plate=%-10s capacity=%s\n", v.ID, v.Name, v.LicensePlate, v.Capacity)
	}
	return subcommands.ExitSuccess
}
