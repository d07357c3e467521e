package stockbook

// Seed populates an empty book with a small demo inventory: three
// categories, three items, two vehicles and a few movements around
// today. A book that already holds any record is left untouched and
// Seed reports false.
func (l *Ledger) Seed() (bool, error) {
	items, err := l.Items()
	if err != nil {
		return false, err
	}
	cats, err := l.Categories()
	if err != nil {
		return false, err
	}
	vehicles, err := l.Vehicles()
	if err != nil {
		return false, err
	}
	txs, err := l.Transactions()
	if err != nil {
		return false, err
	}
	if len(items)+len(cats)+len(vehicles)+len(txs) > 0 {
		return false, nil
	}

	electronics, err := l.AddCategory("Electronics")
	if err != nil {
		return false, err
	}
	accessories, err := l.AddCategory("Accessories")
	if err != nil {
		return false, err
	}
	if _, err := l.AddCategory(GeneralMerchandise); err != nil {
		return false, err
	}

	laptop, err := l.AddItem(ItemInput{
		Name:              "Laptop Pro X",
		Description:       "High-performance laptop",
		SKU:               "LAPX-001",
		Category:          electronics.Name,
		Rate:              M(1200, l.currency),
		OpeningStock:      Q(10),
		LowStockThreshold: Q(5),
	})
	if err != nil {
		return false, err
	}
	mouse, err := l.AddItem(ItemInput{
		Name:              "Wireless Mouse",
		Description:       "Ergonomic wireless mouse",
		SKU:               "MOU-002",
		Category:          accessories.Name,
		Rate:              M(25, l.currency),
		OpeningStock:      Q(50),
		LowStockThreshold: Q(10),
	})
	if err != nil {
		return false, err
	}
	hub, err := l.AddItem(ItemInput{
		Name:              "USB-C Hub",
		Description:       "7-in-1 USB-C Hub",
		SKU:               "HUB-003",
		Category:          accessories.Name,
		Rate:              M(45, l.currency),
		OpeningStock:      Q(30),
		LowStockThreshold: Q(15),
	})
	if err != nil {
		return false, err
	}

	van, err := l.AddVehicle(VehicleInput{Name: "Van Alpha", LicensePlate: "ABC-123", Capacity: Q(500)})
	if err != nil {
		return false, err
	}
	truck, err := l.AddVehicle(VehicleInput{Name: "Truck Beta", LicensePlate: "XYZ-789", Capacity: Q(2000)})
	if err != nil {
		return false, err
	}

	today := Today()
	yesterday := today.Add(-1)
	for _, input := range []TransactionInput{
		{Date: yesterday, ItemID: laptop.ID, Quantity: Q(10), Type: StockIn, VehicleID: van.ID},
		{Date: today, ItemID: mouse.ID, Quantity: Q(20), Type: StockIn, VehicleID: van.ID},
		{Date: today, ItemID: laptop.ID, Quantity: Q(3), Type: StockOut, VehicleID: truck.ID},
		{Date: today, ItemID: hub.ID, Quantity: Q(15), Type: StockIn, VehicleID: van.ID},
	} {
		if _, err := l.AddTransaction(input); err != nil {
			return false, err
		}
	}
	return true, nil
}
