package stockbook

import (
	"errors"
	"testing"
)

// newTestLedger creates an empty ledger over a fresh in-memory store.
func newTestLedger(t *testing.T) *Ledger {
	t.Helper()
	l, err := NewLedger(NewMemoryStore(), "USD")
	if err != nil {
		t.Fatalf("NewLedger() error = %v", err)
	}
	return l
}

// addTestItem registers an item with sensible defaults.
func addTestItem(t *testing.T, l *Ledger, name string, opening float64) Item {
	t.Helper()
	it, err := l.AddItem(ItemInput{
		Name:         name,
		Category:     GeneralMerchandise,
		Rate:         M(5, "USD"),
		OpeningStock: Q(opening),
	})
	if err != nil {
		t.Fatalf("AddItem(%q) error = %v", name, err)
	}
	return it
}

func TestAddItem_currentStockStartsAtOpening(t *testing.T) {
	l := newTestLedger(t)
	it := addTestItem(t, l, "Item A", 10)

	if !it.CurrentStock.Equal(Q(10)) {
		t.Errorf("CurrentStock = %s, want 10", it.CurrentStock)
	}
	if it.ID == "" {
		t.Error("expected a generated id")
	}
}

func TestAddItem_rejectsInvalidInput(t *testing.T) {
	l := newTestLedger(t)
	tests := []struct {
		name  string
		input ItemInput
	}{
		{"missing name", ItemInput{Rate: M(5, "USD")}},
		{"zero rate", ItemInput{Name: "x", Rate: M(0, "USD")}},
		{"negative rate", ItemInput{Name: "x", Rate: M(-1, "USD")}},
		{"negative opening", ItemInput{Name: "x", Rate: M(5, "USD"), OpeningStock: Q(-1)}},
		{"negative threshold", ItemInput{Name: "x", Rate: M(5, "USD"), LowStockThreshold: Q(-1)}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := l.AddItem(tc.input); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

// Scenario: opening 10, stock-in 5, then a stock-out of 20 is rejected
// leaving stock and the transaction log unchanged.
func TestPosting_insufficientStockRejectedWithoutSideEffects(t *testing.T) {
	l := newTestLedger(t)
	it := addTestItem(t, l, "Item A", 10)
	day1 := MustParseDate("2025-03-01")
	day2 := MustParseDate("2025-03-02")

	if _, err := l.AddTransaction(TransactionInput{Date: day1, ItemID: it.ID, Quantity: Q(5), Type: StockIn}); err != nil {
		t.Fatalf("stock-in error = %v", err)
	}
	got, err := l.Item(it.ID)
	if err != nil {
		t.Fatal(err)
	}
	if !got.CurrentStock.Equal(Q(15)) {
		t.Fatalf("CurrentStock = %s, want 15", got.CurrentStock)
	}

	_, err = l.AddTransaction(TransactionInput{Date: day2, ItemID: it.ID, Quantity: Q(20), Type: StockOut})
	if !errors.Is(err, ErrInsufficientStock) {
		t.Fatalf("error = %v, want ErrInsufficientStock", err)
	}

	got, err = l.Item(it.ID)
	if err != nil {
		t.Fatal(err)
	}
	if !got.CurrentStock.Equal(Q(15)) {
		t.Errorf("CurrentStock = %s, want 15 after rejected posting", got.CurrentStock)
	}
	txs, err := l.Transactions(ByItem(it.ID))
	if err != nil {
		t.Fatal(err)
	}
	if len(txs) != 1 {
		t.Errorf("got %d transactions, want 1 (the rejected posting must not be recorded)", len(txs))
	}
}

func TestPosting_maintainsStockInvariant(t *testing.T) {
	l := newTestLedger(t)
	it := addTestItem(t, l, "Item A", 100)
	day := MustParseDate("2025-03-01")

	moves := []struct {
		kind TransactionType
		qty  float64
	}{
		{StockIn, 20}, {StockOut, 30}, {StockIn, 5.5}, {StockOut, 0.5}, {StockIn, 10},
	}
	net := Q(0)
	for _, m := range moves {
		if _, err := l.AddTransaction(TransactionInput{Date: day, ItemID: it.ID, Quantity: Q(m.qty), Type: m.kind}); err != nil {
			t.Fatalf("AddTransaction(%s %v) error = %v", m.kind, m.qty, err)
		}
		if m.kind == StockIn {
			net = net.Add(Q(m.qty))
		} else {
			net = net.Sub(Q(m.qty))
		}
	}

	got, err := l.Item(it.ID)
	if err != nil {
		t.Fatal(err)
	}
	want := it.OpeningStock.Add(net)
	if !got.CurrentStock.Equal(want) {
		t.Errorf("CurrentStock = %s, want %s (opening + net of postings)", got.CurrentStock, want)
	}
}

func TestPosting_rejectsUnknownItemAndVehicle(t *testing.T) {
	l := newTestLedger(t)
	it := addTestItem(t, l, "Item A", 10)

	_, err := l.AddTransaction(TransactionInput{ItemID: "nope", Quantity: Q(1), Type: StockIn})
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("unknown item: error = %v, want ErrNotFound", err)
	}

	_, err = l.AddTransaction(TransactionInput{ItemID: it.ID, Quantity: Q(1), Type: StockIn, VehicleID: "nope"})
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("unknown vehicle: error = %v, want ErrNotFound", err)
	}
}

func TestPosting_capturesNamesAtPostingTime(t *testing.T) {
	l := newTestLedger(t)
	it := addTestItem(t, l, "Old Name", 10)
	v, err := l.AddVehicle(VehicleInput{Name: "Van Alpha", Capacity: Q(500)})
	if err != nil {
		t.Fatal(err)
	}

	tx, err := l.AddTransaction(TransactionInput{ItemID: it.ID, Quantity: Q(1), Type: StockIn, VehicleID: v.ID})
	if err != nil {
		t.Fatal(err)
	}
	if tx.ItemName != "Old Name" || tx.VehicleName != "Van Alpha" {
		t.Fatalf("posted names = %q/%q", tx.ItemName, tx.VehicleName)
	}

	newName := "New Name"
	if _, err := l.UpdateItem(it.ID, ItemPatch{Name: &newName}); err != nil {
		t.Fatal(err)
	}
	txs, err := l.Transactions(ByItem(it.ID))
	if err != nil {
		t.Fatal(err)
	}
	if txs[0].ItemName != "Old Name" {
		t.Errorf("ItemName = %q, renames must not rewrite history", txs[0].ItemName)
	}
}

func TestUpdateItem_openingStockEditShiftsCurrentStock(t *testing.T) {
	l := newTestLedger(t)
	it := addTestItem(t, l, "Item A", 10)
	if _, err := l.AddTransaction(TransactionInput{ItemID: it.ID, Quantity: Q(5), Type: StockIn}); err != nil {
		t.Fatal(err)
	}

	opening := Q(25) // +15 over the original baseline
	got, err := l.UpdateItem(it.ID, ItemPatch{OpeningStock: &opening})
	if err != nil {
		t.Fatal(err)
	}
	if !got.OpeningStock.Equal(Q(25)) {
		t.Errorf("OpeningStock = %s, want 25", got.OpeningStock)
	}
	// 10 + 5 posted + 15 baseline shift.
	if !got.CurrentStock.Equal(Q(30)) {
		t.Errorf("CurrentStock = %s, want 30", got.CurrentStock)
	}
}

func TestUpdateItem_notFound(t *testing.T) {
	l := newTestLedger(t)
	name := "x"
	if _, err := l.UpdateItem("nope", ItemPatch{Name: &name}); !errors.Is(err, ErrNotFound) {
		t.Errorf("error = %v, want ErrNotFound", err)
	}
}

func TestDeleteItem_cascadesExactlyItsTransactions(t *testing.T) {
	l := newTestLedger(t)
	a := addTestItem(t, l, "Item A", 10)
	b := addTestItem(t, l, "Item B", 10)
	for _, id := range []string{a.ID, b.ID, a.ID} {
		if _, err := l.AddTransaction(TransactionInput{ItemID: id, Quantity: Q(1), Type: StockIn}); err != nil {
			t.Fatal(err)
		}
	}

	deleted, err := l.DeleteItem(a.ID)
	if err != nil {
		t.Fatal(err)
	}
	if !deleted {
		t.Fatal("expected deletion")
	}

	txs, err := l.Transactions()
	if err != nil {
		t.Fatal(err)
	}
	if len(txs) != 1 || txs[0].ItemID != b.ID {
		t.Errorf("surviving transactions = %v, want exactly Item B's", txs)
	}

	// Benign delete of a missing id.
	deleted, err = l.DeleteItem(a.ID)
	if err != nil || deleted {
		t.Errorf("second delete = (%v, %v), want (false, nil)", deleted, err)
	}
}

func TestAddCategory_conflictIsCaseInsensitive(t *testing.T) {
	l := newTestLedger(t)
	if _, err := l.AddCategory("Electronics"); err != nil {
		t.Fatal(err)
	}
	if _, err := l.AddCategory("ELECTRONICS"); !errors.Is(err, ErrConflict) {
		t.Errorf("error = %v, want ErrConflict", err)
	}
}

// Scenario: renaming "Electronics" to "Gadgets" rewrites the name on
// every item in the category.
func TestUpdateCategory_renameCascadesOverItems(t *testing.T) {
	l := newTestLedger(t)
	cat, err := l.AddCategory("Electronics")
	if err != nil {
		t.Fatal(err)
	}
	it, err := l.AddItem(ItemInput{Name: "Laptop", Category: "Electronics", Rate: M(1200, "USD"), OpeningStock: Q(1)})
	if err != nil {
		t.Fatal(err)
	}
	other := addTestItem(t, l, "Other", 1)

	name := "Gadgets"
	if _, err := l.UpdateCategory(cat.ID, CategoryPatch{Name: &name}); err != nil {
		t.Fatal(err)
	}

	got, err := l.Item(it.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.Category != "Gadgets" {
		t.Errorf("Category = %q, want Gadgets", got.Category)
	}
	untouched, err := l.Item(other.ID)
	if err != nil {
		t.Fatal(err)
	}
	if untouched.Category != GeneralMerchandise {
		t.Errorf("unrelated item category = %q, want untouched", untouched.Category)
	}
}

// Scenario: deleting "Temp" reassigns its items to the sentinel
// category, creating the sentinel on demand.
func TestDeleteCategory_reassignsItemsToSentinel(t *testing.T) {
	l := newTestLedger(t)
	cat, err := l.AddCategory("Temp")
	if err != nil {
		t.Fatal(err)
	}
	it, err := l.AddItem(ItemInput{Name: "Orphan", Category: "Temp", Rate: M(5, "USD")})
	if err != nil {
		t.Fatal(err)
	}

	deleted, err := l.DeleteCategory(cat.ID)
	if err != nil {
		t.Fatal(err)
	}
	if !deleted {
		t.Fatal("expected deletion")
	}

	got, err := l.Item(it.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.Category != GeneralMerchandise {
		t.Errorf("Category = %q, want %q", got.Category, GeneralMerchandise)
	}

	cats, err := l.Categories()
	if err != nil {
		t.Fatal(err)
	}
	found := false
	for _, c := range cats {
		if c.Name == GeneralMerchandise {
			found = true
		}
		if c.Name == "Temp" {
			t.Error("deleted category still listed")
		}
	}
	if !found {
		t.Errorf("sentinel category was not created, got %v", cats)
	}
}

func TestDeleteCategory_sentinelIsProtected(t *testing.T) {
	l := newTestLedger(t)
	cat, err := l.AddCategory(GeneralMerchandise)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := l.DeleteCategory(cat.ID); !errors.Is(err, ErrInvalidOperation) {
		t.Errorf("error = %v, want ErrInvalidOperation", err)
	}
}

func TestDeleteVehicle_cascadesExactlyItsTransactions(t *testing.T) {
	l := newTestLedger(t)
	it := addTestItem(t, l, "Item A", 100)
	van, err := l.AddVehicle(VehicleInput{Name: "Van", Capacity: Q(500)})
	if err != nil {
		t.Fatal(err)
	}
	truck, err := l.AddVehicle(VehicleInput{Name: "Truck", Capacity: Q(2000)})
	if err != nil {
		t.Fatal(err)
	}
	for _, v := range []string{van.ID, truck.ID, ""} {
		if _, err := l.AddTransaction(TransactionInput{ItemID: it.ID, Quantity: Q(1), Type: StockIn, VehicleID: v}); err != nil {
			t.Fatal(err)
		}
	}

	if _, err := l.DeleteVehicle(van.ID); err != nil {
		t.Fatal(err)
	}
	txs, err := l.Transactions()
	if err != nil {
		t.Fatal(err)
	}
	if len(txs) != 2 {
		t.Fatalf("got %d transactions, want 2", len(txs))
	}
	for _, tx := range txs {
		if tx.VehicleID == van.ID {
			t.Errorf("transaction %s still references the deleted vehicle", tx.ID)
		}
	}
}

func TestTransactions_filters(t *testing.T) {
	l := newTestLedger(t)
	a := addTestItem(t, l, "Item A", 100)
	b := addTestItem(t, l, "Item B", 100)
	day1 := MustParseDate("2025-03-01")
	day2 := MustParseDate("2025-03-02")

	postings := []TransactionInput{
		{Date: day1, ItemID: a.ID, Quantity: Q(1), Type: StockIn},
		{Date: day1, ItemID: b.ID, Quantity: Q(2), Type: StockOut},
		{Date: day2, ItemID: a.ID, Quantity: Q(3), Type: StockOut},
	}
	for _, p := range postings {
		if _, err := l.AddTransaction(p); err != nil {
			t.Fatal(err)
		}
	}

	tests := []struct {
		name    string
		filters []func(Transaction) bool
		want    int
	}{
		{"all", nil, 3},
		{"by date", []func(Transaction) bool{ByDate(day1)}, 2},
		{"by item", []func(Transaction) bool{ByItem(a.ID)}, 2},
		{"by type", []func(Transaction) bool{ByType(StockOut)}, 2},
		{"date and item", []func(Transaction) bool{ByDate(day1), ByItem(a.ID)}, 1},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			txs, err := l.Transactions(tc.filters...)
			if err != nil {
				t.Fatal(err)
			}
			if len(txs) != tc.want {
				t.Errorf("got %d transactions, want %d", len(txs), tc.want)
			}
		})
	}
}

func TestTransactions_chronologicalOrder(t *testing.T) {
	l := newTestLedger(t)
	it := addTestItem(t, l, "Item A", 100)
	// Post out of date order.
	for _, d := range []string{"2025-03-05", "2025-03-01", "2025-03-03"} {
		if _, err := l.AddTransaction(TransactionInput{Date: MustParseDate(d), ItemID: it.ID, Quantity: Q(1), Type: StockIn}); err != nil {
			t.Fatal(err)
		}
	}
	txs, err := l.Transactions()
	if err != nil {
		t.Fatal(err)
	}
	for i := 1; i < len(txs); i++ {
		if txs[i].Date.Before(txs[i-1].Date) {
			t.Fatalf("transactions out of order: %s before %s", txs[i].Date, txs[i-1].Date)
		}
	}
}
