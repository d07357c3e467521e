package stockbook

import (
	"testing"
)

// reportLedger builds a ledger with one item and a known history:
//
//	opening 100, +20 on 03-01, -30 on 03-02, +5 on 03-04
func reportLedger(t *testing.T) (*Ledger, Item) {
	t.Helper()
	l := newTestLedger(t)
	it := addTestItem(t, l, "Widget", 100)
	moves := []struct {
		day  string
		kind TransactionType
		qty  float64
	}{
		{"2025-03-01", StockIn, 20},
		{"2025-03-02", StockOut, 30},
		{"2025-03-04", StockIn, 5},
	}
	for _, m := range moves {
		if _, err := l.AddTransaction(TransactionInput{
			Date: MustParseDate(m.day), ItemID: it.ID, Quantity: Q(m.qty), Type: m.kind,
		}); err != nil {
			t.Fatal(err)
		}
	}
	return l, it
}

func TestDailyStockReport(t *testing.T) {
	l, _ := reportLedger(t)

	tests := []struct {
		day                       string
		opening, in, out, closing float64
	}{
		{"2025-02-28", 100, 0, 0, 100}, // before any movement
		{"2025-03-01", 100, 20, 0, 120},
		{"2025-03-02", 120, 0, 30, 90},
		{"2025-03-03", 90, 0, 0, 90}, // empty day: opening == closing
		{"2025-03-04", 90, 5, 0, 95},
		{"2025-03-05", 95, 0, 0, 95}, // after the last movement
	}
	for _, tc := range tests {
		t.Run(tc.day, func(t *testing.T) {
			report, err := l.DailyStockReport(MustParseDate(tc.day))
			if err != nil {
				t.Fatal(err)
			}
			if len(report.Entries) != 1 {
				t.Fatalf("got %d entries, want 1", len(report.Entries))
			}
			e := report.Entries[0]
			if !e.OpeningStock.Equal(Q(tc.opening)) || !e.StockIn.Equal(Q(tc.in)) ||
				!e.StockOut.Equal(Q(tc.out)) || !e.ClosingStock.Equal(Q(tc.closing)) {
				t.Errorf("entry = open %s in %s out %s close %s, want open %v in %v out %v close %v",
					e.OpeningStock, e.StockIn, e.StockOut, e.ClosingStock,
					tc.opening, tc.in, tc.out, tc.closing)
			}
			// The report identity holds on every date.
			want := e.OpeningStock.Add(e.StockIn).Sub(e.StockOut)
			if !e.ClosingStock.Equal(want) {
				t.Errorf("closing %s != opening + in - out (%s)", e.ClosingStock, want)
			}
		})
	}
}

// Editing an item's opening stock after transactions exist must not
// corrupt historical reports: levels derive from the live stock.
func TestDailyStockReport_afterOpeningStockEdit(t *testing.T) {
	l, it := reportLedger(t)

	opening := Q(200) // +100 shift, current stock becomes 195
	if _, err := l.UpdateItem(it.ID, ItemPatch{OpeningStock: &opening}); err != nil {
		t.Fatal(err)
	}

	report, err := l.DailyStockReport(MustParseDate("2025-03-02"))
	if err != nil {
		t.Fatal(err)
	}
	e := report.Entries[0]
	if !e.ClosingStock.Equal(Q(190)) {
		t.Errorf("ClosingStock = %s, want 190 (shifted baseline)", e.ClosingStock)
	}
	if !e.OpeningStock.Equal(Q(220)) {
		t.Errorf("OpeningStock = %s, want 220", e.OpeningStock)
	}
	want := e.OpeningStock.Add(e.StockIn).Sub(e.StockOut)
	if !e.ClosingStock.Equal(want) {
		t.Errorf("report identity broken after edit: closing %s, want %s", e.ClosingStock, want)
	}
}

func TestInventoryValuation_sortedByValueDescending(t *testing.T) {
	l := newTestLedger(t)
	add := func(name string, rate, stock float64) {
		t.Helper()
		if _, err := l.AddItem(ItemInput{Name: name, Rate: M(rate, "USD"), OpeningStock: Q(stock)}); err != nil {
			t.Fatal(err)
		}
	}
	add("Cheap", 2, 10)   // 20
	add("Pricey", 100, 5) // 500
	add("Mid", 10, 10)    // 100

	v, err := l.InventoryValuation()
	if err != nil {
		t.Fatal(err)
	}
	wantOrder := []string{"Pricey", "Mid", "Cheap"}
	if len(v.Entries) != len(wantOrder) {
		t.Fatalf("got %d entries, want %d", len(v.Entries), len(wantOrder))
	}
	for i, want := range wantOrder {
		if v.Entries[i].ItemName != want {
			t.Errorf("entry %d = %q, want %q", i, v.Entries[i].ItemName, want)
		}
	}
	if !v.Entries[0].TotalValue.Equal(M(500, "USD")) {
		t.Errorf("top value = %s, want 500", v.Entries[0].TotalValue)
	}
	if !v.Total.Equal(M(620, "USD")) {
		t.Errorf("total = %s, want 620", v.Total)
	}
}

// Scenario: threshold 50, stock drained from 100 to 40, the item alerts.
func TestLowStockItems(t *testing.T) {
	l := newTestLedger(t)
	it := addTestItem(t, l, "Widget", 100)

	alerts, err := l.LowStockItems()
	if err != nil {
		t.Fatal(err)
	}
	if len(alerts) != 0 {
		t.Fatalf("no threshold set, got %d alerts", len(alerts))
	}

	threshold := Q(50)
	if _, err := l.UpdateItem(it.ID, ItemPatch{LowStockThreshold: &threshold}); err != nil {
		t.Fatal(err)
	}
	if _, err := l.AddTransaction(TransactionInput{ItemID: it.ID, Quantity: Q(60), Type: StockOut}); err != nil {
		t.Fatal(err)
	}

	alerts, err = l.LowStockItems()
	if err != nil {
		t.Fatal(err)
	}
	if len(alerts) != 1 {
		t.Fatalf("got %d alerts, want 1", len(alerts))
	}
	a := alerts[0]
	if a.ItemID != it.ID || !a.CurrentStock.Equal(Q(40)) || !a.LowStockThreshold.Equal(Q(50)) {
		t.Errorf("alert = %+v, want current 40 threshold 50", a)
	}

	// No hysteresis: restocking clears the alert on the next query.
	if _, err := l.AddTransaction(TransactionInput{ItemID: it.ID, Quantity: Q(20), Type: StockIn}); err != nil {
		t.Fatal(err)
	}
	alerts, err = l.LowStockItems()
	if err != nil {
		t.Fatal(err)
	}
	if len(alerts) != 0 {
		t.Errorf("got %d alerts after restock, want 0", len(alerts))
	}
}

func TestLowStockItems_exactThresholdDoesNotAlert(t *testing.T) {
	l := newTestLedger(t)
	if _, err := l.AddItem(ItemInput{Name: "Edge", Rate: M(1, "USD"), OpeningStock: Q(50), LowStockThreshold: Q(50)}); err != nil {
		t.Fatal(err)
	}
	alerts, err := l.LowStockItems()
	if err != nil {
		t.Fatal(err)
	}
	if len(alerts) != 0 {
		t.Errorf("stock equal to threshold must not alert, got %d", len(alerts))
	}
}

func TestSummary(t *testing.T) {
	l := newTestLedger(t)
	addTestItem(t, l, "Item A", 10)
	addTestItem(t, l, "Item B", 5.5)
	if _, err := l.AddVehicle(VehicleInput{Name: "Van", Capacity: Q(500)}); err != nil {
		t.Fatal(err)
	}

	s, err := l.Summary()
	if err != nil {
		t.Fatal(err)
	}
	if s.TotalItems != 2 || s.TotalVehicles != 1 {
		t.Errorf("counts = %d items %d vehicles, want 2 and 1", s.TotalItems, s.TotalVehicles)
	}
	if !s.TotalStockQuantity.Equal(Q(15.5)) {
		t.Errorf("TotalStockQuantity = %s, want 15.5", s.TotalStockQuantity)
	}
}
