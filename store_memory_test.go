package stockbook

import "testing"

func TestMemoryStore_insertGeneratesAndPreservesIDs(t *testing.T) {
	s := NewMemoryStore()

	it, err := s.InsertItem(Item{Name: "A"})
	if err != nil {
		t.Fatal(err)
	}
	if it.ID == "" {
		t.Error("expected a generated id")
	}

	// Decoding re-inserts records with their persisted ids.
	it2, err := s.InsertItem(Item{ID: "fixed", Name: "B"})
	if err != nil {
		t.Fatal(err)
	}
	if it2.ID != "fixed" {
		t.Errorf("ID = %q, want the provided id kept", it2.ID)
	}
}

func TestMemoryStore_listsSortedByName(t *testing.T) {
	s := NewMemoryStore()
	for _, name := range []string{"zebra", "Apple", "mango"} {
		if _, err := s.InsertItem(Item{Name: name}); err != nil {
			t.Fatal(err)
		}
	}
	items, err := s.Items()
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"Apple", "mango", "zebra"}
	for i, w := range want {
		if items[i].Name != w {
			t.Errorf("items[%d] = %q, want %q", i, items[i].Name, w)
		}
	}
}

func TestMemoryStore_deleteMissingIsBenign(t *testing.T) {
	s := NewMemoryStore()
	if deleted, err := s.DeleteItem("nope"); err != nil || deleted {
		t.Errorf("DeleteItem = (%v, %v), want (false, nil)", deleted, err)
	}
	if deleted, err := s.DeleteCategory("nope"); err != nil || deleted {
		t.Errorf("DeleteCategory = (%v, %v), want (false, nil)", deleted, err)
	}
	if deleted, err := s.DeleteVehicle("nope"); err != nil || deleted {
		t.Errorf("DeleteVehicle = (%v, %v), want (false, nil)", deleted, err)
	}
}

func TestMemoryStore_deleteTransactionsByReference(t *testing.T) {
	s := NewMemoryStore()
	day := MustParseDate("2025-03-01")
	txs := []Transaction{
		{Date: day, ItemID: "a", VehicleID: "v1"},
		{Date: day, ItemID: "b", VehicleID: "v1"},
		{Date: day, ItemID: "a"},
	}
	for _, tx := range txs {
		if _, err := s.InsertTransaction(tx); err != nil {
			t.Fatal(err)
		}
	}

	n, err := s.DeleteTransactionsByItem("a")
	if err != nil {
		t.Fatal(err)
	}
	if n != 2 {
		t.Errorf("deleted %d by item, want 2", n)
	}
	n, err = s.DeleteTransactionsByVehicle("v1")
	if err != nil {
		t.Fatal(err)
	}
	if n != 1 {
		t.Errorf("deleted %d by vehicle, want 1", n)
	}
	rest, err := s.Transactions()
	if err != nil {
		t.Fatal(err)
	}
	if len(rest) != 0 {
		t.Errorf("%d transactions left, want 0", len(rest))
	}
}

func TestMemoryStore_transactionsKeptChronological(t *testing.T) {
	s := NewMemoryStore()
	for _, d := range []string{"2025-03-05", "2025-03-01", "2025-03-03"} {
		if _, err := s.InsertTransaction(Transaction{Date: MustParseDate(d)}); err != nil {
			t.Fatal(err)
		}
	}
	txs, err := s.Transactions()
	if err != nil {
		t.Fatal(err)
	}
	for i := 1; i < len(txs); i++ {
		if txs[i].Date.Before(txs[i-1].Date) {
			t.Fatalf("transactions out of order at %d", i)
		}
	}
}
