package stockbook

import (
	"fmt"
	"strings"
	"sync"
)

// Ledger is the stock accounting core. It exclusively owns the four
// record collections behind its Store and exposes every mutation and
// query; callers never touch derived state such as Item.CurrentStock
// directly.
//
// A single RWMutex serializes mutations, which makes the
// read-check-write sequence of a posting atomic per item (and, stronger
// than required, across items). Queries run concurrently and see a
// consistent snapshot.
type Ledger struct {
	mu       sync.RWMutex
	store    Store
	currency string // display currency for rates and valuations
}

// NewLedger creates a ledger over the given store. The currency is the
// book's display currency, used only for formatting monetary values.
func NewLedger(store Store, currency string) (*Ledger, error) {
	if err := ValidateCurrency(currency); err != nil {
		return nil, err
	}
	return &Ledger{store: store, currency: currency}, nil
}

// Currency returns the book's display currency code.
func (l *Ledger) Currency() string { return l.currency }

// --- Items ---

// Items returns all items, sorted by name.
func (l *Ledger) Items() ([]Item, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.items(l.store)
}

func (l *Ledger) items(s Store) ([]Item, error) {
	items, err := s.Items()
	if err != nil {
		return nil, err
	}
	for i := range items {
		items[i].Rate = items[i].Rate.withCurrency(l.currency)
	}
	return items, nil
}

// Item returns the item with the given id.
func (l *Ledger) Item(id string) (Item, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	it, ok, err := l.store.Item(id)
	if err != nil {
		return Item{}, err
	}
	if !ok {
		return Item{}, fmt.Errorf("item %q: %w", id, ErrNotFound)
	}
	it.Rate = it.Rate.withCurrency(l.currency)
	return it, nil
}

// AddItem creates a new item. The id is generated, and the current
// stock starts at the opening stock.
func (l *Ledger) AddItem(input ItemInput) (Item, error) {
	if input.Name == "" {
		return Item{}, fmt.Errorf("item name is missing")
	}
	if !input.Rate.IsPositive() {
		return Item{}, fmt.Errorf("item rate must be positive, got %s", input.Rate)
	}
	if input.OpeningStock.IsNegative() {
		return Item{}, fmt.Errorf("item opening stock cannot be negative, got %s", input.OpeningStock)
	}
	if input.LowStockThreshold.IsNegative() {
		return Item{}, fmt.Errorf("low stock threshold cannot be negative, got %s", input.LowStockThreshold)
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	return l.store.InsertItem(Item{
		Name:              input.Name,
		Description:       input.Description,
		SKU:               input.SKU,
		Category:          input.Category,
		Rate:              input.Rate.withCurrency(l.currency),
		OpeningStock:      input.OpeningStock,
		CurrentStock:      input.OpeningStock,
		LowStockThreshold: input.LowStockThreshold,
	})
}

// UpdateItem merges the patch into the stored item. When the opening
// stock changes, the current stock shifts by the same delta, preserving
// the net effect of every transaction already posted.
func (l *Ledger) UpdateItem(id string, patch ItemPatch) (Item, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	it, ok, err := l.store.Item(id)
	if err != nil {
		return Item{}, err
	}
	if !ok {
		return Item{}, fmt.Errorf("item %q: %w", id, ErrNotFound)
	}

	if patch.Name != nil {
		it.Name = *patch.Name
	}
	if patch.Description != nil {
		it.Description = *patch.Description
	}
	if patch.SKU != nil {
		it.SKU = *patch.SKU
	}
	if patch.Category != nil {
		it.Category = *patch.Category
	}
	if patch.Rate != nil {
		if !patch.Rate.IsPositive() {
			return Item{}, fmt.Errorf("item rate must be positive, got %s", patch.Rate)
		}
		it.Rate = patch.Rate.withCurrency(l.currency)
	}
	if patch.LowStockThreshold != nil {
		if patch.LowStockThreshold.IsNegative() {
			return Item{}, fmt.Errorf("low stock threshold cannot be negative, got %s", patch.LowStockThreshold)
		}
		it.LowStockThreshold = *patch.LowStockThreshold
	}
	if patch.OpeningStock != nil && !patch.OpeningStock.Equal(it.OpeningStock) {
		delta := patch.OpeningStock.Sub(it.OpeningStock)
		it.OpeningStock = *patch.OpeningStock
		it.CurrentStock = it.CurrentStock.Add(delta)
	}

	if err := l.store.UpdateItem(it); err != nil {
		return Item{}, err
	}
	return it, nil
}

// DeleteItem removes the item and every transaction referencing it.
// It reports false, not an error, when the id is unknown.
func (l *Ledger) DeleteItem(id string) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	var deleted bool
	err := l.store.Transact(func(s Store) error {
		var err error
		deleted, err = s.DeleteItem(id)
		if err != nil || !deleted {
			return err
		}
		_, err = s.DeleteTransactionsByItem(id)
		return err
	})
	return deleted, err
}

// --- Categories ---

// Categories returns all categories, sorted by name.
func (l *Ledger) Categories() ([]Category, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.store.Categories()
}

// AddCategory creates a new category. Names are unique
// case-insensitively; a collision is reported as ErrConflict.
func (l *Ledger) AddCategory(name string) (Category, error) {
	if name == "" {
		return Category{}, fmt.Errorf("category name is missing")
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.addCategory(l.store, name)
}

func (l *Ledger) addCategory(s Store, name string) (Category, error) {
	if _, ok, err := findCategoryByName(s, name); err != nil {
		return Category{}, err
	} else if ok {
		return Category{}, fmt.Errorf("category %q: %w", name, ErrConflict)
	}
	return s.InsertCategory(Category{Name: name})
}

// findCategoryByName looks a category up by name, case-insensitively.
func findCategoryByName(s Store, name string) (Category, bool, error) {
	cats, err := s.Categories()
	if err != nil {
		return Category{}, false, err
	}
	for _, c := range cats {
		if strings.EqualFold(c.Name, name) {
			return c, true, nil
		}
	}
	return Category{}, false, nil
}

// UpdateCategory merges the patch into the stored category. A rename
// cascades: every item carrying the old name is rewritten to the new
// name in the same atomic unit, since items reference categories by
// denormalized name rather than by id.
func (l *Ledger) UpdateCategory(id string, patch CategoryPatch) (Category, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	var updated Category
	err := l.store.Transact(func(s Store) error {
		c, ok, err := s.Category(id)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("category %q: %w", id, ErrNotFound)
		}

		if patch.Name != nil && *patch.Name != c.Name {
			if err := reassignItems(s, c.Name, *patch.Name); err != nil {
				return err
			}
			c.Name = *patch.Name
		}

		if err := s.UpdateCategory(c); err != nil {
			return err
		}
		updated = c
		return nil
	})
	return updated, err
}

// DeleteCategory removes a category after reassigning its items to the
// protected "General Merchandise" category, creating it when missing.
// Deleting the protected category itself is an ErrInvalidOperation.
// It reports false, not an error, when the id is unknown.
func (l *Ledger) DeleteCategory(id string) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	var deleted bool
	err := l.store.Transact(func(s Store) error {
		c, ok, err := s.Category(id)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		if c.Name == GeneralMerchandise {
			return fmt.Errorf("cannot delete the default category: %w", ErrInvalidOperation)
		}

		sentinel, ok, err := findCategoryByName(s, GeneralMerchandise)
		if err != nil {
			return err
		}
		if !ok {
			if sentinel, err = s.InsertCategory(Category{Name: GeneralMerchandise}); err != nil {
				return err
			}
		}
		if err := reassignItems(s, c.Name, sentinel.Name); err != nil {
			return err
		}
		deleted, err = s.DeleteCategory(id)
		return err
	})
	return deleted, err
}

// reassignItems rewrites the category name of every item in oldName.
func reassignItems(s Store, oldName, newName string) error {
	items, err := s.Items()
	if err != nil {
		return err
	}
	for _, it := range items {
		if it.Category != oldName {
			continue
		}
		it.Category = newName
		if err := s.UpdateItem(it); err != nil {
			return err
		}
	}
	return nil
}

// --- Vehicles ---

// Vehicles returns all vehicles, sorted by name.
func (l *Ledger) Vehicles() ([]Vehicle, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.store.Vehicles()
}

// AddVehicle creates a new vehicle.
func (l *Ledger) AddVehicle(input VehicleInput) (Vehicle, error) {
	if input.Name == "" {
		return Vehicle{}, fmt.Errorf("vehicle name is missing")
	}
	if !input.Capacity.IsPositive() {
		return Vehicle{}, fmt.Errorf("vehicle capacity must be positive, got %s", input.Capacity)
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.store.InsertVehicle(Vehicle{
		Name:         input.Name,
		LicensePlate: input.LicensePlate,
		Capacity:     input.Capacity,
	})
}

// UpdateVehicle merges the patch into the stored vehicle.
func (l *Ledger) UpdateVehicle(id string, patch VehiclePatch) (Vehicle, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	v, ok, err := l.store.Vehicle(id)
	if err != nil {
		return Vehicle{}, err
	}
	if !ok {
		return Vehicle{}, fmt.Errorf("vehicle %q: %w", id, ErrNotFound)
	}
	if patch.Name != nil {
		v.Name = *patch.Name
	}
	if patch.LicensePlate != nil {
		v.LicensePlate = *patch.LicensePlate
	}
	if patch.Capacity != nil {
		if !patch.Capacity.IsPositive() {
			return Vehicle{}, fmt.Errorf("vehicle capacity must be positive, got %s", patch.Capacity)
		}
		v.Capacity = *patch.Capacity
	}
	if err := l.store.UpdateVehicle(v); err != nil {
		return Vehicle{}, err
	}
	return v, nil
}

// DeleteVehicle removes the vehicle and every transaction referencing
// it. It reports false, not an error, when the id is unknown.
func (l *Ledger) DeleteVehicle(id string) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	var deleted bool
	err := l.store.Transact(func(s Store) error {
		var err error
		deleted, err = s.DeleteVehicle(id)
		if err != nil || !deleted {
			return err
		}
		_, err = s.DeleteTransactionsByVehicle(id)
		return err
	})
	return deleted, err
}

// --- Transaction posting ---

// AddTransaction posts a stock movement: it checks the referenced item,
// applies the stock delta (guarding stock-outs against overdraw), and
// records the transaction. The stock update and the transaction insert
// are one atomic unit; on any failure nothing is persisted.
func (l *Ledger) AddTransaction(input TransactionInput) (Transaction, error) {
	if input.Date.IsZero() {
		input.Date = Today()
	}
	if !input.Type.Valid() {
		return Transaction{}, fmt.Errorf("unknown transaction type %q", input.Type)
	}
	if !input.Quantity.IsPositive() {
		return Transaction{}, fmt.Errorf("transaction quantity must be positive, got %s", input.Quantity)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	var posted Transaction
	err := l.store.Transact(func(s Store) error {
		it, ok, err := s.Item(input.ItemID)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("item %q: %w", input.ItemID, ErrNotFound)
		}

		var vehicleName string
		if input.VehicleID != "" {
			v, ok, err := s.Vehicle(input.VehicleID)
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("vehicle %q: %w", input.VehicleID, ErrNotFound)
			}
			vehicleName = v.Name
		}

		switch input.Type {
		case StockIn:
			it.CurrentStock = it.CurrentStock.Add(input.Quantity)
		case StockOut:
			if input.Quantity.GreaterThan(it.CurrentStock) {
				return fmt.Errorf("on %s, cannot take %s of %q, current stock is %s: %w",
					input.Date, input.Quantity, it.Name, it.CurrentStock, ErrInsufficientStock)
			}
			it.CurrentStock = it.CurrentStock.Sub(input.Quantity)
		}

		if err := s.UpdateItem(it); err != nil {
			return err
		}
		posted, err = s.InsertTransaction(Transaction{
			Date:        input.Date,
			ItemID:      it.ID,
			ItemName:    it.Name,
			Quantity:    input.Quantity,
			Type:        input.Type,
			VehicleID:   input.VehicleID,
			VehicleName: vehicleName,
		})
		return err
	})
	return posted, err
}

// Transactions returns transactions in chronological order. When
// filters are given, a transaction is returned only if every filter
// accepts it.
func (l *Ledger) Transactions(filters ...func(Transaction) bool) ([]Transaction, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	txs, err := l.store.Transactions()
	if err != nil {
		return nil, err
	}
	if len(filters) == 0 {
		return txs, nil
	}
	kept := txs[:0]
next:
	for _, tx := range txs {
		for _, filter := range filters {
			if !filter(tx) {
				continue next
			}
		}
		kept = append(kept, tx)
	}
	return kept, nil
}

// ByDate returns a predicate that keeps transactions dated exactly on.
func ByDate(on Date) func(Transaction) bool {
	return func(tx Transaction) bool { return tx.Date == on }
}

// ByItem returns a predicate that keeps transactions for the given item.
func ByItem(itemID string) func(Transaction) bool {
	return func(tx Transaction) bool { return tx.ItemID == itemID }
}

// ByVehicle returns a predicate that keeps transactions for the given vehicle.
func ByVehicle(vehicleID string) func(Transaction) bool {
	return func(tx Transaction) bool { return tx.VehicleID == vehicleID }
}

// ByType returns a predicate that keeps transactions of the given type.
func ByType(t TransactionType) func(Transaction) bool {
	return func(tx Transaction) bool { return tx.Type == t }
}
