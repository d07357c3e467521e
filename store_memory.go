package stockbook

import (
	"sort"
	"strings"

	"github.com/google/uuid"
)

// MemoryStore is the map-backed reference implementation of Store.
//
// It performs no locking of its own: the Ledger serializes access. Its
// Transact runs the function in place without rollback, which is safe
// because ledger operations validate every precondition before the
// first mutation.
type MemoryStore struct {
	items        map[string]Item
	categories   map[string]Category
	vehicles     map[string]Vehicle
	transactions []Transaction // chronological
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		items:      make(map[string]Item),
		categories: make(map[string]Category),
		vehicles:   make(map[string]Vehicle),
	}
}

// newID returns a fresh opaque identifier.
func newID() string { return uuid.NewString() }

func (s *MemoryStore) Items() ([]Item, error) {
	items := make([]Item, 0, len(s.items))
	for _, it := range s.items {
		items = append(items, it)
	}
	sort.Slice(items, func(i, j int) bool {
		return strings.ToLower(items[i].Name) < strings.ToLower(items[j].Name)
	})
	return items, nil
}

func (s *MemoryStore) Item(id string) (Item, bool, error) {
	it, ok := s.items[id]
	return it, ok, nil
}

func (s *MemoryStore) InsertItem(it Item) (Item, error) {
	if it.ID == "" {
		it.ID = newID()
	}
	s.items[it.ID] = it
	return it, nil
}

func (s *MemoryStore) UpdateItem(it Item) error {
	if _, ok := s.items[it.ID]; !ok {
		return ErrNotFound
	}
	s.items[it.ID] = it
	return nil
}

func (s *MemoryStore) DeleteItem(id string) (bool, error) {
	if _, ok := s.items[id]; !ok {
		return false, nil
	}
	delete(s.items, id)
	return true, nil
}

func (s *MemoryStore) Categories() ([]Category, error) {
	cats := make([]Category, 0, len(s.categories))
	for _, c := range s.categories {
		cats = append(cats, c)
	}
	sort.Slice(cats, func(i, j int) bool {
		return strings.ToLower(cats[i].Name) < strings.ToLower(cats[j].Name)
	})
	return cats, nil
}

func (s *MemoryStore) Category(id string) (Category, bool, error) {
	c, ok := s.categories[id]
	return c, ok, nil
}

func (s *MemoryStore) InsertCategory(c Category) (Category, error) {
	if c.ID == "" {
		c.ID = newID()
	}
	s.categories[c.ID] = c
	return c, nil
}

func (s *MemoryStore) UpdateCategory(c Category) error {
	if _, ok := s.categories[c.ID]; !ok {
		return ErrNotFound
	}
	s.categories[c.ID] = c
	return nil
}

func (s *MemoryStore) DeleteCategory(id string) (bool, error) {
	if _, ok := s.categories[id]; !ok {
		return false, nil
	}
	delete(s.categories, id)
	return true, nil
}

func (s *MemoryStore) Vehicles() ([]Vehicle, error) {
	vehicles := make([]Vehicle, 0, len(s.vehicles))
	for _, v := range s.vehicles {
		vehicles = append(vehicles, v)
	}
	sort.Slice(vehicles, func(i, j int) bool {
		return strings.ToLower(vehicles[i].Name) < strings.ToLower(vehicles[j].Name)
	})
	return vehicles, nil
}

func (s *MemoryStore) Vehicle(id string) (Vehicle, bool, error) {
	v, ok := s.vehicles[id]
	return v, ok, nil
}

func (s *MemoryStore) InsertVehicle(v Vehicle) (Vehicle, error) {
	if v.ID == "" {
		v.ID = newID()
	}
	s.vehicles[v.ID] = v
	return v, nil
}

func (s *MemoryStore) UpdateVehicle(v Vehicle) error {
	if _, ok := s.vehicles[v.ID]; !ok {
		return ErrNotFound
	}
	s.vehicles[v.ID] = v
	return nil
}

func (s *MemoryStore) DeleteVehicle(id string) (bool, error) {
	if _, ok := s.vehicles[id]; !ok {
		return false, nil
	}
	delete(s.vehicles, id)
	return true, nil
}

func (s *MemoryStore) Transactions() ([]Transaction, error) {
	txs := make([]Transaction, len(s.transactions))
	copy(txs, s.transactions)
	return txs, nil
}

func (s *MemoryStore) InsertTransaction(t Transaction) (Transaction, error) {
	if t.ID == "" {
		t.ID = newID()
	}
	s.transactions = append(s.transactions, t)
	s.stableSort()
	return t, nil
}

func (s *MemoryStore) DeleteTransactionsByItem(itemID string) (int, error) {
	return s.deleteTransactions(func(t Transaction) bool { return t.ItemID == itemID }), nil
}

func (s *MemoryStore) DeleteTransactionsByVehicle(vehicleID string) (int, error) {
	return s.deleteTransactions(func(t Transaction) bool { return t.VehicleID == vehicleID }), nil
}

func (s *MemoryStore) deleteTransactions(match func(Transaction) bool) int {
	kept := s.transactions[:0]
	removed := 0
	for _, t := range s.transactions {
		if match(t) {
			removed++
			continue
		}
		kept = append(kept, t)
	}
	s.transactions = kept
	return removed
}

func (s *MemoryStore) Transact(fn func(Store) error) error {
	return fn(s)
}

// stableSort keeps transactions in chronological order. The sort is
// stable, so transactions on the same day keep their posting order.
func (s *MemoryStore) stableSort() {
	sort.SliceStable(s.transactions, func(i, j int) bool {
		return s.transactions[i].Date.Before(s.transactions[j].Date)
	})
}
