package stockbook

// Store is the record store port: it holds the four collections keyed
// by opaque string ids that are generated at insert time and never
// reused. The ledger's business logic is written against this
// interface only; backends (in-memory, file-loaded, relational) are
// swapped behind it.
//
// Insert methods assign a fresh id when the record carries none and
// return the persisted record. Delete methods report false, not an
// error, when the id is absent.
type Store interface {
	Items() ([]Item, error)
	Item(id string) (Item, bool, error)
	InsertItem(it Item) (Item, error)
	UpdateItem(it Item) error
	DeleteItem(id string) (bool, error)

	Categories() ([]Category, error)
	Category(id string) (Category, bool, error)
	InsertCategory(c Category) (Category, error)
	UpdateCategory(c Category) error
	DeleteCategory(id string) (bool, error)

	Vehicles() ([]Vehicle, error)
	Vehicle(id string) (Vehicle, bool, error)
	InsertVehicle(v Vehicle) (Vehicle, error)
	UpdateVehicle(v Vehicle) error
	DeleteVehicle(id string) (bool, error)

	// Transactions returns all transactions in chronological order.
	Transactions() ([]Transaction, error)
	InsertTransaction(t Transaction) (Transaction, error)
	DeleteTransactionsByItem(itemID string) (int, error)
	DeleteTransactionsByVehicle(vehicleID string) (int, error)

	// Transact runs fn as a single atomic unit: either every mutation
	// made through the passed store is applied, or none is. It is the
	// boundary for transaction posting and for multi-record cascades.
	Transact(fn func(Store) error) error
}
