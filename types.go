package stockbook

// GeneralMerchandise is the protected fallback category. Items from a
// deleted category are reassigned to it, and it cannot be deleted.
const GeneralMerchandise = "General Merchandise"

// TransactionType identifies the direction of a stock movement.
type TransactionType string

const (
	// StockIn adds quantity to an item's current stock.
	StockIn TransactionType = "STOCK_IN"
	// StockOut removes quantity from an item's current stock.
	StockOut TransactionType = "STOCK_OUT"
)

// Valid reports whether t is a known transaction type.
func (t TransactionType) Valid() bool { return t == StockIn || t == StockOut }

// Item is a tracked stock item.
//
// CurrentStock is derived state: it always equals OpeningStock plus the
// net of all stock-in minus stock-out transactions posted against the
// item (adjusted by any later OpeningStock edits). Only the ledger
// mutates it.
type Item struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	SKU         string `json:"sku"`
	// Category holds the category name, not its id. Category renames
	// cascade over every item carrying the old name.
	Category          string   `json:"category"`
	Rate              Money    `json:"rate"` // unit price
	OpeningStock      Quantity `json:"openingStock"`
	CurrentStock      Quantity `json:"currentStock"`
	LowStockThreshold Quantity `json:"lowStockThreshold,omitzero"`
}

// Category groups items by name. Names are unique, case-insensitively.
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Vehicle is a delivery vehicle optionally referenced by transactions.
type Vehicle struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	LicensePlate string   `json:"licensePlate"`
	Capacity     Quantity `json:"capacity"`
}

// Transaction is a single stock movement. Transactions are immutable
// facts: once posted they are never updated, and they are only removed
// when the item or vehicle they reference is deleted.
//
// ItemName and VehicleName are denormalized for display and capture the
// names as they were at posting time; later renames do not rewrite them.
type Transaction struct {
	ID          string          `json:"id"`
	Date        Date            `json:"date"`
	ItemID      string          `json:"itemId"`
	ItemName    string          `json:"itemName"`
	Quantity    Quantity        `json:"quantity"`
	Type        TransactionType `json:"type"`
	VehicleID   string          `json:"vehicleId,omitempty"`
	VehicleName string          `json:"vehicleName,omitempty"`
}

// ItemInput carries the caller-provided fields of a new item. The id
// and the derived CurrentStock are set by the ledger.
type ItemInput struct {
	Name              string
	Description       string
	SKU               string
	Category          string
	Rate              Money
	OpeningStock      Quantity
	LowStockThreshold Quantity
}

// ItemPatch holds optional field updates; nil fields are left unchanged.
type ItemPatch struct {
	Name              *string
	Description       *string
	SKU               *string
	Category          *string
	Rate              *Money
	OpeningStock      *Quantity
	LowStockThreshold *Quantity
}

// CategoryPatch holds optional field updates; nil fields are left unchanged.
type CategoryPatch struct {
	Name *string
}

// VehicleInput carries the caller-provided fields of a new vehicle.
type VehicleInput struct {
	Name         string
	LicensePlate string
	Capacity     Quantity
}

// VehiclePatch holds optional field updates; nil fields are left unchanged.
type VehiclePatch struct {
	Name         *string
	LicensePlate *string
	Capacity     *Quantity
}

// TransactionInput carries the caller-provided fields of a posting.
// The denormalized names are resolved by the ledger at posting time.
type TransactionInput struct {
	Date      Date // zero value means today
	ItemID    string
	Quantity  Quantity
	Type      TransactionType
	VehicleID string // optional
}
