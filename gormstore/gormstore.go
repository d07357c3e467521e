// Package gormstore provides a relational backend for the stock ledger,
// mapping the record collections to tables through GORM. It is a
// drop-in replacement for the in-memory store when several processes
// share one book.
package gormstore

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"stockbook"
)

// Store implements stockbook.Store over a GORM database handle.
type Store struct {
	db *gorm.DB
}

var _ stockbook.Store = (*Store)(nil)

// Open connects to a Postgres database and migrates the schema.
func Open(dsn string) (*Store, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("could not connect to database: %w", err)
	}
	return New(db)
}

// New wraps an existing GORM handle and migrates the schema.
func New(db *gorm.DB) (*Store, error) {
	if err := db.AutoMigrate(&itemRow{}, &categoryRow{}, &vehicleRow{}, &transactionRow{}); err != nil {
		return nil, fmt.Errorf("could not migrate schema: %w", err)
	}
	return &Store{db: db}, nil
}

type itemRow struct {
	ID                string          `gorm:"primaryKey"`
	Name              string          `gorm:"index"`
	Description       string
	SKU               string
	Category          string          `gorm:"index"`
	Rate              decimal.Decimal `gorm:"type:numeric"`
	OpeningStock      decimal.Decimal `gorm:"type:numeric"`
	CurrentStock      decimal.Decimal `gorm:"type:numeric"`
	LowStockThreshold decimal.Decimal `gorm:"type:numeric"`
}

func (itemRow) TableName() string { return "items" }

type categoryRow struct {
	ID   string `gorm:"primaryKey"`
	Name string `gorm:"index"`
}

func (categoryRow) TableName() string { return "categories" }

type vehicleRow struct {
	ID           string `gorm:"primaryKey"`
	Name         string `gorm:"index"`
	LicensePlate string
	Capacity     decimal.Decimal `gorm:"type:numeric"`
}

func (vehicleRow) TableName() string { return "vehicles" }

type transactionRow struct {
	Seq         int64  `gorm:"primaryKey;autoIncrement"` // preserves posting order within a day
	ID          string `gorm:"uniqueIndex"`
	Date        string `gorm:"index"`
	ItemID      string `gorm:"index"`
	ItemName    string
	Quantity    decimal.Decimal `gorm:"type:numeric"`
	Type        string
	VehicleID   string `gorm:"index"`
	VehicleName string
}

func (transactionRow) TableName() string { return "transactions" }

func toItemRow(it stockbook.Item) itemRow {
	return itemRow{
		ID:                it.ID,
		Name:              it.Name,
		Description:       it.Description,
		SKU:               it.SKU,
		Category:          it.Category,
		Rate:              it.Rate.Amount(),
		OpeningStock:      it.OpeningStock.Decimal(),
		CurrentStock:      it.CurrentStock.Decimal(),
		LowStockThreshold: it.LowStockThreshold.Decimal(),
	}
}

func (r itemRow) item() stockbook.Item {
	return stockbook.Item{
		ID:                r.ID,
		Name:              r.Name,
		Description:       r.Description,
		SKU:               r.SKU,
		Category:          r.Category,
		Rate:              stockbook.M(r.Rate, ""),
		OpeningStock:      stockbook.Q(r.OpeningStock),
		CurrentStock:      stockbook.Q(r.CurrentStock),
		LowStockThreshold: stockbook.Q(r.LowStockThreshold),
	}
}

func toVehicleRow(v stockbook.Vehicle) vehicleRow {
	return vehicleRow{ID: v.ID, Name: v.Name, LicensePlate: v.LicensePlate, Capacity: v.Capacity.Decimal()}
}

func (r vehicleRow) vehicle() stockbook.Vehicle {
	return stockbook.Vehicle{ID: r.ID, Name: r.Name, LicensePlate: r.LicensePlate, Capacity: stockbook.Q(r.Capacity)}
}

func toTransactionRow(tx stockbook.Transaction) transactionRow {
	return transactionRow{
		ID:          tx.ID,
		Date:        tx.Date.String(),
		ItemID:      tx.ItemID,
		ItemName:    tx.ItemName,
		Quantity:    tx.Quantity.Decimal(),
		Type:        string(tx.Type),
		VehicleID:   tx.VehicleID,
		VehicleName: tx.VehicleName,
	}
}

func (r transactionRow) transaction() (stockbook.Transaction, error) {
	d, err := stockbook.ParseDate(r.Date)
	if err != nil {
		return stockbook.Transaction{}, fmt.Errorf("invalid date in transaction %q: %w", r.ID, err)
	}
	return stockbook.Transaction{
		ID:          r.ID,
		Date:        d,
		ItemID:      r.ItemID,
		ItemName:    r.ItemName,
		Quantity:    stockbook.Q(r.Quantity),
		Type:        stockbook.TransactionType(r.Type),
		VehicleID:   r.VehicleID,
		VehicleName: r.VehicleName,
	}, nil
}

func newID(id string) string {
	if id != "" {
		return id
	}
	return uuid.NewString()
}

// --- items ---

func (s *Store) Items() ([]stockbook.Item, error) {
	var rows []itemRow
	if err := s.db.Order("lower(name)").Find(&rows).Error; err != nil {
		return nil, err
	}
	items := make([]stockbook.Item, 0, len(rows))
	for _, r := range rows {
		items = append(items, r.item())
	}
	return items, nil
}

func (s *Store) Item(id string) (stockbook.Item, bool, error) {
	var r itemRow
	err := s.db.First(&r, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return stockbook.Item{}, false, nil
	}
	if err != nil {
		return stockbook.Item{}, false, err
	}
	return r.item(), true, nil
}

func (s *Store) InsertItem(it stockbook.Item) (stockbook.Item, error) {
	it.ID = newID(it.ID)
	r := toItemRow(it)
	if err := s.db.Create(&r).Error; err != nil {
		return stockbook.Item{}, err
	}
	return it, nil
}

func (s *Store) UpdateItem(it stockbook.Item) error {
	r := toItemRow(it)
	res := s.db.Model(&itemRow{ID: it.ID}).Select("*").Omit("id").Updates(&r)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("item %q: %w", it.ID, stockbook.ErrNotFound)
	}
	return nil
}

func (s *Store) DeleteItem(id string) (bool, error) {
	res := s.db.Delete(&itemRow{}, "id = ?", id)
	return res.RowsAffected > 0, res.Error
}

// --- categories ---

func (s *Store) Categories() ([]stockbook.Category, error) {
	var rows []categoryRow
	if err := s.db.Order("lower(name)").Find(&rows).Error; err != nil {
		return nil, err
	}
	cats := make([]stockbook.Category, 0, len(rows))
	for _, r := range rows {
		cats = append(cats, stockbook.Category{ID: r.ID, Name: r.Name})
	}
	return cats, nil
}

func (s *Store) Category(id string) (stockbook.Category, bool, error) {
	var r categoryRow
	err := s.db.First(&r, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return stockbook.Category{}, false, nil
	}
	if err != nil {
		return stockbook.Category{}, false, err
	}
	return stockbook.Category{ID: r.ID, Name: r.Name}, true, nil
}

func (s *Store) InsertCategory(c stockbook.Category) (stockbook.Category, error) {
	c.ID = newID(c.ID)
	if err := s.db.Create(&categoryRow{ID: c.ID, Name: c.Name}).Error; err != nil {
		return stockbook.Category{}, err
	}
	return c, nil
}

func (s *Store) UpdateCategory(c stockbook.Category) error {
	res := s.db.Model(&categoryRow{ID: c.ID}).Update("name", c.Name)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("category %q: %w", c.ID, stockbook.ErrNotFound)
	}
	return nil
}

func (s *Store) DeleteCategory(id string) (bool, error) {
	res := s.db.Delete(&categoryRow{}, "id = ?", id)
	return res.RowsAffected > 0, res.Error
}

// --- vehicles ---

func (s *Store) Vehicles() ([]stockbook.Vehicle, error) {
	var rows []vehicleRow
	if err := s.db.Order("lower(name)").Find(&rows).Error; err != nil {
		return nil, err
	}
	vehicles := make([]stockbook.Vehicle, 0, len(rows))
	for _, r := range rows {
		vehicles = append(vehicles, r.vehicle())
	}
	return vehicles, nil
}

func (s *Store) Vehicle(id string) (stockbook.Vehicle, bool, error) {
	var r vehicleRow
	err := s.db.First(&r, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return stockbook.Vehicle{}, false, nil
	}
	if err != nil {
		return stockbook.Vehicle{}, false, err
	}
	return r.vehicle(), true, nil
}

func (s *Store) InsertVehicle(v stockbook.Vehicle) (stockbook.Vehicle, error) {
	v.ID = newID(v.ID)
	r := toVehicleRow(v)
	if err := s.db.Create(&r).Error; err != nil {
		return stockbook.Vehicle{}, err
	}
	return v, nil
}

func (s *Store) UpdateVehicle(v stockbook.Vehicle) error {
	r := toVehicleRow(v)
	res := s.db.Model(&vehicleRow{ID: v.ID}).Select("*").Omit("id").Updates(&r)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("vehicle %q: %w", v.ID, stockbook.ErrNotFound)
	}
	return nil
}

func (s *Store) DeleteVehicle(id string) (bool, error) {
	res := s.db.Delete(&vehicleRow{}, "id = ?", id)
	return res.RowsAffected > 0, res.Error
}

// --- transactions ---

func (s *Store) Transactions() ([]stockbook.Transaction, error) {
	var rows []transactionRow
	if err := s.db.Order("date, seq").Find(&rows).Error; err != nil {
		return nil, err
	}
	txs := make([]stockbook.Transaction, 0, len(rows))
	for _, r := range rows {
		tx, err := r.transaction()
		if err != nil {
			return nil, err
		}
		txs = append(txs, tx)
	}
	return txs, nil
}

func (s *Store) InsertTransaction(tx stockbook.Transaction) (stockbook.Transaction, error) {
	tx.ID = newID(tx.ID)
	r := toTransactionRow(tx)
	if err := s.db.Create(&r).Error; err != nil {
		return stockbook.Transaction{}, err
	}
	return tx, nil
}

func (s *Store) DeleteTransactionsByItem(itemID string) (int, error) {
	res := s.db.Delete(&transactionRow{}, "item_id = ?", itemID)
	return int(res.RowsAffected), res.Error
}

func (s *Store) DeleteTransactionsByVehicle(vehicleID string) (int, error) {
	res := s.db.Delete(&transactionRow{}, "vehicle_id = ?", vehicleID)
	return int(res.RowsAffected), res.Error
}

// Transact runs fn inside one database transaction, so cascades and
// postings commit or roll back as a unit.
func (s *Store) Transact(fn func(stockbook.Store) error) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		return fn(&Store{db: tx})
	})
}
