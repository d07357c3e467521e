package stockbook

import (
	"sort"
)

// DailyStockEntry is one item's movements and levels for a single day.
type DailyStockEntry struct {
	ItemID       string   `json:"itemId"`
	ItemName     string   `json:"itemName"`
	OpeningStock Quantity `json:"openingStock"`
	StockIn      Quantity `json:"stockIn"`
	StockOut     Quantity `json:"stockOut"`
	ClosingStock Quantity `json:"closingStock"`
}

// DailyStockReport is the per-item stock movement report for one day.
type DailyStockReport struct {
	Date    Date              `json:"date"`
	Entries []DailyStockEntry `json:"entries"`
}

// ValuationEntry is one item's contribution to the inventory valuation.
type ValuationEntry struct {
	ItemID       string   `json:"itemId"`
	ItemName     string   `json:"itemName"`
	Category     string   `json:"category"`
	CurrentStock Quantity `json:"currentStock"`
	Rate         Money    `json:"rate"`
	TotalValue   Money    `json:"totalValue"`
}

// Valuation is the whole-inventory valuation report.
type Valuation struct {
	Entries []ValuationEntry `json:"entries"`
	Total   Money            `json:"totalValue"`
}

// LowStockAlert flags an item whose current stock fell below its threshold.
type LowStockAlert struct {
	ItemID            string   `json:"itemId"`
	ItemName          string   `json:"itemName"`
	CurrentStock      Quantity `json:"currentStock"`
	LowStockThreshold Quantity `json:"lowStockThreshold"`
}

// StockSummary is the at-a-glance dashboard aggregate.
type StockSummary struct {
	TotalItems         int      `json:"totalItems"`
	TotalVehicles      int      `json:"totalVehicles"`
	TotalStockQuantity Quantity `json:"totalStockQuantity"`
}

// DailyStockReport reconstructs each item's stock levels for a single
// day by subtracting later movements from the live current stock:
//
//	closing = currentStock − net effect of transactions after on
//	opening = closing − stockIn(on) + stockOut(on)
//
// Working backward from the live figure keeps the report correct even
// when an item's opening stock was edited after transactions were
// posted. Days with no movement report opening == closing.
func (l *Ledger) DailyStockReport(on Date) (*DailyStockReport, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	items, err := l.items(l.store)
	if err != nil {
		return nil, err
	}
	txs, err := l.store.Transactions()
	if err != nil {
		return nil, err
	}

	report := &DailyStockReport{Date: on}
	for _, it := range items {
		entry := DailyStockEntry{ItemID: it.ID, ItemName: it.Name}
		closing := it.CurrentStock
		for _, tx := range txs {
			if tx.ItemID != it.ID {
				continue
			}
			switch {
			case tx.Date.After(on):
				// Undo the movement to roll back to end of day.
				if tx.Type == StockIn {
					closing = closing.Sub(tx.Quantity)
				} else {
					closing = closing.Add(tx.Quantity)
				}
			case tx.Date == on:
				if tx.Type == StockIn {
					entry.StockIn = entry.StockIn.Add(tx.Quantity)
				} else {
					entry.StockOut = entry.StockOut.Add(tx.Quantity)
				}
			}
		}
		entry.ClosingStock = closing
		entry.OpeningStock = closing.Sub(entry.StockIn).Add(entry.StockOut)
		report.Entries = append(report.Entries, entry)
	}
	sort.Slice(report.Entries, func(i, j int) bool {
		return report.Entries[i].ItemName < report.Entries[j].ItemName
	})
	return report, nil
}

// InventoryValuation values every item at currentStock × rate and
// returns entries sorted by total value, highest first.
func (l *Ledger) InventoryValuation() (*Valuation, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	items, err := l.items(l.store)
	if err != nil {
		return nil, err
	}

	v := &Valuation{Total: M(0, l.currency)}
	for _, it := range items {
		value := it.Rate.Mul(it.CurrentStock)
		v.Entries = append(v.Entries, ValuationEntry{
			ItemID:       it.ID,
			ItemName:     it.Name,
			Category:     it.Category,
			CurrentStock: it.CurrentStock,
			Rate:         it.Rate,
			TotalValue:   value,
		})
		v.Total = v.Total.Add(value)
	}
	sort.Slice(v.Entries, func(i, j int) bool {
		a, b := v.Entries[i], v.Entries[j]
		if !a.TotalValue.Equal(b.TotalValue) {
			return b.TotalValue.LessThan(a.TotalValue)
		}
		return a.ItemName < b.ItemName
	})
	return v, nil
}

// LowStockItems returns an alert for every item with a positive
// threshold whose current stock sits strictly below it. The list is
// recomputed from live stock on every call.
func (l *Ledger) LowStockItems() ([]LowStockAlert, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	items, err := l.store.Items()
	if err != nil {
		return nil, err
	}
	var alerts []LowStockAlert
	for _, it := range items {
		if it.LowStockThreshold.IsPositive() && it.CurrentStock.LessThan(it.LowStockThreshold) {
			alerts = append(alerts, LowStockAlert{
				ItemID:            it.ID,
				ItemName:          it.Name,
				CurrentStock:      it.CurrentStock,
				LowStockThreshold: it.LowStockThreshold,
			})
		}
	}
	return alerts, nil
}

// Summary aggregates the headline counts of the book.
func (l *Ledger) Summary() (*StockSummary, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	items, err := l.store.Items()
	if err != nil {
		return nil, err
	}
	vehicles, err := l.store.Vehicles()
	if err != nil {
		return nil, err
	}
	s := &StockSummary{TotalItems: len(items), TotalVehicles: len(vehicles)}
	for _, it := range items {
		s.TotalStockQuantity = s.TotalStockQuantity.Add(it.CurrentStock)
	}
	return s, nil
}
