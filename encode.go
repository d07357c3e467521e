package stockbook

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// Record discriminators, one per JSONL line kind.
const (
	recBook        = "book"
	recCategory    = "category"
	recItem        = "item"
	recVehicle     = "vehicle"
	recTransaction = "transaction"
)

// bookHeader is the optional first line of a book file, carrying
// book-level configuration.
type bookHeader struct {
	Record   string `json:"record"`
	Currency string `json:"currency"`
}

// DefaultCurrency is used when a book file has no header line.
const DefaultCurrency = "USD"

// EncodeBook persists the whole ledger to an io.Writer in JSONL format:
// a book header, then categories, items, vehicles, and finally the
// transactions in chronological order, one JSON object per line.
func EncodeBook(w io.Writer, l *Ledger) error {
	decimal.MarshalJSONWithoutQuotes = true

	if err := encodeLine(w, bookHeader{Record: recBook, Currency: l.Currency()}); err != nil {
		return err
	}

	cats, err := l.Categories()
	if err != nil {
		return err
	}
	for _, c := range cats {
		if err := encodeRecord(w, recCategory, c); err != nil {
			return err
		}
	}

	items, err := l.Items()
	if err != nil {
		return err
	}
	for _, it := range items {
		if err := encodeRecord(w, recItem, it); err != nil {
			return err
		}
	}

	vehicles, err := l.Vehicles()
	if err != nil {
		return err
	}
	for _, v := range vehicles {
		if err := encodeRecord(w, recVehicle, v); err != nil {
			return err
		}
	}

	txs, err := l.Transactions()
	if err != nil {
		return err
	}
	for _, tx := range txs {
		if err := encodeRecord(w, recTransaction, tx); err != nil {
			return err
		}
	}
	return nil
}

// encodeRecord writes one record line, prefixing the marshalled value
// with its "record" discriminator.
func encodeRecord(w io.Writer, kind string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal %s record: %w", kind, err)
	}
	// Splice the discriminator in front of the object's own fields.
	line := append([]byte(`{"record":"`+kind+`",`), data[1:]...)
	if _, err := w.Write(append(line, '\n')); err != nil {
		return fmt.Errorf("failed to write %s record: %w", kind, err)
	}
	return nil
}

func encodeLine(w io.Writer, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal line: %w", err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("failed to write line: %w", err)
	}
	return nil
}

// DecodeBook reads a JSONL stream of records and returns a ledger over
// a fresh in-memory store. Record ids are preserved, transactions are
// re-sorted chronologically, and every rate is stamped with the book's
// currency.
func DecodeBook(r io.Reader) (*Ledger, error) {
	store := NewMemoryStore()
	currency := DefaultCurrency

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		var identifier struct {
			Record string `json:"record"`
		}
		if err := json.Unmarshal(line, &identifier); err != nil {
			return nil, fmt.Errorf("could not identify record in line %q: %w", string(line), err)
		}

		switch identifier.Record {
		case recBook:
			var h bookHeader
			if err := json.Unmarshal(line, &h); err != nil {
				return nil, fmt.Errorf("invalid book header %q: %w", string(line), err)
			}
			if h.Currency != "" {
				currency = h.Currency
			}
		case recCategory:
			var c Category
			if err := json.Unmarshal(line, &c); err != nil {
				return nil, err
			}
			if _, err := store.InsertCategory(c); err != nil {
				return nil, err
			}
		case recItem:
			var it Item
			if err := json.Unmarshal(line, &it); err != nil {
				return nil, err
			}
			if _, err := store.InsertItem(it); err != nil {
				return nil, err
			}
		case recVehicle:
			var v Vehicle
			if err := json.Unmarshal(line, &v); err != nil {
				return nil, err
			}
			if _, err := store.InsertVehicle(v); err != nil {
				return nil, err
			}
		case recTransaction:
			var tx Transaction
			if err := json.Unmarshal(line, &tx); err != nil {
				return nil, err
			}
			if _, err := store.InsertTransaction(tx); err != nil {
				return nil, err
			}
		default:
			return nil, fmt.Errorf("unknown record kind: %q", identifier.Record)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading from input: %w", err)
	}

	store.stableSort()
	return NewLedger(store, currency)
}
