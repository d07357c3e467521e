package stockbook

import (
	"fmt"
	"os"
	"path/filepath"
)

// LoadBook opens and decodes a book file. A missing file is not an
// error: it yields an empty ledger with the given default currency, so
// a fresh working directory just works.
func LoadBook(path, defaultCurrency string) (*Ledger, error) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return NewLedger(NewMemoryStore(), defaultCurrency)
	}
	if err != nil {
		return nil, fmt.Errorf("could not open book file %q: %w", path, err)
	}
	defer f.Close()

	l, err := DecodeBook(f)
	if err != nil {
		return nil, fmt.Errorf("could not decode book file %q: %w", path, err)
	}
	return l, nil
}

// SaveBook persists the ledger to the given path. It writes to a
// temporary file in the same directory and renames it into place, so a
// crash mid-write never truncates the book.
func SaveBook(path string, l *Ledger) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("could not create directory for book %q: %w", path, err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("could not create temporary book file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := EncodeBook(tmp, l); err != nil {
		tmp.Close()
		return fmt.Errorf("could not encode book: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("could not close temporary book file: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("could not replace book file %q: %w", path, err)
	}
	return nil
}
