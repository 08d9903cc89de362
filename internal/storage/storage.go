// Package storage persists the address book between sessions.
package storage

import (
	"context"
	"fmt"

	"clientbook/internal/model"
)

const (
	DriverJSON   = "json"
	DriverSQLite = "sqlite"
)

// Store loads and saves whole address books.
type Store interface {
	Load(ctx context.Context) (*model.AddressBook, error)
	Save(ctx context.Context, book *model.AddressBook) error
	Close() error
}

// Open returns the store for driver at path.
func Open(ctx context.Context, driver, path string) (Store, error) {
	switch driver {
	case DriverJSON:
		return NewJSONStore(path), nil
	case DriverSQLite:
		return NewSQLiteStore(ctx, path)
	default:
		return nil, fmt.Errorf("unknown storage driver %q", driver)
	}
}
