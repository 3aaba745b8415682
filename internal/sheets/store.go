// Package sheets is the row-oriented persistence layer. Each collection
// is an ordered list of rows; rows are appended, looked up by their
// first cell, and patched one cell at a time. Row and column indexes
// are 1-based, matching spreadsheet conventions.
package sheets

import (
	"context"
	"errors"
)

// Collection names backed by the store.
const (
	Users           = "Users"
	TrainingSignups = "TrainingSignups"
	NetworkRegs     = "NetworkingRegistrations"
	Companies       = "Companies"
	Collaborations  = "Collaborations"
)

// ErrRowNotFound is returned by FindRow when no row has the given key.
var ErrRowNotFound = errors.New("sheets: row not found")

// Store is the row-oriented persistence contract. Writes are append-only
// except UpdateCell, which overwrites a single cell last-writer-wins.
type Store interface {
	// AppendRow adds a row to the end of a collection.
	AppendRow(ctx context.Context, collection string, cells []string) error

	// FindRow returns the first row whose first cell equals key, along
	// with its 1-based index.
	FindRow(ctx context.Context, collection, key string) (int, []string, error)

	// UpdateCell overwrites one cell addressed by 1-based row and column.
	UpdateCell(ctx context.Context, collection string, row, col int, value string) error

	// Rows returns every row of a collection in append order.
	Rows(ctx context.Context, collection string) ([][]string, error)
}
