package sheets

import (
	"context"
	"fmt"
)

// Store is the tabular workbook access contract: rows of string cells
// addressed by "sheet!range" in A1 notation. The first row of every sheet is
// a header and is skipped by the decoders, never by the store itself.
type Store interface {
	ReadRange(ctx context.Context, readRange string) ([][]string, error)
	Append(ctx context.Context, rng string, rows [][]string) (AppendResult, error)
	Update(ctx context.Context, rng string, rows [][]string) error
}

// AppendResult reports the 1-based row span the append landed on, so callers
// can address those rows again (the formula backfill needs it).
type AppendResult struct {
	StartRow    int
	EndRow      int
	UpdatedRows int
}

// StoreError wraps any failed workbook call so handlers can surface it as a
// distinct "store unavailable" state instead of an empty result.
type StoreError struct {
	Op    string
	Range string
	Err   error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("workbook %s %s: %v", e.Op, e.Range, e.Err)
}

func (e *StoreError) Unwrap() error { return e.Err }
