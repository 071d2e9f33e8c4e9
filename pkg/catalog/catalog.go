// Package catalog is the record-store boundary for whiskeys. Implementations
// are fail-soft: read errors become empty results, write errors become nil or
// false, and the error itself is only logged. Identifiers and creation
// timestamps are assigned here, never by callers.
package catalog

import (
	"context"

	"github.com/whiskeynotes/go-whiskey-api/pkg/models"
)

type Catalog interface {
	// List returns every whiskey ordered by creation timestamp descending,
	// or an empty slice if the store cannot be reached.
	List(ctx context.Context) []models.Whiskey
	// GetByID returns the whiskey or nil when absent or unreachable.
	GetByID(ctx context.Context, id string) *models.Whiskey
	// Create inserts a new whiskey, assigning its id and timestamp. Nil on
	// failure; callers surface that as "add failed" feedback.
	Create(ctx context.Context, req models.WhiskeyRequest) *models.Whiskey
	// Update replaces the mutable fields of an existing whiskey and returns
	// the updated record, or nil on failure.
	Update(ctx context.Context, id string, req models.WhiskeyRequest) *models.Whiskey
	// Delete removes a whiskey and reports whether a record was deleted.
	Delete(ctx context.Context, id string) bool
}
