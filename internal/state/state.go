package state

import "reststate/internal/models"

// EntityState is the single state record for one entity type. It is always
// replaced wholesale by the reducer, never mutated in place.
type EntityState struct {
	// Loading is true while a list or single-item fetch is outstanding.
	Loading bool
	// ErrorMessage holds the last failure's message; empty means no error.
	ErrorMessage string
	// Entities is the last successfully fetched collection.
	Entities []models.Entity
	// Entity is the last successfully fetched, created, or updated item.
	Entity models.Entity
	// Updating is true while a create/update/delete is outstanding.
	Updating bool
	// UpdateSuccess is true exactly after a create/update/delete success.
	// It is shared across the three mutating operations; callers that need
	// to know which one succeeded must look at Entity/Entities themselves.
	UpdateSuccess bool
}

// DefaultEntityState returns the all-default record a fresh store starts with.
func DefaultEntityState() EntityState {
	return EntityState{}
}
