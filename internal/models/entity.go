package models

import (
	"time"

	"github.com/google/uuid"
)

// Entity is the REST resource record this state slice manages. One slice
// instance tracks exactly one resource type.
type Entity struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// IsZero reports whether the entity is the default (never fetched) record.
func (e Entity) IsZero() bool {
	return e.ID == uuid.Nil && e.Name == "" && e.Description == "" &&
		e.CreatedAt.IsZero() && e.UpdatedAt.IsZero()
}
