package entity

import (
	"time"

	"github.com/google/uuid"
)

// Base is embedded by rows that carry full audit columns and support
// soft deletion.
type Base struct {
	ID        uuid.UUID  `db:"id"`
	CreatedAt time.Time  `db:"created_at"`
	UpdatedAt time.Time  `db:"updated_at"`
	DeletedAt *time.Time `db:"deleted_at"`
}

// BaseSimple is embedded by rows that only record when they were
// created, such as follows and notifications.
type BaseSimple struct {
	ID        uuid.UUID `db:"id"`
	CreatedAt time.Time `db:"created_at"`
}
