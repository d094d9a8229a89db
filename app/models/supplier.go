package models

import "time"

// Supplier represents a vendor the academy buys from
type Supplier struct {
	ID        int        `json:"id" validate:"required,gt=0"`
	Name      string     `json:"name" validate:"required"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
}
