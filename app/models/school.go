package models

import "time"

// School represents a partner school where lessons are taught
type School struct {
	ID        int        `json:"id" validate:"required,gt=0"`
	Name      string     `json:"name" validate:"required"`
	Address   string     `json:"address,omitempty"`
	Phone     string     `json:"phone,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
}
