package models

import "time"

// Course represents a chess course taught at a partner school
type Course struct {
	ID         int        `json:"id" validate:"required,gt=0"`
	Name       string     `json:"name" validate:"required"`
	SchoolID   *int       `json:"school_id,omitempty"`
	GroupLabel string     `json:"group_label,omitempty"`
	MonthlyFee float64    `json:"monthly_fee" validate:"gte=0"`
	IsActive   bool       `json:"is_active"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
	DeletedAt  *time.Time `json:"deleted_at,omitempty"`
	School     *School    `json:"school,omitempty"` // optional for JSON responses
}
