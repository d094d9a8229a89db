package models

import "time"

// Expense represents money spent by the academy.
//
// IDs are picked ahead of insertion as max existing ID + 1; the primary key
// constraint is what actually guarantees uniqueness (see NextExpenseID in the
// expenses package).
type Expense struct {
	ID         int        `json:"id" validate:"required,gt=0"`
	Reason     string     `json:"reason" validate:"required"`
	Amount     int64      `json:"amount" validate:"required,gt=0"`
	Note       string     `json:"note,omitempty"`
	SpentAt    time.Time  `json:"spent_at" validate:"required"`
	SchoolName *string    `json:"school_name,omitempty"`
	SupplierID *int       `json:"supplier_id,omitempty"`
	GroupLabel string     `json:"group_label,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
	DeletedAt  *time.Time `json:"deleted_at,omitempty"`
	Supplier   *Supplier  `json:"supplier,omitempty"` // optional for JSON responses
}
