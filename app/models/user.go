package models

import "time"

// User is a console account. Username is the primary key and never changes
// after creation; the password is write-only and is not selected by any list
// or detail query.
type User struct {
	Username  string     `json:"username" validate:"required"`
	Password  string     `json:"-" validate:"required,min=8"`
	UserType  string     `json:"user_type" validate:"required"`
	AvatarURL *string    `json:"avatar_url,omitempty"`
	IsActive  bool       `json:"is_active"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	DeletedAt *time.Time `json:"deleted_at,omitempty"`

	Permissions Permissions `json:"permissions"`
}

// Permissions are the per-section access flags carried on every user row and
// inside the JWT claims.
type Permissions struct {
	Students  bool `json:"students"`
	Payments  bool `json:"payments"`
	Expenses  bool `json:"expenses"`
	Suppliers bool `json:"suppliers"`
	Schools   bool `json:"schools"`
	Courses   bool `json:"courses"`
	Users     bool `json:"users"`
	Mail      bool `json:"mail"`
	Reports   bool `json:"reports"`
	Exports   bool `json:"exports"`
	Settings  bool `json:"settings"`
}

// UserType is the job function label shown on the users screen
type UserType struct {
	ID        int        `json:"id"`
	Function  string     `json:"function" validate:"required"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
}
