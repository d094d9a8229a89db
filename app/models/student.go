package models

import "time"

// Student represents an enrolled academy student.
type Student struct {
	ID           int        `json:"id"`
	Name         string     `json:"name" validate:"required"`
	GuardianName string     `json:"guardian_name,omitempty"`
	Email        string     `json:"email,omitempty" validate:"omitempty,email"`
	Phone        string     `json:"phone,omitempty"`
	SchoolName   *string    `json:"school_name,omitempty"`
	CourseID     *int       `json:"course_id,omitempty"`
	IsActive     bool       `json:"is_active"`
	EnrolledAt   time.Time  `json:"enrolled_at"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
	DeletedAt    *time.Time `json:"deleted_at,omitempty"`
	Course       *Course    `json:"course,omitempty"` // optional for JSON responses
}
