package models

import "time"

// Payment represents a monthly tuition payment receipt.
type Payment struct {
	ReceiptNumber         int        `json:"receipt_number" validate:"required,gt=0"`
	ControlNumber         string     `json:"control_number,omitempty"`
	Amount                float64    `json:"amount" validate:"required,gt=0"`
	MonthPaid             string     `json:"month_paid" validate:"required"`
	PaidAt                time.Time  `json:"paid_at" validate:"required"`
	PaymentMethod         string     `json:"payment_method" validate:"required"`
	Note                  string     `json:"note,omitempty"`
	Notified              bool       `json:"notified"`
	Settled               bool       `json:"settled"`
	CourseID              *int       `json:"course_id,omitempty"`
	StudentID             *int       `json:"student_id,omitempty"`
	HasScholarship        bool       `json:"has_scholarship"`
	ScholarshipAmount     float64    `json:"scholarship_amount,omitempty"`
	ScholarshipPercentage float64    `json:"scholarship_percentage,omitempty"`
	CreatedAt             time.Time  `json:"created_at"`
	UpdatedAt             time.Time  `json:"updated_at"`
	DeletedAt             *time.Time `json:"deleted_at,omitempty"`
	Student               *Student   `json:"student,omitempty"` // optional for JSON responses
	Course                *Course    `json:"course,omitempty"`
}
