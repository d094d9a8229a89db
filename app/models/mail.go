package models

import "time"

// MailTemplateKey is the closed set of notification templates the console
// knows how to send.
type MailTemplateKey string

const (
	TemplatePaymentReminder MailTemplateKey = "payment_reminder"
	TemplatePaymentReceipt  MailTemplateKey = "payment_receipt"
	TemplateWelcome         MailTemplateKey = "welcome"
)

// ValidTemplateKey reports whether key names a known template.
func ValidTemplateKey(key string) bool {
	switch MailTemplateKey(key) {
	case TemplatePaymentReminder, TemplatePaymentReceipt, TemplateWelcome:
		return true
	}
	return false
}

// MailTemplate is a configurable notification email (subject and body per
// template key).
type MailTemplate struct {
	ID        int             `json:"id"`
	Key       MailTemplateKey `json:"key" validate:"required"`
	Subject   string          `json:"subject" validate:"required,max=200"`
	Body      string          `json:"body" validate:"required"`
	Enabled   bool            `json:"enabled"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
	DeletedAt *time.Time      `json:"deleted_at,omitempty"`
}
