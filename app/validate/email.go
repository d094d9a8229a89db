// Package validate checks email-send request payloads before they reach the
// mailer. It is pure: no I/O, no state, and it never lets the underlying
// engine panic past its boundary.
package validate

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Recipients accepts either a single address or a list of addresses on the
// wire and always holds a list in memory.
type Recipients []string

func (r *Recipients) UnmarshalJSON(data []byte) error {
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		*r = Recipients{single}
		return nil
	}
	var many []string
	if err := json.Unmarshal(data, &many); err != nil {
		return fmt.Errorf("to must be an email or a list of emails")
	}
	*r = Recipients(many)
	return nil
}

func (r Recipients) MarshalJSON() ([]byte, error) {
	if len(r) == 1 {
		return json.Marshal(r[0])
	}
	return json.Marshal([]string(r))
}

// Attachment is a base64-encoded file carried on an email request.
type Attachment struct {
	Filename    string `json:"filename" validate:"required"`
	Content     string `json:"content" validate:"required,b64content"`
	ContentType string `json:"contentType" validate:"required"`
}

// EmailRequest is the wire shape of POST /api/mail/send.
type EmailRequest struct {
	To          Recipients   `json:"to" validate:"required,min=1,dive,email"`
	Subject     string       `json:"subject" validate:"required,max=200"`
	Text        string       `json:"text,omitempty"`
	HTML        string       `json:"html,omitempty"`
	Attachments []Attachment `json:"attachments,omitempty" validate:"omitempty,dive"`
}

// FieldError locates one validation failure.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Result is the outcome of validating one request. Exactly one of the two
// arms is populated: Success true with Data, or Success false with Errors
// (or Message alone when structured errors were unavailable).
type Result struct {
	Success bool          `json:"success"`
	Data    *EmailRequest `json:"data,omitempty"`
	Errors  []FieldError  `json:"errors,omitempty"`
	Message string        `json:"message,omitempty"`
}

var engine = newEngine()

func newEngine() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	_ = v.RegisterValidation("b64content", validBase64)
	v.RegisterStructValidation(requireTextOrHTML, EmailRequest{})
	return v
}

// DecodeContent decodes attachment content. Padded and unpadded forms are
// both accepted; nothing about the decoded bytes is checked.
func DecodeContent(s string) ([]byte, error) {
	if b, err := base64.StdEncoding.DecodeString(s); err == nil {
		return b, nil
	}
	return base64.RawStdEncoding.DecodeString(s)
}

// validBase64 accepts any string the decoder takes without error.
func validBase64(fl validator.FieldLevel) bool {
	_, err := DecodeContent(fl.Field().String())
	return err == nil
}

// requireTextOrHTML enforces the at-least-one-body rule. Absence is reported
// against both fields, matching how the form highlights them.
func requireTextOrHTML(sl validator.StructLevel) {
	req := sl.Current().Interface().(EmailRequest)
	if req.Text == "" && req.HTML == "" {
		sl.ReportError(req.Text, "text", "Text", "required_without", "")
		sl.ReportError(req.HTML, "html", "HTML", "required_without", "")
	}
}

// Email validates req and reports the outcome. Calling it twice on the same
// request yields the same result.
func Email(req *EmailRequest) (result Result) {
	defer func() {
		if r := recover(); r != nil {
			result = Result{Success: false, Message: fmt.Sprintf("validation failed: %v", r)}
		}
	}()

	if req == nil {
		return Result{Success: false, Message: "request body is required"}
	}

	err := engine.Struct(req)
	if err == nil {
		return Result{Success: true, Data: req}
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		// The engine could not produce structured errors.
		return Result{Success: false, Message: err.Error()}
	}

	fieldErrs := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fieldErrs = append(fieldErrs, FieldError{
			Field:   fieldPath(fe),
			Message: messageFor(fe),
		})
	}
	return Result{Success: false, Errors: fieldErrs}
}

// fieldPath turns the validator namespace into a json-style path, e.g.
// "attachments[0].content".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "min":
		return "must contain at least 1 email"
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	case "email":
		return fmt.Sprintf("%q is not a valid email", fe.Value())
	case "required_without":
		return "at least one of text or html is required"
	case "b64content":
		return "must be valid base64 content"
	}
	return fmt.Sprintf("%s is invalid", fe.Field())
}
