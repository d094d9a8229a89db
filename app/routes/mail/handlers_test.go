package mail

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/JhonyKing/think-chess-sub001/app/services"

	"github.com/gofiber/fiber/v2"
)

// MockMailer implements services.Mailer for testing
type MockMailer struct {
	SendFunc func(mail *services.OutboundMail) (string, error)
	Sent     []*services.OutboundMail
}

func (m *MockMailer) Send(mail *services.OutboundMail) (string, error) {
	m.Sent = append(m.Sent, mail)
	if m.SendFunc != nil {
		return m.SendFunc(mail)
	}
	return "msg-1", nil
}

func newTestApp(m services.Mailer) *fiber.App {
	mailer = m
	app := fiber.New()
	app.Post("/api/mail/send", SendMailAPI)
	return app
}

func postJSON(t *testing.T, app *fiber.App, path, body string) (*http.Response, map[string]interface{}) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader([]byte(body)))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}

	raw, _ := io.ReadAll(resp.Body)
	var decoded map[string]interface{}
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &decoded); err != nil {
			t.Fatalf("response is not JSON: %v (%s)", err, raw)
		}
	}
	return resp, decoded
}

func TestSendMailSuccess(t *testing.T) {
	mock := &MockMailer{}
	app := newTestApp(mock)

	resp, body := postJSON(t, app, "/api/mail/send",
		`{"to":"a@b.com","subject":"Hi","text":"hello"}`)

	if resp.StatusCode != 200 {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	if body["success"] != true {
		t.Errorf("success = %v", body["success"])
	}
	if body["message_id"] != "msg-1" {
		t.Errorf("message_id = %v", body["message_id"])
	}
	if len(mock.Sent) != 1 {
		t.Fatalf("expected one dispatch, got %d", len(mock.Sent))
	}
	sent := mock.Sent[0]
	if len(sent.To) != 1 || sent.To[0] != "a@b.com" {
		t.Errorf("recipients = %v", sent.To)
	}
}

func TestSendMailRecipientList(t *testing.T) {
	mock := &MockMailer{}
	app := newTestApp(mock)

	resp, _ := postJSON(t, app, "/api/mail/send",
		`{"to":["a@b.com","c@d.org"],"subject":"Hi","html":"<p>x</p>"}`)

	if resp.StatusCode != 200 {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	if got := mock.Sent[0].To; len(got) != 2 {
		t.Errorf("recipients = %v", got)
	}
}

func TestSendMailValidationFailure(t *testing.T) {
	mock := &MockMailer{}
	app := newTestApp(mock)

	tests := []struct {
		name      string
		body      string
		wantField string
	}{
		{name: "empty recipient list", body: `{"to":[],"subject":"Hi","text":"x"}`, wantField: "to"},
		{name: "no body at all", body: `{"to":"a@b.com","subject":"Hi"}`, wantField: "text"},
		{name: "bad attachment", wantField: "attachments[0].content",
			body: `{"to":"a@b.com","subject":"Hi","html":"<p>x</p>","attachments":[{"filename":"f.png","content":"not-base64!!","contentType":"image/png"}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, body := postJSON(t, app, "/api/mail/send", tt.body)

			if resp.StatusCode != 400 {
				t.Fatalf("status = %d, want 400", resp.StatusCode)
			}
			if body["success"] != false {
				t.Errorf("success = %v, want false", body["success"])
			}

			errs, _ := body["errors"].([]interface{})
			found := false
			for _, e := range errs {
				fe, _ := e.(map[string]interface{})
				if fe["field"] == tt.wantField {
					found = true
				}
			}
			if !found {
				t.Errorf("expected error on %q, got %v", tt.wantField, body["errors"])
			}
		})
	}

	if len(mock.Sent) != 0 {
		t.Errorf("invalid payloads must not dispatch, sent %d", len(mock.Sent))
	}
}

func TestSendMailAttachmentDecoded(t *testing.T) {
	mock := &MockMailer{}
	app := newTestApp(mock)

	resp, _ := postJSON(t, app, "/api/mail/send",
		`{"to":"a@b.com","subject":"Hi","text":"x","attachments":[{"filename":"f.txt","content":"aGVsbG8=","contentType":"text/plain"}]}`)

	if resp.StatusCode != 200 {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	atts := mock.Sent[0].Attachments
	if len(atts) != 1 {
		t.Fatalf("expected one attachment, got %d", len(atts))
	}
	if string(atts[0].Content) != "hello" {
		t.Errorf("decoded content = %q, want %q", atts[0].Content, "hello")
	}
}

func TestSendMailDispatchFailure(t *testing.T) {
	mock := &MockMailer{
		SendFunc: func(*services.OutboundMail) (string, error) {
			return "", errors.New("smtp down")
		},
	}
	app := newTestApp(mock)

	resp, body := postJSON(t, app, "/api/mail/send",
		`{"to":"a@b.com","subject":"Hi","text":"hello"}`)

	if resp.StatusCode != 502 {
		t.Fatalf("status = %d, want 502", resp.StatusCode)
	}
	if body["success"] != false {
		t.Errorf("success = %v, want false", body["success"])
	}
}

func TestSendMailMalformedJSON(t *testing.T) {
	app := newTestApp(&MockMailer{})

	resp, _ := postJSON(t, app, "/api/mail/send", `{"to":`)
	if resp.StatusCode != 400 {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
}
