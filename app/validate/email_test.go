package validate

import (
	"encoding/json"
	"reflect"
	"strings"
	"testing"
)

func fieldSet(r Result) map[string]bool {
	out := map[string]bool{}
	for _, fe := range r.Errors {
		out[fe.Field] = true
	}
	return out
}

func TestEmailValidRequest(t *testing.T) {
	req := &EmailRequest{
		To:      Recipients{"a@b.com"},
		Subject: "Hi",
		Text:    "hello",
	}

	result := Email(req)
	if !result.Success {
		t.Fatalf("expected success, got errors: %+v", result.Errors)
	}
	if result.Data != req {
		t.Errorf("expected validated data to echo the input")
	}
	if len(result.Errors) != 0 || result.Message != "" {
		t.Errorf("success result must not carry errors, got %+v %q", result.Errors, result.Message)
	}
}

func TestEmailMultipleRecipients(t *testing.T) {
	result := Email(&EmailRequest{
		To:      Recipients{"a@b.com", "c@d.org"},
		Subject: "Hi",
		HTML:    "<p>x</p>",
	})
	if !result.Success {
		t.Fatalf("expected success, got errors: %+v", result.Errors)
	}
}

func TestEmailFailures(t *testing.T) {
	tests := []struct {
		name      string
		req       EmailRequest
		wantField string
	}{
		{
			name:      "missing to",
			req:       EmailRequest{Subject: "Hi", Text: "hello"},
			wantField: "to",
		},
		{
			name:      "empty recipient list",
			req:       EmailRequest{To: Recipients{}, Subject: "Hi", Text: "hello"},
			wantField: "to",
		},
		{
			name:      "invalid address in list",
			req:       EmailRequest{To: Recipients{"a@b.com", "not-an-email"}, Subject: "Hi", Text: "hello"},
			wantField: "to[1]",
		},
		{
			name:      "empty subject",
			req:       EmailRequest{To: Recipients{"a@b.com"}, Subject: "", Text: "hello"},
			wantField: "subject",
		},
		{
			name:      "subject too long",
			req:       EmailRequest{To: Recipients{"a@b.com"}, Subject: strings.Repeat("x", 201), Text: "hello"},
			wantField: "subject",
		},
		{
			name: "attachment without filename",
			req: EmailRequest{
				To: Recipients{"a@b.com"}, Subject: "Hi", Text: "hello",
				Attachments: []Attachment{{Content: "aGVsbG8=", ContentType: "text/plain"}},
			},
			wantField: "attachments[0].filename",
		},
		{
			name: "attachment with bad base64",
			req: EmailRequest{
				To: Recipients{"a@b.com"}, Subject: "Hi", HTML: "<p>x</p>",
				Attachments: []Attachment{{Filename: "f.png", Content: "not-base64!!", ContentType: "image/png"}},
			},
			wantField: "attachments[0].content",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Email(&tt.req)
			if result.Success {
				t.Fatal("expected failure")
			}
			if !fieldSet(result)[tt.wantField] {
				t.Errorf("expected an error on %q, got %+v", tt.wantField, result.Errors)
			}
		})
	}
}

func TestEmailNoBodyReportedOnBothFields(t *testing.T) {
	result := Email(&EmailRequest{To: Recipients{"a@b.com"}, Subject: "Hi"})
	if result.Success {
		t.Fatal("expected failure when neither text nor html is present")
	}
	fields := fieldSet(result)
	if !fields["text"] || !fields["html"] {
		t.Errorf("expected joint error on text and html, got %+v", result.Errors)
	}
}

func TestEmailSubjectMaxBoundary(t *testing.T) {
	result := Email(&EmailRequest{
		To:      Recipients{"a@b.com"},
		Subject: strings.Repeat("x", 200),
		Text:    "hello",
	})
	if !result.Success {
		t.Fatalf("200-character subject must pass, got %+v", result.Errors)
	}
}

func TestEmailIdempotent(t *testing.T) {
	req := &EmailRequest{To: Recipients{"a@b.com"}, Subject: ""}

	first := Email(req)
	second := Email(req)

	if first.Success != second.Success {
		t.Fatal("repeated validation changed the outcome")
	}
	if !reflect.DeepEqual(first.Errors, second.Errors) {
		t.Errorf("repeated validation changed the error list: %+v vs %+v", first.Errors, second.Errors)
	}
}

func TestEmailNilRequest(t *testing.T) {
	result := Email(nil)
	if result.Success {
		t.Fatal("nil request must fail")
	}
	if result.Message == "" {
		t.Error("nil request should carry a single message")
	}
}

func TestRecipientsUnmarshal(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		want    Recipients
		wantErr bool
	}{
		{name: "single string", payload: `"a@b.com"`, want: Recipients{"a@b.com"}},
		{name: "list", payload: `["a@b.com","c@d.org"]`, want: Recipients{"a@b.com", "c@d.org"}},
		{name: "empty list", payload: `[]`, want: Recipients{}},
		{name: "number", payload: `42`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got Recipients
			err := json.Unmarshal([]byte(tt.payload), &got)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDecodeContent(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "padded", input: "aGVsbG8="},
		{name: "unpadded", input: "aGVsbG8"},
		{name: "empty", input: ""},
		{name: "garbage", input: "not-base64!!", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeContent(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("DecodeContent(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}
