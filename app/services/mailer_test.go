package services

import (
	"strings"
	"testing"
)

func TestBuildMIMEMessageTextOnly(t *testing.T) {
	msg := string(BuildMIMEMessage("from@school.mx", "abc123", &OutboundMail{
		To:      []string{"a@b.com"},
		Subject: "Hola",
		Text:    "cuerpo del mensaje",
	}))

	for _, want := range []string{
		"From: from@school.mx",
		"To: a@b.com",
		"Message-ID: <abc123@think-chess>",
		"Content-Type: multipart/mixed",
		"text/plain",
		"cuerpo del mensaje",
		"--mixed-abc123--",
	} {
		if !strings.Contains(msg, want) {
			t.Errorf("message missing %q", want)
		}
	}
	if strings.Contains(msg, "multipart/alternative") {
		t.Error("text-only message must not carry an alternative part")
	}
}

func TestBuildMIMEMessageTextAndHTML(t *testing.T) {
	msg := string(BuildMIMEMessage("from@school.mx", "abc123", &OutboundMail{
		To:      []string{"a@b.com", "c@d.org"},
		Subject: "Hola",
		Text:    "plano",
		HTML:    "<p>rico</p>",
	}))

	if !strings.Contains(msg, "To: a@b.com, c@d.org") {
		t.Error("all recipients must appear in the To header")
	}
	if !strings.Contains(msg, "multipart/alternative") {
		t.Error("expected alternative part for text+html")
	}
	if !strings.Contains(msg, "plano") || !strings.Contains(msg, "<p>rico</p>") {
		t.Error("both bodies must be present")
	}
}

func TestBuildMIMEMessageAttachment(t *testing.T) {
	msg := string(BuildMIMEMessage("from@school.mx", "abc123", &OutboundMail{
		To:      []string{"a@b.com"},
		Subject: "Hola",
		HTML:    "<p>x</p>",
		Attachments: []MailAttachment{
			{Filename: "recibo.pdf", ContentType: "application/pdf", Content: []byte("hello")},
		},
	}))

	for _, want := range []string{
		`Content-Disposition: attachment; filename="recibo.pdf"`,
		"Content-Transfer-Encoding: base64",
		"aGVsbG8=",
	} {
		if !strings.Contains(msg, want) {
			t.Errorf("message missing %q", want)
		}
	}
}

func TestBuildMIMEMessageWrapsLongBase64(t *testing.T) {
	content := make([]byte, 300)
	msg := string(BuildMIMEMessage("f@x.mx", "id1", &OutboundMail{
		To: []string{"a@b.com"}, Subject: "s", Text: "t",
		Attachments: []MailAttachment{{Filename: "f.bin", ContentType: "application/octet-stream", Content: content}},
	}))

	for _, line := range strings.Split(msg, "\r\n") {
		if len(line) > 998 {
			t.Fatalf("line exceeds RFC limit: %d chars", len(line))
		}
	}
	if !strings.Contains(msg, "AAAA") {
		t.Error("encoded content missing")
	}
}
