package services

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"mime"
	"net/smtp"
	"strings"

	"github.com/JhonyKing/think-chess-sub001/app/config"
	"github.com/JhonyKing/think-chess-sub001/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// OutboundMail is a fully validated message ready for dispatch.
type OutboundMail struct {
	To          []string
	Subject     string
	Text        string
	HTML        string
	Attachments []MailAttachment
}

// MailAttachment carries decoded file bytes.
type MailAttachment struct {
	Filename    string
	ContentType string
	Content     []byte
}

// Mailer dispatches one message per call. Implementations report failure
// through the error; there are no retries at this layer.
type Mailer interface {
	Send(mail *OutboundMail) (string, error)
}

// SMTPMailer sends through the SMTP server from the app config.
type SMTPMailer struct {
	cfg config.SMTPConfig
}

func NewSMTPMailer(cfg config.SMTPConfig) *SMTPMailer {
	return &SMTPMailer{cfg: cfg}
}

// Send builds the MIME message and performs a single SMTP round trip.
// Returns the generated message id.
func (m *SMTPMailer) Send(mail *OutboundMail) (string, error) {
	messageID := uuid.New().String()
	body := BuildMIMEMessage(m.cfg.From, messageID, mail)

	addr := fmt.Sprintf("%s:%d", m.cfg.Host, m.cfg.Port)
	auth := smtp.PlainAuth("", m.cfg.Username, m.cfg.Password, m.cfg.Host)

	if err := smtp.SendMail(addr, auth, m.cfg.From, mail.To, body); err != nil {
		utils.Logger().Error("smtp send failed",
			zap.String("host", m.cfg.Host),
			zap.Int("recipients", len(mail.To)),
			zap.Error(err))
		return "", err
	}

	utils.Logger().Info("mail dispatched",
		zap.String("message_id", messageID),
		zap.Int("recipients", len(mail.To)),
		zap.Int("attachments", len(mail.Attachments)))
	return messageID, nil
}

// BuildMIMEMessage assembles the raw RFC 5322 message. Separate from Send so
// the assembly is testable without a server.
func BuildMIMEMessage(from, messageID string, mail *OutboundMail) []byte {
	var buf bytes.Buffer
	boundary := "mixed-" + messageID
	altBoundary := "alt-" + messageID

	fmt.Fprintf(&buf, "From: %s\r\n", from)
	fmt.Fprintf(&buf, "To: %s\r\n", strings.Join(mail.To, ", "))
	fmt.Fprintf(&buf, "Subject: %s\r\n", mime.QEncoding.Encode("utf-8", mail.Subject))
	fmt.Fprintf(&buf, "Message-ID: <%s@think-chess>\r\n", messageID)
	buf.WriteString("MIME-Version: 1.0\r\n")
	fmt.Fprintf(&buf, "Content-Type: multipart/mixed; boundary=%q\r\n\r\n", boundary)

	// Body: single part, or alternative when both text and html are present
	fmt.Fprintf(&buf, "--%s\r\n", boundary)
	if mail.Text != "" && mail.HTML != "" {
		fmt.Fprintf(&buf, "Content-Type: multipart/alternative; boundary=%q\r\n\r\n", altBoundary)
		writeTextPart(&buf, altBoundary, "text/plain", mail.Text)
		writeTextPart(&buf, altBoundary, "text/html", mail.HTML)
		fmt.Fprintf(&buf, "--%s--\r\n", altBoundary)
	} else if mail.HTML != "" {
		writeBody(&buf, "text/html", mail.HTML)
	} else {
		writeBody(&buf, "text/plain", mail.Text)
	}

	for _, att := range mail.Attachments {
		fmt.Fprintf(&buf, "--%s\r\n", boundary)
		fmt.Fprintf(&buf, "Content-Type: %s; name=%q\r\n", att.ContentType, att.Filename)
		fmt.Fprintf(&buf, "Content-Disposition: attachment; filename=%q\r\n", att.Filename)
		buf.WriteString("Content-Transfer-Encoding: base64\r\n\r\n")
		writeBase64Wrapped(&buf, att.Content)
		buf.WriteString("\r\n")
	}

	fmt.Fprintf(&buf, "--%s--\r\n", boundary)
	return buf.Bytes()
}

func writeTextPart(buf *bytes.Buffer, boundary, contentType, content string) {
	fmt.Fprintf(buf, "--%s\r\n", boundary)
	writeBody(buf, contentType, content)
}

func writeBody(buf *bytes.Buffer, contentType, content string) {
	fmt.Fprintf(buf, "Content-Type: %s; charset=utf-8\r\n\r\n", contentType)
	buf.WriteString(content)
	buf.WriteString("\r\n")
}

// writeBase64Wrapped emits base64 in 76-character lines per RFC 2045.
func writeBase64Wrapped(buf *bytes.Buffer, content []byte) {
	encoded := base64.StdEncoding.EncodeToString(content)
	for len(encoded) > 76 {
		buf.WriteString(encoded[:76])
		buf.WriteString("\r\n")
		encoded = encoded[76:]
	}
	if encoded != "" {
		buf.WriteString(encoded)
		buf.WriteString("\r\n")
	}
}
