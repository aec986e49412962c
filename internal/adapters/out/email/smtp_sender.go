// Package email delivers the notification worker's rendered messages over
// SMTP. Recipient identifiers coming from the worker are account ids; the
// address resolver maps them to mailboxes.
package email

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"
)

// AddressResolver maps an account id to a mailbox address.
type AddressResolver interface {
	Resolve(ctx context.Context, accountID string) (string, error)
}

// SMTPSender sends HTML mail through a single SMTP relay.
type SMTPSender struct {
	addr     string
	from     string
	auth     smtp.Auth
	resolver AddressResolver
}

// NewSMTPSender creates a sender for the relay at host:port.
func NewSMTPSender(host string, port int, username, password, from string, resolver AddressResolver) *SMTPSender {
	var auth smtp.Auth
	if username != "" {
		auth = smtp.PlainAuth("", username, password, host)
	}

	return &SMTPSender{
		addr:     fmt.Sprintf("%s:%d", host, port),
		from:     from,
		auth:     auth,
		resolver: resolver,
	}
}

// Send resolves the recipient and submits one message to the relay.
func (s *SMTPSender) Send(ctx context.Context, recipient, subject, htmlBody string) error {
	address, err := s.resolver.Resolve(ctx, recipient)
	if err != nil {
		return fmt.Errorf("resolve recipient %s: %w", recipient, err)
	}

	message := buildMessage(s.from, address, subject, htmlBody)
	if err = smtp.SendMail(s.addr, s.auth, s.from, []string{address}, message); err != nil {
		return fmt.Errorf("smtp send to %s: %w", address, err)
	}
	return nil
}

func buildMessage(from, to, subject, htmlBody string) []byte {
	var b strings.Builder
	b.WriteString("From: " + from + "\r\n")
	b.WriteString("To: " + to + "\r\n")
	b.WriteString("Subject: " + subject + "\r\n")
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n")
	b.WriteString("\r\n")
	b.WriteString(htmlBody)
	b.WriteString("\r\n")
	return []byte(b.String())
}
