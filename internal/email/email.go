// SPDX-License-Identifier: MIT
package email

import (
	"crypto/tls"
	"fmt"
	"net/smtp"
	"os"
	"strings"

	"github.com/harishsolar/solarsite/internal/logging"
	"go.uber.org/zap"
)

// Sender delivers plain-text email
type Sender interface {
	SendEmail(to, subject, body string) error
}

type EmailService struct {
	host     string
	port     string
	email    string
	password string
}

// NewEmailService reads SMTP settings from SMTP, SMTP_PORT, EMAIL and SMTP_SECRET
func NewEmailService() (*EmailService, error) {
	host := os.Getenv("SMTP")
	port := os.Getenv("SMTP_PORT")
	email := os.Getenv("EMAIL")
	password := os.Getenv("SMTP_SECRET")

	if host == "" || port == "" || email == "" || password == "" {
		return nil, fmt.Errorf("missing SMTP configuration in environment")
	}

	return &EmailService{
		host:     host,
		port:     port,
		email:    email,
		password: password,
	}, nil
}

// From returns the sending address
func (es *EmailService) From() string {
	return es.email
}

func (es *EmailService) SendEmail(to, subject, body string) error {
	addr := fmt.Sprintf("%s:%s", es.host, es.port)

	// Use STARTTLS for port 587, implicit TLS otherwise
	var client *smtp.Client
	var err error

	if es.port == "587" {
		// STARTTLS: connect plain, then upgrade to TLS
		client, err = smtp.Dial(addr)
		if err != nil {
			return fmt.Errorf("failed to dial SMTP: %w", err)
		}
		defer client.Close()

		if err = client.StartTLS(&tls.Config{ServerName: es.host}); err != nil {
			return fmt.Errorf("failed to start TLS: %w", err)
		}
	} else {
		conn, err := tls.Dial("tcp", addr, &tls.Config{ServerName: es.host})
		if err != nil {
			return fmt.Errorf("failed to dial SMTP: %w", err)
		}
		defer conn.Close()

		client, err = smtp.NewClient(conn, es.host)
		if err != nil {
			return fmt.Errorf("failed to create SMTP client: %w", err)
		}
		defer client.Close()
	}

	if err := client.Auth(smtp.PlainAuth("", es.email, es.password, es.host)); err != nil {
		return fmt.Errorf("SMTP authentication failed: %w", err)
	}

	if err := client.Mail(es.email); err != nil {
		return fmt.Errorf("failed to set sender: %w", err)
	}

	if err := client.Rcpt(to); err != nil {
		return fmt.Errorf("failed to set recipient: %w", err)
	}

	w, err := client.Data()
	if err != nil {
		return fmt.Errorf("failed to write data: %w", err)
	}

	if _, err := w.Write([]byte(buildMessage(es.email, to, subject, body))); err != nil {
		w.Close()
		return fmt.Errorf("failed to write message: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("failed to finish message: %w", err)
	}

	// Some SMTP servers answer QUIT non-standardly; the message is already accepted
	if err := client.Quit(); err != nil {
		logging.L().Debug("SMTP QUIT returned non-standard response", zap.Error(err))
	}

	logging.L().Info("email sent", zap.String("to", to), zap.String("subject", subject))
	return nil
}

// buildMessage assembles headers and body. Header values are kept on one line.
func buildMessage(from, to, subject, body string) string {
	return fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/plain; charset=UTF-8\r\n\r\n%s",
		headerValue(from), headerValue(to), headerValue(subject), body)
}

func headerValue(s string) string {
	return strings.Join(strings.Fields(strings.NewReplacer("\r", " ", "\n", " ").Replace(s)), " ")
}
