// SPDX-License-Identifier: MIT
package email

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/harishsolar/solarsite/internal/models"
)

type recordingSender struct {
	to, subject, body string
	err               error
}

func (r *recordingSender) SendEmail(to, subject, body string) error {
	r.to, r.subject, r.body = to, subject, body
	return r.err
}

func TestEmailServiceInitialization(t *testing.T) {
	t.Setenv("SMTP", "")
	if _, err := NewEmailService(); err == nil {
		t.Error("expected error without SMTP configuration")
	}

	t.Setenv("SMTP", "smtp.example.com")
	t.Setenv("SMTP_PORT", "587")
	t.Setenv("EMAIL", "site@example.com")
	t.Setenv("SMTP_SECRET", "secret")

	svc, err := NewEmailService()
	if err != nil {
		t.Fatalf("NewEmailService failed: %v", err)
	}
	if svc.From() != "site@example.com" {
		t.Errorf("unexpected sender %s", svc.From())
	}
}

func TestBuildMessageKeepsHeadersOnOneLine(t *testing.T) {
	msg := buildMessage("a@example.com", "b@example.com", "Hello\r\nBcc: evil@example.com", "body")

	if strings.Contains(msg, "\r\nBcc:") {
		t.Error("subject must not inject headers")
	}
	if !strings.Contains(msg, "Subject: Hello Bcc: evil@example.com\r\n") {
		t.Errorf("unexpected message %q", msg)
	}
	if !strings.HasSuffix(msg, "\r\n\r\nbody") {
		t.Error("body should follow a blank line")
	}
}

func TestInquiryMessage(t *testing.T) {
	inq := &models.Inquiry{
		Name:      "Asha",
		Phone:     "+91 8094000802",
		Message:   "Need 40 units",
		ProductID: "hs-90",
		CreatedAt: time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
	}

	subject, body := InquiryMessage("Harish Solar Systems", inq, "90W All-in-One Solar Street Light")
	if subject != "New inquiry from Asha about 90W All-in-One Solar Street Light" {
		t.Errorf("unexpected subject %s", subject)
	}
	for _, want := range []string{"+91 8094000802", "Need 40 units", "(hs-90)", "Harish Solar Systems"} {
		if !strings.Contains(body, want) {
			t.Errorf("expected %q in body", want)
		}
	}

	subject, body = InquiryMessage("Harish Solar Systems", &models.Inquiry{Name: "Ravi", Phone: "123456"}, "")
	if subject != "New inquiry from Ravi" || strings.Contains(body, "Product:") || strings.Contains(body, "Message:") {
		t.Errorf("unexpected general inquiry message %q %q", subject, body)
	}
}

func TestSendInquiryNotification(t *testing.T) {
	s := &recordingSender{}
	inq := &models.Inquiry{Name: "Asha", Phone: "123456"}

	if err := SendInquiryNotification(s, "owner@example.com", "Harish Solar", inq, ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.to != "owner@example.com" || s.subject != "New inquiry from Asha" {
		t.Errorf("unexpected send %+v", s)
	}

	s.err = errors.New("smtp down")
	if err := SendInquiryNotification(s, "owner@example.com", "Harish Solar", inq, ""); err == nil {
		t.Error("expected send error")
	}
}

func TestSendErrorNotification(t *testing.T) {
	s := &recordingSender{}
	if err := SendErrorNotification(s, "owner@example.com", "Harish Solar", "Backup Failed", "disk full"); err != nil {
		t.Fatal(err)
	}
	if s.subject != "Harish Solar Error: Backup Failed" || !strings.Contains(s.body, "disk full") {
		t.Errorf("unexpected notification %+v", s)
	}
}
