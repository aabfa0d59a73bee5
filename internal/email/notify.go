// SPDX-License-Identifier: MIT
package email

import (
	"fmt"
	"strings"
	"time"

	"github.com/harishsolar/solarsite/internal/models"
)

// InquiryMessage builds the notification for a new inquiry. productName is
// empty when the inquiry did not come from a product page.
func InquiryMessage(siteName string, inq *models.Inquiry, productName string) (subject, body string) {
	subject = fmt.Sprintf("New inquiry from %s", inq.Name)
	if productName != "" {
		subject += " about " + productName
	}

	var b strings.Builder
	fmt.Fprintf(&b, "A new inquiry was submitted on %s.\n\n", siteName)
	fmt.Fprintf(&b, "Name:    %s\n", inq.Name)
	fmt.Fprintf(&b, "Phone:   %s\n", inq.Phone)
	if productName != "" {
		fmt.Fprintf(&b, "Product: %s (%s)\n", productName, inq.ProductID)
	}
	fmt.Fprintf(&b, "Time:    %s\n", inq.CreatedAt.Format(time.RFC1123))
	if inq.Message != "" {
		fmt.Fprintf(&b, "\nMessage:\n%s\n", inq.Message)
	}
	b.WriteString("\nReply by calling the number above.\n")

	return subject, b.String()
}

// SendInquiryNotification emails the inquiry to the site owner
func SendInquiryNotification(s Sender, to, siteName string, inq *models.Inquiry, productName string) error {
	subject, body := InquiryMessage(siteName, inq, productName)
	if err := s.SendEmail(to, subject, body); err != nil {
		return fmt.Errorf("failed to send inquiry notification: %w", err)
	}
	return nil
}

// SendErrorNotification alerts the site owner about a failure in a background job
func SendErrorNotification(s Sender, to, siteName, subject, errorMsg string) error {
	body := fmt.Sprintf(`Admin Alert,

An error occurred on %s:

%s

Please investigate and take appropriate action.`, siteName, errorMsg)

	return s.SendEmail(to, fmt.Sprintf("%s Error: %s", siteName, subject), body)
}
