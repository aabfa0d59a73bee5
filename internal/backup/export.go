// SPDX-License-Identifier: MIT
package backup

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/harishsolar/solarsite/internal/models"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
)

// inquiryRecord is the exported form of an inquiry
type inquiryRecord struct {
	ID        uint      `yaml:"id"`
	Name      string    `yaml:"name"`
	Phone     string    `yaml:"phone"`
	Message   string    `yaml:"message,omitempty"`
	ProductID string    `yaml:"product_id,omitempty"`
	IP        string    `yaml:"ip,omitempty"`
	Notified  bool      `yaml:"notified"`
	CreatedAt time.Time `yaml:"created_at"`
}

// Export is the document written by ExportInquiries
type Export struct {
	ExportedAt time.Time       `yaml:"exported_at"`
	Inquiries  []inquiryRecord `yaml:"inquiries"`
}

// ExportInquiries writes every inquiry to w as YAML and returns the count
func ExportInquiries(ctx context.Context, db *gorm.DB, w io.Writer) (int, error) {
	var inquiries []models.Inquiry
	if err := db.WithContext(ctx).Order("id ASC").Find(&inquiries).Error; err != nil {
		return 0, fmt.Errorf("failed to load inquiries: %w", err)
	}

	doc := Export{ExportedAt: time.Now().UTC(), Inquiries: make([]inquiryRecord, 0, len(inquiries))}
	for _, inq := range inquiries {
		doc.Inquiries = append(doc.Inquiries, inquiryRecord{
			ID:        inq.ID,
			Name:      inq.Name,
			Phone:     inq.Phone,
			Message:   inq.Message,
			ProductID: inq.ProductID,
			IP:        inq.IP,
			Notified:  inq.Notified,
			CreatedAt: inq.CreatedAt.UTC(),
		})
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return 0, fmt.Errorf("failed to encode export: %w", err)
	}
	if err := enc.Close(); err != nil {
		return 0, fmt.Errorf("failed to finish export: %w", err)
	}
	return len(inquiries), nil
}
