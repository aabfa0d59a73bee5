// SPDX-License-Identifier: MIT
package inquiries

import (
	"context"
	"errors"
	"fmt"

	"github.com/harishsolar/solarsite/internal/models"
	"gorm.io/gorm"
)

// ErrNotFound is returned when no stored inquiry has the requested ID
var ErrNotFound = errors.New("inquiry not found")

// Store persists inquiries
type Store struct {
	db *gorm.DB
}

// NewStore creates a store on an open, migrated database
func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Create saves a submission and returns the stored inquiry
func (s *Store) Create(ctx context.Context, sub Submission, ip string) (*models.Inquiry, error) {
	inquiry := &models.Inquiry{
		Name:      sub.Name,
		Phone:     sub.Phone,
		Message:   sub.Message,
		ProductID: sub.Product,
		IP:        ip,
	}

	if err := s.db.WithContext(ctx).Create(inquiry).Error; err != nil {
		return nil, fmt.Errorf("failed to save inquiry: %w", err)
	}
	return inquiry, nil
}

// List returns the most recent inquiries, newest first. limit <= 0 means all.
func (s *Store) List(ctx context.Context, limit int) ([]models.Inquiry, error) {
	var inquiries []models.Inquiry

	q := s.db.WithContext(ctx).Order("created_at DESC").Order("id DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&inquiries).Error; err != nil {
		return nil, fmt.Errorf("failed to list inquiries: %w", err)
	}
	return inquiries, nil
}

// Count returns the number of stored inquiries
func (s *Store) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := s.db.WithContext(ctx).Model(&models.Inquiry{}).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("failed to count inquiries: %w", err)
	}
	return n, nil
}

// MarkNotified records that the notification email for id was sent
func (s *Store) MarkNotified(ctx context.Context, id uint) error {
	err := s.db.WithContext(ctx).Model(&models.Inquiry{}).Where("id = ?", id).Update("notified", true).Error
	if err != nil {
		return fmt.Errorf("failed to mark inquiry %d notified: %w", id, err)
	}
	return nil
}

// Delete removes an inquiry
func (s *Store) Delete(ctx context.Context, id uint) error {
	result := s.db.WithContext(ctx).Delete(&models.Inquiry{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete inquiry %d: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("inquiry %d: %w", id, ErrNotFound)
	}
	return nil
}
