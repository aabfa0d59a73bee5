// SPDX-License-Identifier: MIT
package models

import (
	"time"

	"gorm.io/gorm"
)

// Inquiry is a message submitted through the contact form
type Inquiry struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"size:100;not null"`
	Phone     string `gorm:"size:20;not null"`
	Message   string `gorm:"type:text"`
	ProductID string `gorm:"size:64;index"` // Catalog product the inquiry came from, if any
	IP        string `gorm:"size:45"`
	Notified  bool   `gorm:"default:false"` // Set once the notification email went out
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

// TableName specifies the table name for Inquiry
func (Inquiry) TableName() string {
	return "inquiries"
}
