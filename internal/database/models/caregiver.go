package models

import "time"

// Caregiver is a directory entry used to resolve display names when a shift is scheduled
type Caregiver struct {
	ID          string    `json:"id" gorm:"size:64;primaryKey" validate:"required,max=64"`
	DisplayName string    `json:"display_name" gorm:"size:120;not null" validate:"required,max=120"`
	Email       string    `json:"email" gorm:"size:255" validate:"omitempty,email,max=255"`
	Phone       string    `json:"phone" gorm:"size:30" validate:"max=30"`
	Active      bool      `json:"active" gorm:"not null"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TableName returns the table name for Caregiver
func (Caregiver) TableName() string {
	return "caregivers"
}
