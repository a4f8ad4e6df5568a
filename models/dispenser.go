package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	StatusActive      = "Active"
	StatusMaintenance = "Maintenance"
)

// Dispenser is a physical water-dispensing unit tracked by location and
// operational status.
type Dispenser struct {
	ID        string    `json:"id" gorm:"type:char(36);primaryKey"`
	Location  string    `json:"location" gorm:"not null"`
	Status    string    `json:"status" gorm:"default:Active"`
	CreatedAt time.Time `json:"createdAt"`
}

// BeforeCreate assigns a UUID id before the record is inserted.
func (d *Dispenser) BeforeCreate(tx *gorm.DB) error {
	if d.ID == "" {
		d.ID = uuid.NewString()
	}
	return nil
}

// BeforeSave rejects statuses outside the closed set at save time.
func (d *Dispenser) BeforeSave(tx *gorm.DB) error {
	if d.Status != StatusActive && d.Status != StatusMaintenance {
		return fmt.Errorf("%q is not a valid dispenser status", d.Status)
	}
	return nil
}
