package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Hospital represents a hospital/medical facility in the system
type Hospital struct {
	ID                  string    `gorm:"type:char(36);primaryKey" json:"id"`
	Name                string    `gorm:"size:50;not null" json:"name"`
	City                string    `gorm:"size:100;not null;index" json:"city"`
	Image               string    `gorm:"type:text;not null" json:"image"`
	Speciality          []string  `gorm:"serializer:json;not null" json:"speciality"`
	Rating              float64   `gorm:"default:1" json:"rating"`
	Description         string    `gorm:"type:text" json:"description"`
	Images              []string  `gorm:"serializer:json" json:"images"`
	NumberOfDoctors     int       `gorm:"default:0" json:"numberOfDoctors"`
	NumberOfDepartments int       `gorm:"default:0" json:"numberOfDepartments"`
	CreatedAt           time.Time `json:"createdAt"`
	UpdatedAt           time.Time `json:"updatedAt"`
}

// BeforeCreate generates the hospital ID before insert
func (h *Hospital) BeforeCreate(tx *gorm.DB) error {
	if h.ID == "" {
		h.ID = uuid.New().String()
	}
	return nil
}

// TableName specifies the table name for Hospital model
func (Hospital) TableName() string {
	return "hospitals"
}
