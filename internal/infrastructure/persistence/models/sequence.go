package models

import (
	"time"

	"github.com/google/uuid"
)

// DocumentSequenceModel is the persistence model for per-company document
// counters. The value column holds the last number handed out; allocation
// increments it atomically.
type DocumentSequenceModel struct {
	CompanyID uuid.UUID `gorm:"type:uuid;primary_key"`
	Scope     string    `gorm:"type:varchar(50);primary_key"`
	Value     int       `gorm:"not null;default:0"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for GORM
func (DocumentSequenceModel) TableName() string {
	return "document_sequences"
}
