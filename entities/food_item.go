package entities

import (
	"time"

	"github.com/google/uuid"
)

type FoodItem struct {
	ID              uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Name            string     `gorm:"not null" json:"name"`
	Category        string     `json:"category"`
	Quantity        int        `gorm:"default:1" json:"quantity"`
	Unit            string     `json:"unit"`
	StorageDate     time.Time  `json:"storage_date"`
	ExpiryDate      *time.Time `json:"expiry_date,omitempty"` // nil means unknown, not "never"
	Location        string     `json:"location"`
	Barcode         string     `json:"barcode,omitempty"`
	ImageURL        string     `json:"image_url,omitempty"`
	ConfidenceScore *float64   `json:"confidence_score,omitempty"`
	Status          string     `gorm:"default:fresh" json:"status"` // "fresh", "expired", "consumed"
	Notes           string     `gorm:"type:text" json:"notes,omitempty"`

	Timestamp
}
