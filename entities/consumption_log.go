package entities

import (
	"time"

	"github.com/google/uuid"
)

// ConsumptionLog records every item the user marks as consumed, so the
// tracker can report consumption patterns and waste rates over time.
type ConsumptionLog struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	FoodItemID uuid.UUID `gorm:"index" json:"food_item_id"`
	FoodName   string    `json:"food_name"`
	Category   string    `json:"category"`
	ConsumedAt time.Time `gorm:"type:timestamp" json:"consumed_at"`
	WasExpired bool      `gorm:"default:false" json:"was_expired"`

	FoodItem *FoodItem `gorm:"foreignKey:FoodItemID"`
}
