package entities

import (
	"time"

	"github.com/google/uuid"
)

type Alert struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	FoodItemID uuid.UUID `gorm:"index" json:"food_item_id"`
	AlertType  string    `gorm:"size:20" json:"alert_type"`   // "expiry"
	AlertLevel string    `gorm:"size:20" json:"alert_level"`  // "critical", "warning", "normal"
	Message    string    `gorm:"type:text" json:"message"`
	IsRead     bool      `gorm:"default:false" json:"is_read"`
	CreatedAt  time.Time `gorm:"type:timestamp" json:"created_at"`

	FoodItem *FoodItem `gorm:"foreignKey:FoodItemID"`
}
