package entities

import (
	"github.com/google/uuid"
)

type Recipe struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Name            string    `gorm:"not null" json:"name"`
	Description     string    `gorm:"type:text" json:"description"`
	CuisineType     string    `json:"cuisine_type"`
	PrepTimeMinutes int       `json:"prep_time_minutes"`
	CookTimeMinutes int       `json:"cook_time_minutes"`
	Servings        int       `json:"servings"`
	Ingredients     string    `gorm:"type:text" json:"ingredients"`  // JSON array of {item, amount, unit}
	Instructions    string    `gorm:"type:text" json:"instructions"` // JSON array of steps
	Tips            string    `gorm:"type:text" json:"tips,omitempty"`
	UsedItems       string    `gorm:"type:text" json:"used_items"` // comma-separated source ingredient names
	IsGenerated     bool      `json:"is_generated"`

	Timestamp
}
