package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessGetAlerts     = "alerts retrieved successfully"
	MessageSuccessMarkAlertRead = "alert marked as read"

	MessageFailedGetAlerts     = "failed to retrieve alerts"
	MessageFailedMarkAlertRead = "failed to mark alert as read"

	ErrAlertNotFound = errors.New("alert not found")
)

const AlertTypeExpiry = "expiry"

type (
	AlertResponse struct {
		ID         string    `json:"id"`
		FoodItemID string    `json:"food_item_id"`
		FoodName   string    `json:"food_name"`
		AlertType  string    `json:"alert_type"`
		AlertLevel string    `json:"alert_level"`
		Message    string    `json:"message"`
		IsRead     bool      `json:"is_read"`
		CreatedAt  time.Time `json:"created_at"`
	}

	MarkAlertReadRequest struct {
		AlertID string `json:"alert_id" validate:"required,uuid"`
	}

	// NotificationSettings selects which delivery channels are active.
	// Channels fail independently; the persisted alert is never rolled back.
	NotificationSettings struct {
		Desktop bool `json:"desktop"`
		Email   bool `json:"email"`
		SMS     bool `json:"sms"`
	}
)
