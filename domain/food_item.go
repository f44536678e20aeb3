package domain

import (
	"errors"
	"mime/multipart"
	"time"
)

var (
	MessageSuccessAddFoodItem       = "food item added successfully"
	MessageSuccessUpdateFoodItem    = "food item updated successfully"
	MessageSuccessDeleteFoodItem    = "food item deleted successfully"
	MessageSuccessGetFoodItems      = "food items retrieved successfully"
	MessageSuccessMarkAsConsumed    = "food item marked as consumed"
	MessageSuccessGetDashboardStats = "dashboard statistics retrieved successfully"
	MessageSuccessUploadFoodImage   = "image uploaded successfully and food analyzed"

	MessageFailedAddFoodItem       = "failed to add food item"
	MessageFailedUpdateFoodItem    = "failed to update food item"
	MessageFailedDeleteFoodItem    = "failed to delete food item"
	MessageFailedGetFoodItems      = "failed to retrieve food items"
	MessageFailedMarkAsConsumed    = "failed to mark food item as consumed"
	MessageFailedGetDashboardStats = "failed to retrieve dashboard statistics"
	MessageFailedUploadFoodImage   = "failed to upload food image"
	MessageFailedDetectFood        = "failed to detect food from image"

	ErrFoodItemNotFound      = errors.New("food item not found")
	ErrInvalidExpiryDate     = errors.New("invalid expiry date")
	ErrInvalidQuantity       = errors.New("quantity must be positive")
	ErrInvalidStatusChange   = errors.New("invalid status transition")
	ErrDetectionFailed       = errors.New("food detection failed")
	ErrNoItemsDetected       = errors.New("no food items detected in image")
)

type (
	AddFoodItemRequest struct {
		Name       string `json:"name" validate:"required"`
		Category   string `json:"category" validate:"omitempty"`
		Quantity   int    `json:"quantity" validate:"required,min=1"`
		Unit       string `json:"unit" validate:"omitempty"`
		ExpiryDate string `json:"expiry_date" validate:"omitempty"` // "2006-01-02"; empty means unknown
		Location   string `json:"location" validate:"omitempty"`
		Barcode    string `json:"barcode" validate:"omitempty"`
		Notes      string `json:"notes" validate:"omitempty"`
	}

	UpdateFoodItemRequest struct {
		Name       string `json:"name" validate:"omitempty"`
		Category   string `json:"category" validate:"omitempty"`
		Quantity   int    `json:"quantity" validate:"omitempty,min=1"`
		Unit       string `json:"unit" validate:"omitempty"`
		ExpiryDate string `json:"expiry_date" validate:"omitempty"`
		Location   string `json:"location" validate:"omitempty"`
		Notes      string `json:"notes" validate:"omitempty"`
	}

	FoodItemResponse struct {
		ID              string     `json:"id"`
		Name            string     `json:"name"`
		Category        string     `json:"category"`
		Quantity        int        `json:"quantity"`
		Unit            string     `json:"unit"`
		StorageDate     time.Time  `json:"storage_date"`
		ExpiryDate      *time.Time `json:"expiry_date,omitempty"`
		Location        string     `json:"location"`
		ImageURL        string     `json:"image_url,omitempty"`
		ConfidenceScore *float64   `json:"confidence_score,omitempty"`
		Status          string     `json:"status"`
		Notes           string     `json:"notes,omitempty"`
	}

	MarkAsConsumedRequest struct {
		FoodItemID string `json:"food_item_id" validate:"required,uuid"`
	}

	UploadFoodImageRequest struct {
		FoodItemID string                `json:"food_id" form:"food_id" validate:"required,uuid"`
		Image      *multipart.FileHeader `json:"image" form:"image" validate:"required"`
	}

	DashboardStatsResponse struct {
		TotalItems      int              `json:"total_items"`
		ItemsByCategory map[string]int64 `json:"items_by_category"`
		ExpiringSoon    int              `json:"expiring_soon"`
		UnreadAlerts    int              `json:"unread_alerts"`
	}

	// DetectedItem is what the image detection boundary returns: a named item
	// with a confidence score and, when the model can estimate it, an expiry.
	DetectedItem struct {
		Name            string     `json:"name"`
		Category        string     `json:"category"`
		Confidence      float64    `json:"confidence"`
		EstimatedExpiry *time.Time `json:"estimated_expiry,omitempty"`
	}
)
