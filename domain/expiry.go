package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessCheckExpiry    = "expiry status retrieved successfully"
	MessageSuccessGenerateAlerts = "alerts generated successfully"
	MessageSuccessGetCandidates  = "recipe candidates retrieved successfully"
	MessageSuccessGetWasteStats  = "waste statistics retrieved successfully"
	MessageSuccessGetInsights    = "consumption insights retrieved successfully"

	MessageFailedCheckExpiry    = "failed to check expiry status"
	MessageFailedGenerateAlerts = "failed to generate alerts"
	MessageFailedGetCandidates  = "failed to retrieve recipe candidates"
	MessageFailedGetWasteStats  = "failed to retrieve waste statistics"
	MessageFailedGetInsights    = "failed to retrieve consumption insights"

	ErrInvalidThresholds = errors.New("alert thresholds must satisfy critical < warning < normal")
)

// ExpiryTier is the urgency classification of an item relative to its expiry
// date. Ordering, most urgent first: critical > warning > normal > fresh.
type ExpiryTier string

const (
	TierCritical ExpiryTier = "critical"
	TierWarning  ExpiryTier = "warning"
	TierNormal   ExpiryTier = "normal"
	TierFresh    ExpiryTier = "fresh"
)

// AlertThresholds holds the day counts that separate the urgency tiers.
// Required: Critical < Warning < Normal.
type AlertThresholds struct {
	Critical int `json:"critical"`
	Warning  int `json:"warning"`
	Normal   int `json:"normal"`
}

func (t AlertThresholds) Validate() error {
	if t.Critical >= t.Warning || t.Warning >= t.Normal {
		return ErrInvalidThresholds
	}
	return nil
}

type (
	ExpiringItem struct {
		ID            string    `json:"id"`
		Name          string    `json:"name"`
		Category      string    `json:"category"`
		Quantity      int       `json:"quantity"`
		Unit          string    `json:"unit,omitempty"`
		ExpiryDate    time.Time `json:"expiry_date"`
		DaysRemaining int       `json:"days_remaining"`
	}

	ExpiryStatusResponse struct {
		Critical []ExpiringItem `json:"critical"`
		Warning  []ExpiringItem `json:"warning"`
		Normal   []ExpiringItem `json:"normal"`
		Fresh    []ExpiringItem `json:"fresh"`
	}

	CategoryWasteStats struct {
		Category     string `json:"category"`
		Count        int64  `json:"count"`
		ExpiredCount int64  `json:"expired_count"`
	}

	WasteStatisticsResponse struct {
		TotalItemsLast30Days int                  `json:"total_items_last_30_days"`
		ExpiredItems         int                  `json:"expired_items"`
		WasteRatePercentage  float64              `json:"waste_rate_percentage"`
		ByCategory           []CategoryWasteStats `json:"by_category"`
	}

	CategoryConsumption struct {
		Category         string `json:"category"`
		ConsumptionCount int64  `json:"consumption_count"`
	}

	ConsumptionInsightsResponse struct {
		TopConsumedCategories []CategoryConsumption   `json:"top_consumed_categories"`
		WasteStats            WasteStatisticsResponse `json:"waste_stats"`
	}
)
