package expiry

import (
	"time"

	"Smart-Fridge-Backend/domain"
)

// Classifier maps an expiry date to an urgency tier relative to "now".
// It is a pure function of the date difference and the configured thresholds;
// status transitions for past-due items are applied by the tracker, never here.
type Classifier struct {
	thresholds domain.AlertThresholds
}

func NewClassifier(thresholds domain.AlertThresholds) (*Classifier, error) {
	if err := thresholds.Validate(); err != nil {
		return nil, err
	}
	return &Classifier{thresholds: thresholds}, nil
}

func (c *Classifier) Thresholds() domain.AlertThresholds {
	return c.thresholds
}

// Classify returns the tier for an item expiring at expiryDate, along with the
// whole days remaining. Days are truncated toward zero, so an item expiring
// later today still counts as 0 days remaining.
func (c *Classifier) Classify(now time.Time, expiryDate time.Time) (domain.ExpiryTier, int) {
	days := DaysRemaining(now, expiryDate)

	switch {
	case days < 0:
		return domain.TierCritical, days
	case days <= c.thresholds.Critical:
		return domain.TierCritical, days
	case days <= c.thresholds.Warning:
		return domain.TierWarning, days
	case days <= c.thresholds.Normal:
		return domain.TierNormal, days
	default:
		return domain.TierFresh, days
	}
}

func DaysRemaining(now time.Time, expiryDate time.Time) int {
	return int(expiryDate.Sub(now).Hours() / 24)
}
