package expiry

import (
	"testing"
	"time"

	"Smart-Fridge-Backend/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultThresholds() domain.AlertThresholds {
	return domain.AlertThresholds{Critical: 1, Warning: 3, Normal: 7}
}

func TestClassifier_TierBoundaries(t *testing.T) {
	classifier, err := NewClassifier(defaultThresholds())
	require.NoError(t, err)

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		daysFrom int
		wantTier domain.ExpiryTier
		wantDays int
	}{
		{"expired yesterday", -1, domain.TierCritical, -1},
		{"expires today", 0, domain.TierCritical, 0},
		{"one day left", 1, domain.TierCritical, 1},
		{"two days left", 2, domain.TierWarning, 2},
		{"warning boundary", 3, domain.TierWarning, 3},
		{"four days left", 4, domain.TierNormal, 4},
		{"normal boundary", 7, domain.TierNormal, 7},
		{"beyond normal", 8, domain.TierFresh, 8},
		{"far future", 30, domain.TierFresh, 30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expiry := now.AddDate(0, 0, tt.daysFrom)
			tier, days := classifier.Classify(now, expiry)
			assert.Equal(t, tt.wantTier, tier)
			assert.Equal(t, tt.wantDays, days)
		})
	}
}

func TestClassifier_PartialDayCountsAsToday(t *testing.T) {
	classifier, err := NewClassifier(defaultThresholds())
	require.NoError(t, err)

	now := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)
	expiry := now.Add(10 * time.Hour)

	tier, days := classifier.Classify(now, expiry)
	assert.Equal(t, domain.TierCritical, tier)
	assert.Equal(t, 0, days)
}

func TestClassifier_CustomThresholds(t *testing.T) {
	classifier, err := NewClassifier(domain.AlertThresholds{Critical: 2, Warning: 5, Normal: 10})
	require.NoError(t, err)

	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	tier, _ := classifier.Classify(now, now.AddDate(0, 0, 2))
	assert.Equal(t, domain.TierCritical, tier)

	tier, _ = classifier.Classify(now, now.AddDate(0, 0, 5))
	assert.Equal(t, domain.TierWarning, tier)

	tier, _ = classifier.Classify(now, now.AddDate(0, 0, 10))
	assert.Equal(t, domain.TierNormal, tier)

	tier, _ = classifier.Classify(now, now.AddDate(0, 0, 11))
	assert.Equal(t, domain.TierFresh, tier)
}

func TestClassifier_MonotonicUrgency(t *testing.T) {
	classifier, err := NewClassifier(defaultThresholds())
	require.NoError(t, err)

	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	rank := map[domain.ExpiryTier]int{
		domain.TierCritical: 0,
		domain.TierWarning:  1,
		domain.TierNormal:   2,
		domain.TierFresh:    3,
	}

	prev := -1
	for d := -5; d <= 15; d++ {
		tier, _ := classifier.Classify(now, now.AddDate(0, 0, d))
		assert.GreaterOrEqual(t, rank[tier], prev, "urgency must not increase as expiry moves further out (day %d)", d)
		prev = rank[tier]
	}
}

func TestNewClassifier_RejectsInvalidThresholds(t *testing.T) {
	tests := []domain.AlertThresholds{
		{Critical: 3, Warning: 3, Normal: 7},
		{Critical: 5, Warning: 3, Normal: 7},
		{Critical: 1, Warning: 7, Normal: 7},
		{Critical: 1, Warning: 9, Normal: 7},
	}

	for _, thresholds := range tests {
		_, err := NewClassifier(thresholds)
		assert.ErrorIs(t, err, domain.ErrInvalidThresholds)
	}
}
