package expiry

import (
	"context"
	"testing"
	"time"

	"Smart-Fridge-Backend/domain"
	"Smart-Fridge-Backend/entities"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeItemRepo struct {
	items         []*entities.FoodItem
	expiringSoon  []*entities.FoodItem
	statusChanges map[string]string
	categoryStats []domain.CategoryWasteStats
	consumption   []domain.CategoryConsumption
}

func newFakeItemRepo() *fakeItemRepo {
	return &fakeItemRepo{statusChanges: map[string]string{}}
}

func (f *fakeItemRepo) ListActiveItems(ctx context.Context) ([]*entities.FoodItem, error) {
	var active []*entities.FoodItem
	for _, item := range f.items {
		if item.Status != domain.StatusConsumed {
			active = append(active, item)
		}
	}
	return active, nil
}

func (f *fakeItemRepo) ListItemsExpiringWithin(ctx context.Context, days int) ([]*entities.FoodItem, error) {
	return f.expiringSoon, nil
}

func (f *fakeItemRepo) SetStatus(ctx context.Context, id string, status string) error {
	f.statusChanges[id] = status
	return nil
}

func (f *fakeItemRepo) AggregateByCategory(ctx context.Context, windowDays int) ([]domain.CategoryWasteStats, error) {
	return f.categoryStats, nil
}

func (f *fakeItemRepo) TopConsumedCategories(ctx context.Context, windowDays, limit int) ([]domain.CategoryConsumption, error) {
	return f.consumption, nil
}

type fakeAlertRepo struct {
	alerts []*entities.Alert
}

func (f *fakeAlertRepo) CreateAlert(ctx context.Context, a *entities.Alert) error {
	f.alerts = append(f.alerts, a)
	return nil
}

func (f *fakeAlertRepo) GetUnreadAlerts(ctx context.Context) ([]domain.AlertResponse, error) {
	var unread []domain.AlertResponse
	for _, a := range f.alerts {
		if !a.IsRead {
			unread = append(unread, domain.AlertResponse{
				ID:         a.ID.String(),
				FoodItemID: a.FoodItemID.String(),
				AlertType:  a.AlertType,
				AlertLevel: a.AlertLevel,
				Message:    a.Message,
			})
		}
	}
	return unread, nil
}

func (f *fakeAlertRepo) HasUnreadAlert(ctx context.Context, foodItemID string, level string) (bool, error) {
	for _, a := range f.alerts {
		if !a.IsRead && a.FoodItemID.String() == foodItemID && a.AlertLevel == level {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeAlertRepo) MarkAlertAsRead(ctx context.Context, id string) error {
	for _, a := range f.alerts {
		if a.ID.String() == id {
			a.IsRead = true
			return nil
		}
	}
	return domain.ErrAlertNotFound
}

type fakeAlertService struct {
	dispatched []string
}

func (f *fakeAlertService) GetUnreadAlerts(ctx context.Context) ([]domain.AlertResponse, error) {
	return nil, nil
}

func (f *fakeAlertService) MarkAlertAsRead(ctx context.Context, alertID string) error {
	return nil
}

func (f *fakeAlertService) AlertSummaryHTML(ctx context.Context) (string, error) {
	return "", nil
}

func (f *fakeAlertService) Dispatch(title, message string, tier domain.ExpiryTier) {
	f.dispatched = append(f.dispatched, message)
}

func fixedNow() time.Time {
	return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
}

func newItem(name string, status string, daysFromNow *int) *entities.FoodItem {
	item := &entities.FoodItem{
		ID:       uuid.New(),
		Name:     name,
		Category: "Others",
		Quantity: 1,
		Status:   status,
	}
	if daysFromNow != nil {
		expiry := fixedNow().AddDate(0, 0, *daysFromNow)
		item.ExpiryDate = &expiry
	}
	return item
}

func days(d int) *int { return &d }

func newTestTracker(itemRepo *fakeItemRepo, alertRepo *fakeAlertRepo, alertSvc *fakeAlertService) *trackerService {
	classifier, err := NewClassifier(domain.AlertThresholds{Critical: 1, Warning: 3, Normal: 7})
	if err != nil {
		panic(err)
	}
	tracker := NewTrackerService(itemRepo, alertRepo, alertSvc, classifier, 0).(*trackerService)
	tracker.now = fixedNow
	return tracker
}

func TestCheckExpiryStatus_GroupsByTier(t *testing.T) {
	itemRepo := newFakeItemRepo()
	itemRepo.items = []*entities.FoodItem{
		newItem("old milk", domain.StatusFresh, days(-2)),
		newItem("yogurt", domain.StatusFresh, days(1)),
		newItem("chicken", domain.StatusFresh, days(2)),
		newItem("carrots", domain.StatusFresh, days(5)),
		newItem("frozen peas", domain.StatusFresh, days(30)),
	}

	tracker := newTestTracker(itemRepo, &fakeAlertRepo{}, &fakeAlertService{})

	status, err := tracker.CheckExpiryStatus(context.Background())
	require.NoError(t, err)

	require.Len(t, status.Critical, 2)
	assert.Equal(t, "old milk", status.Critical[0].Name)
	assert.Equal(t, -2, status.Critical[0].DaysRemaining)
	assert.Equal(t, "yogurt", status.Critical[1].Name)

	require.Len(t, status.Warning, 1)
	assert.Equal(t, "chicken", status.Warning[0].Name)

	require.Len(t, status.Normal, 1)
	assert.Equal(t, "carrots", status.Normal[0].Name)

	require.Len(t, status.Fresh, 1)
	assert.Equal(t, "frozen peas", status.Fresh[0].Name)
}

func TestCheckExpiryStatus_SkipsItemsWithoutExpiry(t *testing.T) {
	itemRepo := newFakeItemRepo()
	itemRepo.items = []*entities.FoodItem{
		newItem("mystery sauce", domain.StatusFresh, nil),
		newItem("yogurt", domain.StatusFresh, days(1)),
	}

	tracker := newTestTracker(itemRepo, &fakeAlertRepo{}, &fakeAlertService{})

	status, err := tracker.CheckExpiryStatus(context.Background())
	require.NoError(t, err)

	total := len(status.Critical) + len(status.Warning) + len(status.Normal) + len(status.Fresh)
	assert.Equal(t, 1, total)
}

func TestCheckExpiryStatus_TransitionsPastDueToExpired(t *testing.T) {
	itemRepo := newFakeItemRepo()
	expired := newItem("old milk", domain.StatusFresh, days(-1))
	alreadyExpired := newItem("older milk", domain.StatusExpired, days(-5))
	fresh := newItem("carrots", domain.StatusFresh, days(5))
	itemRepo.items = []*entities.FoodItem{expired, alreadyExpired, fresh}

	tracker := newTestTracker(itemRepo, &fakeAlertRepo{}, &fakeAlertService{})

	_, err := tracker.CheckExpiryStatus(context.Background())
	require.NoError(t, err)

	assert.Equal(t, domain.StatusExpired, itemRepo.statusChanges[expired.ID.String()])
	// already-expired items are not re-transitioned
	_, changed := itemRepo.statusChanges[alreadyExpired.ID.String()]
	assert.False(t, changed)
	_, changed = itemRepo.statusChanges[fresh.ID.String()]
	assert.False(t, changed)
}

func TestGenerateAlerts_Messages(t *testing.T) {
	itemRepo := newFakeItemRepo()
	itemRepo.items = []*entities.FoodItem{
		newItem("old milk", domain.StatusFresh, days(-2)),
		newItem("eggs", domain.StatusFresh, days(0)),
		newItem("yogurt", domain.StatusFresh, days(1)),
		newItem("chicken", domain.StatusFresh, days(3)),
		newItem("carrots", domain.StatusFresh, days(6)),
	}
	alertRepo := &fakeAlertRepo{}

	tracker := newTestTracker(itemRepo, alertRepo, &fakeAlertService{})

	require.NoError(t, tracker.GenerateAlerts(context.Background()))
	require.Len(t, alertRepo.alerts, 5)

	messages := map[string]string{}
	for _, a := range alertRepo.alerts {
		messages[a.AlertLevel] += a.Message + ";"
	}

	assert.Contains(t, messages[string(domain.TierCritical)], "old milk has EXPIRED 2 day(s) ago!")
	assert.Contains(t, messages[string(domain.TierCritical)], "eggs expires TODAY!")
	assert.Contains(t, messages[string(domain.TierCritical)], "yogurt expires in 1 day(s)!")
	assert.Contains(t, messages[string(domain.TierWarning)], "chicken expires in 3 day(s)")
	assert.Contains(t, messages[string(domain.TierNormal)], "carrots expires in 6 day(s)")
}

func TestGenerateAlerts_SuppressesDuplicateUnread(t *testing.T) {
	itemRepo := newFakeItemRepo()
	itemRepo.items = []*entities.FoodItem{
		newItem("yogurt", domain.StatusFresh, days(1)),
		newItem("chicken", domain.StatusFresh, days(3)),
	}
	alertRepo := &fakeAlertRepo{}

	tracker := newTestTracker(itemRepo, alertRepo, &fakeAlertService{})

	require.NoError(t, tracker.GenerateAlerts(context.Background()))
	require.NoError(t, tracker.GenerateAlerts(context.Background()))

	assert.Len(t, alertRepo.alerts, 2, "a second pass must not duplicate unread alerts")
}

func TestGenerateAlerts_EscalationCreatesNewAlert(t *testing.T) {
	itemRepo := newFakeItemRepo()
	item := newItem("chicken", domain.StatusFresh, days(3))
	itemRepo.items = []*entities.FoodItem{item}
	alertRepo := &fakeAlertRepo{}

	tracker := newTestTracker(itemRepo, alertRepo, &fakeAlertService{})

	require.NoError(t, tracker.GenerateAlerts(context.Background()))
	require.Len(t, alertRepo.alerts, 1)
	assert.Equal(t, string(domain.TierWarning), alertRepo.alerts[0].AlertLevel)

	// the item moves into the critical window; the unread warning alert does
	// not suppress the new critical one
	expiry := fixedNow().AddDate(0, 0, 1)
	item.ExpiryDate = &expiry

	require.NoError(t, tracker.GenerateAlerts(context.Background()))
	require.Len(t, alertRepo.alerts, 2)
	assert.Equal(t, string(domain.TierCritical), alertRepo.alerts[1].AlertLevel)
}

func TestGenerateAlerts_DispatchesCriticalOnly(t *testing.T) {
	itemRepo := newFakeItemRepo()
	itemRepo.items = []*entities.FoodItem{
		newItem("yogurt", domain.StatusFresh, days(0)),
		newItem("chicken", domain.StatusFresh, days(3)),
	}
	alertRepo := &fakeAlertRepo{}
	alertSvc := &fakeAlertService{}

	tracker := newTestTracker(itemRepo, alertRepo, alertSvc)

	require.NoError(t, tracker.GenerateAlerts(context.Background()))

	require.Len(t, alertSvc.dispatched, 1)
	assert.Equal(t, "yogurt expires TODAY!", alertSvc.dispatched[0])

	// suppressed alerts do not re-dispatch
	require.NoError(t, tracker.GenerateAlerts(context.Background()))
	assert.Len(t, alertSvc.dispatched, 1)
}

func TestGetItemsForRecipe_CapsAndOrders(t *testing.T) {
	itemRepo := newFakeItemRepo()
	itemRepo.expiringSoon = []*entities.FoodItem{
		newItem("yogurt", domain.StatusFresh, days(0)),
		newItem("chicken", domain.StatusFresh, days(1)),
		newItem("carrots", domain.StatusFresh, days(2)),
	}

	tracker := newTestTracker(itemRepo, &fakeAlertRepo{}, &fakeAlertService{})

	candidates, err := tracker.GetItemsForRecipe(context.Background(), 2)
	require.NoError(t, err)

	require.Len(t, candidates, 2)
	assert.Equal(t, "yogurt", candidates[0].Name)
	assert.Equal(t, "chicken", candidates[1].Name)
	assert.Equal(t, 0, candidates[0].DaysRemaining)
	assert.Equal(t, 1, candidates[1].DaysRemaining)
}

func TestGetItemsForRecipe_EmptyIsNotNil(t *testing.T) {
	tracker := newTestTracker(newFakeItemRepo(), &fakeAlertRepo{}, &fakeAlertService{})

	candidates, err := tracker.GetItemsForRecipe(context.Background(), 0)
	require.NoError(t, err)
	assert.NotNil(t, candidates)
	assert.Empty(t, candidates)
}

func TestCalculateWasteStatistics(t *testing.T) {
	itemRepo := newFakeItemRepo()
	itemRepo.categoryStats = []domain.CategoryWasteStats{
		{Category: "Dairy", Count: 6, ExpiredCount: 2},
		{Category: "Vegetables", Count: 4, ExpiredCount: 1},
	}

	tracker := newTestTracker(itemRepo, &fakeAlertRepo{}, &fakeAlertService{})

	stats, err := tracker.CalculateWasteStatistics(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 10, stats.TotalItemsLast30Days)
	assert.Equal(t, 3, stats.ExpiredItems)
	assert.InDelta(t, 30.0, stats.WasteRatePercentage, 0.001)
	assert.Len(t, stats.ByCategory, 2)
}

func TestCalculateWasteStatistics_Empty(t *testing.T) {
	tracker := newTestTracker(newFakeItemRepo(), &fakeAlertRepo{}, &fakeAlertService{})

	stats, err := tracker.CalculateWasteStatistics(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 0, stats.TotalItemsLast30Days)
	assert.Zero(t, stats.WasteRatePercentage)
	assert.NotNil(t, stats.ByCategory)
}

func TestGetConsumptionInsights(t *testing.T) {
	itemRepo := newFakeItemRepo()
	itemRepo.consumption = []domain.CategoryConsumption{
		{Category: "Dairy", ConsumptionCount: 8},
		{Category: "Fruits", ConsumptionCount: 3},
	}
	itemRepo.categoryStats = []domain.CategoryWasteStats{
		{Category: "Dairy", Count: 10, ExpiredCount: 1},
	}

	tracker := newTestTracker(itemRepo, &fakeAlertRepo{}, &fakeAlertService{})

	insights, err := tracker.GetConsumptionInsights(context.Background())
	require.NoError(t, err)

	require.Len(t, insights.TopConsumedCategories, 2)
	assert.Equal(t, "Dairy", insights.TopConsumedCategories[0].Category)
	assert.InDelta(t, 10.0, insights.WasteStats.WasteRatePercentage, 0.001)
}
