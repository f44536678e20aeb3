package expiry

import (
	"context"
	"fmt"
	"log"
	"math"
	"time"

	"Smart-Fridge-Backend/domain"
	"Smart-Fridge-Backend/entities"
	"Smart-Fridge-Backend/pkg/alert"

	"github.com/google/uuid"
)

const (
	// RecipeLookAheadDays is the fixed window for recipe candidates.
	RecipeLookAheadDays = 3

	DefaultMaxRecipeItems = 10

	statsWindowDays    = 30
	topCategoriesLimit = 5
)

type (
	TrackerService interface {
		CheckExpiryStatus(ctx context.Context) (domain.ExpiryStatusResponse, error)
		GenerateAlerts(ctx context.Context) error
		GetItemsForRecipe(ctx context.Context, maxItems int) ([]domain.ExpiringItem, error)
		CalculateWasteStatistics(ctx context.Context) (domain.WasteStatisticsResponse, error)
		GetConsumptionInsights(ctx context.Context) (domain.ConsumptionInsightsResponse, error)
	}

	trackerService struct {
		itemRepository  ItemRepository
		alertRepository alert.AlertRepository
		alertService    alert.AlertService
		classifier      *Classifier
		maxRecipeItems  int
		now             func() time.Time
	}
)

func NewTrackerService(
	itemRepository ItemRepository,
	alertRepository alert.AlertRepository,
	alertService alert.AlertService,
	classifier *Classifier,
	maxRecipeItems int,
) TrackerService {
	if maxRecipeItems <= 0 {
		maxRecipeItems = DefaultMaxRecipeItems
	}
	return &trackerService{
		itemRepository:  itemRepository,
		alertRepository: alertRepository,
		alertService:    alertService,
		classifier:      classifier,
		maxRecipeItems:  maxRecipeItems,
		now:             time.Now,
	}
}

// CheckExpiryStatus classifies every non-consumed item into its urgency tier.
// Items without an expiry date are skipped, not defaulted. Items found past
// due are transitioned to "expired" through the item store in the same pass;
// that is the only place status auto-transitions.
func (s *trackerService) CheckExpiryStatus(ctx context.Context) (domain.ExpiryStatusResponse, error) {
	items, err := s.itemRepository.ListActiveItems(ctx)
	if err != nil {
		return domain.ExpiryStatusResponse{}, err
	}

	status := domain.ExpiryStatusResponse{
		Critical: []domain.ExpiringItem{},
		Warning:  []domain.ExpiringItem{},
		Normal:   []domain.ExpiringItem{},
		Fresh:    []domain.ExpiringItem{},
	}

	now := s.now()

	for _, item := range items {
		if item.ExpiryDate == nil {
			continue
		}

		tier, days := s.classifier.Classify(now, *item.ExpiryDate)

		summary := domain.ExpiringItem{
			ID:            item.ID.String(),
			Name:          item.Name,
			Category:      item.Category,
			Quantity:      item.Quantity,
			Unit:          item.Unit,
			ExpiryDate:    *item.ExpiryDate,
			DaysRemaining: days,
		}

		switch tier {
		case domain.TierCritical:
			status.Critical = append(status.Critical, summary)
		case domain.TierWarning:
			status.Warning = append(status.Warning, summary)
		case domain.TierNormal:
			status.Normal = append(status.Normal, summary)
		default:
			status.Fresh = append(status.Fresh, summary)
		}

		if days < 0 && item.Status == domain.StatusFresh {
			if err := s.itemRepository.SetStatus(ctx, item.ID.String(), domain.StatusExpired); err != nil {
				return domain.ExpiryStatusResponse{}, err
			}
		}
	}

	log.Printf("expiry check complete: %d critical, %d warning, %d normal",
		len(status.Critical), len(status.Warning), len(status.Normal))

	return status, nil
}

// GenerateAlerts re-runs classification and persists one alert per qualifying
// item. At most one unread alert exists per (item, tier): an unread alert for
// the same item and tier suppresses the insert, while a tier escalation still
// produces a new one. Critical alerts additionally fan out to the configured
// notification channels after persistence.
func (s *trackerService) GenerateAlerts(ctx context.Context) error {
	status, err := s.CheckExpiryStatus(ctx)
	if err != nil {
		return err
	}

	for _, item := range status.Critical {
		var message string
		switch {
		case item.DaysRemaining < 0:
			message = fmt.Sprintf("%s has EXPIRED %d day(s) ago!", item.Name, -item.DaysRemaining)
		case item.DaysRemaining == 0:
			message = fmt.Sprintf("%s expires TODAY!", item.Name)
		default:
			message = fmt.Sprintf("%s expires in %d day(s)!", item.Name, item.DaysRemaining)
		}

		created, err := s.createAlertOnce(ctx, item.ID, domain.TierCritical, message)
		if err != nil {
			return err
		}
		if created && s.alertService != nil {
			s.alertService.Dispatch("Critical Food Alert", message, domain.TierCritical)
		}
	}

	for _, item := range status.Warning {
		message := fmt.Sprintf("%s expires in %d day(s)", item.Name, item.DaysRemaining)
		if _, err := s.createAlertOnce(ctx, item.ID, domain.TierWarning, message); err != nil {
			return err
		}
	}

	for _, item := range status.Normal {
		message := fmt.Sprintf("%s expires in %d day(s)", item.Name, item.DaysRemaining)
		if _, err := s.createAlertOnce(ctx, item.ID, domain.TierNormal, message); err != nil {
			return err
		}
	}

	log.Printf("alert generation complete")
	return nil
}

func (s *trackerService) createAlertOnce(ctx context.Context, itemID string, tier domain.ExpiryTier, message string) (bool, error) {
	exists, err := s.alertRepository.HasUnreadAlert(ctx, itemID, string(tier))
	if err != nil {
		return false, err
	}
	if exists {
		return false, nil
	}

	itemUUID, err := uuid.Parse(itemID)
	if err != nil {
		return false, domain.ErrParseUUID
	}

	a := &entities.Alert{
		ID:         uuid.New(),
		FoodItemID: itemUUID,
		AlertType:  domain.AlertTypeExpiry,
		AlertLevel: string(tier),
		Message:    message,
		CreatedAt:  s.now(),
	}

	if err := s.alertRepository.CreateAlert(ctx, a); err != nil {
		return false, err
	}

	return true, nil
}

// GetItemsForRecipe returns up to maxItems fresh items expiring within the
// look-ahead window, soonest first. Returns an empty slice, never nil.
func (s *trackerService) GetItemsForRecipe(ctx context.Context, maxItems int) ([]domain.ExpiringItem, error) {
	if maxItems <= 0 {
		maxItems = s.maxRecipeItems
	}

	items, err := s.itemRepository.ListItemsExpiringWithin(ctx, RecipeLookAheadDays)
	if err != nil {
		return nil, err
	}

	now := s.now()

	candidates := []domain.ExpiringItem{}
	for _, item := range items {
		if item.ExpiryDate == nil {
			continue
		}
		if len(candidates) == maxItems {
			break
		}
		candidates = append(candidates, domain.ExpiringItem{
			ID:            item.ID.String(),
			Name:          item.Name,
			Category:      item.Category,
			Quantity:      item.Quantity,
			Unit:          item.Unit,
			ExpiryDate:    *item.ExpiryDate,
			DaysRemaining: DaysRemaining(now, *item.ExpiryDate),
		})
	}

	return candidates, nil
}

func (s *trackerService) CalculateWasteStatistics(ctx context.Context) (domain.WasteStatisticsResponse, error) {
	byCategory, err := s.itemRepository.AggregateByCategory(ctx, statsWindowDays)
	if err != nil {
		return domain.WasteStatisticsResponse{}, err
	}
	if byCategory == nil {
		byCategory = []domain.CategoryWasteStats{}
	}

	var total, expired int64
	for _, c := range byCategory {
		total += c.Count
		expired += c.ExpiredCount
	}

	wasteRate := 0.0
	if total > 0 {
		wasteRate = float64(expired) / float64(total) * 100
	}

	return domain.WasteStatisticsResponse{
		TotalItemsLast30Days: int(total),
		ExpiredItems:         int(expired),
		WasteRatePercentage:  math.Round(wasteRate*100) / 100,
		ByCategory:           byCategory,
	}, nil
}

func (s *trackerService) GetConsumptionInsights(ctx context.Context) (domain.ConsumptionInsightsResponse, error) {
	topCategories, err := s.itemRepository.TopConsumedCategories(ctx, statsWindowDays, topCategoriesLimit)
	if err != nil {
		return domain.ConsumptionInsightsResponse{}, err
	}
	if topCategories == nil {
		topCategories = []domain.CategoryConsumption{}
	}

	wasteStats, err := s.CalculateWasteStatistics(ctx)
	if err != nil {
		return domain.ConsumptionInsightsResponse{}, err
	}

	return domain.ConsumptionInsightsResponse{
		TopConsumedCategories: topCategories,
		WasteStats:            wasteStats,
	}, nil
}
