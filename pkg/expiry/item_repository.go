package expiry

import (
	"context"
	"time"

	"Smart-Fridge-Backend/domain"
	"Smart-Fridge-Backend/entities"

	"gorm.io/gorm"
)

type (
	// ItemRepository is the minimal item-store contract the tracker depends
	// on. The full CRUD surface lives in pkg/food.
	ItemRepository interface {
		ListActiveItems(ctx context.Context) ([]*entities.FoodItem, error)
		ListItemsExpiringWithin(ctx context.Context, days int) ([]*entities.FoodItem, error)
		SetStatus(ctx context.Context, id string, status string) error
		AggregateByCategory(ctx context.Context, windowDays int) ([]domain.CategoryWasteStats, error)
		TopConsumedCategories(ctx context.Context, windowDays, limit int) ([]domain.CategoryConsumption, error)
	}

	itemRepository struct {
		db *gorm.DB
	}
)

func NewItemRepository(db *gorm.DB) ItemRepository {
	return &itemRepository{db: db}
}

func (r *itemRepository) ListActiveItems(ctx context.Context) ([]*entities.FoodItem, error) {
	var items []*entities.FoodItem

	if err := r.db.WithContext(ctx).
		Where("status <> ?", domain.StatusConsumed).
		Order("expiry_date asc").
		Find(&items).Error; err != nil {
		return nil, err
	}

	return items, nil
}

func (r *itemRepository) ListItemsExpiringWithin(ctx context.Context, days int) ([]*entities.FoodItem, error) {
	var items []*entities.FoodItem

	threshold := time.Now().AddDate(0, 0, days)

	if err := r.db.WithContext(ctx).
		Where("expiry_date IS NOT NULL AND expiry_date <= ? AND status = ?", threshold, domain.StatusFresh).
		Order("expiry_date asc").
		Find(&items).Error; err != nil {
		return nil, err
	}

	return items, nil
}

func (r *itemRepository) SetStatus(ctx context.Context, id string, status string) error {
	return r.db.WithContext(ctx).Model(&entities.FoodItem{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"status": status}).Error
}

func (r *itemRepository) AggregateByCategory(ctx context.Context, windowDays int) ([]domain.CategoryWasteStats, error) {
	var stats []domain.CategoryWasteStats

	since := time.Now().AddDate(0, 0, -windowDays)

	if err := r.db.WithContext(ctx).Model(&entities.FoodItem{}).
		Select("category, COUNT(*) as count, SUM(CASE WHEN status = ? THEN 1 ELSE 0 END) as expired_count", domain.StatusExpired).
		Where("storage_date >= ?", since).
		Group("category").
		Scan(&stats).Error; err != nil {
		return nil, err
	}

	return stats, nil
}

func (r *itemRepository) TopConsumedCategories(ctx context.Context, windowDays, limit int) ([]domain.CategoryConsumption, error) {
	var consumption []domain.CategoryConsumption

	since := time.Now().AddDate(0, 0, -windowDays)

	if err := r.db.WithContext(ctx).Model(&entities.ConsumptionLog{}).
		Select("category, COUNT(*) as consumption_count").
		Where("consumed_at >= ?", since).
		Group("category").
		Order("consumption_count desc").
		Limit(limit).
		Scan(&consumption).Error; err != nil {
		return nil, err
	}

	return consumption, nil
}
