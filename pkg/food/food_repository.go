package food

import (
	"context"
	"time"

	"Smart-Fridge-Backend/domain"
	"Smart-Fridge-Backend/entities"

	"gorm.io/gorm"
)

type (
	FoodRepository interface {
		CreateFoodItem(ctx context.Context, item *entities.FoodItem) error
		GetFoodItemByID(ctx context.Context, id string) (*entities.FoodItem, error)
		UpdateFoodItem(ctx context.Context, item *entities.FoodItem) error
		DeleteFoodItem(ctx context.Context, id string) error
		GetFoodItems(ctx context.Context, status string) ([]*entities.FoodItem, error)
		CreateConsumptionLog(ctx context.Context, log *entities.ConsumptionLog) error
		CountActiveItems(ctx context.Context) (int64, error)
		CountItemsByCategory(ctx context.Context) (map[string]int64, error)
		CountExpiringWithin(ctx context.Context, days int) (int64, error)
		CountUnreadAlerts(ctx context.Context) (int64, error)
	}

	foodRepository struct {
		db *gorm.DB
	}
)

func NewFoodRepository(db *gorm.DB) FoodRepository {
	return &foodRepository{db: db}
}

func (r *foodRepository) CreateFoodItem(ctx context.Context, item *entities.FoodItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *foodRepository) GetFoodItemByID(ctx context.Context, id string) (*entities.FoodItem, error) {
	var item entities.FoodItem
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *foodRepository) UpdateFoodItem(ctx context.Context, item *entities.FoodItem) error {
	return r.db.WithContext(ctx).Save(item).Error
}

func (r *foodRepository) DeleteFoodItem(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.FoodItem{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *foodRepository) GetFoodItems(ctx context.Context, status string) ([]*entities.FoodItem, error) {
	var items []*entities.FoodItem

	query := r.db.WithContext(ctx).Order("expiry_date asc NULLS LAST")
	if status != "" {
		query = query.Where("status = ?", status)
	}

	if err := query.Find(&items).Error; err != nil {
		return nil, err
	}

	return items, nil
}

func (r *foodRepository) CreateConsumptionLog(ctx context.Context, log *entities.ConsumptionLog) error {
	return r.db.WithContext(ctx).Create(log).Error
}

func (r *foodRepository) CountActiveItems(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entities.FoodItem{}).
		Where("status = ?", domain.StatusFresh).
		Count(&count).Error
	return count, err
}

func (r *foodRepository) CountItemsByCategory(ctx context.Context) (map[string]int64, error) {
	var rows []struct {
		Category string
		Count    int64
	}

	if err := r.db.WithContext(ctx).Model(&entities.FoodItem{}).
		Select("category, COUNT(*) as count").
		Where("status = ?", domain.StatusFresh).
		Group("category").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.Category] = row.Count
	}

	return counts, nil
}

func (r *foodRepository) CountExpiringWithin(ctx context.Context, days int) (int64, error) {
	var count int64

	threshold := time.Now().AddDate(0, 0, days)

	err := r.db.WithContext(ctx).Model(&entities.FoodItem{}).
		Where("expiry_date IS NOT NULL AND expiry_date <= ? AND status = ?", threshold, domain.StatusFresh).
		Count(&count).Error

	return count, err
}

func (r *foodRepository) CountUnreadAlerts(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entities.Alert{}).
		Where("is_read = ?", false).
		Count(&count).Error
	return count, err
}
