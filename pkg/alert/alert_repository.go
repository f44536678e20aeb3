package alert

import (
	"context"

	"Smart-Fridge-Backend/domain"
	"Smart-Fridge-Backend/entities"

	"gorm.io/gorm"
)

type (
	AlertRepository interface {
		CreateAlert(ctx context.Context, alert *entities.Alert) error
		GetUnreadAlerts(ctx context.Context) ([]domain.AlertResponse, error)
		HasUnreadAlert(ctx context.Context, foodItemID string, level string) (bool, error)
		MarkAlertAsRead(ctx context.Context, id string) error
	}

	alertRepository struct {
		db *gorm.DB
	}
)

func NewAlertRepository(db *gorm.DB) AlertRepository {
	return &alertRepository{db: db}
}

func (r *alertRepository) CreateAlert(ctx context.Context, alert *entities.Alert) error {
	return r.db.WithContext(ctx).Create(alert).Error
}

func (r *alertRepository) GetUnreadAlerts(ctx context.Context) ([]domain.AlertResponse, error) {
	var alerts []domain.AlertResponse

	if err := r.db.WithContext(ctx).Model(&entities.Alert{}).
		Select("alerts.id, alerts.food_item_id, food_items.name as food_name, alerts.alert_type, alerts.alert_level, alerts.message, alerts.is_read, alerts.created_at").
		Joins("JOIN food_items ON alerts.food_item_id = food_items.id").
		Where("alerts.is_read = ?", false).
		Order("alerts.created_at desc").
		Scan(&alerts).Error; err != nil {
		return nil, err
	}

	return alerts, nil
}

func (r *alertRepository) HasUnreadAlert(ctx context.Context, foodItemID string, level string) (bool, error) {
	var count int64

	if err := r.db.WithContext(ctx).Model(&entities.Alert{}).
		Where("food_item_id = ? AND alert_level = ? AND is_read = ?", foodItemID, level, false).
		Count(&count).Error; err != nil {
		return false, err
	}

	return count > 0, nil
}

func (r *alertRepository) MarkAlertAsRead(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Model(&entities.Alert{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"is_read": true})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
