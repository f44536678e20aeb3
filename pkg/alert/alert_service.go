package alert

import (
	"context"
	"errors"
	"fmt"
	"log"

	"Smart-Fridge-Backend/domain"

	"gorm.io/gorm"
)

type (
	AlertService interface {
		GetUnreadAlerts(ctx context.Context) ([]domain.AlertResponse, error)
		MarkAlertAsRead(ctx context.Context, alertID string) error
		AlertSummaryHTML(ctx context.Context) (string, error)

		// Dispatch fans the alert payload out to every configured channel.
		// Best effort: channel failures are logged, never returned.
		Dispatch(title, message string, tier domain.ExpiryTier)
	}

	alertService struct {
		alertRepository AlertRepository
		channels        []Channel
	}
)

func NewAlertService(alertRepository AlertRepository, channels ...Channel) AlertService {
	return &alertService{
		alertRepository: alertRepository,
		channels:        channels,
	}
}

func (s *alertService) GetUnreadAlerts(ctx context.Context) ([]domain.AlertResponse, error) {
	alerts, err := s.alertRepository.GetUnreadAlerts(ctx)
	if err != nil {
		return nil, err
	}
	if alerts == nil {
		alerts = []domain.AlertResponse{}
	}
	return alerts, nil
}

func (s *alertService) MarkAlertAsRead(ctx context.Context, alertID string) error {
	if err := s.alertRepository.MarkAlertAsRead(ctx, alertID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrAlertNotFound
		}
		return err
	}
	return nil
}

func (s *alertService) AlertSummaryHTML(ctx context.Context) (string, error) {
	alerts, err := s.alertRepository.GetUnreadAlerts(ctx)
	if err != nil {
		return "", err
	}

	if len(alerts) == 0 {
		return "<p>No active alerts</p>", nil
	}

	colors := map[string]string{
		string(domain.TierCritical): "red",
		string(domain.TierWarning):  "orange",
		string(domain.TierNormal):   "blue",
	}

	html := "<h3>Active Alerts</h3><ul>"
	for _, a := range alerts {
		color, ok := colors[a.AlertLevel]
		if !ok {
			color = "gray"
		}
		html += fmt.Sprintf("<li style='color: %s'><strong>%s</strong>: %s</li>", color, a.FoodName, a.Message)
	}
	html += "</ul>"

	return html, nil
}

func (s *alertService) Dispatch(title, message string, tier domain.ExpiryTier) {
	for _, ch := range s.channels {
		if err := ch.Send(title, message); err != nil {
			log.Printf("%s notification failed for %s alert: %v", ch.Name(), tier, err)
		}
	}
}
