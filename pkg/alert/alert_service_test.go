package alert

import (
	"context"
	"errors"
	"testing"

	"Smart-Fridge-Backend/domain"
	"Smart-Fridge-Backend/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeAlertRepo struct {
	unread   []domain.AlertResponse
	read     []string
	notFound bool
}

func (f *fakeAlertRepo) CreateAlert(ctx context.Context, a *entities.Alert) error {
	return nil
}

func (f *fakeAlertRepo) GetUnreadAlerts(ctx context.Context) ([]domain.AlertResponse, error) {
	return f.unread, nil
}

func (f *fakeAlertRepo) HasUnreadAlert(ctx context.Context, foodItemID string, level string) (bool, error) {
	return false, nil
}

func (f *fakeAlertRepo) MarkAlertAsRead(ctx context.Context, id string) error {
	if f.notFound {
		return gorm.ErrRecordNotFound
	}
	f.read = append(f.read, id)
	return nil
}

type recordingChannel struct {
	name string
	err  error
	sent []string
}

func (c *recordingChannel) Name() string { return c.name }

func (c *recordingChannel) Send(title, message string) error {
	if c.err != nil {
		return c.err
	}
	c.sent = append(c.sent, message)
	return nil
}

func TestGetUnreadAlerts_EmptyIsNotNil(t *testing.T) {
	service := NewAlertService(&fakeAlertRepo{})

	alerts, err := service.GetUnreadAlerts(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, alerts)
	assert.Empty(t, alerts)
}

func TestMarkAlertAsRead_MapsNotFound(t *testing.T) {
	service := NewAlertService(&fakeAlertRepo{notFound: true})

	err := service.MarkAlertAsRead(context.Background(), "missing-id")
	assert.ErrorIs(t, err, domain.ErrAlertNotFound)
}

func TestMarkAlertAsRead(t *testing.T) {
	repo := &fakeAlertRepo{}
	service := NewAlertService(repo)

	require.NoError(t, service.MarkAlertAsRead(context.Background(), "some-id"))
	assert.Equal(t, []string{"some-id"}, repo.read)
}

func TestDispatch_ChannelFailureDoesNotBlockOthers(t *testing.T) {
	broken := &recordingChannel{name: "desktop", err: errors.New("no display")}
	working := &recordingChannel{name: "email"}

	service := NewAlertService(&fakeAlertRepo{}, broken, working)

	service.Dispatch("Critical Food Alert", "milk expires TODAY!", domain.TierCritical)

	assert.Empty(t, broken.sent)
	assert.Equal(t, []string{"milk expires TODAY!"}, working.sent)
}

func TestAlertSummaryHTML_NoAlerts(t *testing.T) {
	service := NewAlertService(&fakeAlertRepo{})

	html, err := service.AlertSummaryHTML(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "<p>No active alerts</p>", html)
}

func TestAlertSummaryHTML_ColorsByLevel(t *testing.T) {
	repo := &fakeAlertRepo{
		unread: []domain.AlertResponse{
			{FoodName: "milk", AlertLevel: string(domain.TierCritical), Message: "milk expires TODAY!"},
			{FoodName: "chicken", AlertLevel: string(domain.TierWarning), Message: "chicken expires in 3 day(s)"},
			{FoodName: "jam", AlertLevel: "unknown", Message: "jam expires in 6 day(s)"},
		},
	}
	service := NewAlertService(repo)

	html, err := service.AlertSummaryHTML(context.Background())
	require.NoError(t, err)

	assert.Contains(t, html, "<h3>Active Alerts</h3>")
	assert.Contains(t, html, "color: red")
	assert.Contains(t, html, "color: orange")
	assert.Contains(t, html, "color: gray")
	assert.Contains(t, html, "<strong>milk</strong>: milk expires TODAY!")
}
