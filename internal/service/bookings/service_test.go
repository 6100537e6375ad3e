package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	bookingStorage "github.com/m04kA/SMC-SalonService/internal/infra/storage/booking"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newFixture() *Service {
	date := time.Date(2025, time.June, 10, 0, 0, 0, 0, time.UTC)
	repo := bookingStorage.NewMemoryRepository([]*domain.Booking{
		{
			ID: "booking-1",
			Services: []domain.Service{
				{ID: 1, Name: "Мужская стрижка", Price: 20000, DurationMinutes: 30},
				{ID: 2, Name: "Женская стрижка", Price: 15000, DurationMinutes: 15},
			},
			Appointment: domain.Appointment{Date: date, Time: "10:00 AM", DurationMinutes: 45},
			Contact:     domain.Contact{Name: "Диана Дельгадо", Phone: "1234567890"},
			Status:      domain.StatusConfirmed,
		},
		{
			ID: "booking-2",
			Services: []domain.Service{
				{ID: 4, Name: "Педикюр", Price: 20000, DurationMinutes: 60},
			},
			Appointment: domain.Appointment{Date: date, Time: "2:00 PM", DurationMinutes: 60},
			Contact:     domain.Contact{Name: "Хуан Перес", Phone: "0987654321"},
			Status:      domain.StatusUnconfirmed,
		},
	})

	return NewService(repo, nopLogger{})
}

func TestGetByID(t *testing.T) {
	svc := newFixture()

	got, err := svc.GetByID(context.Background(), "booking-1")
	require.NoError(t, err)

	assert.Equal(t, "booking-1", got.ID)
	assert.Equal(t, "10:00 AM", got.StartTime)
	assert.Equal(t, 45, got.DurationMinutes)
	// совокупная цена считается из снапшотов
	assert.Equal(t, float64(35000), got.TotalPrice)
	require.Len(t, got.Services, 2)
}

func TestGetByID_NotFound(t *testing.T) {
	svc := newFixture()

	_, err := svc.GetByID(context.Background(), "booking-99")
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestList(t *testing.T) {
	svc := newFixture()

	got, err := svc.List(context.Background())
	require.NoError(t, err)

	require.Len(t, got.Bookings, 2)
	assert.Equal(t, "booking-1", got.Bookings[0].ID)
	assert.Equal(t, "booking-2", got.Bookings[1].ID)
}

func TestUpdateStatus(t *testing.T) {
	svc := newFixture()

	got, err := svc.UpdateStatus(context.Background(), "booking-2", "confirmed")
	require.NoError(t, err)
	assert.Equal(t, "confirmed", got.Status)

	reloaded, err := svc.GetByID(context.Background(), "booking-2")
	require.NoError(t, err)
	assert.Equal(t, "confirmed", reloaded.Status)
}

func TestUpdateStatus_InvalidStatus(t *testing.T) {
	svc := newFixture()

	_, err := svc.UpdateStatus(context.Background(), "booking-1", "pending")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestUpdateStatus_NotFound(t *testing.T) {
	svc := newFixture()

	_, err := svc.UpdateStatus(context.Background(), "booking-99", "confirmed")
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestDelete(t *testing.T) {
	svc := newFixture()

	require.NoError(t, svc.Delete(context.Background(), "booking-1"))

	got, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, got.Bookings, 1)
	assert.Equal(t, "booking-2", got.Bookings[0].ID)

	assert.ErrorIs(t, svc.Delete(context.Background(), "booking-1"), ErrBookingNotFound)
}
