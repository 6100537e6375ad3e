package booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/pkg/types"
)

var testDate = time.Date(2025, time.June, 10, 0, 0, 0, 0, time.UTC)

func seedBooking(id string, start types.TimeString) *domain.Booking {
	return &domain.Booking{
		ID: id,
		Services: []domain.Service{
			{ID: 1, Name: "Мужская стрижка", Price: 20000, DurationMinutes: 30},
		},
		Appointment: domain.Appointment{Date: testDate, Time: start, DurationMinutes: 30},
		Contact:     domain.Contact{Name: "Диана Дельгадо", Phone: "1234567890"},
		Status:      domain.StatusUnconfirmed,
		CreatedAt:   time.Date(2025, time.June, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestMemoryRepository_CreateAndGet(t *testing.T) {
	repo := NewMemoryRepository(nil)
	ctx := context.Background()

	created, err := repo.Create(ctx, seedBooking("booking-1", "10:00 AM"))
	require.NoError(t, err)
	assert.Equal(t, "booking-1", created.ID)

	got, err := repo.GetByID(ctx, "booking-1")
	require.NoError(t, err)
	assert.Equal(t, types.TimeString("10:00 AM"), got.Appointment.Time)

	_, err = repo.GetByID(ctx, "booking-99")
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestMemoryRepository_ReturnsCopies(t *testing.T) {
	repo := NewMemoryRepository([]*domain.Booking{seedBooking("booking-1", "10:00 AM")})
	ctx := context.Background()

	got, err := repo.GetByID(ctx, "booking-1")
	require.NoError(t, err)

	// мутация возвращенной копии не задевает хранилище
	got.Services[0].Name = "изменено"
	got.Status = domain.StatusConfirmed

	fresh, err := repo.GetByID(ctx, "booking-1")
	require.NoError(t, err)
	assert.Equal(t, "Мужская стрижка", fresh.Services[0].Name)
	assert.Equal(t, domain.StatusUnconfirmed, fresh.Status)
}

func TestMemoryRepository_ListPreservesInsertionOrder(t *testing.T) {
	repo := NewMemoryRepository(nil)
	ctx := context.Background()

	for _, id := range []string{"booking-3", "booking-1", "booking-2"} {
		_, err := repo.Create(ctx, seedBooking(id, "10:00 AM"))
		require.NoError(t, err)
	}

	all, err := repo.List(ctx)
	require.NoError(t, err)

	require.Len(t, all, 3)
	assert.Equal(t, "booking-3", all[0].ID)
	assert.Equal(t, "booking-1", all[1].ID)
	assert.Equal(t, "booking-2", all[2].ID)
}

func TestMemoryRepository_ListByDate(t *testing.T) {
	other := seedBooking("booking-2", "2:00 PM")
	other.Appointment.Date = testDate.AddDate(0, 0, 1)

	repo := NewMemoryRepository([]*domain.Booking{
		seedBooking("booking-1", "10:00 AM"),
		other,
	})

	byDate, err := repo.ListByDate(context.Background(), testDate)
	require.NoError(t, err)

	require.Len(t, byDate, 1)
	assert.Equal(t, "booking-1", byDate[0].ID)
}

func TestMemoryRepository_UpdateKeepsPosition(t *testing.T) {
	repo := NewMemoryRepository([]*domain.Booking{
		seedBooking("booking-1", "10:00 AM"),
		seedBooking("booking-2", "2:00 PM"),
	})
	ctx := context.Background()

	updated := seedBooking("booking-1", "11:30 AM")
	_, err := repo.Update(ctx, updated)
	require.NoError(t, err)

	all, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, "booking-1", all[0].ID)
	assert.Equal(t, types.TimeString("11:30 AM"), all[0].Appointment.Time)

	_, err = repo.Update(ctx, seedBooking("booking-99", "9:00 AM"))
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestMemoryRepository_UpdateStatus(t *testing.T) {
	repo := NewMemoryRepository([]*domain.Booking{seedBooking("booking-1", "10:00 AM")})
	ctx := context.Background()

	err := repo.UpdateStatus(ctx, "booking-1", domain.StatusConfirmed)
	require.NoError(t, err)

	got, err := repo.GetByID(ctx, "booking-1")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusConfirmed, got.Status)

	err = repo.UpdateStatus(ctx, "booking-99", domain.StatusConfirmed)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestMemoryRepository_Delete(t *testing.T) {
	repo := NewMemoryRepository([]*domain.Booking{
		seedBooking("booking-1", "10:00 AM"),
		seedBooking("booking-2", "2:00 PM"),
	})
	ctx := context.Background()

	err := repo.Delete(ctx, "booking-1")
	require.NoError(t, err)

	all, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "booking-2", all[0].ID)

	err = repo.Delete(ctx, "booking-1")
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestMemoryRepository_HasServiceReference(t *testing.T) {
	repo := NewMemoryRepository([]*domain.Booking{seedBooking("booking-1", "10:00 AM")})
	ctx := context.Background()

	inUse, err := repo.HasServiceReference(ctx, 1)
	require.NoError(t, err)
	assert.True(t, inUse)

	inUse, err = repo.HasServiceReference(ctx, 2)
	require.NoError(t, err)
	assert.False(t, inUse)
}

func TestMemoryRepository_ReplaceServiceSnapshot(t *testing.T) {
	b := seedBooking("booking-1", "10:00 AM")
	b.Services = append(b.Services, domain.Service{ID: 2, Name: "Женская стрижка", Price: 15000, DurationMinutes: 15})

	repo := NewMemoryRepository([]*domain.Booking{b})
	ctx := context.Background()

	err := repo.ReplaceServiceSnapshot(ctx, domain.Service{
		ID: 1, Name: "Мужская стрижка", Price: 25000, DurationMinutes: 40,
	})
	require.NoError(t, err)

	got, err := repo.GetByID(ctx, "booking-1")
	require.NoError(t, err)

	// снапшот обновлен на месте, позиция и соседние услуги не тронуты
	require.Len(t, got.Services, 2)
	assert.Equal(t, 25000.0, got.Services[0].Price)
	assert.Equal(t, 40, got.Services[0].DurationMinutes)
	assert.Equal(t, "Женская стрижка", got.Services[1].Name)
}
