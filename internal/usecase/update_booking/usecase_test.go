package update_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/booking"
	catalogRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/catalog"
	"github.com/m04kA/SMC-SalonService/pkg/ptr"
	"github.com/m04kA/SMC-SalonService/pkg/types"
)

type fakeBookingRepo struct {
	bookings map[string]*domain.Booking
}

func (f *fakeBookingRepo) GetByID(_ context.Context, id string) (*domain.Booking, error) {
	b, ok := f.bookings[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	return b.Clone(), nil
}

func (f *fakeBookingRepo) Update(_ context.Context, b *domain.Booking) (*domain.Booking, error) {
	if _, ok := f.bookings[b.ID]; !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	f.bookings[b.ID] = b.Clone()
	return b.Clone(), nil
}

func (f *fakeBookingRepo) ListByDate(_ context.Context, date time.Time) ([]*domain.Booking, error) {
	out := make([]*domain.Booking, 0)
	for _, b := range f.bookings {
		if b.IsOnDay(date) {
			out = append(out, b.Clone())
		}
	}
	return out, nil
}

type fakeCatalogRepo struct {
	services map[int64]domain.Service
}

func (f *fakeCatalogRepo) GetByID(_ context.Context, id int64) (*domain.Service, error) {
	svc, ok := f.services[id]
	if !ok {
		return nil, catalogRepo.ErrServiceNotFound
	}
	return &svc, nil
}

type passthroughTxManager struct{}

func (passthroughTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var testDate = time.Date(2025, time.June, 10, 0, 0, 0, 0, time.UTC)

func newFixture() (*UseCase, *fakeBookingRepo) {
	repo := &fakeBookingRepo{bookings: map[string]*domain.Booking{
		"booking-1": {
			ID: "booking-1",
			Services: []domain.Service{
				{ID: 1, Name: "Мужская стрижка", Price: 20000, DurationMinutes: 30},
			},
			Appointment: domain.Appointment{Date: testDate, Time: "10:00 AM", DurationMinutes: 30},
			Contact:     domain.Contact{Name: "Диана Дельгадо", Phone: "1234567890"},
			Status:      domain.StatusUnconfirmed,
		},
		"booking-2": {
			ID: "booking-2",
			Services: []domain.Service{
				{ID: 4, Name: "Педикюр", Price: 20000, DurationMinutes: 60},
			},
			Appointment: domain.Appointment{Date: testDate, Time: "2:00 PM", DurationMinutes: 60},
			Contact:     domain.Contact{Name: "Хуан Перес", Phone: "0987654321"},
			Status:      domain.StatusConfirmed,
		},
	}}

	catalog := &fakeCatalogRepo{services: map[int64]domain.Service{
		1: {ID: 1, Name: "Мужская стрижка", Price: 20000, DurationMinutes: 30},
		3: {ID: 3, Name: "Укладка", Price: 10000, DurationMinutes: 45},
	}}

	uc := NewUseCase(repo, catalog, passthroughTxManager{}, domain.DefaultBusinessHours(), nopLogger{})
	return uc, repo
}

func TestExecute_RescheduleToOwnSlot(t *testing.T) {
	uc, _ := newFixture()

	// Перенос на время, пересекающееся со старым собственным интервалом:
	// редактируемое бронирование исключается из проверки
	resp, err := uc.Execute(context.Background(), &Request{
		ID:        "booking-1",
		StartTime: ptr.Ptr(types.TimeString("10:15 AM")),
	})
	require.NoError(t, err)
	assert.Equal(t, types.TimeString("10:15 AM"), resp.StartTime)
}

func TestExecute_ConflictWithOtherBooking(t *testing.T) {
	uc, repo := newFixture()

	_, err := uc.Execute(context.Background(), &Request{
		ID:        "booking-1",
		StartTime: ptr.Ptr(types.TimeString("2:30 PM")), // внутри [2:00, 3:00) booking-2
	})
	assert.ErrorIs(t, err, ErrSlotNotAvailable)
	// бронирование не изменилось
	assert.Equal(t, types.TimeString("10:00 AM"), repo.bookings["booking-1"].Appointment.Time)
}

func TestExecute_ChangeServicesRecomputesDuration(t *testing.T) {
	uc, repo := newFixture()

	resp, err := uc.Execute(context.Background(), &Request{
		ID:         "booking-1",
		ServiceIDs: ptr.Ptr([]int64{1, 3}),
	})
	require.NoError(t, err)

	assert.Equal(t, 75, resp.DurationMinutes)
	assert.Equal(t, float64(30000), resp.TotalPrice)
	require.Len(t, repo.bookings["booking-1"].Services, 2)
	assert.Equal(t, "Укладка", repo.bookings["booking-1"].Services[1].Name)
}

func TestExecute_PartialUpdateKeepsOtherFields(t *testing.T) {
	uc, repo := newFixture()

	_, err := uc.Execute(context.Background(), &Request{
		ID:          "booking-1",
		ContactName: ptr.Ptr("Новое Имя"),
	})
	require.NoError(t, err)

	b := repo.bookings["booking-1"]
	assert.Equal(t, "Новое Имя", b.Contact.Name)
	assert.Equal(t, "1234567890", b.Contact.Phone)
	assert.Equal(t, types.TimeString("10:00 AM"), b.Appointment.Time)
	assert.Equal(t, domain.StatusUnconfirmed, b.Status)
}

func TestExecute_MoveToOtherDay(t *testing.T) {
	uc, _ := newFixture()

	// В другой день занятость текущего дня не мешает
	resp, err := uc.Execute(context.Background(), &Request{
		ID:        "booking-1",
		Date:      ptr.Ptr(testDate.AddDate(0, 0, 1)),
		StartTime: ptr.Ptr(types.TimeString("2:00 PM")),
	})
	require.NoError(t, err)
	assert.Equal(t, types.TimeString("2:00 PM"), resp.StartTime)
}

func TestExecute_OutsideBusinessHours(t *testing.T) {
	uc, _ := newFixture()

	_, err := uc.Execute(context.Background(), &Request{
		ID:        "booking-2", // 60 минут
		StartTime: ptr.Ptr(types.TimeString("5:30 PM")),
	})
	assert.ErrorIs(t, err, ErrOutsideBusinessHours)
}

func TestExecute_NotFound(t *testing.T) {
	uc, _ := newFixture()

	_, err := uc.Execute(context.Background(), &Request{
		ID:        "booking-99",
		StartTime: ptr.Ptr(types.TimeString("11:00 AM")),
	})
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestExecute_UnknownService(t *testing.T) {
	uc, _ := newFixture()

	_, err := uc.Execute(context.Background(), &Request{
		ID:         "booking-1",
		ServiceIDs: ptr.Ptr([]int64{42}),
	})
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestExecute_Validation(t *testing.T) {
	uc, _ := newFixture()

	tests := []struct {
		name string
		req  *Request
	}{
		{name: "empty id", req: &Request{}},
		{name: "empty services", req: &Request{ID: "booking-1", ServiceIDs: ptr.Ptr([]int64{})}},
		{name: "bad phone", req: &Request{ID: "booking-1", ContactPhone: ptr.Ptr("12345")}},
		{name: "non-ascii digits in phone", req: &Request{ID: "booking-1", ContactPhone: ptr.Ptr("١٢٣٤٥٦٧٨٩٠")}},
		{name: "blank name", req: &Request{ID: "booking-1", ContactName: ptr.Ptr("  ")}},
		{name: "unknown status", req: &Request{ID: "booking-1", Status: ptr.Ptr("pending")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestExecute_StatusChange(t *testing.T) {
	uc, repo := newFixture()

	resp, err := uc.Execute(context.Background(), &Request{
		ID:     "booking-1",
		Status: ptr.Ptr(string(domain.StatusConfirmed)),
	})
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusConfirmed), resp.Status)
	assert.Equal(t, domain.StatusConfirmed, repo.bookings["booking-1"].Status)
}
