package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonService/pkg/types"
)

func testBooking(date time.Time, start types.TimeString, durationMinutes int) *Booking {
	return &Booking{
		ID: "booking-test",
		Appointment: Appointment{
			Date:            date,
			Time:            start,
			DurationMinutes: durationMinutes,
		},
	}
}

func TestBooking_OverlapsInterval(t *testing.T) {
	date := time.Date(2025, time.June, 10, 0, 0, 0, 0, time.UTC)
	b := testBooking(date, "10:00 AM", 45) // занят интервал [10:00, 10:45)

	tests := []struct {
		name     string
		start    types.TimeString
		duration int
		want     bool
	}{
		{name: "identical interval", start: "10:00 AM", duration: 45, want: true},
		{name: "starts inside", start: "10:30 AM", duration: 30, want: true},
		{name: "ends inside", start: "9:30 AM", duration: 45, want: true},
		{name: "covers fully", start: "9:00 AM", duration: 180, want: true},
		{name: "touching end is not overlap", start: "10:45 AM", duration: 30, want: false},
		{name: "touching start is not overlap", start: "9:00 AM", duration: 60, want: false},
		{name: "disjoint before", start: "9:00 AM", duration: 30, want: false},
		{name: "disjoint after", start: "2:00 PM", duration: 30, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, err := tt.start.On(date)
			require.NoError(t, err)
			end := start.Add(time.Duration(tt.duration) * time.Minute)

			got, err := b.OverlapsInterval(start, end)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBooking_IsOnDay(t *testing.T) {
	date := time.Date(2025, time.June, 10, 0, 0, 0, 0, time.UTC)
	b := testBooking(date, "10:00 AM", 30)

	assert.True(t, b.IsOnDay(date))
	// время суток в дате сравнения игнорируется
	assert.True(t, b.IsOnDay(time.Date(2025, time.June, 10, 18, 45, 0, 0, time.UTC)))
	assert.False(t, b.IsOnDay(date.AddDate(0, 0, 1)))
}

func TestBooking_ReferencesService(t *testing.T) {
	b := testBooking(time.Now(), "10:00 AM", 30)
	b.Services = []Service{
		{ID: 1, Name: "Мужская стрижка", Price: 20000, DurationMinutes: 30},
		{ID: 3, Name: "Укладка", Price: 10000, DurationMinutes: 45},
	}

	assert.True(t, b.ReferencesService(1))
	assert.True(t, b.ReferencesService(3))
	assert.False(t, b.ReferencesService(2))
}

func TestBooking_Clone(t *testing.T) {
	b := testBooking(time.Now(), "10:00 AM", 30)
	b.Services = []Service{{ID: 1, Name: "Маникюр", Price: 20000, DurationMinutes: 30}}

	clone := b.Clone()
	clone.Services[0].Name = "изменено"
	clone.Status = StatusConfirmed

	assert.Equal(t, "Маникюр", b.Services[0].Name)
	assert.NotEqual(t, b.Status, clone.Status)
}

func TestTotals(t *testing.T) {
	services := []Service{
		{ID: 1, Price: 20000, DurationMinutes: 30},
		{ID: 2, Price: 15000, DurationMinutes: 15},
		{ID: 3, Price: 10000, DurationMinutes: 45},
	}

	assert.Equal(t, 90, TotalDuration(services))
	assert.Equal(t, float64(45000), TotalPrice(services))
	assert.Equal(t, 0, TotalDuration(nil))
	assert.Equal(t, float64(0), TotalPrice(nil))
}

func TestServiceUpdate_ApplyTo(t *testing.T) {
	svc := Service{ID: 1, Name: "Педикюр", Price: 20000, DurationMinutes: 60}

	newPrice := 25000.0
	update := ServiceUpdate{Price: &newPrice}
	update.ApplyTo(&svc)

	assert.Equal(t, "Педикюр", svc.Name)
	assert.Equal(t, 25000.0, svc.Price)
	assert.Equal(t, 60, svc.DurationMinutes)
}

func TestBusinessHours_Contains(t *testing.T) {
	hours := DefaultBusinessHours()

	tests := []struct {
		name     string
		start    types.TimeString
		duration int
		want     bool
	}{
		{name: "fits in the middle", start: "10:00 AM", duration: 60, want: true},
		{name: "ends exactly at closing", start: "5:00 PM", duration: 60, want: true},
		{name: "runs past closing", start: "5:30 PM", duration: 60, want: false},
		{name: "starts before opening", start: "8:30 AM", duration: 30, want: false},
		{name: "whole day", start: "9:00 AM", duration: 540, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := hours.Contains(tt.start, tt.duration)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
