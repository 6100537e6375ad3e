package domain

import (
	"time"

	"github.com/m04kA/SMC-SalonService/pkg/types"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusConfirmed   BookingStatus = "confirmed"
	StatusUnconfirmed BookingStatus = "unconfirmed"
)

// IsValidStatus returns true if s is a known booking status
func IsValidStatus(s BookingStatus) bool {
	return s == StatusConfirmed || s == StatusUnconfirmed
}

// Appointment represents the scheduled part of a booking.
// Date carries only the calendar day, the time-of-day lives in Time.
type Appointment struct {
	Date            time.Time
	Time            types.TimeString
	DurationMinutes int
}

// Interval returns the half-open appointment interval [start, end)
func (a *Appointment) Interval() (start, end time.Time, err error) {
	start, err = a.Time.On(a.Date)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end = start.Add(time.Duration(a.DurationMinutes) * time.Minute)
	return start, end, nil
}

// Contact represents client contact details embedded in a booking
type Contact struct {
	Name  string
	Phone string
}

// Booking represents a client booking in the system
type Booking struct {
	ID          string
	Services    []Service // снапшоты услуг на момент бронирования, не ссылки на каталог
	Appointment Appointment
	Contact     Contact
	Status      BookingStatus
	CreatedAt   time.Time
}

// IsConfirmed returns true if the booking has been confirmed by an administrator
func (b *Booking) IsConfirmed() bool {
	return b.Status == StatusConfirmed
}

// IsOnDay returns true if the booking's appointment falls on the given calendar day
func (b *Booking) IsOnDay(date time.Time) bool {
	y1, m1, d1 := b.Appointment.Date.Date()
	y2, m2, d2 := date.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// OverlapsInterval reports whether the booking's appointment interval overlaps
// the half-open interval [start, end). Touching endpoints are not an overlap:
// a booking ending at 10:30 does not conflict with a slot starting at 10:30.
func (b *Booking) OverlapsInterval(start, end time.Time) (bool, error) {
	bStart, bEnd, err := b.Appointment.Interval()
	if err != nil {
		return false, err
	}
	return bStart.Before(end) && start.Before(bEnd), nil
}

// ReferencesService returns true if the booking embeds a service with the given id
func (b *Booking) ReferencesService(serviceID int64) bool {
	for _, s := range b.Services {
		if s.ID == serviceID {
			return true
		}
	}
	return false
}

// Clone возвращает глубокую копию бронирования
func (b *Booking) Clone() *Booking {
	clone := *b
	clone.Services = CloneServices(b.Services)
	return &clone
}
