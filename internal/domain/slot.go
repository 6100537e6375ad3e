package domain

import "github.com/m04kA/SMC-SalonService/pkg/types"

// TimeSlot represents a candidate appointment start time within business hours.
// Derived on every query, never stored.
type TimeSlot struct {
	Time        types.TimeString
	IsAvailable bool
	Booking     *Booking // первое пересекающееся бронирование, если слот занят
}

// BusinessHours represents the salon's fixed working day configuration
type BusinessHours struct {
	OpenTime            types.TimeString
	CloseTime           types.TimeString
	SlotDurationMinutes int
}

// Contains reports whether the interval [start, start+duration) fits inside
// business hours. An interval ending exactly at closing time fits.
func (h BusinessHours) Contains(start types.TimeString, durationMinutes int) (bool, error) {
	if start.IsBefore(h.OpenTime) {
		return false, nil
	}
	end, err := start.AddMinutes(durationMinutes)
	if err != nil {
		return false, err
	}
	return !end.IsAfter(h.CloseTime), nil
}
