package models

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// ServiceEntry снапшот услуги внутри бронирования
type ServiceEntry struct {
	ID              int64
	Name            string
	Price           float64
	DurationMinutes int
}

// BookingResponse представление бронирования для внешнего слоя
type BookingResponse struct {
	ID              string
	Services        []ServiceEntry
	Date            time.Time
	StartTime       string
	DurationMinutes int
	TotalPrice      float64
	ContactName     string
	ContactPhone    string
	Status          string
	CreatedAt       time.Time
}

// BookingListResponse список бронирований в порядке создания
type BookingListResponse struct {
	Bookings []BookingResponse
}

// FromDomainBooking конвертирует доменное бронирование в response-модель
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	services := make([]ServiceEntry, 0, len(b.Services))
	for _, s := range b.Services {
		services = append(services, ServiceEntry{
			ID:              s.ID,
			Name:            s.Name,
			Price:           s.Price,
			DurationMinutes: s.DurationMinutes,
		})
	}

	return &BookingResponse{
		ID:              b.ID,
		Services:        services,
		Date:            b.Appointment.Date,
		StartTime:       b.Appointment.Time.String(),
		DurationMinutes: b.Appointment.DurationMinutes,
		TotalPrice:      domain.TotalPrice(b.Services),
		ContactName:     b.Contact.Name,
		ContactPhone:    b.Contact.Phone,
		Status:          string(b.Status),
		CreatedAt:       b.CreatedAt,
	}
}

// FromDomainBookingList конвертирует список доменных бронирований
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	out := make([]BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, *FromDomainBooking(b))
	}
	return &BookingListResponse{Bookings: out}
}

// ToDomainBookingStatus валидирует и конвертирует статус из строки
func ToDomainBookingStatus(s string) (domain.BookingStatus, error) {
	status := domain.BookingStatus(s)
	if !domain.IsValidStatus(status) {
		return "", fmt.Errorf("unknown booking status: %q", s)
	}
	return status, nil
}
