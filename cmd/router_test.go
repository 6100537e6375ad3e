package main

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-SalonService/internal/api/middleware"
	"github.com/m04kA/SMC-SalonService/internal/config"
)

const testAdminToken = "test-admin-token"

func newTestRouter(hits map[string]int) http.Handler {
	stub := func(name string) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			hits[name]++
			w.WriteHeader(http.StatusOK)
		}
	}

	cfg := &config.Config{
		Auth: config.AuthConfig{AdminToken: testAdminToken},
	}

	return newRouter(cfg, nil, routeHandlers{
		getServices:         stub("getServices"),
		getAvailableSlots:   stub("getAvailableSlots"),
		checkSlot:           stub("checkSlot"),
		createBooking:       stub("createBooking"),
		getBookings:         stub("getBookings"),
		getBooking:          stub("getBooking"),
		updateBooking:       stub("updateBooking"),
		updateBookingStatus: stub("updateBookingStatus"),
		deleteBooking:       stub("deleteBooking"),
		createService:       stub("createService"),
		updateService:       stub("updateService"),
		deleteService:       stub("deleteService"),
	})
}

func TestNewRouter_PublicRoutes(t *testing.T) {
	tests := []struct {
		name    string
		method  string
		path    string
		handler string
	}{
		{"список услуг", http.MethodGet, "/api/v1/services", "getServices"},
		{"доступные слоты", http.MethodGet, "/api/v1/available-slots", "getAvailableSlots"},
		{"проверка слота", http.MethodGet, "/api/v1/available-slots/check", "checkSlot"},
		{"создание бронирования", http.MethodPost, "/api/v1/bookings", "createBooking"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hits := map[string]int{}
			router := newTestRouter(hits)

			// Без токена администратора
			req := httptest.NewRequest(tt.method, tt.path, nil)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, 1, hits[tt.handler])
		})
	}
}

func TestNewRouter_AdminRoutesRequireToken(t *testing.T) {
	tests := []struct {
		name    string
		method  string
		path    string
		handler string
	}{
		{"список бронирований", http.MethodGet, "/api/v1/bookings", "getBookings"},
		{"бронирование по id", http.MethodGet, "/api/v1/bookings/booking-1", "getBooking"},
		{"изменение бронирования", http.MethodPut, "/api/v1/bookings/booking-1", "updateBooking"},
		{"изменение статуса", http.MethodPatch, "/api/v1/bookings/booking-1/status", "updateBookingStatus"},
		{"удаление бронирования", http.MethodDelete, "/api/v1/bookings/booking-1", "deleteBooking"},
		{"создание услуги", http.MethodPost, "/api/v1/services", "createService"},
		{"изменение услуги", http.MethodPut, "/api/v1/services/1", "updateService"},
		{"удаление услуги", http.MethodDelete, "/api/v1/services/1", "deleteService"},
	}

	for _, tt := range tests {
		t.Run(tt.name+" без токена", func(t *testing.T) {
			hits := map[string]int{}
			router := newTestRouter(hits)

			req := httptest.NewRequest(tt.method, tt.path, nil)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Equal(t, 0, hits[tt.handler])
		})

		t.Run(tt.name+" с токеном", func(t *testing.T) {
			hits := map[string]int{}
			router := newTestRouter(hits)

			req := httptest.NewRequest(tt.method, tt.path, nil)
			req.Header.Set(middleware.AdminTokenHeader, testAdminToken)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, 1, hits[tt.handler])
		})
	}
}
