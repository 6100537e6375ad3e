package main

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/m04kA/SMC-SalonService/internal/api/middleware"
	"github.com/m04kA/SMC-SalonService/internal/config"
	"github.com/m04kA/SMC-SalonService/pkg/metrics"
)

// routeHandlers обработчики всех операций HTTP API
type routeHandlers struct {
	getServices         http.HandlerFunc
	getAvailableSlots   http.HandlerFunc
	checkSlot           http.HandlerFunc
	createBooking       http.HandlerFunc
	getBookings         http.HandlerFunc
	getBooking          http.HandlerFunc
	updateBooking       http.HandlerFunc
	updateBookingStatus http.HandlerFunc
	deleteBooking       http.HandlerFunc
	createService       http.HandlerFunc
	updateService       http.HandlerFunc
	deleteService       http.HandlerFunc
}

// newRouter собирает роутер. Клиентам доступны каталог, слоты и создание
// бронирования; управление бронированиями и каталогом закрыто X-Admin-Token.
func newRouter(cfg *config.Config, metricsCollector *metrics.Metrics, h routeHandlers) *mux.Router {
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Каталог услуг
	api.HandleFunc("/services", h.getServices).Methods(http.MethodGet)

	// Доступные слоты рабочего дня
	api.HandleFunc("/available-slots", h.getAvailableSlots).Methods(http.MethodGet)
	api.HandleFunc("/available-slots/check", h.checkSlot).Methods(http.MethodGet)

	// Создание бронирования — клиентский поток
	api.HandleFunc("/bookings", h.createBooking).Methods(http.MethodPost)

	// ============================================================
	// ADMIN ROUTES (требуют X-Admin-Token header)
	// ============================================================

	admin := api.PathPrefix("").Subrouter()
	admin.Use(middleware.AdminAuth(cfg.Auth.AdminToken))

	// Управление бронированиями
	admin.HandleFunc("/bookings", h.getBookings).Methods(http.MethodGet)
	admin.HandleFunc("/bookings/{id}", h.getBooking).Methods(http.MethodGet)
	admin.HandleFunc("/bookings/{id}", h.updateBooking).Methods(http.MethodPut)
	admin.HandleFunc("/bookings/{id}/status", h.updateBookingStatus).Methods(http.MethodPatch)
	admin.HandleFunc("/bookings/{id}", h.deleteBooking).Methods(http.MethodDelete)

	// Управление каталогом услуг
	admin.HandleFunc("/services", h.createService).Methods(http.MethodPost)
	admin.HandleFunc("/services/{id}", h.updateService).Methods(http.MethodPut)
	admin.HandleFunc("/services/{id}", h.deleteService).Methods(http.MethodDelete)

	return r
}
