package update_booking_status

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SalonService/internal/api/handlers"
	"github.com/m04kA/SMC-SalonService/internal/service/bookings"
)

const (
	msgInvalidBody     = "некорректное тело запроса"
	msgInvalidStatus   = "некорректный статус, ожидается confirmed или unconfirmed"
	msgBookingNotFound = "бронирование не найдено"
)

type Handler struct {
	service BookingsService
	logger  Logger
}

func NewHandler(service BookingsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/bookings/{id}/status
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req UpdateStatusRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /bookings/{id}/status - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	result, err := h.service.UpdateStatus(r.Context(), id, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("PATCH /bookings/{id}/status - Invalid status %q for booking id=%s", req.Status, id)
			handlers.RespondBadRequest(w, msgInvalidStatus)
		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("PATCH /bookings/{id}/status - Booking id=%s not found", id)
			handlers.RespondNotFound(w, msgBookingNotFound)
		default:
			h.logger.Error("PATCH /bookings/{id}/status - Failed to update booking id=%s: %v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /bookings/{id}/status - Updated booking id=%s to status=%s", id, result.Status)
	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(result))
}
