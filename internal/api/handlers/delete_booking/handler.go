package delete_booking

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SalonService/internal/api/handlers"
	"github.com/m04kA/SMC-SalonService/internal/service/bookings"
)

const msgBookingNotFound = "бронирование не найдено"

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

// Handle DELETE /api/v1/bookings/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := h.service.Delete(r.Context(), id); err != nil {
		if errors.Is(err, bookings.ErrBookingNotFound) {
			h.logger.Warn("DELETE /bookings/{id} - Booking id=%s not found", id)
			handlers.RespondNotFound(w, msgBookingNotFound)
			return
		}
		h.logger.Error("DELETE /bookings/{id} - Failed to delete booking id=%s: %v", id, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("DELETE /bookings/{id} - Deleted booking id=%s", id)
	handlers.RespondNoContent(w)
}
