package update_booking

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SalonService/internal/api/handlers"
	"github.com/m04kA/SMC-SalonService/internal/domain"
	updateBooking "github.com/m04kA/SMC-SalonService/internal/usecase/update_booking"
	"github.com/m04kA/SMC-SalonService/pkg/types"
)

const (
	msgInvalidBody          = "некорректное тело запроса"
	msgInvalidDate          = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidTime          = "некорректный формат времени, ожидается h:mm AM/PM"
	msgInvalidInput         = "некорректные данные бронирования"
	msgBookingNotFound      = "бронирование не найдено"
	msgServiceNotFound      = "одна из выбранных услуг не найдена"
	msgSlotNotAvailable     = "выбранное время уже занято"
	msgOutsideBusinessHours = "запись не помещается в рабочие часы салона"
)

type Handler struct {
	useCase UpdateBookingUseCase
	logger  Logger
}

func NewHandler(useCase UpdateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PUT /api/v1/bookings/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req UpdateRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /bookings/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	ucReq := &updateBooking.Request{
		ID:           id,
		ServiceIDs:   req.ServiceIDs,
		ContactName:  req.ContactName,
		ContactPhone: req.ContactPhone,
		Status:       req.Status,
	}

	if req.Date != nil {
		date, err := time.Parse(domain.DateFormat, *req.Date)
		if err != nil {
			h.logger.Warn("PUT /bookings/{id} - Invalid date %q: %v", *req.Date, err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		ucReq.Date = &date
	}

	if req.StartTime != nil {
		startTime, err := types.NewTimeStringFromString(*req.StartTime)
		if err != nil {
			h.logger.Warn("PUT /bookings/{id} - Invalid start time %q: %v", *req.StartTime, err)
			handlers.RespondBadRequest(w, msgInvalidTime)
			return
		}
		ucReq.StartTime = &startTime
	}

	result, err := h.useCase.Execute(r.Context(), ucReq)
	if err != nil {
		switch {
		case errors.Is(err, updateBooking.ErrInvalidInput):
			h.logger.Warn("PUT /bookings/{id} - Invalid input for booking id=%s: %v", id, err)
			handlers.RespondBadRequest(w, msgInvalidInput)
		case errors.Is(err, updateBooking.ErrBookingNotFound):
			h.logger.Warn("PUT /bookings/{id} - Booking id=%s not found", id)
			handlers.RespondNotFound(w, msgBookingNotFound)
		case errors.Is(err, updateBooking.ErrServiceNotFound):
			h.logger.Warn("PUT /bookings/{id} - Unknown service for booking id=%s: %v", id, err)
			handlers.RespondBadRequest(w, msgServiceNotFound)
		case errors.Is(err, updateBooking.ErrOutsideBusinessHours):
			h.logger.Warn("PUT /bookings/{id} - Outside business hours for booking id=%s: %v", id, err)
			handlers.RespondBadRequest(w, msgOutsideBusinessHours)
		case errors.Is(err, updateBooking.ErrSlotNotAvailable):
			h.logger.Warn("PUT /bookings/{id} - Slot not available for booking id=%s: %v", id, err)
			handlers.RespondConflict(w, msgSlotNotAvailable)
		default:
			h.logger.Error("PUT /bookings/{id} - Failed to update booking id=%s: %v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /bookings/{id} - Updated booking id=%s", id)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
