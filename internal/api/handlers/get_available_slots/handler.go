package get_available_slots

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/m04kA/SMC-SalonService/internal/api/handlers"
	"github.com/m04kA/SMC-SalonService/internal/domain"
	getAvailableSlots "github.com/m04kA/SMC-SalonService/internal/usecase/get_available_slots"
)

const (
	msgInvalidDate     = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidDuration = "некорректная длительность, ожидается положительное число минут"
	msgInvalidInput    = "некорректные параметры запроса"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/available-slots?date=YYYY-MM-DD&duration=N&excludeBookingId=ID
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	date, err := time.Parse(domain.DateFormat, query.Get("date"))
	if err != nil {
		h.logger.Warn("GET /available-slots - Invalid date %q: %v", query.Get("date"), err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	duration, err := strconv.Atoi(query.Get("duration"))
	if err != nil || duration <= 0 {
		h.logger.Warn("GET /available-slots - Invalid duration %q", query.Get("duration"))
		handlers.RespondBadRequest(w, msgInvalidDuration)
		return
	}

	var excludeBookingID *string
	if id := query.Get("excludeBookingId"); id != "" {
		excludeBookingID = &id
	}

	result, err := h.useCase.Execute(r.Context(), &getAvailableSlots.Request{
		Date:             date,
		DurationMinutes:  duration,
		ExcludeBookingID: excludeBookingID,
	})
	if err != nil {
		if errors.Is(err, getAvailableSlots.ErrInvalidInput) {
			h.logger.Warn("GET /available-slots - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)
			return
		}
		h.logger.Error("GET /available-slots - Failed to get slots: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
