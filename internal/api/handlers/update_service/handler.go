package update_service

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SalonService/internal/api/handlers"
	"github.com/m04kA/SMC-SalonService/internal/service/catalog"
)

const (
	msgInvalidBody      = "некорректное тело запроса"
	msgInvalidServiceID = "некорректный идентификатор услуги"
	msgInvalidInput     = "некорректные данные услуги"
	msgServiceNotFound  = "услуга не найдена"
)

type Handler struct {
	service CatalogService
	logger  Logger
}

func NewHandler(service CatalogService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/services/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	rawID := mux.Vars(r)["id"]
	id, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil {
		h.logger.Warn("PUT /services/{id} - Invalid service id %q", rawID)
		handlers.RespondBadRequest(w, msgInvalidServiceID)
		return
	}

	var req UpdateRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /services/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	result, err := h.service.Update(r.Context(), id, req.ToServiceRequest())
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrInvalidInput):
			h.logger.Warn("PUT /services/{id} - Invalid input for service id=%d: %v", id, err)
			handlers.RespondBadRequest(w, msgInvalidInput)
		case errors.Is(err, catalog.ErrServiceNotFound):
			h.logger.Warn("PUT /services/{id} - Service id=%d not found", id)
			handlers.RespondNotFound(w, msgServiceNotFound)
		default:
			h.logger.Error("PUT /services/{id} - Failed to update service id=%d: %v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /services/{id} - Updated service id=%d", id)
	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(result))
}
