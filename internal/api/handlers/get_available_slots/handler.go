package get_available_slots

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/TurfBookingService/internal/api/handlers"
	getAvailableSlots "github.com/m04kA/TurfBookingService/internal/usecase/get_available_slots"
)

const (
	msgInvalidGroundID   = "некорректный ID площадки"
	msgInvalidSubVenueID = "некорректный ID зоны"
	msgMissingDate       = "дата обязательна"
	msgInvalidDate       = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgGroundNotFound    = "площадка не найдена"
	msgSubVenueNotFound  = "зона не найдена"
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

// Handle GET /api/v1/grounds/{groundId}/available-slots
// Query params: date (required, YYYY-MM-DD), subVenueId (optional)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	groundIDStr := vars["groundId"]
	groundID, err := strconv.ParseInt(groundIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /grounds/{id}/available-slots - Invalid ground ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidGroundID)
		return
	}

	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /grounds/{id}/available-slots - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	// Извлекаем subVenueId из query параметров (опционально)
	var subVenueID *int64
	if subVenueIDStr := r.URL.Query().Get("subVenueId"); subVenueIDStr != "" {
		id, err := strconv.ParseInt(subVenueIDStr, 10, 64)
		if err != nil {
			h.logger.Warn("GET /grounds/{id}/available-slots - Invalid sub-venue ID: %v", err)
			handlers.RespondBadRequest(w, msgInvalidSubVenueID)
			return
		}
		subVenueID = &id
	}

	useCaseReq, err := ToUseCaseRequest(groundID, dateStr, subVenueID)
	if err != nil {
		h.logger.Warn("GET /grounds/{id}/available-slots - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrGroundNotFound):
			h.logger.Warn("GET /grounds/{id}/available-slots - Ground not found: ground_id=%d", groundID)
			handlers.RespondNotFound(w, msgGroundNotFound)

		case errors.Is(err, getAvailableSlots.ErrSubVenueNotFound):
			h.logger.Warn("GET /grounds/{id}/available-slots - Sub-venue not found: ground_id=%d, sub_venue_id=%v",
				groundID, subVenueID)
			handlers.RespondNotFound(w, msgSubVenueNotFound)

		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /grounds/{id}/available-slots - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)

		default:
			h.logger.Error("GET /grounds/{id}/available-slots - Failed to get slots: ground_id=%d, error=%v",
				groundID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("GET /grounds/{id}/available-slots - Slots retrieved: ground_id=%d, advisory=%t, slots_count=%d",
		groundID, result.Advisory, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, response)
}
