package get_ground_bookings

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/TurfBookingService/internal/api/handlers"
	"github.com/m04kA/TurfBookingService/internal/domain"
	"github.com/m04kA/TurfBookingService/internal/service/bookings"
	"github.com/m04kA/TurfBookingService/internal/service/bookings/models"
)

const (
	msgInvalidGroundID = "некорректный ID площадки"
	msgInvalidDate     = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidFilter   = "некорректные параметры фильтрации"
	msgGroundNotFound  = "площадка не найдена"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/grounds/{groundId}/bookings
// Query params: date (optional, YYYY-MM-DD), status (optional), includeCancelled (optional)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	groundIDStr := vars["groundId"]

	groundID, err := strconv.ParseInt(groundIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /grounds/{groundId}/bookings - Invalid ground ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidGroundID)
		return
	}

	query := r.URL.Query()

	var date *time.Time
	if dateStr := query.Get("date"); dateStr != "" {
		parsed, err := time.Parse(domain.DateFormat, dateStr)
		if err != nil {
			h.logger.Warn("GET /grounds/{groundId}/bookings - Invalid date: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		date = &parsed
	}

	var status *string
	if statusStr := query.Get("status"); statusStr != "" {
		status = &statusStr
	}

	includeCancelled := query.Get("includeCancelled") == "true"

	serviceReq := &models.GetGroundBookingsRequest{
		GroundID:         groundID,
		Date:             date,
		Status:           status,
		IncludeCancelled: includeCancelled,
	}

	result, err := h.service.GetGroundBookings(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrGroundNotFound):
			h.logger.Warn("GET /grounds/{groundId}/bookings - Ground not found: ground_id=%d", groundID)
			handlers.RespondNotFound(w, msgGroundNotFound)

		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /grounds/{groundId}/bookings - Invalid filter: ground_id=%d, error=%v",
				groundID, err)
			handlers.RespondBadRequest(w, msgInvalidFilter)

		default:
			h.logger.Error("GET /grounds/{groundId}/bookings - Failed to get bookings: ground_id=%d, error=%v",
				groundID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /grounds/{groundId}/bookings - Bookings retrieved: ground_id=%d, count=%d",
		groundID, len(result.Bookings))
	handlers.RespondJSON(w, http.StatusOK, result.Bookings)
}
