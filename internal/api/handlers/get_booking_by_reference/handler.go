package get_booking_by_reference

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/TurfBookingService/internal/api/handlers"
	"github.com/m04kA/TurfBookingService/internal/api/middleware"
	"github.com/m04kA/TurfBookingService/internal/domain"
	"github.com/m04kA/TurfBookingService/internal/service/bookings"
)

const (
	msgInvalidReference = "некорректный код бронирования"
	msgNotFound         = "бронирование не найдено"
	msgForbidden        = "доступ запрещен"
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

// Handle GET /api/v1/bookings/by-reference/{reference}
// Доступ по коду бронирования: гостевые бронирования читаются без
// авторизации, бронирования клиентов - только владельцем
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	reference := vars["reference"]

	if reference == "" {
		h.logger.Warn("GET /bookings/by-reference/{reference} - Empty reference")
		handlers.RespondBadRequest(w, msgInvalidReference)
		return
	}

	// Заголовок авторизации не обязателен: без него запрос гостевой
	requesterID := domain.GuestCustomerID
	if id, ok := middleware.GetUserID(r.Context()); ok {
		requesterID = id
	}

	booking, err := h.service.GetByReference(r.Context(), reference, requesterID)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("GET /bookings/by-reference/{reference} - Booking not found: reference=%s", reference)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, bookings.ErrAccessDenied):
			h.logger.Warn("GET /bookings/by-reference/{reference} - Access denied: reference=%s, requester=%d",
				reference, requesterID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /bookings/by-reference/{reference} - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidReference)

		default:
			h.logger.Error("GET /bookings/by-reference/{reference} - Failed to get booking: reference=%s, error=%v",
				reference, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /bookings/by-reference/{reference} - Booking retrieved: booking_id=%d, requester=%d",
		booking.ID, requesterID)
	handlers.RespondJSON(w, http.StatusOK, booking)
}
