package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/TurfBookingService/internal/api/handlers"
	"github.com/m04kA/TurfBookingService/internal/api/middleware"
	createBooking "github.com/m04kA/TurfBookingService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты бронирования, ожидается YYYY-MM-DD"
	msgInvalidInput       = "некорректные параметры бронирования"
	msgGroundNotFound     = "площадка не найдена"
	msgSlotNotFound       = "один или несколько слотов не найдены"
	msgSlotNotAvailable   = "один или несколько слотов уже заняты"
	msgSlotMismatch       = "слоты не относятся к выбранной площадке или дате"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
// Заголовок X-User-ID опционален: без него бронирование гостевое
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// ID клиента из контекста (OptionalAuth), гость - если заголовка нет
	var customerID *int64
	if id, ok := middleware.GetUserID(r.Context()); ok {
		customerID = &id
	}

	useCaseReq, err := req.ToUseCaseRequest(customerID)
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrSlotNotAvailable):
			h.logger.Warn("POST /bookings - Slots not available: ground_id=%d, slot_ids=%v",
				req.GroundID, req.SlotIDs)
			handlers.RespondError(w, http.StatusConflict, msgSlotNotAvailable)

		case errors.Is(err, createBooking.ErrGroundNotFound):
			h.logger.Warn("POST /bookings - Ground not found: ground_id=%d", req.GroundID)
			handlers.RespondNotFound(w, msgGroundNotFound)

		case errors.Is(err, createBooking.ErrSlotNotFound):
			h.logger.Warn("POST /bookings - Slots not found: ground_id=%d, slot_ids=%v",
				req.GroundID, req.SlotIDs)
			handlers.RespondNotFound(w, msgSlotNotFound)

		case errors.Is(err, createBooking.ErrSlotMismatch):
			h.logger.Warn("POST /bookings - Slot mismatch: ground_id=%d, slot_ids=%v",
				req.GroundID, req.SlotIDs)
			handlers.RespondBadRequest(w, msgSlotMismatch)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: ground_id=%d, error=%v",
				req.GroundID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("POST /bookings - Booking created: booking_id=%d, reference=%s, ground_id=%d, customer_id=%d",
		result.ID, result.Reference, result.GroundID, result.CustomerID)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
