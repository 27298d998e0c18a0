package check_consecutive

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/TurfBookingService/internal/api/handlers"
	checkConsecutive "github.com/m04kA/TurfBookingService/internal/usecase/check_consecutive"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidGroundID    = "некорректный ID площадки"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidInput       = "некорректные параметры проверки"
	msgSlotNotFound       = "один или несколько слотов не найдены"
	msgSlotMismatch       = "слоты не относятся к выбранной площадке или дате"
)

type Handler struct {
	useCase CheckConsecutiveUseCase
	logger  Logger
}

func NewHandler(useCase CheckConsecutiveUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/grounds/{groundId}/slots/check-consecutive
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	groundIDStr := vars["groundId"]

	groundID, err := strconv.ParseInt(groundIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("POST /grounds/{id}/slots/check-consecutive - Invalid ground ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidGroundID)
		return
	}

	var req CheckConsecutiveRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /grounds/{id}/slots/check-consecutive - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(groundID)
	if err != nil {
		h.logger.Warn("POST /grounds/{id}/slots/check-consecutive - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, checkConsecutive.ErrSlotNotFound):
			h.logger.Warn("POST /grounds/{id}/slots/check-consecutive - Slots not found: ground_id=%d, slot_ids=%v",
				groundID, req.SlotIDs)
			handlers.RespondNotFound(w, msgSlotNotFound)

		case errors.Is(err, checkConsecutive.ErrSlotMismatch):
			h.logger.Warn("POST /grounds/{id}/slots/check-consecutive - Slot mismatch: ground_id=%d, slot_ids=%v",
				groundID, req.SlotIDs)
			handlers.RespondBadRequest(w, msgSlotMismatch)

		case errors.Is(err, checkConsecutive.ErrInvalidInput):
			h.logger.Warn("POST /grounds/{id}/slots/check-consecutive - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /grounds/{id}/slots/check-consecutive - Check failed: ground_id=%d, error=%v",
				groundID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("POST /grounds/{id}/slots/check-consecutive - Checked: ground_id=%d, consecutive=%t",
		groundID, result.Consecutive)
	handlers.RespondJSON(w, http.StatusOK, response)
}
