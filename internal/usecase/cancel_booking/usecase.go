package cancel_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/TurfBookingService/internal/domain"
	bookingstorage "github.com/m04kA/TurfBookingService/internal/infra/storage/booking"
	"github.com/m04kA/TurfBookingService/internal/integrations/notifyservice"
)

// UseCase use case для отмены бронирования
// Отмена намеренно не транзакционна: смена статуса бронирования и
// освобождение слотов - отдельные шаги. Если освобождение не удалось,
// бронирование все равно считается отмененным, а расхождение логируется
type UseCase struct {
	bookingRepo BookingRepository
	slotRepo    SlotRepository
	notify      NotifyClient
	cache       CacheInvalidator // nil = кэширование выключено
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	slotRepo SlotRepository,
	notify NotifyClient,
	cache CacheInvalidator,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		slotRepo:    slotRepo,
		notify:      notify,
		cache:       cache,
		logger:      logger,
	}
}

// Execute выполняет use case отмены бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CancelBooking: booking=%d, requester=%d", req.BookingID, req.RequesterID)

	if req.BookingID <= 0 {
		return nil, fmt.Errorf("%w: booking id must be positive", ErrInvalidInput)
	}
	if req.RequesterID < 0 {
		return nil, fmt.Errorf("%w: requester id must be non-negative", ErrInvalidInput)
	}

	// 1. Получаем бронирование
	booking, err := uc.bookingRepo.GetByID(ctx, req.BookingID)
	if err != nil {
		if errors.Is(err, bookingstorage.ErrBookingNotFound) {
			uc.logger.Warn("CancelBooking: booking id=%d not found", req.BookingID)
			return nil, ErrBookingNotFound
		}
		uc.logger.Error("CancelBooking: failed to get booking id=%d: %v", req.BookingID, err)
		return nil, fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
	}

	// 2. Отменять бронирование может только его владелец
	// Гостевые бронирования (CustomerID = 0) отменяются только гостевым запросом
	if booking.CustomerID != req.RequesterID {
		uc.logger.Warn("CancelBooking: requester=%d is not owner of booking id=%d",
			req.RequesterID, booking.ID)
		return nil, ErrAccessDenied
	}

	// 3. Повторная отмена - ошибка, а не no-op
	if booking.IsCancelled() {
		uc.logger.Warn("CancelBooking: booking id=%d already cancelled", booking.ID)
		return nil, ErrAlreadyCancelled
	}

	// 4. Отменяем бронирование - это жесткая гарантия операции
	if err := uc.bookingRepo.Cancel(ctx, booking.ID); err != nil {
		if errors.Is(err, bookingstorage.ErrCannotCancel) {
			// Конкурентная отмена успела раньше
			uc.logger.Warn("CancelBooking: booking id=%d cancelled concurrently", booking.ID)
			return nil, ErrAlreadyCancelled
		}
		uc.logger.Error("CancelBooking: failed to cancel booking id=%d: %v", booking.ID, err)
		return nil, fmt.Errorf("%w: failed to cancel booking: %v", ErrInternal, err)
	}

	// 5. Освобождаем слоты - мягкая гарантия: частичный сбой не откатывает отмену
	slotsReleased := true
	released, err := uc.slotRepo.Release(ctx, booking.SlotIDs)
	if err != nil {
		slotsReleased = false
		uc.logger.Error("CancelBooking: booking id=%d cancelled, but slot release failed: %v",
			booking.ID, err)
	} else if released != int64(len(booking.SlotIDs)) {
		slotsReleased = false
		uc.logger.Warn("CancelBooking: booking id=%d cancelled, released %d of %d slots",
			booking.ID, released, len(booking.SlotIDs))
	}

	uc.logger.Info("CancelBooking: booking id=%d reference=%s cancelled", booking.ID, booking.Reference)

	// 6. Инвалидируем кэш доступности (ошибка не критична)
	uc.invalidateCache(ctx, booking.GroundID, booking.Date)

	// 7. Уведомление об отмене (fire-and-forget)
	_ = uc.notify.SendWithGracefulDegradation(ctx, &notifyservice.Event{
		Type:       notifyservice.EventBookingCancelled,
		CustomerID: booking.CustomerID,
		BookingID:  booking.ID,
		Reference:  booking.Reference,
		GroundName: booking.GroundName,
		Date:       booking.Date.Format(domain.DateFormat),
		Message:    fmt.Sprintf("Бронирование %s отменено", booking.Reference),
	})

	now := time.Now()
	return &Response{
		ID:            booking.ID,
		Reference:     booking.Reference,
		Status:        string(domain.StatusCancelled),
		PaymentStatus: string(domain.PaymentCancelled),
		SlotsReleased: slotsReleased,
		CancelledAt:   &now,
	}, nil
}

// invalidateCache сбрасывает все варианты кэша доступности на (площадка, дата)
func (uc *UseCase) invalidateCache(ctx context.Context, groundID int64, date time.Time) {
	if uc.cache == nil {
		return
	}
	pattern := fmt.Sprintf("slots:%d:%s:*", groundID, date.Format(domain.DateFormat))
	if err := uc.cache.DeletePattern(ctx, pattern); err != nil {
		uc.logger.Warn("CancelBooking: cache invalidation failed for %s: %v", pattern, err)
	}
}
