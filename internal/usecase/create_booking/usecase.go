package create_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/TurfBookingService/internal/domain"
	groundstorage "github.com/m04kA/TurfBookingService/internal/infra/storage/ground"
	slotstorage "github.com/m04kA/TurfBookingService/internal/infra/storage/slot"
	"github.com/m04kA/TurfBookingService/internal/integrations/notifyservice"
)

// UseCase use case для создания бронирования
// Вставка бронирования, связей и пометка слотов выполняются одной
// сериализуемой транзакцией: из двух конкурентных запросов на
// пересекающиеся слоты побеждает ровно один, проигравший получает
// ErrSlotNotAvailable
type UseCase struct {
	slotRepo    SlotRepository
	bookingRepo BookingRepository
	groundRepo  GroundRepository
	txManager   TransactionManager
	notify      NotifyClient
	cache       CacheInvalidator // nil = кэширование выключено
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	slotRepo SlotRepository,
	bookingRepo BookingRepository,
	groundRepo GroundRepository,
	txManager TransactionManager,
	notify NotifyClient,
	cache CacheInvalidator,
	logger Logger,
) *UseCase {
	return &UseCase{
		slotRepo:    slotRepo,
		bookingRepo: bookingRepo,
		groundRepo:  groundRepo,
		txManager:   txManager,
		notify:      notify,
		cache:       cache,
		logger:      logger,
	}
}

// Execute выполняет use case создания бронирования
// Путь записи не имеет режима деградации: при недоступности БД операция
// падает с ошибкой, бронирование никогда не имитируется на клиенте
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: ground=%d, date=%s, slots=%v, customer=%v",
		req.GroundID, req.Date.Format(domain.DateFormat), req.SlotIDs, req.CustomerID)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Эффективный ID клиента (гостевой сентинел для анонимных запросов)
	customerID := resolveCustomerID(req.CustomerID)
	if customerID == domain.GuestCustomerID {
		uc.logger.Info("CreateBooking: guest booking for ground=%d", req.GroundID)
	}

	// 3. Получаем площадку (денормализация названия в ответ)
	ground, err := uc.groundRepo.GetByID(ctx, req.GroundID)
	if err != nil {
		if errors.Is(err, groundstorage.ErrGroundNotFound) {
			uc.logger.Warn("CreateBooking: ground id=%d not found", req.GroundID)
			return nil, ErrGroundNotFound
		}
		uc.logger.Error("CreateBooking: failed to get ground id=%d: %v", req.GroundID, err)
		return nil, fmt.Errorf("%w: failed to get ground: %v", ErrInternal, err)
	}

	var result *domain.Booking
	var reserved []*domain.Slot

	// 4. Резервируем слоты в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 4.1. Читаем слоты с блокировкой строк (FOR UPDATE)
		slots, err := uc.slotRepo.GetByIDs(txCtx, req.SlotIDs)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get slots: %v", err)
			return fmt.Errorf("%w: failed to get slots: %v", ErrInternal, err)
		}

		// 4.2. Все запрошенные слоты должны существовать
		if len(slots) != len(req.SlotIDs) {
			uc.logger.Warn("CreateBooking: %d of %d requested slots missing",
				len(req.SlotIDs)-len(slots), len(req.SlotIDs))
			return ErrSlotNotFound
		}

		// 4.3. Слоты должны принадлежать запрошенной площадке и дате
		if err := validateSlotsMatch(slots, req); err != nil {
			uc.logger.Warn("CreateBooking: %v", err)
			return err
		}

		// 4.4. Ни один слот не должен быть занят
		totalAmount := 0.0
		for _, s := range slots {
			if s.IsBooked {
				uc.logger.Warn("CreateBooking: slot id=%d already booked", s.ID)
				return ErrSlotNotAvailable
			}
			totalAmount += s.Price
		}

		// 4.5. Создаем бронирование
		booking := &domain.Booking{
			Reference:     uuid.NewString(),
			GroundID:      req.GroundID,
			CustomerID:    customerID,
			Date:          req.Date,
			SlotIDs:       req.SlotIDs,
			GameTags:      req.GameTags,
			TotalAmount:   totalAmount,
			Status:        domain.StatusPending,
			PaymentStatus: domain.PaymentPending,
			GroundName:    ground.Name,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		// 4.6. Связываем бронирование со слотами
		if err := uc.bookingRepo.AddSlotLinks(txCtx, created.ID, req.SlotIDs); err != nil {
			uc.logger.Error("CreateBooking: failed to add slot links: %v", err)
			return fmt.Errorf("%w: failed to add slot links: %v", ErrInternal, err)
		}

		// 4.7. Условно помечаем слоты занятыми
		// Если конкурент успел захватить хотя бы один слот, обновится меньше
		// строк, чем запрошено - транзакция целиком откатывается вместе с
		// созданным бронированием и связями
		if err := uc.slotRepo.MarkBooked(txCtx, req.SlotIDs); err != nil {
			if errors.Is(err, slotstorage.ErrSlotAlreadyBooked) {
				uc.logger.Warn("CreateBooking: slots taken concurrently: %v", err)
				return ErrSlotNotAvailable
			}
			uc.logger.Error("CreateBooking: failed to mark slots booked: %v", err)
			return fmt.Errorf("%w: failed to mark slots booked: %v", ErrInternal, err)
		}

		result = created
		reserved = slots
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: booking id=%d reference=%s created, total=%.2f",
		result.ID, result.Reference, result.TotalAmount)

	// 5. Инвалидируем кэш доступности (ошибка не критична)
	uc.invalidateCache(ctx, req.GroundID, req.Date)

	// 6. Уведомление об успехе (fire-and-forget)
	_ = uc.notify.SendWithGracefulDegradation(ctx, &notifyservice.Event{
		Type:       notifyservice.EventBookingCreated,
		CustomerID: result.CustomerID,
		BookingID:  result.ID,
		Reference:  result.Reference,
		GroundName: ground.Name,
		Date:       result.Date.Format(domain.DateFormat),
		Message:    fmt.Sprintf("Бронирование %s создано, к оплате %.2f", result.Reference, result.TotalAmount),
	})

	return toResponse(result, ground.Name, reserved), nil
}

// invalidateCache сбрасывает все варианты кэша доступности на (площадка, дата)
func (uc *UseCase) invalidateCache(ctx context.Context, groundID int64, date time.Time) {
	if uc.cache == nil {
		return
	}
	pattern := fmt.Sprintf("slots:%d:%s:*", groundID, date.Format(domain.DateFormat))
	if err := uc.cache.DeletePattern(ctx, pattern); err != nil {
		uc.logger.Warn("CreateBooking: cache invalidation failed for %s: %v", pattern, err)
	}
}

// toResponse собирает гидрированный ответ
func toResponse(b *domain.Booking, groundName string, slots []*domain.Slot) *Response {
	reservedSlots := make([]ReservedSlot, len(slots))
	for i, s := range slots {
		reservedSlots[i] = ReservedSlot{
			ID:        s.ID,
			StartTime: s.StartTime,
			EndTime:   s.EndTime,
			Price:     s.Price,
		}
	}

	return &Response{
		ID:            b.ID,
		Reference:     b.Reference,
		GroundID:      b.GroundID,
		CustomerID:    b.CustomerID,
		Date:          b.Date,
		TotalAmount:   b.TotalAmount,
		Status:        string(b.Status),
		PaymentStatus: string(b.PaymentStatus),
		GameTags:      b.GameTags,
		GroundName:    groundName,
		Slots:         reservedSlots,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}
}
