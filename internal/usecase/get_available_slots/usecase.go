package get_available_slots

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/TurfBookingService/internal/domain"
	groundRepo "github.com/m04kA/TurfBookingService/internal/infra/storage/ground"
)

// UseCase use case получения доступных слотов
// Лениво генерирует дневной каталог при первом обращении к паре (площадка, дата)
// и деградирует в advisory-режим при недоступности БД
type UseCase struct {
	slotRepo          SlotRepository
	groundRepo        GroundRepository
	txManager         TransactionManager
	cache             SlotCache // nil = кэширование выключено
	policy            domain.PricingPolicy
	fallbackBasePrice float64
	cacheTTL          time.Duration
	logger            Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	slotRepo SlotRepository,
	groundRepo GroundRepository,
	txManager TransactionManager,
	cache SlotCache,
	policy domain.PricingPolicy,
	fallbackBasePrice float64,
	cacheTTL time.Duration,
	logger Logger,
) *UseCase {
	return &UseCase{
		slotRepo:          slotRepo,
		groundRepo:        groundRepo,
		txManager:         txManager,
		cache:             cache,
		policy:            policy,
		fallbackBasePrice: fallbackBasePrice,
		cacheTTL:          cacheTTL,
		logger:            logger,
	}
}

// Execute выполняет use case получения доступных слотов
// Деградация: при недоступности БД возвращается advisory-список с той же
// ценовой политикой и отрицательными ID - ответ не авторитетен и не кэшируется.
// Ошибки "площадка не найдена" и "зона не найдена" не деградируют
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: ground=%d, date=%s, subVenue=%v",
		req.GroundID, req.Date.Format(domain.DateFormat), req.SubVenueID)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Пробуем кэш
	cacheKey := slotsCacheKey(req)
	if uc.cache != nil {
		var cached Response
		if err := uc.cache.Get(ctx, cacheKey, &cached); err == nil {
			uc.logger.Info("GetAvailableSlots: cache hit for %s", cacheKey)
			return &cached, nil
		}
	}

	// 3. Получаем площадку (базовая цена, зоны)
	ground, err := uc.groundRepo.GetByID(ctx, req.GroundID)
	if err != nil {
		if errors.Is(err, groundRepo.ErrGroundNotFound) {
			uc.logger.Warn("GetAvailableSlots: ground id=%d not found", req.GroundID)
			return nil, ErrGroundNotFound
		}
		// БД недоступна - advisory-режим
		uc.logger.Error("GetAvailableSlots: failed to get ground id=%d, degrading to advisory slots: %v",
			req.GroundID, err)
		return uc.advisoryResponse(req, uc.fallbackBasePrice)
	}

	// 4. Проверяем зону
	if err := validateSubVenueExists(ground, req.SubVenueID); err != nil {
		uc.logger.Warn("GetAvailableSlots: sub-venue id=%v not found in ground id=%d",
			req.SubVenueID, req.GroundID)
		return nil, err
	}

	// 5. Идемпотентно генерируем каталог на (площадка, дата)
	if err := uc.ensureSlotsExist(ctx, ground, req.Date); err != nil {
		uc.logger.Error("GetAvailableSlots: generation failed for ground=%d date=%s, degrading to advisory slots: %v",
			req.GroundID, req.Date.Format(domain.DateFormat), err)
		return uc.advisoryResponse(req, ground.BasePrice)
	}

	// 6. Читаем свободные слоты с фильтром по зоне
	slots, err := uc.slotRepo.GetByGroundAndDate(ctx, req.GroundID, req.Date, true, req.SubVenueID)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: read failed for ground=%d date=%s, degrading to advisory slots: %v",
			req.GroundID, req.Date.Format(domain.DateFormat), err)
		return uc.advisoryResponse(req, ground.BasePrice)
	}

	response := &Response{
		GroundID:   req.GroundID,
		Date:       req.Date,
		SubVenueID: req.SubVenueID,
		Advisory:   false,
		Slots:      toResponseSlots(slots),
	}

	// 7. Кэшируем авторитетный ответ (advisory никогда не кэшируется)
	if uc.cache != nil {
		if err := uc.cache.Set(ctx, cacheKey, response, uc.cacheTTL); err != nil {
			uc.logger.Warn("GetAvailableSlots: cache set failed for %s: %v", cacheKey, err)
		}
	}

	uc.logger.Info("GetAvailableSlots: %d free slots for ground=%d, date=%s",
		len(response.Slots), req.GroundID, req.Date.Format(domain.DateFormat))

	return response, nil
}

// EnsureSlotsExist идемпотентно генерирует каталог слотов на (площадка, дата)
// Публичный контракт каталога: генерация выполняется как побочный эффект
// первого чтения доступности
func (uc *UseCase) EnsureSlotsExist(ctx context.Context, groundID int64, date time.Time) error {
	ground, err := uc.groundRepo.GetByID(ctx, groundID)
	if err != nil {
		if errors.Is(err, groundRepo.ErrGroundNotFound) {
			return ErrGroundNotFound
		}
		return fmt.Errorf("%w: EnsureSlotsExist - failed to get ground: %v", ErrInternal, err)
	}

	return uc.ensureSlotsExist(ctx, ground, date)
}

// ensureSlotsExist генерирует каталог внутри сериализуемой транзакции
// Повторный вызов на том же (площадка, дата) ничего не меняет; конкурентную
// генерацию дополнительно страхует ON CONFLICT DO NOTHING в репозитории
func (uc *UseCase) ensureSlotsExist(ctx context.Context, ground *domain.Ground, date time.Time) error {
	count, err := uc.slotRepo.CountByGroundAndDate(ctx, ground.ID, date)
	if err != nil {
		return fmt.Errorf("%w: ensureSlotsExist - count slots: %v", ErrInternal, err)
	}
	if count > 0 {
		return nil
	}

	return uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// Перепроверяем внутри транзакции - каталог мог появиться параллельно
		count, err := uc.slotRepo.CountByGroundAndDate(txCtx, ground.ID, date)
		if err != nil {
			return fmt.Errorf("%w: ensureSlotsExist - recount slots: %v", ErrInternal, err)
		}
		if count > 0 {
			return nil
		}

		catalog, err := buildCatalog(ground, date, uc.policy)
		if err != nil {
			return err
		}

		if err := uc.slotRepo.CreateBatch(txCtx, catalog); err != nil {
			return fmt.Errorf("%w: ensureSlotsExist - create batch: %v", ErrInternal, err)
		}

		uc.logger.Info("EnsureSlotsExist: generated %d slots for ground=%d, date=%s",
			len(catalog), ground.ID, date.Format(domain.DateFormat))
		return nil
	})
}

// advisoryResponse строит неавторитетный ответ, синтезированный локально
func (uc *UseCase) advisoryResponse(req *Request, basePrice float64) (*Response, error) {
	slots, err := buildAdvisorySlots(uc.policy, basePrice)
	if err != nil {
		return nil, err
	}

	return &Response{
		GroundID:   req.GroundID,
		Date:       req.Date,
		SubVenueID: req.SubVenueID,
		Advisory:   true,
		Slots:      slots,
	}, nil
}

// slotsCacheKey строит ключ кэша доступности
// Инвалидация по шаблону slots:{ground}:{date}:* выполняется при
// бронировании и отмене
func slotsCacheKey(req *Request) string {
	subVenue := "all"
	if req.SubVenueID != nil {
		subVenue = fmt.Sprintf("%d", *req.SubVenueID)
	}
	return fmt.Sprintf("slots:%d:%s:%s", req.GroundID, req.Date.Format(domain.DateFormat), subVenue)
}
