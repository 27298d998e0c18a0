package check_consecutive

import (
	"context"
	"fmt"
	"sort"

	"github.com/m04kA/TurfBookingService/internal/domain"
)

// UseCase use case для проверки непрерывности набора слотов
// Чтение без блокировок и транзакций: проверка не резервирует слоты
// и не мешает конкурентным бронированиям
type UseCase struct {
	slotRepo SlotRepository
	logger   Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(slotRepo SlotRepository, logger Logger) *UseCase {
	return &UseCase{
		slotRepo: slotRepo,
		logger:   logger,
	}
}

// Execute выполняет use case проверки непрерывности
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CheckConsecutive: validation failed: %v", err)
		return nil, err
	}

	// Один слот непрерывен тривиально, слоты не читаем
	if len(req.SlotIDs) == 1 {
		return &Response{Consecutive: true}, nil
	}

	slots, err := uc.slotRepo.GetByIDs(ctx, req.SlotIDs)
	if err != nil {
		uc.logger.Error("CheckConsecutive: failed to get slots: %v", err)
		return nil, fmt.Errorf("%w: failed to get slots: %v", ErrInternal, err)
	}

	if len(slots) != len(req.SlotIDs) {
		uc.logger.Warn("CheckConsecutive: %d of %d requested slots missing",
			len(req.SlotIDs)-len(slots), len(req.SlotIDs))
		return nil, ErrSlotNotFound
	}

	y, m, d := req.Date.Date()
	for _, s := range slots {
		if s.GroundID != req.GroundID {
			return nil, fmt.Errorf("%w: slot id=%d belongs to ground %d", ErrSlotMismatch, s.ID, s.GroundID)
		}
		sy, sm, sd := s.Date.Date()
		if sy != y || sm != m || sd != d {
			return nil, fmt.Errorf("%w: slot id=%d is on %s", ErrSlotMismatch, s.ID, s.Date.Format(domain.DateFormat))
		}
	}

	sort.Slice(slots, func(i, j int) bool {
		return slots[i].StartTime.IsBefore(slots[j].StartTime)
	})

	var gaps []Gap
	for i := 1; i < len(slots); i++ {
		prev, cur := slots[i-1], slots[i]
		if !cur.StartTime.Equal(prev.EndTime) {
			gaps = append(gaps, Gap{
				AfterSlotID:  prev.ID,
				BeforeSlotID: cur.ID,
				From:         prev.EndTime,
				To:           cur.StartTime,
			})
		}
	}

	consecutive := len(gaps) == 0
	if !consecutive {
		uc.logger.Info("CheckConsecutive: ground=%d date=%s has %d gap(s) in %v",
			req.GroundID, req.Date.Format(domain.DateFormat), len(gaps), req.SlotIDs)
	}

	return &Response{
		Consecutive:          consecutive,
		RequiresConfirmation: !consecutive,
		Gaps:                 gaps,
	}, nil
}

func validateRequest(req *Request) error {
	if req.GroundID <= 0 {
		return fmt.Errorf("%w: ground id must be positive", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if len(req.SlotIDs) == 0 {
		return fmt.Errorf("%w: at least one slot id is required", ErrInvalidInput)
	}
	seen := make(map[int64]struct{}, len(req.SlotIDs))
	for _, id := range req.SlotIDs {
		if id <= 0 {
			return fmt.Errorf("%w: slot id must be positive, got %d", ErrInvalidInput, id)
		}
		if _, ok := seen[id]; ok {
			return fmt.Errorf("%w: duplicate slot id %d", ErrInvalidInput, id)
		}
		seen[id] = struct{}{}
	}
	return nil
}
