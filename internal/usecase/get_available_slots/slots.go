package get_available_slots

import (
	"fmt"
	"time"

	"github.com/m04kA/TurfBookingService/internal/domain"
	"github.com/m04kA/TurfBookingService/pkg/types"
)

// buildCatalog генерирует дневной каталог слотов площадки:
// по одному часовому слоту на каждый час горизонта, цена по ценовой полосе
// часа начала. Если у площадки есть зоны, все слоты привязываются к первой
// зарегистрированной зоне (поведение исходной системы сохранено)
func buildCatalog(ground *domain.Ground, date time.Time, policy domain.PricingPolicy) ([]*domain.Slot, error) {
	subVenueID := ground.FirstSubVenueID()

	slots := make([]*domain.Slot, 0, policy.Hours())
	for hour := policy.OpenHour; hour < policy.CloseHour; hour++ {
		startTime, err := types.NewTimeStringFromHour(hour)
		if err != nil {
			return nil, fmt.Errorf("%w: buildCatalog - start time for hour %d: %v", ErrInternal, hour, err)
		}

		endTime, err := types.NewTimeStringFromHour(hour + 1)
		if err != nil {
			return nil, fmt.Errorf("%w: buildCatalog - end time for hour %d: %v", ErrInternal, hour, err)
		}

		price, err := policy.PriceFor(ground.BasePrice, hour)
		if err != nil {
			return nil, fmt.Errorf("%w: buildCatalog - price for hour %d: %v", ErrInternal, hour, err)
		}

		slots = append(slots, &domain.Slot{
			GroundID:   ground.ID,
			Date:       date,
			StartTime:  startTime,
			EndTime:    endTime,
			Price:      price,
			IsBooked:   false,
			SubVenueID: subVenueID,
		})
	}

	return slots, nil
}

// buildAdvisorySlots синтезирует советующий список слотов локально,
// когда БД недоступна. Слоты получают отрицательные ID и не сохраняются -
// это режим деградации только для чтения, бронировать такие слоты нельзя
func buildAdvisorySlots(policy domain.PricingPolicy, basePrice float64) ([]Slot, error) {
	slots := make([]Slot, 0, policy.Hours())
	for hour := policy.OpenHour; hour < policy.CloseHour; hour++ {
		startTime, err := types.NewTimeStringFromHour(hour)
		if err != nil {
			return nil, fmt.Errorf("%w: buildAdvisorySlots - start time for hour %d: %v", ErrInternal, hour, err)
		}

		endTime, err := types.NewTimeStringFromHour(hour + 1)
		if err != nil {
			return nil, fmt.Errorf("%w: buildAdvisorySlots - end time for hour %d: %v", ErrInternal, hour, err)
		}

		price, err := policy.PriceFor(basePrice, hour)
		if err != nil {
			return nil, fmt.Errorf("%w: buildAdvisorySlots - price for hour %d: %v", ErrInternal, hour, err)
		}

		slots = append(slots, Slot{
			ID:        domain.AdvisorySlotIDBase * int64(hour+1),
			StartTime: startTime,
			EndTime:   endTime,
			Price:     price,
		})
	}

	return slots, nil
}

// toResponseSlots конвертирует доменные слоты в модель ответа
func toResponseSlots(slots []*domain.Slot) []Slot {
	result := make([]Slot, len(slots))
	for i, s := range slots {
		result[i] = Slot{
			ID:         s.ID,
			StartTime:  s.StartTime,
			EndTime:    s.EndTime,
			Price:      s.Price,
			SubVenueID: s.SubVenueID,
		}
	}
	return result
}
