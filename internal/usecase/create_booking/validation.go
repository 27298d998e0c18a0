package create_booking

import (
	"fmt"

	"github.com/m04kA/TurfBookingService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.GroundID <= 0 {
		return fmt.Errorf("%w: groundID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if len(req.SlotIDs) == 0 {
		return fmt.Errorf("%w: slotIDs must not be empty", ErrInvalidInput)
	}

	if len(req.SlotIDs) > domain.MaxSlotsPerBooking {
		return fmt.Errorf("%w: cannot reserve more than %d slots", ErrInvalidInput, domain.MaxSlotsPerBooking)
	}

	seen := make(map[int64]struct{}, len(req.SlotIDs))
	for _, id := range req.SlotIDs {
		if id <= 0 {
			// Отрицательные ID - advisory-слоты из режима деградации,
			// они не существуют в БД и не бронируются
			return fmt.Errorf("%w: slot id %d is not bookable", ErrInvalidInput, id)
		}
		if _, ok := seen[id]; ok {
			return fmt.Errorf("%w: duplicate slot id %d", ErrInvalidInput, id)
		}
		seen[id] = struct{}{}
	}

	if req.SubVenueID != nil && *req.SubVenueID <= 0 {
		return fmt.Errorf("%w: subVenueID must be positive", ErrInvalidInput)
	}

	if len(req.GameTags) > domain.MaxGameTags {
		return fmt.Errorf("%w: too many game tags", ErrInvalidInput)
	}
	for _, tag := range req.GameTags {
		if tag == "" || len(tag) > domain.MaxGameTagLength {
			return fmt.Errorf("%w: invalid game tag", ErrInvalidInput)
		}
	}

	return nil
}

// resolveCustomerID возвращает эффективный ID клиента
// Корректный идентификатор используется как есть, иначе подставляется
// фиксированный гостевой сентинел (анонимное бронирование)
func resolveCustomerID(customerID *int64) int64 {
	if customerID != nil && *customerID > 0 {
		return *customerID
	}
	return domain.GuestCustomerID
}

// validateSlotsMatch проверяет, что каждый слот принадлежит запрошенной
// площадке и дате
func validateSlotsMatch(slots []*domain.Slot, req *Request) error {
	y, m, d := req.Date.Date()
	for _, s := range slots {
		if s.GroundID != req.GroundID {
			return fmt.Errorf("%w: slot id=%d belongs to ground %d", ErrSlotMismatch, s.ID, s.GroundID)
		}
		sy, sm, sd := s.Date.Date()
		if sy != y || sm != m || sd != d {
			return fmt.Errorf("%w: slot id=%d is on %s", ErrSlotMismatch, s.ID, s.Date.Format(domain.DateFormat))
		}
	}
	return nil
}
