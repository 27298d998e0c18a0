package get_available_slots

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

	if req.SubVenueID != nil && *req.SubVenueID <= 0 {
		return fmt.Errorf("%w: subVenueID must be positive", ErrInvalidInput)
	}

	return nil
}

// validateSubVenueExists проверяет, что зона принадлежит площадке
func validateSubVenueExists(ground *domain.Ground, subVenueID *int64) error {
	if subVenueID == nil {
		return nil
	}

	for _, sv := range ground.SubVenues {
		if sv.ID == *subVenueID {
			return nil
		}
	}

	return ErrSubVenueNotFound
}
