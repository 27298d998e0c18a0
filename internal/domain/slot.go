package domain

import (
	"time"

	"github.com/m04kA/TurfBookingService/pkg/types"
)

// Slot represents one bookable hour of a ground's schedule on a given date
// Слоты с отрицательным ID - советующие (advisory), синтезированные локально
// при недоступности БД; они не сохранены и не гарантируют бронируемость
type Slot struct {
	ID         int64
	GroundID   int64
	Date       time.Time
	StartTime  types.TimeString
	EndTime    types.TimeString
	Price      float64
	IsBooked   bool
	SubVenueID *int64 // NULL = общий слот, виден при любом фильтре по зоне

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsAdvisory returns true if the slot was synthesized locally and is not persisted
func (s *Slot) IsAdvisory() bool {
	return s.ID < 0
}

// IsGeneral returns true if the slot is not scoped to a sub-venue
func (s *Slot) IsGeneral() bool {
	return s.SubVenueID == nil
}

// MatchesSubVenue returns true if the slot is visible under the given sub-venue filter
// Общие слоты (без зоны) видны при любом фильтре
func (s *Slot) MatchesSubVenue(subVenueID *int64) bool {
	if subVenueID == nil || s.SubVenueID == nil {
		return true
	}
	return *s.SubVenueID == *subVenueID
}

// StartHour возвращает час начала слота
func (s *Slot) StartHour() (int, error) {
	return s.StartTime.Hour()
}
