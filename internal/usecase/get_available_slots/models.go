package get_available_slots

import (
	"time"

	"github.com/m04kA/TurfBookingService/pkg/types"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	GroundID   int64     // ID площадки
	Date       time.Time // Дата (без времени)
	SubVenueID *int64    // Фильтр по зоне (опционально)
}

// Response модель ответа со списком доступных слотов
type Response struct {
	GroundID   int64     `json:"groundId"`
	Date       time.Time `json:"date"`
	SubVenueID *int64    `json:"subVenueId,omitempty"`
	Advisory   bool      `json:"advisory"` // true = слоты синтезированы локально, БД недоступна
	Slots      []Slot    `json:"slots"`
}

// Slot модель слота в ответе
type Slot struct {
	ID         int64            `json:"id"` // Отрицательный для advisory-слотов
	StartTime  types.TimeString `json:"startTime"`
	EndTime    types.TimeString `json:"endTime"`
	Price      float64          `json:"price"`
	SubVenueID *int64           `json:"subVenueId,omitempty"`
}
