package create_booking

import (
	"time"

	"github.com/m04kA/TurfBookingService/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	GroundID   int64     // ID площадки
	CustomerID *int64    // ID клиента; nil или <=0 - гостевое бронирование
	Date       time.Time // Дата бронирования (без времени)
	SlotIDs    []int64   // Непустой список слотов
	SubVenueID *int64    // Зона (опционально, информативно)
	GameTags   []string  // Теги активностей (опционально)
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID            int64     // ID созданного бронирования
	Reference     string    // Публичный код бронирования
	GroundID      int64     // ID площадки
	CustomerID    int64     // Эффективный ID клиента (гостевой сентинел для гостей)
	Date          time.Time // Дата бронирования
	TotalAmount   float64   // Сумма цен зарезервированных слотов
	Status        string    // Статус бронирования
	PaymentStatus string    // Статус оплаты
	GameTags      []string  // Теги активностей

	// Денормализованные данные
	GroundName string         // Название площадки
	Slots      []ReservedSlot // Детали зарезервированных слотов

	CreatedAt time.Time // Время создания
	UpdatedAt time.Time // Время обновления
}

// ReservedSlot детали зарезервированного слота
type ReservedSlot struct {
	ID        int64            `json:"id"`
	StartTime types.TimeString `json:"startTime"`
	EndTime   types.TimeString `json:"endTime"`
	Price     float64          `json:"price"`
}
