package create_booking

import (
	"context"

	"github.com/m04kA/TurfBookingService/internal/domain"
	"github.com/m04kA/TurfBookingService/internal/integrations/notifyservice"
)

// SlotRepository интерфейс репозитория слотов
type SlotRepository interface {
	// GetByIDs внутри транзакции блокирует строки (FOR UPDATE)
	GetByIDs(ctx context.Context, ids []int64) ([]*domain.Slot, error)
	// MarkBooked условно помечает слоты занятыми; при конкурентном захвате
	// возвращает slot.ErrSlotAlreadyBooked
	MarkBooked(ctx context.Context, ids []int64) error
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	AddSlotLinks(ctx context.Context, bookingID int64, slotIDs []int64) error
}

// GroundRepository интерфейс репозитория площадок
type GroundRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Ground, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// NotifyClient интерфейс клиента сервиса уведомлений
type NotifyClient interface {
	SendWithGracefulDegradation(ctx context.Context, event *notifyservice.Event) error
}

// CacheInvalidator интерфейс инвалидации кэша доступности
// Может быть nil - кэширование опционально
type CacheInvalidator interface {
	DeletePattern(ctx context.Context, pattern string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
