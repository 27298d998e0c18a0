package get_available_slots

import (
	"context"
	"time"

	"github.com/m04kA/TurfBookingService/internal/domain"
)

// SlotRepository интерфейс репозитория слотов
type SlotRepository interface {
	CountByGroundAndDate(ctx context.Context, groundID int64, date time.Time) (int, error)
	CreateBatch(ctx context.Context, slots []*domain.Slot) error
	GetByGroundAndDate(ctx context.Context, groundID int64, date time.Time, onlyFree bool, subVenueID *int64) ([]*domain.Slot, error)
}

// GroundRepository интерфейс репозитория площадок
type GroundRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Ground, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// SlotCache интерфейс кэша ответов доступности
// Может быть nil - кэширование опционально
type SlotCache interface {
	Get(ctx context.Context, key string, dest interface{}) error
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
