package cancel_booking

import "time"

// Request запрос на отмену бронирования
type Request struct {
	BookingID   int64 // ID бронирования
	RequesterID int64 // ID клиента, запросившего отмену (0 для гостя)
}

// Response результат отмены бронирования
type Response struct {
	ID            int64      // ID бронирования
	Reference     string     // Публичный номер бронирования
	Status        string     // Статус после отмены (всегда cancelled)
	PaymentStatus string     // Статус оплаты после отмены
	SlotsReleased bool       // false, если слоты не удалось освободить полностью
	CancelledAt   *time.Time // Время отмены
}
