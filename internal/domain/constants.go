package domain

// GuestCustomerID фиксированный идентификатор гостевых бронирований
// Подставляется, когда запрос не содержит корректного ID клиента
const GuestCustomerID int64 = 0

// SlotDurationMinutes длительность одного слота
// Инвентарь площадки состоит из часовых слотов
const SlotDurationMinutes = 60

// Default generation horizon (hours of day covered by generated slots)
const (
	DefaultOpenHour  = 0
	DefaultCloseHour = 24
)

// AdvisorySlotIDBase база для ID синтезированных (advisory) слотов
// Advisory-слот часа N получает ID -(N+1), что делает его безошибочно
// отличимым от сохраненных слотов
const AdvisorySlotIDBase int64 = -1

// Business validation constants
const (
	MaxSlotsPerBooking = 24 // Не больше полного горизонта суток
	MaxGameTags        = 10
	MaxGameTagLength   = 50
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// ActiveStatuses список статусов, при которых бронирование удерживает слоты
var ActiveStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
}
