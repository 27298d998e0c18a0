package notifyservice

// EventType тип события для уведомления
type EventType string

const (
	EventBookingCreated   EventType = "booking_created"
	EventBookingCancelled EventType = "booking_cancelled"
	EventBookingFailed    EventType = "booking_failed"
)

// Event событие для отправки в сервис уведомлений
type Event struct {
	Type       EventType `json:"type"`
	CustomerID int64     `json:"customerId"`
	BookingID  int64     `json:"bookingId,omitempty"`
	Reference  string    `json:"reference,omitempty"`
	GroundName string    `json:"groundName,omitempty"`
	Date       string    `json:"date,omitempty"` // YYYY-MM-DD
	Message    string    `json:"message"`
}

// ErrorResponse модель ошибки от сервиса уведомлений
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
