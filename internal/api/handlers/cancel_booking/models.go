package cancel_booking

import (
	"time"

	cancelBooking "github.com/m04kA/TurfBookingService/internal/usecase/cancel_booking"
)

// CancelBookingResponse HTTP response model
type CancelBookingResponse struct {
	ID            int64  `json:"id"`
	Reference     string `json:"reference"`
	Status        string `json:"status"`
	PaymentStatus string `json:"paymentStatus"`
	SlotsReleased bool   `json:"slotsReleased"`
	CancelledAt   string `json:"cancelledAt"` // ISO 8601
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *cancelBooking.Response) *CancelBookingResponse {
	r := &CancelBookingResponse{
		ID:            resp.ID,
		Reference:     resp.Reference,
		Status:        resp.Status,
		PaymentStatus: resp.PaymentStatus,
		SlotsReleased: resp.SlotsReleased,
	}
	if resp.CancelledAt != nil {
		r.CancelledAt = resp.CancelledAt.Format(time.RFC3339)
	}
	return r
}
