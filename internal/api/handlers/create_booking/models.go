package create_booking

import (
	"time"

	"github.com/m04kA/TurfBookingService/internal/domain"
	createBooking "github.com/m04kA/TurfBookingService/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	GroundID   int64    `json:"groundId"`
	Date       string   `json:"date"` // "2026-08-28"
	SlotIDs    []int64  `json:"slotIds"`
	SubVenueID *int64   `json:"subVenueId,omitempty"`
	GameTags   []string `json:"gameTags,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID            int64          `json:"id"`
	Reference     string         `json:"reference"`
	GroundID      int64          `json:"groundId"`
	CustomerID    int64          `json:"customerId"`
	Date          string         `json:"date"`
	TotalAmount   float64        `json:"totalAmount"`
	Status        string         `json:"status"`
	PaymentStatus string         `json:"paymentStatus"`
	GameTags      []string       `json:"gameTags,omitempty"`
	GroundName    string         `json:"groundName"`
	Slots         []ReservedSlot `json:"slots"`
	CreatedAt     string         `json:"createdAt"`
	UpdatedAt     string         `json:"updatedAt"`
}

// ReservedSlot модель зарезервированного слота
type ReservedSlot struct {
	ID        int64   `json:"id"`
	StartTime string  `json:"startTime"`
	EndTime   string  `json:"endTime"`
	Price     float64 `json:"price"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
// customerID прокидывается из middleware, nil - гостевое бронирование
func (r *CreateBookingRequest) ToUseCaseRequest(customerID *int64) (*createBooking.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		GroundID:   r.GroundID,
		CustomerID: customerID,
		Date:       date,
		SlotIDs:    r.SlotIDs,
		SubVenueID: r.SubVenueID,
		GameTags:   r.GameTags,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	slots := make([]ReservedSlot, len(resp.Slots))
	for i, s := range resp.Slots {
		slots[i] = ReservedSlot{
			ID:        s.ID,
			StartTime: s.StartTime.String(),
			EndTime:   s.EndTime.String(),
			Price:     s.Price,
		}
	}

	return &BookingResponse{
		ID:            resp.ID,
		Reference:     resp.Reference,
		GroundID:      resp.GroundID,
		CustomerID:    resp.CustomerID,
		Date:          resp.Date.Format(domain.DateFormat),
		TotalAmount:   resp.TotalAmount,
		Status:        resp.Status,
		PaymentStatus: resp.PaymentStatus,
		GameTags:      resp.GameTags,
		GroundName:    resp.GroundName,
		Slots:         slots,
		CreatedAt:     resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     resp.UpdatedAt.Format(time.RFC3339),
	}
}
