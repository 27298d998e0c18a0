package get_available_slots

import (
	"time"

	"github.com/m04kA/TurfBookingService/internal/domain"
	getAvailableSlots "github.com/m04kA/TurfBookingService/internal/usecase/get_available_slots"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	GroundID   int64           `json:"groundId"`
	Date       string          `json:"date"`
	SubVenueID *int64          `json:"subVenueId,omitempty"`
	Advisory   bool            `json:"advisory"`
	Slots      []AvailableSlot `json:"slots"`
}

// AvailableSlot модель временного слота
type AvailableSlot struct {
	ID         int64   `json:"id"`
	StartTime  string  `json:"startTime"`
	EndTime    string  `json:"endTime"`
	Price      float64 `json:"price"`
	SubVenueID *int64  `json:"subVenueId,omitempty"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]AvailableSlot, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = AvailableSlot{
			ID:         slot.ID,
			StartTime:  slot.StartTime.String(),
			EndTime:    slot.EndTime.String(),
			Price:      slot.Price,
			SubVenueID: slot.SubVenueID,
		}
	}

	return &AvailableSlotsResponse{
		GroundID:   resp.GroundID,
		Date:       resp.Date.Format(domain.DateFormat),
		SubVenueID: resp.SubVenueID,
		Advisory:   resp.Advisory,
		Slots:      slots,
	}
}

// ToUseCaseRequest создает запрос use case из параметров запроса
func ToUseCaseRequest(groundID int64, dateStr string, subVenueID *int64) (*getAvailableSlots.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	return &getAvailableSlots.Request{
		GroundID:   groundID,
		Date:       date,
		SubVenueID: subVenueID,
	}, nil
}
