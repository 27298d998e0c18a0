package check_consecutive

import (
	"time"

	"github.com/m04kA/TurfBookingService/internal/domain"
	checkConsecutive "github.com/m04kA/TurfBookingService/internal/usecase/check_consecutive"
)

// CheckConsecutiveRequest HTTP request model
type CheckConsecutiveRequest struct {
	Date    string  `json:"date"` // "2026-08-28"
	SlotIDs []int64 `json:"slotIds"`
}

// CheckConsecutiveResponse HTTP response model
type CheckConsecutiveResponse struct {
	Consecutive          bool  `json:"consecutive"`
	RequiresConfirmation bool  `json:"requiresConfirmation"`
	Gaps                 []Gap `json:"gaps,omitempty"`
}

// Gap разрыв между соседними по времени слотами
type Gap struct {
	AfterSlotID  int64  `json:"afterSlotId"`
	BeforeSlotID int64  `json:"beforeSlotId"`
	From         string `json:"from"`
	To           string `json:"to"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CheckConsecutiveRequest) ToUseCaseRequest(groundID int64) (*checkConsecutive.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	return &checkConsecutive.Request{
		GroundID: groundID,
		Date:     date,
		SlotIDs:  r.SlotIDs,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *checkConsecutive.Response) *CheckConsecutiveResponse {
	var gaps []Gap
	for _, g := range resp.Gaps {
		gaps = append(gaps, Gap{
			AfterSlotID:  g.AfterSlotID,
			BeforeSlotID: g.BeforeSlotID,
			From:         g.From.String(),
			To:           g.To.String(),
		})
	}

	return &CheckConsecutiveResponse{
		Consecutive:          resp.Consecutive,
		RequiresConfirmation: resp.RequiresConfirmation,
		Gaps:                 gaps,
	}
}
