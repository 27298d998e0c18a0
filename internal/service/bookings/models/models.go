package models

import (
	"errors"
	"time"

	"github.com/m04kA/TurfBookingService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid booking status")
)

// Request модели

// GetUserBookingsRequest запрос на получение бронирований клиента
type GetUserBookingsRequest struct {
	CustomerID int64   `json:"customerId"`
	Status     *string `json:"status,omitempty"`
}

// GetGroundBookingsRequest запрос на получение бронирований площадки
type GetGroundBookingsRequest struct {
	GroundID         int64      `json:"groundId"`
	Date             *time.Time `json:"date,omitempty"`             // Фильтр по дате (опционально)
	Status           *string    `json:"status,omitempty"`           // Фильтр по статусу (опционально)
	IncludeCancelled bool       `json:"includeCancelled,omitempty"` // Включить отменённые бронирования
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *GetGroundBookingsRequest) ToDomainFilter() (domain.GroundBookingsFilter, error) {
	filter := domain.GroundBookingsFilter{
		GroundID:         r.GroundID,
		Date:             r.Date,
		IncludeCancelled: r.IncludeCancelled,
	}

	if r.Status != nil {
		status, err := ToDomainBookingStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// Response модели

// SlotInfo данные слота в составе бронирования
type SlotInfo struct {
	ID         int64   `json:"id"`
	StartTime  string  `json:"startTime"` // "10:00"
	EndTime    string  `json:"endTime"`   // "11:00"
	Price      float64 `json:"price"`
	SubVenueID *int64  `json:"subVenueId,omitempty"`
}

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID            int64    `json:"id"`
	Reference     string   `json:"reference"`
	GroundID      int64    `json:"groundId"`
	CustomerID    int64    `json:"customerId"`
	Date          string   `json:"date"` // "2026-08-28"
	TotalAmount   float64  `json:"totalAmount"`
	Status        string   `json:"status"`
	PaymentStatus string   `json:"paymentStatus"`
	GameTags      []string `json:"gameTags,omitempty"`

	// Денормализованные данные
	GroundName string     `json:"groundName"`
	SlotIDs    []int64    `json:"slotIds"`
	Slots      []SlotInfo `json:"slots,omitempty"`

	CancelledAt *string `json:"cancelledAt,omitempty"` // ISO 8601 format

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	resp := &BookingResponse{
		ID:            b.ID,
		Reference:     b.Reference,
		GroundID:      b.GroundID,
		CustomerID:    b.CustomerID,
		Date:          b.Date.Format(domain.DateFormat),
		TotalAmount:   b.TotalAmount,
		Status:        string(b.Status),
		PaymentStatus: string(b.PaymentStatus),
		GameTags:      b.GameTags,
		GroundName:    b.GroundName,
		SlotIDs:       b.SlotIDs,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}

	if b.CancelledAt != nil {
		cancelledStr := b.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &cancelledStr
	}

	return resp
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	if bookings == nil {
		return &BookingListResponse{
			Bookings: []BookingResponse{},
		}
	}

	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, len(bookings)),
	}

	for i, booking := range bookings {
		if bookingResp := FromDomainBooking(booking); bookingResp != nil {
			resp.Bookings[i] = *bookingResp
		}
	}

	return resp
}

// FromDomainSlots конвертирует слоты бронирования в DTO
func FromDomainSlots(slots []*domain.Slot) []SlotInfo {
	result := make([]SlotInfo, len(slots))
	for i, s := range slots {
		result[i] = SlotInfo{
			ID:         s.ID,
			StartTime:  s.StartTime.String(),
			EndTime:    s.EndTime.String(),
			Price:      s.Price,
			SubVenueID: s.SubVenueID,
		}
	}
	return result
}

// ToDomainBookingStatus конвертирует строку в domain.BookingStatus с валидацией
func ToDomainBookingStatus(status string) (domain.BookingStatus, error) {
	s := domain.BookingStatus(status)

	validStatuses := []domain.BookingStatus{
		domain.StatusPending,
		domain.StatusConfirmed,
		domain.StatusCancelled,
	}

	for _, valid := range validStatuses {
		if s == valid {
			return s, nil
		}
	}

	return "", ErrInvalidStatus
}
