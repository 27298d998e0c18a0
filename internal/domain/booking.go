package domain

import (
	"time"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
)

// PaymentStatus represents the payment state of a booking
type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentCompleted PaymentStatus = "completed"
	PaymentCancelled PaymentStatus = "cancelled"
)

// Booking represents a customer's reservation of one or more slots
type Booking struct {
	ID         int64
	Reference  string // Публичный код бронирования (UUID)
	GroundID   int64
	CustomerID int64 // GuestCustomerID для гостевых бронирований
	Date       time.Time
	SlotIDs    []int64  // Упорядоченный непустой список слотов
	GameTags   []string // Опциональные теги активностей

	TotalAmount   float64
	Status        BookingStatus
	PaymentStatus PaymentStatus

	// Denormalized data for history
	GroundName string

	CancelledAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the booking holds its slots
func (b *Booking) IsActive() bool {
	return b.Status != StatusCancelled
}

// IsGuest returns true if the booking was made without an authenticated customer
func (b *Booking) IsGuest() bool {
	return b.CustomerID == GuestCustomerID
}

// CanBeCancelled returns true if the booking can be cancelled
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// IsCancelled returns true if the booking has been cancelled
func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCancelled
}

// GroundBookingsFilter фильтр для получения бронирований площадки
type GroundBookingsFilter struct {
	GroundID         int64          // Обязательный параметр
	Date             *time.Time     // Фильтр по дате (опционально)
	Status           *BookingStatus // Фильтр по статусу (опционально)
	IncludeCancelled bool           // Включать ли отмененные бронирования
}
