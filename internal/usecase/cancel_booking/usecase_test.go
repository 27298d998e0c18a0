package cancel_booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/TurfBookingService/internal/domain"
	bookingstorage "github.com/m04kA/TurfBookingService/internal/infra/storage/booking"
	"github.com/m04kA/TurfBookingService/internal/integrations/notifyservice"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeBookingRepo struct {
	bookings map[int64]*domain.Booking
}

func (r *fakeBookingRepo) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	booking, ok := r.bookings[id]
	if !ok {
		return nil, bookingstorage.ErrBookingNotFound
	}
	copied := *booking
	return &copied, nil
}

func (r *fakeBookingRepo) Cancel(_ context.Context, id int64) error {
	booking, ok := r.bookings[id]
	if !ok {
		return bookingstorage.ErrBookingNotFound
	}
	if booking.Status == domain.StatusCancelled {
		return bookingstorage.ErrCannotCancel
	}
	booking.Status = domain.StatusCancelled
	booking.PaymentStatus = domain.PaymentCancelled
	now := time.Now()
	booking.CancelledAt = &now
	return nil
}

type fakeSlotRepo struct {
	released []int64
	err      error
	short    bool // имитация частичного освобождения
}

func (r *fakeSlotRepo) Release(_ context.Context, ids []int64) (int64, error) {
	if r.err != nil {
		return 0, r.err
	}
	r.released = append(r.released, ids...)
	if r.short {
		return int64(len(ids)) - 1, nil
	}
	return int64(len(ids)), nil
}

type fakeNotify struct {
	events []*notifyservice.Event
}

func (n *fakeNotify) SendWithGracefulDegradation(_ context.Context, event *notifyservice.Event) error {
	n.events = append(n.events, event)
	return nil
}

type fakeInvalidator struct {
	patterns []string
}

func (c *fakeInvalidator) DeletePattern(_ context.Context, pattern string) error {
	c.patterns = append(c.patterns, pattern)
	return nil
}

func testDate() time.Time {
	return time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
}

func newFixture() (*UseCase, *fakeBookingRepo, *fakeSlotRepo, *fakeNotify, *fakeInvalidator) {
	bookingRepo := &fakeBookingRepo{bookings: map[int64]*domain.Booking{
		1: {
			ID:         1,
			Reference:  "ref-1",
			GroundID:   10,
			CustomerID: 55,
			Date:       testDate(),
			SlotIDs:    []int64{101, 102},
			Status:     domain.StatusPending,
			GroundName: "Центральный газон",
		},
		2: {
			ID:         2,
			Reference:  "ref-2",
			GroundID:   10,
			CustomerID: domain.GuestCustomerID,
			Date:       testDate(),
			SlotIDs:    []int64{103},
			Status:     domain.StatusConfirmed,
		},
	}}
	slotRepo := &fakeSlotRepo{}
	notify := &fakeNotify{}
	invalidator := &fakeInvalidator{}

	uc := NewUseCase(bookingRepo, slotRepo, notify, invalidator, nopLogger{})
	return uc, bookingRepo, slotRepo, notify, invalidator
}

func TestExecute_CancelsBookingAndReleasesSlots(t *testing.T) {
	uc, bookingRepo, slotRepo, notify, invalidator := newFixture()

	resp, err := uc.Execute(context.Background(), &Request{BookingID: 1, RequesterID: 55})
	require.NoError(t, err)

	assert.Equal(t, string(domain.StatusCancelled), resp.Status)
	assert.Equal(t, string(domain.PaymentCancelled), resp.PaymentStatus)
	assert.True(t, resp.SlotsReleased)
	require.NotNil(t, resp.CancelledAt)

	assert.Equal(t, domain.StatusCancelled, bookingRepo.bookings[1].Status)
	assert.Equal(t, []int64{101, 102}, slotRepo.released)

	require.Len(t, notify.events, 1)
	assert.Equal(t, notifyservice.EventBookingCancelled, notify.events[0].Type)
	assert.Equal(t, "Центральный газон", notify.events[0].GroundName)
	require.Len(t, invalidator.patterns, 1)
	assert.Equal(t, "slots:10:2026-09-01:*", invalidator.patterns[0])
}

func TestExecute_GuestCancelsGuestBooking(t *testing.T) {
	uc, bookingRepo, _, _, _ := newFixture()

	resp, err := uc.Execute(context.Background(), &Request{BookingID: 2, RequesterID: domain.GuestCustomerID})
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusCancelled), resp.Status)
	assert.Equal(t, domain.StatusCancelled, bookingRepo.bookings[2].Status)
}

func TestExecute_AccessDenied(t *testing.T) {
	uc, bookingRepo, slotRepo, _, _ := newFixture()

	// Чужое бронирование
	_, err := uc.Execute(context.Background(), &Request{BookingID: 1, RequesterID: 77})
	assert.ErrorIs(t, err, ErrAccessDenied)

	// Гость не может отменить именное бронирование
	_, err = uc.Execute(context.Background(), &Request{BookingID: 1, RequesterID: domain.GuestCustomerID})
	assert.ErrorIs(t, err, ErrAccessDenied)

	assert.Equal(t, domain.StatusPending, bookingRepo.bookings[1].Status)
	assert.Empty(t, slotRepo.released)
}

func TestExecute_BookingNotFound(t *testing.T) {
	uc, _, _, _, _ := newFixture()

	_, err := uc.Execute(context.Background(), &Request{BookingID: 99, RequesterID: 55})
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestExecute_AlreadyCancelled(t *testing.T) {
	uc, _, _, _, _ := newFixture()

	_, err := uc.Execute(context.Background(), &Request{BookingID: 1, RequesterID: 55})
	require.NoError(t, err)

	_, err = uc.Execute(context.Background(), &Request{BookingID: 1, RequesterID: 55})
	assert.ErrorIs(t, err, ErrAlreadyCancelled)
}

func TestExecute_LenientSlotRelease(t *testing.T) {
	// Сбой освобождения слотов не откатывает отмену бронирования
	uc, bookingRepo, slotRepo, notify, _ := newFixture()
	slotRepo.err = errors.New("connection refused")

	resp, err := uc.Execute(context.Background(), &Request{BookingID: 1, RequesterID: 55})
	require.NoError(t, err)

	assert.Equal(t, string(domain.StatusCancelled), resp.Status)
	assert.False(t, resp.SlotsReleased)
	assert.Equal(t, domain.StatusCancelled, bookingRepo.bookings[1].Status)
	require.Len(t, notify.events, 1)
}

func TestExecute_PartialSlotRelease(t *testing.T) {
	uc, _, slotRepo, _, _ := newFixture()
	slotRepo.short = true

	resp, err := uc.Execute(context.Background(), &Request{BookingID: 1, RequesterID: 55})
	require.NoError(t, err)
	assert.False(t, resp.SlotsReleased)
	assert.Equal(t, string(domain.StatusCancelled), resp.Status)
}

func TestExecute_InvalidInput(t *testing.T) {
	uc, _, _, _, _ := newFixture()

	_, err := uc.Execute(context.Background(), &Request{BookingID: 0, RequesterID: 55})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{BookingID: 1, RequesterID: -1})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
