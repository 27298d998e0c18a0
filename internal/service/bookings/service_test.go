package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/TurfBookingService/internal/domain"
	bookingstorage "github.com/m04kA/TurfBookingService/internal/infra/storage/booking"
	groundstorage "github.com/m04kA/TurfBookingService/internal/infra/storage/ground"
	"github.com/m04kA/TurfBookingService/internal/service/bookings/models"
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
	return booking, nil
}

func (r *fakeBookingRepo) GetByReference(_ context.Context, reference string) (*domain.Booking, error) {
	for _, b := range r.bookings {
		if b.Reference == reference {
			return b, nil
		}
	}
	return nil, bookingstorage.ErrBookingNotFound
}

func (r *fakeBookingRepo) GetByCustomerID(_ context.Context, customerID int64, status *domain.BookingStatus) ([]*domain.Booking, error) {
	var result []*domain.Booking
	for _, b := range r.bookings {
		if b.CustomerID != customerID {
			continue
		}
		if status != nil && b.Status != *status {
			continue
		}
		result = append(result, b)
	}
	return result, nil
}

func (r *fakeBookingRepo) GetByGroundWithFilter(_ context.Context, filter domain.GroundBookingsFilter) ([]*domain.Booking, error) {
	var result []*domain.Booking
	for _, b := range r.bookings {
		if b.GroundID != filter.GroundID {
			continue
		}
		if !filter.IncludeCancelled && b.IsCancelled() {
			continue
		}
		if filter.Status != nil && b.Status != *filter.Status {
			continue
		}
		result = append(result, b)
	}
	return result, nil
}

type fakeSlotRepo struct {
	byBooking map[int64][]*domain.Slot
}

func (r *fakeSlotRepo) GetByBookingID(_ context.Context, bookingID int64) ([]*domain.Slot, error) {
	return r.byBooking[bookingID], nil
}

type fakeGroundRepo struct {
	grounds map[int64]*domain.Ground
}

func (r *fakeGroundRepo) GetByID(_ context.Context, id int64) (*domain.Ground, error) {
	ground, ok := r.grounds[id]
	if !ok {
		return nil, groundstorage.ErrGroundNotFound
	}
	return ground, nil
}

func testDate() time.Time {
	return time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
}

func newFixture() *Service {
	bookingRepo := &fakeBookingRepo{bookings: map[int64]*domain.Booking{
		1: {ID: 1, Reference: "ref-1", GroundID: 10, CustomerID: 55, Date: testDate(), SlotIDs: []int64{101}, Status: domain.StatusPending},
		2: {ID: 2, Reference: "ref-2", GroundID: 10, CustomerID: 55, Date: testDate(), Status: domain.StatusCancelled},
		3: {ID: 3, Reference: "ref-3", GroundID: 20, CustomerID: 77, Date: testDate(), Status: domain.StatusConfirmed},
		4: {ID: 4, Reference: "ref-guest", GroundID: 10, CustomerID: domain.GuestCustomerID, Date: testDate(), SlotIDs: []int64{102}, Status: domain.StatusPending},
	}}
	slotRepo := &fakeSlotRepo{byBooking: map[int64][]*domain.Slot{
		1: {{ID: 101, GroundID: 10, StartTime: "09:00", EndTime: "10:00", Price: 500}},
		4: {{ID: 102, GroundID: 10, StartTime: "10:00", EndTime: "11:00", Price: 500}},
	}}
	groundRepo := &fakeGroundRepo{grounds: map[int64]*domain.Ground{
		10: {ID: 10, Name: "Центральный газон"},
		20: {ID: 20, Name: "Арена"},
	}}
	return NewService(bookingRepo, slotRepo, groundRepo, nopLogger{})
}

func TestGetByID_HydratesSlots(t *testing.T) {
	svc := newFixture()

	resp, err := svc.GetByID(context.Background(), 1, 55)
	require.NoError(t, err)

	assert.Equal(t, "ref-1", resp.Reference)
	require.Len(t, resp.Slots, 1)
	assert.Equal(t, "09:00", resp.Slots[0].StartTime)
	assert.Equal(t, 500.0, resp.Slots[0].Price)
}

func TestGetByID_AccessDenied(t *testing.T) {
	svc := newFixture()

	_, err := svc.GetByID(context.Background(), 1, 77)
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestGetByID_NotFound(t *testing.T) {
	svc := newFixture()

	_, err := svc.GetByID(context.Background(), 99, 55)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestGetByReference_GuestBookingReadableByAnyone(t *testing.T) {
	// Код бронирования - секрет держателя: гостевое бронирование
	// читается и без авторизации, и любым авторизованным клиентом
	svc := newFixture()

	resp, err := svc.GetByReference(context.Background(), "ref-guest", domain.GuestCustomerID)
	require.NoError(t, err)
	assert.Equal(t, "ref-guest", resp.Reference)
	require.Len(t, resp.Slots, 1)
	assert.Equal(t, "10:00", resp.Slots[0].StartTime)

	asUser, err := svc.GetByReference(context.Background(), "ref-guest", 55)
	require.NoError(t, err)
	assert.Equal(t, "ref-guest", asUser.Reference)
}

func TestGetByReference_OwnerOnly(t *testing.T) {
	svc := newFixture()

	resp, err := svc.GetByReference(context.Background(), "ref-1", 55)
	require.NoError(t, err)
	assert.Equal(t, "ref-1", resp.Reference)

	// Чужое бронирование по коду не читается
	_, err = svc.GetByReference(context.Background(), "ref-1", 77)
	assert.ErrorIs(t, err, ErrAccessDenied)

	// Гостевой запрос не видит клиентские бронирования
	_, err = svc.GetByReference(context.Background(), "ref-1", domain.GuestCustomerID)
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestGetByReference_NotFound(t *testing.T) {
	svc := newFixture()

	_, err := svc.GetByReference(context.Background(), "ref-unknown", 55)
	assert.ErrorIs(t, err, ErrBookingNotFound)

	_, err = svc.GetByReference(context.Background(), "", 55)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestGetUserBookings_FiltersByStatus(t *testing.T) {
	svc := newFixture()

	all, err := svc.GetUserBookings(context.Background(), &models.GetUserBookingsRequest{CustomerID: 55})
	require.NoError(t, err)
	assert.Len(t, all.Bookings, 2)

	status := "cancelled"
	cancelled, err := svc.GetUserBookings(context.Background(), &models.GetUserBookingsRequest{CustomerID: 55, Status: &status})
	require.NoError(t, err)
	require.Len(t, cancelled.Bookings, 1)
	assert.Equal(t, "ref-2", cancelled.Bookings[0].Reference)
}

func TestGetUserBookings_InvalidStatus(t *testing.T) {
	svc := newFixture()

	status := "paused"
	_, err := svc.GetUserBookings(context.Background(), &models.GetUserBookingsRequest{CustomerID: 55, Status: &status})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestGetGroundBookings_ExcludesCancelledByDefault(t *testing.T) {
	svc := newFixture()

	resp, err := svc.GetGroundBookings(context.Background(), &models.GetGroundBookingsRequest{GroundID: 10})
	require.NoError(t, err)
	require.Len(t, resp.Bookings, 2)
	refs := []string{resp.Bookings[0].Reference, resp.Bookings[1].Reference}
	assert.ElementsMatch(t, []string{"ref-1", "ref-guest"}, refs)

	withCancelled, err := svc.GetGroundBookings(context.Background(), &models.GetGroundBookingsRequest{GroundID: 10, IncludeCancelled: true})
	require.NoError(t, err)
	assert.Len(t, withCancelled.Bookings, 3)
}

func TestGetGroundBookings_GroundNotFound(t *testing.T) {
	svc := newFixture()

	_, err := svc.GetGroundBookings(context.Background(), &models.GetGroundBookingsRequest{GroundID: 99})
	assert.ErrorIs(t, err, ErrGroundNotFound)
}
