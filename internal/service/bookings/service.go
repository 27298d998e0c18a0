package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/TurfBookingService/internal/domain"
	bookingRepo "github.com/m04kA/TurfBookingService/internal/infra/storage/booking"
	groundRepo "github.com/m04kA/TurfBookingService/internal/infra/storage/ground"
	"github.com/m04kA/TurfBookingService/internal/service/bookings/models"
)

// Service сервис для чтения бронирований
type Service struct {
	bookingRepo BookingRepository
	slotRepo    SlotRepository
	groundRepo  GroundRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	slotRepo SlotRepository,
	groundRepo GroundRepository,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		slotRepo:    slotRepo,
		groundRepo:  groundRepo,
		logger:      logger,
	}
}

// GetByID получает бронирование по ID с данными слотов
// Клиент может видеть только собственное бронирование
func (s *Service) GetByID(ctx context.Context, id int64, customerID int64) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d for customer=%d", id, customerID)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	if booking.CustomerID != customerID {
		s.logger.Warn("GetByID: access denied for customer=%d to booking id=%d", customerID, id)
		return nil, ErrAccessDenied
	}

	resp := models.FromDomainBooking(booking)

	// Гидрируем ответ данными слотов, сбой не критичен
	slots, err := s.slotRepo.GetByBookingID(ctx, id)
	if err != nil {
		s.logger.Warn("GetByID: failed to load slots for booking id=%d: %v", id, err)
	} else {
		resp.Slots = models.FromDomainSlots(slots)
	}

	s.logger.Info("GetByID: successfully fetched booking id=%d", id)
	return resp, nil
}

// GetByReference получает бронирование по буквенно-цифровому коду
// Код - это секрет держателя: гостевые бронирования доступны любому, кто
// его знает, бронирования клиентов - только владельцу
func (s *Service) GetByReference(ctx context.Context, reference string, requesterID int64) (*models.BookingResponse, error) {
	s.logger.Info("GetByReference: fetching booking reference=%s for requester=%d", reference, requesterID)

	if reference == "" {
		return nil, fmt.Errorf("%w: reference must not be empty", ErrInvalidInput)
	}

	booking, err := s.bookingRepo.GetByReference(ctx, reference)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByReference: booking reference=%s not found", reference)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByReference: repository error for reference=%s: %v", reference, err)
		return nil, fmt.Errorf("%w: GetByReference - repository error: %v", ErrInternal, err)
	}

	if booking.CustomerID != domain.GuestCustomerID && booking.CustomerID != requesterID {
		s.logger.Warn("GetByReference: access denied for requester=%d to booking id=%d", requesterID, booking.ID)
		return nil, ErrAccessDenied
	}

	resp := models.FromDomainBooking(booking)

	// Гидрируем ответ данными слотов, сбой не критичен
	slots, err := s.slotRepo.GetByBookingID(ctx, booking.ID)
	if err != nil {
		s.logger.Warn("GetByReference: failed to load slots for booking id=%d: %v", booking.ID, err)
	} else {
		resp.Slots = models.FromDomainSlots(slots)
	}

	s.logger.Info("GetByReference: successfully fetched booking id=%d", booking.ID)
	return resp, nil
}

// GetUserBookings получает историю бронирований клиента
// Опционально фильтрует по статусу
func (s *Service) GetUserBookings(ctx context.Context, req *models.GetUserBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetUserBookings: fetching bookings for customer=%d, status=%v", req.CustomerID, req.Status)

	var domainStatus *domain.BookingStatus
	if req.Status != nil {
		status, err := models.ToDomainBookingStatus(*req.Status)
		if err != nil {
			s.logger.Warn("GetUserBookings: invalid status=%s for customer=%d", *req.Status, req.CustomerID)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		domainStatus = &status
	}

	bookings, err := s.bookingRepo.GetByCustomerID(ctx, req.CustomerID, domainStatus)
	if err != nil {
		s.logger.Error("GetUserBookings: repository error for customer=%d: %v", req.CustomerID, err)
		return nil, fmt.Errorf("%w: GetUserBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetUserBookings: successfully fetched %d bookings for customer=%d", len(bookings), req.CustomerID)
	return models.FromDomainBookingList(bookings), nil
}

// GetGroundBookings получает бронирования площадки с гибкой фильтрацией
// Поддерживает фильтрацию по дате, статусу и включению отменённых бронирований
//
// Примеры использования:
// - Все активные бронирования: GetGroundBookings(ctx, &GetGroundBookingsRequest{GroundID: 123})
// - Бронирования на дату: указать Date
// - Только подтвержденные: указать Status = "confirmed"
// - Включая отменённые: IncludeCancelled = true
func (s *Service) GetGroundBookings(ctx context.Context, req *models.GetGroundBookingsRequest) (*models.BookingListResponse, error) {
	logMsg := fmt.Sprintf("GetGroundBookings: fetching bookings for ground=%d", req.GroundID)
	if req.Date != nil {
		logMsg += fmt.Sprintf(", date=%s", req.Date.Format(domain.DateFormat))
	}
	if req.Status != nil {
		logMsg += fmt.Sprintf(", status=%s", *req.Status)
	}
	if req.IncludeCancelled {
		logMsg += ", includeCancelled=true"
	}
	s.logger.Info(logMsg)

	// Площадка должна существовать
	if _, err := s.groundRepo.GetByID(ctx, req.GroundID); err != nil {
		if errors.Is(err, groundRepo.ErrGroundNotFound) {
			s.logger.Warn("GetGroundBookings: ground id=%d not found", req.GroundID)
			return nil, ErrGroundNotFound
		}
		s.logger.Error("GetGroundBookings: failed to get ground id=%d: %v", req.GroundID, err)
		return nil, fmt.Errorf("%w: GetGroundBookings - repository error: %v", ErrInternal, err)
	}

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("GetGroundBookings: invalid filter for ground=%d: %v", req.GroundID, err)
		return nil, fmt.Errorf("%w: invalid filter", ErrInvalidInput)
	}

	bookings, err := s.bookingRepo.GetByGroundWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("GetGroundBookings: repository error for ground=%d: %v", req.GroundID, err)
		return nil, fmt.Errorf("%w: GetGroundBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetGroundBookings: successfully fetched %d bookings for ground=%d", len(bookings), req.GroundID)
	return models.FromDomainBookingList(bookings), nil
}
