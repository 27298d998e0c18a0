package get_available_slots

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/TurfBookingService/internal/domain"
	groundstorage "github.com/m04kA/TurfBookingService/internal/infra/storage/ground"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeGroundRepo struct {
	grounds map[int64]*domain.Ground
	err     error
}

func (r *fakeGroundRepo) GetByID(_ context.Context, id int64) (*domain.Ground, error) {
	if r.err != nil {
		return nil, r.err
	}
	ground, ok := r.grounds[id]
	if !ok {
		return nil, groundstorage.ErrGroundNotFound
	}
	return ground, nil
}

type fakeSlotRepo struct {
	slots       []*domain.Slot
	nextID      int64
	createCalls int
}

func (r *fakeSlotRepo) CountByGroundAndDate(_ context.Context, groundID int64, date time.Time) (int, error) {
	count := 0
	for _, s := range r.slots {
		if s.GroundID == groundID && s.Date.Equal(date) {
			count++
		}
	}
	return count, nil
}

func (r *fakeSlotRepo) CreateBatch(_ context.Context, slots []*domain.Slot) error {
	r.createCalls++
	for _, s := range slots {
		r.nextID++
		stored := *s
		stored.ID = r.nextID
		r.slots = append(r.slots, &stored)
	}
	return nil
}

func (r *fakeSlotRepo) GetByGroundAndDate(_ context.Context, groundID int64, date time.Time, onlyFree bool, subVenueID *int64) ([]*domain.Slot, error) {
	var result []*domain.Slot
	for _, s := range r.slots {
		if s.GroundID != groundID || !s.Date.Equal(date) {
			continue
		}
		if onlyFree && s.IsBooked {
			continue
		}
		if !s.MatchesSubVenue(subVenueID) {
			continue
		}
		result = append(result, s)
	}
	return result, nil
}

func newUseCase(slotRepo *fakeSlotRepo, groundRepo *fakeGroundRepo) *UseCase {
	return NewUseCase(
		slotRepo,
		groundRepo,
		fakeTxManager{},
		nil,
		domain.DefaultPricingPolicy(),
		500,
		time.Minute,
		nopLogger{},
	)
}

func testDate() time.Time {
	return time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
}

func TestExecute_GeneratesCatalogOnFirstRead(t *testing.T) {
	slotRepo := &fakeSlotRepo{}
	groundRepo := &fakeGroundRepo{grounds: map[int64]*domain.Ground{
		1: {ID: 1, Name: "Центральный газон", BasePrice: 500},
	}}
	uc := newUseCase(slotRepo, groundRepo)

	resp, err := uc.Execute(context.Background(), &Request{GroundID: 1, Date: testDate()})
	require.NoError(t, err)

	assert.False(t, resp.Advisory)
	require.Len(t, resp.Slots, 24)
	assert.Equal(t, 1, slotRepo.createCalls)

	// Цены следуют ценовым полосам
	assert.Equal(t, 400.0, resp.Slots[0].Price)  // 00:00 ночь
	assert.Equal(t, 500.0, resp.Slots[6].Price)  // 06:00 утро
	assert.Equal(t, 600.0, resp.Slots[12].Price) // 12:00 день
	assert.Equal(t, 700.0, resp.Slots[17].Price) // 17:00 прайм-тайм
	assert.Equal(t, 400.0, resp.Slots[23].Price) // 23:00 поздний вечер

	// Слоты часовые и непрерывные
	assert.Equal(t, "00:00", resp.Slots[0].StartTime.String())
	assert.Equal(t, "01:00", resp.Slots[0].EndTime.String())
	assert.Equal(t, "24:00", resp.Slots[23].EndTime.String())

	// Все слоты сохранены с положительными ID
	for _, s := range resp.Slots {
		assert.Positive(t, s.ID)
	}
}

func TestExecute_GenerationIsIdempotent(t *testing.T) {
	slotRepo := &fakeSlotRepo{}
	groundRepo := &fakeGroundRepo{grounds: map[int64]*domain.Ground{
		1: {ID: 1, Name: "Центральный газон", BasePrice: 500},
	}}
	uc := newUseCase(slotRepo, groundRepo)

	_, err := uc.Execute(context.Background(), &Request{GroundID: 1, Date: testDate()})
	require.NoError(t, err)

	resp, err := uc.Execute(context.Background(), &Request{GroundID: 1, Date: testDate()})
	require.NoError(t, err)

	assert.Equal(t, 1, slotRepo.createCalls, "повторное чтение не генерирует каталог заново")
	assert.Len(t, resp.Slots, 24)
	assert.Len(t, slotRepo.slots, 24)
}

func TestExecute_BookedSlotsAreHidden(t *testing.T) {
	slotRepo := &fakeSlotRepo{}
	groundRepo := &fakeGroundRepo{grounds: map[int64]*domain.Ground{
		1: {ID: 1, Name: "Центральный газон", BasePrice: 500},
	}}
	uc := newUseCase(slotRepo, groundRepo)

	_, err := uc.Execute(context.Background(), &Request{GroundID: 1, Date: testDate()})
	require.NoError(t, err)

	slotRepo.slots[10].IsBooked = true

	resp, err := uc.Execute(context.Background(), &Request{GroundID: 1, Date: testDate()})
	require.NoError(t, err)
	assert.Len(t, resp.Slots, 23)
}

func TestExecute_SubVenuePropagation(t *testing.T) {
	slotRepo := &fakeSlotRepo{}
	groundRepo := &fakeGroundRepo{grounds: map[int64]*domain.Ground{
		1: {
			ID:        1,
			Name:      "Арена",
			BasePrice: 500,
			SubVenues: []domain.SubVenue{{ID: 7, Name: "Корт A"}, {ID: 8, Name: "Корт B"}},
		},
	}}
	uc := newUseCase(slotRepo, groundRepo)

	resp, err := uc.Execute(context.Background(), &Request{GroundID: 1, Date: testDate()})
	require.NoError(t, err)

	// Все слоты привязаны к первой зарегистрированной зоне
	for _, s := range resp.Slots {
		require.NotNil(t, s.SubVenueID)
		assert.Equal(t, int64(7), *s.SubVenueID)
	}

	// Фильтр по первой зоне видит весь каталог
	subVenue := int64(7)
	filtered, err := uc.Execute(context.Background(), &Request{GroundID: 1, Date: testDate(), SubVenueID: &subVenue})
	require.NoError(t, err)
	assert.Len(t, filtered.Slots, 24)
}

func TestExecute_UnknownSubVenue(t *testing.T) {
	slotRepo := &fakeSlotRepo{}
	groundRepo := &fakeGroundRepo{grounds: map[int64]*domain.Ground{
		1: {ID: 1, Name: "Арена", BasePrice: 500, SubVenues: []domain.SubVenue{{ID: 7}}},
	}}
	uc := newUseCase(slotRepo, groundRepo)

	subVenue := int64(99)
	_, err := uc.Execute(context.Background(), &Request{GroundID: 1, Date: testDate(), SubVenueID: &subVenue})
	assert.ErrorIs(t, err, ErrSubVenueNotFound)
}

func TestExecute_GroundNotFoundDoesNotDegrade(t *testing.T) {
	uc := newUseCase(&fakeSlotRepo{}, &fakeGroundRepo{grounds: map[int64]*domain.Ground{}})

	_, err := uc.Execute(context.Background(), &Request{GroundID: 42, Date: testDate()})
	assert.ErrorIs(t, err, ErrGroundNotFound)
}

func TestExecute_BackendOutageDegradesToAdvisory(t *testing.T) {
	slotRepo := &fakeSlotRepo{}
	groundRepo := &fakeGroundRepo{err: errors.New("connection refused")}
	uc := newUseCase(slotRepo, groundRepo)

	resp, err := uc.Execute(context.Background(), &Request{GroundID: 1, Date: testDate()})
	require.NoError(t, err)

	assert.True(t, resp.Advisory)
	require.Len(t, resp.Slots, 24)

	// Advisory-слоты синтезированы: отрицательные ID, цены от fallback-базы
	for _, s := range resp.Slots {
		assert.Negative(t, s.ID)
	}
	assert.Equal(t, 400.0, resp.Slots[0].Price)
	assert.Equal(t, 700.0, resp.Slots[17].Price)

	// Ничего не сохранено
	assert.Empty(t, slotRepo.slots)
}

func TestExecute_InvalidInput(t *testing.T) {
	uc := newUseCase(&fakeSlotRepo{}, &fakeGroundRepo{})

	_, err := uc.Execute(context.Background(), &Request{GroundID: 0, Date: testDate()})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{GroundID: 1})
	assert.ErrorIs(t, err, ErrInvalidInput)

	badSubVenue := int64(-5)
	_, err = uc.Execute(context.Background(), &Request{GroundID: 1, Date: testDate(), SubVenueID: &badSubVenue})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
