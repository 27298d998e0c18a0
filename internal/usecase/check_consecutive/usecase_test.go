package check_consecutive

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/TurfBookingService/internal/domain"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeSlotRepo struct {
	slots map[int64]*domain.Slot
}

func (r *fakeSlotRepo) GetByIDs(_ context.Context, ids []int64) ([]*domain.Slot, error) {
	var result []*domain.Slot
	for _, id := range ids {
		if s, ok := r.slots[id]; ok {
			result = append(result, s)
		}
	}
	return result, nil
}

func testDate() time.Time {
	return time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
}

func newFixture() *UseCase {
	repo := &fakeSlotRepo{slots: map[int64]*domain.Slot{
		101: {ID: 101, GroundID: 1, Date: testDate(), StartTime: "09:00", EndTime: "10:00"},
		102: {ID: 102, GroundID: 1, Date: testDate(), StartTime: "10:00", EndTime: "11:00"},
		103: {ID: 103, GroundID: 1, Date: testDate(), StartTime: "11:00", EndTime: "12:00"},
		105: {ID: 105, GroundID: 1, Date: testDate(), StartTime: "14:00", EndTime: "15:00"},
		201: {ID: 201, GroundID: 2, Date: testDate(), StartTime: "09:00", EndTime: "10:00"},
	}}
	return NewUseCase(repo, nopLogger{})
}

func TestExecute_ConsecutiveSlots(t *testing.T) {
	uc := newFixture()

	resp, err := uc.Execute(context.Background(), &Request{
		GroundID: 1,
		Date:     testDate(),
		SlotIDs:  []int64{101, 102, 103},
	})
	require.NoError(t, err)

	assert.True(t, resp.Consecutive)
	assert.False(t, resp.RequiresConfirmation)
	assert.Empty(t, resp.Gaps)
}

func TestExecute_OrderIndependent(t *testing.T) {
	uc := newFixture()

	// Порядок ID в запросе не влияет на результат
	resp, err := uc.Execute(context.Background(), &Request{
		GroundID: 1,
		Date:     testDate(),
		SlotIDs:  []int64{103, 101, 102},
	})
	require.NoError(t, err)
	assert.True(t, resp.Consecutive)
}

func TestExecute_GapBetweenSlots(t *testing.T) {
	uc := newFixture()

	resp, err := uc.Execute(context.Background(), &Request{
		GroundID: 1,
		Date:     testDate(),
		SlotIDs:  []int64{101, 105},
	})
	require.NoError(t, err)

	assert.False(t, resp.Consecutive)
	assert.True(t, resp.RequiresConfirmation)
	require.Len(t, resp.Gaps, 1)
	assert.Equal(t, int64(101), resp.Gaps[0].AfterSlotID)
	assert.Equal(t, int64(105), resp.Gaps[0].BeforeSlotID)
	assert.Equal(t, "10:00", resp.Gaps[0].From.String())
	assert.Equal(t, "14:00", resp.Gaps[0].To.String())
}

func TestExecute_SingleSlotIsConsecutive(t *testing.T) {
	uc := newFixture()

	resp, err := uc.Execute(context.Background(), &Request{
		GroundID: 1,
		Date:     testDate(),
		SlotIDs:  []int64{105},
	})
	require.NoError(t, err)
	assert.True(t, resp.Consecutive)
}

func TestExecute_SlotNotFound(t *testing.T) {
	uc := newFixture()

	_, err := uc.Execute(context.Background(), &Request{
		GroundID: 1,
		Date:     testDate(),
		SlotIDs:  []int64{101, 999},
	})
	assert.ErrorIs(t, err, ErrSlotNotFound)
}

func TestExecute_SlotMismatch(t *testing.T) {
	uc := newFixture()

	// Слот чужой площадки
	_, err := uc.Execute(context.Background(), &Request{
		GroundID: 1,
		Date:     testDate(),
		SlotIDs:  []int64{101, 201},
	})
	assert.ErrorIs(t, err, ErrSlotMismatch)

	// Слот на другую дату
	_, err = uc.Execute(context.Background(), &Request{
		GroundID: 1,
		Date:     testDate().AddDate(0, 0, 1),
		SlotIDs:  []int64{101, 102},
	})
	assert.ErrorIs(t, err, ErrSlotMismatch)
}

func TestExecute_InvalidInput(t *testing.T) {
	uc := newFixture()

	_, err := uc.Execute(context.Background(), &Request{GroundID: 1, Date: testDate()})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{GroundID: 1, Date: testDate(), SlotIDs: []int64{101, 101}})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{GroundID: 1, Date: testDate(), SlotIDs: []int64{-3}})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
