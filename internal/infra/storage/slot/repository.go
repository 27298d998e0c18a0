package slot

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/TurfBookingService/internal/domain"
	"github.com/m04kA/TurfBookingService/pkg/dbmetrics"
	"github.com/m04kA/TurfBookingService/pkg/psqlbuilder"
)

// slotColumns колонки таблицы slots в порядке сканирования
var slotColumns = []string{
	"id",
	"ground_id",
	"date",
	"start_time",
	"end_time",
	"price",
	"is_booked",
	"sub_venue_id",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы со слотами
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория слотов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// CountByGroundAndDate возвращает количество слотов площадки на дату
// Используется для идемпотентной генерации каталога
func (r *Repository) CountByGroundAndDate(ctx context.Context, groundID int64, date time.Time) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").
		From("slots").
		Where(squirrel.Eq{"ground_id": groundID, "date": date}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: CountByGroundAndDate - build select query: %v", ErrBuildQuery, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: CountByGroundAndDate - scan count: %v", ErrScanRow, err)
	}

	return count, nil
}

// CreateBatch сохраняет сгенерированные слоты одним запросом
// Уникальный индекс (ground_id, date, start_time) с ON CONFLICT DO NOTHING
// гарантирует, что конкурентная генерация не создаст дубликатов
func (r *Repository) CreateBatch(ctx context.Context, slots []*domain.Slot) error {
	if len(slots) == 0 {
		return nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Insert("slots").
		Columns(
			"ground_id",
			"date",
			"start_time",
			"end_time",
			"price",
			"is_booked",
			"sub_venue_id",
		)

	for _, s := range slots {
		builder = builder.Values(
			s.GroundID,
			s.Date,
			s.StartTime,
			s.EndTime,
			s.Price,
			s.IsBooked,
			s.SubVenueID,
		)
	}

	query, args, err := builder.
		Suffix("ON CONFLICT (ground_id, date, start_time) DO NOTHING").
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: CreateBatch - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: CreateBatch - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// GetByGroundAndDate получает слоты площадки на дату, отсортированные по времени начала
// onlyFree=true возвращает только незанятые слоты
// subVenueID фильтрует по зоне; общие слоты (sub_venue_id IS NULL) видны всегда
func (r *Repository) GetByGroundAndDate(ctx context.Context, groundID int64, date time.Time, onlyFree bool, subVenueID *int64) ([]*domain.Slot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(slotColumns...).
		From("slots").
		Where(squirrel.Eq{"ground_id": groundID, "date": date}).
		OrderBy("start_time ASC")

	if onlyFree {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"is_booked": false})
	}

	if subVenueID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Or{
			squirrel.Eq{"sub_venue_id": *subVenueID},
			squirrel.Eq{"sub_venue_id": nil},
		})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByGroundAndDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByGroundAndDate - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanSlots(rows)
}

// GetByIDs получает слоты по списку ID, отсортированные по времени начала
// Внутри транзакции строки блокируются (FOR UPDATE) - это основа защиты
// от двойного бронирования при конкурентных запросах
func (r *Repository) GetByIDs(ctx context.Context, ids []int64) ([]*domain.Slot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(slotColumns...).
		From("slots").
		Where(squirrel.Eq{"id": ids}).
		OrderBy("start_time ASC")

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByIDs - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByIDs - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanSlots(rows)
}

// MarkBooked помечает слоты занятыми условным обновлением:
// меняются только строки с is_booked = false
// Если затронуто меньше строк, чем запрошено - часть слотов уже занята
// конкурентом, возвращается ErrSlotAlreadyBooked (вызывающая транзакция
// откатывается целиком)
func (r *Repository) MarkBooked(ctx context.Context, ids []int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("slots").
		Set("is_booked", true).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": ids, "is_booked": false}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: MarkBooked - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: MarkBooked - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: MarkBooked - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected != int64(len(ids)) {
		return fmt.Errorf("%w: MarkBooked - %d of %d slots taken concurrently",
			ErrSlotAlreadyBooked, int64(len(ids))-rowsAffected, len(ids))
	}

	return nil
}

// Release освобождает слоты (is_booked = false)
// Возвращает количество фактически освобожденных строк: отмена бронирования
// лояльна к частичным сбоям и сверяет количество на своей стороне
func (r *Repository) Release(ctx context.Context, ids []int64) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("slots").
		Set("is_booked", false).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": ids, "is_booked": true}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: Release - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: Release - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: Release - get rows affected: %v", ErrExecQuery, err)
	}

	return rowsAffected, nil
}

// GetByBookingID получает слоты, связанные с бронированием через booking_slots
func (r *Repository) GetByBookingID(ctx context.Context, bookingID int64) ([]*domain.Slot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	columns := make([]string, len(slotColumns))
	for i, c := range slotColumns {
		columns[i] = "s." + c
	}

	query, args, err := psqlbuilder.Select(columns...).
		From("slots s").
		Join("booking_slots bs ON bs.slot_id = s.id").
		Where(squirrel.Eq{"bs.booking_id": bookingID}).
		OrderBy("s.start_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByBookingID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByBookingID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanSlots(rows)
}

// scanSlots сканирует результаты запроса в слайс слотов
func (r *Repository) scanSlots(rows *sql.Rows) ([]*domain.Slot, error) {
	slots := make([]*domain.Slot, 0)

	for rows.Next() {
		var s domain.Slot
		var subVenueID sql.NullInt64
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&s.ID,
			&s.GroundID,
			&s.Date,
			&s.StartTime,
			&s.EndTime,
			&s.Price,
			&s.IsBooked,
			&subVenueID,
			&createdAt,
			&updatedAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: scanSlots - scan row: %v", ErrScanRow, err)
		}

		if subVenueID.Valid {
			s.SubVenueID = &subVenueID.Int64
		}
		s.CreatedAt = createdAt.Time
		s.UpdatedAt = updatedAt.Time

		slots = append(slots, &s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanSlots - rows error: %v", ErrScanRow, err)
	}

	return slots, nil
}
