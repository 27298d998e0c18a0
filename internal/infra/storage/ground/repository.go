package ground

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/TurfBookingService/internal/domain"
	"github.com/m04kA/TurfBookingService/pkg/dbmetrics"
	"github.com/m04kA/TurfBookingService/pkg/psqlbuilder"
)

// Repository репозиторий для чтения площадок и их зон
// Управление площадками (CRUD) выполняет админ-панель вне этого сервиса,
// поэтому репозиторий только читает
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория площадок
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает площадку по ID вместе с её зонами
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Ground, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"name",
		"base_price",
		"created_at",
		"updated_at",
	).
		From("grounds").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var ground domain.Ground
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&ground.ID,
		&ground.Name,
		&ground.BasePrice,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrGroundNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan ground: %v", ErrScanRow, err)
	}

	ground.CreatedAt = createdAt.Time
	ground.UpdatedAt = updatedAt.Time

	subVenues, err := r.listSubVenues(ctx, id)
	if err != nil {
		return nil, err
	}
	ground.SubVenues = subVenues

	return &ground, nil
}

// listSubVenues получает зоны площадки в порядке регистрации
func (r *Repository) listSubVenues(ctx context.Context, groundID int64) ([]domain.SubVenue, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"ground_id",
		"name",
	).
		From("sub_venues").
		Where(squirrel.Eq{"ground_id": groundID}).
		OrderBy("id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: listSubVenues - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: listSubVenues - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	subVenues := make([]domain.SubVenue, 0)
	for rows.Next() {
		var sv domain.SubVenue
		if err := rows.Scan(&sv.ID, &sv.GroundID, &sv.Name); err != nil {
			return nil, fmt.Errorf("%w: listSubVenues - scan row: %v", ErrScanRow, err)
		}
		subVenues = append(subVenues, sv)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: listSubVenues - rows error: %v", ErrScanRow, err)
	}

	return subVenues, nil
}
