package spot

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	"github.com/m04kA/SMC-ParkingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ParkingService/pkg/psqlbuilder"
)

// Repository репозиторий инвентаря парковочных мест.
// Инвентарь статический: сервис его только читает.
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория мест
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// ListActive получает все доступные места в детерминированном порядке обхода
// (ряд, затем номер). Порядок важен: распределение мест при принятии заявки
// берёт первое подходящее место именно в этом порядке.
func (r *Repository) ListActive(ctx context.Context) ([]*domain.Spot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"row_label",
		"number",
		"has_charger",
		"is_available",
	).
		From("spots").
		Where(squirrel.Eq{"is_available": true}).
		OrderBy("row_label ASC, number ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListActive - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListActive - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanSpots(rows)
}

// ListAll получает весь инвентарь, включая закрытые на обслуживание места
func (r *Repository) ListAll(ctx context.Context) ([]*domain.Spot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"row_label",
		"number",
		"has_charger",
		"is_available",
	).
		From("spots").
		OrderBy("row_label ASC, number ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListAll - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListAll - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanSpots(rows)
}

// GetByID получает место по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Spot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"row_label",
		"number",
		"has_charger",
		"is_available",
	).
		From("spots").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var s domain.Spot
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&s.ID,
		&s.RowLabel,
		&s.Number,
		&s.HasCharger,
		&s.IsAvailable,
	)

	if err == sql.ErrNoRows {
		return nil, ErrSpotNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan spot: %v", ErrScanRow, err)
	}

	return &s, nil
}

// scanSpots сканирует результаты запроса в слайс мест
func (r *Repository) scanSpots(rows *sql.Rows) ([]*domain.Spot, error) {
	spots := make([]*domain.Spot, 0)

	for rows.Next() {
		var s domain.Spot

		err := rows.Scan(
			&s.ID,
			&s.RowLabel,
			&s.Number,
			&s.HasCharger,
			&s.IsAvailable,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scanSpots - scan row: %v", ErrScanRow, err)
		}

		spots = append(spots, &s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanSpots - rows error: %v", ErrScanRow, err)
	}

	return spots, nil
}
