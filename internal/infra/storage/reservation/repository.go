package reservation

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	"github.com/m04kA/SMC-ParkingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ParkingService/pkg/psqlbuilder"
)

// reservationColumns колонки брони вместе с данными места (JOIN spots)
var reservationColumns = []string{
	"r.id",
	"r.user_id",
	"r.spot_id",
	"r.needs_charger",
	"r.start_date",
	"r.end_date",
	"r.status_checked",
	"r.check_in_time",
	"r.created_at",
	"r.updated_at",
	"s.row_label",
	"s.number",
	"s.has_charger",
	"s.is_available",
}

// Repository репозиторий подтверждённых броней
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория броней
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает подтверждённую бронь.
// Если в контексте передана активная транзакция, использует её —
// создание брони при принятии заявки обязано идти в одной транзакции
// с проверкой пересечений и удалением заявки.
func (r *Repository) Create(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("reservations").
		Columns(
			"user_id",
			"spot_id",
			"needs_charger",
			"start_date",
			"end_date",
			"status_checked",
		).
		Values(
			res.UserID,
			res.Spot.ID,
			res.NeedsCharger,
			res.StartDate,
			res.EndDate,
			res.StatusChecked,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&res.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	res.CreatedAt = createdAt.Time
	res.UpdatedAt = updatedAt.Time

	return res, nil
}

// GetByID получает бронь по ID вместе с данными места
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(reservationColumns...).
		From("reservations r").
		Join("spots s ON s.id = r.spot_id").
		Where(squirrel.Eq{"r.id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	res, err := r.scanReservation(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrReservationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan reservation: %v", ErrScanRow, err)
	}

	return res, nil
}

// GetByUserID получает список броней пользователя, новые первыми
func (r *Repository) GetByUserID(ctx context.Context, userID int64) ([]*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(reservationColumns...).
		From("reservations r").
		Join("spots s ON s.id = r.spot_id").
		Where(squirrel.Eq{"r.user_id": userID}).
		OrderBy("r.start_date DESC, r.id DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanReservations(rows)
}

// GetOverlapping получает все брони, пересекающиеся с диапазоном дат
// (границы включены: r.start_date <= end AND r.end_date >= start).
// Внутри транзакции строки блокируются через FOR UPDATE — на этом держится
// защита от двойного бронирования при конкурентном принятии заявок.
func (r *Repository) GetOverlapping(ctx context.Context, start, end time.Time) ([]*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(reservationColumns...).
		From("reservations r").
		Join("spots s ON s.id = r.spot_id").
		Where(squirrel.LtOrEq{"r.start_date": end}).
		Where(squirrel.GtOrEq{"r.end_date": start}).
		OrderBy("r.spot_id ASC, r.start_date ASC")

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE OF r")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetOverlapping - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetOverlapping - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanReservations(rows)
}

// GetBySpotAndDate получает бронь указанного места, действующую в указанную дату.
// Используется для check-in: бронь ищется по месту, ограниченному текущей датой.
func (r *Repository) GetBySpotAndDate(ctx context.Context, spotID int64, date time.Time) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(reservationColumns...).
		From("reservations r").
		Join("spots s ON s.id = r.spot_id").
		Where(squirrel.Eq{"r.spot_id": spotID}).
		Where(squirrel.LtOrEq{"r.start_date": date}).
		Where(squirrel.GtOrEq{"r.end_date": date}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetBySpotAndDate - build select query: %v", ErrBuildQuery, err)
	}

	res, err := r.scanReservation(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrReservationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetBySpotAndDate - scan reservation: %v", ErrScanRow, err)
	}

	return res, nil
}

// SetCheckedIn выставляет отметку check-in.
// Условие status_checked = false гарантирует, что check_in_time
// выставляется не больше одного раза даже при конкурентных запросах.
func (r *Repository) SetCheckedIn(ctx context.Context, id int64, checkInTime time.Time) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("reservations").
		Set("status_checked", true).
		Set("check_in_time", checkInTime).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.Eq{"status_checked": false}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: SetCheckedIn - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: SetCheckedIn - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: SetCheckedIn - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrAlreadyCheckedIn
	}

	return nil
}

// Delete удаляет бронь (отмена подтверждённой брони)
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("reservations").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrReservationNotFound
	}

	return nil
}

// rowScanner общий интерфейс для *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanReservation сканирует одну бронь вместе с данными места
func (r *Repository) scanReservation(row rowScanner) (*domain.Reservation, error) {
	var res domain.Reservation
	var checkInTime sql.NullTime
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&res.ID,
		&res.UserID,
		&res.Spot.ID,
		&res.NeedsCharger,
		&res.StartDate,
		&res.EndDate,
		&res.StatusChecked,
		&checkInTime,
		&createdAt,
		&updatedAt,
		&res.Spot.RowLabel,
		&res.Spot.Number,
		&res.Spot.HasCharger,
		&res.Spot.IsAvailable,
	)
	if err != nil {
		return nil, err
	}

	if checkInTime.Valid {
		res.CheckInTime = &checkInTime.Time
	}
	res.CreatedAt = createdAt.Time
	res.UpdatedAt = updatedAt.Time

	return &res, nil
}

// scanReservations сканирует результаты запроса в слайс броней
func (r *Repository) scanReservations(rows *sql.Rows) ([]*domain.Reservation, error) {
	reservations := make([]*domain.Reservation, 0)

	for rows.Next() {
		res, err := r.scanReservation(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanReservations - scan row: %v", ErrScanRow, err)
		}
		reservations = append(reservations, res)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanReservations - rows error: %v", ErrScanRow, err)
	}

	return reservations, nil
}
