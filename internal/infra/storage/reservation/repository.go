package reservation

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/Carbyfah/magic-sub006/internal/domain"
	"github.com/Carbyfah/magic-sub006/pkg/dbmetrics"
	"github.com/Carbyfah/magic-sub006/pkg/psqlbuilder"
)

// Переиспользуем интерфейсы из dbmetrics для работы с БД
type DBExecutor = dbmetrics.DBExecutor

// reservationColumns колонки выборки бронирования с денормализацией состояния
var reservationColumns = []string{
	"r.id",
	"r.route_run_id",
	"r.tour_run_id",
	"r.agency_id",
	"r.adults",
	"r.children",
	"r.amount",
	"r.state_id",
	"s.name",
	"s.kind",
	"r.notes",
	"r.cancellation_reason",
	"r.cancelled_at",
	"r.created_by",
	"r.deleted_at",
	"r.created_at",
	"r.updated_at",
}

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое бронирование и возвращает его с заполненными полями из БД
func (r *Repository) Create(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("reservations").
		Columns(
			"route_run_id",
			"tour_run_id",
			"agency_id",
			"adults",
			"children",
			"amount",
			"state_id",
			"notes",
			"created_by",
		).
		Values(
			res.RouteRunID,
			res.TourRunID,
			res.AgencyID,
			res.Adults,
			res.Children,
			res.Amount,
			res.StateID,
			res.Notes,
			res.CreatedBy,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	created := *res
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&created.ID,
		&created.CreatedAt,
		&created.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return &created, nil
}

// GetByID получает бронирование по ID с именем и видом состояния
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(reservationColumns...).
		From("reservations r").
		Join("states s ON s.id = r.state_id").
		Where(squirrel.Eq{"r.id": id}).
		Where("r.deleted_at IS NULL").
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

// ActiveOccupancy считает суммарное число пассажиров в активных бронированиях рейса.
// Активными считаются неудаленные бронирования в любом состоянии кроме отмененного.
// excludeID исключает из суммы собственную занятость при перерасчете существующего
// бронирования
func (r *Repository) ActiveOccupancy(ctx context.Context, routeRunID int64, excludeID *int64) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select("COALESCE(SUM(r.adults + r.children), 0)").
		From("reservations r").
		Join("states s ON s.id = r.state_id").
		Where(squirrel.Eq{"r.route_run_id": routeRunID}).
		Where(squirrel.NotEq{"s.kind": domain.KindCancelled}).
		Where("r.deleted_at IS NULL")

	if excludeID != nil {
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"r.id": *excludeID})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: ActiveOccupancy - build select query: %v", ErrBuildQuery, err)
	}

	var occupied int
	err = executor.QueryRowContext(ctx, query, args...).Scan(&occupied)
	if err != nil {
		return 0, fmt.Errorf("%w: ActiveOccupancy - scan sum: %v", ErrScanRow, err)
	}

	return occupied, nil
}

// Update обновляет изменяемые поля бронирования
func (r *Repository) Update(ctx context.Context, res *domain.Reservation) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("reservations").
		Set("route_run_id", res.RouteRunID).
		Set("tour_run_id", res.TourRunID).
		Set("agency_id", res.AgencyID).
		Set("adults", res.Adults).
		Set("children", res.Children).
		Set("amount", res.Amount).
		Set("notes", res.Notes).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": res.ID}).
		Where("deleted_at IS NULL").
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Update - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrReservationNotFound
	}

	return nil
}

// UpdateState переводит бронирование в новое состояние
func (r *Repository) UpdateState(ctx context.Context, id int64, stateID int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("reservations").
		Set("state_id", stateID).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Where("deleted_at IS NULL").
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateState - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateState - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateState - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrReservationNotFound
	}

	return nil
}

// Cancel переводит бронирование в отмененное состояние с фиксацией причины
// и момента отмены
func (r *Repository) Cancel(ctx context.Context, id int64, stateID int64, reason string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("reservations").
		Set("state_id", stateID).
		Set("cancellation_reason", reason).
		Set("cancelled_at", squirrel.Expr("NOW()")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Where("deleted_at IS NULL").
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Cancel - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Cancel - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Cancel - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrReservationNotFound
	}

	return nil
}

// SoftDelete помечает бронирование удаленным, сохраняя строку в истории
func (r *Repository) SoftDelete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("reservations").
		Set("deleted_at", squirrel.Expr("NOW()")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Where("deleted_at IS NULL").
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: SoftDelete - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: SoftDelete - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: SoftDelete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrReservationNotFound
	}

	return nil
}

// GetWithFilter получает бронирования по комбинации фильтров
// в порядке создания от новых к старым
func (r *Repository) GetWithFilter(ctx context.Context, filter *domain.ReservationsFilter) ([]*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(reservationColumns...).
		From("reservations r").
		Join("states s ON s.id = r.state_id").
		Where("r.deleted_at IS NULL")

	if filter != nil {
		if filter.AgencyID != nil {
			selectBuilder = selectBuilder.Where(squirrel.Eq{"r.agency_id": *filter.AgencyID})
		}
		if filter.DirectOnly {
			selectBuilder = selectBuilder.Where("r.agency_id IS NULL")
		}
		if filter.RouteRunID != nil {
			selectBuilder = selectBuilder.Where(squirrel.Eq{"r.route_run_id": *filter.RouteRunID})
		}
		if filter.TourRunID != nil {
			selectBuilder = selectBuilder.Where(squirrel.Eq{"r.tour_run_id": *filter.TourRunID})
		}
		if filter.StateID != nil {
			selectBuilder = selectBuilder.Where(squirrel.Eq{"r.state_id": *filter.StateID})
		}
		if filter.StartDate != nil {
			selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"r.created_at": *filter.StartDate})
		}
		if filter.EndDate != nil {
			selectBuilder = selectBuilder.Where(squirrel.LtOrEq{"r.created_at": *filter.EndDate})
		}
		if !filter.IncludeInactive {
			selectBuilder = selectBuilder.Where(squirrel.NotEq{"s.kind": domain.KindCancelled})
		}
	}

	query, args, err := selectBuilder.
		OrderBy("r.created_at DESC", "r.id DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetWithFilter - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetWithFilter - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanReservations(rows)
}

// scanner удовлетворяется *sql.Row и *sql.Rows
type scanner interface {
	Scan(dest ...interface{}) error
}

// scanReservation сканирует одну строку бронирования
func (r *Repository) scanReservation(s scanner) (*domain.Reservation, error) {
	var res domain.Reservation
	var cancelledAt, deletedAt, createdAt, updatedAt sql.NullTime

	err := s.Scan(
		&res.ID,
		&res.RouteRunID,
		&res.TourRunID,
		&res.AgencyID,
		&res.Adults,
		&res.Children,
		&res.Amount,
		&res.StateID,
		&res.StateName,
		&res.StateKind,
		&res.Notes,
		&res.CancellationReason,
		&cancelledAt,
		&res.CreatedBy,
		&deletedAt,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if cancelledAt.Valid {
		t := cancelledAt.Time
		res.CancelledAt = &t
	}
	if deletedAt.Valid {
		t := deletedAt.Time
		res.DeletedAt = &t
	}
	res.CreatedAt = createdAt.Time
	res.UpdatedAt = updatedAt.Time

	return &res, nil
}

// scanReservations сканирует результаты запроса в слайс бронирований
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
