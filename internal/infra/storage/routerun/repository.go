package routerun

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/Carbyfah/magic-sub006/internal/domain"
	"github.com/Carbyfah/magic-sub006/pkg/dbmetrics"
	"github.com/Carbyfah/magic-sub006/pkg/psqlbuilder"
)

// Переиспользуем интерфейсы из dbmetrics для работы с БД
type DBExecutor = dbmetrics.DBExecutor

// routeRunColumns колонки выборки рейса с денормализацией состояния и транспорта
var routeRunColumns = []string{
	"rr.id",
	"rr.route_id",
	"rr.run_date",
	"rr.departure_time",
	"rr.vehicle_id",
	"rr.state_id",
	"s.kind",
	"v.capacity",
	"rr.deleted_at",
	"rr.created_at",
	"rr.updated_at",
}

// Repository репозиторий для работы с рейсами маршрутов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория рейсов маршрутов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает рейс по ID с видом состояния и вместимостью транспорта
//
// Внутри транзакции строка рейса блокируется FOR UPDATE: это и есть
// критическая секция бронирования - конкурирующие записи на один рейс
// сериализуются на этой блокировке, и повторная проверка занятости под ней
// закрывает гонку "оба прочитали старую занятость"
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.RouteRun, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(routeRunColumns...).
		From("route_runs rr").
		Join("states s ON s.id = rr.state_id").
		LeftJoin("vehicles v ON v.id = rr.vehicle_id AND v.deleted_at IS NULL").
		Where(squirrel.Eq{"rr.id": id}).
		Where("rr.deleted_at IS NULL")

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE OF rr")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	run, err := r.scanRouteRun(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrRouteRunNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan route run: %v", ErrScanRow, err)
	}

	return run, nil
}

// GetBookable получает рейсы маршрута на дату, доступные для бронирования
// (вид состояния activated), в детерминированном порядке:
// время отправления по возрастанию, затем ID по возрастанию
func (r *Repository) GetBookable(ctx context.Context, routeID int64, date time.Time) ([]*domain.RouteRun, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(routeRunColumns...).
		From("route_runs rr").
		Join("states s ON s.id = rr.state_id").
		LeftJoin("vehicles v ON v.id = rr.vehicle_id AND v.deleted_at IS NULL").
		Where(squirrel.Eq{"rr.route_id": routeID}).
		Where(squirrel.Eq{"rr.run_date": date}).
		Where(squirrel.Eq{"s.kind": domain.KindActivated}).
		Where("rr.deleted_at IS NULL").
		OrderBy("rr.departure_time ASC", "rr.id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetBookable - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetBookable - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanRouteRuns(rows)
}

// scanner удовлетворяется *sql.Row и *sql.Rows
type scanner interface {
	Scan(dest ...interface{}) error
}

// scanRouteRun сканирует одну строку рейса
func (r *Repository) scanRouteRun(s scanner) (*domain.RouteRun, error) {
	var run domain.RouteRun
	var vehicleCapacity sql.NullInt64
	var deletedAt, createdAt, updatedAt sql.NullTime

	err := s.Scan(
		&run.ID,
		&run.RouteID,
		&run.RunDate,
		&run.DepartureTime,
		&run.VehicleID,
		&run.StateID,
		&run.StateKind,
		&vehicleCapacity,
		&deletedAt,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if vehicleCapacity.Valid {
		c := int(vehicleCapacity.Int64)
		run.VehicleCapacity = &c
	}
	if deletedAt.Valid {
		t := deletedAt.Time
		run.DeletedAt = &t
	}
	run.CreatedAt = createdAt.Time
	run.UpdatedAt = updatedAt.Time

	return &run, nil
}

// scanRouteRuns сканирует результаты запроса в слайс рейсов
func (r *Repository) scanRouteRuns(rows *sql.Rows) ([]*domain.RouteRun, error) {
	runs := make([]*domain.RouteRun, 0)

	for rows.Next() {
		run, err := r.scanRouteRun(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanRouteRuns - scan row: %v", ErrScanRow, err)
		}
		runs = append(runs, run)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanRouteRuns - rows error: %v", ErrScanRow, err)
	}

	return runs, nil
}
