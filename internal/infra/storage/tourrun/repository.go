package tourrun

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

// tourRunColumns колонки выборки рейса тура с денормализацией состояния
var tourRunColumns = []string{
	"tr.id",
	"tr.tour_id",
	"tr.run_date",
	"tr.departure_time",
	"tr.guide_id",
	"tr.state_id",
	"s.kind",
	"tr.deleted_at",
	"tr.created_at",
	"tr.updated_at",
}

// Repository репозиторий для работы с рейсами туров
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория рейсов туров
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает рейс тура по ID с видом состояния
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.TourRun, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(tourRunColumns...).
		From("tour_runs tr").
		Join("states s ON s.id = tr.state_id").
		Where(squirrel.Eq{"tr.id": id}).
		Where("tr.deleted_at IS NULL").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	run, err := r.scanTourRun(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrTourRunNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan tour run: %v", ErrScanRow, err)
	}

	return run, nil
}

// GetBookable получает рейсы тура на дату, доступные для бронирования
// (вид состояния activated), в детерминированном порядке:
// время отправления по возрастанию, затем ID по возрастанию
func (r *Repository) GetBookable(ctx context.Context, tourID int64, date time.Time) ([]*domain.TourRun, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(tourRunColumns...).
		From("tour_runs tr").
		Join("states s ON s.id = tr.state_id").
		Where(squirrel.Eq{"tr.tour_id": tourID}).
		Where(squirrel.Eq{"tr.run_date": date}).
		Where(squirrel.Eq{"s.kind": domain.KindActivated}).
		Where("tr.deleted_at IS NULL").
		OrderBy("tr.departure_time ASC", "tr.id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetBookable - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetBookable - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanTourRuns(rows)
}

// scanner удовлетворяется *sql.Row и *sql.Rows
type scanner interface {
	Scan(dest ...interface{}) error
}

// scanTourRun сканирует одну строку рейса тура
func (r *Repository) scanTourRun(s scanner) (*domain.TourRun, error) {
	var run domain.TourRun
	var deletedAt, createdAt, updatedAt sql.NullTime

	err := s.Scan(
		&run.ID,
		&run.TourID,
		&run.RunDate,
		&run.DepartureTime,
		&run.GuideID,
		&run.StateID,
		&run.StateKind,
		&deletedAt,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if deletedAt.Valid {
		t := deletedAt.Time
		run.DeletedAt = &t
	}
	run.CreatedAt = createdAt.Time
	run.UpdatedAt = updatedAt.Time

	return &run, nil
}

// scanTourRuns сканирует результаты запроса в слайс рейсов туров
func (r *Repository) scanTourRuns(rows *sql.Rows) ([]*domain.TourRun, error) {
	runs := make([]*domain.TourRun, 0)

	for rows.Next() {
		run, err := r.scanTourRun(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanTourRuns - scan row: %v", ErrScanRow, err)
		}
		runs = append(runs, run)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanTourRuns - rows error: %v", ErrScanRow, err)
	}

	return runs, nil
}
