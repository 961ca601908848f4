package state

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/Carbyfah/magic-sub006/internal/domain"
	"github.com/Carbyfah/magic-sub006/pkg/dbmetrics"
	"github.com/Carbyfah/magic-sub006/pkg/psqlbuilder"
)

// stateColumns колонки таблицы states в порядке сканирования
var stateColumns = []string{
	"id",
	"context",
	"code",
	"name",
	"kind",
	"sort_order",
	"active",
	"deleted_at",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с каталогом состояний
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория состояний
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByContext получает активные состояния контекста, отсортированные по имени
func (r *Repository) GetByContext(ctx context.Context, stateContext domain.StateContext) ([]*domain.State, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(stateColumns...).
		From("states").
		Where(squirrel.Eq{"context": stateContext}).
		Where(squirrel.Eq{"active": true}).
		Where("deleted_at IS NULL").
		OrderBy("name ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByContext - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByContext - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanStates(rows)
}

// GetByID получает состояние по ID (включая неактивные, исключая удалённые)
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.State, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(stateColumns...).
		From("states").
		Where(squirrel.Eq{"id": id}).
		Where("deleted_at IS NULL").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	state, err := r.scanState(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrStateNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan state: %v", ErrScanRow, err)
	}

	return state, nil
}

// GetByContextAndName получает активное состояние контекста по точному имени
func (r *Repository) GetByContextAndName(ctx context.Context, stateContext domain.StateContext, name string) (*domain.State, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(stateColumns...).
		From("states").
		Where(squirrel.Eq{"context": stateContext}).
		Where(squirrel.Eq{"name": name}).
		Where(squirrel.Eq{"active": true}).
		Where("deleted_at IS NULL").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByContextAndName - build select query: %v", ErrBuildQuery, err)
	}

	state, err := r.scanState(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrStateNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByContextAndName - scan state: %v", ErrScanRow, err)
	}

	return state, nil
}

// GetInitialState получает начальное состояние контекста:
// активное состояние вида pending с наименьшим sort_order
func (r *Repository) GetInitialState(ctx context.Context, stateContext domain.StateContext) (*domain.State, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(stateColumns...).
		From("states").
		Where(squirrel.Eq{"context": stateContext}).
		Where(squirrel.Eq{"kind": domain.KindPending}).
		Where(squirrel.Eq{"active": true}).
		Where("deleted_at IS NULL").
		OrderBy("sort_order ASC", "id ASC").
		Limit(1).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetInitialState - build select query: %v", ErrBuildQuery, err)
	}

	state, err := r.scanState(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrStateNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetInitialState - scan state: %v", ErrScanRow, err)
	}

	return state, nil
}

// GetCodesByContext получает все коды состояний контекста
// Включая неактивные и удалённые: коды не переиспользуются
func (r *Repository) GetCodesByContext(ctx context.Context, stateContext domain.StateContext) ([]string, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("code").
		From("states").
		Where(squirrel.Eq{"context": stateContext}).
		OrderBy("code ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetCodesByContext - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetCodesByContext - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	codes := make([]string, 0)
	for rows.Next() {
		var code string
		if err := rows.Scan(&code); err != nil {
			return nil, fmt.Errorf("%w: GetCodesByContext - scan code: %v", ErrScanRow, err)
		}
		codes = append(codes, code)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetCodesByContext - rows error: %v", ErrScanRow, err)
	}

	return codes, nil
}

// Create создает новое состояние
func (r *Repository) Create(ctx context.Context, state *domain.State) (*domain.State, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("states").
		Columns("context", "code", "name", "kind", "sort_order", "active").
		Values(state.Context, state.Code, state.Name, state.Kind, state.SortOrder, state.Active).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&state.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	state.CreatedAt = createdAt.Time
	state.UpdatedAt = updatedAt.Time

	return state, nil
}

// CountReferences считает ссылки на состояние по всем таблицам сущностей,
// несущим контексты состояний. Мягко удалённые записи тоже считаются:
// они по-прежнему ссылаются на состояние
func (r *Repository) CountReferences(ctx context.Context, stateID int64) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	const query = `
		SELECT
			(SELECT COUNT(*) FROM vehicles     WHERE state_id = $1) +
			(SELECT COUNT(*) FROM route_runs   WHERE state_id = $1) +
			(SELECT COUNT(*) FROM tour_runs    WHERE state_id = $1) +
			(SELECT COUNT(*) FROM reservations WHERE state_id = $1) +
			(SELECT COUNT(*) FROM invoices     WHERE state_id = $1)`

	var count int64
	if err := executor.QueryRowContext(ctx, query, stateID).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: CountReferences - execute query: %v", ErrExecQuery, err)
	}

	return count, nil
}

// SoftDelete помечает состояние удалённым
func (r *Repository) SoftDelete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("states").
		Set("deleted_at", squirrel.Expr("NOW()")).
		Set("active", false).
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
		return ErrStateNotFound
	}

	return nil
}

// Deactivate помечает состояние неактивным (новые записи не могут его использовать)
func (r *Repository) Deactivate(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("states").
		Set("active", false).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Where("deleted_at IS NULL").
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Deactivate - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Deactivate - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Deactivate - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrStateNotFound
	}

	return nil
}

// scanner удовлетворяется *sql.Row и *sql.Rows
type scanner interface {
	Scan(dest ...interface{}) error
}

// scanState сканирует одну строку состояния
func (r *Repository) scanState(s scanner) (*domain.State, error) {
	var state domain.State
	var deletedAt, createdAt, updatedAt sql.NullTime

	err := s.Scan(
		&state.ID,
		&state.Context,
		&state.Code,
		&state.Name,
		&state.Kind,
		&state.SortOrder,
		&state.Active,
		&deletedAt,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if deletedAt.Valid {
		t := deletedAt.Time
		state.DeletedAt = &t
	}
	state.CreatedAt = createdAt.Time
	state.UpdatedAt = updatedAt.Time

	return &state, nil
}

// scanStates сканирует результаты запроса в слайс состояний
func (r *Repository) scanStates(rows *sql.Rows) ([]*domain.State, error) {
	states := make([]*domain.State, 0)

	for rows.Next() {
		state, err := r.scanState(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanStates - scan row: %v", ErrScanRow, err)
		}
		states = append(states, state)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanStates - rows error: %v", ErrScanRow, err)
	}

	return states, nil
}
