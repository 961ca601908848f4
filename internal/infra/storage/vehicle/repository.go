package vehicle

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

// Repository репозиторий для работы с транспортом
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория транспорта
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает транспорт по ID с видом его состояния
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Vehicle, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"v.id",
		"v.license_plate",
		"v.brand",
		"v.model",
		"v.capacity",
		"v.state_id",
		"s.name",
		"s.kind",
		"v.deleted_at",
		"v.created_at",
		"v.updated_at",
	).
		From("vehicles v").
		Join("states s ON s.id = v.state_id").
		Where(squirrel.Eq{"v.id": id}).
		Where("v.deleted_at IS NULL").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var vehicle domain.Vehicle
	var deletedAt, createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&vehicle.ID,
		&vehicle.LicensePlate,
		&vehicle.Brand,
		&vehicle.Model,
		&vehicle.Capacity,
		&vehicle.StateID,
		&vehicle.StateName,
		&vehicle.StateKind,
		&deletedAt,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrVehicleNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan vehicle: %v", ErrScanRow, err)
	}

	if deletedAt.Valid {
		t := deletedAt.Time
		vehicle.DeletedAt = &t
	}
	vehicle.CreatedAt = createdAt.Time
	vehicle.UpdatedAt = updatedAt.Time

	return &vehicle, nil
}

// UpdateState переводит транспорт в новое состояние
func (r *Repository) UpdateState(ctx context.Context, id int64, stateID int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("vehicles").
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
		return ErrVehicleNotFound
	}

	return nil
}
