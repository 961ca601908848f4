package update_reservation_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Carbyfah/magic-sub006/internal/domain"
	reservationRepo "github.com/Carbyfah/magic-sub006/internal/infra/storage/reservation"
	capacityModels "github.com/Carbyfah/magic-sub006/internal/service/capacity/models"
	"github.com/Carbyfah/magic-sub006/internal/usecase/update_reservation"
	"github.com/Carbyfah/magic-sub006/pkg/ptr"
)

type mockReservationRepository struct {
	getByIDFn func(ctx context.Context, id int64) (*domain.Reservation, error)
	updateFn  func(ctx context.Context, res *domain.Reservation) error
}

var _ update_reservation.ReservationRepository = (*mockReservationRepository)(nil)

func (m *mockReservationRepository) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	return m.getByIDFn(ctx, id)
}

func (m *mockReservationRepository) Update(ctx context.Context, res *domain.Reservation) error {
	return m.updateFn(ctx, res)
}

type mockRouteRunRepository struct {
	getByIDFn func(ctx context.Context, id int64) (*domain.RouteRun, error)
}

var _ update_reservation.RouteRunRepository = (*mockRouteRunRepository)(nil)

func (m *mockRouteRunRepository) GetByID(ctx context.Context, id int64) (*domain.RouteRun, error) {
	return m.getByIDFn(ctx, id)
}

type mockTourRunRepository struct {
	getByIDFn func(ctx context.Context, id int64) (*domain.TourRun, error)
}

var _ update_reservation.TourRunRepository = (*mockTourRunRepository)(nil)

func (m *mockTourRunRepository) GetByID(ctx context.Context, id int64) (*domain.TourRun, error) {
	return m.getByIDFn(ctx, id)
}

type mockCapacityValidator struct {
	validateRouteFn func(ctx context.Context, routeRunID int64, incoming int, excludeReservationID *int64) (*capacityModels.Result, error)
	validateTourFn  func(ctx context.Context, tourRunID int64, incoming int) (*capacityModels.Result, error)
}

var _ update_reservation.CapacityValidator = (*mockCapacityValidator)(nil)

func (m *mockCapacityValidator) ValidateRouteCapacity(ctx context.Context, routeRunID int64, incoming int, excludeReservationID *int64) (*capacityModels.Result, error) {
	return m.validateRouteFn(ctx, routeRunID, incoming, excludeReservationID)
}

func (m *mockCapacityValidator) ValidateTourCapacity(ctx context.Context, tourRunID int64, incoming int) (*capacityModels.Result, error) {
	return m.validateTourFn(ctx, tourRunID, incoming)
}

type mockTxManager struct{}

var _ update_reservation.TransactionManager = (*mockTxManager)(nil)

func (mockTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

func pendingReservation(id int64) *domain.Reservation {
	return &domain.Reservation{
		ID:         id,
		RouteRunID: ptr.Ptr(int64(5)),
		Adults:     2,
		Children:   0,
		Amount:     decimal.RequireFromString("300.00"),
		StateID:    1,
		StateName:  "Pending",
		StateKind:  domain.KindPending,
		CreatedBy:  7,
	}
}

type fixture struct {
	reservations *mockReservationRepository
	routeRuns    *mockRouteRunRepository
	tourRuns     *mockTourRunRepository
	capacity     *mockCapacityValidator
}

func newFixture() *fixture {
	return &fixture{
		reservations: &mockReservationRepository{
			getByIDFn: func(ctx context.Context, id int64) (*domain.Reservation, error) {
				return pendingReservation(id), nil
			},
			updateFn: func(ctx context.Context, res *domain.Reservation) error {
				return nil
			},
		},
		routeRuns: &mockRouteRunRepository{
			getByIDFn: func(ctx context.Context, id int64) (*domain.RouteRun, error) {
				return &domain.RouteRun{ID: id, StateKind: domain.KindActivated}, nil
			},
		},
		tourRuns: &mockTourRunRepository{
			getByIDFn: func(ctx context.Context, id int64) (*domain.TourRun, error) {
				return &domain.TourRun{ID: id, StateKind: domain.KindActivated}, nil
			},
		},
		capacity: &mockCapacityValidator{
			validateRouteFn: func(ctx context.Context, routeRunID int64, incoming int, excludeReservationID *int64) (*capacityModels.Result, error) {
				return capacityModels.Available(), nil
			},
			validateTourFn: func(ctx context.Context, tourRunID int64, incoming int) (*capacityModels.Result, error) {
				return capacityModels.Unlimited(), nil
			},
		},
	}
}

func (f *fixture) useCase() *update_reservation.UseCase {
	return update_reservation.NewUseCase(
		f.reservations, f.routeRuns, f.tourRuns, f.capacity, mockTxManager{}, noopLogger{},
	)
}

func validRequest() *update_reservation.Request {
	return &update_reservation.Request{
		ReservationID: 100,
		RouteRunID:    ptr.Ptr(int64(5)),
		Adults:        3,
		Children:      1,
		Amount:        decimal.RequireFromString("600.00"),
		ActorID:       7,
	}
}

// TestExecute_success проверяет изменение брони: новые поля применяются
// и результат перечитывается из хранилища.
func TestExecute_success(t *testing.T) {
	f := newFixture()
	var updated *domain.Reservation
	f.reservations.updateFn = func(ctx context.Context, res *domain.Reservation) error {
		updated = res
		return nil
	}

	resp, err := f.useCase().Execute(context.Background(), validRequest())

	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, 3, updated.Adults)
	assert.Equal(t, 1, updated.Children)
	assert.Equal(t, "600.00", updated.Amount.StringFixed(2))
	assert.Equal(t, int64(100), resp.ID)
	assert.Equal(t, "600.00", resp.Amount)
}

// TestExecute_lockedReservation проверяет, что брони в финальных состояниях
// (исполнена, отменена, выставлен счёт) не изменяются.
func TestExecute_lockedReservation(t *testing.T) {
	lockedKinds := []domain.StateKind{domain.KindExecuted, domain.KindCancelled, domain.KindInvoiced}

	for _, kind := range lockedKinds {
		t.Run(string(kind), func(t *testing.T) {
			f := newFixture()
			f.reservations.getByIDFn = func(ctx context.Context, id int64) (*domain.Reservation, error) {
				res := pendingReservation(id)
				res.StateKind = kind
				return res, nil
			}
			updateCalled := false
			f.reservations.updateFn = func(ctx context.Context, res *domain.Reservation) error {
				updateCalled = true
				return nil
			}

			_, err := f.useCase().Execute(context.Background(), validRequest())

			assert.ErrorIs(t, err, update_reservation.ErrReservationLocked)
			assert.False(t, updateCalled)
		})
	}
}

// TestExecute_excludesOwnSeats проверяет, что при пере-валидации вместимости
// собственная бронь исключается из занятости.
func TestExecute_excludesOwnSeats(t *testing.T) {
	f := newFixture()
	var gotExclude *int64
	f.capacity.validateRouteFn = func(ctx context.Context, routeRunID int64, incoming int, excludeReservationID *int64) (*capacityModels.Result, error) {
		gotExclude = excludeReservationID
		return capacityModels.Available(), nil
	}

	_, err := f.useCase().Execute(context.Background(), validRequest())

	require.NoError(t, err)
	require.NotNil(t, gotExclude)
	assert.Equal(t, int64(100), *gotExclude)
}

// TestExecute_capacityExceeded проверяет отказ при нехватке мест на новом рейсе.
func TestExecute_capacityExceeded(t *testing.T) {
	f := newFixture()
	f.capacity.validateRouteFn = func(ctx context.Context, routeRunID int64, incoming int, excludeReservationID *int64) (*capacityModels.Result, error) {
		return capacityModels.Exceeded(1), nil
	}

	_, err := f.useCase().Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, update_reservation.ErrCapacityExceeded)
}

// TestExecute_vehicleMissing проверяет, что отказ валидатора из-за
// отсутствующего транспорта не выдаётся за нехватку мест.
func TestExecute_vehicleMissing(t *testing.T) {
	f := newFixture()
	f.capacity.validateRouteFn = func(ctx context.Context, routeRunID int64, incoming int, excludeReservationID *int64) (*capacityModels.Result, error) {
		return capacityModels.NotFound(capacityModels.MissingVehicle), nil
	}

	_, err := f.useCase().Execute(context.Background(), validRequest())

	require.Error(t, err)
	assert.ErrorIs(t, err, update_reservation.ErrVehicleNotFound)
	assert.NotErrorIs(t, err, update_reservation.ErrCapacityExceeded)
}

// TestExecute_notFound проверяет маппинг отсутствующей брони в сентинель.
func TestExecute_notFound(t *testing.T) {
	f := newFixture()
	f.reservations.getByIDFn = func(ctx context.Context, id int64) (*domain.Reservation, error) {
		return nil, reservationRepo.ErrReservationNotFound
	}

	_, err := f.useCase().Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, update_reservation.ErrReservationNotFound)
}

// TestExecute_switchToTourRun проверяет перенос брони с рейса маршрута
// на выезд тура.
func TestExecute_switchToTourRun(t *testing.T) {
	f := newFixture()

	req := validRequest()
	req.RouteRunID = nil
	req.TourRunID = ptr.Ptr(int64(9))

	resp, err := f.useCase().Execute(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, int64(100), resp.ID)
}

// TestExecute_validation проверяет отклонение некорректных запросов.
func TestExecute_validation(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(req *update_reservation.Request)
		expected error
	}{
		{
			"both service refs",
			func(req *update_reservation.Request) { req.TourRunID = ptr.Ptr(int64(9)) },
			update_reservation.ErrBothServiceRefs,
		},
		{
			"no service ref",
			func(req *update_reservation.Request) { req.RouteRunID = nil },
			update_reservation.ErrNoServiceRef,
		},
		{
			"missing reservation id",
			func(req *update_reservation.Request) { req.ReservationID = 0 },
			update_reservation.ErrInvalidInput,
		},
		{
			"zero passengers",
			func(req *update_reservation.Request) { req.Adults, req.Children = 0, 0 },
			update_reservation.ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()

			req := validRequest()
			tt.mutate(req)

			_, err := f.useCase().Execute(context.Background(), req)

			assert.ErrorIs(t, err, tt.expected)
		})
	}
}
