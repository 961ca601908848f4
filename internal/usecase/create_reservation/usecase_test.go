package create_reservation_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Carbyfah/magic-sub006/internal/domain"
	stateRepo "github.com/Carbyfah/magic-sub006/internal/infra/storage/state"
	capacityModels "github.com/Carbyfah/magic-sub006/internal/service/capacity/models"
	"github.com/Carbyfah/magic-sub006/internal/usecase/create_reservation"
	"github.com/Carbyfah/magic-sub006/pkg/ptr"
)

type mockReservationRepository struct {
	createFn func(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error)
}

var _ create_reservation.ReservationRepository = (*mockReservationRepository)(nil)

func (m *mockReservationRepository) Create(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error) {
	return m.createFn(ctx, res)
}

type mockRouteRunRepository struct {
	getByIDFn func(ctx context.Context, id int64) (*domain.RouteRun, error)
}

var _ create_reservation.RouteRunRepository = (*mockRouteRunRepository)(nil)

func (m *mockRouteRunRepository) GetByID(ctx context.Context, id int64) (*domain.RouteRun, error) {
	return m.getByIDFn(ctx, id)
}

type mockTourRunRepository struct {
	getByIDFn func(ctx context.Context, id int64) (*domain.TourRun, error)
}

var _ create_reservation.TourRunRepository = (*mockTourRunRepository)(nil)

func (m *mockTourRunRepository) GetByID(ctx context.Context, id int64) (*domain.TourRun, error) {
	return m.getByIDFn(ctx, id)
}

type mockStateRepository struct {
	getInitialStateFn     func(ctx context.Context, stateContext domain.StateContext) (*domain.State, error)
	getByContextAndNameFn func(ctx context.Context, stateContext domain.StateContext, name string) (*domain.State, error)
}

var _ create_reservation.StateRepository = (*mockStateRepository)(nil)

func (m *mockStateRepository) GetInitialState(ctx context.Context, stateContext domain.StateContext) (*domain.State, error) {
	return m.getInitialStateFn(ctx, stateContext)
}

func (m *mockStateRepository) GetByContextAndName(ctx context.Context, stateContext domain.StateContext, name string) (*domain.State, error) {
	return m.getByContextAndNameFn(ctx, stateContext, name)
}

type mockCapacityValidator struct {
	validateRouteFn func(ctx context.Context, routeRunID int64, incoming int, excludeReservationID *int64) (*capacityModels.Result, error)
	validateTourFn  func(ctx context.Context, tourRunID int64, incoming int) (*capacityModels.Result, error)
}

var _ create_reservation.CapacityValidator = (*mockCapacityValidator)(nil)

func (m *mockCapacityValidator) ValidateRouteCapacity(ctx context.Context, routeRunID int64, incoming int, excludeReservationID *int64) (*capacityModels.Result, error) {
	return m.validateRouteFn(ctx, routeRunID, incoming, excludeReservationID)
}

func (m *mockCapacityValidator) ValidateTourCapacity(ctx context.Context, tourRunID int64, incoming int) (*capacityModels.Result, error) {
	return m.validateTourFn(ctx, tourRunID, incoming)
}

// mockTxManager выполняет функцию без реальной транзакции
type mockTxManager struct{}

var _ create_reservation.TransactionManager = (*mockTxManager)(nil)

func (mockTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

func pendingState() *domain.State {
	return &domain.State{
		ID:      1,
		Context: domain.ContextReservation,
		Code:    "RES001",
		Name:    "Pending",
		Kind:    domain.KindPending,
		Active:  true,
	}
}

func bookableRouteRun(id int64) *domain.RouteRun {
	return &domain.RouteRun{ID: id, RouteID: 10, StateKind: domain.KindActivated}
}

type fixture struct {
	reservations *mockReservationRepository
	routeRuns    *mockRouteRunRepository
	tourRuns     *mockTourRunRepository
	states       *mockStateRepository
	capacity     *mockCapacityValidator
}

func newFixture() *fixture {
	return &fixture{
		reservations: &mockReservationRepository{
			createFn: func(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error) {
				created := *res
				created.ID = 100
				created.CreatedAt = time.Now()
				created.UpdatedAt = created.CreatedAt
				return &created, nil
			},
		},
		routeRuns: &mockRouteRunRepository{
			getByIDFn: func(ctx context.Context, id int64) (*domain.RouteRun, error) {
				return bookableRouteRun(id), nil
			},
		},
		tourRuns: &mockTourRunRepository{
			getByIDFn: func(ctx context.Context, id int64) (*domain.TourRun, error) {
				return &domain.TourRun{ID: id, TourID: 20, StateKind: domain.KindActivated}, nil
			},
		},
		states: &mockStateRepository{
			getInitialStateFn: func(ctx context.Context, stateContext domain.StateContext) (*domain.State, error) {
				return pendingState(), nil
			},
			getByContextAndNameFn: func(ctx context.Context, stateContext domain.StateContext, name string) (*domain.State, error) {
				return nil, stateRepo.ErrStateNotFound
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

func (f *fixture) useCase() *create_reservation.UseCase {
	return create_reservation.NewUseCase(
		f.reservations, f.routeRuns, f.tourRuns, f.states, f.capacity, mockTxManager{}, noopLogger{},
	)
}

func validRouteRequest() *create_reservation.Request {
	return &create_reservation.Request{
		RouteRunID: ptr.Ptr(int64(5)),
		AgencyID:   ptr.Ptr(int64(3)),
		Adults:     2,
		Children:   1,
		Amount:     decimal.RequireFromString("450.00"),
		ActorID:    7,
	}
}

// TestExecute_routeRunSuccess проверяет успешное создание брони на рейс
// маршрута: начальное состояние берётся из каталога, все поля переносятся.
func TestExecute_routeRunSuccess(t *testing.T) {
	f := newFixture()
	var captured *domain.Reservation
	f.reservations.createFn = func(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error) {
		captured = res
		created := *res
		created.ID = 100
		return &created, nil
	}

	resp, err := f.useCase().Execute(context.Background(), validRouteRequest())

	require.NoError(t, err)
	require.NotNil(t, captured)
	assert.Equal(t, int64(100), resp.ID)
	assert.Equal(t, int64(5), *resp.RouteRunID)
	assert.Nil(t, resp.TourRunID)
	assert.Equal(t, int64(1), captured.StateID)
	assert.Equal(t, "Pending", captured.StateName)
	assert.Equal(t, domain.KindPending, captured.StateKind)
	assert.Equal(t, int64(7), captured.CreatedBy)
	assert.Equal(t, "450.00", resp.Amount)
}

// TestExecute_tourRunSuccess проверяет создание брони на выезд тура:
// вместимость не ограничивает, но выезд обязан существовать и принимать брони.
func TestExecute_tourRunSuccess(t *testing.T) {
	f := newFixture()

	req := validRouteRequest()
	req.RouteRunID = nil
	req.TourRunID = ptr.Ptr(int64(9))

	resp, err := f.useCase().Execute(context.Background(), req)

	require.NoError(t, err)
	assert.Nil(t, resp.RouteRunID)
	assert.Equal(t, int64(9), *resp.TourRunID)
}

// TestExecute_capacityExceeded проверяет отказ, когда валидатор вместимости
// сообщает о нехватке мест, с текстом причины в ошибке.
func TestExecute_capacityExceeded(t *testing.T) {
	f := newFixture()
	f.capacity.validateRouteFn = func(ctx context.Context, routeRunID int64, incoming int, excludeReservationID *int64) (*capacityModels.Result, error) {
		return capacityModels.Exceeded(2), nil
	}

	_, err := f.useCase().Execute(context.Background(), validRouteRequest())

	require.Error(t, err)
	assert.ErrorIs(t, err, create_reservation.ErrCapacityExceeded)
	assert.Contains(t, err.Error(), "2 seats available")
}

// TestExecute_vehicleMissing проверяет, что отказ валидатора из-за
// отсутствующего транспорта не выдаётся за нехватку мест.
func TestExecute_vehicleMissing(t *testing.T) {
	f := newFixture()
	f.capacity.validateRouteFn = func(ctx context.Context, routeRunID int64, incoming int, excludeReservationID *int64) (*capacityModels.Result, error) {
		return capacityModels.NotFound(capacityModels.MissingVehicle), nil
	}

	_, err := f.useCase().Execute(context.Background(), validRouteRequest())

	require.Error(t, err)
	assert.ErrorIs(t, err, create_reservation.ErrVehicleNotFound)
	assert.NotErrorIs(t, err, create_reservation.ErrCapacityExceeded)
}

// TestExecute_explicitInitialState проверяет создание брони в явно указанном
// состоянии начального вида.
func TestExecute_explicitInitialState(t *testing.T) {
	f := newFixture()
	f.states.getInitialStateFn = func(ctx context.Context, stateContext domain.StateContext) (*domain.State, error) {
		t.Fatal("catalog default must not be consulted when a state is supplied")
		return nil, nil
	}
	f.states.getByContextAndNameFn = func(ctx context.Context, stateContext domain.StateContext, name string) (*domain.State, error) {
		return &domain.State{
			ID:      9,
			Context: domain.ContextReservation,
			Code:    "RES009",
			Name:    name,
			Kind:    domain.KindPending,
			Active:  true,
		}, nil
	}

	var captured *domain.Reservation
	f.reservations.createFn = func(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error) {
		captured = res
		created := *res
		created.ID = 100
		return &created, nil
	}

	req := validRouteRequest()
	req.State = ptr.Ptr("Draft")

	resp, err := f.useCase().Execute(context.Background(), req)

	require.NoError(t, err)
	require.NotNil(t, captured)
	assert.Equal(t, int64(9), captured.StateID)
	assert.Equal(t, "Draft", captured.StateName)
	assert.Equal(t, "Draft", resp.StateName)
}

// TestExecute_explicitStateNotInitial проверяет отказ, когда явно указанное
// состояние существует, но не является начальным.
func TestExecute_explicitStateNotInitial(t *testing.T) {
	f := newFixture()
	f.states.getByContextAndNameFn = func(ctx context.Context, stateContext domain.StateContext, name string) (*domain.State, error) {
		return &domain.State{
			ID:      2,
			Context: domain.ContextReservation,
			Code:    "RES002",
			Name:    name,
			Kind:    domain.KindConfirmed,
			Active:  true,
		}, nil
	}
	f.reservations.createFn = func(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error) {
		t.Fatal("repository must not be called for a non-initial state")
		return nil, nil
	}

	req := validRouteRequest()
	req.State = ptr.Ptr("Confirmed")

	_, err := f.useCase().Execute(context.Background(), req)

	assert.ErrorIs(t, err, create_reservation.ErrStateNotInitial)
}

// TestExecute_explicitStateUnknown проверяет отказ для состояния,
// отсутствующего в каталоге бронирований.
func TestExecute_explicitStateUnknown(t *testing.T) {
	f := newFixture()

	req := validRouteRequest()
	req.State = ptr.Ptr("Archived")

	_, err := f.useCase().Execute(context.Background(), req)

	assert.ErrorIs(t, err, create_reservation.ErrUnknownState)
}

// TestExecute_runNotBookable проверяет отказ для рейса, не принимающего брони.
func TestExecute_runNotBookable(t *testing.T) {
	f := newFixture()
	f.routeRuns.getByIDFn = func(ctx context.Context, id int64) (*domain.RouteRun, error) {
		return &domain.RouteRun{ID: id, StateKind: domain.KindScheduled}, nil
	}

	_, err := f.useCase().Execute(context.Background(), validRouteRequest())

	assert.ErrorIs(t, err, create_reservation.ErrRunNotBookable)
}

// TestExecute_noInitialState проверяет отказ, когда каталог не содержит
// начального состояния бронирований.
func TestExecute_noInitialState(t *testing.T) {
	f := newFixture()
	f.states.getInitialStateFn = func(ctx context.Context, stateContext domain.StateContext) (*domain.State, error) {
		return nil, stateRepo.ErrStateNotFound
	}

	_, err := f.useCase().Execute(context.Background(), validRouteRequest())

	assert.ErrorIs(t, err, create_reservation.ErrNoInitialState)
}

// TestExecute_validation проверяет отклонение некорректных запросов
// до обращения к хранилищу.
func TestExecute_validation(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(req *create_reservation.Request)
		expected error
	}{
		{
			"both service refs",
			func(req *create_reservation.Request) { req.TourRunID = ptr.Ptr(int64(9)) },
			create_reservation.ErrBothServiceRefs,
		},
		{
			"no service ref",
			func(req *create_reservation.Request) { req.RouteRunID = nil },
			create_reservation.ErrNoServiceRef,
		},
		{
			"zero passengers",
			func(req *create_reservation.Request) { req.Adults, req.Children = 0, 0 },
			create_reservation.ErrInvalidInput,
		},
		{
			"negative children",
			func(req *create_reservation.Request) { req.Children = -1 },
			create_reservation.ErrInvalidInput,
		},
		{
			"too many passengers",
			func(req *create_reservation.Request) { req.Adults = domain.MaxPassengers + 1 },
			create_reservation.ErrInvalidInput,
		},
		{
			"negative amount",
			func(req *create_reservation.Request) { req.Amount = decimal.RequireFromString("-1") },
			create_reservation.ErrInvalidInput,
		},
		{
			"missing actor",
			func(req *create_reservation.Request) { req.ActorID = 0 },
			create_reservation.ErrInvalidInput,
		},
		{
			"blank state",
			func(req *create_reservation.Request) { req.State = ptr.Ptr("   ") },
			create_reservation.ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			f.reservations.createFn = func(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error) {
				t.Fatal("repository must not be called for invalid input")
				return nil, nil
			}

			req := validRouteRequest()
			tt.mutate(req)

			_, err := f.useCase().Execute(context.Background(), req)

			assert.ErrorIs(t, err, tt.expected)
		})
	}
}
