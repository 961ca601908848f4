package transition_reservation_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Carbyfah/magic-sub006/internal/domain"
	reservationRepo "github.com/Carbyfah/magic-sub006/internal/infra/storage/reservation"
	stateRepo "github.com/Carbyfah/magic-sub006/internal/infra/storage/state"
	"github.com/Carbyfah/magic-sub006/internal/usecase/transition_reservation"
	"github.com/Carbyfah/magic-sub006/pkg/ptr"
)

type mockReservationRepository struct {
	getByIDFn     func(ctx context.Context, id int64) (*domain.Reservation, error)
	updateStateFn func(ctx context.Context, id int64, stateID int64) error
	cancelFn      func(ctx context.Context, id int64, stateID int64, reason string) error
}

var _ transition_reservation.ReservationRepository = (*mockReservationRepository)(nil)

func (m *mockReservationRepository) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	return m.getByIDFn(ctx, id)
}

func (m *mockReservationRepository) UpdateState(ctx context.Context, id int64, stateID int64) error {
	return m.updateStateFn(ctx, id, stateID)
}

func (m *mockReservationRepository) Cancel(ctx context.Context, id int64, stateID int64, reason string) error {
	return m.cancelFn(ctx, id, stateID, reason)
}

type mockStateRepository struct {
	getByContextAndNameFn func(ctx context.Context, stateContext domain.StateContext, name string) (*domain.State, error)
}

var _ transition_reservation.StateRepository = (*mockStateRepository)(nil)

func (m *mockStateRepository) GetByContextAndName(ctx context.Context, stateContext domain.StateContext, name string) (*domain.State, error) {
	return m.getByContextAndNameFn(ctx, stateContext, name)
}

type mockTxManager struct{}

var _ transition_reservation.TransactionManager = (*mockTxManager)(nil)

func (mockTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

// catalog каталог состояний бронирований для разрешения по имени
var catalog = map[string]*domain.State{
	"Pending":   {ID: 1, Context: domain.ContextReservation, Name: "Pending", Kind: domain.KindPending},
	"Confirmed": {ID: 2, Context: domain.ContextReservation, Name: "Confirmed", Kind: domain.KindConfirmed},
	"Executed":  {ID: 3, Context: domain.ContextReservation, Name: "Executed", Kind: domain.KindExecuted},
	"Cancelled": {ID: 4, Context: domain.ContextReservation, Name: "Cancelled", Kind: domain.KindCancelled},
	"Invoiced":  {ID: 5, Context: domain.ContextReservation, Name: "Invoiced", Kind: domain.KindInvoiced},
}

type fixture struct {
	reservations *mockReservationRepository
	states       *mockStateRepository

	// current меняется мок-репозиторием при переводе, имитируя хранилище
	current *domain.Reservation
}

func newFixture(stateName string, kind domain.StateKind) *fixture {
	f := &fixture{
		current: &domain.Reservation{
			ID:        100,
			Adults:    2,
			StateID:   catalog[stateName].ID,
			StateName: stateName,
			StateKind: kind,
		},
	}

	f.reservations = &mockReservationRepository{
		getByIDFn: func(ctx context.Context, id int64) (*domain.Reservation, error) {
			copied := *f.current
			return &copied, nil
		},
		updateStateFn: func(ctx context.Context, id int64, stateID int64) error {
			for _, s := range catalog {
				if s.ID == stateID {
					f.current.StateID = s.ID
					f.current.StateName = s.Name
					f.current.StateKind = s.Kind
				}
			}
			f.current.UpdatedAt = time.Now()
			return nil
		},
		cancelFn: func(ctx context.Context, id int64, stateID int64, reason string) error {
			for _, s := range catalog {
				if s.ID == stateID {
					f.current.StateID = s.ID
					f.current.StateName = s.Name
					f.current.StateKind = s.Kind
				}
			}
			f.current.CancellationReason = &reason
			now := time.Now()
			f.current.CancelledAt = &now
			f.current.UpdatedAt = now
			return nil
		},
	}

	f.states = &mockStateRepository{
		getByContextAndNameFn: func(ctx context.Context, stateContext domain.StateContext, name string) (*domain.State, error) {
			s, ok := catalog[name]
			if !ok {
				return nil, stateRepo.ErrStateNotFound
			}
			return s, nil
		},
	}

	return f
}

func (f *fixture) useCase() *transition_reservation.UseCase {
	return transition_reservation.NewUseCase(f.reservations, f.states, mockTxManager{}, noopLogger{})
}

// TestExecute_confirm проверяет перевод Pending -> Confirmed: состояние
// меняется, предыдущее имя возвращается в ответе.
func TestExecute_confirm(t *testing.T) {
	f := newFixture("Pending", domain.KindPending)

	resp, err := f.useCase().Execute(context.Background(), &transition_reservation.Request{
		ReservationID: 100,
		TargetState:   "Confirmed",
		ActorID:       7,
	})

	require.NoError(t, err)
	assert.Equal(t, "Pending", resp.PreviousState)
	assert.Equal(t, "Confirmed", resp.StateName)
	assert.Equal(t, string(domain.KindConfirmed), resp.StateKind)
	assert.Nil(t, resp.CancellationReason)
}

// TestExecute_illegalTransition проверяет запрет перехода, отсутствующего
// в графе: Pending нельзя перевести сразу в Executed.
func TestExecute_illegalTransition(t *testing.T) {
	f := newFixture("Pending", domain.KindPending)

	_, err := f.useCase().Execute(context.Background(), &transition_reservation.Request{
		ReservationID: 100,
		TargetState:   "Executed",
		ActorID:       7,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, transition_reservation.ErrTransitionNotAllowed)
	assert.Contains(t, err.Error(), `"Pending" -> "Executed"`)
}

// TestExecute_terminalState проверяет, что из терминальных состояний
// переходов нет.
func TestExecute_terminalState(t *testing.T) {
	f := newFixture("Cancelled", domain.KindCancelled)

	_, err := f.useCase().Execute(context.Background(), &transition_reservation.Request{
		ReservationID: 100,
		TargetState:   "Pending",
		ActorID:       7,
	})

	assert.ErrorIs(t, err, transition_reservation.ErrTransitionNotAllowed)
}

// TestExecute_cancelRecordsReason проверяет отмену: причина и момент отмены
// сохраняются и возвращаются в ответе.
func TestExecute_cancelRecordsReason(t *testing.T) {
	f := newFixture("Confirmed", domain.KindConfirmed)
	var gotReason string
	baseCancel := f.reservations.cancelFn
	f.reservations.cancelFn = func(ctx context.Context, id int64, stateID int64, reason string) error {
		gotReason = reason
		return baseCancel(ctx, id, stateID, reason)
	}

	resp, err := f.useCase().Execute(context.Background(), &transition_reservation.Request{
		ReservationID: 100,
		TargetState:   "Cancelled",
		Reason:        ptr.Ptr("client no-show"),
		ActorID:       7,
	})

	require.NoError(t, err)
	assert.Equal(t, "client no-show", gotReason)
	assert.Equal(t, "Cancelled", resp.StateName)
	require.NotNil(t, resp.CancellationReason)
	assert.Equal(t, "client no-show", *resp.CancellationReason)
	require.NotNil(t, resp.CancelledAt)
}

// TestExecute_cancelRequiresReason проверяет, что отмена без причины
// отклоняется до обращения к хранилищу.
func TestExecute_cancelRequiresReason(t *testing.T) {
	f := newFixture("Pending", domain.KindPending)
	cancelCalled := false
	f.reservations.cancelFn = func(ctx context.Context, id int64, stateID int64, reason string) error {
		cancelCalled = true
		return nil
	}

	_, err := f.useCase().Execute(context.Background(), &transition_reservation.Request{
		ReservationID: 100,
		TargetState:   "Cancelled",
		ActorID:       7,
	})

	assert.ErrorIs(t, err, transition_reservation.ErrReasonRequired)
	assert.False(t, cancelCalled)
}

// TestExecute_unknownState проверяет отказ для состояния, отсутствующего
// в каталоге бронирований.
func TestExecute_unknownState(t *testing.T) {
	f := newFixture("Pending", domain.KindPending)

	_, err := f.useCase().Execute(context.Background(), &transition_reservation.Request{
		ReservationID: 100,
		TargetState:   "Archived",
		ActorID:       7,
	})

	assert.ErrorIs(t, err, transition_reservation.ErrUnknownState)
}

// TestExecute_notFound проверяет маппинг отсутствующей брони в сентинель.
func TestExecute_notFound(t *testing.T) {
	f := newFixture("Pending", domain.KindPending)
	f.reservations.getByIDFn = func(ctx context.Context, id int64) (*domain.Reservation, error) {
		return nil, reservationRepo.ErrReservationNotFound
	}

	_, err := f.useCase().Execute(context.Background(), &transition_reservation.Request{
		ReservationID: 100,
		TargetState:   "Confirmed",
		ActorID:       7,
	})

	assert.ErrorIs(t, err, transition_reservation.ErrReservationNotFound)
}

// TestExecute_validation проверяет отклонение некорректных запросов.
func TestExecute_validation(t *testing.T) {
	f := newFixture("Pending", domain.KindPending)

	_, err := f.useCase().Execute(context.Background(), &transition_reservation.Request{
		ReservationID: 0,
		TargetState:   "Confirmed",
		ActorID:       7,
	})
	assert.ErrorIs(t, err, transition_reservation.ErrInvalidInput)

	_, err = f.useCase().Execute(context.Background(), &transition_reservation.Request{
		ReservationID: 100,
		TargetState:   "   ",
		ActorID:       7,
	})
	assert.ErrorIs(t, err, transition_reservation.ErrInvalidInput)

	_, err = f.useCase().Execute(context.Background(), &transition_reservation.Request{
		ReservationID: 100,
		TargetState:   "Confirmed",
		Reason:        ptr.Ptr("   "),
		ActorID:       7,
	})
	assert.ErrorIs(t, err, transition_reservation.ErrInvalidInput)
}
