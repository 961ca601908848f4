package states_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Carbyfah/magic-sub006/internal/domain"
	stateRepo "github.com/Carbyfah/magic-sub006/internal/infra/storage/state"
	"github.com/Carbyfah/magic-sub006/internal/service/states"
	"github.com/Carbyfah/magic-sub006/internal/service/states/models"
)

type mockStateRepository struct {
	getByContextFn      func(ctx context.Context, stateContext domain.StateContext) ([]*domain.State, error)
	getByIDFn           func(ctx context.Context, id int64) (*domain.State, error)
	getCodesByContextFn func(ctx context.Context, stateContext domain.StateContext) ([]string, error)
	createFn            func(ctx context.Context, state *domain.State) (*domain.State, error)
	countReferencesFn   func(ctx context.Context, stateID int64) (int64, error)
	softDeleteFn        func(ctx context.Context, id int64) error
	deactivateFn        func(ctx context.Context, id int64) error
}

var _ states.StateRepository = (*mockStateRepository)(nil)

func (m *mockStateRepository) GetByContext(ctx context.Context, stateContext domain.StateContext) ([]*domain.State, error) {
	return m.getByContextFn(ctx, stateContext)
}

func (m *mockStateRepository) GetByID(ctx context.Context, id int64) (*domain.State, error) {
	return m.getByIDFn(ctx, id)
}

func (m *mockStateRepository) GetCodesByContext(ctx context.Context, stateContext domain.StateContext) ([]string, error) {
	return m.getCodesByContextFn(ctx, stateContext)
}

func (m *mockStateRepository) Create(ctx context.Context, state *domain.State) (*domain.State, error) {
	return m.createFn(ctx, state)
}

func (m *mockStateRepository) CountReferences(ctx context.Context, stateID int64) (int64, error) {
	return m.countReferencesFn(ctx, stateID)
}

func (m *mockStateRepository) SoftDelete(ctx context.Context, id int64) error {
	return m.softDeleteFn(ctx, id)
}

func (m *mockStateRepository) Deactivate(ctx context.Context, id int64) error {
	return m.deactivateFn(ctx, id)
}

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

// TestGenerateCode проверяет генерацию кодов состояний: следующий код строится
// от максимального числового суффикса, нечисловые суффиксы пропускаются.
func TestGenerateCode(t *testing.T) {
	tests := []struct {
		name     string
		codes    []string
		expected string
	}{
		{"no existing codes", []string{}, "RES001"},
		{"sequential codes", []string{"RES001", "RES002"}, "RES003"},
		{"gap in codes", []string{"RES001", "RES002", "RES007"}, "RES008"},
		{"non-numeric suffix is skipped", []string{"RES001", "RESX", "RES-draft"}, "RES002"},
		{"foreign prefixes are ignored", []string{"INV005", "RES002"}, "RES003"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockStateRepository{
				getCodesByContextFn: func(ctx context.Context, stateContext domain.StateContext) ([]string, error) {
					return tt.codes, nil
				},
			}
			svc := states.NewService(repo, noopLogger{})

			code, err := svc.GenerateCode(context.Background(), domain.ContextReservation)

			require.NoError(t, err)
			assert.Equal(t, tt.expected, code)
		})
	}
}

// TestGenerateCode_unknownContext проверяет, что для контекста без префикса
// возвращается ErrUnknownContext.
func TestGenerateCode_unknownContext(t *testing.T) {
	svc := states.NewService(&mockStateRepository{}, noopLogger{})

	_, err := svc.GenerateCode(context.Background(), domain.StateContext("unknown"))

	require.Error(t, err)
	assert.ErrorIs(t, err, states.ErrUnknownContext)
}

// TestCreate_autoCode проверяет, что при пустом коде состояние создаётся
// с автоматически сгенерированным кодом и признаком активности.
func TestCreate_autoCode(t *testing.T) {
	var captured *domain.State
	repo := &mockStateRepository{
		getCodesByContextFn: func(ctx context.Context, stateContext domain.StateContext) ([]string, error) {
			return []string{"RES001", "RES002"}, nil
		},
		createFn: func(ctx context.Context, state *domain.State) (*domain.State, error) {
			captured = state
			created := *state
			created.ID = 42
			return &created, nil
		},
	}
	svc := states.NewService(repo, noopLogger{})

	resp, err := svc.Create(context.Background(), &models.CreateStateRequest{
		Context: domain.ContextReservation,
		Name:    "On Hold",
		Kind:    "pending",
	})

	require.NoError(t, err)
	require.NotNil(t, captured)
	assert.Equal(t, "RES003", captured.Code)
	assert.Equal(t, domain.KindPending, captured.Kind)
	assert.True(t, captured.Active)
	assert.Equal(t, int64(42), resp.ID)
	assert.Equal(t, "On Hold", resp.Name)
}

// TestCreate_explicitCode проверяет, что явно заданный код не перегенерируется.
func TestCreate_explicitCode(t *testing.T) {
	repo := &mockStateRepository{
		createFn: func(ctx context.Context, state *domain.State) (*domain.State, error) {
			return state, nil
		},
	}
	svc := states.NewService(repo, noopLogger{})

	resp, err := svc.Create(context.Background(), &models.CreateStateRequest{
		Context: domain.ContextReservation,
		Code:    "RES099",
		Name:    "Special",
		Kind:    "none",
	})

	require.NoError(t, err)
	assert.Equal(t, "RES099", resp.Code)
}

// TestCreate_validation проверяет отклонение пустого имени и неизвестного вида.
func TestCreate_validation(t *testing.T) {
	svc := states.NewService(&mockStateRepository{}, noopLogger{})

	_, err := svc.Create(context.Background(), &models.CreateStateRequest{
		Context: domain.ContextReservation,
		Name:    "   ",
		Kind:    "pending",
	})
	assert.ErrorIs(t, err, states.ErrInvalidInput)

	_, err = svc.Create(context.Background(), &models.CreateStateRequest{
		Context: domain.ContextReservation,
		Name:    "Valid",
		Kind:    "bogus",
	})
	assert.ErrorIs(t, err, states.ErrInvalidInput)
}

// TestDelete_inUse проверяет, что состояние, на которое ссылаются записи,
// не удаляется и возвращается ErrStateInUse.
func TestDelete_inUse(t *testing.T) {
	softDeleteCalled := false
	repo := &mockStateRepository{
		getByIDFn: func(ctx context.Context, id int64) (*domain.State, error) {
			return &domain.State{ID: id, Context: domain.ContextReservation}, nil
		},
		countReferencesFn: func(ctx context.Context, stateID int64) (int64, error) {
			return 7, nil
		},
		softDeleteFn: func(ctx context.Context, id int64) error {
			softDeleteCalled = true
			return nil
		},
	}
	svc := states.NewService(repo, noopLogger{})

	err := svc.Delete(context.Background(), 5)

	require.Error(t, err)
	assert.ErrorIs(t, err, states.ErrStateInUse)
	assert.False(t, softDeleteCalled)
}

// TestDelete_success проверяет удаление состояния без ссылок.
func TestDelete_success(t *testing.T) {
	var deletedID int64
	repo := &mockStateRepository{
		getByIDFn: func(ctx context.Context, id int64) (*domain.State, error) {
			return &domain.State{ID: id, Context: domain.ContextReservation}, nil
		},
		countReferencesFn: func(ctx context.Context, stateID int64) (int64, error) {
			return 0, nil
		},
		softDeleteFn: func(ctx context.Context, id int64) error {
			deletedID = id
			return nil
		},
	}
	svc := states.NewService(repo, noopLogger{})

	err := svc.Delete(context.Background(), 5)

	require.NoError(t, err)
	assert.Equal(t, int64(5), deletedID)
}

// TestDelete_notFound проверяет маппинг ошибки репозитория в ErrStateNotFound.
func TestDelete_notFound(t *testing.T) {
	repo := &mockStateRepository{
		getByIDFn: func(ctx context.Context, id int64) (*domain.State, error) {
			return nil, stateRepo.ErrStateNotFound
		},
	}
	svc := states.NewService(repo, noopLogger{})

	err := svc.Delete(context.Background(), 99)

	assert.ErrorIs(t, err, states.ErrStateNotFound)
}

// TestStatesFor_repositoryError проверяет оборачивание ошибок репозитория в ErrInternal.
func TestStatesFor_repositoryError(t *testing.T) {
	repo := &mockStateRepository{
		getByContextFn: func(ctx context.Context, stateContext domain.StateContext) ([]*domain.State, error) {
			return nil, errors.New("connection refused")
		},
	}
	svc := states.NewService(repo, noopLogger{})

	_, err := svc.StatesFor(context.Background(), domain.ContextReservation)

	assert.ErrorIs(t, err, states.ErrInternal)
}
