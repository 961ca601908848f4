package states

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/Carbyfah/magic-sub006/internal/domain"
	stateRepo "github.com/Carbyfah/magic-sub006/internal/infra/storage/state"
	"github.com/Carbyfah/magic-sub006/internal/service/states/models"
)

// Service каталог состояний: списки по контекстам, генерация кодов
// и защита от удаления используемых состояний.
// Графы переходов статичны и живут в transitions.go
type Service struct {
	stateRepo StateRepository
	logger    Logger
}

// NewService создает новый экземпляр каталога состояний
func NewService(stateRepo StateRepository, logger Logger) *Service {
	return &Service{
		stateRepo: stateRepo,
		logger:    logger,
	}
}

// StatesFor возвращает активные состояния контекста, отсортированные по имени
func (s *Service) StatesFor(ctx context.Context, stateContext domain.StateContext) (*models.StateListResponse, error) {
	s.logger.Info("StatesFor: fetching states for context=%s", stateContext)

	list, err := s.stateRepo.GetByContext(ctx, stateContext)
	if err != nil {
		s.logger.Error("StatesFor: repository error for context=%s: %v", stateContext, err)
		return nil, fmt.Errorf("%w: StatesFor - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("StatesFor: fetched %d states for context=%s", len(list), stateContext)
	return models.FromDomainStateList(stateContext, list), nil
}

// Transitions возвращает граф переходов контекста
func (s *Service) Transitions(stateContext domain.StateContext) *models.TransitionsResponse {
	return &models.TransitionsResponse{
		Context:     string(stateContext),
		Transitions: TransitionsFor(stateContext),
	}
}

// Create создает новое состояние
// Если код не указан, генерируется автоматически по префиксу контекста
func (s *Service) Create(ctx context.Context, req *models.CreateStateRequest) (*models.StateResponse, error) {
	s.logger.Info("Create: creating state context=%s, name=%q", req.Context, req.Name)

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if len(name) > domain.MaxStateNameLength {
		return nil, fmt.Errorf("%w: name is too long", ErrInvalidInput)
	}

	kind, err := domain.ParseStateKind(req.Kind)
	if err != nil {
		s.logger.Warn("Create: invalid kind=%q for context=%s", req.Kind, req.Context)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	code := strings.TrimSpace(req.Code)
	if code == "" {
		code, err = s.GenerateCode(ctx, req.Context)
		if err != nil {
			return nil, err
		}
	}

	sortOrder := 0
	if req.SortOrder != nil {
		sortOrder = *req.SortOrder
	}

	state := &domain.State{
		Context:   req.Context,
		Code:      code,
		Name:      name,
		Kind:      kind,
		SortOrder: sortOrder,
		Active:    true,
	}

	created, err := s.stateRepo.Create(ctx, state)
	if err != nil {
		s.logger.Error("Create: repository error for context=%s: %v", req.Context, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: created state id=%d, code=%s", created.ID, created.Code)
	return models.FromDomainState(created), nil
}

// Delete удаляет состояние с проверкой использования
// Если на состояние ссылается хотя бы одна запись - возвращает ErrStateInUse
// без каких-либо изменений (чистая проверка, не исключение)
func (s *Service) Delete(ctx context.Context, stateID int64) error {
	s.logger.Info("Delete: deleting state id=%d", stateID)

	if _, err := s.stateRepo.GetByID(ctx, stateID); err != nil {
		if errors.Is(err, stateRepo.ErrStateNotFound) {
			s.logger.Warn("Delete: state id=%d not found", stateID)
			return ErrStateNotFound
		}
		s.logger.Error("Delete: repository error for state id=%d: %v", stateID, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	refs, err := s.stateRepo.CountReferences(ctx, stateID)
	if err != nil {
		s.logger.Error("Delete: failed to count references for state id=%d: %v", stateID, err)
		return fmt.Errorf("%w: Delete - count references: %v", ErrInternal, err)
	}

	if refs > 0 {
		s.logger.Warn("Delete: state id=%d is referenced by %d records", stateID, refs)
		return fmt.Errorf("%w: referenced by %d records", ErrStateInUse, refs)
	}

	if err := s.stateRepo.SoftDelete(ctx, stateID); err != nil {
		if errors.Is(err, stateRepo.ErrStateNotFound) {
			return ErrStateNotFound
		}
		s.logger.Error("Delete: repository error for state id=%d: %v", stateID, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: deleted state id=%d", stateID)
	return nil
}

// Deactivate помечает состояние неактивным (вместо удаления, когда оно используется)
func (s *Service) Deactivate(ctx context.Context, stateID int64) error {
	s.logger.Info("Deactivate: deactivating state id=%d", stateID)

	if err := s.stateRepo.Deactivate(ctx, stateID); err != nil {
		if errors.Is(err, stateRepo.ErrStateNotFound) {
			s.logger.Warn("Deactivate: state id=%d not found", stateID)
			return ErrStateNotFound
		}
		s.logger.Error("Deactivate: repository error for state id=%d: %v", stateID, err)
		return fmt.Errorf("%w: Deactivate - repository error: %v", ErrInternal, err)
	}

	return nil
}

// GenerateCode генерирует следующий код состояния для контекста
// Сканирует существующие коды с префиксом контекста, берет максимальный
// числовой суффикс и возвращает префикс + (max+1) с ведущими нулями.
// Если кодов нет - суффикс "001"
func (s *Service) GenerateCode(ctx context.Context, stateContext domain.StateContext) (string, error) {
	prefix := domain.StateCodePrefix(stateContext)
	if prefix == "" {
		return "", fmt.Errorf("%w: %s", ErrUnknownContext, stateContext)
	}

	codes, err := s.stateRepo.GetCodesByContext(ctx, stateContext)
	if err != nil {
		s.logger.Error("GenerateCode: repository error for context=%s: %v", stateContext, err)
		return "", fmt.Errorf("%w: GenerateCode - repository error: %v", ErrInternal, err)
	}

	max := 0
	for _, code := range codes {
		if !strings.HasPrefix(code, prefix) {
			continue
		}

		suffix := code[len(prefix):]
		n, err := strconv.Atoi(suffix)
		if err != nil {
			// Коды с нечисловым суффиксом (созданные вручную) пропускаем
			continue
		}

		if n > max {
			max = n
		}
	}

	return fmt.Sprintf("%s%0*d", prefix, domain.StateCodeSuffixWidth, max+1), nil
}
