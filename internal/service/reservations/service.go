package reservations

import (
	"context"
	"errors"
	"fmt"

	"github.com/Carbyfah/magic-sub006/internal/domain"
	reservationRepo "github.com/Carbyfah/magic-sub006/internal/infra/storage/reservation"
	"github.com/Carbyfah/magic-sub006/internal/service/reservations/models"
)

// Service сервис для работы с бронированиями
type Service struct {
	reservationRepo ReservationRepository
	logger          Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(reservationRepo ReservationRepository, logger Logger) *Service {
	return &Service{
		reservationRepo: reservationRepo,
		logger:          logger,
	}
}

// GetByID получает бронирование по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.ReservationResponse, error) {
	s.logger.Info("GetByID: fetching reservation id=%d", id)

	res, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("GetByID: reservation id=%d not found", id)
			return nil, ErrReservationNotFound
		}
		s.logger.Error("GetByID: repository error for reservation id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainReservation(res), nil
}

// List получает бронирования с гибкой фильтрацией
// Поддерживает фильтрацию по агентству, рейсу, выезду тура, состоянию,
// периоду создания и включению отменённых бронирований
//
// Примеры использования:
// - Все активные бронирования: List(ctx, &ListReservationsRequest{})
// - Бронирования агентства: указать AgencyID
// - Прямые продажи без агентства: DirectOnly = true
// - Посадка на рейс: указать RouteRunID
// - За период: StartDate и EndDate
// - Включая отменённые: IncludeInactive = true
func (s *Service) List(ctx context.Context, req *models.ListReservationsRequest) (*models.ReservationListResponse, error) {
	logMsg := "List: fetching reservations"
	if req.AgencyID != nil {
		logMsg += fmt.Sprintf(", agency=%d", *req.AgencyID)
	}
	if req.DirectOnly {
		logMsg += ", directOnly=true"
	}
	if req.RouteRunID != nil {
		logMsg += fmt.Sprintf(", routeRun=%d", *req.RouteRunID)
	}
	if req.TourRunID != nil {
		logMsg += fmt.Sprintf(", tourRun=%d", *req.TourRunID)
	}
	if req.StartDate != nil && req.EndDate != nil {
		logMsg += fmt.Sprintf(", period=%s to %s",
			req.StartDate.Format(domain.DateFormat), req.EndDate.Format(domain.DateFormat))
	}
	if req.IncludeInactive {
		logMsg += ", includeInactive=true"
	}
	s.logger.Info(logMsg)

	if req.AgencyID != nil && req.DirectOnly {
		s.logger.Warn("List: agencyId and directOnly are mutually exclusive")
		return nil, fmt.Errorf("%w: agencyId and directOnly are mutually exclusive", ErrInvalidInput)
	}

	reservations, err := s.reservationRepo.GetWithFilter(ctx, req.ToDomainFilter())
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d reservations", len(reservations))
	return models.FromDomainReservationList(reservations), nil
}

// InvoiceEligibility проверяет, готово ли бронирование к выставлению счета.
// Счет выставляется только по подтвержденным бронированиям; проверка ничего
// не меняет и может вызываться сколько угодно раз
func (s *Service) InvoiceEligibility(ctx context.Context, id int64) (*models.InvoiceEligibilityResponse, error) {
	s.logger.Info("InvoiceEligibility: checking reservation id=%d", id)

	res, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("InvoiceEligibility: reservation id=%d not found", id)
			return nil, ErrReservationNotFound
		}
		s.logger.Error("InvoiceEligibility: repository error for reservation id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: InvoiceEligibility - repository error: %v", ErrInternal, err)
	}

	resp := &models.InvoiceEligibilityResponse{
		ReservationID: res.ID,
	}

	if res.IsInvoiceEligible() {
		resp.Eligible = true
		resp.Reason = "reservation is confirmed and ready for invoicing"
	} else {
		resp.Eligible = false
		resp.Reason = fmt.Sprintf("reservation state %q is not eligible for invoicing", res.StateName)
	}

	return resp, nil
}

// Delete помечает бронирование удаленным.
// Подтвержденные и исполненные бронирования удалять нельзя - их сначала
// нужно отменить или довести до счета, чтобы история операций не терялась
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: deleting reservation id=%d", id)

	res, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("Delete: reservation id=%d not found", id)
			return ErrReservationNotFound
		}
		s.logger.Error("Delete: repository error for reservation id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	if !isDeletable(res.StateKind) {
		s.logger.Warn("Delete: reservation id=%d in state kind=%s cannot be deleted", id, res.StateKind)
		return fmt.Errorf("%w: state kind %q", ErrDeleteRestricted, res.StateKind)
	}

	if err := s.reservationRepo.SoftDelete(ctx, id); err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			return ErrReservationNotFound
		}
		s.logger.Error("Delete: failed to delete reservation id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted reservation id=%d", id)
	return nil
}

// isDeletable определяет, допускает ли вид состояния удаление бронирования.
// Черновики и завершенные жизненные циклы удалять можно, активные - нет
func isDeletable(kind domain.StateKind) bool {
	switch kind {
	case domain.KindPending, domain.KindCancelled, domain.KindInvoiced:
		return true
	default:
		return false
	}
}
