package models

import (
	"time"

	"github.com/Carbyfah/magic-sub006/internal/domain"
)

// Request модели

// ListReservationsRequest запрос на получение бронирований с фильтрацией
type ListReservationsRequest struct {
	AgencyID        *int64     `json:"agencyId,omitempty"`        // Фильтр по агентству (опционально)
	DirectOnly      bool       `json:"directOnly,omitempty"`      // Только прямые продажи без агентства
	RouteRunID      *int64     `json:"routeRunId,omitempty"`      // Фильтр по рейсу маршрута (опционально)
	TourRunID       *int64     `json:"tourRunId,omitempty"`       // Фильтр по выезду тура (опционально)
	StateID         *int64     `json:"stateId,omitempty"`         // Фильтр по состоянию (опционально)
	StartDate       *time.Time `json:"startDate,omitempty"`       // Начало периода создания (опционально)
	EndDate         *time.Time `json:"endDate,omitempty"`         // Конец периода создания (опционально)
	IncludeInactive bool       `json:"includeInactive,omitempty"` // Включить отменённые бронирования
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *ListReservationsRequest) ToDomainFilter() *domain.ReservationsFilter {
	return &domain.ReservationsFilter{
		AgencyID:        r.AgencyID,
		DirectOnly:      r.DirectOnly,
		RouteRunID:      r.RouteRunID,
		TourRunID:       r.TourRunID,
		StateID:         r.StateID,
		StartDate:       r.StartDate,
		EndDate:         r.EndDate,
		IncludeInactive: r.IncludeInactive,
	}
}

// Response модели

// ReservationResponse ответ с данными бронирования
type ReservationResponse struct {
	ID         int64  `json:"id"`
	RouteRunID *int64 `json:"routeRunId,omitempty"`
	TourRunID  *int64 `json:"tourRunId,omitempty"`
	AgencyID   *int64 `json:"agencyId,omitempty"`
	Adults     int    `json:"adults"`
	Children   int    `json:"children"`
	Passengers int    `json:"passengers"`
	Amount     string `json:"amount"` // Денежная сумма строкой, без потери точности

	// Денормализованные данные состояния
	StateID   int64  `json:"stateId"`
	StateName string `json:"stateName"`
	StateKind string `json:"stateKind"`

	Notes              *string `json:"notes,omitempty"`
	CancellationReason *string `json:"cancellationReason,omitempty"`
	CancelledAt        *string `json:"cancelledAt,omitempty"` // ISO 8601 format

	CreatedBy int64     `json:"createdBy"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ReservationListResponse ответ со списком бронирований
type ReservationListResponse struct {
	Reservations []ReservationResponse `json:"reservations"`
}

// InvoiceEligibilityResponse ответ проверки готовности бронирования к выставлению счета
type InvoiceEligibilityResponse struct {
	ReservationID int64  `json:"reservationId"`
	Eligible      bool   `json:"eligible"`
	Reason        string `json:"reason"`
}

// Методы конвертации

// FromDomainReservation конвертирует domain модель в DTO
func FromDomainReservation(res *domain.Reservation) *ReservationResponse {
	if res == nil {
		return nil
	}

	resp := &ReservationResponse{
		ID:                 res.ID,
		RouteRunID:         res.RouteRunID,
		TourRunID:          res.TourRunID,
		AgencyID:           res.AgencyID,
		Adults:             res.Adults,
		Children:           res.Children,
		Passengers:         res.Passengers(),
		Amount:             res.Amount.StringFixed(2),
		StateID:            res.StateID,
		StateName:          res.StateName,
		StateKind:          string(res.StateKind),
		Notes:              res.Notes,
		CancellationReason: res.CancellationReason,
		CreatedBy:          res.CreatedBy,
		CreatedAt:          res.CreatedAt,
		UpdatedAt:          res.UpdatedAt,
	}

	// Конвертируем CancelledAt в строку ISO 8601
	if res.CancelledAt != nil {
		cancelledStr := res.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &cancelledStr
	}

	return resp
}

// FromDomainReservationList конвертирует список domain моделей в DTO
func FromDomainReservationList(reservations []*domain.Reservation) *ReservationListResponse {
	resp := &ReservationListResponse{
		Reservations: make([]ReservationResponse, 0, len(reservations)),
	}

	for _, res := range reservations {
		resp.Reservations = append(resp.Reservations, *FromDomainReservation(res))
	}

	return resp
}
