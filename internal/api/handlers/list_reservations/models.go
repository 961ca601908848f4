package list_reservations

import (
	"net/url"
	"strconv"
	"time"

	"github.com/Carbyfah/magic-sub006/internal/domain"
	"github.com/Carbyfah/magic-sub006/internal/service/reservations/models"
)

// ToServiceRequest формирует запрос к сервису из query параметров
func ToServiceRequest(query url.Values) (*models.ListReservationsRequest, error) {
	req := &models.ListReservationsRequest{
		IncludeInactive: false, // По умолчанию только активные
	}

	// Парсим agencyId если указан
	if raw := query.Get("agencyId"); raw != "" {
		agencyID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, err
		}
		req.AgencyID = &agencyID
	}

	// Парсим directOnly если указан
	if raw := query.Get("directOnly"); raw != "" {
		directOnly, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, err
		}
		req.DirectOnly = directOnly
	}

	// Парсим routeRunId если указан
	if raw := query.Get("routeRunId"); raw != "" {
		routeRunID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, err
		}
		req.RouteRunID = &routeRunID
	}

	// Парсим tourRunId если указан
	if raw := query.Get("tourRunId"); raw != "" {
		tourRunID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, err
		}
		req.TourRunID = &tourRunID
	}

	// Парсим stateId если указан
	if raw := query.Get("stateId"); raw != "" {
		stateID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, err
		}
		req.StateID = &stateID
	}

	// Парсим startDate если указана
	if raw := query.Get("startDate"); raw != "" {
		startDate, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			return nil, err
		}
		req.StartDate = &startDate
	}

	// Парсим endDate если указана
	if raw := query.Get("endDate"); raw != "" {
		endDate, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			return nil, err
		}
		req.EndDate = &endDate
	}

	// Парсим includeInactive если указан
	if raw := query.Get("includeInactive"); raw != "" {
		includeInactive, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, err
		}
		req.IncludeInactive = includeInactive
	}

	return req, nil
}
