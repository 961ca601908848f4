package find_availability

import (
	"net/url"
	"strconv"
	"time"

	"github.com/Carbyfah/magic-sub006/internal/domain"
	findAvailability "github.com/Carbyfah/magic-sub006/internal/usecase/find_availability"
)

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	Found         bool   `json:"found"`
	ServiceKind   string `json:"serviceKind,omitempty"`   // route_run или tour_run
	RunID         int64  `json:"runId,omitempty"`         // ID найденного рейса
	RunDate       string `json:"runDate,omitempty"`       // "2025-10-15"
	DepartureTime string `json:"departureTime,omitempty"` // "08:30"
}

// ToUseCaseRequest формирует запрос к use case из query параметров
func ToUseCaseRequest(query url.Values) (*findAvailability.Request, error) {
	serviceID, err := strconv.ParseInt(query.Get("serviceId"), 10, 64)
	if err != nil {
		return nil, err
	}

	date, err := time.Parse(domain.DateFormat, query.Get("date"))
	if err != nil {
		return nil, err
	}

	passengers, err := strconv.Atoi(query.Get("passengers"))
	if err != nil {
		return nil, err
	}

	return &findAvailability.Request{
		ServiceID:  serviceID,
		Date:       date,
		Passengers: passengers,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP модель
func FromUseCaseResponse(resp *findAvailability.Response) *AvailabilityResponse {
	if !resp.Found {
		return &AvailabilityResponse{Found: false}
	}

	return &AvailabilityResponse{
		Found:         true,
		ServiceKind:   resp.ServiceKind,
		RunID:         resp.RunID,
		RunDate:       resp.RunDate.Format(domain.DateFormat),
		DepartureTime: resp.DepartureTime.String(),
	}
}
