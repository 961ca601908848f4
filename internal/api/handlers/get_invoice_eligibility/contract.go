package get_invoice_eligibility

import (
	"context"

	"github.com/Carbyfah/magic-sub006/internal/service/reservations/models"
)

type ReservationService interface {
	InvoiceEligibility(ctx context.Context, id int64) (*models.InvoiceEligibilityResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
