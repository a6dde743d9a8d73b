package get_booking

import (
	"context"

	"github.com/m04kA/SMC-ConfiguratorService/internal/domain"
)

type BookingService interface {
	GetByConfirmationCode(ctx context.Context, code string) (*domain.Booking, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
