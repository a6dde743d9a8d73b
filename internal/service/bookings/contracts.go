package bookings

import (
	"context"

	"github.com/m04kA/SMC-ConfiguratorService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByConfirmationCode(ctx context.Context, code string) (*domain.Booking, error)
}

// LocationDirectory справочник точек
type LocationDirectory interface {
	Get(id string) (domain.Location, bool)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
