package create_booking

import (
	"context"

	createBooking "github.com/m04kA/SMC-ConfiguratorService/internal/usecase/create_booking"
)

// CreateBookingUseCase принимает бронирование слота, если он еще свободен
type CreateBookingUseCase interface {
	Execute(ctx context.Context, req *createBooking.Request) (*createBooking.Response, error)
}

// Logger логгер обработчика POST /book
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
