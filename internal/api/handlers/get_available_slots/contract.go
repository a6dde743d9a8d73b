package get_available_slots

import (
	"context"

	getAvailableSlots "github.com/m04kA/SMC-ConfiguratorService/internal/usecase/get_available_slots"
)

// GetAvailableSlotsUseCase возвращает свободные слоты точки на дату вместе с часовым поясом точки
type GetAvailableSlotsUseCase interface {
	Execute(ctx context.Context, req *getAvailableSlots.Request) (*getAvailableSlots.Response, error)
}

// Logger логгер обработчика GET /availability
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
