package get_available_slots

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ConfiguratorService/pkg/types"
)

// SlotResolver интерфейс резолвера свободных слотов
type SlotResolver interface {
	GetAvailableSlots(ctx context.Context, locationID string, date time.Time) ([]types.TimeString, error)
}

// LocationDirectory справочник точек
type LocationDirectory interface {
	Timezone(id string) string
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
