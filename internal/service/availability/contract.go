package availability

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ConfiguratorService/pkg/types"
)

// Oracle источник занятых слотов для точки на дату.
// Реализации должны быть детерминированными для одинаковых входных данных.
type Oracle interface {
	BookedSlots(ctx context.Context, locationID string, date time.Time) ([]types.TimeString, error)
}

// ReservationReader читает занятое время из хранилища бронирований
type ReservationReader interface {
	GetReservedTimes(ctx context.Context, locationID string, date time.Time) ([]types.TimeString, error)
}
