package create_booking

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ConfiguratorService/internal/domain"
	"github.com/m04kA/SMC-ConfiguratorService/pkg/types"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) error
}

// SlotResolver интерфейс резолвера свободных слотов
type SlotResolver interface {
	IsAvailable(ctx context.Context, locationID string, date time.Time, slot types.TimeString) (bool, error)
}

// LocationDirectory справочник точек
type LocationDirectory interface {
	Get(id string) (domain.Location, bool)
}

// IDGenerator генератор идентификаторов и кодов подтверждения
type IDGenerator interface {
	NewID(prefix string) string
	NewCode(prefix string, length int) string
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Metrics бизнес-метрики бронирований
type Metrics interface {
	IncBookingCreated(locationID string)
	IncBookingRejected(reason string)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
