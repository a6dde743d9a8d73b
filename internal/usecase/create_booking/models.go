package create_booking

import (
	"github.com/m04kA/SMC-ConfiguratorService/internal/domain"
)

// Request модель запроса на создание бронирования
type Request struct {
	LocationID string                 // ID точки из справочника
	Date       string                 // Дата "2024-01-15"
	Time       string                 // Время начала слота "10:00"
	Customer   *Customer              // nil, если клиент не передан
	QuoteID    string                 // ID котировки (опционально)
	Vehicle    map[string]interface{} // Конфигурация автомобиля (опционально)
}

// Customer контактные данные клиента
type Customer struct {
	Name  string
	Email string
	Phone string
}

// Response модель ответа с созданным бронированием
type Response struct {
	Booking   *domain.Booking
	Persisted bool // false, если хранилище бронирований не настроено
}

// Settings параметры создания бронирований
type Settings struct {
	InitialStatus      domain.BookingStatus
	ConfirmationPrefix string
}

// DefaultSettings значения по умолчанию
func DefaultSettings() Settings {
	return Settings{
		InitialStatus:      domain.StatusConfirmed,
		ConfirmationPrefix: domain.DefaultConfirmationPrefix,
	}
}
