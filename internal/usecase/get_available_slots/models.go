package get_available_slots

import (
	"github.com/m04kA/SMC-ConfiguratorService/pkg/types"
)

// Request модель запроса на получение свободных слотов
type Request struct {
	LocationID string // ID точки, не обязательно из справочника
	Date       string // YYYY-MM-DD
}

// Response модель ответа со списком свободных слотов
type Response struct {
	LocationID     string
	Date           string // дата в том виде, в каком пришла
	AvailableSlots []types.TimeString
	Timezone       string
}
