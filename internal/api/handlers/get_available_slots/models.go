package get_available_slots

import (
	getAvailableSlots "github.com/m04kA/SMC-ConfiguratorService/internal/usecase/get_available_slots"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	Location       string   `json:"location"`
	Date           string   `json:"date"`
	AvailableSlots []string `json:"availableSlots"`
	Timezone       string   `json:"timezone"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]string, len(resp.AvailableSlots))
	for i, slot := range resp.AvailableSlots {
		slots[i] = slot.String()
	}

	return &AvailableSlotsResponse{
		Location:       resp.LocationID,
		Date:           resp.Date,
		AvailableSlots: slots,
		Timezone:       resp.Timezone,
	}
}

// ToUseCaseRequest создает запрос use case из query параметров
func ToUseCaseRequest(location, date string) *getAvailableSlots.Request {
	return &getAvailableSlots.Request{
		LocationID: location,
		Date:       date,
	}
}
