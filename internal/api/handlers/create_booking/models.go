package create_booking

import (
	createBooking "github.com/m04kA/SMC-ConfiguratorService/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	LocationID string                 `json:"locationId"`
	Date       string                 `json:"date"` // "2024-01-15"
	Time       string                 `json:"time"` // "10:00"
	Customer   *CustomerRequest       `json:"customer"`
	QuoteID    string                 `json:"quoteId,omitempty"`
	Vehicle    map[string]interface{} `json:"vehicle,omitempty"`
}

type CustomerRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest() *createBooking.Request {
	req := &createBooking.Request{
		LocationID: r.LocationID,
		Date:       r.Date,
		Time:       r.Time,
		QuoteID:    r.QuoteID,
		Vehicle:    r.Vehicle,
	}
	if r.Customer != nil {
		req.Customer = &createBooking.Customer{
			Name:  r.Customer.Name,
			Email: r.Customer.Email,
			Phone: r.Customer.Phone,
		}
	}
	return req
}
