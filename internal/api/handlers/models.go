package handlers

import (
	"time"

	"github.com/m04kA/SMC-ConfiguratorService/internal/domain"
)

// TimestampFormat ISO-8601 в UTC с миллисекундами
const TimestampFormat = "2006-01-02T15:04:05.000Z07:00"

// FormatTimestamp форматирует момент времени для ответа
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampFormat)
}

// LocationResponse точка в ответе
type LocationResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Address  string `json:"address"`
	Phone    string `json:"phone"`
	Hours    string `json:"hours"`
	Timezone string `json:"timezone"`
}

// BookingResponse бронирование в ответе
type BookingResponse struct {
	ID               string                 `json:"id"`
	ConfirmationCode string                 `json:"confirmationCode"`
	CreatedAt        string                 `json:"createdAt"`
	Status           string                 `json:"status"`
	Location         LocationResponse       `json:"location"`
	Appointment      AppointmentResponse    `json:"appointment"`
	Customer         CustomerResponse       `json:"customer"`
	Vehicle          map[string]interface{} `json:"vehicle"`
	QuoteID          *string                `json:"quoteId"`
}

type AppointmentResponse struct {
	Date     string `json:"date"`
	Time     string `json:"time"`
	Datetime string `json:"datetime"`
}

type CustomerResponse struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone,omitempty"`
}

// FromDomainLocation конвертирует точку в HTTP модель
func FromDomainLocation(loc domain.Location) LocationResponse {
	return LocationResponse{
		ID:       loc.ID,
		Name:     loc.Name,
		Address:  loc.Address,
		Phone:    loc.Phone,
		Hours:    loc.Hours,
		Timezone: loc.Timezone,
	}
}

// FromDomainBooking конвертирует бронирование в HTTP модель
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	vehicle := b.Vehicle
	if vehicle == nil {
		vehicle = map[string]interface{}{}
	}

	return &BookingResponse{
		ID:               b.ID,
		ConfirmationCode: b.ConfirmationCode,
		CreatedAt:        FormatTimestamp(b.CreatedAt),
		Status:           string(b.Status),
		Location:         FromDomainLocation(b.Location),
		Appointment: AppointmentResponse{
			Date:     b.Appointment.DateString(),
			Time:     b.Appointment.Time.String(),
			Datetime: b.Appointment.Datetime(),
		},
		Customer: CustomerResponse{
			Name:  b.Customer.Name,
			Email: b.Customer.Email,
			Phone: b.Customer.Phone,
		},
		Vehicle: vehicle,
		QuoteID: b.QuoteID,
	}
}
