package domain

import (
	"time"

	"github.com/m04kA/SMC-ConfiguratorService/pkg/types"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
)

// IsValid returns true for known statuses
func (s BookingStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled:
		return true
	default:
		return false
	}
}

// Customer contact details left with a booking
type Customer struct {
	Name  string
	Email string
	Phone string
}

// Appointment date and slot of a booking
type Appointment struct {
	Date time.Time
	Time types.TimeString
}

// DateString returns the appointment date as YYYY-MM-DD
func (a Appointment) DateString() string {
	return a.Date.Format(DateFormat)
}

// Datetime returns the local appointment moment as "YYYY-MM-DDTHH:MM:00"
func (a Appointment) Datetime() string {
	return a.DateString() + "T" + a.Time.String() + ":00"
}

// Booking represents an accepted appointment request.
// It is created once and never mutated.
type Booking struct {
	ID               string
	ConfirmationCode string
	Status           BookingStatus
	Location         Location
	Appointment      Appointment
	Customer         Customer
	Vehicle          map[string]interface{}
	QuoteID          *string
	CreatedAt        time.Time
}
