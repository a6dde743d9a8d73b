package availability

import (
	"context"
	"time"
	"unicode/utf16"

	"github.com/m04kA/SMC-ConfiguratorService/internal/domain"
	"github.com/m04kA/SMC-ConfiguratorService/pkg/types"
)

// HashOracle simulates existing reservations.
// Slot i is booked when (h + i) mod 3 == 0, h being a 32-bit rolling hash of locationID + date.
type HashOracle struct{}

// NewHashOracle creates the simulated oracle
func NewHashOracle() *HashOracle {
	return &HashOracle{}
}

// BookedSlots returns the pseudo-booked canonical slots
func (o *HashOracle) BookedSlots(_ context.Context, locationID string, date time.Time) ([]types.TimeString, error) {
	h := slotHash(locationID + date.Format(domain.DateFormat))

	booked := make([]types.TimeString, 0, 2)
	for i, slot := range domain.CanonicalSlots() {
		if isBooked(h, i) {
			booked = append(booked, slot)
		}
	}
	return booked, nil
}

// slotHash h = h*31 + c over UTF-16 code units, wrapping at 32 bits
func slotHash(s string) int32 {
	var h int32
	for _, c := range utf16.Encode([]rune(s)) {
		h = h*31 + int32(c)
	}
	return h
}

func isBooked(h int32, i int) bool {
	// int64 so that h+i never overflows; Go's % keeps the dividend sign, 0 is 0 either way
	return (int64(h)+int64(i))%3 == 0
}
