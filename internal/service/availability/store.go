package availability

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SMC-ConfiguratorService/internal/domain"
	"github.com/m04kA/SMC-ConfiguratorService/pkg/types"
)

// StoreOracle reports slots held by non-cancelled bookings
type StoreOracle struct {
	reader ReservationReader
}

// NewStoreOracle creates an oracle backed by the booking store
func NewStoreOracle(reader ReservationReader) *StoreOracle {
	return &StoreOracle{reader: reader}
}

// BookedSlots returns the reserved canonical slots. Non-canonical times in the store are ignored.
func (o *StoreOracle) BookedSlots(ctx context.Context, locationID string, date time.Time) ([]types.TimeString, error) {
	reserved, err := o.reader.GetReservedTimes(ctx, locationID, date)
	if err != nil {
		return nil, fmt.Errorf("%w: get reserved times: %w", ErrOracle, err)
	}

	booked := make([]types.TimeString, 0, len(reserved))
	for _, t := range reserved {
		if domain.IsCanonicalSlot(t) {
			booked = append(booked, t)
		}
	}
	return booked, nil
}
