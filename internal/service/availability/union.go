package availability

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ConfiguratorService/pkg/types"
)

// UnionOracle treats a slot as booked if any of its oracles says so
type UnionOracle struct {
	oracles []Oracle
}

// NewUnionOracle combines oracles, e.g. the simulation and real reservations
func NewUnionOracle(oracles ...Oracle) *UnionOracle {
	return &UnionOracle{oracles: oracles}
}

// BookedSlots returns the deduplicated union in first-seen order
func (o *UnionOracle) BookedSlots(ctx context.Context, locationID string, date time.Time) ([]types.TimeString, error) {
	seen := make(map[types.TimeString]struct{})
	var booked []types.TimeString

	for _, oracle := range o.oracles {
		slots, err := oracle.BookedSlots(ctx, locationID, date)
		if err != nil {
			return nil, err
		}
		for _, s := range slots {
			if _, ok := seen[s]; ok {
				continue
			}
			seen[s] = struct{}{}
			booked = append(booked, s)
		}
	}
	return booked, nil
}
