package availability

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-ConfiguratorService/internal/domain"
	"github.com/m04kA/SMC-ConfiguratorService/pkg/types"
)

// Resolver вычисляет свободные слоты точки на дату.
// Список точек не проверяется: для неизвестной точки слоты тоже считаются.
type Resolver struct {
	oracle Oracle
}

// NewResolver создает резолвер поверх источника занятых слотов
func NewResolver(oracle Oracle) *Resolver {
	return &Resolver{oracle: oracle}
}

// Resolve возвращает полный набор: все, занятые и свободные слоты
func (r *Resolver) Resolve(ctx context.Context, locationID string, date time.Time) (*domain.SlotSet, error) {
	if strings.TrimSpace(locationID) == "" {
		return nil, fmt.Errorf("%w: location is required", ErrInvalidInput)
	}
	if date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	booked, err := r.oracle.BookedSlots(ctx, locationID, date)
	if err != nil {
		return nil, err
	}

	bookedSet := make(map[types.TimeString]struct{}, len(booked))
	for _, s := range booked {
		bookedSet[s] = struct{}{}
	}

	all := domain.CanonicalSlots()
	set := &domain.SlotSet{
		All:       all,
		Booked:    make([]types.TimeString, 0, len(booked)),
		Available: make([]types.TimeString, 0, len(all)),
	}

	// Порядок всегда канонический, независимо от порядка ответа oracle
	for _, slot := range all {
		if _, ok := bookedSet[slot]; ok {
			set.Booked = append(set.Booked, slot)
			continue
		}
		set.Available = append(set.Available, slot)
	}

	return set, nil
}

// GetAvailableSlots возвращает свободные слоты в каноническом порядке
func (r *Resolver) GetAvailableSlots(ctx context.Context, locationID string, date time.Time) ([]types.TimeString, error) {
	set, err := r.Resolve(ctx, locationID, date)
	if err != nil {
		return nil, err
	}
	return set.Available, nil
}

// IsAvailable проверяет, свободен ли слот
func (r *Resolver) IsAvailable(ctx context.Context, locationID string, date time.Time, slot types.TimeString) (bool, error) {
	set, err := r.Resolve(ctx, locationID, date)
	if err != nil {
		return false, err
	}
	return set.Contains(slot), nil
}
