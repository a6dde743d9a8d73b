package get_available_slots

import (
	"context"
	"fmt"
)

// UseCase use case для получения свободных слотов точки на дату
type UseCase struct {
	resolver  SlotResolver
	locations LocationDirectory
	logger    Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(resolver SlotResolver, locations LocationDirectory, logger Logger) *UseCase {
	return &UseCase{
		resolver:  resolver,
		locations: locations,
		logger:    logger,
	}
}

// Execute выполняет use case получения свободных слотов.
// Точка не сверяется со справочником, для неизвестной точки слоты тоже считаются.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: location=%s, date=%s", req.LocationID, req.Date)

	// 1. Валидация входных данных
	date, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем свободные слоты
	slots, err := uc.resolver.GetAvailableSlots(ctx, req.LocationID, date)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to resolve slots for location=%s: %v", req.LocationID, err)
		return nil, fmt.Errorf("%w: failed to resolve slots: %v", ErrInternal, err)
	}

	uc.logger.Info("GetAvailableSlots: %d slots available for location=%s, date=%s",
		len(slots), req.LocationID, req.Date)

	return &Response{
		LocationID:     req.LocationID,
		Date:           req.Date,
		AvailableSlots: slots,
		Timezone:       uc.locations.Timezone(req.LocationID),
	}, nil
}
