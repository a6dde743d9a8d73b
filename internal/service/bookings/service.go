package bookings

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-ConfiguratorService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-ConfiguratorService/internal/infra/storage/booking"
)

// Service сервис чтения сохраненных бронирований
type Service struct {
	bookingRepo BookingRepository
	locations   LocationDirectory
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(bookingRepo BookingRepository, locations LocationDirectory, logger Logger) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		locations:   locations,
		logger:      logger,
	}
}

// GetByConfirmationCode получает бронирование по коду подтверждения.
// Данные точки берутся из справочника, в хранилище лежит только её ID.
func (s *Service) GetByConfirmationCode(ctx context.Context, code string) (*domain.Booking, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return nil, fmt.Errorf("%w: confirmation code is required", ErrInvalidInput)
	}

	s.logger.Info("GetByConfirmationCode: fetching booking code=%s", code)

	booking, err := s.bookingRepo.GetByConfirmationCode(ctx, code)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByConfirmationCode: booking code=%s not found", code)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByConfirmationCode: repository error for code=%s: %v", code, err)
		return nil, fmt.Errorf("%w: GetByConfirmationCode - repository error: %v", ErrInternal, err)
	}

	if loc, ok := s.locations.Get(booking.Location.ID); ok {
		booking.Location = loc
	}

	s.logger.Info("GetByConfirmationCode: successfully fetched booking id=%s", booking.ID)
	return booking, nil
}
