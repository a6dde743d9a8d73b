package create_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-ConfiguratorService/internal/domain"
	"github.com/m04kA/SMC-ConfiguratorService/pkg/types"
)

// UseCase use case для создания бронирования
type UseCase struct {
	locations    LocationDirectory
	resolver     SlotResolver
	bookingRepo  BookingRepository
	txManager    TransactionManager
	ids          IDGenerator
	metrics      Metrics
	settings     Settings
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case.
// bookingRepo и txManager могут быть nil: тогда бронирование только возвращается клиенту.
func NewUseCase(
	locations LocationDirectory,
	resolver SlotResolver,
	bookingRepo BookingRepository,
	txManager TransactionManager,
	ids IDGenerator,
	metrics Metrics,
	settings Settings,
	logger Logger,
) *UseCase {
	return &UseCase{
		locations:    locations,
		resolver:     resolver,
		bookingRepo:  bookingRepo,
		txManager:    txManager,
		ids:          ids,
		metrics:      metrics,
		settings:     settings,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case создания бронирования.
// Если настроено хранилище, проверка слота и вставка выполняются в одной сериализуемой транзакции.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: location=%s, date=%s, time=%s", req.LocationID, req.Date, req.Time)

	// 1. Валидация входных данных
	date, slot, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		uc.reject(reasonInvalidInput)
		return nil, err
	}

	// 2. Проверяем точку
	location, ok := uc.locations.Get(req.LocationID)
	if !ok {
		uc.logger.Warn("CreateBooking: location %q not found", req.LocationID)
		uc.reject(reasonInvalidLocation)
		return nil, ErrInvalidLocation
	}

	// 3. Собираем бронирование
	booking := uc.newBooking(req, location, date, slot)

	// 4. Проверка слота и сохранение
	persisted := uc.bookingRepo != nil && uc.txManager != nil
	if persisted {
		err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
			if err := uc.checkSlot(txCtx, location.ID, date, slot); err != nil {
				return err
			}
			if err := uc.bookingRepo.Create(txCtx, booking); err != nil {
				return fmt.Errorf("%w: failed to save booking: %w", ErrInternal, err)
			}
			return nil
		})
	} else {
		err = uc.checkSlot(ctx, location.ID, date, slot)
	}

	if err != nil {
		switch {
		case errors.Is(err, ErrSlotUnavailable):
			uc.logger.Warn("CreateBooking: slot %s on %s at %s is not available", slot, req.Date, location.ID)
			uc.reject(reasonSlotUnavailable)
			return nil, err
		case errors.Is(err, ErrInternal):
			uc.logger.Error("CreateBooking: %v", err)
			uc.reject(reasonInternal)
			return nil, err
		default:
			uc.logger.Error("CreateBooking: transaction failed: %v", err)
			uc.reject(reasonInternal)
			return nil, fmt.Errorf("%w: transaction failed: %v", ErrInternal, err)
		}
	}

	if uc.metrics != nil {
		uc.metrics.IncBookingCreated(location.ID)
	}

	uc.logger.Info("CreateBooking: booking %s created, code=%s, location=%s, persisted=%t",
		booking.ID, booking.ConfirmationCode, location.ID, persisted)

	return &Response{
		Booking:   booking,
		Persisted: persisted,
	}, nil
}

// checkSlot слот должен быть среди свободных на момент отправки
func (uc *UseCase) checkSlot(ctx context.Context, locationID string, date time.Time, slot types.TimeString) error {
	available, err := uc.resolver.IsAvailable(ctx, locationID, date, slot)
	if err != nil {
		return fmt.Errorf("%w: failed to resolve availability: %w", ErrInternal, err)
	}
	if !available {
		return ErrSlotUnavailable
	}
	return nil
}

func (uc *UseCase) newBooking(req *Request, location domain.Location, date time.Time, slot types.TimeString) *domain.Booking {
	vehicle := req.Vehicle
	if vehicle == nil {
		vehicle = map[string]interface{}{}
	}

	var quoteID *string
	if req.QuoteID != "" {
		id := req.QuoteID
		quoteID = &id
	}

	status := uc.settings.InitialStatus
	if !status.IsValid() {
		status = domain.StatusConfirmed
	}

	return &domain.Booking{
		ID:               uc.ids.NewID(domain.BookingIDPrefix),
		ConfirmationCode: uc.ids.NewCode(uc.settings.ConfirmationPrefix, domain.ConfirmationCodeLength),
		Status:           status,
		Location:         location,
		Appointment: domain.Appointment{
			Date: date,
			Time: slot,
		},
		Customer: domain.Customer{
			Name:  req.Customer.Name,
			Email: req.Customer.Email,
			Phone: req.Customer.Phone,
		},
		Vehicle:   vehicle,
		QuoteID:   quoteID,
		CreatedAt: uc.timeProvider.Now().UTC(),
	}
}

func (uc *UseCase) reject(reason string) {
	if uc.metrics != nil {
		uc.metrics.IncBookingRejected(reason)
	}
}
