package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ConfiguratorService/internal/api/handlers"
	createBooking "github.com/m04kA/SMC-ConfiguratorService/internal/usecase/create_booking"
)

const (
	msgMissingFields    = "Missing required fields"
	msgInvalidLocation  = "Invalid location"
	msgSlotNotAvailable = "Time slot not available"
	msgFailed           = "Failed to create booking"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /book
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Error("POST /book - Failed to decode request body: %v", err)
		handlers.RespondError(w, http.StatusInternalServerError, msgFailed)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /book - Missing or invalid fields: %v", err)
			handlers.RespondBadRequest(w, msgMissingFields)

		case errors.Is(err, createBooking.ErrInvalidLocation):
			h.logger.Warn("POST /book - Invalid location: location_id=%s", req.LocationID)
			handlers.RespondBadRequest(w, msgInvalidLocation)

		case errors.Is(err, createBooking.ErrSlotUnavailable):
			h.logger.Warn("POST /book - Slot not available: location_id=%s, date=%s, time=%s",
				req.LocationID, req.Date, req.Time)
			handlers.RespondBadRequest(w, msgSlotNotAvailable)

		default:
			h.logger.Error("POST /book - Failed to create booking: location_id=%s, error=%v", req.LocationID, err)
			handlers.RespondError(w, http.StatusInternalServerError, msgFailed)
		}
		return
	}

	h.logger.Info("POST /book - Booking created successfully: booking_id=%s, code=%s",
		result.Booking.ID, result.Booking.ConfirmationCode)
	handlers.RespondJSON(w, http.StatusCreated, handlers.FromDomainBooking(result.Booking))
}
