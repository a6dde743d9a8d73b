package get_booking

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ConfiguratorService/internal/api/handlers"
	"github.com/m04kA/SMC-ConfiguratorService/internal/service/bookings"
)

const (
	msgNotFound      = "Booking not found"
	msgInvalidCode   = "Confirmation code required"
	msgFailedToFetch = "Failed to fetch booking"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /bookings/{confirmationCode}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	code := mux.Vars(r)["confirmationCode"]

	booking, err := h.service.GetByConfirmationCode(r.Context(), code)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /bookings/{code} - Empty confirmation code")
			handlers.RespondBadRequest(w, msgInvalidCode)

		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("GET /bookings/{code} - Booking not found: code=%s", code)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /bookings/{code} - Failed to get booking: code=%s, error=%v", code, err)
			handlers.RespondError(w, http.StatusInternalServerError, msgFailedToFetch)
		}
		return
	}

	h.logger.Info("GET /bookings/{code} - Booking retrieved successfully: booking_id=%s", booking.ID)
	handlers.RespondJSON(w, http.StatusOK, handlers.FromDomainBooking(booking))
}
