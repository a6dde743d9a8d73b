package get_available_slots

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ConfiguratorService/internal/api/handlers"
	getAvailableSlots "github.com/m04kA/SMC-ConfiguratorService/internal/usecase/get_available_slots"
)

const (
	msgMissingParams = "Location and date required"
	msgInvalidDate   = "Invalid date, expected YYYY-MM-DD"
	msgFailed        = "Failed to fetch availability"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /availability
// Query params: location (required), date (required, YYYY-MM-DD)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	result, err := h.useCase.Execute(r.Context(), ToUseCaseRequest(query.Get("location"), query.Get("date")))
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /availability - Missing location or date")
			handlers.RespondBadRequest(w, msgMissingParams)

		case errors.Is(err, getAvailableSlots.ErrInvalidDate):
			h.logger.Warn("GET /availability - Invalid date: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)

		default:
			h.logger.Error("GET /availability - Failed to get slots: %v", err)
			handlers.RespondError(w, http.StatusInternalServerError, msgFailed)
		}
		return
	}

	h.logger.Info("GET /availability - location=%s, date=%s, slots_count=%d",
		result.LocationID, result.Date, len(result.AvailableSlots))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
