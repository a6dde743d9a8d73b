package compute_quote

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ConfiguratorService/internal/api/handlers"
	computeQuote "github.com/m04kA/SMC-ConfiguratorService/internal/usecase/compute_quote"
)

const (
	msgNoItems     = "No items provided"
	msgInvalidItem = "Item price and laborHours must not be negative"
	msgFailed      = "Failed to calculate quote"
)

type Handler struct {
	useCase ComputeQuoteUseCase
	logger  Logger
}

func NewHandler(useCase ComputeQuoteUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /quote
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req QuoteRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Error("POST /quote - Failed to decode request body: %v", err)
		handlers.RespondError(w, http.StatusInternalServerError, msgFailed)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, computeQuote.ErrNoItems):
			h.logger.Warn("POST /quote - No items provided")
			handlers.RespondBadRequest(w, msgNoItems)

		case errors.Is(err, computeQuote.ErrInvalidItem):
			h.logger.Warn("POST /quote - Invalid item: %v", err)
			handlers.RespondBadRequest(w, msgInvalidItem)

		default:
			h.logger.Error("POST /quote - Failed to calculate quote: %v", err)
			handlers.RespondError(w, http.StatusInternalServerError, msgFailed)
		}
		return
	}

	h.logger.Info("POST /quote - Quote calculated: quote_id=%s, items=%d",
		result.Quote.ID, len(result.Quote.LineItems))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
