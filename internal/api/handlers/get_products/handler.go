package get_products

import (
	"net/http"

	"github.com/m04kA/SMC-ConfiguratorService/internal/api/handlers"
	"github.com/m04kA/SMC-ConfiguratorService/internal/domain"
)

const msgFailed = "Failed to fetch products"

type Handler struct {
	service CatalogService
	logger  Logger
}

func NewHandler(service CatalogService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /products
// Query params: category (optional), search (optional)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	filter := domain.ProductFilter{
		Category: r.URL.Query().Get("category"),
		Search:   r.URL.Query().Get("search"),
	}

	listing, err := h.service.List(r.Context(), filter)
	if err != nil {
		h.logger.Error("GET /products - Failed to fetch products: %v", err)
		handlers.RespondErrorWithMessage(w, http.StatusInternalServerError, msgFailed, err.Error())
		return
	}

	h.logger.Info("GET /products - categories=%d, source=%s", len(listing.Categories), listing.Source)
	handlers.RespondJSON(w, http.StatusOK, FromListing(listing))
}
