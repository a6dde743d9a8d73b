package get_locations

import (
	"net/http"

	"github.com/m04kA/SMC-ConfiguratorService/internal/api/handlers"
)

type Handler struct {
	directory LocationDirectory
	logger    Logger
}

func NewHandler(directory LocationDirectory, logger Logger) *Handler {
	return &Handler{
		directory: directory,
		logger:    logger,
	}
}

// Handle GET /locations
func (h *Handler) Handle(w http.ResponseWriter, _ *http.Request) {
	locations := h.directory.List()

	h.logger.Info("GET /locations - %d locations", len(locations))
	handlers.RespondJSON(w, http.StatusOK, FromDomain(locations))
}
