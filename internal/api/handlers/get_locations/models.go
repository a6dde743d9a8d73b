package get_locations

import (
	"github.com/m04kA/SMC-ConfiguratorService/internal/api/handlers"
	"github.com/m04kA/SMC-ConfiguratorService/internal/domain"
)

// LocationsResponse HTTP response model
type LocationsResponse struct {
	Locations []handlers.LocationResponse `json:"locations"`
}

// FromDomain конвертирует список точек в HTTP response
func FromDomain(locations []domain.Location) *LocationsResponse {
	out := make([]handlers.LocationResponse, 0, len(locations))
	for _, loc := range locations {
		out = append(out, handlers.FromDomainLocation(loc))
	}
	return &LocationsResponse{Locations: out}
}
