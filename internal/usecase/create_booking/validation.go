package create_booking

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-ConfiguratorService/internal/domain"
	"github.com/m04kA/SMC-ConfiguratorService/pkg/types"
)

// validateRequest проверяет обязательные поля и разбирает дату и время
func validateRequest(req *Request) (time.Time, types.TimeString, error) {
	if req.LocationID == "" || req.Date == "" || req.Time == "" || req.Customer == nil {
		return time.Time{}, "", fmt.Errorf("%w: locationId, date, time and customer are required", ErrInvalidInput)
	}

	if strings.TrimSpace(req.Customer.Name) == "" || strings.TrimSpace(req.Customer.Email) == "" {
		return time.Time{}, "", fmt.Errorf("%w: customer name and email are required", ErrInvalidInput)
	}

	date, err := time.Parse(domain.DateFormat, req.Date)
	if err != nil {
		return time.Time{}, "", fmt.Errorf("%w: date %q must be YYYY-MM-DD", ErrInvalidInput, req.Date)
	}

	slot, err := types.NewTimeStringFromString(req.Time)
	if err != nil {
		return time.Time{}, "", fmt.Errorf("%w: time %q must be HH:MM", ErrInvalidInput, req.Time)
	}

	return date, slot, nil
}
