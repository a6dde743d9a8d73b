package get_available_slots

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-ConfiguratorService/internal/domain"
)

// validateRequest проверяет обязательные поля и разбирает дату
func validateRequest(req *Request) (time.Time, error) {
	if strings.TrimSpace(req.LocationID) == "" || req.Date == "" {
		return time.Time{}, fmt.Errorf("%w: location and date are required", ErrInvalidInput)
	}

	date, err := time.Parse(domain.DateFormat, req.Date)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q: %v", ErrInvalidDate, req.Date, err)
	}

	return date, nil
}
