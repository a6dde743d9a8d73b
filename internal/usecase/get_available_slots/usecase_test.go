package get_available_slots

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ConfiguratorService/internal/domain"
	"github.com/m04kA/SMC-ConfiguratorService/internal/service/availability"
	"github.com/m04kA/SMC-ConfiguratorService/internal/service/locations"
	"github.com/m04kA/SMC-ConfiguratorService/pkg/logger"
	"github.com/m04kA/SMC-ConfiguratorService/pkg/types"
)

func newTestUseCase() *UseCase {
	return NewUseCase(
		availability.NewResolver(availability.NewHashOracle()),
		locations.NewDirectory(domain.DefaultLocations()),
		logger.NewNop(),
	)
}

func TestExecute_ReturnsSlots(t *testing.T) {
	uc := newTestUseCase()

	resp, err := uc.Execute(context.Background(), &Request{LocationID: "casa", Date: "2024-01-15"})
	require.NoError(t, err)

	assert.Equal(t, "casa", resp.LocationID)
	assert.Equal(t, "2024-01-15", resp.Date)
	assert.Equal(t, []types.TimeString{"10:00", "11:00", "15:00", "16:00"}, resp.AvailableSlots)
	assert.Equal(t, "Africa/Casablanca", resp.Timezone)
}

func TestExecute_UnknownLocation(t *testing.T) {
	uc := newTestUseCase()

	resp, err := uc.Execute(context.Background(), &Request{LocationID: "rabat", Date: "2024-01-15"})
	require.NoError(t, err)

	assert.Equal(t, domain.DefaultTimezone, resp.Timezone)
	assert.NotEmpty(t, resp.AvailableSlots)
}

func TestExecute_Validation(t *testing.T) {
	uc := newTestUseCase()

	tests := []struct {
		name    string
		req     Request
		wantErr error
	}{
		{"missing location", Request{Date: "2024-01-15"}, ErrInvalidInput},
		{"missing date", Request{LocationID: "casa"}, ErrInvalidInput},
		{"bad date", Request{LocationID: "casa", Date: "15/01/2024"}, ErrInvalidDate},
		{"impossible date", Request{LocationID: "casa", Date: "2024-02-30"}, ErrInvalidDate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), &tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

type failingResolver struct{}

func (failingResolver) GetAvailableSlots(context.Context, string, time.Time) ([]types.TimeString, error) {
	return nil, errors.New("store down")
}

func TestExecute_ResolverFailure(t *testing.T) {
	uc := NewUseCase(failingResolver{}, locations.NewDirectory(domain.DefaultLocations()), logger.NewNop())

	_, err := uc.Execute(context.Background(), &Request{LocationID: "casa", Date: "2024-01-15"})
	assert.ErrorIs(t, err, ErrInternal)
}
